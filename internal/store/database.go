package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DatabaseStore persists every collection in relational tables through
// GORM. Ids are database-assigned auto-increment values and every
// operation commits immediately; there is no write-behind.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore wraps an open GORM handle.
func NewDatabaseStore(db *gorm.DB) (*DatabaseStore, error) {
	if db == nil {
		return nil, fmt.Errorf("store: database handle is required")
	}
	return &DatabaseStore{db: db}, nil
}

var _ Store = (*DatabaseStore)(nil)

func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrConflict
	}
	return err
}

// ListPages returns all pages ordered by id.
func (s *DatabaseStore) ListPages() ([]Page, error) {
	var pages []Page
	if err := s.db.Order("id ASC").Find(&pages).Error; err != nil {
		return nil, translate(err)
	}
	return pages, nil
}

// GetPage fetches one page by id.
func (s *DatabaseStore) GetPage(id uint) (*Page, error) {
	var page Page
	if err := s.db.Where("id = ?", id).Take(&page).Error; err != nil {
		return nil, translate(err)
	}
	return &page, nil
}

// GetPageBySlug fetches one page by its unique slug.
func (s *DatabaseStore) GetPageBySlug(slug string) (*Page, error) {
	var page Page
	if err := s.db.Where("slug = ?", slug).Take(&page).Error; err != nil {
		return nil, translate(err)
	}
	return &page, nil
}

// CreatePage inserts the page; the database assigns the id.
func (s *DatabaseStore) CreatePage(page *Page) error {
	return translate(s.db.Create(page).Error)
}

// UpdatePage replaces an existing page row.
func (s *DatabaseStore) UpdatePage(page *Page) error {
	return s.updateRow(&Page{}, page.ID, page)
}

// DeletePage removes a page by id.
func (s *DatabaseStore) DeletePage(id uint) error {
	return s.deleteRow(&Page{}, id)
}

// ListMenuItems returns all menu items sorted ascending by position.
func (s *DatabaseStore) ListMenuItems() ([]MenuItem, error) {
	var items []MenuItem
	if err := s.db.Order("position ASC, id ASC").Find(&items).Error; err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// GetMenuItem fetches one menu item by id.
func (s *DatabaseStore) GetMenuItem(id uint) (*MenuItem, error) {
	var item MenuItem
	if err := s.db.Where("id = ?", id).Take(&item).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

// CreateMenuItem inserts the item; the database assigns the id.
func (s *DatabaseStore) CreateMenuItem(item *MenuItem) error {
	return translate(s.db.Create(item).Error)
}

// UpdateMenuItem replaces an existing menu item row.
func (s *DatabaseStore) UpdateMenuItem(item *MenuItem) error {
	return s.updateRow(&MenuItem{}, item.ID, item)
}

// DeleteMenuItem removes a menu item by id.
func (s *DatabaseStore) DeleteMenuItem(id uint) error {
	return s.deleteRow(&MenuItem{}, id)
}

// ListCustomButtons returns all custom buttons ordered by id.
func (s *DatabaseStore) ListCustomButtons() ([]CustomButton, error) {
	var buttons []CustomButton
	if err := s.db.Order("id ASC").Find(&buttons).Error; err != nil {
		return nil, translate(err)
	}
	return buttons, nil
}

// ListCustomButtonsByPage returns the buttons bound to one page slug.
func (s *DatabaseStore) ListCustomButtonsByPage(pageSlug string) ([]CustomButton, error) {
	var buttons []CustomButton
	if err := s.db.Where("page_slug = ?", pageSlug).Order("id ASC").Find(&buttons).Error; err != nil {
		return nil, translate(err)
	}
	return buttons, nil
}

// GetCustomButton fetches one button by id.
func (s *DatabaseStore) GetCustomButton(id uint) (*CustomButton, error) {
	var button CustomButton
	if err := s.db.Where("id = ?", id).Take(&button).Error; err != nil {
		return nil, translate(err)
	}
	return &button, nil
}

// CreateCustomButton inserts the button; the database assigns the id.
func (s *DatabaseStore) CreateCustomButton(button *CustomButton) error {
	return translate(s.db.Create(button).Error)
}

// UpdateCustomButton replaces an existing button row.
func (s *DatabaseStore) UpdateCustomButton(button *CustomButton) error {
	return s.updateRow(&CustomButton{}, button.ID, button)
}

// DeleteCustomButton removes a button by id.
func (s *DatabaseStore) DeleteCustomButton(id uint) error {
	return s.deleteRow(&CustomButton{}, id)
}

// GetSetting fetches one setting by its unique name.
func (s *DatabaseStore) GetSetting(name string) (*SiteSetting, error) {
	var setting SiteSetting
	if err := s.db.Where("name = ?", name).Take(&setting).Error; err != nil {
		return nil, translate(err)
	}
	return &setting, nil
}

// SaveSetting creates the setting when the name is new and overwrites
// its value otherwise.
func (s *DatabaseStore) SaveSetting(setting *SiteSetting) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"value": setting.ValueJSON}),
	}).Create(setting).Error
	if err != nil {
		return translate(err)
	}
	if setting.ID == 0 {
		stored, err := s.GetSetting(setting.Name)
		if err != nil {
			return err
		}
		setting.ID = stored.ID
	}
	return nil
}

// GetUserByUsername fetches one user by its unique username.
func (s *DatabaseStore) GetUserByUsername(username string) (*User, error) {
	var user User
	if err := s.db.Where("username = ?", username).Take(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// CreateUser inserts the user; the database assigns the id.
func (s *DatabaseStore) CreateUser(user *User) error {
	return translate(s.db.Create(user).Error)
}

// updateRow writes every column of the row addressed by id, reporting
// ErrNotFound when the id does not exist. Select("*") keeps zero and
// null values in the update, matching the full-row replace semantics
// of the memory backend.
func (s *DatabaseStore) updateRow(model interface{}, id uint, row interface{}) error {
	result := s.db.Model(model).Where("id = ?", id).Select("*").Omit("id").Updates(row)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *DatabaseStore) deleteRow(model interface{}, id uint) error {
	result := s.db.Where("id = ?", id).Delete(model)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
