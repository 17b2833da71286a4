package store

import "errors"

var (
	// ErrNotFound reports that the addressed row does not exist.
	ErrNotFound = errors.New("store: not found")
	// ErrConflict reports a uniqueness violation, such as a duplicate
	// page slug or setting name.
	ErrConflict = errors.New("store: conflict")
)

// Store is the persistence contract shared by the ephemeral and the
// durable backend. Both implementations expose identical semantics:
// reads observe every previously completed write, create assigns the
// id, update replaces an existing row and reports ErrNotFound for an
// unknown id, delete reports ErrNotFound when nothing was removed.
type Store interface {
	ListPages() ([]Page, error)
	GetPage(id uint) (*Page, error)
	GetPageBySlug(slug string) (*Page, error)
	CreatePage(page *Page) error
	UpdatePage(page *Page) error
	DeletePage(id uint) error

	ListMenuItems() ([]MenuItem, error)
	GetMenuItem(id uint) (*MenuItem, error)
	CreateMenuItem(item *MenuItem) error
	UpdateMenuItem(item *MenuItem) error
	DeleteMenuItem(id uint) error

	ListCustomButtons() ([]CustomButton, error)
	ListCustomButtonsByPage(pageSlug string) ([]CustomButton, error)
	GetCustomButton(id uint) (*CustomButton, error)
	CreateCustomButton(button *CustomButton) error
	UpdateCustomButton(button *CustomButton) error
	DeleteCustomButton(id uint) error

	GetSetting(name string) (*SiteSetting, error)
	SaveSetting(setting *SiteSetting) error

	GetUserByUsername(username string) (*User, error)
	CreateUser(user *User) error
}
