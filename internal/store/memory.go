package store

import (
	"sort"
	"sync"
)

// MemoryStore keeps every collection in process memory. It exists for
// fast local iteration and for tests; state does not survive a
// restart. Ids are monotonic per collection, seeded from the highest
// id present when rows are loaded through the create methods.
type MemoryStore struct {
	mu sync.Mutex

	pages    map[uint]Page
	menu     map[uint]MenuItem
	buttons  map[uint]CustomButton
	settings map[uint]SiteSetting
	users    map[uint]User

	pageID    uint
	menuID    uint
	buttonID  uint
	settingID uint
	userID    uint
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		pages:    map[uint]Page{},
		menu:     map[uint]MenuItem{},
		buttons:  map[uint]CustomButton{},
		settings: map[uint]SiteSetting{},
		users:    map[uint]User{},
	}
}

var _ Store = (*MemoryStore)(nil)

func nextID(counter *uint, requested uint) uint {
	if requested > *counter {
		*counter = requested
	}
	if requested != 0 {
		return requested
	}
	*counter++
	return *counter
}

// ListPages returns all pages ordered by id.
func (s *MemoryStore) ListPages() ([]Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pages := make([]Page, 0, len(s.pages))
	for _, page := range s.pages {
		pages = append(pages, page)
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].ID < pages[j].ID })
	return pages, nil
}

// GetPage fetches one page by id.
func (s *MemoryStore) GetPage(id uint) (*Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, ok := s.pages[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &page, nil
}

// GetPageBySlug fetches one page by its unique slug.
func (s *MemoryStore) GetPageBySlug(slug string) (*Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, page := range s.pages {
		if page.Slug == slug {
			found := page
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// CreatePage assigns the next id and stores the page. A duplicate slug
// is rejected with ErrConflict, mirroring the durable unique index.
func (s *MemoryStore) CreatePage(page *Page) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.pages {
		if existing.Slug == page.Slug {
			return ErrConflict
		}
	}
	page.ID = nextID(&s.pageID, page.ID)
	s.pages[page.ID] = *page
	return nil
}

// UpdatePage replaces an existing page row.
func (s *MemoryStore) UpdatePage(page *Page) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pages[page.ID]; !ok {
		return ErrNotFound
	}
	for _, existing := range s.pages {
		if existing.Slug == page.Slug && existing.ID != page.ID {
			return ErrConflict
		}
	}
	s.pages[page.ID] = *page
	return nil
}

// DeletePage removes a page by id.
func (s *MemoryStore) DeletePage(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pages[id]; !ok {
		return ErrNotFound
	}
	delete(s.pages, id)
	return nil
}

// ListMenuItems returns all menu items sorted ascending by position.
func (s *MemoryStore) ListMenuItems() ([]MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]MenuItem, 0, len(s.menu))
	for _, item := range s.menu {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Position != items[j].Position {
			return items[i].Position < items[j].Position
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

// GetMenuItem fetches one menu item by id.
func (s *MemoryStore) GetMenuItem(id uint) (*MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.menu[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

// CreateMenuItem assigns the next id and stores the item.
func (s *MemoryStore) CreateMenuItem(item *MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = nextID(&s.menuID, item.ID)
	s.menu[item.ID] = *item
	return nil
}

// UpdateMenuItem replaces an existing menu item row.
func (s *MemoryStore) UpdateMenuItem(item *MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.menu[item.ID]; !ok {
		return ErrNotFound
	}
	s.menu[item.ID] = *item
	return nil
}

// DeleteMenuItem removes a menu item by id.
func (s *MemoryStore) DeleteMenuItem(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.menu[id]; !ok {
		return ErrNotFound
	}
	delete(s.menu, id)
	return nil
}

// ListCustomButtons returns all custom buttons ordered by id.
func (s *MemoryStore) ListCustomButtons() ([]CustomButton, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buttons := make([]CustomButton, 0, len(s.buttons))
	for _, button := range s.buttons {
		buttons = append(buttons, button)
	}
	sort.Slice(buttons, func(i, j int) bool { return buttons[i].ID < buttons[j].ID })
	return buttons, nil
}

// ListCustomButtonsByPage returns the buttons bound to one page slug.
func (s *MemoryStore) ListCustomButtonsByPage(pageSlug string) ([]CustomButton, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buttons := make([]CustomButton, 0)
	for _, button := range s.buttons {
		if button.PageSlug == pageSlug {
			buttons = append(buttons, button)
		}
	}
	sort.Slice(buttons, func(i, j int) bool { return buttons[i].ID < buttons[j].ID })
	return buttons, nil
}

// GetCustomButton fetches one button by id.
func (s *MemoryStore) GetCustomButton(id uint) (*CustomButton, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	button, ok := s.buttons[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &button, nil
}

// CreateCustomButton assigns the next id and stores the button.
func (s *MemoryStore) CreateCustomButton(button *CustomButton) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	button.ID = nextID(&s.buttonID, button.ID)
	s.buttons[button.ID] = *button
	return nil
}

// UpdateCustomButton replaces an existing button row.
func (s *MemoryStore) UpdateCustomButton(button *CustomButton) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.buttons[button.ID]; !ok {
		return ErrNotFound
	}
	s.buttons[button.ID] = *button
	return nil
}

// DeleteCustomButton removes a button by id.
func (s *MemoryStore) DeleteCustomButton(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.buttons[id]; !ok {
		return ErrNotFound
	}
	delete(s.buttons, id)
	return nil
}

// GetSetting fetches one setting by its unique name.
func (s *MemoryStore) GetSetting(name string) (*SiteSetting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, setting := range s.settings {
		if setting.Name == name {
			found := setting
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// SaveSetting creates the setting when the name is new and overwrites
// its value otherwise.
func (s *MemoryStore) SaveSetting(setting *SiteSetting) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.settings {
		if existing.Name == setting.Name {
			setting.ID = id
			s.settings[id] = *setting
			return nil
		}
	}
	setting.ID = nextID(&s.settingID, 0)
	s.settings[setting.ID] = *setting
	return nil
}

// GetUserByUsername fetches one user by its unique username.
func (s *MemoryStore) GetUserByUsername(username string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			found := user
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// CreateUser assigns the next id and stores the user.
func (s *MemoryStore) CreateUser(user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return ErrConflict
		}
	}
	user.ID = nextID(&s.userID, 0)
	s.users[user.ID] = *user
	return nil
}
