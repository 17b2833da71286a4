package store

import "time"

// MenuItemType enumerates supported menu navigation targets.
type MenuItemType string

const (
	// MenuItemTypeInternal points at a stored page by slug.
	MenuItemTypeInternal MenuItemType = "internal"
	// MenuItemTypeExternal opens a URL outside the app.
	MenuItemTypeExternal MenuItemType = "external"
	// MenuItemTypeIframe renders a URL inside the embedded viewer.
	MenuItemTypeIframe MenuItemType = "iframe"
)

// ButtonType enumerates supported custom button targets.
type ButtonType string

const (
	// ButtonTypeInternal navigates to a stored page by slug.
	ButtonTypeInternal ButtonType = "internal"
	// ButtonTypeExternal opens a URL outside the app.
	ButtonTypeExternal ButtonType = "external"
	// ButtonTypeIframe renders a URL inside the embedded viewer.
	ButtonTypeIframe ButtonType = "iframe"
	// ButtonTypeEmail opens a mail client via a mailto link.
	ButtonTypeEmail ButtonType = "email"
)

// Page models an admin-editable content page addressed by slug.
type Page struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Title     string    `gorm:"column:title;not null" json:"title"`
	Slug      string    `gorm:"column:slug;size:190;uniqueIndex;not null" json:"slug"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}

// TableName provides the explicit table binding for GORM.
func (Page) TableName() string {
	return "pages"
}

// MenuItem models one entry of the navigation menu. Position is the
// display rank; the column avoids the reserved word "order".
type MenuItem struct {
	ID           uint         `gorm:"column:id;primaryKey" json:"id"`
	Text         string       `gorm:"column:text;not null" json:"text"`
	Position     int          `gorm:"column:position;not null;index" json:"order"`
	Type         MenuItemType `gorm:"column:type;size:16;not null" json:"type"`
	InternalLink *string      `gorm:"column:internal_link;size:190" json:"internalLink"`
	ExternalURL  *string      `gorm:"column:external_url;size:512" json:"externalUrl"`
}

// TableName provides the explicit table binding for GORM.
func (MenuItem) TableName() string {
	return "menu_items"
}

// CustomButton models a navigation control rendered on a single page.
// URL is derived from Type and the matching target field and is kept
// consistent on every mutation.
type CustomButton struct {
	ID           uint       `gorm:"column:id;primaryKey" json:"id"`
	Text         string     `gorm:"column:text;not null" json:"text"`
	Type         ButtonType `gorm:"column:type;size:16;not null" json:"type"`
	URL          string     `gorm:"column:url;size:512;not null" json:"url"`
	InternalLink *string    `gorm:"column:internal_link;size:190" json:"internalLink"`
	ExternalURL  *string    `gorm:"column:external_url;size:512" json:"externalUrl"`
	Email        *string    `gorm:"column:email;size:320" json:"email"`
	PageSlug     string     `gorm:"column:page_slug;size:190;not null;index" json:"pageSlug"`
	Style        string     `gorm:"column:style;size:16;not null;default:primary" json:"style"`
	Size         string     `gorm:"column:size;size:16;not null;default:default" json:"size"`
	OpenInNewTab bool       `gorm:"column:open_in_new_tab;not null;default:true" json:"openInNewTab"`
	CreatedAt    time.Time  `gorm:"column:created_at;not null" json:"createdAt"`
}

// TableName provides the explicit table binding for GORM.
func (CustomButton) TableName() string {
	return "custom_buttons"
}

// SiteSetting holds one named configuration blob with a JSON value.
type SiteSetting struct {
	ID        uint   `gorm:"column:id;primaryKey" json:"id"`
	Name      string `gorm:"column:name;size:190;uniqueIndex;not null" json:"name"`
	ValueJSON string `gorm:"column:value;type:text;not null" json:"-"`
}

// TableName provides the explicit table binding for GORM.
func (SiteSetting) TableName() string {
	return "site_settings"
}

// User is the placeholder identity table carried by the schema. No
// request flow consults it; the access gate compares a shared secret.
type User struct {
	ID       uint   `gorm:"column:id;primaryKey" json:"id"`
	Username string `gorm:"column:username;size:190;uniqueIndex;not null" json:"username"`
	Password string `gorm:"column:password;size:190;not null" json:"-"`
}

// TableName provides the explicit table binding for GORM.
func (User) TableName() string {
	return "users"
}
