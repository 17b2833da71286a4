package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type backendCase struct {
	name  string
	store Store
}

func newBackends(t *testing.T) []backendCase {
	t.Helper()
	return []backendCase{
		{name: "memory", store: NewMemoryStore()},
		{name: "database", store: newTestDatabaseStore(t)},
	}
}

func newTestDatabaseStore(t *testing.T) *DatabaseStore {
	t.Helper()
	dsn := fmt.Sprintf("file:store_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&Page{}, &MenuItem{}, &CustomButton{}, &SiteSetting{}, &User{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	databaseStore, err := NewDatabaseStore(db)
	if err != nil {
		t.Fatalf("failed to construct database store: %v", err)
	}
	return databaseStore
}

func testPage(slug string) *Page {
	now := time.Unix(1700000000, 0).UTC()
	return &Page{
		Title:     "Title " + slug,
		Slug:      slug,
		Content:   "<p>content</p>",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreatePageAssignsSequentialIDs(t *testing.T) {
	for _, backend := range newBackends(t) {
		t.Run(backend.name, func(t *testing.T) {
			first := testPage("first")
			second := testPage("second")
			if err := backend.store.CreatePage(first); err != nil {
				t.Fatalf("unexpected create error: %v", err)
			}
			if err := backend.store.CreatePage(second); err != nil {
				t.Fatalf("unexpected create error: %v", err)
			}
			if first.ID == 0 || second.ID != first.ID+1 {
				t.Fatalf("expected sequential ids, got %d and %d", first.ID, second.ID)
			}
		})
	}
}

func TestCreatePageRejectsDuplicateSlug(t *testing.T) {
	for _, backend := range newBackends(t) {
		t.Run(backend.name, func(t *testing.T) {
			if err := backend.store.CreatePage(testPage("shared")); err != nil {
				t.Fatalf("unexpected create error: %v", err)
			}
			err := backend.store.CreatePage(testPage("shared"))
			if !errors.Is(err, ErrConflict) {
				t.Fatalf("expected ErrConflict, got %v", err)
			}

			stored, err := backend.store.GetPageBySlug("shared")
			if err != nil {
				t.Fatalf("unexpected lookup error: %v", err)
			}
			if stored.Title != "Title shared" {
				t.Fatalf("original page must survive the rejected create, got %q", stored.Title)
			}
		})
	}
}

func TestGetPageBySlugReportsMissing(t *testing.T) {
	for _, backend := range newBackends(t) {
		t.Run(backend.name, func(t *testing.T) {
			if _, err := backend.store.GetPageBySlug("ghost"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestUpdatePageReplacesRow(t *testing.T) {
	for _, backend := range newBackends(t) {
		t.Run(backend.name, func(t *testing.T) {
			page := testPage("editable")
			if err := backend.store.CreatePage(page); err != nil {
				t.Fatalf("unexpected create error: %v", err)
			}

			page.Title = "Edited"
			page.Content = "<p>edited</p>"
			if err := backend.store.UpdatePage(page); err != nil {
				t.Fatalf("unexpected update error: %v", err)
			}

			stored, err := backend.store.GetPage(page.ID)
			if err != nil {
				t.Fatalf("unexpected lookup error: %v", err)
			}
			if stored.Title != "Edited" || stored.Content != "<p>edited</p>" {
				t.Fatalf("unexpected stored page: %+v", stored)
			}
		})
	}
}

func TestUpdatePageReportsMissing(t *testing.T) {
	for _, backend := range newBackends(t) {
		t.Run(backend.name, func(t *testing.T) {
			ghost := testPage("ghost")
			ghost.ID = 42
			if err := backend.store.UpdatePage(ghost); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestDeletePageReportsMissing(t *testing.T) {
	for _, backend := range newBackends(t) {
		t.Run(backend.name, func(t *testing.T) {
			page := testPage("doomed")
			if err := backend.store.CreatePage(page); err != nil {
				t.Fatalf("unexpected create error: %v", err)
			}
			if err := backend.store.DeletePage(page.ID); err != nil {
				t.Fatalf("unexpected delete error: %v", err)
			}
			if err := backend.store.DeletePage(page.ID); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound on second delete, got %v", err)
			}
		})
	}
}

func TestListMenuItemsSortsByPosition(t *testing.T) {
	for _, backend := range newBackends(t) {
		t.Run(backend.name, func(t *testing.T) {
			link := "home"
			third := MenuItem{Text: "C", Position: 3, Type: MenuItemTypeInternal, InternalLink: &link}
			first := MenuItem{Text: "A", Position: 1, Type: MenuItemTypeInternal, InternalLink: &link}
			second := MenuItem{Text: "B", Position: 2, Type: MenuItemTypeInternal, InternalLink: &link}
			for _, item := range []*MenuItem{&third, &first, &second} {
				if err := backend.store.CreateMenuItem(item); err != nil {
					t.Fatalf("unexpected create error: %v", err)
				}
			}

			items, err := backend.store.ListMenuItems()
			if err != nil {
				t.Fatalf("unexpected list error: %v", err)
			}
			if len(items) != 3 {
				t.Fatalf("expected 3 items, got %d", len(items))
			}
			for index, want := range []string{"A", "B", "C"} {
				if items[index].Text != want {
					t.Fatalf("expected %q at position %d, got %q", want, index, items[index].Text)
				}
			}
		})
	}
}

func TestListCustomButtonsByPageFilters(t *testing.T) {
	for _, backend := range newBackends(t) {
		t.Run(backend.name, func(t *testing.T) {
			link := "home"
			now := time.Unix(1700000000, 0).UTC()
			home := CustomButton{Text: "Go home", Type: ButtonTypeInternal, URL: "/home", InternalLink: &link, PageSlug: "home", Style: "primary", Size: "default", OpenInNewTab: true, CreatedAt: now}
			other := CustomButton{Text: "Elsewhere", Type: ButtonTypeInternal, URL: "/home", InternalLink: &link, PageSlug: "servicos", Style: "primary", Size: "default", OpenInNewTab: true, CreatedAt: now}
			for _, button := range []*CustomButton{&home, &other} {
				if err := backend.store.CreateCustomButton(button); err != nil {
					t.Fatalf("unexpected create error: %v", err)
				}
			}

			buttons, err := backend.store.ListCustomButtonsByPage("home")
			if err != nil {
				t.Fatalf("unexpected list error: %v", err)
			}
			if len(buttons) != 1 || buttons[0].Text != "Go home" {
				t.Fatalf("unexpected filtered buttons: %+v", buttons)
			}
		})
	}
}

func TestSaveSettingUpsertsByName(t *testing.T) {
	for _, backend := range newBackends(t) {
		t.Run(backend.name, func(t *testing.T) {
			first := SiteSetting{Name: "theme", ValueJSON: `{"color":"blue"}`}
			if err := backend.store.SaveSetting(&first); err != nil {
				t.Fatalf("unexpected save error: %v", err)
			}
			if first.ID == 0 {
				t.Fatalf("expected id to be assigned")
			}

			second := SiteSetting{Name: "theme", ValueJSON: `{"color":"red"}`}
			if err := backend.store.SaveSetting(&second); err != nil {
				t.Fatalf("unexpected upsert error: %v", err)
			}
			if second.ID != first.ID {
				t.Fatalf("expected upsert to keep id %d, got %d", first.ID, second.ID)
			}

			stored, err := backend.store.GetSetting("theme")
			if err != nil {
				t.Fatalf("unexpected lookup error: %v", err)
			}
			if stored.ValueJSON != `{"color":"red"}` {
				t.Fatalf("expected overwritten value, got %s", stored.ValueJSON)
			}
		})
	}
}

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	for _, backend := range newBackends(t) {
		t.Run(backend.name, func(t *testing.T) {
			if err := backend.store.CreateUser(&User{Username: "alex", Password: "x"}); err != nil {
				t.Fatalf("unexpected create error: %v", err)
			}
			err := backend.store.CreateUser(&User{Username: "alex", Password: "y"})
			if !errors.Is(err, ErrConflict) {
				t.Fatalf("expected ErrConflict, got %v", err)
			}

			stored, err := backend.store.GetUserByUsername("alex")
			if err != nil {
				t.Fatalf("unexpected lookup error: %v", err)
			}
			if stored.Password != "x" {
				t.Fatalf("original user must survive the rejected create")
			}
		})
	}
}

func TestMemoryStoreSeedsCounterFromHighestID(t *testing.T) {
	memory := NewMemoryStore()

	loaded := testPage("loaded")
	loaded.ID = 7
	if err := memory.CreatePage(loaded); err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}

	fresh := testPage("fresh")
	if err := memory.CreatePage(fresh); err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}
	if fresh.ID != 8 {
		t.Fatalf("expected next id 8, got %d", fresh.ID)
	}
}
