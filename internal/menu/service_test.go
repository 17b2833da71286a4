package menu

import (
	"errors"
	"testing"

	"github.com/meusite/cms/internal/store"
)

func newTestService(t *testing.T) (*Service, store.Store) {
	t.Helper()
	entityStore := store.NewMemoryStore()
	service, err := NewService(ServiceConfig{Store: entityStore})
	if err != nil {
		t.Fatalf("unexpected service error: %v", err)
	}
	return service, entityStore
}

func strptr(value string) *string {
	return &value
}

func mustCreate(t *testing.T, service *Service, text string) *store.MenuItem {
	t.Helper()
	item, err := service.Create(CreateInput{Text: text, Type: store.MenuItemTypeInternal, InternalLink: strptr("home")})
	if err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}
	return item
}

func TestCreateAppendsContiguousRanks(t *testing.T) {
	service, _ := newTestService(t)

	for index, text := range []string{"A", "B", "C"} {
		item := mustCreate(t, service, text)
		if item.Position != index+1 {
			t.Fatalf("expected rank %d for %q, got %d", index+1, text, item.Position)
		}
	}

	items, err := service.ListOrdered()
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	for index, item := range items {
		if item.Position != index+1 {
			t.Fatalf("expected contiguous 1..N ranking, got %+v", items)
		}
	}
}

func TestCreateValidatesTargetTuple(t *testing.T) {
	service, _ := newTestService(t)

	if _, err := service.Create(CreateInput{Text: "x", Type: store.MenuItemTypeInternal}); !errors.Is(err, ErrMissingTarget) {
		t.Fatalf("expected ErrMissingTarget for internal without link, got %v", err)
	}
	if _, err := service.Create(CreateInput{Text: "x", Type: store.MenuItemTypeExternal}); !errors.Is(err, ErrMissingTarget) {
		t.Fatalf("expected ErrMissingTarget for external without url, got %v", err)
	}
	if _, err := service.Create(CreateInput{Text: "x", Type: "banner", InternalLink: strptr("home")}); !errors.Is(err, ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got %v", err)
	}

	item, err := service.Create(CreateInput{
		Text:         "x",
		Type:         store.MenuItemTypeIframe,
		InternalLink: strptr("home"),
		ExternalURL:  strptr("example.com"),
	})
	if err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}
	if item.InternalLink != nil {
		t.Fatalf("iframe item must not keep an internal link")
	}
	if item.ExternalURL == nil || *item.ExternalURL != "example.com" {
		t.Fatalf("unexpected target tuple: %+v", item)
	}
}

func TestUpdateRenormalizesTargetOnTypeChange(t *testing.T) {
	service, _ := newTestService(t)
	item := mustCreate(t, service, "A")

	external := store.MenuItemTypeExternal
	updated, err := service.Update(item.ID, UpdateInput{Type: &external, ExternalURL: strptr("https://example.com")})
	if err != nil {
		t.Fatalf("unexpected update error: %v", err)
	}
	if updated.Type != store.MenuItemTypeExternal {
		t.Fatalf("expected type change, got %q", updated.Type)
	}
	if updated.InternalLink != nil {
		t.Fatalf("internal link must be cleared after the type change")
	}
	if updated.ExternalURL == nil || *updated.ExternalURL != "https://example.com" {
		t.Fatalf("unexpected external url: %+v", updated)
	}
}

func TestUpdateKeepsRank(t *testing.T) {
	service, _ := newTestService(t)
	mustCreate(t, service, "A")
	item := mustCreate(t, service, "B")

	text := "renamed"
	updated, err := service.Update(item.ID, UpdateInput{Text: &text})
	if err != nil {
		t.Fatalf("unexpected update error: %v", err)
	}
	if updated.Position != 2 {
		t.Fatalf("rank must only change through reorder, got %d", updated.Position)
	}
}

func TestReorderMovesOmittedItemsToTheEnd(t *testing.T) {
	service, _ := newTestService(t)
	first := mustCreate(t, service, "A")
	second := mustCreate(t, service, "B")
	third := mustCreate(t, service, "C")

	items, err := service.Reorder([]uint{third.ID, first.ID})
	if err != nil {
		t.Fatalf("unexpected reorder error: %v", err)
	}

	if len(items) != 3 {
		t.Fatalf("expected all items back, got %d", len(items))
	}
	wantOrder := []uint{third.ID, first.ID, second.ID}
	for index, item := range items {
		if item.ID != wantOrder[index] {
			t.Fatalf("unexpected order at %d: got id %d, want %d", index, item.ID, wantOrder[index])
		}
		if item.Position != index+1 {
			t.Fatalf("expected contiguous ranks after reorder, got %+v", items)
		}
	}
}

func TestReorderSkipsUnknownAndRepeatedIDs(t *testing.T) {
	service, _ := newTestService(t)
	first := mustCreate(t, service, "A")
	second := mustCreate(t, service, "B")

	items, err := service.Reorder([]uint{99, second.ID, second.ID, first.ID})
	if err != nil {
		t.Fatalf("unexpected reorder error: %v", err)
	}
	if items[0].ID != second.ID || items[1].ID != first.ID {
		t.Fatalf("unexpected order: %+v", items)
	}
	if items[0].Position != 1 || items[1].Position != 2 {
		t.Fatalf("unknown ids must not leave rank gaps: %+v", items)
	}
}

func TestPlanReorderPreservesRelativeOrderOfOmitted(t *testing.T) {
	link := strptr("home")
	items := []store.MenuItem{
		{ID: 1, Text: "A", Position: 1, Type: store.MenuItemTypeInternal, InternalLink: link},
		{ID: 2, Text: "B", Position: 2, Type: store.MenuItemTypeInternal, InternalLink: link},
		{ID: 3, Text: "C", Position: 3, Type: store.MenuItemTypeInternal, InternalLink: link},
		{ID: 4, Text: "D", Position: 4, Type: store.MenuItemTypeInternal, InternalLink: link},
	}

	planned := PlanReorder(items, []uint{4, 2})

	wantIDs := []uint{4, 2, 1, 3}
	for index, item := range planned {
		if item.ID != wantIDs[index] {
			t.Fatalf("unexpected plan: %+v", planned)
		}
		if item.Position != index+1 {
			t.Fatalf("expected rank %d, got %d", index+1, item.Position)
		}
	}
}

func TestDeleteReportsMissing(t *testing.T) {
	service, _ := newTestService(t)
	if err := service.Delete(1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
