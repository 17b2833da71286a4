// Package menu orders navigation items, applies bulk re-ranking and
// classifies each item's navigation target.
package menu

import (
	"errors"
	"fmt"

	"github.com/meusite/cms/internal/store"
	"go.uber.org/zap"
)

var (
	// ErrNotFound indicates that no menu item matches the given id.
	ErrNotFound = errors.New("menu: not found")
	// ErrInvalidType indicates an unknown menu item type.
	ErrInvalidType = errors.New("menu: invalid type")
	// ErrMissingTarget indicates the target field required by the type
	// is absent.
	ErrMissingTarget = errors.New("menu: missing target for type")
)

// ServiceConfig describes the dependencies of the menu resolver.
type ServiceConfig struct {
	Store  store.Store
	Logger *zap.Logger
}

// Service mediates menu reads and mutations against the entity store.
type Service struct {
	store  store.Store
	logger *zap.Logger
}

// NewService constructs the menu resolver.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("menu: store is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: cfg.Store, logger: logger}, nil
}

// ListOrdered returns every menu item sorted ascending by rank.
func (s *Service) ListOrdered() ([]store.MenuItem, error) {
	return s.store.ListMenuItems()
}

// Get resolves one menu item by id.
func (s *Service) Get(id uint) (*store.MenuItem, error) {
	item, err := s.store.GetMenuItem(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	return item, err
}

// CreateInput carries the caller-supplied fields of a new menu item.
// The rank is never caller-supplied; new items are appended.
type CreateInput struct {
	Text         string
	Type         store.MenuItemType
	InternalLink *string
	ExternalURL  *string
}

// Create normalizes the target tuple, appends the item at rank
// count+1 and stores it.
func (s *Service) Create(input CreateInput) (*store.MenuItem, error) {
	internalLink, externalURL, err := normalizeTarget(input.Type, input.InternalLink, input.ExternalURL)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.ListMenuItems()
	if err != nil {
		return nil, err
	}

	item := store.MenuItem{
		Text:         input.Text,
		Position:     len(existing) + 1,
		Type:         input.Type,
		InternalLink: internalLink,
		ExternalURL:  externalURL,
	}
	if err := s.store.CreateMenuItem(&item); err != nil {
		s.logger.Error("menu item create failed", zap.String("text", input.Text), zap.Error(err))
		return nil, err
	}
	return &item, nil
}

// UpdateInput carries a partial menu item mutation; nil fields are
// left unchanged. Rank is excluded: it changes only through Reorder.
type UpdateInput struct {
	Text         *string
	Type         *store.MenuItemType
	InternalLink *string
	ExternalURL  *string
}

// Update merges the supplied fields onto the stored item. When the
// type or a target field changes, the target tuple is re-normalized so
// exactly one target matching the type survives.
func (s *Service) Update(id uint, input UpdateInput) (*store.MenuItem, error) {
	item, err := s.store.GetMenuItem(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Text != nil {
		item.Text = *input.Text
	}
	if input.Type != nil || input.InternalLink != nil || input.ExternalURL != nil {
		itemType := item.Type
		if input.Type != nil {
			itemType = *input.Type
		}
		internalLink := item.InternalLink
		if input.InternalLink != nil {
			internalLink = input.InternalLink
		}
		externalURL := item.ExternalURL
		if input.ExternalURL != nil {
			externalURL = input.ExternalURL
		}
		item.InternalLink, item.ExternalURL, err = normalizeTarget(itemType, internalLink, externalURL)
		if err != nil {
			return nil, err
		}
		item.Type = itemType
	}

	if err := s.store.UpdateMenuItem(item); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Error("menu item update failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return item, nil
}

// Delete removes a menu item by id. Remaining ranks are not
// compacted; display order is unaffected by gaps.
func (s *Service) Delete(id uint) error {
	err := s.store.DeleteMenuItem(id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// PlanReorder computes the new ranking for a caller-supplied id
// sequence over the current items (given in display order). Ids in
// the sequence take rank index+1 in the given order; unknown and
// repeated ids are skipped; items absent from the sequence keep their
// relative mutual order and continue the numbering afterwards. The
// result is the full item set in new rank order.
func PlanReorder(items []store.MenuItem, ids []uint) []store.MenuItem {
	byID := make(map[uint]store.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	planned := make([]store.MenuItem, 0, len(items))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		item, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		item.Position = len(planned) + 1
		planned = append(planned, item)
	}
	for _, item := range items {
		if seen[item.ID] {
			continue
		}
		item.Position = len(planned) + 1
		planned = append(planned, item)
	}
	return planned
}

// Reorder applies PlanReorder to the persisted set, issuing one row
// update per item whose rank changed. The first failing update aborts
// the operation; there is no rollback of updates already issued.
func (s *Service) Reorder(ids []uint) ([]store.MenuItem, error) {
	items, err := s.store.ListMenuItems()
	if err != nil {
		return nil, err
	}

	previous := make(map[uint]int, len(items))
	for _, item := range items {
		previous[item.ID] = item.Position
	}

	for _, item := range PlanReorder(items, ids) {
		if previous[item.ID] == item.Position {
			continue
		}
		update := item
		if err := s.store.UpdateMenuItem(&update); err != nil {
			s.logger.Error("menu reorder failed", zap.Uint("id", item.ID), zap.Error(err))
			return nil, fmt.Errorf("menu: reorder item %d: %w", item.ID, err)
		}
	}

	return s.store.ListMenuItems()
}

func normalizeTarget(itemType store.MenuItemType, internalLink, externalURL *string) (*string, *string, error) {
	switch itemType {
	case store.MenuItemTypeInternal:
		if internalLink == nil || *internalLink == "" {
			return nil, nil, ErrMissingTarget
		}
		return internalLink, nil, nil
	case store.MenuItemTypeExternal, store.MenuItemTypeIframe:
		if externalURL == nil || *externalURL == "" {
			return nil, nil, ErrMissingTarget
		}
		return nil, externalURL, nil
	default:
		return nil, nil, ErrInvalidType
	}
}
