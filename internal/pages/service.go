// Package pages resolves URL slugs to stored page content and guards
// the slug uniqueness invariant.
package pages

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/meusite/cms/internal/store"
	"go.uber.org/zap"
)

var (
	// ErrNotFound indicates that no page matches the given id or slug.
	ErrNotFound = errors.New("pages: not found")
	// ErrInvalidSlug indicates a slug outside ^[a-z0-9-]+$.
	ErrInvalidSlug = errors.New("pages: invalid slug")
	// ErrSlugTaken indicates the slug already belongs to another page.
	ErrSlugTaken = errors.New("pages: slug already in use")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidSlug reports whether the value is a lowercase alphanumeric
// hyphenated slug.
func ValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

// ServiceConfig describes the dependencies of the page resolver.
type ServiceConfig struct {
	Store  store.Store
	Clock  func() time.Time
	Logger *zap.Logger
}

// Service mediates page reads and mutations against the entity store.
type Service struct {
	store  store.Store
	clock  func() time.Time
	logger *zap.Logger
}

// NewService constructs the page resolver.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("pages: store is required")
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: cfg.Store, clock: clock, logger: logger}, nil
}

// List returns every stored page.
func (s *Service) List() ([]store.Page, error) {
	return s.store.ListPages()
}

// GetBySlug resolves one page by its slug.
func (s *Service) GetBySlug(slug string) (*store.Page, error) {
	page, err := s.store.GetPageBySlug(slug)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	return page, err
}

// GetByID resolves one page by id.
func (s *Service) GetByID(id uint) (*store.Page, error) {
	page, err := s.store.GetPage(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	return page, err
}

// CreateInput carries the caller-supplied fields of a new page.
type CreateInput struct {
	Title   string
	Slug    string
	Content string
}

// Create validates the slug, stamps both timestamps and stores the
// page. A colliding slug fails with ErrSlugTaken rather than
// overwriting the existing page.
func (s *Service) Create(input CreateInput) (*store.Page, error) {
	slug := strings.TrimSpace(input.Slug)
	if !ValidSlug(slug) {
		return nil, ErrInvalidSlug
	}

	now := s.clock().UTC()
	page := store.Page{
		Title:     input.Title,
		Slug:      slug,
		Content:   input.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.CreatePage(&page); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrSlugTaken
		}
		s.logger.Error("page create failed", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &page, nil
}

// UpdateInput carries a partial page mutation; nil fields are left
// unchanged.
type UpdateInput struct {
	Title   *string
	Slug    *string
	Content *string
}

// Update merges the supplied fields onto the stored page, re-validates
// the slug when it changes and refreshes the updatedAt timestamp.
func (s *Service) Update(id uint, input UpdateInput) (*store.Page, error) {
	page, err := s.store.GetPage(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Slug != nil {
		slug := strings.TrimSpace(*input.Slug)
		if !ValidSlug(slug) {
			return nil, ErrInvalidSlug
		}
		page.Slug = slug
	}
	if input.Title != nil {
		page.Title = *input.Title
	}
	if input.Content != nil {
		page.Content = *input.Content
	}
	page.UpdatedAt = s.clock().UTC()

	if err := s.store.UpdatePage(page); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return nil, ErrNotFound
		case errors.Is(err, store.ErrConflict):
			return nil, ErrSlugTaken
		}
		s.logger.Error("page update failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return page, nil
}

// Delete removes a page by id. Menu items and buttons that reference
// the slug are deliberately left in place; they resolve to a
// not-found target afterwards.
func (s *Service) Delete(id uint) error {
	err := s.store.DeletePage(id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
