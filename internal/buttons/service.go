// Package buttons manages page-scoped custom buttons and keeps each
// button's derived URL consistent with its type and target.
package buttons

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/meusite/cms/internal/store"
	"go.uber.org/zap"
)

var (
	// ErrNotFound indicates that no button matches the given id.
	ErrNotFound = errors.New("buttons: not found")
	// ErrInvalidType indicates an unknown button type.
	ErrInvalidType = errors.New("buttons: invalid type")
	// ErrMissingTarget indicates the target field required by the type
	// is absent.
	ErrMissingTarget = errors.New("buttons: missing target for type")
	// ErrInvalidStyle indicates an unknown visual style.
	ErrInvalidStyle = errors.New("buttons: invalid style")
	// ErrInvalidSize indicates an unknown size.
	ErrInvalidSize = errors.New("buttons: invalid size")
)

const (
	// DefaultStyle is applied when the caller supplies none.
	DefaultStyle = "primary"
	// DefaultSize is applied when the caller supplies none.
	DefaultSize = "default"
)

var (
	validStyles = map[string]bool{"primary": true, "secondary": true, "outline": true, "ghost": true}
	validSizes  = map[string]bool{"default": true, "sm": true, "lg": true}
)

// target is the normalized exactly-one-of tuple behind a button.
type target struct {
	internalLink *string
	externalURL  *string
	email        *string
}

// DeriveURL computes the fully resolved navigation URL for a button
// type and its target value: internal slugs become rooted paths,
// external URLs pass through verbatim, iframe targets become the
// embedded-viewer route carrying the encoded URL and email targets
// become mailto links.
func DeriveURL(buttonType store.ButtonType, targetValue string) string {
	switch buttonType {
	case store.ButtonTypeInternal:
		return "/" + targetValue
	case store.ButtonTypeExternal:
		return targetValue
	case store.ButtonTypeIframe:
		return "/iframe?url=" + url.QueryEscape(targetValue)
	case store.ButtonTypeEmail:
		return "mailto:" + targetValue
	default:
		return ""
	}
}

// ServiceConfig describes the dependencies of the button resolver.
type ServiceConfig struct {
	Store  store.Store
	Clock  func() time.Time
	Logger *zap.Logger
}

// Service mediates button reads and mutations against the entity
// store.
type Service struct {
	store  store.Store
	clock  func() time.Time
	logger *zap.Logger
}

// NewService constructs the button resolver.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("buttons: store is required")
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

// List returns every stored button.
func (s *Service) List() ([]store.CustomButton, error) {
	return s.store.ListCustomButtons()
}

// ListForPage returns the buttons bound to one page slug. A slug with
// no buttons, including a dangling slug whose page was deleted,
// yields an empty list.
func (s *Service) ListForPage(pageSlug string) ([]store.CustomButton, error) {
	return s.store.ListCustomButtonsByPage(pageSlug)
}

// Get resolves one button by id.
func (s *Service) Get(id uint) (*store.CustomButton, error) {
	button, err := s.store.GetCustomButton(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	return button, err
}

// CreateInput carries the caller-supplied fields of a new button. The
// URL is never caller-supplied; it is derived from Type and the
// matching target field.
type CreateInput struct {
	Text         string
	Type         store.ButtonType
	InternalLink *string
	ExternalURL  *string
	Email        *string
	PageSlug     string
	Style        string
	Size         string
	OpenInNewTab *bool
}

// Create normalizes the target tuple, derives the URL, applies the
// style/size defaults and stamps createdAt.
func (s *Service) Create(input CreateInput) (*store.CustomButton, error) {
	normalized, err := normalizeTarget(input.Type, input.InternalLink, input.ExternalURL, input.Email)
	if err != nil {
		return nil, err
	}
	style, size, err := normalizeAppearance(input.Style, input.Size)
	if err != nil {
		return nil, err
	}

	openInNewTab := true
	if input.OpenInNewTab != nil {
		openInNewTab = *input.OpenInNewTab
	}

	button := store.CustomButton{
		Text:         input.Text,
		Type:         input.Type,
		URL:          DeriveURL(input.Type, targetValue(input.Type, normalized)),
		InternalLink: normalized.internalLink,
		ExternalURL:  normalized.externalURL,
		Email:        normalized.email,
		PageSlug:     input.PageSlug,
		Style:        style,
		Size:         size,
		OpenInNewTab: openInNewTab,
		CreatedAt:    s.clock().UTC(),
	}
	if err := s.store.CreateCustomButton(&button); err != nil {
		s.logger.Error("button create failed", zap.String("page_slug", input.PageSlug), zap.Error(err))
		return nil, err
	}
	return &button, nil
}

// UpdateInput carries a partial button mutation; nil fields are left
// unchanged.
type UpdateInput struct {
	Text         *string
	Type         *store.ButtonType
	InternalLink *string
	ExternalURL  *string
	Email        *string
	PageSlug     *string
	Style        *string
	Size         *string
	OpenInNewTab *bool
}

// Update merges the supplied fields onto the stored button. Whenever
// the type or a target field changes, the target tuple is
// re-normalized and the URL is re-derived so it never goes stale.
func (s *Service) Update(id uint, input UpdateInput) (*store.CustomButton, error) {
	button, err := s.store.GetCustomButton(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Text != nil {
		button.Text = *input.Text
	}
	if input.PageSlug != nil {
		button.PageSlug = *input.PageSlug
	}
	if input.OpenInNewTab != nil {
		button.OpenInNewTab = *input.OpenInNewTab
	}
	if input.Style != nil || input.Size != nil {
		style := button.Style
		if input.Style != nil {
			style = *input.Style
		}
		size := button.Size
		if input.Size != nil {
			size = *input.Size
		}
		if button.Style, button.Size, err = normalizeAppearance(style, size); err != nil {
			return nil, err
		}
	}

	if input.Type != nil || input.InternalLink != nil || input.ExternalURL != nil || input.Email != nil {
		buttonType := button.Type
		if input.Type != nil {
			buttonType = *input.Type
		}
		internalLink := button.InternalLink
		if input.InternalLink != nil {
			internalLink = input.InternalLink
		}
		externalURL := button.ExternalURL
		if input.ExternalURL != nil {
			externalURL = input.ExternalURL
		}
		email := button.Email
		if input.Email != nil {
			email = input.Email
		}

		normalized, err := normalizeTarget(buttonType, internalLink, externalURL, email)
		if err != nil {
			return nil, err
		}
		button.Type = buttonType
		button.InternalLink = normalized.internalLink
		button.ExternalURL = normalized.externalURL
		button.Email = normalized.email
		button.URL = DeriveURL(buttonType, targetValue(buttonType, normalized))
	}

	if err := s.store.UpdateCustomButton(button); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Error("button update failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return button, nil
}

// Delete removes a button by id.
func (s *Service) Delete(id uint) error {
	err := s.store.DeleteCustomButton(id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func normalizeTarget(buttonType store.ButtonType, internalLink, externalURL, email *string) (target, error) {
	switch buttonType {
	case store.ButtonTypeInternal:
		if internalLink == nil || *internalLink == "" {
			return target{}, ErrMissingTarget
		}
		return target{internalLink: internalLink}, nil
	case store.ButtonTypeExternal, store.ButtonTypeIframe:
		if externalURL == nil || *externalURL == "" {
			return target{}, ErrMissingTarget
		}
		return target{externalURL: externalURL}, nil
	case store.ButtonTypeEmail:
		if email == nil || *email == "" {
			return target{}, ErrMissingTarget
		}
		return target{email: email}, nil
	default:
		return target{}, ErrInvalidType
	}
}

func targetValue(buttonType store.ButtonType, normalized target) string {
	switch buttonType {
	case store.ButtonTypeInternal:
		return *normalized.internalLink
	case store.ButtonTypeExternal, store.ButtonTypeIframe:
		return *normalized.externalURL
	case store.ButtonTypeEmail:
		return *normalized.email
	default:
		return ""
	}
}

func normalizeAppearance(style, size string) (string, string, error) {
	if style == "" {
		style = DefaultStyle
	}
	if size == "" {
		size = DefaultSize
	}
	if !validStyles[style] {
		return "", "", ErrInvalidStyle
	}
	if !validSizes[size] {
		return "", "", ErrInvalidSize
	}
	return style, size, nil
}
