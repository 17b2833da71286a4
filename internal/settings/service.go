// Package settings stores small named configuration blobs with
// upsert-by-name semantics.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/meusite/cms/internal/store"
	"go.uber.org/zap"
)

var (
	// ErrNotFound indicates that no setting carries the given name.
	ErrNotFound = errors.New("settings: not found")
	// ErrInvalidValue indicates the supplied value is not valid JSON.
	ErrInvalidValue = errors.New("settings: value is not valid JSON")
)

// ServiceConfig describes the dependencies of the settings service.
type ServiceConfig struct {
	Store  store.Store
	Logger *zap.Logger
}

// Service reads and upserts named settings.
type Service struct {
	store  store.Store
	logger *zap.Logger
}

// NewService constructs the settings service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("settings: store is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: cfg.Store, logger: logger}, nil
}

// Get resolves one setting by its unique name.
func (s *Service) Get(name string) (*store.SiteSetting, error) {
	setting, err := s.store.GetSetting(name)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	return setting, err
}

// Save creates the setting when the name is new and overwrites its
// value otherwise. The value must be a valid JSON document.
func (s *Service) Save(name string, value json.RawMessage) (*store.SiteSetting, error) {
	if len(value) == 0 || !json.Valid(value) {
		return nil, ErrInvalidValue
	}

	setting := store.SiteSetting{Name: name, ValueJSON: string(value)}
	if err := s.store.SaveSetting(&setting); err != nil {
		s.logger.Error("setting save failed", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return &setting, nil
}
