package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/carmarket/internal/client/models"
	"github.com/dmitrijs2005/carmarket/internal/client/repositories/kv"
	"github.com/dmitrijs2005/carmarket/internal/common"
	"github.com/dmitrijs2005/carmarket/internal/logging"
)

// SettingsService reads and writes the darkMode and notificationsEnabled
// flags. Load is served from memory after the first successful read; Update
// writes the patched flags and drops the cached copy.
type SettingsService interface {
	Load(ctx context.Context) (models.Settings, error)
	Update(ctx context.Context, patch models.SettingsPatch) (models.Settings, error)
}

type settingsService struct {
	store kv.Repository
	log   logging.Logger

	mu     sync.Mutex
	cached *models.Settings
}

func NewSettingsService(store kv.Repository, log logging.Logger) SettingsService {
	return &settingsService{store: store, log: log}
}

// Load returns the stored flags. On a store failure the defaults are returned
// together with the error.
func (s *settingsService) Load(ctx context.Context) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *settingsService) load(ctx context.Context) (models.Settings, error) {
	if s.cached != nil {
		return *s.cached, nil
	}

	st := models.DefaultSettings()
	if err := s.readFlag(ctx, models.KeyDarkMode, &st.DarkMode); err != nil {
		return models.DefaultSettings(), err
	}
	if err := s.readFlag(ctx, models.KeyNotificationsEnabled, &st.NotificationsEnabled); err != nil {
		return models.DefaultSettings(), err
	}

	s.cached = &st
	return st, nil
}

// readFlag leaves dst untouched when key is absent or not a JSON boolean.
func (s *settingsService) readFlag(ctx context.Context, key string, dst *bool) error {
	raw, err := s.store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	if raw == nil {
		return nil
	}

	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		s.log.Warn(ctx, "ignoring unparseable setting", "key", key, logging.Err(err))
		return nil
	}
	*dst = v
	return nil
}

func (s *settingsService) Update(ctx context.Context, patch models.SettingsPatch) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx)
	if err != nil {
		return current, err
	}
	if patch.Empty() {
		return current, nil
	}

	values := make(map[string][]byte, 2)
	if patch.DarkMode != nil {
		values[models.KeyDarkMode] = encodeBool(*patch.DarkMode)
	}
	if patch.NotificationsEnabled != nil {
		values[models.KeyNotificationsEnabled] = encodeBool(*patch.NotificationsEnabled)
	}

	s.cached = nil
	if err := s.store.SetMany(ctx, values); err != nil {
		return current, fmt.Errorf("%w: %w", common.ErrStorage, err)
	}

	updated := patch.Apply(current)
	s.log.Debug(ctx, "settings updated", "dark_mode", updated.DarkMode, "notifications", updated.NotificationsEnabled)
	return updated, nil
}

func encodeBool(v bool) []byte {
	if v {
		return []byte("true")
	}
	return []byte("false")
}
