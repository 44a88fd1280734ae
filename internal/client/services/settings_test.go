package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/carmarket/internal/client/models"
	"github.com/dmitrijs2005/carmarket/internal/common"
	"github.com/dmitrijs2005/carmarket/internal/logging"
)

func boolPtr(v bool) *bool { return &v }

func TestSettings_DefaultsWhenNeverStored(t *testing.T) {
	store, _ := setupStore(t)
	s := NewSettingsService(store, logging.Discard())

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Settings{DarkMode: false, NotificationsEnabled: true}, got)
}

func TestSettings_LoadIsCached(t *testing.T) {
	store, _ := setupStore(t)
	cs := &countingStore{Repository: store}
	s := NewSettingsService(cs, logging.Discard())
	ctx := context.Background()

	_, err := s.Load(ctx)
	require.NoError(t, err)
	_, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, cs.gets)
}

func TestSettings_UpdateWritesOnlyPatchedKeys(t *testing.T) {
	store, _ := setupStore(t)
	cs := &countingStore{Repository: store}
	s := NewSettingsService(cs, logging.Discard())
	ctx := context.Background()

	got, err := s.Update(ctx, models.SettingsPatch{DarkMode: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, models.Settings{DarkMode: true, NotificationsEnabled: true}, got)

	require.Len(t, cs.setMany, 1)
	assert.Equal(t, map[string][]byte{models.KeyDarkMode: []byte("true")}, cs.setMany[0])

	raw, err := store.Get(ctx, models.KeyNotificationsEnabled)
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestSettings_UpdateInvalidatesCache(t *testing.T) {
	store, _ := setupStore(t)
	cs := &countingStore{Repository: store}
	s := NewSettingsService(cs, logging.Discard())
	ctx := context.Background()

	_, err := s.Load(ctx)
	require.NoError(t, err)
	_, err = s.Update(ctx, models.SettingsPatch{NotificationsEnabled: boolPtr(false)})
	require.NoError(t, err)
	gets := cs.gets

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Settings{DarkMode: false, NotificationsEnabled: false}, got)
	assert.Equal(t, gets+2, cs.gets, "load after update must hit the store")

	raw, err := store.Get(ctx, models.KeyNotificationsEnabled)
	require.NoError(t, err)
	assert.Equal(t, []byte("false"), raw)
}

func TestSettings_EmptyPatchWritesNothing(t *testing.T) {
	store, _ := setupStore(t)
	cs := &countingStore{Repository: store}
	s := NewSettingsService(cs, logging.Discard())

	_, err := s.Update(context.Background(), models.SettingsPatch{})
	require.NoError(t, err)
	assert.Empty(t, cs.setMany)
}

func TestSettings_UnparseableFallsBackToDefault(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, models.KeyDarkMode, []byte("yes please")))
	require.NoError(t, store.Set(ctx, models.KeyNotificationsEnabled, []byte("false")))

	got, err := NewSettingsService(store, logging.Discard()).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Settings{DarkMode: false, NotificationsEnabled: false}, got)
}

func TestSettings_StorageFailure(t *testing.T) {
	store, db := setupStore(t)
	s := NewSettingsService(store, logging.Discard())
	require.NoError(t, db.Close())
	ctx := context.Background()

	got, err := s.Load(ctx)
	require.ErrorIs(t, err, common.ErrStorage)
	assert.Equal(t, models.DefaultSettings(), got)

	_, err = s.Update(ctx, models.SettingsPatch{DarkMode: boolPtr(true)})
	require.ErrorIs(t, err, common.ErrStorage)
}
