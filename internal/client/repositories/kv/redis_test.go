package kv

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*RedisRepository, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	r, err := OpenRedis(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r, mr
}

func TestRedis_SetAndGet(t *testing.T) {
	r, mr := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "@cars_list", []byte(`[{"id":1}]`)))

	v, err := r.Get(ctx, "@cars_list")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":1}]`), v)

	raw, err := mr.Get("@cars_list")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, raw)
	assert.Zero(t, mr.TTL("@cars_list"), "values must not expire")
}

func TestRedis_Get_NotExists_ReturnsNilNil(t *testing.T) {
	r, _ := setupRedis(t)

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestRedis_Get_EmptyValueIsNotAbsent(t *testing.T) {
	r, _ := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "@cars_list", []byte{}))

	v, err := r.Get(ctx, "@cars_list")
	require.NoError(t, err)
	assert.NotNil(t, v)
	assert.Empty(t, v)
}

func TestRedis_SetMany(t *testing.T) {
	r, mr := setupRedis(t)

	require.NoError(t, r.SetMany(context.Background(), map[string][]byte{
		"darkMode":             []byte("true"),
		"notificationsEnabled": []byte("false"),
	}))

	mr.CheckGet(t, "darkMode", "true")
	mr.CheckGet(t, "notificationsEnabled", "false")
	require.NoError(t, r.SetMany(context.Background(), nil))
}

func TestRedis_ServerDown_ErrorsWrapped(t *testing.T) {
	r, mr := setupRedis(t)
	mr.Close()
	ctx := context.Background()

	_, err := r.Get(ctx, "@users")
	require.ErrorContains(t, err, "failed to get kv[@users]")

	err = r.Set(ctx, "@users", []byte("[]"))
	require.ErrorContains(t, err, "failed to set kv[@users]")
}

func TestOpenRedis_Errors(t *testing.T) {
	_, err := OpenRedis(context.Background(), "not-a-url")
	require.ErrorContains(t, err, "failed to parse redis url")

	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	_, err = OpenRedis(context.Background(), "redis://"+addr+"/0")
	require.ErrorContains(t, err, "failed to ping redis")
}
