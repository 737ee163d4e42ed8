package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis implements redisCommands over a map.
type fakeRedis struct {
	data map[string]string
	ttls map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func backends(t *testing.T) map[string]Backend {
	t.Helper()
	file, err := NewFileBackend(filepath.Join(t.TempDir(), "state"))
	require.NoError(t, err)

	return map[string]Backend{
		"memory": NewMemoryBackend(),
		"file":   file,
		"redis":  newRedisBackend(newFakeRedis(), "", time.Hour),
	}
}

func TestBackends_Contract(t *testing.T) {
	ctx := context.Background()

	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := b.Get(ctx, "currentPlan")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, b.Set(ctx, "currentPlan", []byte(`{"title":"one"}`)))
			require.NoError(t, b.Set(ctx, "currentPlan", []byte(`{"title":"two"}`)))

			got, err := b.Get(ctx, "currentPlan")
			require.NoError(t, err)
			assert.JSONEq(t, `{"title":"two"}`, string(got))

			require.NoError(t, b.Delete(ctx, "currentPlan"))
			assert.ErrorIs(t, b.Delete(ctx, "currentPlan"), ErrNotFound)

			_, err = b.Get(ctx, "currentPlan")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestMemoryBackend_CopiesValues(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryBackend()

	value := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", value))
	value[0] = 'X'

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestFileBackend_Layout(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	f, err := NewFileBackend(dir)
	require.NoError(t, err)

	require.NoError(t, f.Set(ctx, "currentPlan", []byte("{}")))

	info, err := os.Stat(filepath.Join(dir, "currentPlan.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileBackend_RejectsPathKeys(t *testing.T) {
	ctx := context.Background()
	f, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "..", "../escape", `a\b`, "a/b"} {
		assert.Error(t, f.Set(ctx, key, []byte("{}")), "key %q", key)
	}
}

func TestRedisBackend_PrefixAndTTL(t *testing.T) {
	ctx := context.Background()
	fake := newFakeRedis()
	b := newRedisBackend(fake, "trips:", 30*time.Minute)

	require.NoError(t, b.Set(ctx, "currentPlan", []byte("{}")))

	assert.Contains(t, fake.data, "trips:currentPlan")
	assert.Equal(t, 30*time.Minute, fake.ttls["trips:currentPlan"])
	assert.NoError(t, b.Close())
}

func TestRedisBackend_DefaultPrefix(t *testing.T) {
	ctx := context.Background()
	fake := newFakeRedis()
	b := newRedisBackend(fake, "", 0)

	require.NoError(t, b.Set(ctx, "k", []byte("v")))
	assert.Contains(t, fake.data, DefaultRedisPrefix+"k")
}
