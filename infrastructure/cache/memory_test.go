package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetIfAbsent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	t0 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	written, err := store.SetIfAbsent(ctx, "k", Entry{Payload: []byte("first"), WrittenAt: t0}, t0.Add(-30*time.Minute))
	require.NoError(t, err)
	assert.True(t, written)

	// dentro da janela: o primeiro escritor vence
	written, err = store.SetIfAbsent(ctx, "k", Entry{Payload: []byte("second"), WrittenAt: t0.Add(time.Minute)}, t0.Add(-29*time.Minute))
	require.NoError(t, err)
	assert.False(t, written)

	entry, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "first", string(entry.Payload))

	// entrada anterior ao corte pode ser substituída
	written, err = store.SetIfAbsent(ctx, "k", Entry{Payload: []byte("third"), WrittenAt: t0.Add(31 * time.Minute)}, t0.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, written)

	entry, _, _ = store.Get(ctx, "k")
	assert.Equal(t, "third", string(entry.Payload))
}

func TestMemoryStore_KeysDeleteAndIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	now := time.Now()

	require.NoError(t, store.Put(ctx, "a:1", Entry{Payload: []byte("x"), WrittenAt: now}))
	require.NoError(t, store.Put(ctx, "a:2", Entry{Payload: []byte("y"), WrittenAt: now}))
	require.NoError(t, store.Put(ctx, "b:1", Entry{Payload: []byte("z"), WrittenAt: now}))

	keys, err := store.Keys(ctx, "a:")
	require.NoError(t, err)
	assert.Equal(t, []string{"a:1", "a:2"}, keys)

	entry, _, _ := store.Get(ctx, "a:1")
	entry.Payload[0] = 'w'
	again, _, _ := store.Get(ctx, "a:1")
	assert.Equal(t, "x", string(again.Payload))

	require.NoError(t, store.Delete(ctx, "a:1", "b:1", "missing"))
	_, ok, _ := store.Get(ctx, "a:1")
	assert.False(t, ok)

	keys, _ = store.Keys(ctx, "")
	assert.Equal(t, []string{"a:2"}, keys)
}

func TestEntry_Age(t *testing.T) {
	now := time.Now()
	assert.Equal(t, 5*time.Minute, Entry{WrittenAt: now.Add(-5 * time.Minute)}.Age(now))
	assert.Greater(t, Entry{}.Age(now), 24*365*time.Hour)
}
