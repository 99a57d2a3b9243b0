package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisClientDisabled(t *testing.T) {
	// No URL configured: the client degrades to a no-op
	client := NewRedisClient("")

	val, err := client.Get("anything")
	require.NoError(t, err)
	assert.Empty(t, val)

	assert.NoError(t, client.Set("key", "value"))
	assert.NoError(t, client.Delete("key"))

	// Nothing was actually stored
	val, err = client.Get("key")
	require.NoError(t, err)
	assert.Empty(t, val)
}

func TestRedisClientBadURL(t *testing.T) {
	client := NewRedisClient("not a url")

	val, err := client.Get("key")
	require.NoError(t, err)
	assert.Empty(t, val)
}

func TestMainsStore(t *testing.T) {
	store := NewMainsStore(NewRedisClient(""), "draftbot:mains")

	require.NoError(t, store.Load())
	assert.Equal(t, 0, store.Count())

	_, ok := store.Get("user1")
	assert.False(t, ok)

	store.Set("user1", "Axe")
	store.Set("user2", "Riki")

	hero, ok := store.Get("user1")
	require.True(t, ok)
	assert.Equal(t, "Axe", hero)
	assert.Equal(t, 2, store.Count())

	// Overwrite
	store.Set("user1", "Lina")
	hero, _ = store.Get("user1")
	assert.Equal(t, "Lina", hero)

	store.Delete("user1")
	_, ok = store.Get("user1")
	assert.False(t, ok)
	assert.Equal(t, 1, store.Count())

	// Save against the disabled client is a no-op but must not fail
	assert.NoError(t, store.Save())
}
