package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestPutGetRoundTrip(t *testing.T) {
	c := New(t.TempDir(), time.Minute)

	require.NoError(t, c.Put("connectors", payload{Name: "snowflake", Count: 3}))

	var got payload
	hit, err := c.Get("connectors", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, payload{Name: "snowflake", Count: 3}, got)
}

func TestGetMissOnAbsentKey(t *testing.T) {
	c := New(t.TempDir(), time.Minute)

	var got payload
	hit, err := c.Get("nothing", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestExpiredEntryIsMissAndRemoved(t *testing.T) {
	dir := t.TempDir()
	c := New(dir, time.Minute)

	now := time.Now()
	c.now = func() time.Time { return now }
	require.NoError(t, c.Put("key", payload{Name: "stale"}))

	// Advance past the TTL.
	c.now = func() time.Time { return now.Add(2 * time.Minute) }

	var got payload
	hit, err := c.Get("key", &got)
	require.NoError(t, err)
	assert.False(t, hit)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "expired entry should be removed on access")
}

func TestCorruptEntryIsMiss(t *testing.T) {
	dir := t.TempDir()
	c := New(dir, time.Minute)

	require.NoError(t, c.Put("key", payload{Name: "x"}))

	// Overwrite the entry file with junk.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, entries[0].Name()), []byte("{broken"), 0600))

	var got payload
	hit, err := c.Get("key", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestInvalidateAndClear(t *testing.T) {
	dir := t.TempDir()
	c := New(dir, time.Minute)

	require.NoError(t, c.Put("a", payload{Name: "a"}))
	require.NoError(t, c.Put("b", payload{Name: "b"}))

	require.NoError(t, c.Invalidate("a"))
	require.NoError(t, c.Invalidate("a")) // already gone, still fine

	var got payload
	hit, err := c.Get("a", &got)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.Clear())
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
