// Copyright 2025 Weft Data
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cache is a file-based TTL cache for API responses.
//
// Entries are JSON files under the XDG cache directory, keyed by a SHA-256
// of the logical key. Expired entries read as misses and are removed on
// access. The cache is advisory: any read or decode problem is a miss, the
// caller refetches.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// entry is the on-disk envelope around a cached payload.
type entry struct {
	ExpiresAt time.Time       `json:"expires_at"`
	Payload   json.RawMessage `json:"payload"`
}

// Cache stores JSON payloads with a per-cache TTL.
type Cache struct {
	dir string
	ttl time.Duration

	// now is replaceable for tests.
	now func() time.Time
}

// New creates a cache rooted at dir with the given TTL.
func New(dir string, ttl time.Duration) *Cache {
	return &Cache{dir: dir, ttl: ttl, now: time.Now}
}

// Get loads a fresh entry into out. The second return is false on any miss:
// absent, expired, or unreadable.
func (c *Cache) Get(key string, out interface{}) (bool, error) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		// Corrupt entry: drop it and treat as a miss.
		os.Remove(path)
		return false, nil
	}

	if c.now().After(e.ExpiresAt) {
		os.Remove(path)
		return false, nil
	}

	if err := json.Unmarshal(e.Payload, out); err != nil {
		os.Remove(path)
		return false, nil
	}
	return true, nil
}

// Put stores a payload under the key, stamped with the cache TTL.
func (c *Cache) Put(key string, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	data, err := json.Marshal(entry{
		ExpiresAt: c.now().Add(c.ttl),
		Payload:   raw,
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(c.dir, 0700); err != nil {
		return err
	}
	return os.WriteFile(c.path(key), data, 0600)
}

// Invalidate removes an entry. Removing an absent entry is not an error.
func (c *Cache) Invalidate(key string) error {
	err := os.Remove(c.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Clear removes every entry in the cache directory.
func (c *Cache) Clear() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) != ".json" {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cache) path(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:])+".json")
}
