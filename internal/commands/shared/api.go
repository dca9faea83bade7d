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

package shared

import (
	"path/filepath"
	"time"

	"github.com/weftdata/weft/internal/api"
	"github.com/weftdata/weft/internal/cache"
	"github.com/weftdata/weft/internal/config"
	"github.com/weftdata/weft/internal/history"
	"github.com/weftdata/weft/internal/token"
)

// NewAPIClient builds the API client from the effective configuration.
// Returns the loaded config alongside so commands can reuse defaults like
// the project scope.
func NewAPIClient() (*api.Client, *config.Config, error) {
	cfg, err := config.Load(GetConfigPath())
	if err != nil {
		return nil, nil, err
	}

	bearer, _ := token.Resolve("", cfg)

	client, err := api.New(api.Config{
		BaseURL:   cfg.APIURL,
		Token:     bearer,
		Timeout:   cfg.Timeout,
		UserAgent: "weft-cli/" + version,
	})
	if err != nil {
		return nil, nil, err
	}
	return client, cfg, nil
}

// NewResponseCache opens the response cache with the configured TTL.
func NewResponseCache(ttl time.Duration) (*cache.Cache, error) {
	dir, err := config.CacheDir()
	if err != nil {
		return nil, err
	}
	return cache.New(filepath.Join(dir, "responses"), ttl), nil
}

// OpenHistory opens the local query history database.
func OpenHistory() (*history.Store, error) {
	dir, err := config.DataDir()
	if err != nil {
		return nil, err
	}
	return history.Open(filepath.Join(dir, "history.db"))
}
