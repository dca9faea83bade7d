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

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	wefterrors "github.com/weftdata/weft/pkg/errors"
)

// Default values applied when the config file leaves fields unset.
const (
	DefaultAPIURL   = "https://api.weftdata.io"
	DefaultTimeout  = 30 * time.Second
	DefaultCacheTTL = 10 * time.Minute
)

// Config represents the weft CLI configuration.
type Config struct {
	// APIURL is the base URL of the platform API.
	// Environment: WEFT_API_URL
	APIURL string `yaml:"api_url,omitempty"`

	// Token is the bearer token for API authentication. Most users should
	// prefer the WEFT_API_TOKEN environment variable over a token on disk.
	Token string `yaml:"token,omitempty"`

	// Timeout bounds a single API request.
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// CacheTTL is how long cached API responses stay fresh.
	CacheTTL time.Duration `yaml:"cache_ttl,omitempty"`

	// DefaultProject scopes list commands when --project is not given.
	DefaultProject string `yaml:"default_project,omitempty"`
}

// Load reads the configuration from the given path, or the default XDG path
// when path is empty. A missing file yields the default configuration;
// every setting has a usable default or an environment override.
func Load(path string) (*Config, error) {
	cfg := &Config{
		APIURL:   DefaultAPIURL,
		Timeout:  DefaultTimeout,
		CacheTTL: DefaultCacheTTL,
	}

	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return nil, &wefterrors.ConfigError{Reason: "resolving config path", Cause: err}
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, &wefterrors.ConfigError{Reason: "reading config file", Cause: err}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &wefterrors.ConfigError{Reason: "parsing config file", Cause: err}
	}

	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}

	cfg.applyEnv()
	return cfg, nil
}

// UnmarshalYAML decodes durations from human-readable strings ("30s",
// "10m"), which the yaml package does not do for time.Duration natively.
// Unset fields keep whatever value the target already holds.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		APIURL         string `yaml:"api_url"`
		Token          string `yaml:"token"`
		Timeout        string `yaml:"timeout"`
		CacheTTL       string `yaml:"cache_ttl"`
		DefaultProject string `yaml:"default_project"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if raw.APIURL != "" {
		c.APIURL = raw.APIURL
	}
	if raw.Token != "" {
		c.Token = raw.Token
	}
	if raw.DefaultProject != "" {
		c.DefaultProject = raw.DefaultProject
	}
	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return fmt.Errorf("timeout: %w", err)
		}
		c.Timeout = d
	}
	if raw.CacheTTL != "" {
		d, err := time.ParseDuration(raw.CacheTTL)
		if err != nil {
			return fmt.Errorf("cache_ttl: %w", err)
		}
		c.CacheTTL = d
	}
	return nil
}

// applyEnv overlays environment variables onto the configuration.
// Environment always wins over the file.
func (c *Config) applyEnv() {
	if url := os.Getenv("WEFT_API_URL"); url != "" {
		c.APIURL = url
	}
	if token := os.Getenv("WEFT_API_TOKEN"); token != "" {
		c.Token = token
	}
	if project := os.Getenv("WEFT_PROJECT"); project != "" {
		c.DefaultProject = project
	}
}
