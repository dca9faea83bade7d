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

// Package token resolves the platform bearer token and inspects its claims.
package token

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/weftdata/weft/internal/config"
)

// Source describes where the active token came from.
type Source string

const (
	SourceFlag   Source = "flag"
	SourceEnv    Source = "environment"
	SourceConfig Source = "config file"
	SourceNone   Source = "none"
)

// Resolve picks the bearer token for API calls: an explicit --token flag
// wins, then WEFT_API_TOKEN (already folded into cfg.Token by config.Load
// when set), then the config file. Returns the token and its source.
func Resolve(flagToken string, cfg *config.Config) (string, Source) {
	if flagToken != "" {
		return flagToken, SourceFlag
	}
	if cfg == nil || cfg.Token == "" {
		return "", SourceNone
	}
	// config.Load overlays the environment last, so distinguish the two
	// for status reporting.
	if fromEnv(cfg.Token) {
		return cfg.Token, SourceEnv
	}
	return cfg.Token, SourceConfig
}

// Claims are the platform JWT claims the CLI reports on.
type Claims struct {
	jwt.RegisteredClaims
	// Org identifies the organization the token is scoped to.
	Org string `json:"org,omitempty"`
	// Scopes defines what the token can access.
	Scopes []string `json:"scopes,omitempty"`
}

// Inspect decodes the claims of a platform token without verifying its
// signature. The CLI has no signing key; verification happens server-side.
// Opaque (non-JWT) tokens return an error and callers fall back to
// reporting presence only.
func Inspect(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token is empty")
	}

	parser := jwt.NewParser()
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return claims, nil
}

// Expired reports whether the claims carry an exp in the past.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return c.ExpiresAt.Time.Before(now)
}

func fromEnv(token string) bool {
	// The env overlay wins in config.Load, so matching values mean env.
	return token != "" && os.Getenv("WEFT_API_TOKEN") == token
}
