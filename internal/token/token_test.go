package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftdata/weft/internal/config"
)

func signedToken(t *testing.T, claims *Claims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		flagToken  string
		cfg        *config.Config
		wantToken  string
		wantSource Source
	}{
		{
			name:       "flag wins",
			flagToken:  "flag-token",
			cfg:        &config.Config{Token: "file-token"},
			wantToken:  "flag-token",
			wantSource: SourceFlag,
		},
		{
			name:       "config file token",
			cfg:        &config.Config{Token: "file-token"},
			wantToken:  "file-token",
			wantSource: SourceConfig,
		},
		{
			name:       "no token anywhere",
			cfg:        &config.Config{},
			wantToken:  "",
			wantSource: SourceNone,
		},
		{
			name:       "nil config",
			cfg:        nil,
			wantToken:  "",
			wantSource: SourceNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, source := Resolve(tt.flagToken, tt.cfg)
			assert.Equal(t, tt.wantToken, got)
			assert.Equal(t, tt.wantSource, source)
		})
	}
}

func TestResolveReportsEnvSource(t *testing.T) {
	t.Setenv("WEFT_API_TOKEN", "env-token")

	got, source := Resolve("", &config.Config{Token: "env-token"})
	assert.Equal(t, "env-token", got)
	assert.Equal(t, SourceEnv, source)
}

func TestInspect(t *testing.T) {
	signed := signedToken(t, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Org:    "acme",
		Scopes: []string{"pipelines:read"},
	})

	claims, err := Inspect(signed)
	require.NoError(t, err)

	assert.Equal(t, "user-42", claims.Subject)
	assert.Equal(t, "acme", claims.Org)
	assert.Equal(t, []string{"pipelines:read"}, claims.Scopes)
	assert.False(t, claims.Expired(time.Now()))
}

func TestInspectExpired(t *testing.T) {
	signed := signedToken(t, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	claims, err := Inspect(signed)
	require.NoError(t, err)
	assert.True(t, claims.Expired(time.Now()))
}

func TestInspectRejectsOpaqueTokens(t *testing.T) {
	_, err := Inspect("wft_live_8f3ab2")
	assert.Error(t, err)

	_, err = Inspect("")
	assert.Error(t, err)
}
