package autoconfig_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeepprabhakula/jwtabstract/pkg/autoconfig"
	"github.com/sandeepprabhakula/jwtabstract/pkg/config"
	"github.com/sandeepprabhakula/jwtabstract/pkg/jwt"
	"github.com/sandeepprabhakula/jwtabstract/pkg/logger"
)

var secret = base64.RawURLEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("disabled", func(t *testing.T) {
		svc, err := autoconfig.New(autoconfig.Config{Secret: secret}, nil)
		assert.ErrorIs(t, err, autoconfig.ErrDisabled)
		assert.Nil(t, svc)
	})

	t.Run("missing secret", func(t *testing.T) {
		svc, err := autoconfig.New(autoconfig.Config{Enabled: true}, nil)
		assert.ErrorIs(t, err, autoconfig.ErrMissingSecret)
		assert.Nil(t, svc)
	})

	t.Run("weak secret", func(t *testing.T) {
		weak := base64.RawURLEncoding.EncodeToString([]byte("short"))
		svc, err := autoconfig.New(autoconfig.Config{Enabled: true, Secret: weak}, nil)
		assert.ErrorIs(t, err, jwt.ErrWeakSecret)
		assert.Nil(t, svc)
	})

	t.Run("enabled", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))

		cfg := autoconfig.Config{Enabled: true, Secret: secret, DefaultExpiration: 5 * time.Minute, TokenIDs: true}
		svc, err := autoconfig.New(cfg, log)
		require.NoError(t, err)
		require.NotNil(t, svc)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "jwt abstract autoconfiguration done", entry["msg"])
		assert.Equal(t, "jwt", entry["component"])

		token, err := svc.Generate(cfg.Secret, "alice", nil, 0)
		require.NoError(t, err)
		claims, err := svc.ExtractAllClaims(cfg.Secret, token)
		require.NoError(t, err)
		assert.Equal(t, 5*time.Minute, claims.ExpiresAt().Sub(claims.IssuedAt()))
		assert.NotEmpty(t, claims.ID())
	})
}

// unsetenv removes keys for the duration of the test.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("enabled with secret", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("JWT_ABSTRACT_ENABLED", "true")
		t.Setenv("JWT_ABSTRACT_SECRET", secret)
		t.Setenv("JWT_ABSTRACT_DEFAULT_EXPIRATION", "10m")
		t.Setenv("JWT_ABSTRACT_TOKEN_IDS", "false")

		svc, cfg, err := autoconfig.FromEnv(nil)
		require.NoError(t, err)
		require.NotNil(t, svc)
		assert.Equal(t, 10*time.Minute, cfg.DefaultExpiration)

		token, err := svc.Generate(cfg.Secret, "bob", map[string]any{"role": "user"}, 0)
		require.NoError(t, err)
		sub, err := svc.ExtractSubject(cfg.Secret, token)
		require.NoError(t, err)
		assert.Equal(t, "bob", sub)
	})

	t.Run("defaults leave the feature off", func(t *testing.T) {
		config.ResetCache()
		unsetenv(t, "JWT_ABSTRACT_ENABLED", "JWT_ABSTRACT_SECRET",
			"JWT_ABSTRACT_DEFAULT_EXPIRATION", "JWT_ABSTRACT_TOKEN_IDS")

		svc, cfg, err := autoconfig.FromEnv(nil)
		assert.ErrorIs(t, err, autoconfig.ErrDisabled)
		assert.Nil(t, svc)
		assert.Equal(t, 30*time.Minute, cfg.DefaultExpiration)
	})

	t.Run("invalid duration", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("JWT_ABSTRACT_ENABLED", "true")
		t.Setenv("JWT_ABSTRACT_DEFAULT_EXPIRATION", "soon")

		_, _, err := autoconfig.FromEnv(nil)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}
