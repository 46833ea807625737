package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no sources returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_Defaults verifies that withDefaults alone yields the documented
// default values.
func TestBuild_Defaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultAdapterAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRefreshTimeout, cfg.Adapter.RefreshTimeout)
	assert.Equal(t, DefaultPollInterval, cfg.Workers.PollInterval)
	assert.Equal(t, DefaultTokenIssuer, cfg.Auth.TokenIssuer)
}

// TestBuild_Precedence verifies that flags override env, env overrides JSON
// and JSON overrides defaults, field by field.
func TestBuild_Precedence(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.json = &StructuredConfig{
		Adapter: Adapter{HTTPAddress: "http://json:1/api", RefreshTimeout: 3 * time.Second},
		Workers: Workers{PollInterval: time.Minute},
	}
	b.env = &StructuredConfig{
		Adapter: Adapter{HTTPAddress: "http://env:2/api"},
	}
	b.flags = &StructuredConfig{
		Workers: Workers{PollInterval: 5 * time.Second},
	}

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "http://env:2/api", cfg.Adapter.HTTPAddress, "env beats json")
	assert.Equal(t, 3*time.Second, cfg.Adapter.RefreshTimeout, "json beats defaults")
	assert.Equal(t, 5*time.Second, cfg.Workers.PollInterval, "flags beat json")
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout, "defaults survive")
}

// TestBuild_NegativeRateLimit verifies shared validation.
func TestBuild_NegativeRateLimit(t *testing.T) {
	b := newConfigBuilder()
	b.flags = &StructuredConfig{Server: Server{RateLimit: -1}}

	_, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPath verifies that withJSON is a no-op without a path.
func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder()
	b.env = &StructuredConfig{}

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Nil(t, b.json)
}

// TestWithJSON_PathFromFlags verifies that the JSON path given via flags is
// loaded and merged.
func TestWithJSON_PathFromFlags(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"http_address": "http://from-json/api", "refresh_timeout": "7s"},
	})

	b := newConfigBuilder().withDefaults()
	b.flags = &StructuredConfig{JSONFilePath: path}

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "http://from-json/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RefreshTimeout)
}

// TestWithJSON_MissingFile verifies that an unreadable JSON file surfaces as
// a builder error.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.env = &StructuredConfig{JSONFilePath: "/definitely/not/here.json"}

	_, err := b.withJSON().build()
	require.Error(t, err)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_UnknownFlag verifies that unknown flags are reported.
func TestWithFlags_UnknownFlag(t *testing.T) {
	_, err := newConfigBuilder().withFlags([]string{"-nope"}).build()
	require.Error(t, err)
}

// TestWithFlags_Command verifies that positional arguments survive the merge.
func TestWithFlags_Command(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().withFlags([]string{"-email", "a@b.c", "export", "12"}).build()
	require.NoError(t, err)

	clientCfg, err := newClientConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"export", "12"}, clientCfg.Command)
	assert.Equal(t, "a@b.c", clientCfg.Account.Email)
}

// ── role views ────────────────────────────────────────────────────────────────

func TestNewClientConfig_FromDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	clientCfg, err := newClientConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, DefaultAdapterAddress, clientCfg.Adapter.HTTPAddress)
	assert.Empty(t, clientCfg.Storage.DB.DSN)
}

func TestNewClientConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "memory dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = ":memory:" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty address",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.HTTPAddress = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero refresh timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.RefreshTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero poll interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.PollInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			_, err := newClientConfig(cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewServerConfig_RequiresSignKey(t *testing.T) {
	_, err := newServerConfig(defaultConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

func TestNewServerConfig_Success(t *testing.T) {
	cfg := defaultConfig()
	cfg.Auth.TokenSignKey = "secret"
	cfg.Storage.Cache.RedisAddress = "localhost:6379"

	serverCfg, err := newServerConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, DefaultServerAddress, serverCfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:6379", serverCfg.Cache.RedisAddress)
	assert.Equal(t, DefaultAccessTokenDuration, serverCfg.Auth.AccessTokenDuration)
}

func TestNewServerConfig_RefreshShorterThanAccess(t *testing.T) {
	cfg := defaultConfig()
	cfg.Auth.TokenSignKey = "secret"
	cfg.Auth.RefreshTokenDuration = time.Minute
	cfg.Auth.AccessTokenDuration = time.Hour

	_, err := newServerConfig(cfg)
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}
