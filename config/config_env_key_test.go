package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"oauth": map[string]any{
			"github": map[string]any{
				"clientId": "",
			},
		},
		"secretKey": map[string]any{
			"token": "",
		},
		"auth": map[string]any{
			"issueTokenOnOAuth": false,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "OAUTH_GITHUB_CLIENTID", want: "oauth.github.clientId"},
		{envKey: "SECRETKEY_TOKEN", want: "secretKey.token"},
		{envKey: "AUTH_ISSUETOKENONOAUTH", want: "auth.issueTokenOnOAuth"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

const testConfigYAML = `
env:
  env: test
  serviceName: survey
  log:
    level: debug
http:
  port: 8080
domain: survey.example.com
secretKey:
  token: file-token-secret
  session: file-session-secret
auth:
  bcryptCost: 4
  tokenTTL: 2h
oauth:
  github:
    clientId: gh-id
    clientSecret: gh-secret
`

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("SECRETKEY_TOKEN", "env-token-secret")
	t.Setenv("OAUTH_GITHUB_CLIENTID", "env-gh-id")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)
	require.NoError(t, cfg.normalize())

	assert.Equal(t, "env-token-secret", cfg.SecretKey.Token)
	assert.Equal(t, "file-session-secret", cfg.SecretKey.Session)
	assert.Equal(t, "survey.example.com", cfg.Domain)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, defaultSessionTTL, cfg.Auth.SessionTTL)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	require.NotNil(t, cfg.OAuth.GitHub)
	assert.Equal(t, "env-gh-id", cfg.OAuth.GitHub.ClientID)
	assert.True(t, cfg.OAuth.GitHub.Enabled())
	assert.False(t, cfg.OAuth.Yandex.Enabled())
	assert.Equal(t, RevocationProviderPostgres, cfg.Revocation.Provider)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.ErrorContains(t, err, "config file config.yaml not found")
}

func TestNormalize(t *testing.T) {
	t.Run("missing secrets", func(t *testing.T) {
		cfg := &Config{}
		assert.Error(t, cfg.normalize())
	})

	t.Run("redis revocation requires an address", func(t *testing.T) {
		cfg := &Config{Revocation: &RevocationConfig{Provider: RevocationProviderRedis}}
		cfg.SecretKey.Token = "t"
		cfg.SecretKey.Session = "s"
		assert.ErrorContains(t, cfg.normalize(), "redis.addr")
	})

	t.Run("unknown revocation provider", func(t *testing.T) {
		cfg := &Config{Revocation: &RevocationConfig{Provider: "memcached"}}
		cfg.SecretKey.Token = "t"
		cfg.SecretKey.Session = "s"
		assert.ErrorContains(t, cfg.normalize(), "unknown revocation provider")
	})

	t.Run("sweeper default interval", func(t *testing.T) {
		cfg := &Config{Sweeper: &SweeperConfig{Enabled: true}}
		cfg.SecretKey.Token = "t"
		cfg.SecretKey.Session = "s"
		require.NoError(t, cfg.normalize())
		assert.Equal(t, defaultSweepInterval, cfg.Sweeper.Interval)
	})
}

func TestPublicURL(t *testing.T) {
	tests := []struct {
		domain string
		path   string
		want   string
	}{
		{domain: "survey.example.com", path: "/login/github/authorized", want: "https://survey.example.com/login/github/authorized"},
		{domain: "survey.example.com/", path: "take_survey/1", want: "https://survey.example.com/take_survey/1"},
		{domain: "http://localhost:8080", path: "/login/yandex/authorized", want: "http://localhost:8080/login/yandex/authorized"},
	}

	for _, tt := range tests {
		t.Run(tt.domain+tt.path, func(t *testing.T) {
			cfg := &Config{Domain: tt.domain}
			assert.Equal(t, tt.want, cfg.PublicURL(tt.path))
		})
	}
}
