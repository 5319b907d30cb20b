package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"session": map[string]any{
			"cookieName":   "userapi.sid",
			"expirationMs": 1000,
		},
		"storage": map[string]any{
			"accountsUrl": "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SESSION_COOKIENAME", want: "session.cookieName"},
		{envKey: "SESSION_EXPIRATIONMS", want: "session.expirationMs"},
		{envKey: "STORAGE_ACCOUNTSURL", want: "storage.accountsUrl"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
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

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Session: &SessionConfig{Secret: "s3cret"}}

	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, defaultCookieName, cfg.Session.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL())
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "/success_login", cfg.Auth.SuccessRedirect)
	assert.Equal(t, "/unsuccess_login", cfg.Auth.FailureRedirect)
	assert.Equal(t, "mem://accounts/email", cfg.Storage.AccountsURL)
	assert.Equal(t, defaultCallTimeout, cfg.Storage.CallTimeout)
	assert.Equal(t, 300, cfg.Avatar.Size)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
}

func TestApplyDefaults_RequiresSessionSecret(t *testing.T) {
	cfg := &Config{}

	err := cfg.applyDefaults()

	assert.ErrorContains(t, err, "session secret")
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	t.Setenv("SESSION_SECRET", "from-env")
	t.Setenv("SESSION_EXPIRATIONMS", "60000")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Session.Secret)
	assert.Equal(t, time.Minute, cfg.Session.TTL())
	assert.Equal(t, "userapi.sid", cfg.Session.CookieName)
	assert.Equal(t, 5*time.Second, cfg.Storage.CallTimeout)
}
