package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "6MB"
	defaultCookieName         = "userapi.sid"
	defaultExpirationMs       = int64(24 * time.Hour / time.Millisecond)
	defaultBcryptCost         = 10
	defaultCallTimeout        = 5 * time.Second
	defaultAvatarSize         = 300
	defaultAvatarMaxBytes     = 5 << 20
	defaultAvatarMaxPixels    = 25_000_000
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// AllowOrigins is passed to the CORS middleware; empty means echo's default (*).
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts     struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Session *SessionConfig `json:"session" yaml:"session"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Avatar configuration for profile picture uploads
	Avatar *AvatarConfig `json:"avatar" yaml:"avatar"`

	// PubSub configuration for account lifecycle events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// SessionConfig defines the cookie-backed server session.
type SessionConfig struct {
	Secret       string `json:"secret" yaml:"secret"`
	CookieName   string `json:"cookieName" yaml:"cookieName"`
	ExpirationMs int64  `json:"expirationMs" yaml:"expirationMs"`
}

// TTL returns the session lifetime.
func (c *SessionConfig) TTL() time.Duration {
	return time.Duration(c.ExpirationMs) * time.Millisecond
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost      int    `json:"bcryptCost" yaml:"bcryptCost"`
	SuccessRedirect string `json:"successRedirect" yaml:"successRedirect"`
	FailureRedirect string `json:"failureRedirect" yaml:"failureRedirect"`
}

// StorageConfig points every store at a gocloud docstore collection URL,
// e.g. mem://accounts/email or mongo://userapi/accounts?id_field=email.
type StorageConfig struct {
	AccountsURL    string        `json:"accountsUrl" yaml:"accountsUrl"`
	CredentialsURL string        `json:"credentialsUrl" yaml:"credentialsUrl"`
	SessionsURL    string        `json:"sessionsUrl" yaml:"sessionsUrl"`
	CallTimeout    time.Duration `json:"callTimeout" yaml:"callTimeout"`
}

// AvatarConfig defines where avatars are stored and how they are resized.
type AvatarConfig struct {
	// BucketURL is a gocloud blob URL: file:///var/lib/userapi/avatar, mem://, s3://bucket?region=...
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	Size      int    `json:"size" yaml:"size"`
	MaxBytes  int64  `json:"maxBytes" yaml:"maxBytes"`
	// MaxPixels bounds width*height of an upload before it is decoded.
	MaxPixels int64 `json:"maxPixels" yaml:"maxPixels"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env.Env, "production")
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: SESSION_COOKIENAME -> session.cookieName (not session.cookiename)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills optional sections and rejects configurations the service cannot run with.
func (c *Config) applyDefaults() error {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Session == nil {
		c.Session = &SessionConfig{}
	}
	if c.Session.Secret == "" {
		return errors.New("session secret must be provided")
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = defaultCookieName
	}
	if c.Session.ExpirationMs <= 0 {
		c.Session.ExpirationMs = defaultExpirationMs
	}

	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	if c.Auth.BcryptCost == 0 {
		c.Auth.BcryptCost = defaultBcryptCost
	}
	if c.Auth.SuccessRedirect == "" {
		c.Auth.SuccessRedirect = "/success_login"
	}
	if c.Auth.FailureRedirect == "" {
		c.Auth.FailureRedirect = "/unsuccess_login"
	}

	if c.Storage == nil {
		c.Storage = &StorageConfig{}
	}
	if c.Storage.AccountsURL == "" {
		c.Storage.AccountsURL = "mem://accounts/email"
	}
	if c.Storage.CredentialsURL == "" {
		c.Storage.CredentialsURL = "mem://credentials/accountId"
	}
	if c.Storage.SessionsURL == "" {
		c.Storage.SessionsURL = "mem://sessions/id"
	}
	if c.Storage.CallTimeout <= 0 {
		c.Storage.CallTimeout = defaultCallTimeout
	}

	if c.Avatar == nil {
		c.Avatar = &AvatarConfig{}
	}
	if c.Avatar.BucketURL == "" {
		c.Avatar.BucketURL = "mem://"
	}
	if c.Avatar.Size <= 0 {
		c.Avatar.Size = defaultAvatarSize
	}
	if c.Avatar.MaxBytes <= 0 {
		c.Avatar.MaxBytes = defaultAvatarMaxBytes
	}
	if c.Avatar.MaxPixels <= 0 {
		c.Avatar.MaxPixels = defaultAvatarMaxPixels
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
