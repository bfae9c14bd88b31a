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
	defaultPath = "."

	// DefaultAPIBaseURL is used when neither the config file nor the environment names an API.
	DefaultAPIBaseURL = "http://localhost:8080"

	defaultAPITimeout   = 10 * time.Second
	defaultUserAgent    = "fragments-cli/1.0"
	defaultCallbackAddr = "127.0.0.1:8765"
	defaultScopes       = "openid email profile"
	defaultClientID     = "fragments-cli"
	defaultStubPort     = 8080
	defaultStubTokenTTL = time.Hour
	defaultMaxFragment  = 5 << 20

	// EnvPrefix scopes the environment overlay so unrelated variables never reach the decoder.
	EnvPrefix = "FRAGMENTS_"

	// legacyAPIURLEnv mirrors the variable name the web frontend used for the same setting.
	legacyAPIURLEnv = "API_URL"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	API APIConfig `json:"api" yaml:"api"`

	Auth AuthConfig `json:"auth" yaml:"auth"`

	// Metrics configuration for the client-side Prometheus endpoint
	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`

	// Stub configuration for the local development fragment store
	Stub StubConfig `json:"stub" yaml:"stub"`
}

// APIConfig describes the remote fragment store.
type APIConfig struct {
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	UserAgent string        `json:"userAgent" yaml:"userAgent"`
}

// AuthConfig defines the OAuth2 identity provider used for sign-in
type AuthConfig struct {
	AuthorizeURL string `json:"authorizeUrl" yaml:"authorizeUrl"`
	TokenURL     string `json:"tokenUrl" yaml:"tokenUrl"`
	ClientID     string `json:"clientId" yaml:"clientId"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
	RedirectURL  string `json:"redirectUrl" yaml:"redirectUrl"`
	Scopes       string `json:"scopes" yaml:"scopes"`

	// Address the sign-in callback listener binds to
	CallbackAddr string `json:"callbackAddr" yaml:"callbackAddr"`

	// Where the restored session is persisted between runs
	SessionPath string `json:"sessionPath" yaml:"sessionPath"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MetricsConfig enables the /metrics endpoint while the TUI is running
type MetricsConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

// StubConfig defines the development fragment store and token issuer
type StubConfig struct {
	Port            int           `json:"port" yaml:"port"`
	SigningKey      string        `json:"signingKey" yaml:"signingKey"`
	TokenTTL        time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
	MaxFragmentSize int64         `json:"maxFragmentSize" yaml:"maxFragmentSize"`
}

// LoadWithEnv loads .yaml files through koanf.
// A missing file is not an error: the environment and the defaults still apply.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	for _, path := range configPath {
		if filepath.IsAbs(path) {
			searchPaths = append(searchPaths, path)

			continue
		}
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		searchPaths = append(searchPaths, filepath.Join(pwd, path))
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if err := koanfInstance.Load(file.Provider(candidate), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read %s config failed", currEnv)
		}

		break
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(k, v string) (string, any) {
			// Example: FRAGMENTS_API_BASEURL -> api.baseUrl (not api.baseurl)
			key := canonicalizeEnvKey(strings.TrimPrefix(k, EnvPrefix), existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

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
	paths := []string{"config", "../config", "../../config"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "fragments"))
	}

	cfg, err := LoadWithEnv[Config]("config", paths...)
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills every unset field with its documented default.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.API.BaseURL) == "" {
		cfg.API.BaseURL = os.Getenv(legacyAPIURLEnv)
	}
	if strings.TrimSpace(cfg.API.BaseURL) == "" {
		cfg.API.BaseURL = DefaultAPIBaseURL
	}
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = defaultAPITimeout
	}
	if cfg.API.UserAgent == "" {
		cfg.API.UserAgent = defaultUserAgent
	}

	if cfg.Env.ServiceName == "" {
		cfg.Env.ServiceName = "fragments"
	}
	if cfg.Env.Log.Level == "" {
		cfg.Env.Log.Level = "info"
	}

	if cfg.Auth.CallbackAddr == "" {
		cfg.Auth.CallbackAddr = defaultCallbackAddr
	}
	if cfg.Auth.RedirectURL == "" {
		cfg.Auth.RedirectURL = "http://" + cfg.Auth.CallbackAddr + "/callback"
	}
	if cfg.Auth.ClientID == "" {
		cfg.Auth.ClientID = defaultClientID
	}
	if cfg.Auth.Scopes == "" {
		cfg.Auth.Scopes = defaultScopes
	}
	if cfg.Auth.AuthorizeURL == "" {
		cfg.Auth.AuthorizeURL = cfg.API.BaseURL + "/oauth2/authorize"
	}
	if cfg.Auth.TokenURL == "" {
		cfg.Auth.TokenURL = cfg.API.BaseURL + "/oauth2/token"
	}
	if cfg.Auth.SessionPath == "" {
		cfg.Auth.SessionPath = defaultSessionPath()
	}

	if cfg.Stub.Port == 0 {
		cfg.Stub.Port = defaultStubPort
	}
	if cfg.Stub.TokenTTL <= 0 {
		cfg.Stub.TokenTTL = defaultStubTokenTTL
	}
	if cfg.Stub.MaxFragmentSize <= 0 {
		cfg.Stub.MaxFragmentSize = defaultMaxFragment
	}
}

// OverrideAPI points the client at baseURL. Identity provider endpoints that were derived
// from the previous base URL follow it; explicitly configured ones are kept.
func (cfg *Config) OverrideAPI(baseURL string) {
	previous := cfg.API.BaseURL
	cfg.API.BaseURL = strings.TrimRight(baseURL, "/")

	if cfg.Auth.AuthorizeURL == previous+"/oauth2/authorize" {
		cfg.Auth.AuthorizeURL = cfg.API.BaseURL + "/oauth2/authorize"
	}
	if cfg.Auth.TokenURL == previous+"/oauth2/token" {
		cfg.Auth.TokenURL = cfg.API.BaseURL + "/oauth2/token"
	}
}

// ScopeList splits the configured scopes on whitespace.
func (a AuthConfig) ScopeList() []string {
	return strings.Fields(a.Scopes)
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".fragments", "session.json")
	}

	return filepath.Join(dir, "fragments", "session.json")
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
