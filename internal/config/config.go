package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort        = 8000
	defaultEnv         = "development"
	defaultDSN         = "root:password@tcp(127.0.0.1:3306)/billboard?charset=utf8mb4&parseTime=True&loc=Local"
	defaultRedisURL    = "redis://localhost:6379/0"
	defaultCongressURL = "https://api.congress.gov/v3"
	defaultModel       = "gpt-3.5-turbo"
)

// AppConfig holds runtime startup configuration loaded from YAML.
// Secrets fall back to environment variables so the YAML file can be
// committed without keys in it.
type AppConfig struct {
	Port           int            `yaml:"port"`
	DSN            string         `yaml:"dsn"` // MySQL DSN
	RedisURL       string         `yaml:"redis_url"`
	Env            string         `yaml:"env"` // "development" | "production"
	AllowedOrigins []string       `yaml:"allowed_origins"`
	Auth0          Auth0Config    `yaml:"auth0"`
	Congress       CongressConfig `yaml:"congress"`
	OpenAI         OpenAIConfig   `yaml:"openai"`
	Summary        SummaryConfig  `yaml:"summary"`
}

// Auth0Config configures token verification and the Management API.
type Auth0Config struct {
	Domain       string `yaml:"domain"`
	Audience     string `yaml:"audience"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
}

// IssuerURL returns the expected token issuer for the tenant.
func (a Auth0Config) IssuerURL() string {
	return "https://" + strings.TrimSuffix(a.Domain, "/") + "/"
}

// JWKSURL returns the tenant's key-set endpoint.
func (a Auth0Config) JWKSURL() string {
	return "https://" + strings.TrimSuffix(a.Domain, "/") + "/.well-known/jwks.json"
}

// CongressConfig configures the congress.gov API client.
type CongressConfig struct {
	BaseURL   string        `yaml:"base_url"`
	APIKey    string        `yaml:"api_key"`
	Timeout   time.Duration `yaml:"timeout"`
	RefreshMn int           `yaml:"refresh_minutes"` // bill refresh cron interval, 0 disables
}

// OpenAIConfig configures the completion service client.
type OpenAIConfig struct {
	APIKey  string        `yaml:"api_key"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

// SummaryConfig holds summarization pipeline policy.
type SummaryConfig struct {
	TokenBudget int `yaml:"token_budget"` // per-chunk estimated token budget
	MaxLength   int `yaml:"max_length"`   // target summary length in characters
}

// Load reads the YAML config at path and applies defaults and environment
// fallbacks. A missing file is not an error; defaults apply.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// fall through to defaults
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *AppConfig) applyDefaults() {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.Env == "" {
		c.Env = defaultEnv
	}
	if c.DSN == "" {
		c.DSN = envOr("BILLBOARD_DSN", defaultDSN)
	}
	if c.RedisURL == "" {
		c.RedisURL = envOr("BILLBOARD_REDIS_URL", defaultRedisURL)
	}
	if c.Congress.BaseURL == "" {
		c.Congress.BaseURL = defaultCongressURL
	}
	if c.Congress.APIKey == "" {
		c.Congress.APIKey = os.Getenv("CONGRESS_API_KEY")
	}
	if c.Congress.Timeout == 0 {
		c.Congress.Timeout = 15 * time.Second
	}
	if c.OpenAI.APIKey == "" {
		c.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = defaultModel
	}
	if c.OpenAI.Timeout == 0 {
		c.OpenAI.Timeout = 60 * time.Second
	}
	if c.Summary.TokenBudget == 0 {
		c.Summary.TokenBudget = 4000
	}
	if c.Summary.MaxLength == 0 {
		c.Summary.MaxLength = 1000
	}
	if c.Auth0.Domain == "" {
		c.Auth0.Domain = os.Getenv("AUTH0_DOMAIN")
	}
	if c.Auth0.Audience == "" {
		c.Auth0.Audience = os.Getenv("AUTH0_AUDIENCE")
	}
	if c.Auth0.ClientID == "" {
		c.Auth0.ClientID = os.Getenv("AUTH0_CLIENT_ID")
	}
	if c.Auth0.ClientSecret == "" {
		c.Auth0.ClientSecret = os.Getenv("AUTH0_CLIENT_SECRET")
	}
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return !strings.HasPrefix(strings.ToLower(c.Env), "prod")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
