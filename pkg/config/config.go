package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Public URL used in generated RSS links"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:blizbi.db?cache=shared&mode=rwc&_txlock=immediate,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Auth AuthConfig `yaml:"auth" json:"auth" jsonschema:"description=Identity token configuration"`

	Assistant AssistantConfig `yaml:"assistant" json:"assistant" jsonschema:"description=LLM configuration for the chat assistant"`

	Ingest IngestConfig `yaml:"ingest" json:"ingest" jsonschema:"description=Provider feed import configuration"`
}

// AuthConfig holds identity token settings
type AuthConfig struct {
	Secret   string        `yaml:"secret" json:"secret" jsonschema:"required,description=HMAC secret signing identity tokens (can use environment variable)"`
	Issuer   string        `yaml:"issuer" json:"issuer" jsonschema:"default=blizbi,description=Token issuer"`
	TokenTTL time.Duration `yaml:"token_ttl" json:"token_ttl" jsonschema:"default=24h,description=Lifetime of issued tokens"`
}

// AssistantConfig holds LLM configuration for the chat assistant.
// Empty endpoint and api key disable the assistant.
type AssistantConfig struct {
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"default=gpt-4o-mini,description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.5,description=Temperature for response generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=800,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	SystemPrompt string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt for the LLM (optional)"`
	MaxEvents    int           `yaml:"max_events" json:"max_events" jsonschema:"default=20,minimum=1,description=Number of candidate events given to the LLM"`
	MaxSuggested int           `yaml:"max_suggested" json:"max_suggested" jsonschema:"default=5,minimum=1,description=Maximum number of events suggested in one answer"`
	HistorySize  int           `yaml:"history_size" json:"history_size" jsonschema:"default=10,description=Number of previous messages sent with the prompt"`
	UseJSONMode  bool          `yaml:"use_json_mode" json:"use_json_mode" jsonschema:"default=false,description=Use JSON response format (not all models support this)"`
}

// Enabled reports whether the assistant has an API to talk to
func (a AssistantConfig) Enabled() bool {
	return a.Endpoint != "" || a.APIKey != ""
}

// IngestConfig holds provider feed import settings
type IngestConfig struct {
	Enabled    bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable periodic import of provider feeds"`
	Interval   time.Duration `yaml:"interval" json:"interval" jsonschema:"default=1h,description=Import interval"`
	MaxWorkers int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=4,description=Maximum providers imported concurrently"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Feed and page fetch timeout"`
	UserAgent  string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Blizbi/1.0,description=User agent for feed requests"`
	Timezone   string        `yaml:"timezone" json:"timezone" jsonschema:"default=Europe/Oslo,description=Zone event start times are shown in"`
	Extract    bool          `yaml:"extract" json:"extract" jsonschema:"default=false,description=Read event pages to fill missing description and cover"`
	Providers  []Provider    `yaml:"providers" json:"providers" jsonschema:"description=Providers created on start if missing"`
}

// Provider is a provider declared in the configuration
type Provider struct {
	ID          string `yaml:"id" json:"id" jsonschema:"required,description=Provider ID"`
	Name        string `yaml:"name" json:"name" jsonschema:"required,description=Provider name"`
	Description string `yaml:"description" json:"description" jsonschema:"description=Short description"`
	WebsiteURL  string `yaml:"website_url" json:"website_url" jsonschema:"description=Provider website"`
	Address     string `yaml:"address" json:"address" jsonschema:"description=Default event location"`
	FeedURL     string `yaml:"feed_url" json:"feed_url" jsonschema:"description=RSS/Atom feed with the provider events"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// schema validation is supplementary
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:blizbi.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.Auth.Issuer == "" {
		c.Auth.Issuer = "blizbi"
	}
	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = 24 * time.Hour
	}

	if c.Assistant.Model == "" {
		c.Assistant.Model = "gpt-4o-mini"
	}
	if c.Assistant.Temperature == 0 {
		c.Assistant.Temperature = 0.5
	}
	if c.Assistant.MaxTokens == 0 {
		c.Assistant.MaxTokens = 800
	}
	if c.Assistant.Timeout == 0 {
		c.Assistant.Timeout = 30 * time.Second
	}
	if c.Assistant.MaxEvents == 0 {
		c.Assistant.MaxEvents = 20
	}
	if c.Assistant.MaxSuggested == 0 {
		c.Assistant.MaxSuggested = 5
	}
	if c.Assistant.HistorySize == 0 {
		c.Assistant.HistorySize = 10
	}

	if c.Ingest.Interval == 0 {
		c.Ingest.Interval = time.Hour
	}
	if c.Ingest.MaxWorkers == 0 {
		c.Ingest.MaxWorkers = 4
	}
	if c.Ingest.Timeout == 0 {
		c.Ingest.Timeout = 30 * time.Second
	}
	if c.Ingest.UserAgent == "" {
		c.Ingest.UserAgent = "Blizbi/1.0"
	}
	if c.Ingest.Timezone == "" {
		c.Ingest.Timezone = "Europe/Oslo"
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return errors.New("server timeout must be at least 1 second")
	}

	if cfg.Auth.Secret == "" {
		return errors.New("auth.secret is required")
	}
	if cfg.Auth.TokenTTL < time.Minute {
		return errors.New("auth.token_ttl must be at least 1 minute")
	}

	if cfg.Assistant.Temperature < 0 || cfg.Assistant.Temperature > 2 {
		return errors.New("assistant.temperature must be between 0 and 2")
	}
	if cfg.Assistant.MaxEvents < 1 || cfg.Assistant.MaxSuggested < 1 {
		return errors.New("assistant.max_events and assistant.max_suggested must be at least 1")
	}

	if cfg.Ingest.Enabled {
		if cfg.Ingest.Interval < time.Minute {
			return errors.New("ingest.interval must be at least 1 minute")
		}
		if _, err := time.LoadLocation(cfg.Ingest.Timezone); err != nil {
			return fmt.Errorf("ingest.timezone: %w", err)
		}
	}
	seen := map[string]bool{}
	for i, p := range cfg.Ingest.Providers {
		if p.ID == "" || p.Name == "" {
			return fmt.Errorf("ingest.providers[%d]: id and name are required", i)
		}
		if seen[p.ID] {
			return fmt.Errorf("ingest.providers[%d]: duplicate id %q", i, p.ID)
		}
		seen[p.ID] = true
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetBaseURL returns the public URL of the server
func (c *Config) GetBaseURL() string {
	return c.Server.BaseURL
}

// GetAssistantConfig returns assistant configuration
func (c *Config) GetAssistantConfig() AssistantConfig {
	return c.Assistant
}

// Location returns the ingest time zone, UTC if it can't be loaded
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Ingest.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
