package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/charo360/tagrank/internal/score"
	"github.com/charo360/tagrank/internal/trends"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// Feed is one trend feed the RSS trend source pulls from.
type Feed = trends.Feed

// Business is the default business profile used to build scoring contexts.
type Business struct {
	Type     string   `yaml:"type"`
	Name     string   `yaml:"name"`
	Location string   `yaml:"location"`
	Industry string   `yaml:"industry,omitempty"`
	Audience string   `yaml:"audience,omitempty"`
	Services []string `yaml:"services,omitempty"`
}

type AIConfig struct {
	Provider string `yaml:"provider"` // "claude" or "openai"
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
}

type Config struct {
	RefreshInterval string    `yaml:"refresh_interval"`
	Retention       string    `yaml:"retention"`
	CacheTTL        string    `yaml:"cache_ttl,omitempty"`
	Platform        string    `yaml:"platform,omitempty"`
	Business        Business  `yaml:"business"`
	Feeds           []Feed    `yaml:"feeds"`
	AI              *AIConfig `yaml:"ai,omitempty"`
}

// AIEnabled returns true if a generative backend is configured with a key.
func (c *Config) AIEnabled() bool {
	if c.AI == nil {
		return false
	}
	return c.AIKey() != ""
}

// AIKey returns the resolved API key (config or env var).
func (c *Config) AIKey() string {
	if c.AI != nil && c.AI.APIKey != "" {
		return c.AI.APIKey
	}
	return os.Getenv("TAGRANK_AI_KEY")
}

func (c *Config) RefreshDuration() time.Duration {
	d, err := time.ParseDuration(c.RefreshInterval)
	if err != nil {
		return 30 * time.Minute
	}
	return d
}

func (c *Config) RetentionDuration() time.Duration {
	if c.Retention == "" {
		return 7 * 24 * time.Hour
	}
	// Support "Nd" day syntax
	if len(c.Retention) > 1 && c.Retention[len(c.Retention)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(c.Retention, "%dd", &days); err == nil {
			return time.Duration(days) * 24 * time.Hour
		}
	}
	d, err := time.ParseDuration(c.Retention)
	if err != nil {
		return 7 * 24 * time.Hour
	}
	return d
}

// CacheTTLDuration is how long a computed hashtag score stays valid.
func (c *Config) CacheTTLDuration() time.Duration {
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 10 * time.Minute
	}
	return d
}

func (c *Config) EnabledFeeds() []Feed {
	var out []Feed
	for _, f := range c.Feeds {
		if f.Enabled {
			out = append(out, f)
		}
	}
	return out
}

// Topics returns the distinct topic labels of the enabled feeds.
func (c *Config) Topics() []string {
	seen := map[string]bool{}
	var topics []string
	for _, f := range c.EnabledFeeds() {
		if f.Topic == "" || seen[f.Topic] {
			continue
		}
		seen[f.Topic] = true
		topics = append(topics, f.Topic)
	}
	return topics
}

// ScoringContext builds a scoring context from the business profile,
// optionally overriding the platform.
func (c *Config) ScoringContext(platform string) score.Context {
	if platform == "" {
		platform = c.Platform
	}
	if platform == "" {
		platform = "instagram"
	}
	return score.Context{
		BusinessType:   c.Business.Type,
		BusinessName:   c.Business.Name,
		Location:       c.Business.Location,
		Platform:       platform,
		Industry:       c.Business.Industry,
		TargetAudience: c.Business.Audience,
		Services:       c.Business.Services,
	}
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "tagrank", "config.yaml")
}

func StorePath() string {
	return filepath.Join(xdg.CacheHome, "tagrank", "tagrank.db")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	validTypes := map[string]bool{"rss": true, "atom": true}
	for i, f := range cfg.Feeds {
		if f.Name == "" {
			return fmt.Errorf("feed %d: name is required", i)
		}
		if f.URL == "" {
			return fmt.Errorf("feed %q: url is required", f.Name)
		}
		u, err := url.Parse(f.URL)
		if err != nil {
			return fmt.Errorf("feed %q: invalid url: %w", f.Name, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("feed %q: url scheme must be http or https, got %q", f.Name, u.Scheme)
		}
		if !validTypes[f.Type] {
			return fmt.Errorf("feed %q: unknown type %q (valid: rss, atom)", f.Name, f.Type)
		}
	}
	return nil
}
