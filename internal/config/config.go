package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the complete engine configuration. Every field has a
// compiled-in default; a yaml file only overrides what it names.
type Config struct {
	Calibration Calibration    `yaml:"calibration"`
	Services    ServicesConfig `yaml:"services"`
	Server      ServerConfig   `yaml:"server"`
}

// Calibration holds the product-tuned scoring constants. These are
// deliberately configuration, not invariants: they get re-tuned as the
// market shifts, and tests pin only the defaults.
type Calibration struct {
	// MemeFloor is the minimum overall score for meme-classified tokens.
	MemeFloor float64 `yaml:"meme_floor"`

	// LargeCapUSD is the market cap above which contract-control risk is
	// waived outright.
	LargeCapUSD float64 `yaml:"large_cap_usd"`

	// UpgradePromptScore is the free-plan score above which an upgrade
	// prompt is attached.
	UpgradePromptScore int `yaml:"upgrade_prompt_score"`

	// Level thresholds, inclusive lower bounds.
	CriticalAt int `yaml:"critical_at"`
	HighAt     int `yaml:"high_at"`
	MediumAt   int `yaml:"medium_at"`

	// Confidence matrix keyed by (security data present, plan).
	ConfidenceSecPremium   int `yaml:"confidence_sec_premium"`
	ConfidenceSecFree      int `yaml:"confidence_sec_free"`
	ConfidenceNoSecPremium int `yaml:"confidence_nosec_premium"`
	ConfidenceNoSecFree    int `yaml:"confidence_nosec_free"`
}

// ServiceConfig configures one outbound service client. Durations are
// yaml ints in milliseconds.
type ServiceConfig struct {
	BaseURL     string  `yaml:"base_url"`
	FallbackURL string  `yaml:"fallback_url"` // optional secondary endpoint
	TimeoutMS   int     `yaml:"timeout_ms"`
	RPS         float64 `yaml:"rps"`
	Burst       int     `yaml:"burst"`
	Enabled     bool    `yaml:"enabled"`
}

// Timeout returns the call timeout as a duration.
func (s ServiceConfig) Timeout() time.Duration {
	if s.TimeoutMS <= 0 {
		return 5 * time.Second
	}
	return time.Duration(s.TimeoutMS) * time.Millisecond
}

// ServicesConfig groups the two optional external collaborators plus
// the classification cache.
type ServicesConfig struct {
	Classification ServiceConfig `yaml:"classification"`
	Social         ServiceConfig `yaml:"social"`
	Cache          CacheConfig   `yaml:"cache"`
}

// CacheConfig configures the optional redis-backed classification cache.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	TTLSecs int    `yaml:"ttl_secs"`
}

// TTL returns the cache entry lifetime.
func (c CacheConfig) TTL() time.Duration {
	if c.TTLSecs <= 0 {
		return 6 * time.Hour
	}
	return time.Duration(c.TTLSecs) * time.Second
}

// ServerConfig configures the read-only HTTP API.
type ServerConfig struct {
	Host             string `yaml:"host"`
	Port             int    `yaml:"port"`
	ReadTimeoutSecs  int    `yaml:"read_timeout_secs"`
	WriteTimeoutSecs int    `yaml:"write_timeout_secs"`
	IdleTimeoutSecs  int    `yaml:"idle_timeout_secs"`
}

// Default returns the production defaults.
func Default() *Config {
	return &Config{
		Calibration: Calibration{
			MemeFloor:              55,
			LargeCapUSD:            50_000_000_000,
			UpgradePromptScore:     60,
			CriticalAt:             75,
			HighAt:                 50,
			MediumAt:               30,
			ConfidenceSecPremium:   90,
			ConfidenceSecFree:      75,
			ConfidenceNoSecPremium: 65,
			ConfidenceNoSecFree:    50,
		},
		Services: ServicesConfig{
			Classification: ServiceConfig{
				BaseURL:   "http://localhost:9810",
				TimeoutMS: 5000,
				RPS:       5,
				Burst:     10,
				Enabled:   true,
			},
			Social: ServiceConfig{
				BaseURL:   "http://localhost:9811",
				TimeoutMS: 8000,
				RPS:       2,
				Burst:     5,
				Enabled:   true,
			},
			Cache: CacheConfig{
				Enabled: false,
				Addr:    "localhost:6379",
				TTLSecs: 21600,
			},
		},
		Server: ServerConfig{
			Host:             "127.0.0.1",
			Port:             8090,
			ReadTimeoutSecs:  10,
			WriteTimeoutSecs: 10,
			IdleTimeoutSecs:  60,
		},
	}
}

// Load reads a yaml config file over the defaults. A missing path is
// not an error; the defaults stand.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configs that would make the pipeline inconsistent.
func (c *Config) Validate() error {
	cal := c.Calibration
	if cal.MediumAt >= cal.HighAt || cal.HighAt >= cal.CriticalAt {
		return fmt.Errorf("level thresholds must be increasing: medium %d < high %d < critical %d",
			cal.MediumAt, cal.HighAt, cal.CriticalAt)
	}
	if cal.MemeFloor < 0 || cal.MemeFloor > 100 {
		return fmt.Errorf("meme floor %v outside 0-100", cal.MemeFloor)
	}
	if cal.LargeCapUSD <= 0 {
		return fmt.Errorf("large cap threshold must be positive, got %v", cal.LargeCapUSD)
	}
	return nil
}
