package model

import "time"

// Config is the run configuration passed to every component.
// Nothing reads process-wide defaults; each run is reproducible from one of
// these.
type Config struct {
	HTTP         HTTPConfig         `yaml:"http" mapstructure:"http"`
	Social       SocialConfig       `yaml:"social" mapstructure:"social"`
	Cache        CacheConfig        `yaml:"cache" mapstructure:"cache"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	Output       OutputConfig       `yaml:"output" mapstructure:"output"`
	LLM          LLMConfig          `yaml:"llm" mapstructure:"llm"`
}

// HTTPConfig controls outbound requests to mirror endpoints
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	HTTPProxy    string        `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy" mapstructure:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy" mapstructure:"no_proxy"`
}

// SocialConfig controls the best-effort social media fetch
type SocialConfig struct {
	Mirrors       []string `yaml:"mirrors" mapstructure:"mirrors"`
	MaxPosts      int      `yaml:"max_posts" mapstructure:"max_posts"`
	RespectRobots bool     `yaml:"respect_robots" mapstructure:"respect_robots"`
}

// CacheConfig controls the per-term search result cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// RateLimitingConfig controls per-mirror request pacing
type RateLimitingConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" mapstructure:"burst_size"`
}

// OutputConfig controls where the run writes its artifacts
type OutputConfig struct {
	Dir      string `yaml:"dir" mapstructure:"dir"`           // JSON + text summary
	ImageDir string `yaml:"image_dir" mapstructure:"image_dir"` // Placeholder reference images
	LogFile  string `yaml:"log_file" mapstructure:"log_file"`
	Verbose  bool   `yaml:"verbose" mapstructure:"verbose"`
}

// LLMConfig controls the optional post-run briefing.
// The briefing never enters the JSON report and never affects any collection.
type LLMConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"` // openai, ollama, "" (disabled)
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"-" mapstructure:"api_key"` // Never serialized to disk
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      10 * time.Second,
			UserAgent:    "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
			MaxBodyBytes: 2_000_000,
		},
		Social: SocialConfig{
			Mirrors: []string{
				"https://nitter.net",
				"https://nitter.lacontrevoie.fr",
				"https://nitter.poast.org",
			},
			MaxPosts:      10,
			RespectRobots: true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       ".truthscan-cache",
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   6 * time.Hour,
		},
		RateLimiting: RateLimitingConfig{
			RequestsPerSecond: 1.0,
			BurstSize:         2,
		},
		Output: OutputConfig{
			Dir:      "analysis_results",
			ImageDir: "satellite_images",
			LogFile:  "truthscan.log",
		},
		LLM: LLMConfig{
			Provider:  "",
			Timeout:   30,
			MaxTokens: 1000,
		},
	}
}
