// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with outbound requests.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the search orchestrator and adapters.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of results per search (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// Per-source enable switches. Disabled sources are not registered.
	EnableLawNet          bool `json:"enable_lawnet" yaml:"enable_lawnet"`
	EnableVLex            bool `json:"enable_vlex" yaml:"enable_vlex"`
	EnableCommonLII       bool `json:"enable_commonlii" yaml:"enable_commonlii"`
	EnableSingaporeCourts bool `json:"enable_singapore_courts" yaml:"enable_singapore_courts"`
	EnableJudiciary       bool `json:"enable_judiciary" yaml:"enable_judiciary"`
	EnableSLW             bool `json:"enable_slw" yaml:"enable_slw"`
	EnableOGP             bool `json:"enable_ogp" yaml:"enable_ogp"`
}

// ScrapeConfig holds settings for the scraping fetch layer.
type ScrapeConfig struct {
	// MaxBodyBytes caps how much of a response body is read (default 2 MiB).
	MaxBodyBytes int64 `json:"max_body_bytes" yaml:"max_body_bytes"`

	// RespectRobots controls robots.txt checking before each fetch.
	RespectRobots bool `json:"respect_robots" yaml:"respect_robots"`

	// RobotsCacheTTL is how long a fetched robots.txt ruleset is reused.
	RobotsCacheTTL time.Duration `json:"robots_cache_ttl" yaml:"robots_cache_ttl"`
}

// ServerConfig holds settings for the HTTP server.
type ServerConfig struct {
	// Port the server listens on (default 3001).
	Port int `json:"port" yaml:"port"`
}

// HistoryConfig holds settings for the search-history store.
type HistoryConfig struct {
	// Dir is the directory containing the history database (default
	// ".briefcase/").
	Dir string `json:"dir" yaml:"dir"`

	// MaxEntries caps how many past searches are listed (default 50).
	MaxEntries int `json:"max_entries" yaml:"max_entries"`
}

// Config groups all component configurations.
type Config struct {
	Search  SearchConfig  `json:"search" yaml:"search"`
	Scrape  ScrapeConfig  `json:"scrape" yaml:"scrape"`
	Server  ServerConfig  `json:"server" yaml:"server"`
	History HistoryConfig `json:"history" yaml:"history"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Search: SearchConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   30 * time.Second,
				UserAgent: "briefcase/0.1 (legal research tool)",
			},
			MaxResults:            20,
			EnableLawNet:          true,
			EnableVLex:            true,
			EnableCommonLII:       true,
			EnableSingaporeCourts: true,
			EnableJudiciary:       true,
			EnableSLW:             true,
			EnableOGP:             true,
		},
		Scrape: ScrapeConfig{
			MaxBodyBytes:   2 << 20,
			RespectRobots:  true,
			RobotsCacheTTL: time.Hour,
		},
		Server: ServerConfig{
			Port: 3001,
		},
		History: HistoryConfig{
			Dir:        ".briefcase",
			MaxEntries: 50,
		},
	}
}
