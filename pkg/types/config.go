package types

import "time"

// HTTPConfig holds settings for the document fetcher.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout (default 30s).
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// MaxRetries is the number of retries on HTTP 429. Zero disables retrying.
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is json or console.
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// ArchiveConfig holds settings for the SQLite result archive.
type ArchiveConfig struct {
	// Path is the database file (default "scholar.db").
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// MaxResults is the default maximum number of rows returned by listings (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// ScholarConfig groups all settings for the CLI.
type ScholarConfig struct {
	HTTP    HTTPConfig    `json:"http" yaml:"http" mapstructure:"http"`
	Log     LoggingConfig `json:"log" yaml:"log" mapstructure:"log"`
	Archive ArchiveConfig `json:"archive" yaml:"archive" mapstructure:"archive"`

	// Lang is the default UI language (hl) applied when a query sets none.
	Lang string `json:"lang,omitempty" yaml:"lang,omitempty" mapstructure:"lang"`
}
