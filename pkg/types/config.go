// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults applied when neither a config file, environment, nor flags set a value.
const (
	DefaultBaseURL    = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"
	DefaultMaxResults = 10
	DefaultTimeout    = 30 * time.Second
	DefaultUserAgent  = "get-papers-list/0.1"
	DefaultTool       = "get-papers-list"

	// MaxResultsLimit is the largest retmax E-utilities accepts per request.
	MaxResultsLimit = 10000
)

// HTTPConfig holds shared HTTP settings for E-utilities requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout" validate:"gt=0"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent" validate:"required"`
}

// PubMedConfig holds settings for the search gateway and record fetcher.
type PubMedConfig struct {
	// BaseURL is the E-utilities root; esearch.fcgi and efetch.fcgi are appended.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url" validate:"required,url"`

	// MaxResults caps the number of PubMed IDs a search returns.
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results" validate:"min=1,max=10000"`

	// APIKey is an optional NCBI API key.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// Email is an optional contact address sent with each request.
	Email string `json:"email,omitempty" yaml:"email,omitempty" mapstructure:"email" validate:"omitempty,email"`

	// Tool names this program to NCBI.
	Tool string `json:"tool" yaml:"tool" mapstructure:"tool"`
}

// OutputConfig selects where results go. With neither field set, results
// are printed to the console.
type OutputConfig struct {
	// File is the CSV file path.
	File string `json:"file,omitempty" yaml:"file,omitempty" mapstructure:"file"`

	// Database is an optional SQLite file that receives a copy of every row.
	Database string `json:"database,omitempty" yaml:"database,omitempty" mapstructure:"database"`
}

// Config groups every setting the command reads.
type Config struct {
	HTTP   HTTPConfig   `json:"http" yaml:"http" mapstructure:"http"`
	PubMed PubMedConfig `json:"pubmed" yaml:"pubmed" mapstructure:"pubmed"`
	Output OutputConfig `json:"output" yaml:"output" mapstructure:"output"`
	Debug  bool         `json:"debug" yaml:"debug" mapstructure:"debug"`
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() Config {
	return Config{
		HTTP: HTTPConfig{
			Timeout:   DefaultTimeout,
			UserAgent: DefaultUserAgent,
		},
		PubMed: PubMedConfig{
			BaseURL:    DefaultBaseURL,
			MaxResults: DefaultMaxResults,
			Tool:       DefaultTool,
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and reports every violation in one error.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validating config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s fails %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// Redacted returns a copy safe for display, with the API key masked.
func (c Config) Redacted() Config {
	if c.PubMed.APIKey != "" {
		c.PubMed.APIKey = "****"
	}
	return c
}
