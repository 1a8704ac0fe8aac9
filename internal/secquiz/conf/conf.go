package conf

import (
	"fmt"
	"os"
	"strings"

	"github.com/secquiz/secquiz/internal/errors"
	"github.com/secquiz/secquiz/pkg/config"
)

const (
	DefaultHTTPAddr     = "127.0.0.1:5040"
	DefaultModel        = "gemini-2.0-flash"
	DefaultDocPath      = "CCSK.pdf"
	DefaultExcerptBytes = 10000
)

// Config is built once at start-up and passed to whatever needs it. No
// package reads the environment after this point.
type Config struct {
	HTTPAddr     string `mapstructure:"http_addr" json:"http_addr"`
	PublicURL    string `mapstructure:"public_url" json:"public_url"`
	APIKey       string `mapstructure:"api_key" json:"-"`
	Model        string `mapstructure:"model" json:"model"`
	DocPath      string `mapstructure:"doc_path" json:"doc_path"`
	ExcerptBytes int    `mapstructure:"excerpt_bytes" json:"excerpt_bytes"`
}

// Load merges defaults, an optional ~/.secquiz/secquiz.json file, and
// SECQUIZ_* environment variables. GEMINI_API_KEY is honored as a fallback
// credential source.
func Load() (*Config, error) {
	m, err := config.New("secquiz", "", "", "SECQUIZ")
	if err != nil {
		return nil, errors.Config("failed to init config", err)
	}

	m.SetDefault("http_addr", DefaultHTTPAddr)
	m.SetDefault("public_url", "")
	m.SetDefault("api_key", "")
	m.SetDefault("model", DefaultModel)
	m.SetDefault("doc_path", DefaultDocPath)
	m.SetDefault("excerpt_bytes", DefaultExcerptBytes)

	conf := &Config{}
	if err := m.Load(conf); err != nil {
		return nil, errors.Config("failed to load config", err)
	}

	if conf.APIKey == "" {
		conf.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	return conf, nil
}

func (c *Config) GetHTTPAddr() string {
	return c.HTTPAddr
}

func (c *Config) GetDocPath() string {
	return c.DocPath
}

// BaseURL is the externally visible root used to build page-link locators.
func (c *Config) BaseURL() string {
	if c.PublicURL != "" {
		return strings.TrimRight(c.PublicURL, "/")
	}
	return fmt.Sprintf("http://%s", c.HTTPAddr)
}
