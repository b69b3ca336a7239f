package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"owlplanner/internal/scraper"
)

type Config struct {
	Server  ServerConfig   `json:"server"`
	Catalog CatalogConfig  `json:"catalog"`
	Scraper scraper.Config `json:"scraper"`
	Logging LoggingConfig  `json:"logging"`
}

type ServerConfig struct {
	Addr string `json:"addr"`
	// MaxResults caps the number of schedules enumerated per request;
	// 0 means unbounded
	MaxResults int `json:"maxResults"`
	// TimeLimitMs bounds the search time per request; 0 means unbounded
	TimeLimitMs int `json:"timeLimitMs"`
}

type CatalogConfig struct {
	CSVPath string `json:"csvPath"`
}

type LoggingConfig struct {
	Level string `json:"level"`
}

func (c *ServerConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8000"
	}
}

func (c *CatalogConfig) SetDefaults() {
	if c.CSVPath == "" {
		c.CSVPath = "course_data.csv"
	}
}

func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

func (c *ServerConfig) Validate() error {
	if c.MaxResults < 0 {
		return fmt.Errorf("server.maxResults must not be negative: %v", c.MaxResults)
	}
	if c.TimeLimitMs < 0 {
		return fmt.Errorf("server.timeLimitMs must not be negative: %v", c.TimeLimitMs)
	}
	return nil
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	var cfg Config
	cfg.Server.SetDefaults()
	cfg.Catalog.SetDefaults()
	cfg.Scraper.SetDefaults()
	cfg.Logging.SetDefaults()
	return &cfg
}

// Load reads a JSON or YAML configuration file, applies OWL_ prefixed
// environment overrides (OWL_SERVER__ADDR maps to server.addr), fills
// defaults and validates.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("OWL_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "owl_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Server.SetDefaults()
	cfg.Catalog.SetDefaults()
	cfg.Scraper.SetDefaults()
	cfg.Logging.SetDefaults()
	if err := cfg.Server.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Scraper.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
