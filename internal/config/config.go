package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lite-lake/dnsops/internal/domain"
)

// Config is the tool's connection and execution settings. It is loaded
// once and handed to constructors explicitly; nothing reads it from
// ambient globals.
type Config struct {
	API   APIConfig   `yaml:"api"`
	Apply ApplyConfig `yaml:"apply"`
}

type APIConfig struct {
	URL      string        `yaml:"url"`
	Key      string        `yaml:"key"`
	ServerID string        `yaml:"server_id"`
	Timeout  time.Duration `yaml:"timeout"`
}

type ApplyConfig struct {
	MaxBatchSize  int `yaml:"max_batch_size"`
	MaxInFlight   int `yaml:"max_in_flight"`
	RetryAttempts int `yaml:"retry_attempts"`
}

// Load reads the optional config file, then a .env file if present, then
// the process environment; later sources win. PDNS_API_KEY is the usual
// home of the credential so it stays out of the YAML.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, domain.WrapOp("parse config", err)
			}
		case os.IsNotExist(err):
			// The file is optional; env can carry everything.
		default:
			return nil, domain.WrapOp("read config", err)
		}
	}

	// Ignore a missing .env, same as godotenv's own CLI behavior.
	godotenv.Load()

	if v := os.Getenv("PDNS_API_URL"); v != "" {
		cfg.API.URL = v
	}
	if v := os.Getenv("PDNS_API_KEY"); v != "" {
		cfg.API.Key = v
	}
	if v := os.Getenv("PDNS_SERVER_ID"); v != "" {
		cfg.API.ServerID = v
	}
	if v := os.Getenv("PDNS_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("PDNS_TIMEOUT: %w", err)
		}
		cfg.API.Timeout = d
	}
	if v := os.Getenv("DNSOPS_MAX_BATCH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("DNSOPS_MAX_BATCH: %w", err)
		}
		cfg.Apply.MaxBatchSize = n
	}

	return cfg, nil
}

// Validate checks that the settings a network-touching command needs are
// present. Offline commands (validate) skip this.
func (c *Config) Validate() error {
	if c.API.URL == "" {
		return domain.RequiredField("api.url (or PDNS_API_URL)")
	}
	if c.API.Key == "" {
		return domain.RequiredField("api.key (or PDNS_API_KEY)")
	}
	return nil
}
