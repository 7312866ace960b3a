package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"SmartFlow/pkg/util"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logger struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logger"`
	Providers struct {
		Order   []string      `yaml:"order"`
		Timeout time.Duration `yaml:"timeout"`
		Binance struct {
			BaseURL string `yaml:"base_url"`
		} `yaml:"binance"`
		Bybit struct {
			BaseURL  string `yaml:"base_url"`
			Category string `yaml:"category"`
		} `yaml:"bybit"`
		OKX struct {
			BaseURL string `yaml:"base_url"`
		} `yaml:"okx"`
	} `yaml:"providers"`
	Analysis struct {
		ZoneDepth   int `yaml:"zone_depth"`
		HigherLimit int `yaml:"higher_limit"`
		LowerLimit  int `yaml:"lower_limit"`
	} `yaml:"analysis"`
	Cache struct {
		Enabled bool          `yaml:"enabled"`
		TTL     time.Duration `yaml:"ttl"`
		Redis   struct {
			Enabled  bool   `yaml:"enabled"`
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		if port := util.ParseIntDefault(v, 0); port > 0 {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("PROVIDER_ORDER"); v != "" {
		c.Providers.Order = strings.Split(v, ",")
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logger.Level = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if len(c.Providers.Order) == 0 {
		return fmt.Errorf("providers.order cannot be empty")
	}
	for _, name := range c.Providers.Order {
		switch name {
		case "binance":
			if c.Providers.Binance.BaseURL == "" {
				return fmt.Errorf("providers.binance.base_url is required")
			}
		case "bybit":
			if c.Providers.Bybit.BaseURL == "" {
				return fmt.Errorf("providers.bybit.base_url is required")
			}
		case "okx":
			if c.Providers.OKX.BaseURL == "" {
				return fmt.Errorf("providers.okx.base_url is required")
			}
		default:
			return fmt.Errorf("unknown provider '%s' in providers.order", name)
		}
	}
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive when cache is enabled")
	}
	return nil
}
