package config

import (
	"fmt"
	"github.com/asaskevich/govalidator"
	"gopkg.in/yaml.v3"
	"os"
)

const (
	defaultPort            = 8080
	defaultLogLevel        = "info"
	defaultStorageType     = "memory"
	defaultTimeoutSeconds  = 10
	defaultCacheTTLMinutes = 60
)

type Config struct {
	HTTP struct {
		Port       uint16 `yaml:"port" env:"HTTP_PORT"`
		Interface  string `yaml:"interface" env:"HTTP_INTERFACE"`
		Origin     string `yaml:"origin" env:"HTTP_ORIGIN"`
		CSRFSecret string `yaml:"csrf_secret" env:"HTTP_CSRF_SECRET"`
	} `yaml:"http"`

	HIBP struct {
		BaseURL         string `yaml:"base_url" env:"HIBP_BASE_URL"`
		TimeoutSeconds  uint   `yaml:"timeout_seconds" env:"HIBP_TIMEOUT_SECONDS"`
		CacheTTLMinutes uint   `yaml:"cache_ttl_minutes" env:"HIBP_CACHE_TTL_MINUTES"`
	} `yaml:"hibp"`

	Storage struct {
		Type       string            `yaml:"type" env:"STORAGE_TYPE"`
		Properties map[string]string `yaml:"properties" env:"STORAGE_PROPERTIES"`
	} `yaml:"storage"`

	Log struct {
		Level string `yaml:"level" env:"LOG_LEVEL"`
	} `yaml:"log"`
}

func LoadConfig(cfgPath string) (*Config, error) {
	cfg := Config{}

	if cfgPath != "" {
		yamlBytes, err := os.ReadFile(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}

		if err := yaml.Unmarshal(yamlBytes, &cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultPort
	}

	if cfg.HIBP.TimeoutSeconds == 0 {
		cfg.HIBP.TimeoutSeconds = defaultTimeoutSeconds
	}

	if cfg.HIBP.CacheTTLMinutes == 0 {
		cfg.HIBP.CacheTTLMinutes = defaultCacheTTLMinutes
	}

	if cfg.Storage.Type == "" {
		cfg.Storage.Type = defaultStorageType
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}

	valid, err := govalidator.ValidateStruct(&cfg)
	if !valid || err != nil {
		return nil, fmt.Errorf("error validating config: %w", err)
	}

	return &cfg, nil
}
