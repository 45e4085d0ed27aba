package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GetEnv returns the value of an environment variable or the fallback when
// it is unset or empty.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// ServiceConfig is the optional YAML service configuration. Every field has
// a working default so the service runs with no config file at all.
type ServiceConfig struct {
	Port              string   `yaml:"port"`
	AllowedOrigins    []string `yaml:"allowed_origins"`
	LLMTimeoutSeconds int      `yaml:"llm_timeout_seconds"`
	Defaults          Defaults `yaml:"defaults"`
}

// Defaults are the named substitutes for missing client profile fields.
type Defaults struct {
	Age      int     `yaml:"age"`
	WeightKG float64 `yaml:"weight_kg"`
	HeightCM float64 `yaml:"height_cm"`
}

func defaultConfig() *ServiceConfig {
	return &ServiceConfig{
		Port:              GetEnv("PORT", "8080"),
		AllowedOrigins:    []string{"http://localhost:5173", "http://127.0.0.1:5173"},
		LLMTimeoutSeconds: 15,
		Defaults: Defaults{
			Age:      30,
			WeightKG: 70,
			HeightCM: 170,
		},
	}
}

// Load reads the YAML config at path. A missing file is not an error: the
// defaults are returned so the file stays optional.
func Load(path string) (*ServiceConfig, error) {
	cfg := defaultConfig()

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
	if cfg.Port == "" {
		cfg.Port = GetEnv("PORT", "8080")
	}
	if cfg.LLMTimeoutSeconds <= 0 {
		cfg.LLMTimeoutSeconds = 15
	}
	return cfg, nil
}
