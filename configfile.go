package redfish

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML shape of a config file. APIVersion and Timeout
// travel as strings ("v1", "30s") and are parsed after decoding.
type fileConfig struct {
	Config     `yaml:",inline"`
	APIVersion string `yaml:"api_version"`
	Timeout    string `yaml:"timeout"`
}

// LoadConfigFile reads a YAML config file, expands $VAR references from
// the environment, and validates the result. The programmatic Config
// surface remains primary; this is a convenience for tooling.
//
// Example file:
//
//	host: bmc01.example.net
//	port: 443
//	api_version: v1
//	user: admin
//	password: ${REDFISH_PASSWORD}
//	insecure_skip_verify: true
func LoadConfigFile(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(content))

	var fc fileConfig
	if err := yaml.Unmarshal([]byte(expanded), &fc); err != nil {
		return Config{}, fmt.Errorf("decode config file: %w", err)
	}

	cfg := fc.Config
	cfg.APIVersion, err = ParseAPIVersion(fc.APIVersion)
	if err != nil {
		return Config{}, fmt.Errorf("config file: %w", err)
	}

	if fc.Timeout != "" {
		cfg.Timeout, err = time.ParseDuration(fc.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("config file: parse timeout: %w", err)
		}
	}
	if cfg.Timeout < 0 {
		return Config{}, fmt.Errorf("config file: timeout must be non-negative")
	}

	if cfg.RedactHeaders == nil {
		cfg.RedactHeaders = []string{"Authorization"}
	}

	if cfg.Host == "" {
		return Config{}, ErrMissingHost
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}
