package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultStopName labels stop monitors that do not name themselves.
const DefaultStopName = "Next Bus"

// Load reads, validates and defaults the application configuration. An empty
// path falls back to config.yml in the working directory.
func Load(path string) (*AppConfig, error) {
	paths := []string{path}
	if path == "" {
		paths = []string{"config.yml", "config.yaml"}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates a raw YAML configuration.
func Parse(data []byte) (*AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 16181
	}
	for i := range cfg.Stops {
		if cfg.Stops[i].Name == "" {
			cfg.Stops[i].Name = DefaultStopName
		}
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, err
	}
	if err := checkAuthExclusive(cfg.Feed); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// checkAuthExclusive rejects configurations naming more than one key style;
// sending a key under two header names is never what the provider wants.
func checkAuthExclusive(f FeedConfig) error {
	n := 0
	if f.APIKey != "" {
		n++
	}
	if f.Apikey != "" {
		n++
	}
	if f.XAPIKey != "" {
		n++
	}
	if len(f.Headers) > 0 {
		n++
	}
	if n > 1 {
		return fmt.Errorf("feed auth styles are mutually exclusive: set only one of api_key, apikey, x_api_key or headers")
	}
	return nil
}
