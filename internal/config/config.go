// Package config loads the friendly CLI settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/friendly/internal/logging"
	"github.com/aretw0/friendly/pkg/docs"
	"github.com/aretw0/friendly/pkg/intercept"
)

// DefaultPath is the config file read when no --config flag is given.
const DefaultPath = "friendly.yaml"

// Config holds every CLI setting. Zero fields are filled from Default.
type Config struct {
	// Namespace is the root class name that documented classes are prefixed with.
	Namespace string `yaml:"namespace"`
	// Docs is the documentation file (YAML or data.json). Empty uses the
	// embedded sample documentation.
	Docs          string `yaml:"docs"`
	ReferenceURL  string `yaml:"reference_url"`
	PrivatePrefix string `yaml:"private_prefix"`
	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`
	// Listen is the address of the HTTP reference server.
	Listen string `yaml:"listen"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Namespace:     "p5",
		ReferenceURL:  docs.DefaultReferenceURL,
		PrivatePrefix: intercept.DefaultPrivatePrefix,
		LogLevel:      "info",
		LogFormat:     "text",
		Listen:        ":8080",
	}
}

// Load reads path and applies defaults. A missing file is not an error
// unless required is true.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.merge(file)
	return cfg, cfg.Validate()
}

func (c *Config) merge(o Config) {
	if o.Namespace != "" {
		c.Namespace = o.Namespace
	}
	if o.Docs != "" {
		c.Docs = o.Docs
	}
	if o.ReferenceURL != "" {
		c.ReferenceURL = o.ReferenceURL
	}
	if o.PrivatePrefix != "" {
		c.PrivatePrefix = o.PrivatePrefix
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.LogFormat != "" {
		c.LogFormat = o.LogFormat
	}
	if o.Listen != "" {
		c.Listen = o.Listen
	}
}

// Validate checks the settings that can be wrong in a well-formed file.
func (c Config) Validate() error {
	if c.Namespace == "" {
		return fmt.Errorf("namespace must not be empty")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (want text or json)", c.LogFormat)
	}
	return nil
}
