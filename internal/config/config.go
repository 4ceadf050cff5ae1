package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	FinderSingleton    = "singleton"
	FinderConfigurable = "configurable"
)

// Config holds command settings. Library packages never read it.
type Config struct {
	LogMode  string `yaml:"log_mode"`
	Finder   string `yaml:"finder"`
	DataFile string `yaml:"data_file"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{LogMode: "dev", Finder: FinderSingleton}
}

// LoadFromEnv overlays CITYPOP_* variables on Default.
func LoadFromEnv() (Config, error) {
	def := Default()
	cfg := Config{
		LogMode:  getenv("CITYPOP_LOG_MODE", def.LogMode),
		Finder:   getenv("CITYPOP_FINDER", def.Finder),
		DataFile: getenv("CITYPOP_DATA_FILE", def.DataFile),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML document at path on base. Keys missing from the
// file keep their base value; unknown keys are rejected.
func LoadFile(path string, base Config) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	cfg := base
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that Finder names a known strategy.
func (c Config) Validate() error {
	switch c.Finder {
	case FinderSingleton, FinderConfigurable:
		return nil
	default:
		return fmt.Errorf("config: finder must be %q or %q, got %q", FinderSingleton, FinderConfigurable, c.Finder)
	}
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
