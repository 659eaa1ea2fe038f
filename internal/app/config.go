package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/scenec/internal/codec"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Inputs      []string `yaml:"inputs"` // scene files or directories
	ProjectRoot string   `yaml:"root"`
	OutDir      string   `yaml:"out"`

	// Editor disables compiled-extension rewriting and resource validation.
	Editor   bool   `yaml:"editor"`
	Format   string `yaml:"format"`
	Compress bool   `yaml:"compress"`

	ListDeps bool `yaml:"-"`
	Watch    bool `yaml:"watch"`

	LogFormat   string `yaml:"log_format"`
	LogLevel    string `yaml:"log_level"`
	WorkerCount int    `yaml:"workers"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		ProjectRoot: ".",
		OutDir:      "build",
		Format:      string(codec.FormatCBOR),
		LogFormat:   "text",
		LogLevel:    "info",
		WorkerCount: 4,
	}
}

// LoadConfigFile decodes the YAML file at path on top of base. Unknown
// keys are rejected.
func LoadConfigFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// NewConfig validates cfg and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Inputs) == 0 {
		return nil, errors.New("at least one scene path is required")
	}
	if cfg.ProjectRoot == "" {
		cfg.ProjectRoot = "."
	}
	if cfg.OutDir == "" && !cfg.ListDeps {
		return nil, errors.New("output directory cannot be empty")
	}

	f, err := codec.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	cfg.Format = string(f)

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", cfg.WorkerCount)
	}
	if cfg.ListDeps && cfg.Watch {
		return nil, errors.New("--deps and --watch cannot be combined")
	}
	return &cfg, nil
}

// CodecOptions returns the output encoding selected by cfg.
func (c *Config) CodecOptions() codec.Options {
	return codec.Options{Format: codec.Format(c.Format), Compress: c.Compress}
}
