package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the stub generator.
type Config struct {
	Stub    StubConfig    `yaml:"stub"`
	Scan    ScanConfig    `yaml:"scan"`
	Logging LoggingConfig `yaml:"logging"`
}

// StubConfig holds template configuration.
type StubConfig struct {
	FailStatement string `yaml:"fail_statement"` // Last line of every stub; must fail when run
}

// ScanConfig holds file discovery configuration for the scan command.
type ScanConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultFailStatement signals "not implemented" in the generated test body.
const DefaultFailStatement = "throw new NotImplementedException();"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Stub: StubConfig{
			FailStatement: DefaultFailStatement,
		},
		Scan: ScanConfig{
			Includes: []string{"**/*Test.cs", "**/*Tests.cs", "**/*Spec.cs"},
			Excludes: []string{"**/bin/**", "**/obj/**", "**/.git/**", "**/packages/**"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.Stub.FailStatement == "" {
		cfg.Stub.FailStatement = DefaultFailStatement
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for stubgen.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "stubgen.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".stubgen", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
