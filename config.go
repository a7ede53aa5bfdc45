package healthcalc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	DefaultConfigPath = "./config.yaml" // Used when HEALTHCALC_CONFIG is unset.
	DefaultLogLevel   = "info"
	configPathEnv     = "HEALTHCALC_CONFIG"
	logLevelEnv       = "HEALTHCALC_LOG_LEVEL"
)

// Config is the user's config.yaml.
type Config struct {
	LogLevel string `yaml:"log_level"`
	// Profile holds measurements evaluated by the profile command. It is
	// only ever read.
	Profile *Measurements `yaml:"profile"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	c := &Config{LogLevel: DefaultLogLevel}
	if l := os.Getenv(logLevelEnv); l != "" {
		c.LogLevel = l
	}
	return c
}

// ConfigPath returns the config file location.
func ConfigPath() string {
	if p := os.Getenv(configPathEnv); p != "" {
		return p
	}
	return DefaultConfigPath
}

// LoadEnv loads variables from a .env file in the working directory. A
// missing file is not an error.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// LoadConfig reads the YAML config at path. ${VAR} references are expanded
// from the environment before parsing. A missing file yields DefaultConfig
// and an error matching fs.ErrNotExist so callers can decide whether the
// file was required.
func LoadConfig(path string) (*Config, error) {
	c := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}

	expanded := []byte(os.ExpandEnv(string(data)))
	if err := yaml.Unmarshal(expanded, c); err != nil {
		return DefaultConfig(), fmt.Errorf("can't unmarshal %s: %w", path, err)
	}
	// The environment wins over the file.
	if l := os.Getenv(logLevelEnv); l != "" {
		c.LogLevel = l
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Profile != nil && c.Profile.Sex != "" {
		s, err := ParseSex(string(c.Profile.Sex))
		if err != nil {
			return DefaultConfig(), fmt.Errorf("profile in %s: %w", path, err)
		}
		c.Profile.Sex = s
	}

	return c, nil
}
