package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix = "QTKIT"
	// EnvAPIOverride is the environment variable naming the preferred
	// binding dialect.
	EnvAPIOverride = "QT_API"
)

// LoaderOptions controls configuration loading.
type LoaderOptions struct {
	// ConfigFile is an explicit config file path. Empty means search the
	// standard locations.
	ConfigFile string
	// EnvFile is an explicit .env file path. Empty means load ./.env when
	// present.
	EnvFile string
}

// Load reads configuration from the given file (YAML), .env, and
// environment, then applies defaults and validates.
func Load(configFile string) (*Config, error) {
	return LoadWithOptions(LoaderOptions{ConfigFile: configFile})
}

// FromEnv builds configuration from environment variables alone.
func FromEnv() (*Config, error) {
	return LoadWithOptions(LoaderOptions{})
}

// LoadWithOptions reads configuration according to the options.
func LoadWithOptions(opts LoaderOptions) (*Config, error) {
	loadEnvFile(opts.EnvFile)

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// QT_API is read unprefixed so existing tooling keeps working.
	if err := v.BindEnv("api", EnvAPIOverride); err != nil {
		return nil, fmt.Errorf("binding %s: %w", EnvAPIOverride, err)
	}
	// Keys must be bound explicitly for Unmarshal to see pure-env values.
	for _, key := range []string{"surface", "logging.level", "logging.format", "logging.output"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	configFile := opts.ConfigFile
	if configFile == "" {
		configFile = findConfigFile()
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// loadEnvFile loads a .env file if one exists. Missing files are not an
// error; .env is a development convenience.
func loadEnvFile(path string) {
	if path != "" {
		_ = godotenv.Load(path)
		return
	}
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
}

// findConfigFile searches the standard locations for a qtkit.yml (or a
// bare config.yml) in the working directory.
func findConfigFile() string {
	searchPaths := []string{
		"./qtkit.yml",
		"./config/qtkit.yml",
		"./config.yml",
	}
	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
