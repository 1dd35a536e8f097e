package config

import (
	"fmt"

	"github.com/kbukum/qtkit/logger"
	"github.com/kbukum/qtkit/validation"
)

// Config contains the settings consumed by binding resolution.
type Config struct {
	// Surface is the configured rendering surface target. A non-Qt value
	// is allowed and selects the ambiguous manual-embedding context.
	Surface Surface `yaml:"surface" mapstructure:"surface" validate:"required"`
	// API is the raw binding override token, usually sourced from the
	// QT_API environment variable. Empty means no preference. Token
	// validity is checked by the resolver, not here, so that an invalid
	// token surfaces as a resolution ConfigError with the accepted set.
	API string `yaml:"api" mapstructure:"api"`
	// Logging configures the qtkit logger.
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.Surface == "" {
		c.Surface = SurfaceQt5Agg
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}
