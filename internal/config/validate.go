package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateFusion(); err != nil {
		return err
	}
	return c.validateReport()
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateFusion() error {
	if c.Fusion.ReviewTier < 1 || c.Fusion.ReviewTier > 3 {
		return errors.New("fusion.review_tier must be between 1 and 3")
	}
	return nil
}

func (c *Config) validateReport() error {
	switch c.Report.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("report.color must be auto, always, or never, got %q", c.Report.Color)
	}
	if c.Report.SheetColumnWidth <= 0 {
		return errors.New("report.sheet_column_width must be positive")
	}
	return nil
}
