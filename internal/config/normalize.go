package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	c.normalizeReport()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = ExpandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.HistoryDB) != "" {
		if c.Paths.HistoryDB, err = ExpandPath(c.Paths.HistoryDB); err != nil {
			return fmt.Errorf("paths.history_db: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeReport() {
	c.Report.Color = strings.ToLower(strings.TrimSpace(c.Report.Color))
	if c.Report.Color == "" {
		c.Report.Color = defaultColor
	}
	if c.Report.SheetColumnWidth <= 0 {
		c.Report.SheetColumnWidth = defaultSheetColumnWidth
	}
}
