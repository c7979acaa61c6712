package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLabels()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.ExportsDir, err = expandPath(strings.TrimSpace(c.Paths.ExportsDir)); err != nil {
		return fmt.Errorf("paths.exports_dir: %w", err)
	}
	if c.Paths.RosterPath, err = expandPath(strings.TrimSpace(c.Paths.RosterPath)); err != nil {
		return fmt.Errorf("paths.roster_path: %w", err)
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLabels() {
	if len(c.Clustering.Labels) == 0 {
		return
	}
	cleaned := make(map[string]string, len(c.Clustering.Labels))
	for file, label := range c.Clustering.Labels {
		file = strings.TrimSpace(file)
		label = strings.TrimSpace(label)
		if file == "" || label == "" {
			continue
		}
		cleaned[file] = label
	}
	c.Clustering.Labels = cleaned
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
