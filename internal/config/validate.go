package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable. It runs before any export
// file is read so threshold mistakes surface at startup.
func (c *Config) Validate() error {
	if err := c.validateClustering(); err != nil {
		return err
	}
	if err := c.validateReport(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateClustering() error {
	ratio := c.Clustering.RatioThreshold
	if ratio <= 0 || ratio >= 1 {
		return fmt.Errorf("clustering.ratio_threshold must be strictly between 0 and 1, got %v", ratio)
	}
	if c.Clustering.TrustTopics && len(c.Clustering.Labels) > 0 {
		return errors.New("clustering.trust_topics cannot be combined with an explicit clustering.labels map")
	}
	return nil
}

func (c *Config) validateReport() error {
	if c.Report.RedMinutes < 0 {
		return errors.New("report.red_minutes must be >= 0")
	}
	if c.Report.YellowMinutes <= c.Report.RedMinutes {
		return errors.New("report.yellow_minutes must be greater than report.red_minutes")
	}
	if c.Report.GreenMinutes <= c.Report.YellowMinutes {
		return errors.New("report.green_minutes must be greater than report.yellow_minutes")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
