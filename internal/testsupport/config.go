package testsupport

import (
	"path/filepath"
	"testing"

	"muster/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.ExportsDir = filepath.Join(base, "exports")
	cfg.Paths.RosterPath = filepath.Join(base, "roster.csv")
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// WithRatioThreshold overrides the clustering ratio on the test config.
func WithRatioThreshold(ratio float64) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Clustering.RatioThreshold = ratio
	}
}

// WithLabels sets the file-origin label map on the test config.
func WithLabels(labels map[string]string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Clustering.Labels = labels
	}
}

// WithTrustTopics enables topic-derived labels on the test config.
func WithTrustTopics() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Clustering.TrustTopics = true
	}
}
