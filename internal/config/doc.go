// Package config loads, normalizes, and validates muster configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: export and roster locations, the clustering ratio
// threshold, attendance bucket thresholds, the sparse label map, manual
// roster overrides, and logging settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors before any export is read.
package config
