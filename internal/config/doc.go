// Package config loads, normalizes, and validates overcat configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from an explicit --config path,
// ~/.config/overcat/config.toml, or a project-local overcat.toml. A missing
// file is never an error; the tool runs with zero setup.
//
// Always obtain settings through this package so downstream code receives
// canonical log formats and clear validation errors.
package config
