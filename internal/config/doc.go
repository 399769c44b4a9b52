// Package config loads, normalizes, and validates scoremerge configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The lookup order is an explicit --config
// path, the SCOREMERGE_CONFIG environment variable, then
// ~/.config/scoremerge/config.toml; a missing file just means defaults.
//
// Always obtain settings through this package so downstream code receives
// expanded paths and clear validation errors.
package config
