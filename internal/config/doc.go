// Package config loads, normalizes, and validates irspec configuration data.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours the IRSPEC_CATALOG_DIR environment override. The
// Config type centralizes the display, decoder, and catalog knobs the CLI
// needs so every command sees the same resolved values.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical log formats, and clear validation errors.
package config
