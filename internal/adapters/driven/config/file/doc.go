// Package file provides a TOML-file implementation of the settings
// store driven port. Environment variables override file values, so
// API keys can be supplied via the environment or a .env file.
package file
