// Package config loads conversion settings for the pitchgrid CLI from JSON or
// YAML files.
package config
