// Package config loads client configuration from three layered sources:
// built-in defaults, an optional JSON file (-c/-config), and command-line
// flags. Later sources override earlier ones.
//
// The JSON loader uses timex.Duration for the request timeout, so values can
// be either strings like "10s" or integer nanoseconds.
package config
