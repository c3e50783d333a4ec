// Package config loads gfxpack's application configuration: embedded
// defaults, the user's config file, GFXPACK_* environment variables and
// command line overrides, merged in that order.
package config
