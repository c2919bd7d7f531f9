// Package config loads, normalizes, and validates the marquee configuration
// file.
//
// Configuration lives in a TOML file (default ~/.config/marquee/config.toml,
// with a project-local marquee.toml fallback). Load applies defaults first,
// then file values, then path expansion and validation, so callers always see
// a usable, absolute-path config or an error.
package config
