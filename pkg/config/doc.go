// Package config loads and validates the tool's configuration.
//
// Configuration is an explicit value assembled once at startup: built-in
// defaults, overridden by an optional TOML file, overridden by command-line
// flags. Nothing in the rest of the program reads ambient state; every
// component receives the settings it needs at construction.
package config
