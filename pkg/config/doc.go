// Package config loads stau's configuration.
//
// Sources are layered with koanf, each overriding the previous one:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. user config, $XDG_CONFIG_HOME/stau/config.toml
//  3. root config, <dotfiles>/.stau.toml
//  4. STAU_* environment variables (STAU_DIR -> dir, __ -> nesting)
//
// Command line flags are applied by the caller on top of the result.
package config
