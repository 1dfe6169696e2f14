// Package config loads a TOML configuration file describing the
// ambiguity window and the set of Lua binding scripts to load, and can
// watch that file (and the scripts it names) for changes to support
// hot reload.
package config
