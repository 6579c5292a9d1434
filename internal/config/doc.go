// Package config assembles the icebox runtime configuration from several
// sources and exposes it as a single validated structure.
//
// Sources are merged in priority order: command-line flags, environment
// variables (prefixed ICEBOX_), an optional JSON file, and finally built-in
// defaults. Merging is performed with mergo, so a later source only fills
// fields the earlier sources left empty.
package config
