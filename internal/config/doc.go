// Package config loads courseplanner settings from an optional config file.
//
// Two file syntaxes are supported:
//
//   - YAML (.yaml, .yml), parsed with gopkg.in/yaml.v3
//   - JSON with comments (.json, .jsonc), cleaned with github.com/tidwall/jsonc
//     and parsed with encoding/json
//
// Settings are layered: built-in defaults, then the config file, then
// command-line flags (applied by the cli package).
package config
