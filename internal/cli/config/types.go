// Package config provides configuration management for the sqlint CLI.
//
// Configuration is layered: built-in defaults, then an optional sqlint.yaml
// found in or above the working directory, then SQLINT_* environment
// variables, then CLI flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	Verbose      bool        `koanf:"verbose"`
	OutputFormat string      `koanf:"output"`
	Jobs         int         `koanf:"jobs"`
	Lint         *LintConfig `koanf:"lint"`
}

// LintConfig holds rule engine settings.
type LintConfig struct {
	// Disabled lists rule IDs to skip.
	Disabled []string `koanf:"disabled"`

	// Rules maps rule ID to rule-specific options, e.g.
	//   rules:
	//     KEYWORD_CASE:
	//       convention: lower
	Rules map[string]map[string]any `koanf:"rules"`
}
