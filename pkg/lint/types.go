package lint

import (
	"github.com/leapstack-labs/sqlint/pkg/lint/sqltext"
)

// Reserved rule IDs for synthetic violations raised by the engine itself,
// not by a lint rule. Consumers can filter on these to separate genuine
// style issues from tooling failures.
const (
	// RuleInternalError tags a violation produced when a rule panics
	// during evaluation.
	RuleInternalError = "RULE_INTERNAL_ERROR"

	// ReadError tags a violation produced when an input file cannot be
	// read or decoded.
	ReadError = "INTERNAL_READ_ERROR"
)

// Violation is a single reported style issue. It is a plain value: once
// constructed it is never mutated, and it carries only the raising rule's ID,
// never a reference to the rule itself.
type Violation struct {
	RuleID   string   `json:"rule_id"`
	Severity Severity `json:"severity"`
	File     string   `json:"file"`
	Line     int      `json:"line,omitempty"` // 1-based; 0 when the rule cannot localize the issue
	Message  string   `json:"message"`
}

// CheckFunc analyzes normalized SQL text and returns violations.
// The opts parameter contains rule-specific options from configuration.
// Check functions must be pure: no state may be retained between calls,
// because the same registry instance is reused across many files.
type CheckFunc func(text *sqltext.Text, opts map[string]any) []Violation

// RuleDef is a data-driven rule definition.
// Rules are stateless - all context comes via the Check function parameters.
type RuleDef struct {
	ID          string    // Stable identifier, e.g., "SELECT_STAR"
	Name        string    // Human-readable name, e.g., "convention.select_star"
	Group       string    // Category, e.g., "convention", "ambiguous", "references"
	Description string    // Human-readable description
	Severity    Severity  // Fixed severity; not configurable at call time
	Check       CheckFunc // The check function
	ConfigKeys  []string  // Configuration keys this rule accepts
}

// Rule is the interface all lint rules implement. Built-in rules are RuleDef
// values wrapped by the registry; collaborators may register their own
// implementations directly.
type Rule interface {
	// ID returns the stable identifier, e.g., "SELECT_STAR"
	ID() string

	// Name returns the human-readable name, e.g., "convention.select_star"
	Name() string

	// Group returns the category, e.g., "convention", "ambiguous"
	Group() string

	// Description returns a human-readable description
	Description() string

	// Severity returns the fixed severity for this rule's violations
	Severity() Severity

	// ConfigKeys returns configuration keys this rule accepts
	ConfigKeys() []string

	// Check analyzes normalized SQL text and returns violations.
	Check(text *sqltext.Text, opts map[string]any) []Violation
}

// RuleInfo provides metadata about a rule for documentation/tooling.
// This is a DTO - it carries data without behavior.
type RuleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Group       string   `json:"group"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	ConfigKeys  []string `json:"config_keys,omitempty"`
}

// GetRuleInfo extracts metadata from a Rule for documentation/tooling.
func GetRuleInfo(r Rule) RuleInfo {
	return RuleInfo{
		ID:          r.ID(),
		Name:        r.Name(),
		Group:       r.Group(),
		Description: r.Description(),
		Severity:    r.Severity(),
		ConfigKeys:  r.ConfigKeys(),
	}
}

// wrappedRuleDef wraps a RuleDef to implement Rule.
type wrappedRuleDef struct {
	def RuleDef
}

// WrapRuleDef wraps a RuleDef to implement the Rule interface.
func WrapRuleDef(def RuleDef) Rule {
	return &wrappedRuleDef{def: def}
}

func (w *wrappedRuleDef) ID() string          { return w.def.ID }
func (w *wrappedRuleDef) Name() string        { return w.def.Name }
func (w *wrappedRuleDef) Group() string       { return w.def.Group }
func (w *wrappedRuleDef) Description() string { return w.def.Description }
func (w *wrappedRuleDef) Severity() Severity  { return w.def.Severity }
func (w *wrappedRuleDef) ConfigKeys() []string {
	return w.def.ConfigKeys
}

func (w *wrappedRuleDef) Check(text *sqltext.Text, opts map[string]any) []Violation {
	return w.def.Check(text, opts)
}

// Unwrap returns the underlying RuleDef.
func (w *wrappedRuleDef) Unwrap() RuleDef {
	return w.def
}
