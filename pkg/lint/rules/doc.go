// Package rules provides the built-in SQL style rules.
//
// Rules are grouped by category following SQLFluff-style naming:
//   - ambiguous: constructs with nondeterministic or surprising results
//     (LIMIT_WITHOUT_ORDERBY, WINDOW_ORDERBY)
//   - convention: style conventions (SELECT_STAR, KEYWORD_CASE)
//   - references: column reference hygiene (UNQUALIFIED_COLUMNS)
//
// Every rule is a pure pattern check over the shared normalized text from
// pkg/lint/sqltext; none of them parses SQL. When a rule cannot determine
// applicability it stays silent rather than risk a false positive.
//
// To register all rules with the global lint registry, import this package
// with a blank identifier:
//
//	import _ "github.com/leapstack-labs/sqlint/pkg/lint/rules"
package rules
