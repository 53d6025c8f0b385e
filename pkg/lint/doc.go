// Package lint provides the rule engine for SQL style analysis.
//
// # Architecture
//
// The package is organized in three layers:
//
//  1. Root package (pkg/lint/): shared contracts (Violation, Rule, RuleDef),
//     the global registry, the Analyzer, and the Report aggregator
//  2. Text subsystem (pkg/lint/sqltext/): the shared normalization applied
//     once per input before any rule runs
//  3. Rules (pkg/lint/rules/): the built-in rule implementations
//
// # Rule Registration
//
// Rules are registered via init() functions when their packages are imported:
//
//	import _ "github.com/leapstack-labs/sqlint/pkg/lint/rules"
//
// The registry yields rules sorted by ID so report ordering is reproducible
// across runs. A malformed rule definition is excluded from the active set and
// recorded as a load warning; it never aborts the process.
//
// # Running
//
// The Analyzer runs every active rule against a single input:
//
//	analyzer := lint.NewAnalyzer(lint.NewConfig())
//	result := analyzer.LintText("SELECT * FROM t", "query.sql")
//
// or folds a whole file source into a Report:
//
//	report, err := analyzer.Run(ctx, src)
//	os.Exit(report.ExitStatus())
//
// Rules never execute SQL and never build a full parse tree; analysis is a
// single pass of pattern matching over the normalized text. When a rule cannot
// determine applicability it fails open and reports nothing.
//
// # Creating Custom Rules
//
// Use RuleDef for data-driven rules:
//
//	var MyRule = lint.RuleDef{
//		ID:          "MY_RULE",
//		Name:        "custom.my_rule",
//		Group:       "custom",
//		Description: "My custom rule description",
//		Severity:    lint.SeverityWarning,
//		Check:       checkMyRule,
//	}
//
//	func init() {
//		lint.Register(MyRule)
//	}
//
// Types implementing the Rule interface directly can be added with
// RegisterRule. The Analyzer needs no changes either way.
package lint
