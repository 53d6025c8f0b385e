package rules

import (
	"regexp"

	"github.com/leapstack-labs/sqlint/pkg/lint"
	"github.com/leapstack-labs/sqlint/pkg/lint/sqltext"
)

func init() {
	WindowOrderBy.Check = checkWindowOrderBy
	lint.Register(WindowOrderBy)
}

// WindowOrderBy flags window specifications lacking an ORDER BY clause.
// Without one, functions like ROW_NUMBER and LAG produce nondeterministic
// results.
var WindowOrderBy = lint.RuleDef{
	ID:          "WINDOW_ORDERBY",
	Name:        "ambiguous.window_order_by",
	Group:       "ambiguous",
	Description: "Window specifications should include ORDER BY.",
	Severity:    lint.SeverityWarning,
}

var (
	overOpenRe = regexp.MustCompile(`(?i)\bOVER\s*\(`)
	orderByRe  = regexp.MustCompile(`(?i)\bORDER\s+BY\b`)
)

func checkWindowOrderBy(text *sqltext.Text, _ map[string]any) []lint.Violation {
	var violations []lint.Violation
	for _, m := range overOpenRe.FindAllStringIndex(text.Clean, -1) {
		// Only the parenthesized window spec is in scope; an unbalanced
		// paren means we cannot delimit it, so stay silent.
		spec, _, ok := sqltext.BalancedSpan(text.Clean, m[1]-1)
		if !ok {
			continue
		}
		if orderByRe.MatchString(spec) {
			continue
		}
		violations = append(violations, lint.Violation{
			RuleID:   WindowOrderBy.ID,
			Severity: WindowOrderBy.Severity,
			Line:     text.LineAt(m[0]),
			Message:  "Window specification is missing ORDER BY in OVER (...).",
		})
	}
	return violations
}
