package rules

import (
	"regexp"

	"github.com/leapstack-labs/sqlint/pkg/lint"
	"github.com/leapstack-labs/sqlint/pkg/lint/sqltext"
)

func init() {
	LimitWithoutOrderBy.Check = checkLimitWithoutOrderBy
	lint.Register(LimitWithoutOrderBy)
}

// LimitWithoutOrderBy flags a top-level LIMIT clause with no preceding
// top-level ORDER BY: the selected rows may differ between executions.
// Subqueries are out of scope; their contents are blanked before matching.
var LimitWithoutOrderBy = lint.RuleDef{
	ID:          "LIMIT_WITHOUT_ORDERBY",
	Name:        "ambiguous.limit_order_by",
	Group:       "ambiguous",
	Description: "LIMIT should follow an ORDER BY to be deterministic.",
	Severity:    lint.SeverityWarning,
}

// LIMIT must be followed by a count expression so a column or alias merely
// named "limit" does not match.
var limitRe = regexp.MustCompile(`(?i)\bLIMIT\s+(?:\d+|[\w.]+)`)

func checkLimitWithoutOrderBy(text *sqltext.Text, _ map[string]any) []lint.Violation {
	top := sqltext.MaskNested(text.Clean)

	loc := limitRe.FindStringIndex(top)
	if loc == nil {
		return nil
	}
	if before := orderByRe.FindStringIndex(top[:loc[0]]); before != nil {
		return nil
	}
	return []lint.Violation{{
		RuleID:   LimitWithoutOrderBy.ID,
		Severity: LimitWithoutOrderBy.Severity,
		Line:     text.LineAt(loc[0]),
		Message:  "LIMIT used without ORDER BY; results may be nondeterministic.",
	}}
}
