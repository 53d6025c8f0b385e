package rules

import (
	"regexp"

	"github.com/leapstack-labs/sqlint/pkg/lint"
	"github.com/leapstack-labs/sqlint/pkg/lint/sqltext"
)

func init() {
	SelectStar.Check = checkSelectStar
	lint.Register(SelectStar)
}

// SelectStar flags SELECT * and SELECT DISTINCT * projections.
var SelectStar = lint.RuleDef{
	ID:          "SELECT_STAR",
	Name:        "convention.select_star",
	Group:       "convention",
	Description: "Avoid SELECT *; list columns explicitly.",
	Severity:    lint.SeverityWarning,
}

// The star must directly follow SELECT [DISTINCT], so COUNT(*) and other
// aggregate arguments never match.
var selectStarRe = regexp.MustCompile(`(?i)\bSELECT\s+(?:DISTINCT\s+)?\*`)

func checkSelectStar(text *sqltext.Text, _ map[string]any) []lint.Violation {
	var violations []lint.Violation
	for _, m := range selectStarRe.FindAllStringIndex(text.Clean, -1) {
		violations = append(violations, lint.Violation{
			RuleID:   SelectStar.ID,
			Severity: SelectStar.Severity,
			Line:     text.LineAt(m[0]),
			Message:  "Avoid SELECT *; list columns explicitly.",
		})
	}
	return violations
}
