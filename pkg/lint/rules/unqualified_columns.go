package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/leapstack-labs/sqlint/pkg/lint"
	"github.com/leapstack-labs/sqlint/pkg/lint/sqltext"
)

func init() {
	UnqualifiedColumns.Check = checkUnqualifiedColumns
	lint.Register(UnqualifiedColumns)
}

// UnqualifiedColumns flags bare column references in the select list when the
// query reads from two or more relations. With a single relation there is no
// ambiguity and the rule stays silent regardless of qualification.
//
// A column counts as qualified iff it is immediately preceded by
// "identifier.". Select-list items that are anything other than a plain
// identifier (function calls, expressions, literals) are skipped: the rule
// prefers under-reporting over guessing.
var UnqualifiedColumns = lint.RuleDef{
	ID:          "UNQUALIFIED_COLUMNS",
	Name:        "references.unqualified_columns",
	Group:       "references",
	Description: "Qualify columns with a table alias when joining multiple relations.",
	Severity:    lint.SeverityWarning,
}

var (
	selectRe     = regexp.MustCompile(`(?i)\bSELECT\b`)
	fromRe       = regexp.MustCompile(`(?i)\bFROM\b`)
	joinRe       = regexp.MustCompile(`(?i)\bJOIN\b`)
	clauseEndRe  = regexp.MustCompile(`(?i)\b(?:WHERE|GROUP\s+BY|ORDER\s+BY|LIMIT|HAVING|WINDOW|UNION|INTERSECT|EXCEPT)\b|;`)
	bareIdentRe  = regexp.MustCompile(`^[A-Za-z_]\w*$`)
	qualifiedRe  = regexp.MustCompile(`^[A-Za-z_]\w*(?:\.[A-Za-z_]\w*)+$`)
	trailAliasRe = regexp.MustCompile(`(?i)\s+AS\s+[A-Za-z_]\w*$`)
	leadingKwRe  = regexp.MustCompile(`(?i)^(?:DISTINCT|ALL)\s+`)
)

// Identifiers that look bare but are not column references.
var nonColumnIdents = map[string]bool{
	"NULL":    true,
	"TRUE":    true,
	"FALSE":   true,
	"DEFAULT": true,
}

func checkUnqualifiedColumns(text *sqltext.Text, _ map[string]any) []lint.Violation {
	// Nested contents are blanked so subqueries and function arguments
	// cannot contribute relations or columns; parens survive, marking the
	// items we must skip.
	top := sqltext.MaskNested(text.Clean)

	if countRelations(top) < 2 {
		return nil
	}

	var violations []lint.Violation
	for _, item := range selectListItems(top) {
		name, ok := bareColumn(item.text)
		if !ok {
			continue
		}
		violations = append(violations, lint.Violation{
			RuleID:   UnqualifiedColumns.ID,
			Severity: UnqualifiedColumns.Severity,
			Line:     text.LineAt(item.offset),
			Message:  fmt.Sprintf("Column %q is unqualified; prefix it with a table alias.", name),
		})
	}
	return violations
}

// countRelations counts the relations read by the outermost query: the
// comma-separated entries of the FROM clause plus one per JOIN.
func countRelations(top string) int {
	from := fromRe.FindStringIndex(top)
	if from == nil {
		return 0
	}
	clause := top[from[1]:]
	if end := clauseEndRe.FindStringIndex(clause); end != nil {
		clause = clause[:end[0]]
	}

	joins := len(joinRe.FindAllString(clause, -1))

	base := clause
	if j := joinRe.FindStringIndex(clause); j != nil {
		base = clause[:j[0]]
	}
	if strings.TrimSpace(base) == "" {
		return joins
	}
	return strings.Count(base, ",") + 1 + joins
}

type listItem struct {
	offset int // byte offset of the item start within the text
	text   string
}

// selectListItems returns the comma-separated items between the first
// top-level SELECT and its FROM. Commas inside parens were already blanked,
// so a plain split is safe.
func selectListItems(top string) []listItem {
	sel := selectRe.FindStringIndex(top)
	if sel == nil {
		return nil
	}
	rest := top[sel[1]:]
	from := fromRe.FindStringIndex(rest)
	if from == nil {
		return nil
	}

	list := rest[:from[0]]
	base := sel[1]
	var items []listItem
	start := 0
	for i := 0; i <= len(list); i++ {
		if i == len(list) || list[i] == ',' {
			raw := list[start:i]
			trimmed := strings.TrimSpace(raw)
			if trimmed != "" {
				lead := strings.Index(raw, trimmed[:1])
				items = append(items, listItem{
					offset: base + start + lead,
					text:   trimmed,
				})
			}
			start = i + 1
		}
	}
	return items
}

// bareColumn reports whether a select-list item is a single unqualified
// column reference, returning its name. Anything else - qualified
// references, calls, expressions, the star - is not flagged.
func bareColumn(item string) (string, bool) {
	item = leadingKwRe.ReplaceAllString(item, "")
	item = trailAliasRe.ReplaceAllString(item, "")
	item = strings.TrimSpace(item)

	if qualifiedRe.MatchString(item) {
		return "", false
	}
	if !bareIdentRe.MatchString(item) {
		return "", false
	}
	if nonColumnIdents[strings.ToUpper(item)] {
		return "", false
	}
	return item, true
}
