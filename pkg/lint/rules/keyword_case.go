package rules

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/leapstack-labs/sqlint/pkg/lint"
	"github.com/leapstack-labs/sqlint/pkg/lint/sqltext"
)

func init() {
	KeywordCase.Check = checkKeywordCase
	lint.Register(KeywordCase)
}

// KeywordCase flags enumerated SQL keywords whose casing does not match the
// configured convention (default: uppercase). The keyword set and convention
// are configurable per rule options.
var KeywordCase = lint.RuleDef{
	ID:          "KEYWORD_CASE",
	Name:        "convention.keyword_case",
	Group:       "convention",
	Description: "Write SQL keywords in a consistent case (default uppercase).",
	Severity:    lint.SeverityWarning,
	ConfigKeys:  []string{"convention", "keywords"},
}

// DefaultKeywords is the enumerated keyword set checked when no override is
// configured. Multi-word entries match across any run of whitespace.
var DefaultKeywords = []string{
	"SELECT",
	"FROM",
	"WHERE",
	"GROUP BY",
	"ORDER BY",
	"LIMIT",
	"HAVING",
	"JOIN",
	"LEFT JOIN",
	"RIGHT JOIN",
	"INNER JOIN",
	"OUTER JOIN",
	"ON",
}

var defaultKeywordPatterns = buildKeywordPatterns(DefaultKeywords)

// buildKeywordPatterns compiles case-insensitive word-boundary patterns,
// longest keyword first so "LEFT JOIN" takes precedence over "JOIN".
func buildKeywordPatterns(keywords []string) []*regexp.Regexp {
	sorted := make([]string, len(keywords))
	copy(sorted, keywords)
	sort.Slice(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})

	patterns := make([]*regexp.Regexp, 0, len(sorted))
	for _, kw := range sorted {
		parts := strings.Fields(kw)
		for i, p := range parts {
			parts[i] = regexp.QuoteMeta(p)
		}
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+strings.Join(parts, `\s+`)+`\b`))
	}
	return patterns
}

func checkKeywordCase(text *sqltext.Text, opts map[string]any) []lint.Violation {
	convention := lint.GetStringOption(opts, "convention", "upper")
	recase := strings.ToUpper
	caseName := "uppercase"
	if convention == "lower" {
		recase = strings.ToLower
		caseName = "lowercase"
	}

	patterns := defaultKeywordPatterns
	if kws := lint.GetStringSliceOption(opts, "keywords", nil); len(kws) > 0 {
		patterns = buildKeywordPatterns(kws)
	}

	var violations []lint.Violation
	for lineNum, line := range text.CleanLines() {
		var accepted [][2]int
		for _, pat := range patterns {
			for _, m := range pat.FindAllStringIndex(line, -1) {
				if withinSpan(accepted, m[0], m[1]) {
					continue
				}
				accepted = append(accepted, [2]int{m[0], m[1]})

				matched := line[m[0]:m[1]]
				if matched == recase(matched) {
					continue
				}
				violations = append(violations, lint.Violation{
					RuleID:   KeywordCase.ID,
					Severity: KeywordCase.Severity,
					Line:     lineNum + 1,
					Message:  fmt.Sprintf("Keyword %q should be %s.", matched, caseName),
				})
			}
		}
	}
	return violations
}

func withinSpan(spans [][2]int, start, end int) bool {
	for _, s := range spans {
		if start >= s[0] && end <= s[1] {
			return true
		}
	}
	return false
}
