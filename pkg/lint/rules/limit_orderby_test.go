package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlint/pkg/lint/sqltext"
)

func TestLimitWithoutOrderBy(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want int
	}{
		{"bare limit", "SELECT id FROM t LIMIT 10", 1},
		{"ordered limit", "SELECT id FROM t ORDER BY id LIMIT 10", 0},
		{"no limit", "SELECT id FROM t", 0},
		{"limit in subquery ignored", "SELECT id FROM (SELECT id FROM t LIMIT 5) s", 0},
		{"order by in subquery does not count", "SELECT id FROM (SELECT id FROM t ORDER BY id) s LIMIT 5", 1},
		{"column named limit", "SELECT limit_count FROM t", 0},
		{"lowercase", "select id from t limit 10", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := sqltext.Normalize("q.sql", tt.sql)
			assert.Len(t, checkLimitWithoutOrderBy(text, nil), tt.want)
		})
	}
}

func TestLimitWithoutOrderByViolationShape(t *testing.T) {
	text := sqltext.Normalize("q.sql", "SELECT id\nFROM t\nLIMIT 10")
	got := checkLimitWithoutOrderBy(text, nil)

	require.Len(t, got, 1)
	assert.Equal(t, "LIMIT_WITHOUT_ORDERBY", got[0].RuleID)
	assert.Equal(t, 3, got[0].Line)
}
