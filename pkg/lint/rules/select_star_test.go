package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlint/pkg/lint/sqltext"
)

func TestSelectStar(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want int
	}{
		{"bare star", "SELECT * FROM customers", 1},
		{"distinct star", "SELECT DISTINCT * FROM customers", 1},
		{"lowercase", "select * from customers", 1},
		{"count star not flagged", "SELECT COUNT(*) FROM customers", 0},
		{"explicit columns", "SELECT id, name FROM customers", 0},
		{"star in comment", "-- SELECT * is bad\nSELECT id FROM t", 0},
		{"star in string", "SELECT 'SELECT *' AS s FROM t", 0},
		{"two statements", "SELECT * FROM a;\nSELECT * FROM b;", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := sqltext.Normalize("q.sql", tt.sql)
			got := checkSelectStar(text, nil)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestSelectStarViolationShape(t *testing.T) {
	text := sqltext.Normalize("q.sql", "SELECT id FROM a;\nSELECT * FROM b;")
	got := checkSelectStar(text, nil)

	require.Len(t, got, 1)
	assert.Equal(t, "SELECT_STAR", got[0].RuleID)
	assert.Equal(t, 2, got[0].Line)
	assert.NotEmpty(t, got[0].Message)
}
