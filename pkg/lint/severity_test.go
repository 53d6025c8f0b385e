package lint

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "unknown", Severity(99).String())
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in    string
		want  Severity
		valid bool
	}{
		{"error", SeverityError, true},
		{"WARNING", SeverityWarning, true},
		{"Info", SeverityInfo, true},
		{"fatal", SeverityWarning, false},
		{"", SeverityWarning, false},
	}
	for _, tt := range tests {
		got, ok := ParseSeverity(tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
		assert.Equal(t, tt.valid, ok, "input %q", tt.in)
	}
}

func TestSeverityMarshalsAsName(t *testing.T) {
	data, err := json.Marshal(Violation{RuleID: "SELECT_STAR", Severity: SeverityWarning})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"severity":"warning"`)
}
