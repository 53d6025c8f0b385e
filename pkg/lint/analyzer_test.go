package lint

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlint/internal/testutil"
	"github.com/leapstack-labs/sqlint/pkg/lint/sqltext"
)

// fakeSource supplies in-memory files, mirroring the disk walker's contract.
type fakeSource struct {
	files []SourceFile
	err   error
}

func (s *fakeSource) Files(_ context.Context) ([]SourceFile, error) {
	return s.files, s.err
}

func flagAllRule(id string) RuleDef {
	def := testRule(id)
	def.Check = func(text *sqltext.Text, _ map[string]any) []Violation {
		return []Violation{{
			RuleID:   id,
			Severity: SeverityWarning,
			Line:     1,
			Message:  "flagged",
		}}
	}
	return def
}

func TestLintTextRunsRulesInIDOrder(t *testing.T) {
	Clear()
	t.Cleanup(Clear)
	Register(flagAllRule("B_RULE"))
	Register(flagAllRule("A_RULE"))

	a := NewAnalyzer(nil)
	res := a.LintText("SELECT 1", "q.sql")

	require.Len(t, res.Violations, 2)
	assert.Equal(t, "A_RULE", res.Violations[0].RuleID)
	assert.Equal(t, "B_RULE", res.Violations[1].RuleID)
	assert.Equal(t, "q.sql", res.Violations[0].File, "analyzer stamps the file identifier")
}

func TestLintTextIdempotent(t *testing.T) {
	Clear()
	t.Cleanup(Clear)
	Register(flagAllRule("A_RULE"))
	Register(flagAllRule("B_RULE"))

	a := NewAnalyzer(nil)
	first := a.LintText("SELECT 1", "q.sql")
	second := a.LintText("SELECT 1", "q.sql")

	assert.Equal(t, first, second)
}

func TestLintTextSkipsDisabledRules(t *testing.T) {
	Clear()
	t.Cleanup(Clear)
	Register(flagAllRule("A_RULE"))
	Register(flagAllRule("B_RULE"))

	cfg := NewConfig().Disable("A_RULE")
	a := NewAnalyzer(cfg)
	res := a.LintText("SELECT 1", "q.sql")

	require.Len(t, res.Violations, 1)
	assert.Equal(t, "B_RULE", res.Violations[0].RuleID)
}

func TestLintTextPassesRuleOptions(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	var seen map[string]any
	def := testRule("OPTED")
	def.Check = func(_ *sqltext.Text, opts map[string]any) []Violation {
		seen = opts
		return nil
	}
	Register(def)

	cfg := NewConfig().SetRuleOptions("OPTED", map[string]any{"convention": "lower"})
	NewAnalyzer(cfg).LintText("SELECT 1", "q.sql")

	assert.Equal(t, map[string]any{"convention": "lower"}, seen)
}

func TestRulePanicBecomesSyntheticViolation(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	panicking := testRule("A_PANICS")
	panicking.Check = func(_ *sqltext.Text, _ map[string]any) []Violation {
		panic("regex exploded")
	}
	Register(panicking)
	Register(flagAllRule("B_RULE"))

	a := NewAnalyzer(nil)
	a.SetLogger(testutil.NewTestLogger(t))
	res := a.LintText("SELECT 1", "q.sql")

	require.Len(t, res.Violations, 2, "remaining rules still run after a panic")
	assert.Equal(t, RuleInternalError, res.Violations[0].RuleID)
	assert.Equal(t, SeverityError, res.Violations[0].Severity)
	assert.Contains(t, res.Violations[0].Message, "A_PANICS")
	assert.Contains(t, res.Violations[0].Message, "regex exploded")
	assert.Equal(t, "q.sql", res.Violations[0].File)
	assert.Equal(t, "B_RULE", res.Violations[1].RuleID)
}

func TestRunSortsResultsByFile(t *testing.T) {
	Clear()
	t.Cleanup(Clear)
	Register(flagAllRule("A_RULE"))

	src := &fakeSource{files: []SourceFile{
		{File: "c.sql", SQL: "SELECT 1"},
		{File: "a.sql", SQL: "SELECT 1"},
		{File: "b.sql", SQL: "SELECT 1"},
	}}

	a := NewAnalyzer(nil)
	a.SetJobs(2)
	report, err := a.Run(context.Background(), src)
	require.NoError(t, err)

	results := report.Results()
	require.Len(t, results, 3)
	assert.Equal(t, "a.sql", results[0].File)
	assert.Equal(t, "b.sql", results[1].File)
	assert.Equal(t, "c.sql", results[2].File)
}

func TestRunUnreadableFileBecomesReadErrorViolation(t *testing.T) {
	Clear()
	t.Cleanup(Clear)
	Register(flagAllRule("A_RULE"))

	src := &fakeSource{files: []SourceFile{
		{File: "good.sql", SQL: "SELECT 1"},
		{File: "bad.sql", Err: errors.New("permission denied")},
	}}

	a := NewAnalyzer(nil)
	a.SetLogger(testutil.NewTestLogger(t))
	report, err := a.Run(context.Background(), src)
	require.NoError(t, err, "one unreadable file must not abort the run")

	results := report.Results()
	require.Len(t, results, 2)

	bad := results[0] // "bad.sql" sorts first
	require.Len(t, bad.Violations, 1)
	assert.Equal(t, ReadError, bad.Violations[0].RuleID)
	assert.Equal(t, SeverityError, bad.Violations[0].Severity)
	assert.Equal(t, "bad.sql", bad.Violations[0].File)
	assert.Contains(t, bad.Violations[0].Message, "permission denied")

	good := results[1]
	require.Len(t, good.Violations, 1)
	assert.Equal(t, "A_RULE", good.Violations[0].RuleID)

	assert.Equal(t, 1, report.ExitStatus())
}

func TestRunSourceFailureAborts(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	src := &fakeSource{err: errors.New("no such directory")}
	_, err := NewAnalyzer(nil).Run(context.Background(), src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such directory")
}

func TestRunEmptySource(t *testing.T) {
	Clear()
	t.Cleanup(Clear)
	Register(flagAllRule("A_RULE"))

	report, err := NewAnalyzer(nil).Run(context.Background(), &fakeSource{})
	require.NoError(t, err)
	assert.Equal(t, 0, report.Len())
	assert.Equal(t, 0, report.ExitStatus())
}

func TestRunCancelledContext(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &fakeSource{files: []SourceFile{{File: "a.sql", SQL: "SELECT 1"}}}
	_, err := NewAnalyzer(nil).Run(ctx, src)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
