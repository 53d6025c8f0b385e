package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlint/pkg/lint/sqltext"
)

func noopCheck(_ *sqltext.Text, _ map[string]any) []Violation { return nil }

func testRule(id string) RuleDef {
	return RuleDef{
		ID:          id,
		Name:        "test." + id,
		Group:       "test",
		Description: "test rule",
		Severity:    SeverityWarning,
		Check:       noopCheck,
	}
}

func TestRegisterAndLookup(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register(testRule("RULE_A"))
	require.Equal(t, 1, Count())

	rule, ok := GetByID("RULE_A")
	require.True(t, ok)
	assert.Equal(t, "RULE_A", rule.ID())
	assert.Equal(t, "test.RULE_A", rule.Name())
	assert.Equal(t, SeverityWarning, rule.Severity())

	_, ok = GetByID("MISSING")
	assert.False(t, ok)
}

func TestActiveSortedByID(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register(testRule("ZULU"))
	Register(testRule("ALPHA"))
	Register(testRule("MIKE"))

	active := Active()
	require.Len(t, active, 3)
	assert.Equal(t, "ALPHA", active[0].ID())
	assert.Equal(t, "MIKE", active[1].ID())
	assert.Equal(t, "ZULU", active[2].ID())
}

func TestRegisterMalformedRuleExcludedWithWarning(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register(RuleDef{Name: "test.no_id", Check: noopCheck})
	Register(RuleDef{ID: "NO_CHECK"})
	RegisterRule(nil)
	Register(testRule("GOOD"))

	assert.Equal(t, 1, Count())
	warnings := LoadWarnings()
	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "empty ID")
	assert.Contains(t, warnings[1], "NO_CHECK")
}

func TestRegisterDuplicateKeepsFirst(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	first := testRule("DUP")
	first.Description = "first"
	second := testRule("DUP")
	second.Description = "second"

	Register(first)
	Register(second)

	assert.Equal(t, 1, Count())
	rule, ok := GetByID("DUP")
	require.True(t, ok)
	assert.Equal(t, "first", rule.Description())

	warnings := LoadWarnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "DUP")
}

func TestGetByGroup(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	a := testRule("A")
	a.Group = "convention"
	b := testRule("B")
	b.Group = "ambiguous"
	c := testRule("C")
	c.Group = "convention"
	Register(a)
	Register(b)
	Register(c)

	got := GetByGroup("convention")
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].ID())
	assert.Equal(t, "C", got[1].ID())
}

func TestAllRulesReturnsInfo(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	def := testRule("INFO")
	def.ConfigKeys = []string{"convention"}
	Register(def)

	infos := AllRules()
	require.Len(t, infos, 1)
	assert.Equal(t, "INFO", infos[0].ID)
	assert.Equal(t, "test", infos[0].Group)
	assert.Equal(t, []string{"convention"}, infos[0].ConfigKeys)
}

func TestWrapRuleDefUnwrap(t *testing.T) {
	def := testRule("WRAPPED")
	rule := WrapRuleDef(def)

	w, ok := rule.(interface{ Unwrap() RuleDef })
	require.True(t, ok)
	assert.Equal(t, "WRAPPED", w.Unwrap().ID)
}
