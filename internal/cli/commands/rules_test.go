package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlint/pkg/lint"
)

func runRulesCmd(t *testing.T, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	cmd := NewRulesCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return &out, err
}

func TestRulesCommandListsBuiltins(t *testing.T) {
	out, err := runRulesCmd(t, "--format", "json")
	require.NoError(t, err)

	var infos []lint.RuleInfo
	require.NoError(t, json.Unmarshal(out.Bytes(), &infos))
	require.Len(t, infos, 5)

	ids := make([]string, 0, len(infos))
	for _, info := range infos {
		ids = append(ids, info.ID)
	}
	assert.Equal(t, []string{
		"KEYWORD_CASE",
		"LIMIT_WITHOUT_ORDERBY",
		"SELECT_STAR",
		"UNQUALIFIED_COLUMNS",
		"WINDOW_ORDERBY",
	}, ids, "rules list in ID order")
}

func TestRulesCommandGroupFilter(t *testing.T) {
	out, err := runRulesCmd(t, "--group", "ambiguous", "--format", "json")
	require.NoError(t, err)

	var infos []lint.RuleInfo
	require.NoError(t, json.Unmarshal(out.Bytes(), &infos))
	require.Len(t, infos, 2)
	for _, info := range infos {
		assert.Equal(t, "ambiguous", info.Group)
	}
}

func TestRulesCommandShowOne(t *testing.T) {
	out, err := runRulesCmd(t, "KEYWORD_CASE", "--format", "json")
	require.NoError(t, err)

	var info lint.RuleInfo
	require.NoError(t, json.Unmarshal(out.Bytes(), &info))
	assert.Equal(t, "KEYWORD_CASE", info.ID)
	assert.Equal(t, "convention", info.Group)
	assert.Equal(t, []string{"convention", "keywords"}, info.ConfigKeys)
}

func TestRulesCommandUnknownRule(t *testing.T) {
	_, err := runRulesCmd(t, "NOT_A_RULE", "--format", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown rule")
}
