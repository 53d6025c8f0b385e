package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetStringOption(t *testing.T) {
	opts := map[string]any{"convention": "lower", "count": 3}

	assert.Equal(t, "lower", GetStringOption(opts, "convention", "upper"))
	assert.Equal(t, "upper", GetStringOption(opts, "missing", "upper"))
	assert.Equal(t, "upper", GetStringOption(opts, "count", "upper"), "wrong type falls back to default")
	assert.Equal(t, "upper", GetStringOption(nil, "convention", "upper"))
}

func TestGetStringSliceOption(t *testing.T) {
	fallback := []string{"SELECT"}

	assert.Equal(t, []string{"a", "b"},
		GetStringSliceOption(map[string]any{"k": []string{"a", "b"}}, "k", fallback))

	// YAML/JSON decoding produces []any.
	assert.Equal(t, []string{"a", "b"},
		GetStringSliceOption(map[string]any{"k": []any{"a", "b"}}, "k", fallback))

	assert.Equal(t, []string{"a"},
		GetStringSliceOption(map[string]any{"k": []any{"a", 7}}, "k", fallback),
		"non-string elements are dropped")

	assert.Equal(t, fallback, GetStringSliceOption(map[string]any{"k": "scalar"}, "k", fallback))
	assert.Equal(t, fallback, GetStringSliceOption(nil, "k", fallback))
	assert.Equal(t, fallback, GetStringSliceOption(map[string]any{}, "k", fallback))
}

func TestGetOptionTyped(t *testing.T) {
	opts := map[string]any{"max": 10, "enabled": true}

	assert.Equal(t, 10, GetOption(opts, "max", 0))
	assert.True(t, GetOption(opts, "enabled", false))
	assert.Equal(t, 5, GetOption(opts, "missing", 5))
}
