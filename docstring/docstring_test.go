package docstring_test

import (
	"testing"

	"github.com/Gobd/routedoc/docstring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrim(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"empty", "", ""},
		{"blank", "  \n\t\n", ""},
		{"single line", "  A greeting.  ", "A greeting."},
		{
			"indented body",
			"A greeting.\n        ---\n        description: hi\n        responses:\n            200:\n",
			"A greeting.\n---\ndescription: hi\nresponses:\n    200:",
		},
		{
			"leading blank lines",
			"\n\n    Greeting API.\n    ---\n    x-extension: yes\n\n",
			"Greeting API.\n---\nx-extension: yes",
		},
		{"tabs", "Doc.\n\t---\n\tx-a: b", "Doc.\n---\nx-a: b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, docstring.Trim(tt.doc))
		})
	}
}

func TestLoadYAML(t *testing.T) {
	doc := `A greeting endpoint.
            ---
            description: get a greeting
            responses:
                200:
                    description: said hi
            `

	got, err := docstring.LoadYAML(doc)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"description": "get a greeting",
		"responses": map[string]any{
			"200": map[string]any{"description": "said hi"},
		},
	}, got)
}

func TestLoadYAML_NoBlock(t *testing.T) {
	for _, doc := range []string{"", "Just prose.", "Prose\nover lines\n- not a delimiter"} {
		got, err := docstring.LoadYAML(doc)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{}, got, doc)
	}
}

func TestLoadYAML_NotAMapping(t *testing.T) {
	got, err := docstring.LoadYAML("Doc.\n---\n- a\n- b\n")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, got)

	got, err = docstring.LoadYAML("Doc.\n---\n")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, got)
}

func TestLoadYAML_Invalid(t *testing.T) {
	got, err := docstring.LoadYAML("Doc.\n---\ndescription: [oops\n")
	assert.Error(t, err)
	assert.Equal(t, map[string]any{}, got)
}

func TestLoadYAML_NestedLists(t *testing.T) {
	got, err := docstring.LoadYAML(`Doc.
---
parameters:
  - name: id
    in: path
    required: true
tags: [greeting]
`)
	require.NoError(t, err)

	params, ok := got["parameters"].([]any)
	require.True(t, ok)
	require.Len(t, params, 1)
	assert.Equal(t, "id", params[0].(map[string]any)["name"])
	assert.Equal(t, true, params[0].(map[string]any)["required"])
	assert.Equal(t, []any{"greeting"}, got["tags"])
}

func TestLoadYAML_CustomDelimiter(t *testing.T) {
	e := docstring.Extractor{Delimiter: "+++"}
	got, err := e.LoadYAML("Doc.\n--- not yaml\n+++\nsummary: custom\n")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"summary": "custom"}, got)
}

func TestLoadOperations(t *testing.T) {
	got, err := docstring.LoadOperations(`Greeting API.
---
x-extension: global metadata
description: dropped
get:
  summary: kept
trace:
  summary: dropped
`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"x-extension": "global metadata",
		"get":         map[string]any{"summary": "kept"},
	}, got)
}
