// Test Type: Unit Test
// Description: Tests for the engine package - Handlebars rendering and helpers

package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/inflate/pkg/engine"
)

func TestHandlebars_Render(t *testing.T) {
	renderer := engine.Default()

	t.Run("variable_substitution", func(t *testing.T) {
		out, err := renderer.Render("Hello {{msg}}!", map[string]interface{}{
			"msg": "world",
		})
		require.NoError(t, err)
		assert.Equal(t, "Hello world!", out)
	})

	t.Run("nested_values", func(t *testing.T) {
		out, err := renderer.Render("{{user.name}} <{{user.email}}>", map[string]interface{}{
			"user": map[string]interface{}{
				"name":  "Ada",
				"email": "ada@example.com",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "Ada <ada@example.com>", out)
	})

	t.Run("missing_variable_renders_empty", func(t *testing.T) {
		out, err := renderer.Render("[{{absent}}]", map[string]interface{}{})
		require.NoError(t, err)
		assert.Equal(t, "[]", out)
	})

	t.Run("each_block", func(t *testing.T) {
		out, err := renderer.Render("{{#each items}}{{this}},{{/each}}", map[string]interface{}{
			"items": []string{"a", "b", "c"},
		})
		require.NoError(t, err)
		assert.Equal(t, "a,b,c,", out)
	})

	t.Run("html_escaping", func(t *testing.T) {
		data := map[string]interface{}{"v": "<b>"}

		escaped, err := renderer.Render("{{v}}", data)
		require.NoError(t, err)
		assert.Equal(t, "&lt;b&gt;", escaped)

		raw, err := renderer.Render("{{{v}}}", data)
		require.NoError(t, err)
		assert.Equal(t, "<b>", raw)
	})

	t.Run("malformed_template_fails", func(t *testing.T) {
		_, err := renderer.Render("{{#if x}}unclosed", nil)
		require.Error(t, err)
	})
}

func TestHandlebars_JSONHelper(t *testing.T) {
	renderer := engine.Default()

	out, err := renderer.Render("{{json settings}}", map[string]interface{}{
		"settings": map[string]interface{}{
			"debug": true,
			"name":  "site",
		},
	})
	require.NoError(t, err)

	// Indented JSON, not HTML-escaped
	assert.Equal(t, "{\n  \"debug\": true,\n  \"name\": \"site\"\n}", out)
}

func TestHandlebars_CustomHelpers(t *testing.T) {
	renderer := engine.NewHandlebars(map[string]interface{}{
		"shout": func(s string) string {
			return s + "!!!"
		},
	})

	out, err := renderer.Render("{{shout msg}}", map[string]interface{}{
		"msg": "go",
	})
	require.NoError(t, err)
	assert.Equal(t, "go!!!", out)
}
