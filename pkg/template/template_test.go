package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVars(t *testing.T) {
	tests := []struct {
		name     string
		template string
		expected []string
	}{
		{
			name:     "no placeholders",
			template: "plain text",
			expected: nil,
		},
		{
			name:     "single placeholder",
			template: "Hello, {{name}}!",
			expected: []string{"name"},
		},
		{
			name:     "multiple in encounter order",
			template: "{{greeting}}, {{name}}! Bye {{name}}.",
			expected: []string{"greeting", "name"},
		},
		{
			name:     "whitespace inside braces",
			template: "Hi {{ name }}",
			expected: []string{"name"},
		},
		{
			name:     "invalid names ignored",
			template: "{{1bad}} {{ok_name}} {{with-dash}}",
			expected: []string{"ok_name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Vars(tt.template))
		})
	}
}

func TestRender(t *testing.T) {
	t.Run("substitutes all placeholders", func(t *testing.T) {
		out, err := Render("Hello, {{name}}! You are user #{{user_id}}.", map[string]string{
			"name":    "Alice",
			"user_id": "42",
		})
		require.NoError(t, err)
		assert.Equal(t, "Hello, Alice! You are user #42.", out)
	})

	t.Run("missing variable errors with its name", func(t *testing.T) {
		_, err := Render("Hello, {{name}}!", map[string]string{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing variable name")
	})

	t.Run("empty binding is allowed", func(t *testing.T) {
		out, err := Render("a{{x}}b", map[string]string{"x": ""})
		require.NoError(t, err)
		assert.Equal(t, "ab", out)
	})

	t.Run("repeated placeholder renders each occurrence", func(t *testing.T) {
		out, err := Render("{{x}} and {{x}}", map[string]string{"x": "y"})
		require.NoError(t, err)
		assert.Equal(t, "y and y", out)
	})
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name      string
		template  string
		candidate string
		matched   bool
		vars      map[string]string
	}{
		{
			name:      "simple match",
			template:  "Hello, {{name}}! You are user #{{user_id}}.",
			candidate: "Hello, Alice! You are user #42.",
			matched:   true,
			vars:      map[string]string{"name": "Alice", "user_id": "42"},
		},
		{
			name:      "literal mismatch",
			template:  "Hello, {{name}}!",
			candidate: "Goodbye, Alice!",
			matched:   false,
		},
		{
			name:      "multiline binding",
			template:  "Summarize:\n{{text}}\nEnd.",
			candidate: "Summarize:\nline one\nline two\nEnd.",
			matched:   true,
			vars:      map[string]string{"text": "line one\nline two"},
		},
		{
			name:      "regex metacharacters in literals",
			template:  "cost ($): {{amount}}",
			candidate: "cost ($): 1.50",
			matched:   true,
			vars:      map[string]string{"amount": "1.50"},
		},
		{
			name:      "trailing placeholder takes remainder",
			template:  "Input: {{body}}",
			candidate: "Input: a: b: c",
			matched:   true,
			vars:      map[string]string{"body": "a: b: c"},
		},
		{
			name:      "empty binding accepted",
			template:  "a{{x}}b",
			candidate: "ab",
			matched:   true,
			vars:      map[string]string{"x": ""},
		},
		{
			name:      "no placeholders requires exact equality",
			template:  "static",
			candidate: "static",
			matched:   true,
			vars:      map[string]string{},
		},
		{
			name:      "no placeholders rejects different text",
			template:  "static",
			candidate: "static!",
			matched:   false,
		},
		{
			name:      "empty template matches only empty candidate",
			template:  "",
			candidate: "",
			matched:   true,
			vars:      map[string]string{},
		},
		{
			name:      "empty template rejects non-empty candidate",
			template:  "",
			candidate: "x",
			matched:   false,
		},
		{
			name:      "lazy matching is deterministic",
			template:  "{{a}}-{{b}}",
			candidate: "x-y-z",
			matched:   true,
			vars:      map[string]string{"a": "x", "b": "y-z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Match(tt.template, tt.candidate)
			require.Equal(t, tt.matched, res.Matched)
			if tt.matched && tt.vars != nil {
				assert.Equal(t, tt.vars, res.Variables)
			}
		})
	}
}

// Match is the inverse of Render: rendering with the recovered bindings must
// reproduce the candidate.
func TestMatchRenderRoundTrip(t *testing.T) {
	cases := []struct {
		template string
		vars     map[string]string
	}{
		{"Hello, {{name}}! You are user #{{user_id}}.", map[string]string{"name": "Bob", "user_id": "7"}},
		{"{{q}}\n\nAnswer briefly.", map[string]string{"q": "What is Go?"}},
		{"prefix {{a}} middle {{b}} suffix", map[string]string{"a": "one two", "b": "three"}},
	}

	for _, c := range cases {
		rendered, err := Render(c.template, c.vars)
		require.NoError(t, err)

		res := Match(c.template, rendered)
		require.True(t, res.Matched, "template %q should match its own rendering", c.template)

		again, err := Render(c.template, res.Variables)
		require.NoError(t, err)
		assert.Equal(t, rendered, again)
	}
}
