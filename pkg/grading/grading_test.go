package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptlens/promptlens/pkg/models"
)

func TestRenderPrompt(t *testing.T) {
	t.Run("substitutes context", func(t *testing.T) {
		out := RenderPrompt("Judge this:\n{{context}}\nScore it.", "the answer")
		assert.Equal(t, "Judge this:\nthe answer\nScore it.", out)
	})

	t.Run("doubled braces escape to single", func(t *testing.T) {
		out := RenderPrompt(`Respond as {{"score": 1}}. {{context}}`, "X")
		assert.Equal(t, `Respond as {"score": 1}. X`, out)
	})

	t.Run("braces inside context untouched", func(t *testing.T) {
		out := RenderPrompt("{{context}}", "keep {{this}}")
		assert.Equal(t, "keep {{this}}", out)
	})
}

func TestFlattenTrace(t *testing.T) {
	errMsg := "boom"
	out := FlattenTrace(
		[]models.TraceItem{
			models.MessageItem(0, "system", "Be nice."),
			{Type: models.ItemTypeFunctionCall, Position: 1, ToolName: "lookup", Arguments: `{"q":1}`},
			{Type: models.ItemTypeToolResult, Position: 2, Result: "found"},
		},
		[]models.TraceItem{models.OutputMessageItem(0, "done")},
		[]models.ToolDefinition{{Name: "lookup", Description: "find things"}},
		&errMsg,
	)

	assert.Contains(t, out, "[system] Be nice.")
	assert.Contains(t, out, `[tool call] lookup({"q":1})`)
	assert.Contains(t, out, "[tool result] found")
	assert.Contains(t, out, "[assistant] done")
	assert.Contains(t, out, "- lookup: find things")
	assert.Contains(t, out, "Error: boom")
}

func TestParseOutput(t *testing.T) {
	text := func(s string) *string { return &s }

	t.Run("structured json wins", func(t *testing.T) {
		parsed, err := ParseOutput(ScoreTypeFloat, text("ignored"), map[string]interface{}{
			"score": 0.8, "reasoning": "solid", "confidence": 0.9,
		})
		require.NoError(t, err)
		require.NotNil(t, parsed.Float)
		assert.Equal(t, 0.8, *parsed.Float)
		assert.Equal(t, "solid", *parsed.Reasoning)
		assert.Equal(t, 0.9, *parsed.Confidence)
	})

	t.Run("text json fallback", func(t *testing.T) {
		parsed, err := ParseOutput(ScoreTypeFloat, text(`{"score": 0.5}`), nil)
		require.NoError(t, err)
		require.NotNil(t, parsed.Float)
		assert.Equal(t, 0.5, *parsed.Float)
	})

	t.Run("bare number text", func(t *testing.T) {
		parsed, err := ParseOutput(ScoreTypeFloat, text("0.75"), nil)
		require.NoError(t, err)
		require.NotNil(t, parsed.Float)
		assert.Equal(t, 0.75, *parsed.Float)
	})

	t.Run("boolean keyword heuristics", func(t *testing.T) {
		for _, tc := range []struct {
			in       string
			expected bool
		}{
			{"The answer is correct: PASS", true},
			{"yes, it matches", true},
			{"Verdict: fail", false},
			{"No.", false},
		} {
			parsed, err := ParseOutput(ScoreTypeBoolean, text(tc.in), nil)
			require.NoError(t, err, tc.in)
			require.NotNil(t, parsed.Boolean, tc.in)
			assert.Equal(t, tc.expected, *parsed.Boolean, tc.in)
		}
	})

	t.Run("whole word only", func(t *testing.T) {
		_, err := ParseOutput(ScoreTypeBoolean, text("passively noncommittal"), nil)
		assert.Error(t, err)
	})

	t.Run("conflicting keywords error", func(t *testing.T) {
		_, err := ParseOutput(ScoreTypeBoolean, text("pass or fail, who knows"), nil)
		assert.Error(t, err)
	})

	t.Run("boolean score as json bool", func(t *testing.T) {
		parsed, err := ParseOutput(ScoreTypeBoolean, nil, map[string]interface{}{"score": true})
		require.NoError(t, err)
		require.NotNil(t, parsed.Boolean)
		assert.True(t, *parsed.Boolean)
	})

	t.Run("no output errors", func(t *testing.T) {
		_, err := ParseOutput(ScoreTypeFloat, nil, nil)
		assert.Error(t, err)
	})

	t.Run("unparseable float text errors", func(t *testing.T) {
		_, err := ParseOutput(ScoreTypeFloat, text("pretty good overall"), nil)
		assert.Error(t, err)
	})
}

func TestDefaultResponseSchema(t *testing.T) {
	schema := DefaultResponseSchema(ScoreTypeBoolean)
	props := schema["properties"].(map[string]interface{})
	score := props["score"].(map[string]interface{})
	assert.Equal(t, "boolean", score["type"])

	schema = DefaultResponseSchema(ScoreTypeFloat)
	props = schema["properties"].(map[string]interface{})
	score = props["score"].(map[string]interface{})
	assert.Equal(t, "number", score["type"])
}
