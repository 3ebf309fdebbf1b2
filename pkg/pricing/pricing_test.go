package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeModel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gpt-4o", "gpt-4o"},
		{"openai/gpt-4o", "gpt-4o"},
		{"gpt-4o-2024-08-06", "gpt-4o"},
		{"gpt-4o-mini-2024-07-18", "gpt-4o-mini"},
		{"gpt-3.5-turbo-0125", "gpt-3.5-turbo"},
		{"anthropic/claude-sonnet-4-20250514", "claude-sonnet-4"},
		{"claude-3-5-sonnet-20241022", "claude-3-5-sonnet"},
		{"claude-3-5-sonnet@20240620", "claude-3-5-sonnet"},
		{"google/gemini-2.5-pro", "gemini-2.5-pro"},
		{"  GPT-4o  ", "gpt-4o"},
		{"unknown-model", "unknown-model"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeModel(tt.input))
		})
	}
}

func TestCalculateCost(t *testing.T) {
	t.Run("known model", func(t *testing.T) {
		// gpt-4o: $2.50/M input, $10/M output
		cost := CalculateCost("gpt-4o", 1_000_000, 100_000, 0)
		require.NotNil(t, cost)
		assert.InDelta(t, 2.50+1.00, *cost, 1e-9)
	})

	t.Run("cached tokens billed at cached rate", func(t *testing.T) {
		// 400k cached at $1.25/M, 600k uncached at $2.50/M
		cost := CalculateCost("gpt-4o", 1_000_000, 0, 400_000)
		require.NotNil(t, cost)
		assert.InDelta(t, 0.6*2.50+0.4*1.25, *cost, 1e-9)
	})

	t.Run("cached clamped to prompt tokens", func(t *testing.T) {
		cost := CalculateCost("gpt-4o", 100, 0, 1_000)
		require.NotNil(t, cost)
		assert.InDelta(t, 100*1.25/1e6, *cost, 1e-12)
	})

	t.Run("date-suffixed model resolves", func(t *testing.T) {
		cost := CalculateCost("claude-sonnet-4-20250514", 1_000_000, 0, 0)
		require.NotNil(t, cost)
		assert.InDelta(t, 3.00, *cost, 1e-9)
	})

	t.Run("unknown model returns nil", func(t *testing.T) {
		assert.Nil(t, CalculateCost("totally-made-up", 1000, 1000, 0))
	})

	t.Run("gemini long context tier", func(t *testing.T) {
		short := CalculateCost("gemini-2.5-pro", 100_000, 0, 0)
		long := CalculateCost("gemini-2.5-pro", 300_000, 0, 0)
		require.NotNil(t, short)
		require.NotNil(t, long)
		assert.InDelta(t, 100_000*1.25/1e6, *short, 1e-9)
		assert.InDelta(t, 300_000*2.50/1e6, *long, 1e-9)
	})

	t.Run("zero tokens is zero cost", func(t *testing.T) {
		cost := CalculateCost("gpt-4o-mini", 0, 0, 0)
		require.NotNil(t, cost)
		assert.Zero(t, *cost)
	})
}

func TestAvailableModels(t *testing.T) {
	models := AvailableModels()
	require.NotEmpty(t, models)
	assert.IsNonDecreasing(t, models)
	assert.Contains(t, models, "gpt-4o")
	assert.Contains(t, models, "claude-sonnet-4")
	assert.Contains(t, models, "gemini-2.5-flash")
}
