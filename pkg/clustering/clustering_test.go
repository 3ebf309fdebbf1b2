package clustering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptlens/promptlens/pkg/template"
)

func TestJaccard(t *testing.T) {
	assert.Equal(t, 1.0, Jaccard("a b c", "c b a"))
	assert.Equal(t, 0.0, Jaccard("a b", "c d"))
	assert.InDelta(t, 0.4, Jaccard("a b c", "a b d e"), 1e-9) // 2 shared, 5 in union
	assert.Equal(t, 1.0, Jaccard("", ""))
	assert.Equal(t, 1.0, Jaccard("Hello World", "hello world"), "case-insensitive")
}

func TestFindClusters(t *testing.T) {
	t.Run("three similar traces form one cluster", func(t *testing.T) {
		clusters := FindClusters([]Sample{
			{TraceID: "t1", Text: "Greet user Alice politely."},
			{TraceID: "t2", Text: "Greet user Bob politely."},
			{TraceID: "t3", Text: "Greet user Charlie politely."},
		})
		require.Len(t, clusters, 1)
		assert.Len(t, clusters[0], 3)
	})

	t.Run("two similar traces are below the minimum", func(t *testing.T) {
		clusters := FindClusters([]Sample{
			{TraceID: "t1", Text: "Greet user Alice politely."},
			{TraceID: "t2", Text: "Greet user Bob politely."},
		})
		assert.Empty(t, clusters)
	})

	t.Run("dissimilar traces do not cluster", func(t *testing.T) {
		clusters := FindClusters([]Sample{
			{TraceID: "t1", Text: "Greet user Alice politely."},
			{TraceID: "t2", Text: "Summarize the quarterly revenue report."},
			{TraceID: "t3", Text: "Translate this sentence into French."},
		})
		assert.Empty(t, clusters)
	})

	t.Run("short messages are skipped", func(t *testing.T) {
		clusters := FindClusters([]Sample{
			{TraceID: "t1", Text: "hi"},
			{TraceID: "t2", Text: "hi"},
			{TraceID: "t3", Text: "hi"},
		})
		assert.Empty(t, clusters)
	})
}

func TestInferTemplate(t *testing.T) {
	t.Run("single differing token", func(t *testing.T) {
		tmpl, bindings, err := InferTemplate([]string{
			"Greet user Alice politely.",
			"Greet user Bob politely.",
			"Greet user Charlie politely.",
		})
		require.NoError(t, err)
		assert.Equal(t, "Greet user {{var_0}} politely.", tmpl)
		require.Len(t, bindings, 3)
		assert.Equal(t, map[string]string{"var_0": "Alice"}, bindings[0])
		assert.Equal(t, map[string]string{"var_0": "Bob"}, bindings[1])
		assert.Equal(t, map[string]string{"var_0": "Charlie"}, bindings[2])
	})

	t.Run("multiple placeholders numbered in encounter order", func(t *testing.T) {
		tmpl, bindings, err := InferTemplate([]string{
			"Hello Alice, you have 3 messages.",
			"Hello Bob, you have 7 messages.",
		})
		require.NoError(t, err)
		assert.Equal(t, "Hello {{var_0}} you have {{var_1}} messages.", tmpl)
		assert.Equal(t, map[string]string{"var_0": "Alice,", "var_1": "3"}, bindings[0])
	})

	t.Run("byte-identical texts yield no placeholders", func(t *testing.T) {
		tmpl, bindings, err := InferTemplate([]string{
			"Exactly the same text.",
			"Exactly the same text.",
			"Exactly the same text.",
		})
		require.NoError(t, err)
		assert.Equal(t, "Exactly the same text.", tmpl)
		assert.Empty(t, bindings[0])
	})

	t.Run("multi-word variable keeps interior whitespace", func(t *testing.T) {
		tmpl, bindings, err := InferTemplate([]string{
			"Summarize: the quick brown fox. End.",
			"Summarize: a lazy dog. End.",
		})
		require.NoError(t, err)
		assert.Equal(t, "Summarize: {{var_0}} End.", tmpl)
		assert.Equal(t, "the quick brown fox.", bindings[0]["var_0"])
		assert.Equal(t, "a lazy dog.", bindings[1]["var_0"])
	})

	t.Run("no common tokens errors", func(t *testing.T) {
		_, _, err := InferTemplate([]string{"alpha beta", "gamma delta"})
		assert.Error(t, err)
	})
}

// Rendering an inferred template with a member's bindings reproduces that
// member's first message, at least for the reference text.
func TestInferTemplateRoundTrip(t *testing.T) {
	texts := []string{
		"Greet user Alice politely.",
		"Greet user Bob politely.",
		"Greet user Charlie politely.",
	}
	tmpl, bindings, err := InferTemplate(texts)
	require.NoError(t, err)

	for i, text := range texts {
		rendered, err := template.Render(tmpl, bindings[i])
		require.NoError(t, err)
		assert.Equal(t, text, rendered)

		res := template.Match(tmpl, text)
		require.True(t, res.Matched)
		assert.Equal(t, bindings[i], res.Variables)
	}
}
