package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptlens/promptlens/pkg/models"
	"github.com/promptlens/promptlens/pkg/providers"
	testdb "github.com/promptlens/promptlens/test/database"
)

func strRef(s string) *string { return &s }

func TestTraceService_CreateHTTPTrace(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)
	service := NewTraceService(client.Client)
	ctx := context.Background()

	project, err := projects.CreateProject(ctx, "capture")
	require.NoError(t, err)

	in := HTTPTraceInput{
		ProjectID:   project.ID,
		URL:         "https://api.openai.com/v1/chat/completions",
		Method:      "POST",
		StartedAt:   time.Now().Add(-time.Second),
		CompletedAt: time.Now(),
		Request:     []byte(`{"model":"gpt-4o"}`),
	}

	t.Run("persists a captured call", func(t *testing.T) {
		ht, err := service.CreateHTTPTrace(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, project.ID, ht.ProjectID)
		assert.NotEmpty(t, ht.DedupHash)
	})

	t.Run("resubmission returns the stored row", func(t *testing.T) {
		first, err := service.CreateHTTPTrace(ctx, in)
		require.NoError(t, err)
		second, err := service.CreateHTTPTrace(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.CreateHTTPTrace(ctx, HTTPTraceInput{URL: "https://x"})
		assert.True(t, IsValidationError(err))
		_, err = service.CreateHTTPTrace(ctx, HTTPTraceInput{ProjectID: project.ID})
		assert.True(t, IsValidationError(err))
	})
}

func TestTraceService_MatchTrace(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)
	traces := NewTraceService(client.Client)
	tasks := NewTaskService(client.Client)
	ctx := context.Background()

	project, err := projects.CreateProject(ctx, "matching")
	require.NoError(t, err)
	task, err := tasks.CreateTask(ctx, CreateTaskRequest{ProjectID: project.ID, Name: "greeter"})
	require.NoError(t, err)
	_, err = tasks.CreateImplementation(ctx, task.ID, 1, ImplementationInput{
		Prompt: "Hello, {{name}}! You are user #{{user_id}}.",
		Model:  "gpt-4o",
	})
	require.NoError(t, err)

	newTrace := func(model, text string) *providers.ParsedTrace {
		return &providers.ParsedTrace{
			Model:      model,
			InputItems: []models.TraceItem{models.MessageItem(0, "system", text)},
		}
	}

	t.Run("matches and extracts variables", func(t *testing.T) {
		tr, err := traces.CreateTrace(ctx, project.ID, nil,
			newTrace("openai/gpt-4o-2024-08-06", "Hello, Alice! You are user #42."),
			nil, time.Now(), time.Now())
		require.NoError(t, err)

		matched, err := traces.MatchTrace(ctx, tr)
		require.NoError(t, err)
		assert.True(t, matched)

		tr, err = traces.GetTrace(ctx, tr.ID)
		require.NoError(t, err)
		require.NotNil(t, tr.ImplementationID)
		assert.Equal(t, map[string]string{"name": "Alice", "user_id": "42"}, tr.PromptVariables)
	})

	t.Run("different model does not match", func(t *testing.T) {
		tr, err := traces.CreateTrace(ctx, project.ID, nil,
			newTrace("claude-sonnet-4", "Hello, Bob! You are user #7."),
			nil, time.Now(), time.Now())
		require.NoError(t, err)

		matched, err := traces.MatchTrace(ctx, tr)
		require.NoError(t, err)
		assert.False(t, matched)
	})

	t.Run("literal mismatch does not match", func(t *testing.T) {
		tr, err := traces.CreateTrace(ctx, project.ID, nil,
			newTrace("gpt-4o", "Goodbye, Alice! You are user #42."),
			nil, time.Now(), time.Now())
		require.NoError(t, err)

		matched, err := traces.MatchTrace(ctx, tr)
		require.NoError(t, err)
		assert.False(t, matched)
	})
}

func TestTraceService_UnmatchedGroupTraces(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)
	traces := NewTraceService(client.Client)
	ctx := context.Background()

	project, err := projects.CreateProject(ctx, "grouping")
	require.NoError(t, err)

	mk := func(model string, path *string, role string) string {
		tr, err := traces.CreateTrace(ctx, project.ID, nil, &providers.ParsedTrace{
			Model:      model,
			InputItems: []models.TraceItem{models.MessageItem(0, role, "some message long enough")},
		}, path, time.Now(), time.Now())
		require.NoError(t, err)
		return tr.ID
	}

	path := strRef("app/summarize.py:12")
	seedID := mk("gpt-4o", path, "system")
	sameGroup := mk("openai/gpt-4o-2024-08-06", path, "system")
	mk("claude-sonnet-4", path, "system") // different model
	mk("gpt-4o", nil, "system")           // different path
	mk("gpt-4o", path, "user")            // no system prompt

	seed, err := traces.GetTrace(ctx, seedID)
	require.NoError(t, err)
	group, err := traces.UnmatchedGroupTraces(ctx, seed)
	require.NoError(t, err)

	ids := make([]string, len(group))
	for i, tr := range group {
		ids[i] = tr.ID
	}
	assert.ElementsMatch(t, []string{seedID, sameGroup}, ids)
}
