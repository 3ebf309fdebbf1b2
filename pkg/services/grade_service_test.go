package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptlens/promptlens/pkg/llm"
	"github.com/promptlens/promptlens/pkg/models"
	"github.com/promptlens/promptlens/pkg/providers"
	testdb "github.com/promptlens/promptlens/test/database"
)

// scriptedClient returns a fixed completion for every call.
type scriptedClient struct {
	text    string
	lastReq llm.Request
}

func (c *scriptedClient) Complete(_ context.Context, req llm.Request) (*llm.Response, error) {
	c.lastReq = req
	return &llm.Response{
		Text:  c.text,
		Usage: llm.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
	}, nil
}

type scriptedResolver struct{ client llm.Client }

func (r scriptedResolver) ClientFor(string) (llm.Client, error) { return r.client, nil }

func newScriptedExecutor(text string) (*llm.Executor, *scriptedClient) {
	client := &scriptedClient{text: text}
	return llm.NewExecutor(scriptedResolver{client: client}, time.Minute, nil), client
}

func TestGradeService_ExecuteGrading(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)
	traces := NewTraceService(client.Client)
	graders := NewGraderService(client.Client)
	executor, llmStub := newScriptedExecutor(`{"score": 0.9, "reasoning": "well grounded", "confidence": 0.8}`)
	grades := NewGradeService(client.Client, executor)
	ctx := context.Background()

	project, err := projects.CreateProject(ctx, "grading")
	require.NoError(t, err)

	projectGraders, err := graders.GetAllProjectGraders(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, projectGraders, 1)
	grader := projectGraders[0]
	assert.Equal(t, "accuracy", grader.Name)

	tr, err := traces.CreateTrace(ctx, project.ID, nil, &providers.ParsedTrace{
		Model: "gpt-4o",
		InputItems: []models.TraceItem{
			models.MessageItem(0, "system", "Summarize the incident report."),
		},
		OutputItems: []models.TraceItem{models.OutputMessageItem(0, "The service was down for 5 minutes.")},
	}, nil, time.Now(), time.Now())
	require.NoError(t, err)

	t.Run("requires exactly one target", func(t *testing.T) {
		_, err := grades.ExecuteGrading(ctx, grader.ID, GradeTarget{})
		assert.True(t, IsBadRequestError(err))

		both := GradeTarget{TraceID: &tr.ID, ExecutionResultID: &tr.ID}
		_, err = grades.ExecuteGrading(ctx, grader.ID, both)
		assert.True(t, IsBadRequestError(err))
	})

	t.Run("grades a trace", func(t *testing.T) {
		gr, err := grades.ExecuteGrading(ctx, grader.ID, GradeTarget{TraceID: &tr.ID})
		require.NoError(t, err)
		require.NotNil(t, gr.ScoreFloat)
		assert.InDelta(t, 0.9, *gr.ScoreFloat, 1e-9)
		require.NotNil(t, gr.Reasoning)
		assert.Equal(t, "well grounded", *gr.Reasoning)
		assert.Nil(t, gr.Error)
		require.NotNil(t, gr.TotalTokens)
		assert.Equal(t, 15, *gr.TotalTokens)

		// The grader prompt carries the flattened trace, not a template.
		assert.Contains(t, llmStub.lastReq.SystemPrompt, "Summarize the incident report.")
		assert.Contains(t, llmStub.lastReq.SystemPrompt, "The service was down for 5 minutes.")
	})

	t.Run("inactive graders are rejected", func(t *testing.T) {
		inactive := false
		_, err := graders.UpdateGrader(ctx, grader.ID, GraderInput{IsActive: &inactive})
		require.NoError(t, err)
		_, err = grades.ExecuteGrading(ctx, grader.ID, GradeTarget{TraceID: &tr.ID})
		assert.True(t, IsBadRequestError(err))
	})
}

func TestGradeService_ParseFailureRecordedOnGrade(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)
	traces := NewTraceService(client.Client)
	graders := NewGraderService(client.Client)
	executor, _ := newScriptedExecutor("entirely noncommittal prose")
	grades := NewGradeService(client.Client, executor)
	ctx := context.Background()

	project, err := projects.CreateProject(ctx, "grading-errors")
	require.NoError(t, err)
	projectGraders, err := graders.GetAllProjectGraders(ctx, project.ID)
	require.NoError(t, err)

	tr, err := traces.CreateTrace(ctx, project.ID, nil, &providers.ParsedTrace{
		Model:      "gpt-4o",
		InputItems: []models.TraceItem{models.MessageItem(0, "user", "hi")},
	}, nil, time.Now(), time.Now())
	require.NoError(t, err)

	gr, err := grades.ExecuteGrading(ctx, projectGraders[0].ID, GradeTarget{TraceID: &tr.ID})
	require.NoError(t, err)
	assert.Nil(t, gr.ScoreFloat)
	require.NotNil(t, gr.Error)
}
