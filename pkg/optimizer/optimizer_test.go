package optimizer

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/pkg/evaluation"
	"github.com/promptlens/promptlens/pkg/llm"
	"github.com/promptlens/promptlens/pkg/queue"
	"github.com/promptlens/promptlens/pkg/services"
	testdb "github.com/promptlens/promptlens/test/database"
)

// loopClient plays all three roles the loop exercises: the proposer (requests
// whose schema allows an explanation), the grader (score schema) and the
// implementation under test (no schema).
type loopClient struct {
	proposals int
	score     float64
	// conversation snapshots what the most recent proposer call was shown.
	conversation []llm.Message
}

func (c *loopClient) Complete(_ context.Context, req llm.Request) (*llm.Response, error) {
	usage := llm.Usage{PromptTokens: 50, CompletionTokens: 10, TotalTokens: 60}
	if req.ResponseSchema != nil {
		props, _ := req.ResponseSchema["properties"].(map[string]interface{})
		if _, isProposer := props["explanation"]; isProposer {
			c.proposals++
			c.conversation = append([]llm.Message(nil), req.Messages...)
			text := fmt.Sprintf(`{"explanation": "raise temperature", "temperature": %g}`, 0.1*float64(c.proposals))
			return &llm.Response{Text: text, Usage: usage}, nil
		}
		return &llm.Response{
			Text:  fmt.Sprintf(`{"score": %g, "reasoning": "steady"}`, c.score),
			Usage: usage,
		}, nil
	}
	return &llm.Response{Text: "plain completion", Usage: usage}, nil
}

type loopResolver struct{ client llm.Client }

func (r loopResolver) ClientFor(string) (llm.Client, error) { return r.client, nil }

func newLoopFixture(t *testing.T, score float64) (*Optimizer, *loopClient, *ent.Client, string) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	lc := &loopClient{score: score}
	resolver := loopResolver{client: lc}
	executor := llm.NewExecutor(resolver, time.Minute, nil)

	tasks := services.NewTaskService(client.Client)
	testCases := services.NewTestCaseService(client.Client)
	graders := services.NewGraderService(client.Client)
	configs := services.NewEvaluationConfigService(client.Client)
	executions := services.NewExecutionService(client.Client, tasks, executor)
	grades := services.NewGradeService(client.Client, executor)
	evals := evaluation.NewService(client.Client, tasks, testCases, graders, configs, executions, grades, queue.NewPool(1))

	projects := services.NewProjectService(client.Client)
	project, err := projects.CreateProject(ctx, "optimize")
	require.NoError(t, err)
	task, err := tasks.CreateTask(ctx, services.CreateTaskRequest{ProjectID: project.ID, Name: "tuned"})
	require.NoError(t, err)
	impl, err := tasks.CreateImplementation(ctx, task.ID, 1, services.ImplementationInput{
		Prompt: "Answer: {{question}}",
		Model:  "gpt-4o",
	})
	require.NoError(t, err)
	_, err = tasks.SetProductionVersion(ctx, task.ID, impl.ID)
	require.NoError(t, err)
	_, err = testCases.CreateTestCase(ctx, task.ID, services.TestCaseInput{
		Arguments: map[string]string{"question": "why"},
	})
	require.NoError(t, err)

	return New(client.Client, tasks, evals, resolver, ""), lc, client.Client, task.ID
}

func TestRun_StopsAfterConsecutiveNoImprovements(t *testing.T) {
	opt, _, client, taskID := newLoopFixture(t, 0.5)
	ctx := context.Background()

	result, err := opt.Run(ctx, Request{TaskID: taskID, MaxIterations: 10})
	require.NoError(t, err)

	// Flat scores never beat the baseline, so the loop gives up after the
	// no-improvement limit.
	assert.Equal(t, maxConsecutiveNoImprovements, result.IterationsRun)
	assert.Len(t, result.Iterations, maxConsecutiveNoImprovements)
	for _, it := range result.Iterations {
		assert.False(t, it.Improved)
		require.NotNil(t, it.ImplementationID)
		require.NotNil(t, it.Score)
	}

	// The baseline stays the best implementation.
	baseline, err := client.Task.Get(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, *baseline.ProductionVersionID, result.BestImplementationID)
	require.NotNil(t, result.BestScore)

	// Each variant landed as a new minor version of the 1.x line.
	impls, err := client.Implementation.Query().All(ctx)
	require.NoError(t, err)
	assert.Len(t, impls, 1+maxConsecutiveNoImprovements)
}

func TestRun_RespectsMaxIterations(t *testing.T) {
	opt, _, _, taskID := newLoopFixture(t, 0.5)

	result, err := opt.Run(context.Background(), Request{TaskID: taskID, MaxIterations: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, result.IterationsRun)
}

func TestRun_ValidatesInput(t *testing.T) {
	opt, _, _, taskID := newLoopFixture(t, 0.5)

	_, err := opt.Run(context.Background(), Request{TaskID: taskID, MaxIterations: 0})
	assert.True(t, services.IsValidationError(err))

	_, err = opt.Run(context.Background(), Request{
		TaskID:           taskID,
		MaxIterations:    1,
		ChangeableFields: []string{"seed"},
	})
	assert.True(t, services.IsValidationError(err))
}

func TestRun_FeedbackCarriesEvaluationDetail(t *testing.T) {
	opt, lc, _, taskID := newLoopFixture(t, 0.5)

	_, err := opt.Run(context.Background(), Request{TaskID: taskID, MaxIterations: 2})
	require.NoError(t, err)

	// The second proposer call sees the feedback for the first variant.
	var feedback string
	for i := len(lc.conversation) - 1; i >= 0; i-- {
		if lc.conversation[i].Role == "user" {
			feedback = lc.conversation[i].Content
			break
		}
	}
	require.NotEmpty(t, feedback)
	assert.Contains(t, feedback, "version: 1.")
	assert.Contains(t, feedback, "final_score:")
	assert.Contains(t, feedback, "avg_cost:")
	assert.Contains(t, feedback, "avg_execution_time_ms:")
	assert.Contains(t, feedback, "Grader scores:")
	assert.Contains(t, feedback, "Grader feedback:")
	assert.Contains(t, feedback, "chosen_implementation_id:")
	assert.Contains(t, feedback, "steady")
}

func TestProposalSchema(t *testing.T) {
	schema := proposalSchema([]string{FieldModel, FieldTemperature})
	props := schema["properties"].(map[string]interface{})

	assert.Contains(t, props, "explanation")
	assert.Contains(t, props, FieldModel)
	assert.Contains(t, props, FieldTemperature)
	assert.NotContains(t, props, FieldPrompt)

	model := props[FieldModel].(map[string]interface{})
	assert.NotEmpty(t, model["enum"])
	assert.Equal(t, []interface{}{"explanation"}, schema["required"])
	assert.Equal(t, false, schema["additionalProperties"])
}
