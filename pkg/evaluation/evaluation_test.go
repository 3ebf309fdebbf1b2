package evaluation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/evaluation"
	"github.com/promptlens/promptlens/ent/targettaskmetrics"
	"github.com/promptlens/promptlens/pkg/llm"
	"github.com/promptlens/promptlens/pkg/queue"
	"github.com/promptlens/promptlens/pkg/services"
	testdb "github.com/promptlens/promptlens/test/database"
)

// scriptedClient answers every completion with the same text.
type scriptedClient struct{ text string }

func (c *scriptedClient) Complete(context.Context, llm.Request) (*llm.Response, error) {
	return &llm.Response{
		Text:  c.text,
		Usage: llm.Usage{PromptTokens: 100, CompletionTokens: 20, TotalTokens: 120},
	}, nil
}

type scriptedResolver struct{ client llm.Client }

func (r scriptedResolver) ClientFor(string) (llm.Client, error) { return r.client, nil }

type fixture struct {
	client  *ent.Client
	tasks   *services.TaskService
	service *Service
	impl    *ent.Implementation
	task    *ent.Task
}

func newFixture(t *testing.T, completionText string, testCaseCount int) *fixture {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	executor := llm.NewExecutor(scriptedResolver{client: &scriptedClient{text: completionText}}, time.Minute, nil)
	tasks := services.NewTaskService(client.Client)
	testCases := services.NewTestCaseService(client.Client)
	graders := services.NewGraderService(client.Client)
	configs := services.NewEvaluationConfigService(client.Client)
	executions := services.NewExecutionService(client.Client, tasks, executor)
	grades := services.NewGradeService(client.Client, executor)

	svc := NewService(client.Client, tasks, testCases, graders, configs, executions, grades, queue.NewPool(1))

	projects := services.NewProjectService(client.Client)
	project, err := projects.CreateProject(ctx, "evals")
	require.NoError(t, err)
	task, err := tasks.CreateTask(ctx, services.CreateTaskRequest{ProjectID: project.ID, Name: "greeter"})
	require.NoError(t, err)
	impl, err := tasks.CreateImplementation(ctx, task.ID, 1, services.ImplementationInput{
		Prompt: "Say hi to {{name}}.",
		Model:  "gpt-4o",
	})
	require.NoError(t, err)
	_, err = tasks.SetProductionVersion(ctx, task.ID, impl.ID)
	require.NoError(t, err)

	names := []string{"Alice", "Bob", "Charlie"}
	for i := 0; i < testCaseCount; i++ {
		_, err = testCases.CreateTestCase(ctx, task.ID, services.TestCaseInput{
			Arguments: map[string]string{"name": names[i%len(names)]},
		})
		require.NoError(t, err)
	}

	return &fixture{client: client.Client, tasks: tasks, service: svc, impl: impl, task: task}
}

func TestEvaluate_HappyPath(t *testing.T) {
	f := newFixture(t, `{"score": 0.8, "reasoning": "close enough"}`, 2)
	ctx := context.Background()

	ev, err := f.service.Evaluate(ctx, f.impl.ID)
	require.NoError(t, err)

	assert.Equal(t, evaluation.StatusCompleted, ev.Status)
	assert.Equal(t, 2, ev.TestCaseCount)
	require.NotNil(t, ev.QualityScore)
	assert.InDelta(t, 0.8, *ev.QualityScore, 1e-9)
	assert.Len(t, ev.GraderScores, 1)
	require.NotNil(t, ev.AvgCost)
	assert.Greater(t, *ev.AvgCost, 0.0)
	require.NotNil(t, ev.CompletedAt)

	// Execution results exist per test case, linked to the evaluation.
	results, err := f.client.ExecutionResult.Query().All(ctx)
	require.NoError(t, err)
	assert.Len(t, results, 2)
	for _, res := range results {
		require.NotNil(t, res.EvaluationID)
		assert.Equal(t, ev.ID, *res.EvaluationID)
		require.NotNil(t, res.TestCaseID)
	}

	// Target metrics got recomputed.
	target, err := f.client.TargetTaskMetrics.Query().
		Where(targettaskmetrics.TaskID(f.task.ID)).
		Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, target.BestCost)

	// Derived scores: cost efficiency is 1.0 (the only implementation is
	// the best), so the final score beats the weighted quality term alone.
	scores, err := f.service.ComputeScores(ctx, ev)
	require.NoError(t, err)
	require.NotNil(t, scores.CostEfficiency)
	assert.InDelta(t, 1.0, *scores.CostEfficiency, 1e-9)
	require.NotNil(t, scores.FinalScore)
	assert.GreaterOrEqual(t, *scores.FinalScore, services.DefaultQualityWeight*0.8)
}

func TestCreateEvaluation_NoTestCases(t *testing.T) {
	f := newFixture(t, `{"score": 1.0}`, 0)
	_, err := f.service.CreateEvaluation(context.Background(), f.impl.ID)
	assert.True(t, services.IsBadRequestError(err))
}

func TestEvaluate_DefaultGraderCreatedOnDemand(t *testing.T) {
	f := newFixture(t, `{"score": 0.5, "reasoning": "mid"}`, 1)
	ctx := context.Background()

	ev, err := f.service.Evaluate(ctx, f.impl.ID)
	require.NoError(t, err)

	graders, err := f.client.Grader.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, graders, 1)
	assert.Equal(t, "accuracy", graders[0].Name)
	assert.InDelta(t, 0.5, ev.GraderScores[graders[0].ID], 1e-9)
}

func TestDeriveScores(t *testing.T) {
	quality := 0.8
	avgCost := 0.02
	avgTime := 200.0
	bestCost := 0.01
	bestTime := 100.0

	ev := &ent.Evaluation{QualityScore: &quality, AvgCost: &avgCost, AvgExecutionTimeMs: &avgTime}
	target := &ent.TargetTaskMetrics{BestCost: &bestCost, BestTimeMs: &bestTime}
	cfg := &ent.EvaluationConfig{QualityWeight: 0.5, CostWeight: 0.3, TimeWeight: 0.2}

	t.Run("weighted sum", func(t *testing.T) {
		scores := DeriveScores(ev, target, cfg)
		require.NotNil(t, scores.CostEfficiency)
		assert.InDelta(t, 0.5, *scores.CostEfficiency, 1e-9)
		require.NotNil(t, scores.TimeEfficiency)
		assert.InDelta(t, 0.5, *scores.TimeEfficiency, 1e-9)
		require.NotNil(t, scores.FinalScore)
		assert.InDelta(t, 0.5*0.8+0.3*0.5+0.2*0.5, *scores.FinalScore, 1e-9)
	})

	t.Run("efficiency caps at one", func(t *testing.T) {
		cheap := 0.005
		fast := 50.0
		scores := DeriveScores(&ent.Evaluation{QualityScore: &quality, AvgCost: &cheap, AvgExecutionTimeMs: &fast}, target, cfg)
		assert.InDelta(t, 1.0, *scores.CostEfficiency, 1e-9)
		assert.InDelta(t, 1.0, *scores.TimeEfficiency, 1e-9)
	})

	t.Run("no quality means no final score", func(t *testing.T) {
		scores := DeriveScores(&ent.Evaluation{AvgCost: &avgCost}, target, cfg)
		assert.Nil(t, scores.FinalScore)
	})

	t.Run("quality only without config passes through", func(t *testing.T) {
		scores := DeriveScores(&ent.Evaluation{QualityScore: &quality}, nil, nil)
		require.NotNil(t, scores.FinalScore)
		assert.InDelta(t, quality, *scores.FinalScore, 1e-9)
	})

	t.Run("missing efficiency terms contribute zero", func(t *testing.T) {
		scores := DeriveScores(&ent.Evaluation{QualityScore: &quality}, nil, cfg)
		require.NotNil(t, scores.FinalScore)
		assert.InDelta(t, 0.5*quality, *scores.FinalScore, 1e-9)
	})
}

func TestRobustMin(t *testing.T) {
	t.Run("small samples use the plain minimum", func(t *testing.T) {
		v := robustMin([]float64{5, 3, 9})
		require.NotNil(t, v)
		assert.Equal(t, 3.0, *v)
	})

	t.Run("outliers are excluded with enough samples", func(t *testing.T) {
		// 0.001 is far below the IQR lower bound of the cluster around 10.
		v := robustMin([]float64{0.001, 10, 11, 12, 13, 14, 15})
		require.NotNil(t, v)
		assert.Equal(t, 10.0, *v)
	})

	t.Run("empty input yields nil", func(t *testing.T) {
		assert.Nil(t, robustMin(nil))
	})
}
