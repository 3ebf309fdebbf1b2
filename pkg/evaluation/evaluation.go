// Package evaluation orchestrates implementation evaluations: executing test
// cases, grading the results and aggregating the scores.
package evaluation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/evaluation"
	"github.com/promptlens/promptlens/ent/executionresult"
	"github.com/promptlens/promptlens/ent/targettaskmetrics"
	"github.com/promptlens/promptlens/pkg/grading"
	"github.com/promptlens/promptlens/pkg/pricing"
	"github.com/promptlens/promptlens/pkg/queue"
	"github.com/promptlens/promptlens/pkg/services"
)

// minResultsForIQR is the result count below which target metrics fall back
// to a simple minimum instead of outlier-filtered minima.
const minResultsForIQR = 5

// Service runs the evaluation state machine: RUNNING at creation, COMPLETED
// or FAILED after background execution.
type Service struct {
	client     *ent.Client
	tasks      *services.TaskService
	testCases  *services.TestCaseService
	graders    *services.GraderService
	configs    *services.EvaluationConfigService
	executions *services.ExecutionService
	grades     *services.GradeService
	pool       *queue.Pool
}

// NewService creates a new evaluation Service
func NewService(
	client *ent.Client,
	tasks *services.TaskService,
	testCases *services.TestCaseService,
	graders *services.GraderService,
	configs *services.EvaluationConfigService,
	executions *services.ExecutionService,
	grades *services.GradeService,
	pool *queue.Pool,
) *Service {
	return &Service{
		client:     client,
		tasks:      tasks,
		testCases:  testCases,
		graders:    graders,
		configs:    configs,
		executions: executions,
		grades:     grades,
		pool:       pool,
	}
}

// CreateEvaluation validates the setup, writes a RUNNING evaluation row and
// schedules its execution on the worker pool.
func (s *Service) CreateEvaluation(ctx context.Context, implementationID string) (*ent.Evaluation, error) {
	ev, err := s.createRow(ctx, implementationID)
	if err != nil {
		return nil, err
	}
	s.pool.Submit(queue.Job{
		ID:   ev.ID,
		Kind: "evaluation",
		Run: func(jobCtx context.Context) error {
			return s.ExecuteInBackground(jobCtx, ev.ID)
		},
	})
	return ev, nil
}

// Evaluate runs an evaluation synchronously and returns the terminal row.
// Used where the caller needs the scores before moving on.
func (s *Service) Evaluate(ctx context.Context, implementationID string) (*ent.Evaluation, error) {
	ev, err := s.createRow(ctx, implementationID)
	if err != nil {
		return nil, err
	}
	if err := s.ExecuteInBackground(ctx, ev.ID); err != nil {
		return nil, err
	}
	return s.GetEvaluation(ctx, ev.ID)
}

func (s *Service) createRow(ctx context.Context, implementationID string) (*ent.Evaluation, error) {
	impl, err := s.tasks.GetImplementation(ctx, implementationID)
	if err != nil {
		return nil, err
	}
	t, err := s.tasks.GetTask(ctx, impl.TaskID)
	if err != nil {
		return nil, err
	}
	if _, err := s.configs.EnsureConfig(ctx, t.ID); err != nil {
		return nil, err
	}
	if _, err := s.resolveGraders(ctx, t); err != nil {
		return nil, err
	}

	cases, err := s.testCases.ListTestCases(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	if len(cases) == 0 {
		return nil, services.NewBadRequestError("No test cases found for task %s", t.ID)
	}

	ev, err := s.client.Evaluation.Create().
		SetID(uuid.New().String()).
		SetTaskID(t.ID).
		SetImplementationID(impl.ID).
		SetStatus(evaluation.StatusRunning).
		SetTestCaseCount(len(cases)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create evaluation: %w", err)
	}
	return ev, nil
}

// resolveGraders returns the graders used for a task's evaluations: the
// configured ones, or all of the project's active graders (creating the
// default when the project has none).
func (s *Service) resolveGraders(ctx context.Context, t *ent.Task) ([]*ent.Grader, error) {
	cfg, err := s.configs.GetConfig(ctx, t.ID)
	if err == nil && len(cfg.GraderIds) > 0 {
		graders := make([]*ent.Grader, 0, len(cfg.GraderIds))
		for _, id := range cfg.GraderIds {
			g, err := s.graders.GetGrader(ctx, id)
			if err != nil {
				return nil, err
			}
			graders = append(graders, g)
		}
		return graders, nil
	}
	if err != nil && err != services.ErrNotFound {
		return nil, err
	}
	return s.graders.GetAllProjectGraders(ctx, t.ProjectID)
}

// ExecuteInBackground runs one evaluation to completion. Any failure flips
// the row to FAILED with its error recorded; individual test-case failures
// do not; they are kept on the execution result and excluded from
// aggregates.
func (s *Service) ExecuteInBackground(ctx context.Context, evaluationID string) error {
	ev, err := s.client.Evaluation.Get(ctx, evaluationID)
	if err != nil {
		return fmt.Errorf("failed to load evaluation: %w", err)
	}

	if err := s.execute(ctx, ev); err != nil {
		slog.Error("Evaluation failed", "evaluation_id", ev.ID, "error", err)
		if uerr := s.client.Evaluation.UpdateOneID(ev.ID).
			SetStatus(evaluation.StatusFailed).
			SetError(err.Error()).
			SetCompletedAt(time.Now()).
			Exec(ctx); uerr != nil {
			return fmt.Errorf("failed to mark evaluation failed: %w (cause: %v)", uerr, err)
		}
		return err
	}
	return nil
}

func (s *Service) execute(ctx context.Context, ev *ent.Evaluation) error {
	impl, err := s.tasks.GetImplementation(ctx, ev.ImplementationID)
	if err != nil {
		return err
	}
	t, err := s.tasks.GetTask(ctx, ev.TaskID)
	if err != nil {
		return err
	}
	graders, err := s.resolveGraders(ctx, t)
	if err != nil {
		return err
	}
	cases, err := s.testCases.ListTestCases(ctx, ev.TaskID)
	if err != nil {
		return err
	}

	// Execution phase. Results persist one by one; the grading phase reads
	// them back through their ids.
	results := make([]*ent.ExecutionResult, 0, len(cases))
	for _, tc := range cases {
		res, err := s.executions.ExecuteImplementation(ctx, impl.ID, tc.Arguments, services.ExecutionContext{
			EvaluationID: &ev.ID,
			TestCaseID:   &tc.ID,
		})
		if err != nil {
			return fmt.Errorf("executing test case %s: %w", tc.ID, err)
		}
		results = append(results, res)
	}

	// Grading phase: per grader, grade every result in execution order.
	graderScores := make(map[string]float64)
	for _, g := range graders {
		var scores []float64
		for _, res := range results {
			gr, err := s.grades.ExecuteGrading(ctx, g.ID, services.GradeTarget{ExecutionResultID: &res.ID})
			if err != nil {
				return fmt.Errorf("grading with %s: %w", g.ID, err)
			}
			if score, ok := scalarScore(string(g.ScoreType), gr); ok {
				scores = append(scores, score)
			}
		}
		if mean, ok := pricing.Mean(scores); ok {
			graderScores[g.ID] = mean
		}
	}

	update := s.client.Evaluation.UpdateOneID(ev.ID).
		SetStatus(evaluation.StatusCompleted).
		SetCompletedAt(time.Now())

	if len(graderScores) > 0 {
		update.SetGraderScores(graderScores)
		var means []float64
		for _, v := range graderScores {
			means = append(means, v)
		}
		if quality, ok := pricing.Mean(means); ok {
			update.SetQualityScore(quality)
		}
	}

	var costs, times []float64
	for _, res := range results {
		if res.Cost != nil {
			costs = append(costs, *res.Cost)
		}
		if res.Error == nil {
			times = append(times, res.CompletedAt.Sub(res.StartedAt).Seconds()*1000)
		}
	}
	if avgCost, ok := pricing.Mean(costs); ok {
		update.SetAvgCost(avgCost)
	}
	if avgTime, ok := pricing.Mean(times); ok {
		update.SetAvgExecutionTimeMs(avgTime)
	}

	if err := s.CalculateTargetMetrics(ctx, ev.TaskID); err != nil {
		return err
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to complete evaluation: %w", err)
	}
	return nil
}

// scalarScore maps a grade onto the aggregation scale: float scores pass
// through, booleans count 1.0 for true. Errored or null grades are skipped.
func scalarScore(scoreType string, gr *ent.Grade) (float64, bool) {
	switch scoreType {
	case grading.ScoreTypeFloat:
		if gr.ScoreFloat != nil {
			return *gr.ScoreFloat, true
		}
	case grading.ScoreTypeBoolean:
		if gr.ScoreBoolean != nil {
			if *gr.ScoreBoolean {
				return 1.0, true
			}
			return 0.0, true
		}
	}
	return 0, false
}

// CalculateTargetMetrics recomputes a task's (best_cost, best_time_ms) over
// the union of its execution results. With enough samples the minima are
// taken within IQR outlier bounds; small samples use the plain minimum.
func (s *Service) CalculateTargetMetrics(ctx context.Context, taskID string) error {
	results, err := s.client.ExecutionResult.Query().
		Where(executionresult.TaskID(taskID), executionresult.ErrorIsNil()).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query execution results: %w", err)
	}

	var costs, times []float64
	for _, res := range results {
		if res.Cost != nil {
			costs = append(costs, *res.Cost)
		}
		times = append(times, res.CompletedAt.Sub(res.StartedAt).Seconds()*1000)
	}

	bestCost := robustMin(costs)
	bestTime := robustMin(times)
	if bestCost == nil && bestTime == nil {
		return nil
	}

	existing, err := s.client.TargetTaskMetrics.Query().
		Where(targettaskmetrics.TaskID(taskID)).
		Only(ctx)
	switch {
	case err == nil:
		update := existing.Update().SetLastUpdatedAt(time.Now())
		if bestCost != nil {
			update.SetBestCost(*bestCost)
		}
		if bestTime != nil {
			update.SetBestTimeMs(*bestTime)
		}
		if err := update.Exec(ctx); err != nil {
			return fmt.Errorf("failed to update target metrics: %w", err)
		}
	case ent.IsNotFound(err):
		create := s.client.TargetTaskMetrics.Create().
			SetID(uuid.New().String()).
			SetTaskID(taskID).
			SetLastUpdatedAt(time.Now())
		if bestCost != nil {
			create.SetBestCost(*bestCost)
		}
		if bestTime != nil {
			create.SetBestTimeMs(*bestTime)
		}
		if err := create.Exec(ctx); err != nil {
			return fmt.Errorf("failed to create target metrics: %w", err)
		}
	default:
		return fmt.Errorf("failed to query target metrics: %w", err)
	}
	return nil
}

// robustMin returns the minimum within [Q1 − 1.5·IQR, Q3 + 1.5·IQR] when at
// least minResultsForIQR values exist, falling back to the plain minimum
// when the sample is small or the filter leaves nothing.
func robustMin(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	simple := values[0]
	for _, v := range values[1:] {
		if v < simple {
			simple = v
		}
	}
	if len(values) < minResultsForIQR {
		return &simple
	}

	lower, upper, err := pricing.IQRBounds(values)
	if err != nil {
		return &simple
	}
	var robust *float64
	for _, v := range values {
		if v < lower || v > upper {
			continue
		}
		if robust == nil || v < *robust {
			vv := v
			robust = &vv
		}
	}
	if robust == nil {
		return &simple
	}
	return robust
}

// GetEvaluation returns an evaluation by id.
func (s *Service) GetEvaluation(ctx context.Context, id string) (*ent.Evaluation, error) {
	ev, err := s.client.Evaluation.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get evaluation: %w", err)
	}
	return ev, nil
}

// EvaluationFilter narrows ListEvaluations.
type EvaluationFilter struct {
	TaskID           *string
	ImplementationID *string
}

// ListEvaluations returns evaluations matching the filter, oldest first.
func (s *Service) ListEvaluations(ctx context.Context, filter EvaluationFilter) ([]*ent.Evaluation, error) {
	q := s.client.Evaluation.Query()
	if filter.TaskID != nil {
		q = q.Where(evaluation.TaskID(*filter.TaskID))
	}
	if filter.ImplementationID != nil {
		q = q.Where(evaluation.ImplementationID(*filter.ImplementationID))
	}
	evals, err := q.Order(ent.Asc(evaluation.FieldStartedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	return evals, nil
}

// DeleteEvaluation removes an evaluation row; its execution results remain
// with their evaluation link nulled.
func (s *Service) DeleteEvaluation(ctx context.Context, id string) error {
	err := s.client.Evaluation.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return services.ErrNotFound
		}
		return fmt.Errorf("failed to delete evaluation: %w", err)
	}
	return nil
}
