package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/executionresult"
	"github.com/promptlens/promptlens/pkg/llm"
)

// ExecutionService runs implementations and persists the results.
type ExecutionService struct {
	client   *ent.Client
	tasks    *TaskService
	executor *llm.Executor
}

// NewExecutionService creates a new ExecutionService
func NewExecutionService(client *ent.Client, tasks *TaskService, executor *llm.Executor) *ExecutionService {
	return &ExecutionService{client: client, tasks: tasks, executor: executor}
}

// SpecFromImplementation maps an implementation onto an executable call spec.
func SpecFromImplementation(impl *ent.Implementation) llm.CallSpec {
	return llm.CallSpec{
		Prompt:          impl.Prompt,
		Model:           impl.Model,
		Temperature:     impl.Temperature,
		MaxOutputTokens: impl.MaxOutputTokens,
		Reasoning:       impl.Reasoning,
		Tools:           impl.Tools,
		ToolChoice:      impl.ToolChoice,
		ResponseSchema:  impl.ResponseSchema,
	}
}

// ExecutionContext optionally ties a result to an evaluation run.
type ExecutionContext struct {
	EvaluationID *string
	TestCaseID   *string
}

// ExecuteImplementation renders and runs an implementation with the given
// variables and persists the outcome, including failures.
func (s *ExecutionService) ExecuteImplementation(ctx context.Context, implementationID string, variables map[string]string, execCtx ExecutionContext) (*ent.ExecutionResult, error) {
	impl, err := s.tasks.GetImplementation(ctx, implementationID)
	if err != nil {
		return nil, err
	}

	outcome := s.executor.Execute(ctx, SpecFromImplementation(impl), variables, nil)
	return s.persistOutcome(ctx, impl, outcome, execCtx)
}

func (s *ExecutionService) persistOutcome(ctx context.Context, impl *ent.Implementation, outcome *llm.Outcome, execCtx ExecutionContext) (*ent.ExecutionResult, error) {
	builder := s.client.ExecutionResult.Create().
		SetID(uuid.New().String()).
		SetTaskID(impl.TaskID).
		SetImplementationID(impl.ID).
		SetStartedAt(outcome.StartedAt).
		SetCompletedAt(outcome.CompletedAt).
		SetPromptRendered(outcome.PromptRendered).
		SetPromptTokens(outcome.PromptTokens).
		SetCompletionTokens(outcome.CompletionTokens).
		SetCachedTokens(outcome.CachedTokens).
		SetReasoningTokens(outcome.ReasoningTokens).
		SetTotalTokens(outcome.TotalTokens)
	if execCtx.EvaluationID != nil {
		builder.SetEvaluationID(*execCtx.EvaluationID)
	}
	if execCtx.TestCaseID != nil {
		builder.SetTestCaseID(*execCtx.TestCaseID)
	}
	if outcome.Variables != nil {
		builder.SetVariables(outcome.Variables)
	}
	if outcome.ResultText != nil {
		builder.SetResultText(*outcome.ResultText)
	}
	if outcome.ResultJSON != nil {
		builder.SetResultJSON(outcome.ResultJSON)
	}
	if outcome.ToolCalls != nil {
		builder.SetToolCalls(outcome.ToolCalls)
	}
	if outcome.Error != nil {
		builder.SetError(*outcome.Error)
	}
	if outcome.SystemFingerprint != nil {
		builder.SetSystemFingerprint(*outcome.SystemFingerprint)
	}
	if outcome.Cost != nil {
		builder.SetCost(*outcome.Cost)
	}

	res, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist execution result: %w", err)
	}
	return res, nil
}

// TaskExecutionOverrides tweak the production implementation for a one-off
// run. Any override creates a hidden temp implementation versioned "-temp".
type TaskExecutionOverrides struct {
	Model           *string
	Temperature     *float64
	MaxOutputTokens *int
}

func (o TaskExecutionOverrides) empty() bool {
	return o.Model == nil && o.Temperature == nil && o.MaxOutputTokens == nil
}

// ExecuteTask runs a task's production implementation, or a temp variant of
// it when overrides are given.
func (s *ExecutionService) ExecuteTask(ctx context.Context, taskID string, variables map[string]string, overrides TaskExecutionOverrides) (*ent.ExecutionResult, error) {
	t, err := s.tasks.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if t.ProductionVersionID == nil {
		return nil, NewBadRequestError("task %s has no production version", taskID)
	}
	impl, err := s.tasks.GetImplementation(ctx, *t.ProductionVersionID)
	if err != nil {
		return nil, err
	}

	if !overrides.empty() {
		in := ImplementationInput{
			Prompt:          impl.Prompt,
			Model:           impl.Model,
			Temperature:     impl.Temperature,
			Reasoning:       impl.Reasoning,
			Tools:           impl.Tools,
			ToolChoice:      impl.ToolChoice,
			MaxOutputTokens: impl.MaxOutputTokens,
			ResponseSchema:  impl.ResponseSchema,
			Temp:            true,
			VersionSuffix:   "-temp",
		}
		if overrides.Model != nil {
			in.Model = *overrides.Model
		}
		if overrides.Temperature != nil {
			in.Temperature = overrides.Temperature
		}
		if overrides.MaxOutputTokens != nil {
			in.MaxOutputTokens = *overrides.MaxOutputTokens
		}
		impl, err = s.tasks.CreateImplementation(ctx, taskID, MajorOf(impl.Version), in)
		if err != nil {
			return nil, err
		}
	}

	outcome := s.executor.Execute(ctx, SpecFromImplementation(impl), variables, nil)
	return s.persistOutcome(ctx, impl, outcome, ExecutionContext{})
}

// GetExecutionResult returns an execution result by id.
func (s *ExecutionService) GetExecutionResult(ctx context.Context, id string) (*ent.ExecutionResult, error) {
	res, err := s.client.ExecutionResult.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get execution result: %w", err)
	}
	return res, nil
}

// ListExecutionResults returns a task's execution results, oldest first.
func (s *ExecutionService) ListExecutionResults(ctx context.Context, taskID string) ([]*ent.ExecutionResult, error) {
	results, err := s.client.ExecutionResult.Query().
		Where(executionresult.TaskID(taskID)).
		Order(ent.Asc(executionresult.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list execution results: %w", err)
	}
	return results, nil
}
