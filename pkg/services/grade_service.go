package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/grade"
	"github.com/promptlens/promptlens/pkg/grading"
	"github.com/promptlens/promptlens/pkg/llm"
)

// GradeService runs graders against traces and execution results and
// persists the verdicts.
type GradeService struct {
	client   *ent.Client
	executor *llm.Executor
}

// NewGradeService creates a new GradeService
func NewGradeService(client *ent.Client, executor *llm.Executor) *GradeService {
	return &GradeService{client: client, executor: executor}
}

// GradeTarget names the entity being graded; exactly one field is set.
type GradeTarget struct {
	TraceID           *string
	ExecutionResultID *string
}

func (t GradeTarget) validate() error {
	if (t.TraceID == nil) == (t.ExecutionResultID == nil) {
		return NewBadRequestError("exactly one of trace_id and execution_result_id must be set")
	}
	return nil
}

// ExecuteGrading renders the grader's prompt over the target's context,
// calls the grader model and persists the Grade. Rendering and provider
// failures are recorded on the grade, not raised.
func (s *GradeService) ExecuteGrading(ctx context.Context, graderID string, target GradeTarget) (*ent.Grade, error) {
	if err := target.validate(); err != nil {
		return nil, err
	}
	g, err := s.client.Grader.Get(ctx, graderID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get grader: %w", err)
	}
	if !g.IsActive {
		return nil, NewBadRequestError("grader %s is inactive", graderID)
	}

	contextText, err := s.buildContext(ctx, target)
	if err != nil {
		return nil, err
	}

	startedAt := time.Now()
	rendered := grading.RenderPrompt(g.Prompt, contextText)

	schema := g.ResponseSchema
	if schema == nil {
		schema = grading.DefaultResponseSchema(string(g.ScoreType))
	}
	spec := llm.CallSpec{
		Prompt:          rendered,
		Model:           g.Model,
		Temperature:     g.Temperature,
		MaxOutputTokens: g.MaxOutputTokens,
		Reasoning:       g.Reasoning,
		ResponseSchema:  schema,
	}
	outcome := s.executor.Execute(ctx, spec, nil, nil)

	builder := s.client.Grade.Create().
		SetID(uuid.New().String()).
		SetGraderID(g.ID).
		SetGradingStartedAt(startedAt).
		SetGradingCompletedAt(time.Now())
	if target.TraceID != nil {
		builder.SetTraceID(*target.TraceID)
	}
	if target.ExecutionResultID != nil {
		builder.SetExecutionResultID(*target.ExecutionResultID)
	}
	if outcome.TotalTokens > 0 {
		builder.SetPromptTokens(outcome.PromptTokens).
			SetCompletionTokens(outcome.CompletionTokens).
			SetTotalTokens(outcome.TotalTokens)
	}

	if outcome.Error != nil {
		builder.SetError(*outcome.Error)
	} else {
		parsed, perr := grading.ParseOutput(string(g.ScoreType), outcome.ResultText, outcome.ResultJSON)
		if perr != nil {
			builder.SetError(perr.Error())
		} else {
			if parsed.Float != nil {
				builder.SetScoreFloat(*parsed.Float)
			}
			if parsed.Boolean != nil {
				builder.SetScoreBoolean(*parsed.Boolean)
			}
			if parsed.Reasoning != nil {
				builder.SetReasoning(*parsed.Reasoning)
			}
			if parsed.Confidence != nil {
				builder.SetConfidence(*parsed.Confidence)
			}
		}
	}

	gr, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, NewBadRequestError("grade target not found or ambiguous")
		}
		return nil, fmt.Errorf("failed to create grade: %w", err)
	}
	return gr, nil
}

func (s *GradeService) buildContext(ctx context.Context, target GradeTarget) (string, error) {
	if target.TraceID != nil {
		tr, err := s.client.Trace.Get(ctx, *target.TraceID)
		if err != nil {
			if ent.IsNotFound(err) {
				return "", ErrNotFound
			}
			return "", fmt.Errorf("failed to get trace: %w", err)
		}
		return grading.FlattenTrace(tr.InputItems, tr.OutputItems, tr.Tools, tr.Error), nil
	}

	res, err := s.client.ExecutionResult.Get(ctx, *target.ExecutionResultID)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get execution result: %w", err)
	}
	return grading.FlattenExecution(res.PromptRendered, res.ResultText, res.ResultJSON, res.ToolCalls, res.Error), nil
}

// GradeFilter narrows ListGrades.
type GradeFilter struct {
	GraderID          *string
	TraceID           *string
	ExecutionResultID *string
}

// ListGrades returns grades matching the filter, oldest first.
func (s *GradeService) ListGrades(ctx context.Context, filter GradeFilter) ([]*ent.Grade, error) {
	q := s.client.Grade.Query()
	if filter.GraderID != nil {
		q = q.Where(grade.GraderID(*filter.GraderID))
	}
	if filter.TraceID != nil {
		q = q.Where(grade.TraceID(*filter.TraceID))
	}
	if filter.ExecutionResultID != nil {
		q = q.Where(grade.ExecutionResultID(*filter.ExecutionResultID))
	}
	grades, err := q.Order(ent.Asc(grade.FieldGradingStartedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list grades: %w", err)
	}
	return grades, nil
}

// GetGrade returns a grade by id.
func (s *GradeService) GetGrade(ctx context.Context, id string) (*ent.Grade, error) {
	gr, err := s.client.Grade.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get grade: %w", err)
	}
	return gr, nil
}

// DeleteGrade removes a grade.
func (s *GradeService) DeleteGrade(ctx context.Context, id string) error {
	err := s.client.Grade.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete grade: %w", err)
	}
	return nil
}
