package services

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/evaluationconfig"
)

// Default evaluation weights: quality dominates, cost and time follow.
const (
	DefaultQualityWeight = 0.5
	DefaultCostWeight    = 0.3
	DefaultTimeWeight    = 0.2

	// weightSumTolerance allows for float drift around a sum of 1.
	weightSumTolerance = 0.01
)

// EvaluationConfigService manages the per-task evaluation weighting.
type EvaluationConfigService struct {
	client *ent.Client
}

// NewEvaluationConfigService creates a new EvaluationConfigService
func NewEvaluationConfigService(client *ent.Client) *EvaluationConfigService {
	return &EvaluationConfigService{client: client}
}

// EvaluationConfigInput carries the config fields.
type EvaluationConfigInput struct {
	QualityWeight float64
	CostWeight    float64
	TimeWeight    float64
	GraderIDs     []string
}

func (in EvaluationConfigInput) validate() error {
	sum := in.QualityWeight + in.CostWeight + in.TimeWeight
	if math.Abs(sum-1) > weightSumTolerance {
		return NewValidationError("weights", fmt.Sprintf("must sum to 1.0, got %.3f", sum))
	}
	if in.QualityWeight < 0 || in.CostWeight < 0 || in.TimeWeight < 0 {
		return NewValidationError("weights", "must be non-negative")
	}
	return nil
}

// UpsertConfig creates or replaces a task's evaluation config.
func (s *EvaluationConfigService) UpsertConfig(ctx context.Context, taskID string, in EvaluationConfigInput) (*ent.EvaluationConfig, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	graderIDs := in.GraderIDs
	if graderIDs == nil {
		graderIDs = []string{}
	}

	existing, err := s.client.EvaluationConfig.Query().
		Where(evaluationconfig.TaskID(taskID)).
		Only(ctx)
	if err == nil {
		updated, err := existing.Update().
			SetQualityWeight(in.QualityWeight).
			SetCostWeight(in.CostWeight).
			SetTimeWeight(in.TimeWeight).
			SetGraderIds(graderIDs).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update evaluation config: %w", err)
		}
		return updated, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query evaluation config: %w", err)
	}

	cfg, err := s.client.EvaluationConfig.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetQualityWeight(in.QualityWeight).
		SetCostWeight(in.CostWeight).
		SetTimeWeight(in.TimeWeight).
		SetGraderIds(graderIDs).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create evaluation config: %w", err)
	}
	return cfg, nil
}

// GetConfig returns a task's evaluation config.
func (s *EvaluationConfigService) GetConfig(ctx context.Context, taskID string) (*ent.EvaluationConfig, error) {
	cfg, err := s.client.EvaluationConfig.Query().
		Where(evaluationconfig.TaskID(taskID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get evaluation config: %w", err)
	}
	return cfg, nil
}

// EnsureConfig returns the task's config, creating the default one on first
// use.
func (s *EvaluationConfigService) EnsureConfig(ctx context.Context, taskID string) (*ent.EvaluationConfig, error) {
	cfg, err := s.GetConfig(ctx, taskID)
	if err == nil {
		return cfg, nil
	}
	if err != ErrNotFound {
		return nil, err
	}
	return s.UpsertConfig(ctx, taskID, EvaluationConfigInput{
		QualityWeight: DefaultQualityWeight,
		CostWeight:    DefaultCostWeight,
		TimeWeight:    DefaultTimeWeight,
	})
}
