package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/grade"
	"github.com/promptlens/promptlens/ent/grader"
	"github.com/promptlens/promptlens/pkg/grading"
)

// Default accuracy grader, created the first time a project needs graders
// and has none.
const (
	defaultGraderName  = "accuracy"
	defaultGraderModel = "gpt-4o"

	defaultGraderPrompt = `You are an exacting evaluator. Given the prompt and the model's answer below, rate how accurate and complete the answer is on a scale from 0.0 to 1.0.

{{context}}

Respond with a JSON object: {{"score": <float 0..1>, "reasoning": "<short justification>", "confidence": <float 0..1>}}`
)

// GraderService manages project graders.
type GraderService struct {
	client *ent.Client
}

// NewGraderService creates a new GraderService
func NewGraderService(client *ent.Client) *GraderService {
	return &GraderService{client: client}
}

// GraderInput carries the mutable grader fields.
type GraderInput struct {
	Name            string
	Prompt          string
	ScoreType       string
	Model           string
	Temperature     *float64
	Reasoning       map[string]interface{}
	ResponseSchema  map[string]interface{}
	MaxOutputTokens int
	IsActive        *bool
}

// CreateGrader adds a grader to a project.
func (s *GraderService) CreateGrader(ctx context.Context, projectID string, in GraderInput) (*ent.Grader, error) {
	if projectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if in.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if in.Prompt == "" {
		return nil, NewValidationError("prompt", "required")
	}
	if in.ScoreType != grading.ScoreTypeFloat && in.ScoreType != grading.ScoreTypeBoolean {
		return nil, NewValidationError("score_type", "must be float or boolean")
	}
	if in.Model == "" {
		return nil, NewValidationError("model", "required")
	}
	if in.MaxOutputTokens <= 0 {
		in.MaxOutputTokens = DefaultMaxOutputTokens
	}

	builder := s.client.Grader.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		SetName(in.Name).
		SetPrompt(in.Prompt).
		SetScoreType(grader.ScoreType(in.ScoreType)).
		SetModel(in.Model).
		SetMaxOutputTokens(in.MaxOutputTokens)
	if in.Temperature != nil {
		builder.SetTemperature(*in.Temperature)
	}
	if in.Reasoning != nil {
		builder.SetReasoning(in.Reasoning)
	}
	if in.ResponseSchema != nil {
		builder.SetResponseSchema(in.ResponseSchema)
	}
	if in.IsActive != nil {
		builder.SetIsActive(*in.IsActive)
	}

	g, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create grader: %w", err)
	}
	return g, nil
}

// GetGrader returns a grader by id.
func (s *GraderService) GetGrader(ctx context.Context, id string) (*ent.Grader, error) {
	g, err := s.client.Grader.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get grader: %w", err)
	}
	return g, nil
}

// ListGraders returns a project's graders in creation order.
func (s *GraderService) ListGraders(ctx context.Context, projectID string) ([]*ent.Grader, error) {
	graders, err := s.client.Grader.Query().
		Where(grader.ProjectID(projectID)).
		Order(ent.Asc(grader.FieldCreatedAt), ent.Asc(grader.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list graders: %w", err)
	}
	return graders, nil
}

// GetAllProjectGraders returns the project's active graders, creating the
// default accuracy grader when the project has none at all.
func (s *GraderService) GetAllProjectGraders(ctx context.Context, projectID string) ([]*ent.Grader, error) {
	graders, err := s.ListGraders(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if len(graders) == 0 {
		g, err := s.CreateGrader(ctx, projectID, GraderInput{
			Name:      defaultGraderName,
			Prompt:    defaultGraderPrompt,
			ScoreType: grading.ScoreTypeFloat,
			Model:     defaultGraderModel,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create default grader: %w", err)
		}
		return []*ent.Grader{g}, nil
	}

	active := graders[:0]
	for _, g := range graders {
		if g.IsActive {
			active = append(active, g)
		}
	}
	return active, nil
}

// GradeCount returns the number of grades a grader has produced.
func (s *GraderService) GradeCount(ctx context.Context, graderID string) (int, error) {
	n, err := s.client.Grade.Query().
		Where(grade.GraderID(graderID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count grades: %w", err)
	}
	return n, nil
}

// UpdateGrader patches a grader.
func (s *GraderService) UpdateGrader(ctx context.Context, id string, in GraderInput) (*ent.Grader, error) {
	builder := s.client.Grader.UpdateOneID(id)
	if in.Name != "" {
		builder.SetName(in.Name)
	}
	if in.Prompt != "" {
		builder.SetPrompt(in.Prompt)
	}
	if in.ScoreType != "" {
		if in.ScoreType != grading.ScoreTypeFloat && in.ScoreType != grading.ScoreTypeBoolean {
			return nil, NewValidationError("score_type", "must be float or boolean")
		}
		builder.SetScoreType(grader.ScoreType(in.ScoreType))
	}
	if in.Model != "" {
		builder.SetModel(in.Model)
	}
	if in.Temperature != nil {
		builder.SetTemperature(*in.Temperature)
	}
	if in.MaxOutputTokens > 0 {
		builder.SetMaxOutputTokens(in.MaxOutputTokens)
	}
	if in.IsActive != nil {
		builder.SetIsActive(*in.IsActive)
	}

	g, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update grader: %w", err)
	}
	return g, nil
}

// DeleteGrader removes a grader and, by cascade, its grades.
func (s *GraderService) DeleteGrader(ctx context.Context, id string) error {
	err := s.client.Grader.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete grader: %w", err)
	}
	return nil
}
