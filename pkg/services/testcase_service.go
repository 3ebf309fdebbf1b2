package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/testcase"
)

// TestCaseService manages a task's test cases.
type TestCaseService struct {
	client *ent.Client
}

// NewTestCaseService creates a new TestCaseService
func NewTestCaseService(client *ent.Client) *TestCaseService {
	return &TestCaseService{client: client}
}

// TestCaseInput carries the mutable test case fields.
type TestCaseInput struct {
	Description    *string
	Arguments      map[string]string
	ExpectedOutput map[string]interface{}
}

// CreateTestCase adds a test case to a task.
func (s *TestCaseService) CreateTestCase(ctx context.Context, taskID string, in TestCaseInput) (*ent.TestCase, error) {
	if taskID == "" {
		return nil, NewValidationError("task_id", "required")
	}
	if in.Arguments == nil {
		return nil, NewValidationError("arguments", "required")
	}

	builder := s.client.TestCase.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetArguments(in.Arguments)
	if in.Description != nil {
		builder.SetDescription(*in.Description)
	}
	if in.ExpectedOutput != nil {
		builder.SetExpectedOutput(in.ExpectedOutput)
	}

	tc, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create test case: %w", err)
	}
	return tc, nil
}

// GetTestCase returns a test case by id.
func (s *TestCaseService) GetTestCase(ctx context.Context, id string) (*ent.TestCase, error) {
	tc, err := s.client.TestCase.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get test case: %w", err)
	}
	return tc, nil
}

// ListTestCases returns a task's test cases in creation order. Evaluations
// rely on this order being deterministic.
func (s *TestCaseService) ListTestCases(ctx context.Context, taskID string) ([]*ent.TestCase, error) {
	cases, err := s.client.TestCase.Query().
		Where(testcase.TaskID(taskID)).
		Order(ent.Asc(testcase.FieldCreatedAt), ent.Asc(testcase.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list test cases: %w", err)
	}
	return cases, nil
}

// UpdateTestCase patches a test case.
func (s *TestCaseService) UpdateTestCase(ctx context.Context, id string, in TestCaseInput) (*ent.TestCase, error) {
	builder := s.client.TestCase.UpdateOneID(id)
	if in.Description != nil {
		builder.SetDescription(*in.Description)
	}
	if in.Arguments != nil {
		builder.SetArguments(in.Arguments)
	}
	if in.ExpectedOutput != nil {
		builder.SetExpectedOutput(in.ExpectedOutput)
	}

	tc, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update test case: %w", err)
	}
	return tc, nil
}

// DeleteTestCase removes a test case.
func (s *TestCaseService) DeleteTestCase(ctx context.Context, id string) error {
	err := s.client.TestCase.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete test case: %w", err)
	}
	return nil
}
