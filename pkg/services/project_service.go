package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/project"
)

// ProjectService manages projects, the top-level grouping for traces, tasks
// and graders.
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new ProjectService
func NewProjectService(client *ent.Client) *ProjectService {
	return &ProjectService{client: client}
}

// CreateProject creates a project with a unique name.
func (s *ProjectService) CreateProject(ctx context.Context, name string) (*ent.Project, error) {
	if name == "" {
		return nil, NewValidationError("name", "required")
	}
	p, err := s.client.Project.Create().
		SetID(uuid.New().String()).
		SetName(name).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}

// GetOrCreateByName returns the project with the given name, creating it on
// first sight. The SDK identifies projects by name, not id.
func (s *ProjectService) GetOrCreateByName(ctx context.Context, name string) (*ent.Project, error) {
	if name == "" {
		return nil, NewValidationError("name", "required")
	}
	p, err := s.client.Project.Query().Where(project.Name(name)).Only(ctx)
	if err == nil {
		return p, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query project: %w", err)
	}

	created, err := s.CreateProject(ctx, name)
	if err == ErrAlreadyExists {
		// Lost a creation race; the row exists now.
		return s.client.Project.Query().Where(project.Name(name)).Only(ctx)
	}
	return created, err
}

// GetProject returns a project by id.
func (s *ProjectService) GetProject(ctx context.Context, id string) (*ent.Project, error) {
	p, err := s.client.Project.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// ListProjects returns all projects ordered by name.
func (s *ProjectService) ListProjects(ctx context.Context) ([]*ent.Project, error) {
	projects, err := s.client.Project.Query().
		Order(ent.Asc(project.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}
