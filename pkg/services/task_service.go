package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/implementation"
	"github.com/promptlens/promptlens/ent/task"
	"github.com/promptlens/promptlens/ent/trace"
	"github.com/promptlens/promptlens/pkg/models"
	"github.com/promptlens/promptlens/pkg/pricing"
)

// DefaultMaxOutputTokens is assigned to auto-created implementations.
const DefaultMaxOutputTokens = 4096

// TaskService manages tasks and their implementations.
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a new TaskService
func NewTaskService(client *ent.Client) *TaskService {
	return &TaskService{client: client}
}

// CreateTaskRequest carries the user-supplied task fields.
type CreateTaskRequest struct {
	ProjectID      string
	Name           string
	Description    string
	Path           *string
	ResponseSchema map[string]interface{}
}

// CreateTask creates a task.
func (s *TaskService) CreateTask(ctx context.Context, req CreateTaskRequest) (*ent.Task, error) {
	if req.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	builder := s.client.Task.Create().
		SetID(uuid.New().String()).
		SetProjectID(req.ProjectID).
		SetName(req.Name).
		SetDescription(req.Description)
	if req.Path != nil {
		builder.SetPath(*req.Path)
	}
	if req.ResponseSchema != nil {
		builder.SetResponseSchema(req.ResponseSchema)
	}

	t, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return t, nil
}

// GetTask returns a task by id.
func (s *TaskService) GetTask(ctx context.Context, id string) (*ent.Task, error) {
	t, err := s.client.Task.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// ListTasks returns a project's tasks ordered by creation time.
func (s *TaskService) ListTasks(ctx context.Context, projectID string) ([]*ent.Task, error) {
	tasks, err := s.client.Task.Query().
		Where(task.ProjectID(projectID)).
		Order(ent.Asc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// TaskStats are the listing-time aggregates over a task's production
// traffic.
type TaskStats struct {
	CostPercentile    *float64   `json:"cost_percentile"`
	LatencyPercentile *float64   `json:"latency_percentile"`
	LastActivity      *time.Time `json:"last_activity"`
}

// Stats computes time-decay weighted percentiles of cost and latency over
// the task's linked traces. Trace cost is derived from the pricing table;
// traces with unknown models contribute latency only.
func (s *TaskService) Stats(ctx context.Context, taskID string, percentile float64, halfLife time.Duration) (*TaskStats, error) {
	traces, err := s.client.Trace.Query().
		Where(trace.HasImplementationWith(implementation.TaskID(taskID))).
		Order(ent.Asc(trace.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query task traces: %w", err)
	}
	if len(traces) == 0 {
		return &TaskStats{}, nil
	}

	now := time.Now()
	var costs, costWeights, latencies, latencyWeights []float64
	stats := &TaskStats{}
	for _, tr := range traces {
		if stats.LastActivity == nil || tr.CreatedAt.After(*stats.LastActivity) {
			t := tr.CreatedAt
			stats.LastActivity = &t
		}
		w := pricing.TimeDecayWeight(tr.CreatedAt, now, halfLife)
		latencies = append(latencies, tr.CompletedAt.Sub(tr.StartedAt).Seconds()*1000)
		latencyWeights = append(latencyWeights, w)
		if cost := pricing.CalculateCost(tr.Model, tr.PromptTokens, tr.CompletionTokens, tr.CachedTokens); cost != nil {
			costs = append(costs, *cost)
			costWeights = append(costWeights, w)
		}
	}

	if len(costs) > 0 {
		if v, err := pricing.WeightedPercentile(costs, costWeights, percentile); err == nil {
			stats.CostPercentile = &v
		}
	}
	if len(latencies) > 0 {
		if v, err := pricing.WeightedPercentile(latencies, latencyWeights, percentile); err == nil {
			stats.LatencyPercentile = &v
		}
	}
	return stats, nil
}

// ImplementationInput carries the fields of a new implementation. Version is
// assigned by the service.
type ImplementationInput struct {
	Prompt          string
	Model           string
	Temperature     *float64
	Reasoning       map[string]interface{}
	Tools           []models.ToolDefinition
	ToolChoice      *string
	MaxOutputTokens int
	ResponseSchema  map[string]interface{}
	Temp            bool
	VersionSuffix   string
}

// CreateImplementation persists a new implementation versioned within the
// given major line.
func (s *TaskService) CreateImplementation(ctx context.Context, taskID string, major int, in ImplementationInput) (*ent.Implementation, error) {
	if in.Prompt == "" {
		return nil, NewValidationError("prompt", "required")
	}
	if in.Model == "" {
		return nil, NewValidationError("model", "required")
	}
	if in.MaxOutputTokens <= 0 {
		in.MaxOutputTokens = DefaultMaxOutputTokens
	}

	version, err := s.NextVersion(ctx, taskID, major)
	if err != nil {
		return nil, err
	}
	version += in.VersionSuffix

	builder := s.client.Implementation.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetVersion(version).
		SetPrompt(in.Prompt).
		SetModel(in.Model).
		SetMaxOutputTokens(in.MaxOutputTokens).
		SetTemp(in.Temp)
	if in.Temperature != nil {
		builder.SetTemperature(*in.Temperature)
	}
	if in.Reasoning != nil {
		builder.SetReasoning(in.Reasoning)
	}
	if in.Tools != nil {
		builder.SetTools(in.Tools)
	}
	if in.ToolChoice != nil {
		builder.SetToolChoice(*in.ToolChoice)
	}
	if in.ResponseSchema != nil {
		builder.SetResponseSchema(in.ResponseSchema)
	}

	impl, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create implementation: %w", err)
	}
	return impl, nil
}

// NextVersion returns "major.minor" where minor is one past the highest
// minor already used in that major line for the task.
func (s *TaskService) NextVersion(ctx context.Context, taskID string, major int) (string, error) {
	impls, err := s.client.Implementation.Query().
		Where(implementation.TaskID(taskID)).
		All(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to query implementations: %w", err)
	}

	maxMinor := -1
	prefix := fmt.Sprintf("%d.", major)
	for _, impl := range impls {
		if !strings.HasPrefix(impl.Version, prefix) {
			continue
		}
		rest := strings.TrimPrefix(impl.Version, prefix)
		// Tolerate suffixes like "-temp".
		if i := strings.IndexByte(rest, '-'); i >= 0 {
			rest = rest[:i]
		}
		if minor, err := strconv.Atoi(rest); err == nil && minor > maxMinor {
			maxMinor = minor
		}
	}
	return fmt.Sprintf("%d.%d", major, maxMinor+1), nil
}

// MajorOf parses the major component of a version string; unparseable
// versions count as major 0.
func MajorOf(version string) int {
	i := strings.IndexByte(version, '.')
	if i < 0 {
		return 0
	}
	major, err := strconv.Atoi(version[:i])
	if err != nil {
		return 0
	}
	return major
}

// GetImplementation returns an implementation by id.
func (s *TaskService) GetImplementation(ctx context.Context, id string) (*ent.Implementation, error) {
	impl, err := s.client.Implementation.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get implementation: %w", err)
	}
	return impl, nil
}

// ListImplementations returns a task's non-temp implementations.
func (s *TaskService) ListImplementations(ctx context.Context, taskID string) ([]*ent.Implementation, error) {
	impls, err := s.client.Implementation.Query().
		Where(implementation.TaskID(taskID), implementation.Temp(false)).
		Order(ent.Asc(implementation.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list implementations: %w", err)
	}
	return impls, nil
}

// SetProductionVersion points the task at one of its implementations.
func (s *TaskService) SetProductionVersion(ctx context.Context, taskID, implementationID string) (*ent.Task, error) {
	impl, err := s.GetImplementation(ctx, implementationID)
	if err != nil {
		return nil, err
	}
	if impl.TaskID != taskID {
		return nil, NewBadRequestError("implementation %s does not belong to task %s", implementationID, taskID)
	}
	t, err := s.client.Task.UpdateOneID(taskID).
		SetProductionVersionID(implementationID).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set production version: %w", err)
	}
	return t, nil
}
