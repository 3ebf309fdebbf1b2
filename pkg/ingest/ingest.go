// Package ingest ties trace capture to the rest of the system: it persists
// submitted HTTP traces, decodes them, matches them against known
// implementations and schedules clustering for whatever stays unmatched.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/task"
	"github.com/promptlens/promptlens/pkg/clustering"
	"github.com/promptlens/promptlens/pkg/models"
	"github.com/promptlens/promptlens/pkg/pricing"
	"github.com/promptlens/promptlens/pkg/providers"
	"github.com/promptlens/promptlens/pkg/queue"
	"github.com/promptlens/promptlens/pkg/services"
)

// maxAutoTaskNameLen caps task names derived from template text.
const maxAutoTaskNameLen = 60

// Service is the ingest pipeline.
type Service struct {
	client   *ent.Client
	traces   *services.TraceService
	tasks    *services.TaskService
	registry *providers.Registry
	pool     *queue.Pool

	mu         sync.Mutex
	groupLocks map[string]*sync.Mutex
}

// NewService creates a new ingest Service
func NewService(client *ent.Client, traces *services.TraceService, tasks *services.TaskService, registry *providers.Registry, pool *queue.Pool) *Service {
	return &Service{
		client:     client,
		traces:     traces,
		tasks:      tasks,
		registry:   registry,
		pool:       pool,
		groupLocks: map[string]*sync.Mutex{},
	}
}

// IngestHTTPTrace runs the full pipeline for one captured call: persist the
// raw exchange, decode it, persist the normalized trace, then match or
// schedule clustering. A decode failure still lands a trace row, with the
// failure recorded on it.
func (s *Service) IngestHTTPTrace(ctx context.Context, in services.HTTPTraceInput, implementationID *string) (*ent.HTTPTrace, *ent.Trace, error) {
	ht, err := s.traces.CreateHTTPTrace(ctx, in)
	if err != nil {
		return nil, nil, err
	}

	path := metadataPath(in.Metadata)
	parsed, perr := s.registry.Parse(providers.ParseInput{
		URL:         in.URL,
		Method:      in.Method,
		StartedAt:   in.StartedAt,
		CompletedAt: in.CompletedAt,
		StatusCode:  in.StatusCode,
		Error:       in.Error,
		Request:     in.Request,
		Response:    in.Response,
		Metadata:    in.Metadata,
		Path:        path,
		IsStreaming: isStreaming(in),
	})
	if perr != nil {
		msg := perr.Error()
		parsed = &providers.ParsedTrace{Model: "unknown", Error: &msg}
	}

	tr, err := s.traces.CreateTrace(ctx, in.ProjectID, &ht.ID, parsed, path, in.StartedAt, in.CompletedAt)
	if err != nil {
		return nil, nil, err
	}
	tr, err = s.routeTrace(ctx, tr, implementationID)
	if err != nil {
		return nil, nil, err
	}
	return ht, tr, nil
}

// IngestParsedTrace accepts a pre-normalized trace (SDK-side decode) and runs
// the same match-or-cluster routing.
func (s *Service) IngestParsedTrace(ctx context.Context, projectID string, parsed *providers.ParsedTrace, path *string, startedAt, completedAt time.Time, implementationID *string) (*ent.Trace, error) {
	tr, err := s.traces.CreateTrace(ctx, projectID, nil, parsed, path, startedAt, completedAt)
	if err != nil {
		return nil, err
	}
	return s.routeTrace(ctx, tr, implementationID)
}

// routeTrace binds, matches or queues a freshly persisted trace. A
// submitter-supplied implementation id wins over matching; errored traces
// are left alone.
func (s *Service) routeTrace(ctx context.Context, tr *ent.Trace, implementationID *string) (*ent.Trace, error) {
	if implementationID != nil {
		return s.traces.BindImplementation(ctx, tr.ID, *implementationID)
	}
	if tr.Error != nil {
		return tr, nil
	}

	matched, err := s.traces.MatchTrace(ctx, tr)
	if err != nil {
		return nil, err
	}
	if matched {
		return s.traces.GetTrace(ctx, tr.ID)
	}

	traceID := tr.ID
	s.pool.Submit(queue.Job{
		ID:   traceID,
		Kind: "cluster",
		Run: func(jobCtx context.Context) error {
			return s.ProcessUnmatched(jobCtx, traceID)
		},
	})
	return tr, nil
}

// ProcessUnmatched clusters the unmatched traces around a seed trace and
// auto-creates a task per sufficiently large cluster.
func (s *Service) ProcessUnmatched(ctx context.Context, traceID string) error {
	tr, err := s.traces.GetTrace(ctx, traceID)
	if err != nil {
		if err == services.ErrNotFound {
			return nil
		}
		return err
	}
	// Another job may have matched or adopted it since it was queued.
	if tr.ImplementationID != nil {
		return nil
	}
	if !models.HasSystemPrompt(tr.InputItems) {
		return nil
	}

	group, err := s.traces.UnmatchedGroupTraces(ctx, tr)
	if err != nil {
		return err
	}

	byID := make(map[string]*ent.Trace, len(group))
	samples := make([]clustering.Sample, 0, len(group))
	for _, member := range group {
		text, ok := models.FirstMessageText(member.InputItems)
		if !ok {
			continue
		}
		byID[member.ID] = member
		samples = append(samples, clustering.Sample{TraceID: member.ID, Text: text})
	}

	for _, cluster := range clustering.FindClusters(samples) {
		if err := s.autoCreate(ctx, tr, cluster, byID); err != nil {
			slog.Warn("Task auto-creation failed", "trace_id", traceID, "error", err)
		}
	}
	return nil
}

// autoCreate turns one cluster into a task with a single production
// implementation whose prompt is the inferred template, and links the
// member traces to it. If a task already exists for the call site, the
// members are re-matched against it instead.
func (s *Service) autoCreate(ctx context.Context, seed *ent.Trace, cluster []clustering.Sample, byID map[string]*ent.Trace) error {
	texts := make([]string, len(cluster))
	for i, sample := range cluster {
		texts[i] = sample.Text
	}
	tmpl, bindings, err := clustering.InferTemplate(texts)
	if err != nil {
		return err
	}

	// Serialize check-then-create per cluster group. Path-bound groups are
	// additionally backstopped by the tasks (project_id, path) unique index
	// for races across processes; pathless groups have no database-level
	// key, so this lock is their only guard.
	lock := s.groupLock(seed)
	lock.Lock()
	defer lock.Unlock()

	adopted, err := s.rematchAgainstExistingTask(ctx, seed, cluster)
	if err != nil {
		return err
	}
	if adopted {
		return nil
	}

	if err := s.createTaskTx(ctx, seed, cluster, byID, tmpl, bindings); err != nil {
		if !ent.IsConstraintError(err) {
			return err
		}
		// Lost a race with a concurrent auto-creation for the same call
		// site; the winner's implementation should now match.
		if _, rerr := s.rematchAgainstExistingTask(ctx, seed, cluster); rerr != nil {
			return rerr
		}
		return nil
	}
	return nil
}

// groupLock returns the mutex for the seed's cluster group.
func (s *Service) groupLock(seed *ent.Trace) *sync.Mutex {
	key := seed.ProjectID + "|" + pricing.NormalizeModel(seed.Model)
	if seed.Path != nil {
		key += "|" + *seed.Path
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.groupLocks[key]
	if !ok {
		l = &sync.Mutex{}
		s.groupLocks[key] = l
	}
	return l
}

// rematchAgainstExistingTask reports whether a task for the seed's call site
// already exists with implementations, re-running the matcher over the
// cluster members if so.
func (s *Service) rematchAgainstExistingTask(ctx context.Context, seed *ent.Trace, cluster []clustering.Sample) (bool, error) {
	if seed.Path == nil {
		return false, nil
	}
	q := s.client.Task.Query().
		Where(task.ProjectID(seed.ProjectID), task.Path(*seed.Path))
	existing, err := q.First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to query tasks: %w", err)
	}
	impls, err := s.tasks.ListImplementations(ctx, existing.ID)
	if err != nil {
		return false, err
	}
	if len(impls) == 0 {
		return false, nil
	}

	for _, sample := range cluster {
		member, err := s.traces.GetTrace(ctx, sample.TraceID)
		if err != nil {
			continue
		}
		if member.ImplementationID != nil {
			continue
		}
		if _, err := s.traces.MatchTrace(ctx, member); err != nil {
			return true, err
		}
	}
	return true, nil
}

// createTaskTx creates the task, its 1.0 implementation and the trace links
// in one transaction.
func (s *Service) createTaskTx(ctx context.Context, seed *ent.Trace, cluster []clustering.Sample, byID map[string]*ent.Trace, tmpl string, bindings []map[string]string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	rollback := func(err error) error {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return err
	}

	t, err := tx.Task.Create().
		SetID(uuid.New().String()).
		SetProjectID(seed.ProjectID).
		SetName(autoTaskName(seed.Path, tmpl)).
		SetNillablePath(seed.Path).
		Save(ctx)
	if err != nil {
		return rollback(err)
	}

	impl, err := tx.Implementation.Create().
		SetID(uuid.New().String()).
		SetTaskID(t.ID).
		SetVersion("1.0").
		SetPrompt(tmpl).
		SetModel(seed.Model).
		SetMaxOutputTokens(services.DefaultMaxOutputTokens).
		Save(ctx)
	if err != nil {
		return rollback(err)
	}
	if err := tx.Task.UpdateOneID(t.ID).
		SetProductionVersionID(impl.ID).
		Exec(ctx); err != nil {
		return rollback(err)
	}

	for i, sample := range cluster {
		member, ok := byID[sample.TraceID]
		if !ok || member.ImplementationID != nil {
			continue
		}
		update := tx.Trace.UpdateOneID(member.ID).
			SetImplementationID(impl.ID)
		if i < len(bindings) && len(bindings[i]) > 0 {
			update.SetPromptVariables(bindings[i])
		}
		if err := update.Exec(ctx); err != nil {
			return rollback(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit task creation: %w", err)
	}
	slog.Info("Auto-created task from cluster",
		"task_id", t.ID,
		"implementation_id", impl.ID,
		"cluster_size", len(cluster),
	)
	return nil
}

// autoTaskName derives a human-readable task name from the call site path,
// falling back to the template's opening words.
func autoTaskName(path *string, tmpl string) string {
	if path != nil && *path != "" {
		return *path
	}
	name := strings.Join(strings.Fields(tmpl), " ")
	if len(name) > maxAutoTaskNameLen {
		name = strings.TrimSpace(name[:maxAutoTaskNameLen]) + "…"
	}
	return name
}

// metadataPath pulls the application call site out of submitted metadata.
func metadataPath(metadata map[string]interface{}) *string {
	if metadata == nil {
		return nil
	}
	if v, ok := metadata["path"].(string); ok && v != "" {
		return &v
	}
	return nil
}

// isStreaming sniffs SSE responses from the captured headers, with the
// request body's stream flag as a fallback.
func isStreaming(in services.HTTPTraceInput) bool {
	for k, v := range in.ResponseHeaders {
		if strings.EqualFold(k, "Content-Type") && strings.Contains(strings.ToLower(v), "text/event-stream") {
			return true
		}
	}
	return strings.Contains(string(in.Request), `"stream":true`) ||
		strings.Contains(string(in.Request), `"stream": true`)
}
