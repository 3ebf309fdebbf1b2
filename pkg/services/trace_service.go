package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/httptrace"
	"github.com/promptlens/promptlens/ent/implementation"
	"github.com/promptlens/promptlens/ent/task"
	"github.com/promptlens/promptlens/ent/trace"
	"github.com/promptlens/promptlens/pkg/models"
	"github.com/promptlens/promptlens/pkg/pricing"
	"github.com/promptlens/promptlens/pkg/providers"
	"github.com/promptlens/promptlens/pkg/template"
)

// TraceService persists captured HTTP traces and their normalized decodes,
// and matches new traces against known implementations.
type TraceService struct {
	client *ent.Client
}

// NewTraceService creates a new TraceService
func NewTraceService(client *ent.Client) *TraceService {
	return &TraceService{client: client}
}

// HTTPTraceInput is a captured provider call as submitted by the SDK.
type HTTPTraceInput struct {
	ProjectID       string
	URL             string
	Method          string
	StartedAt       time.Time
	CompletedAt     time.Time
	StatusCode      *int
	Error           *string
	Request         []byte
	RequestHeaders  map[string]string
	Response        []byte
	ResponseHeaders map[string]string
	Metadata        map[string]interface{}
}

// DedupHash identifies an HTTP trace by its capture coordinates, making
// ingest idempotent across SDK retries.
func DedupHash(projectID string, startedAt time.Time, url, method string) string {
	h := sha256.Sum256([]byte(fmt.Sprintf("%s|%d|%s|%s", projectID, startedAt.UnixNano(), url, method)))
	return hex.EncodeToString(h[:])
}

// CreateHTTPTrace persists a captured call. Re-submissions of the same
// capture return the already-stored row.
func (s *TraceService) CreateHTTPTrace(ctx context.Context, in HTTPTraceInput) (*ent.HTTPTrace, error) {
	if in.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if in.URL == "" {
		return nil, NewValidationError("url", "required")
	}

	hash := DedupHash(in.ProjectID, in.StartedAt, in.URL, in.Method)
	builder := s.client.HTTPTrace.Create().
		SetID(uuid.New().String()).
		SetProjectID(in.ProjectID).
		SetURL(in.URL).
		SetMethod(in.Method).
		SetStartedAt(in.StartedAt).
		SetCompletedAt(in.CompletedAt).
		SetDedupHash(hash)
	if in.StatusCode != nil {
		builder.SetStatusCode(*in.StatusCode)
	}
	if in.Error != nil {
		builder.SetError(*in.Error)
	}
	if in.Request != nil {
		builder.SetRequest(in.Request)
	}
	if in.RequestHeaders != nil {
		builder.SetRequestHeaders(in.RequestHeaders)
	}
	if in.Response != nil {
		builder.SetResponse(in.Response)
	}
	if in.ResponseHeaders != nil {
		builder.SetResponseHeaders(in.ResponseHeaders)
	}
	if in.Metadata != nil {
		builder.SetMetadata(in.Metadata)
	}

	ht, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			existing, qerr := s.client.HTTPTrace.Query().
				Where(httptrace.DedupHash(hash)).
				Only(ctx)
			if qerr == nil {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("failed to create http trace: %w", err)
	}
	return ht, nil
}

// CreateTrace persists a normalized trace decoded from an HTTP trace (or
// submitted pre-parsed). httpTraceID and path may be nil.
func (s *TraceService) CreateTrace(ctx context.Context, projectID string, httpTraceID *string, parsed *providers.ParsedTrace, path *string, startedAt, completedAt time.Time) (*ent.Trace, error) {
	if projectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if parsed == nil {
		return nil, NewValidationError("trace", "required")
	}

	builder := s.client.Trace.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		SetModel(parsed.Model).
		SetInputItems(parsed.InputItems).
		SetStartedAt(startedAt).
		SetCompletedAt(completedAt).
		SetPromptTokens(parsed.PromptTokens).
		SetCompletionTokens(parsed.CompletionTokens).
		SetCachedTokens(parsed.CachedTokens).
		SetReasoningTokens(parsed.ReasoningTokens).
		SetTotalTokens(parsed.TotalTokens)
	if httpTraceID != nil {
		builder.SetHTTPTraceID(*httpTraceID)
	}
	if path != nil {
		builder.SetPath(*path)
	}
	if parsed.OutputItems != nil {
		builder.SetOutputItems(parsed.OutputItems)
	}
	if parsed.Tools != nil {
		builder.SetTools(parsed.Tools)
	}
	if parsed.ResponseSchema != nil {
		builder.SetResponseSchema(parsed.ResponseSchema)
	}
	if parsed.Temperature != nil {
		builder.SetTemperature(*parsed.Temperature)
	}
	if parsed.MaxTokens != nil {
		builder.SetMaxTokens(*parsed.MaxTokens)
	}
	if parsed.FinishReason != nil {
		builder.SetFinishReason(*parsed.FinishReason)
	}
	if parsed.SystemFingerprint != nil {
		builder.SetSystemFingerprint(*parsed.SystemFingerprint)
	}
	if parsed.Error != nil {
		builder.SetError(*parsed.Error)
	}

	tr, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace: %w", err)
	}
	return tr, nil
}

// BindImplementation attaches a submitter-supplied implementation id to a
// trace without matching.
func (s *TraceService) BindImplementation(ctx context.Context, traceID, implementationID string) (*ent.Trace, error) {
	tr, err := s.client.Trace.UpdateOneID(traceID).
		SetImplementationID(implementationID).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to bind implementation: %w", err)
	}
	return tr, nil
}

// MatchTrace runs the template matcher against every implementation in the
// trace's project whose model matches and picks the first (lowest id) hit.
// Returns false when nothing matched.
func (s *TraceService) MatchTrace(ctx context.Context, tr *ent.Trace) (bool, error) {
	firstMessage, ok := models.FirstMessageText(tr.InputItems)
	if !ok {
		return false, nil
	}

	impls, err := s.client.Implementation.Query().
		Where(
			implementation.HasTaskWith(task.ProjectID(tr.ProjectID)),
			implementation.Temp(false),
		).
		Order(ent.Asc(implementation.FieldID)).
		All(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to query implementations: %w", err)
	}

	model := pricing.NormalizeModel(tr.Model)
	for _, impl := range impls {
		if pricing.NormalizeModel(impl.Model) != model {
			continue
		}
		res := template.Match(impl.Prompt, firstMessage)
		if !res.Matched {
			continue
		}
		if err := s.client.Trace.UpdateOneID(tr.ID).
			SetImplementationID(impl.ID).
			SetPromptVariables(res.Variables).
			Exec(ctx); err != nil {
			return false, fmt.Errorf("failed to link trace to implementation: %w", err)
		}
		return true, nil
	}
	return false, nil
}

// GetTrace returns a trace by id.
func (s *TraceService) GetTrace(ctx context.Context, id string) (*ent.Trace, error) {
	tr, err := s.client.Trace.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get trace: %w", err)
	}
	return tr, nil
}

// GetHTTPTrace returns a captured HTTP trace by id.
func (s *TraceService) GetHTTPTrace(ctx context.Context, id string) (*ent.HTTPTrace, error) {
	ht, err := s.client.HTTPTrace.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get http trace: %w", err)
	}
	return ht, nil
}

// ListTraces returns a project's traces, newest first.
func (s *TraceService) ListTraces(ctx context.Context, projectID string, limit int) ([]*ent.Trace, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	traces, err := s.client.Trace.Query().
		Where(trace.ProjectID(projectID)).
		Order(ent.Desc(trace.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list traces: %w", err)
	}
	return traces, nil
}

// UnmatchedGroupTraces returns the unmatched traces sharing a clustering
// group key with the given trace: same project, same path (null groups with
// null), same normalized model, same has-system-prompt flag.
func (s *TraceService) UnmatchedGroupTraces(ctx context.Context, seed *ent.Trace) ([]*ent.Trace, error) {
	q := s.client.Trace.Query().
		Where(
			trace.ProjectID(seed.ProjectID),
			trace.ImplementationIDIsNil(),
			trace.ErrorIsNil(),
		).
		Order(ent.Asc(trace.FieldID))
	if seed.Path == nil {
		q = q.Where(trace.PathIsNil())
	} else {
		q = q.Where(trace.Path(*seed.Path))
	}

	candidates, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query unmatched traces: %w", err)
	}

	model := pricing.NormalizeModel(seed.Model)
	hasSystem := models.HasSystemPrompt(seed.InputItems)
	var out []*ent.Trace
	for _, tr := range candidates {
		if pricing.NormalizeModel(tr.Model) != model {
			continue
		}
		if models.HasSystemPrompt(tr.InputItems) != hasSystem {
			continue
		}
		out = append(out, tr)
	}
	return out, nil
}
