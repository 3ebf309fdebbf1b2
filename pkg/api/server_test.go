package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/pkg/ingest"
	"github.com/promptlens/promptlens/pkg/providers"
	"github.com/promptlens/promptlens/pkg/queue"
	"github.com/promptlens/promptlens/pkg/services"
	testdb "github.com/promptlens/promptlens/test/database"
)

func newTestServer(t *testing.T) *Server {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client

	projects := services.NewProjectService(client)
	traces := services.NewTraceService(client)
	tasks := services.NewTaskService(client)
	testCases := services.NewTestCaseService(client)
	graders := services.NewGraderService(client)
	configs := services.NewEvaluationConfigService(client)
	pool := queue.NewPool(1)

	return NewServer(Deps{
		DB:        dbClient,
		Projects:  projects,
		Traces:    traces,
		Tasks:     tasks,
		TestCases: testCases,
		Graders:   graders,
		Configs:   configs,
		Ingest:    ingest.NewService(client, traces, tasks, providers.NewRegistry(), pool),
		Pool:      pool,
	})
}

func doJSON(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func TestProjectEndpoints(t *testing.T) {
	s := newTestServer(t)

	t.Run("create and fetch", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/api/v1/projects", CreateProjectRequest{Name: "api-test"})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var created ent.Project
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(t, "api-test", created.Name)
		require.NotEmpty(t, created.ID)

		rec = doJSON(t, s, http.MethodGet, "/api/v1/projects/"+created.ID, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, s, http.MethodGet, "/api/v1/projects", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var listed []ent.Project
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
		assert.Len(t, listed, 1)
	})

	t.Run("missing name is rejected", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/api/v1/projects", CreateProjectRequest{})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/api/v1/projects", CreateProjectRequest{Name: "api-test"})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/api/v1/projects/no-such-id", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestTaskEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/projects", CreateProjectRequest{Name: "tasks"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var project ent.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &project))

	rec = doJSON(t, s, http.MethodPost, "/api/v1/tasks", CreateTaskRequest{
		ProjectID: project.ID,
		Name:      "summarizer",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var task ent.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &task))

	rec = doJSON(t, s, http.MethodPost, fmt.Sprintf("/api/v1/tasks/%s/implementations", task.ID), CreateImplementationRequest{
		Major:  1,
		Prompt: "Summarize: {{text}}",
		Model:  "gpt-4o",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var impl ent.Implementation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &impl))
	assert.Equal(t, "1.0", impl.Version)

	rec = doJSON(t, s, http.MethodPut, fmt.Sprintf("/api/v1/tasks/%s/production-version", task.ID), SetProductionVersionRequest{
		ImplementationID: impl.ID,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated ent.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.NotNil(t, updated.ProductionVersionID)
	assert.Equal(t, impl.ID, *updated.ProductionVersionID)

	t.Run("bad stats parameters are rejected", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/api/v1/tasks?project_id="+project.ID+"&percentile=150", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHTTPTraceEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/projects", CreateProjectRequest{Name: "ingest"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var project ent.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &project))

	now := time.Now().UTC()
	rec = doJSON(t, s, http.MethodPost, "/api/v1/http-traces", CreateHTTPTraceRequest{
		ProjectID:   project.ID,
		URL:         "https://api.openai.com/v1/chat/completions",
		Method:      "POST",
		StartedAt:   now,
		CompletedAt: now.Add(time.Second),
		Request:     []byte(`{"model":"gpt-4o","messages":[{"role":"user","content":"hi"}]}`),
		Response:    []byte(`{"object":"chat.completion","model":"gpt-4o-2024-08-06","choices":[{"message":{"role":"assistant","content":"hello"},"finish_reason":"stop"}],"usage":{"prompt_tokens":9,"completion_tokens":3,"total_tokens":12}}`),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		HTTPTrace ent.HTTPTrace `json:"http_trace"`
		Trace     ent.Trace     `json:"trace"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.HTTPTrace.ID)
	assert.Equal(t, "gpt-4o-2024-08-06", resp.Trace.Model)
	assert.Equal(t, 12, resp.Trace.TotalTokens)
	assert.Nil(t, resp.Trace.Error)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/http-traces/"+resp.HTTPTrace.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/traces?project_id="+project.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var traces []ent.Trace
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &traces))
	assert.Len(t, traces, 1)
}

func TestSecurityHeaders(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/projects", nil)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
