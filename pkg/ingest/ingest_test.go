package ingest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptlens/promptlens/ent"
	enttask "github.com/promptlens/promptlens/ent/task"
	"github.com/promptlens/promptlens/pkg/clustering"
	"github.com/promptlens/promptlens/pkg/models"
	"github.com/promptlens/promptlens/pkg/providers"
	"github.com/promptlens/promptlens/pkg/queue"
	"github.com/promptlens/promptlens/pkg/services"
	testdb "github.com/promptlens/promptlens/test/database"
)

func newTestService(t *testing.T) (*Service, *ent.Client, string) {
	client := testdb.NewTestClient(t)
	projects := services.NewProjectService(client.Client)
	traces := services.NewTraceService(client.Client)
	tasks := services.NewTaskService(client.Client)
	svc := NewService(client.Client, traces, tasks, providers.NewRegistry(), queue.NewPool(1))

	project, err := projects.CreateProject(context.Background(), "ingest")
	require.NoError(t, err)
	return svc, client.Client, project.ID
}

func seedTrace(t *testing.T, svc *Service, projectID, text string) *ent.Trace {
	t.Helper()
	path := "app/greet.py:10"
	tr, err := svc.traces.CreateTrace(context.Background(), projectID, nil, &providers.ParsedTrace{
		Model:      "gpt-4o",
		InputItems: []models.TraceItem{models.MessageItem(0, "system", text)},
	}, &path, time.Now(), time.Now())
	require.NoError(t, err)
	return tr
}

func TestProcessUnmatched_AutoCreatesTask(t *testing.T) {
	svc, client, projectID := newTestService(t)
	ctx := context.Background()

	seedTrace(t, svc, projectID, "Greet user Alice politely.")
	seedTrace(t, svc, projectID, "Greet user Bob politely.")
	seed := seedTrace(t, svc, projectID, "Greet user Charlie politely.")

	require.NoError(t, svc.ProcessUnmatched(ctx, seed.ID))

	task, err := client.Task.Query().Where(enttask.ProjectID(projectID)).Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, task.Path)
	assert.Equal(t, "app/greet.py:10", *task.Path)
	require.NotNil(t, task.ProductionVersionID)

	impl, err := client.Implementation.Get(ctx, *task.ProductionVersionID)
	require.NoError(t, err)
	assert.Equal(t, "Greet user {{var_0}} politely.", impl.Prompt)
	assert.Equal(t, "gpt-4o", impl.Model)
	assert.Equal(t, "1.0", impl.Version)

	// Every cluster member is linked with its extracted variables.
	traces, err := client.Trace.Query().All(ctx)
	require.NoError(t, err)
	names := map[string]bool{}
	for _, tr := range traces {
		require.NotNil(t, tr.ImplementationID)
		assert.Equal(t, impl.ID, *tr.ImplementationID)
		names[tr.PromptVariables["var_0"]] = true
	}
	assert.Equal(t, map[string]bool{"Alice": true, "Bob": true, "Charlie": true}, names)
}

func TestProcessUnmatched_InsufficientCluster(t *testing.T) {
	svc, client, projectID := newTestService(t)
	ctx := context.Background()

	seedTrace(t, svc, projectID, "Greet user Alice politely.")
	seed := seedTrace(t, svc, projectID, "Greet user Bob politely.")

	require.NoError(t, svc.ProcessUnmatched(ctx, seed.ID))

	n, err := client.Task.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestProcessUnmatched_SkipsTracesWithoutSystemPrompt(t *testing.T) {
	svc, client, projectID := newTestService(t)
	ctx := context.Background()

	path := "app/chat.py:1"
	var seed *ent.Trace
	for _, name := range []string{"Alice", "Bob", "Charlie"} {
		tr, err := svc.traces.CreateTrace(ctx, projectID, nil, &providers.ParsedTrace{
			Model:      "gpt-4o",
			InputItems: []models.TraceItem{models.MessageItem(0, "user", "Greet user "+name+" politely.")},
		}, &path, time.Now(), time.Now())
		require.NoError(t, err)
		seed = tr
	}

	require.NoError(t, svc.ProcessUnmatched(ctx, seed.ID))
	n, err := client.Task.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestProcessUnmatched_ExistingTaskRematches(t *testing.T) {
	svc, client, projectID := newTestService(t)
	ctx := context.Background()

	seedTrace(t, svc, projectID, "Greet user Alice politely.")
	seedTrace(t, svc, projectID, "Greet user Bob politely.")
	seed := seedTrace(t, svc, projectID, "Greet user Charlie politely.")

	// A task for this call site already exists with a matching template.
	path := "app/greet.py:10"
	task, err := svc.tasks.CreateTask(ctx, services.CreateTaskRequest{
		ProjectID: projectID,
		Name:      "greeter",
		Path:      &path,
	})
	require.NoError(t, err)
	impl, err := svc.tasks.CreateImplementation(ctx, task.ID, 1, services.ImplementationInput{
		Prompt: "Greet user {{who}} politely.",
		Model:  "gpt-4o",
	})
	require.NoError(t, err)

	require.NoError(t, svc.ProcessUnmatched(ctx, seed.ID))

	// No second task, and the traces adopted the existing implementation.
	n, err := client.Task.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	traces, err := client.Trace.Query().All(ctx)
	require.NoError(t, err)
	for _, tr := range traces {
		require.NotNil(t, tr.ImplementationID)
		assert.Equal(t, impl.ID, *tr.ImplementationID)
	}
}

func TestAutoCreate_CreationRaceAdoptsWinner(t *testing.T) {
	svc, client, projectID := newTestService(t)
	ctx := context.Background()

	seedTrace(t, svc, projectID, "Greet user Alice politely.")
	seedTrace(t, svc, projectID, "Greet user Bob politely.")
	seed := seedTrace(t, svc, projectID, "Greet user Charlie politely.")

	// Build the cluster the way ProcessUnmatched would.
	group, err := svc.traces.UnmatchedGroupTraces(ctx, seed)
	require.NoError(t, err)
	byID := make(map[string]*ent.Trace, len(group))
	samples := make([]clustering.Sample, 0, len(group))
	for _, member := range group {
		text, ok := models.FirstMessageText(member.InputItems)
		require.True(t, ok)
		byID[member.ID] = member
		samples = append(samples, clustering.Sample{TraceID: member.ID, Text: text})
	}
	clusters := clustering.FindClusters(samples)
	require.Len(t, clusters, 1)
	texts := make([]string, len(clusters[0]))
	for i, sample := range clusters[0] {
		texts[i] = sample.Text
	}
	tmpl, bindings, err := clustering.InferTemplate(texts)
	require.NoError(t, err)

	// A concurrent ingest wins the creation race for the same call site
	// after this job's existing-task check came up empty.
	path := "app/greet.py:10"
	task, err := svc.tasks.CreateTask(ctx, services.CreateTaskRequest{
		ProjectID: projectID,
		Name:      "greeter",
		Path:      &path,
	})
	require.NoError(t, err)
	impl, err := svc.tasks.CreateImplementation(ctx, task.ID, 1, services.ImplementationInput{
		Prompt: "Greet user {{who}} politely.",
		Model:  "gpt-4o",
	})
	require.NoError(t, err)

	// The losing insert is rejected by the call-site uniqueness.
	err = svc.createTaskTx(ctx, seed, clusters[0], byID, tmpl, bindings)
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))

	// The full path recovers by adopting the winner's task.
	require.NoError(t, svc.autoCreate(ctx, seed, clusters[0], byID))

	n, err := client.Task.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	impls, err := client.Implementation.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, impls)

	traces, err := client.Trace.Query().All(ctx)
	require.NoError(t, err)
	for _, tr := range traces {
		require.NotNil(t, tr.ImplementationID)
		assert.Equal(t, impl.ID, *tr.ImplementationID)
	}
}

func TestIngestHTTPTrace_ParseFailureRecorded(t *testing.T) {
	svc, _, projectID := newTestService(t)
	ctx := context.Background()

	_, tr, err := svc.IngestHTTPTrace(ctx, services.HTTPTraceInput{
		ProjectID:   projectID,
		URL:         "https://api.openai.com/v1/chat/completions",
		Method:      "POST",
		StartedAt:   time.Now(),
		CompletedAt: time.Now(),
		Request:     []byte("not json"),
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, tr.Error)
	assert.Equal(t, "unknown", tr.Model)
}

func TestIngestHTTPTrace_SubmittedImplementationWins(t *testing.T) {
	svc, _, projectID := newTestService(t)
	ctx := context.Background()

	task, err := svc.tasks.CreateTask(ctx, services.CreateTaskRequest{ProjectID: projectID, Name: "bound"})
	require.NoError(t, err)
	impl, err := svc.tasks.CreateImplementation(ctx, task.ID, 1, services.ImplementationInput{
		Prompt: "irrelevant", Model: "gpt-4o",
	})
	require.NoError(t, err)

	_, tr, err := svc.IngestHTTPTrace(ctx, services.HTTPTraceInput{
		ProjectID:   projectID,
		URL:         "https://api.openai.com/v1/chat/completions",
		Method:      "POST",
		StartedAt:   time.Now(),
		CompletedAt: time.Now(),
		Request:     []byte(`{"model":"gpt-4o","messages":[{"role":"user","content":"hi"}]}`),
		Response:    []byte(`{"object":"chat.completion","model":"gpt-4o","choices":[{"message":{"role":"assistant","content":"hello"}}]}`),
	}, &impl.ID)
	require.NoError(t, err)
	require.NotNil(t, tr.ImplementationID)
	assert.Equal(t, impl.ID, *tr.ImplementationID)
}
