package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/promptlens/promptlens/test/database"
)

func TestTaskService_Versioning(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)
	tasks := NewTaskService(client.Client)
	ctx := context.Background()

	project, err := projects.CreateProject(ctx, "versioning")
	require.NoError(t, err)
	task, err := tasks.CreateTask(ctx, CreateTaskRequest{ProjectID: project.ID, Name: "summarize"})
	require.NoError(t, err)

	in := ImplementationInput{Prompt: "Summarize: {{text}}", Model: "gpt-4o"}

	t.Run("minor versions increment within a major line", func(t *testing.T) {
		first, err := tasks.CreateImplementation(ctx, task.ID, 1, in)
		require.NoError(t, err)
		assert.Equal(t, "1.0", first.Version)

		second, err := tasks.CreateImplementation(ctx, task.ID, 1, in)
		require.NoError(t, err)
		assert.Equal(t, "1.1", second.Version)

		other, err := tasks.CreateImplementation(ctx, task.ID, 2, in)
		require.NoError(t, err)
		assert.Equal(t, "2.0", other.Version)
	})

	t.Run("temp variants carry a suffix and count toward numbering", func(t *testing.T) {
		temp := in
		temp.Temp = true
		temp.VersionSuffix = "-temp"
		impl, err := tasks.CreateImplementation(ctx, task.ID, 1, temp)
		require.NoError(t, err)
		assert.Equal(t, "1.2-temp", impl.Version)

		next, err := tasks.CreateImplementation(ctx, task.ID, 1, in)
		require.NoError(t, err)
		assert.Equal(t, "1.3", next.Version)
	})

	t.Run("temp variants are hidden from listings", func(t *testing.T) {
		impls, err := tasks.ListImplementations(ctx, task.ID)
		require.NoError(t, err)
		for _, impl := range impls {
			assert.False(t, impl.Temp)
		}
	})

	t.Run("defaults max output tokens", func(t *testing.T) {
		impl, err := tasks.CreateImplementation(ctx, task.ID, 3, in)
		require.NoError(t, err)
		assert.Equal(t, DefaultMaxOutputTokens, impl.MaxOutputTokens)
	})
}

func TestTaskService_CreateTask_DuplicatePath(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)
	tasks := NewTaskService(client.Client)
	ctx := context.Background()

	project, err := projects.CreateProject(ctx, "paths")
	require.NoError(t, err)

	path := "app/tag.py:7"
	_, err = tasks.CreateTask(ctx, CreateTaskRequest{ProjectID: project.ID, Name: "first", Path: &path})
	require.NoError(t, err)

	// One task per call site.
	_, err = tasks.CreateTask(ctx, CreateTaskRequest{ProjectID: project.ID, Name: "second", Path: &path})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// Pathless tasks are not constrained.
	_, err = tasks.CreateTask(ctx, CreateTaskRequest{ProjectID: project.ID, Name: "third"})
	require.NoError(t, err)
	_, err = tasks.CreateTask(ctx, CreateTaskRequest{ProjectID: project.ID, Name: "fourth"})
	require.NoError(t, err)
}

func TestTaskService_SetProductionVersion(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)
	tasks := NewTaskService(client.Client)
	ctx := context.Background()

	project, err := projects.CreateProject(ctx, "production")
	require.NoError(t, err)
	taskA, err := tasks.CreateTask(ctx, CreateTaskRequest{ProjectID: project.ID, Name: "a"})
	require.NoError(t, err)
	taskB, err := tasks.CreateTask(ctx, CreateTaskRequest{ProjectID: project.ID, Name: "b"})
	require.NoError(t, err)

	impl, err := tasks.CreateImplementation(ctx, taskA.ID, 1, ImplementationInput{Prompt: "p", Model: "gpt-4o"})
	require.NoError(t, err)

	t.Run("points the task at its implementation", func(t *testing.T) {
		updated, err := tasks.SetProductionVersion(ctx, taskA.ID, impl.ID)
		require.NoError(t, err)
		require.NotNil(t, updated.ProductionVersionID)
		assert.Equal(t, impl.ID, *updated.ProductionVersionID)
	})

	t.Run("rejects foreign implementations", func(t *testing.T) {
		_, err := tasks.SetProductionVersion(ctx, taskB.ID, impl.ID)
		assert.True(t, IsBadRequestError(err))
	})
}

func TestMajorOf(t *testing.T) {
	assert.Equal(t, 1, MajorOf("1.4"))
	assert.Equal(t, 2, MajorOf("2.0-temp"))
	assert.Equal(t, 0, MajorOf("bogus"))
}
