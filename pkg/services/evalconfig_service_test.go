package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/promptlens/promptlens/test/database"
)

func TestEvaluationConfigService(t *testing.T) {
	client := testdb.NewTestClient(t)
	projects := NewProjectService(client.Client)
	tasks := NewTaskService(client.Client)
	configs := NewEvaluationConfigService(client.Client)
	ctx := context.Background()

	project, err := projects.CreateProject(ctx, "weights")
	require.NoError(t, err)
	task, err := tasks.CreateTask(ctx, CreateTaskRequest{ProjectID: project.ID, Name: "t"})
	require.NoError(t, err)

	t.Run("rejects weights not summing to one", func(t *testing.T) {
		_, err := configs.UpsertConfig(ctx, task.ID, EvaluationConfigInput{
			QualityWeight: 0.5,
			CostWeight:    0.5,
			TimeWeight:    0.5,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("tolerates float drift", func(t *testing.T) {
		cfg, err := configs.UpsertConfig(ctx, task.ID, EvaluationConfigInput{
			QualityWeight: 0.333,
			CostWeight:    0.333,
			TimeWeight:    0.333,
		})
		require.NoError(t, err)
		assert.InDelta(t, 0.333, cfg.QualityWeight, 1e-9)
	})

	t.Run("upsert replaces the existing config", func(t *testing.T) {
		cfg, err := configs.UpsertConfig(ctx, task.ID, EvaluationConfigInput{
			QualityWeight: 0.8,
			CostWeight:    0.1,
			TimeWeight:    0.1,
			GraderIDs:     []string{"g1"},
		})
		require.NoError(t, err)
		assert.Equal(t, 0.8, cfg.QualityWeight)
		assert.Equal(t, []string{"g1"}, cfg.GraderIds)

		again, err := configs.GetConfig(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, cfg.ID, again.ID)
	})

	t.Run("ensure creates the default on first use", func(t *testing.T) {
		other, err := tasks.CreateTask(ctx, CreateTaskRequest{ProjectID: project.ID, Name: "t2"})
		require.NoError(t, err)

		cfg, err := configs.EnsureConfig(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, DefaultQualityWeight, cfg.QualityWeight)
		assert.Equal(t, DefaultCostWeight, cfg.CostWeight)
		assert.Equal(t, DefaultTimeWeight, cfg.TimeWeight)
		assert.Empty(t, cfg.GraderIds)
	})
}
