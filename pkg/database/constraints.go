package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateCheckConstraints creates CHECK constraints that Ent cannot express in
// its schema DSL. Applied after migrations; idempotent.
func CreateCheckConstraints(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// A grade targets exactly one of trace / execution result.
	_, err := db.ExecContext(ctx, `
		DO $$ BEGIN
			ALTER TABLE grades ADD CONSTRAINT grades_target_xor
			CHECK (num_nonnulls(trace_id, execution_result_id) = 1);
		EXCEPTION WHEN duplicate_object THEN NULL;
		END $$`)
	if err != nil {
		return fmt.Errorf("failed to create grades target XOR constraint: %w", err)
	}

	// Evaluation weights are non-negative.
	_, err = db.ExecContext(ctx, `
		DO $$ BEGIN
			ALTER TABLE evaluation_configs ADD CONSTRAINT evaluation_configs_weights_nonneg
			CHECK (quality_weight >= 0 AND cost_weight >= 0 AND time_weight >= 0);
		EXCEPTION WHEN duplicate_object THEN NULL;
		END $$`)
	if err != nil {
		return fmt.Errorf("failed to create weight constraint: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Ingest dedup: NULL hashes are allowed and never collide.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS http_traces_dedup_hash_unique
		ON http_traces (dedup_hash)
		WHERE dedup_hash IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create dedup hash index: %w", err)
	}

	// One task per call site. Auto-creation relies on the losing insert
	// failing here so it can adopt the winner's task instead.
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS tasks_project_id_path_unique
		ON tasks (project_id, path)
		WHERE path IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create task call site index: %w", err)
	}

	return nil
}
