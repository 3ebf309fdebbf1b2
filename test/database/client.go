// Package database provides database client helpers for integration tests.
package database

import (
	"testing"

	"github.com/promptlens/promptlens/pkg/database"
	"github.com/promptlens/promptlens/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to an external PostgreSQL
// service container. In local dev: spins up a PostgreSQL testcontainer.
// Cleanup (schema drop and connection close) happens when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
