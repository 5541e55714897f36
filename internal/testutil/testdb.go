package testutil

import (
	"database/sql"
	"testing"

	"github.com/pe51k/tagtally/internal/db"
)

// NewTestDB creates an in-memory SQLite database with the Timetagger table
// layout applied. The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}
