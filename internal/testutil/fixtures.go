package testutil

import (
	"database/sql"
	"fmt"
	"testing"
)

// InsertRawRecord inserts a raw records row with a Timetagger-shaped _ob
// payload built from the description and epoch-second endpoints.
func InsertRawRecord(t *testing.T, database *sql.DB, key, description string, t1, t2 int64) {
	t.Helper()
	blob := fmt.Sprintf(`{"key":%q,"mt":%d,"t1":%d,"t2":%d,"ds":%q,"st":0}`,
		key, t2, t1, t2, description)
	InsertRawBlob(t, database, key, blob, t1, t2)
}

// InsertRawBlob inserts a records row with an arbitrary _ob payload, for
// exercising malformed-blob handling.
func InsertRawBlob(t *testing.T, database *sql.DB, key, blob string, t1, t2 int64) {
	t.Helper()
	_, err := database.Exec(
		`INSERT INTO records (key, st, t1, t2, _ob) VALUES (?, 0, ?, ?, ?)`,
		key, t1, t2, blob,
	)
	if err != nil {
		t.Fatalf("failed to insert fixture record %s: %v", key, err)
	}
}
