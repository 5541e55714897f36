package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDatabase_EnvPathWins(t *testing.T) {
	dir := t.TempDir()
	dbFile := filepath.Join(dir, "user.db")
	require.NoError(t, os.WriteFile(dbFile, []byte{}, 0644))

	t.Setenv("TIMETAGGER_DB_PATH", dbFile)
	t.Setenv("TIMETAGGER_DATADIR", "")

	found, err := FindDatabase()
	require.NoError(t, err)
	assert.Equal(t, dbFile, found)
}

func TestFindDatabase_DataDirUsersLayout(t *testing.T) {
	dir := t.TempDir()
	usersDir := filepath.Join(dir, "_timetagger", "users")
	require.NoError(t, os.MkdirAll(usersDir, 0755))
	dbFile := filepath.Join(usersDir, "pe51k~cGU1MWs=.db")
	require.NoError(t, os.WriteFile(dbFile, []byte{}, 0644))

	t.Setenv("TIMETAGGER_DB_PATH", "")
	t.Setenv("TIMETAGGER_DATADIR", dir)

	found, err := FindDatabase()
	require.NoError(t, err)
	assert.Equal(t, dbFile, found)
}

func TestFindDatabase_RecursiveFallback(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "volumes", "tt", "_timetagger", "users")
	require.NoError(t, os.MkdirAll(nested, 0755))
	dbFile := filepath.Join(nested, "user.db")
	require.NoError(t, os.WriteFile(dbFile, []byte{}, 0644))

	t.Setenv("TIMETAGGER_DB_PATH", "")
	t.Setenv("TIMETAGGER_DATADIR", dir)

	found, err := FindDatabase()
	require.NoError(t, err)
	assert.Equal(t, dbFile, found)
}

func TestFindDatabase_NotFound(t *testing.T) {
	t.Setenv("TIMETAGGER_DB_PATH", "")
	t.Setenv("TIMETAGGER_DATADIR", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	_, err := FindDatabase()
	assert.ErrorIs(t, err, ErrDatabaseNotFound)
}
