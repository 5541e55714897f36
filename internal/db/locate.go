package db

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrDatabaseNotFound indicates no Timetagger database could be located.
var ErrDatabaseNotFound = errors.New(
	"timetagger database not found; set TIMETAGGER_DB_PATH or configure db_path")

// FindDatabase locates a Timetagger user database. Lookup order:
//  1. TIMETAGGER_DB_PATH, if it points at an existing file.
//  2. TIMETAGGER_DATADIR plus the well-known container mounts, searched
//     for a _timetagger/users directory containing *.db files.
func FindDatabase() (string, error) {
	if p := os.Getenv("TIMETAGGER_DB_PATH"); p != "" {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}

	var searchPaths []string
	if dir := os.Getenv("TIMETAGGER_DATADIR"); dir != "" {
		searchPaths = append(searchPaths, dir)
	}
	searchPaths = append(searchPaths,
		"/data/timetagger",
		"/data",
		"/app/data",
	)
	if home, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, filepath.Join(home, ".timetagger"))
	}

	for _, base := range searchPaths {
		if p := findUserDB(base); p != "" {
			return p, nil
		}
	}

	return "", ErrDatabaseNotFound
}

// findUserDB walks base looking for a *.db file under a _timetagger/users
// directory. The first match wins.
func findUserDB(base string) string {
	if _, err := os.Stat(base); err != nil {
		return ""
	}

	// Try the expected structure first.
	usersDir := filepath.Join(base, "_timetagger", "users")
	if entries, err := os.ReadDir(usersDir); err == nil {
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ".db") {
				return filepath.Join(usersDir, e.Name())
			}
		}
	}

	// Fall back to a recursive search.
	var found string
	_ = filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if found != "" {
			return fs.SkipAll
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".db") &&
			strings.Contains(filepath.ToSlash(path), "_timetagger/users/") {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	return found
}
