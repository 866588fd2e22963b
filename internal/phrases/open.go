package phrases

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/phrasey/internal/model"
	"github.com/verte-zerg/phrasey/internal/store"
)

// Source is an opened phrase collection.
type Source interface {
	Sample(ctx context.Context, n int) ([]model.Phrase, error)
	Count(ctx context.Context) (int, error)
	io.Closer
}

type backend int

const (
	backendCSV backend = iota
	backendSQLite
)

func resolve(uri string) (backend, string, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return 0, "", fmt.Errorf("store uri is empty")
	}
	switch {
	case strings.HasPrefix(uri, "file://"):
		return backendCSV, strings.TrimPrefix(uri, "file://"), nil
	case strings.HasPrefix(uri, "sqlite://"):
		return backendSQLite, strings.TrimPrefix(uri, "sqlite://"), nil
	case strings.Contains(uri, "://"):
		return 0, "", fmt.Errorf("unsupported store uri %q (want file:// or sqlite://)", uri)
	case strings.HasSuffix(strings.ToLower(uri), ".csv"):
		return backendCSV, uri, nil
	default:
		return backendSQLite, uri, nil
	}
}

// Open resolves a store URI. "file://" URIs and paths ending in ".csv" load a
// CSV file; "sqlite://" URIs and any other path open a SQLite database.
func Open(uri string) (Source, error) {
	kind, path, err := resolve(uri)
	if err != nil {
		return nil, err
	}
	if kind == backendCSV {
		return openCSV(path)
	}
	return openSQLite(path)
}

// SQLitePath returns the database path of a SQLite store URI. CSV URIs are
// rejected since they cannot be written to.
func SQLitePath(uri string) (string, error) {
	kind, path, err := resolve(uri)
	if err != nil {
		return "", err
	}
	if kind != backendSQLite {
		return "", fmt.Errorf("store %q is a CSV file; use a sqlite:// uri", uri)
	}
	return path, nil
}

func openCSV(path string) (Source, error) {
	st, err := LoadCSV(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load phrases: %w", err)
	}
	return csvSource{st}, nil
}

func openSQLite(path string) (Source, error) {
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return sqliteSource{st}, nil
}

type csvSource struct {
	*CSVStore
}

func (s csvSource) Count(context.Context) (int, error) { return s.Len(), nil }
func (csvSource) Close() error                         { return nil }

type sqliteSource struct {
	*store.Store
}

func (s sqliteSource) Count(ctx context.Context) (int, error) { return s.CountPhrases(ctx) }
