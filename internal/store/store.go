// Package store handles SQLite persistence of the phrase collection.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/verte-zerg/phrasey/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for phrase data.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS phrases (
			id INTEGER PRIMARY KEY,
			original TEXT NOT NULL,
			translation TEXT NOT NULL,
			UNIQUE (original, translation)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_phrases_original ON phrases(original);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ImportPhrases inserts phrases in one transaction, skipping pairs that already
// exist. It returns the number of new rows.
func (s *Store) ImportPhrases(ctx context.Context, phrases []model.Phrase) (n int, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO phrases (original, translation) VALUES (?, ?)`)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()

	inserted := 0
	for _, p := range phrases {
		res, err := stmt.ExecContext(ctx, p.Original, p.Translation)
		if err != nil {
			return 0, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		inserted += int(affected)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return inserted, nil
}

// CountPhrases returns the size of the collection.
func (s *Store) CountPhrases(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM phrases`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Sample returns up to n phrases in random order.
func (s *Store) Sample(ctx context.Context, n int) ([]model.Phrase, error) {
	if n <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT original, translation FROM phrases ORDER BY RANDOM() LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.Phrase
	for rows.Next() {
		var p model.Phrase
		if err := rows.Scan(&p.Original, &p.Translation); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
