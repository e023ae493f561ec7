// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store appends result batches to a SQLite table, one flat row per
// paper with the same columns as the CSV output. The table is write-only
// from this program's point of view: nothing reads it back.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

const tableName = "papers"

// now is replaced in tests.
var now = time.Now

// Store wraps the SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and ensures the schema exists.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS papers (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			pmid TEXT NOT NULL,
			title TEXT NOT NULL,
			authors TEXT NOT NULL,
			publication_date TEXT NOT NULL,
			non_academic_authors TEXT NOT NULL,
			company_affiliations TEXT NOT NULL,
			corresponding_email TEXT NOT NULL,
			stored_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_run_id ON papers(run_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save writes papers in one transaction under a fresh run ID and returns
// that ID. Saving an empty batch writes nothing and returns "".
func (s *Store) Save(ctx context.Context, papers []types.Paper) (string, error) {
	if len(papers) == 0 {
		return "", nil
	}

	runID := uuid.NewString()
	storedAt := now().UTC().Format(time.RFC3339)

	insert := sq.Insert(tableName).Columns(
		"run_id", "pmid", "title", "authors", "publication_date",
		"non_academic_authors", "company_affiliations", "corresponding_email", "stored_at",
	)
	for _, p := range papers {
		insert = insert.Values(
			runID, p.PMID, p.Title, p.Authors, p.PublicationYear,
			p.NonAcademicAuthors, p.CompanyAffiliations, p.CorrespondingEmail, storedAt,
		)
	}
	query, args, err := insert.ToSql()
	if err != nil {
		return "", fmt.Errorf("building insert: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return "", fmt.Errorf("inserting papers: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing: %w", err)
	}
	return runID, nil
}
