// Package db provides the PostgreSQL backend for the entity store.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ljylun/InterviewManagementMaster/internal/store"
)

// DB wraps a PostgreSQL connection pool and implements store.Store.
type DB struct {
	pool *pgxpool.Pool
}

var _ store.Store = (*DB)(nil)

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Migrate creates the three entity tables if they do not exist. Application
// rows cascade when their candidate is deleted, which is the store-level half
// of candidate removal; jobs are never deleted by this core.
func (db *DB) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS jobs (
			id             TEXT PRIMARY KEY,
			title          TEXT NOT NULL,
			department     TEXT NOT NULL DEFAULT '',
			location       TEXT NOT NULL DEFAULT '',
			type           TEXT NOT NULL DEFAULT '',
			lifecycle      TEXT NOT NULL DEFAULT 'Draft',
			recruiter      TEXT NOT NULL DEFAULT '',
			hiring_manager TEXT NOT NULL DEFAULT '',
			target_count   INT NOT NULL DEFAULT 0,
			hired_count    INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS candidates (
			id              TEXT PRIMARY KEY,
			name            TEXT NOT NULL,
			email           TEXT NOT NULL,
			phone           TEXT NOT NULL DEFAULT '',
			avatar_url      TEXT NOT NULL DEFAULT '',
			role            TEXT NOT NULL DEFAULT '',
			experience      INT NOT NULL DEFAULT 0,
			education       TEXT NOT NULL DEFAULT '',
			tags            JSONB,
			resume_url      TEXT NOT NULL DEFAULT '',
			resume_text     TEXT NOT NULL DEFAULT '',
			work_experience JSONB
		)`,
		`CREATE TABLE IF NOT EXISTS applications (
			id              TEXT PRIMARY KEY,
			job_id          TEXT NOT NULL REFERENCES jobs(id),
			candidate_id    TEXT NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
			status          TEXT NOT NULL,
			interview_round INT NOT NULL DEFAULT 0,
			score           DOUBLE PRECISION,
			reject_reason   TEXT NOT NULL DEFAULT '',
			applied_at      TIMESTAMPTZ NOT NULL,
			updated_at      TIMESTAMPTZ NOT NULL,
			reviews         JSONB
		)`,
		`CREATE INDEX IF NOT EXISTS idx_applications_job ON applications(job_id)`,
		`CREATE INDEX IF NOT EXISTS idx_applications_candidate ON applications(candidate_id)`,
		`CREATE INDEX IF NOT EXISTS idx_candidates_email ON candidates(email)`,
	}

	for _, stmt := range statements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// Snapshot loads a consistent copy of all three collections.
func (db *DB) Snapshot(ctx context.Context) (store.Snapshot, error) {
	var snap store.Snapshot
	var err error

	if snap.Jobs, err = db.ListJobs(ctx); err != nil {
		return store.Snapshot{}, err
	}
	if snap.Candidates, err = db.ListCandidates(ctx); err != nil {
		return store.Snapshot{}, err
	}
	if snap.Applications, err = db.listApplications(ctx); err != nil {
		return store.Snapshot{}, err
	}
	return snap, nil
}
