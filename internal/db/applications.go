package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ljylun/InterviewManagementMaster/internal/types"
)

const applicationColumns = `id, job_id, candidate_id, status, interview_round,
	score, reject_reason, applied_at, updated_at, reviews`

func scanApplication(row pgx.Row) (types.Application, error) {
	var a types.Application
	var reviewsJSON []byte

	err := row.Scan(&a.ID, &a.JobID, &a.CandidateID, &a.Status, &a.InterviewRound,
		&a.Score, &a.RejectReason, &a.AppliedAt, &a.UpdatedAt, &reviewsJSON)
	if err != nil {
		return a, err
	}

	if reviewsJSON != nil {
		_ = json.Unmarshal(reviewsJSON, &a.Reviews)
	}
	return a, nil
}

func (db *DB) listApplications(ctx context.Context) ([]types.Application, error) {
	return db.queryApplications(ctx, `SELECT `+applicationColumns+` FROM applications ORDER BY applied_at, id`)
}

// ApplicationsByCandidate returns the candidate's applications across all jobs.
func (db *DB) ApplicationsByCandidate(ctx context.Context, candidateID string) ([]types.Application, error) {
	return db.queryApplications(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE candidate_id = $1 ORDER BY applied_at, id`,
		candidateID)
}

func (db *DB) queryApplications(ctx context.Context, sql string, args ...any) ([]types.Application, error) {
	rows, err := db.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	apps := []types.Application{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// GetApplication retrieves an application by id, or nil when absent.
func (db *DB) GetApplication(ctx context.Context, id string) (*types.Application, error) {
	a, err := scanApplication(db.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &a, nil
}

// CreateApplication inserts an application, replacing any existing row with
// the same id.
func (db *DB) CreateApplication(ctx context.Context, a types.Application) error {
	reviewsJSON, err := marshalReviews(a.Reviews)
	if err != nil {
		return err
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO applications (`+applicationColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO UPDATE SET
		   job_id = $2, candidate_id = $3, status = $4, interview_round = $5,
		   score = $6, reject_reason = $7, applied_at = $8, updated_at = $9,
		   reviews = $10`,
		a.ID, a.JobID, a.CandidateID, a.Status, a.InterviewRound,
		a.Score, a.RejectReason, a.AppliedAt, a.UpdatedAt, reviewsJSON)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// UpdateApplication replaces the stored application with the same id.
func (db *DB) UpdateApplication(ctx context.Context, a types.Application) error {
	reviewsJSON, err := marshalReviews(a.Reviews)
	if err != nil {
		return err
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE applications SET status = $2, interview_round = $3, score = $4,
		   reject_reason = $5, updated_at = $6, reviews = $7
		 WHERE id = $1`,
		a.ID, a.Status, a.InterviewRound, a.Score, a.RejectReason, a.UpdatedAt, reviewsJSON)
	if err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("application", a.ID)
	}
	return nil
}

// DeleteApplication withdraws a single application.
func (db *DB) DeleteApplication(ctx context.Context, id string) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("application", id)
	}
	return nil
}

func marshalReviews(reviews []types.InterviewReview) ([]byte, error) {
	if reviews == nil {
		return nil, nil
	}
	data, err := json.Marshal(reviews)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reviews: %w", err)
	}
	return data, nil
}
