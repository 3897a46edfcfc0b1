package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ljylun/InterviewManagementMaster/internal/types"
)

const jobColumns = `id, title, department, location, type, lifecycle, recruiter,
	hiring_manager, target_count, hired_count`

func scanJob(row pgx.Row) (types.Job, error) {
	var j types.Job
	err := row.Scan(&j.ID, &j.Title, &j.Department, &j.Location, &j.Type,
		&j.Lifecycle, &j.Recruiter, &j.HiringManager, &j.TargetCount, &j.HiredCount)
	return j, err
}

// ListJobs retrieves all job openings.
func (db *DB) ListJobs(ctx context.Context) ([]types.Job, error) {
	rows, err := db.pool.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []types.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// GetJob retrieves a job by id, or nil when absent.
func (db *DB) GetJob(ctx context.Context, id string) (*types.Job, error) {
	j, err := scanJob(db.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &j, nil
}

// CreateJob inserts a job, replacing any existing row with the same id.
// Jobs are fixture/admin data; upsert keeps seeding idempotent.
func (db *DB) CreateJob(ctx context.Context, j types.Job) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO jobs (`+jobColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO UPDATE SET
		   title = $2, department = $3, location = $4, type = $5, lifecycle = $6,
		   recruiter = $7, hiring_manager = $8, target_count = $9, hired_count = $10`,
		j.ID, j.Title, j.Department, j.Location, j.Type, j.Lifecycle,
		j.Recruiter, j.HiringManager, j.TargetCount, j.HiredCount)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// UpdateJob replaces the stored job with the same id.
func (db *DB) UpdateJob(ctx context.Context, j types.Job) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE jobs SET title = $2, department = $3, location = $4, type = $5,
		   lifecycle = $6, recruiter = $7, hiring_manager = $8,
		   target_count = $9, hired_count = $10
		 WHERE id = $1`,
		j.ID, j.Title, j.Department, j.Location, j.Type, j.Lifecycle,
		j.Recruiter, j.HiringManager, j.TargetCount, j.HiredCount)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("job", j.ID)
	}
	return nil
}
