package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ljylun/InterviewManagementMaster/internal/types"
)

const candidateColumns = `id, name, email, phone, avatar_url, role, experience,
	education, tags, resume_url, resume_text, work_experience`

func scanCandidate(row pgx.Row) (types.Candidate, error) {
	var c types.Candidate
	var tagsJSON, workJSON []byte

	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.AvatarURL, &c.Role,
		&c.Experience, &c.Education, &tagsJSON, &c.ResumeURL, &c.ResumeText, &workJSON)
	if err != nil {
		return c, err
	}

	c.Tags = []string{}
	if tagsJSON != nil {
		_ = json.Unmarshal(tagsJSON, &c.Tags)
	}
	if workJSON != nil {
		_ = json.Unmarshal(workJSON, &c.WorkExperience)
	}
	return c, nil
}

// ListCandidates retrieves all candidates.
func (db *DB) ListCandidates(ctx context.Context) ([]types.Candidate, error) {
	rows, err := db.pool.Query(ctx, `SELECT `+candidateColumns+` FROM candidates ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	candidates := []types.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

// GetCandidate retrieves a candidate by id, or nil when absent.
func (db *DB) GetCandidate(ctx context.Context, id string) (*types.Candidate, error) {
	c, err := scanCandidate(db.pool.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return &c, nil
}

// CreateCandidate inserts a candidate, replacing any existing row with the
// same id so fixture seeding stays idempotent.
func (db *DB) CreateCandidate(ctx context.Context, c types.Candidate) error {
	tagsJSON, err := json.Marshal(c.Tags)
	if err != nil {
		return fmt.Errorf("failed to marshal tags: %w", err)
	}
	var workJSON []byte
	if c.WorkExperience != nil {
		if workJSON, err = json.Marshal(c.WorkExperience); err != nil {
			return fmt.Errorf("failed to marshal work experience: %w", err)
		}
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO candidates (`+candidateColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (id) DO UPDATE SET
		   name = $2, email = $3, phone = $4, avatar_url = $5, role = $6,
		   experience = $7, education = $8, tags = $9, resume_url = $10,
		   resume_text = $11, work_experience = $12`,
		c.ID, c.Name, c.Email, c.Phone, c.AvatarURL, c.Role, c.Experience,
		c.Education, tagsJSON, c.ResumeURL, c.ResumeText, workJSON)
	if err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}
	return nil
}

// DeleteCandidate removes the candidate; its applications go with it via the
// foreign key cascade.
func (db *DB) DeleteCandidate(ctx context.Context, id string) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("candidate", id)
	}
	return nil
}
