package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

var _ Repo = (*PGRepo)(nil)

// Insert stores a new analysis and returns it with the generated id and
// created_at assigned by the database.
func (r *PGRepo) Insert(ctx context.Context, analysis JobAnalysis) (JobAnalysis, error) {
	const query = `
INSERT INTO job_analyses (user_id, job_description, job_url, classification, confidence_score, detected_keywords, explanation)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at`

	keywords, err := marshalKeywords(analysis.DetectedKeywords)
	if err != nil {
		return JobAnalysis{}, err
	}

	err = r.DB.QueryRowContext(ctx, query,
		analysis.UserID,
		nullIfEmpty(analysis.JobDescription),
		nullIfEmpty(analysis.JobURL),
		analysis.Classification,
		analysis.ConfidenceScore,
		keywords,
		analysis.Explanation,
	).Scan(&analysis.ID, &analysis.CreatedAt)
	if err != nil {
		return JobAnalysis{}, err
	}
	return analysis, nil
}

// GetByID returns a single analysis owned by the given user.
func (r *PGRepo) GetByID(ctx context.Context, userID, analysisID string) (JobAnalysis, error) {
	const query = `
SELECT id, user_id, job_description, job_url, classification, confidence_score, detected_keywords, explanation, created_at
FROM job_analyses
WHERE id = $1 AND user_id = $2
LIMIT 1`

	row := r.DB.QueryRowContext(ctx, query, analysisID, userID)
	analysis, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return JobAnalysis{}, ErrNotFound
		}
		return JobAnalysis{}, err
	}
	return analysis, nil
}

// ListByUser lists analyses for a user ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]JobAnalysis, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	const query = `
SELECT id, user_id, job_description, job_url, classification, confidence_score, detected_keywords, explanation, created_at
FROM job_analyses
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []JobAnalysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, analysis)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (JobAnalysis, error) {
	var a JobAnalysis
	var jobDescription sql.NullString
	var jobURL sql.NullString
	var keywords []byte
	if err := row.Scan(
		&a.ID,
		&a.UserID,
		&jobDescription,
		&jobURL,
		&a.Classification,
		&a.ConfidenceScore,
		&keywords,
		&a.Explanation,
		&a.CreatedAt,
	); err != nil {
		return JobAnalysis{}, err
	}
	if jobDescription.Valid {
		a.JobDescription = jobDescription.String
	}
	if jobURL.Valid {
		a.JobURL = jobURL.String
	}
	a.DetectedKeywords = []string{}
	if len(keywords) > 0 {
		if err := json.Unmarshal(keywords, &a.DetectedKeywords); err != nil {
			a.DetectedKeywords = []string{}
		}
	}
	return a, nil
}

func marshalKeywords(keywords []string) ([]byte, error) {
	if keywords == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(keywords)
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
