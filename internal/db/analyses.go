package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveAnalysis stores a scoring report for a user and returns the analysis ID.
// resumeID may be nil for ad-hoc text analyses.
func (db *DB) SaveAnalysis(ctx context.Context, userID uuid.UUID, resumeID *uuid.UUID, jobDescription string, score float64, report any) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(report)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO analyses (user_id, resume_id, job_description, score, report)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		userID, resumeID, jobDescription, score, jsonBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis retrieves a full analysis by ID, scoped to the owning user
func (db *DB) GetAnalysis(ctx context.Context, userID, analysisID uuid.UUID) (*Analysis, error) {
	var a Analysis
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, resume_id, job_description, score, report, created_at
		 FROM analyses WHERE id = $1 AND user_id = $2`,
		analysisID, userID,
	).Scan(&a.ID, &a.UserID, &a.ResumeID, &a.JobDescription, &a.Score, &a.Report, &a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return &a, nil
}

// ListAnalyses retrieves a user's analysis history, most recent first
func (db *DB) ListAnalyses(ctx context.Context, userID uuid.UUID, limit int) ([]AnalysisSummary, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, resume_id, score, created_at
		 FROM analyses WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []AnalysisSummary
	for rows.Next() {
		var a AnalysisSummary
		if err := rows.Scan(&a.ID, &a.ResumeID, &a.Score, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, a)
	}
	return analyses, nil
}

// DeleteAnalysis deletes an analysis, scoped to the owning user
func (db *DB) DeleteAnalysis(ctx context.Context, userID, analysisID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM analyses WHERE id = $1 AND user_id = $2`,
		analysisID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("analysis not found: %s", analysisID)
	}
	return nil
}
