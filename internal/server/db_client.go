// Package server provides the HTTP REST API for the CV optimizer.
package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/cv-optimizer/internal/db"
)

// DBClient is the database surface the server depends on. *db.DB satisfies
// it; tests substitute a mock.
type DBClient interface {
	// Users
	CreateUser(ctx context.Context, name, email, phone string) (uuid.UUID, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error

	// Resumes
	CreateResume(ctx context.Context, userID uuid.UUID, filename, contentType, textContent string) (uuid.UUID, error)
	GetResume(ctx context.Context, userID, resumeID uuid.UUID) (*db.Resume, error)
	ListResumes(ctx context.Context, userID uuid.UUID, limit int) ([]db.Resume, error)

	// Analyses
	SaveAnalysis(ctx context.Context, userID uuid.UUID, resumeID *uuid.UUID, jobDescription string, score float64, report any) (uuid.UUID, error)
	GetAnalysis(ctx context.Context, userID, analysisID uuid.UUID) (*db.Analysis, error)
	ListAnalyses(ctx context.Context, userID uuid.UUID, limit int) ([]db.AnalysisSummary, error)
}
