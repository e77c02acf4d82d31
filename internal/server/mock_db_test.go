package server

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/cv-optimizer/internal/db"
)

// mockDB is an in-memory DBClient for handler and service unit tests.
type mockDB struct {
	users    map[uuid.UUID]*db.User
	resumes  map[uuid.UUID]*db.Resume
	analyses map[uuid.UUID]*db.Analysis

	failWith error // when set, every call fails with this error
}

func newMockDB() *mockDB {
	return &mockDB{
		users:    make(map[uuid.UUID]*db.User),
		resumes:  make(map[uuid.UUID]*db.Resume),
		analyses: make(map[uuid.UUID]*db.Analysis),
	}
}

func (m *mockDB) CreateUser(_ context.Context, name, email, phone string) (uuid.UUID, error) {
	if m.failWith != nil {
		return uuid.Nil, m.failWith
	}
	id := uuid.New()
	now := time.Now()
	m.users[id] = &db.User{
		ID: id, Name: name, Email: email, Phone: phone,
		CreatedAt: now, UpdatedAt: now,
	}
	return id, nil
}

func (m *mockDB) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	u, ok := m.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (m *mockDB) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockDB) CheckEmailExists(_ context.Context, email string) (bool, error) {
	if m.failWith != nil {
		return false, m.failWith
	}
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockDB) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	if m.failWith != nil {
		return m.failWith
	}
	u, ok := m.users[userID]
	if !ok {
		return fmt.Errorf("user not found: %s", userID)
	}
	u.PasswordHash = passwordHash
	u.PasswordSet = true
	u.UpdatedAt = time.Now()
	return nil
}

func (m *mockDB) CreateResume(_ context.Context, userID uuid.UUID, filename, contentType, textContent string) (uuid.UUID, error) {
	if m.failWith != nil {
		return uuid.Nil, m.failWith
	}
	id := uuid.New()
	m.resumes[id] = &db.Resume{
		ID: id, UserID: userID, Filename: filename,
		ContentType: contentType, TextContent: textContent,
		CreatedAt: time.Now(),
	}
	return id, nil
}

func (m *mockDB) GetResume(_ context.Context, userID, resumeID uuid.UUID) (*db.Resume, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	r, ok := m.resumes[resumeID]
	if !ok || r.UserID != userID {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (m *mockDB) ListResumes(_ context.Context, userID uuid.UUID, limit int) ([]db.Resume, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if limit == 0 {
		limit = 50
	}
	var out []db.Resume
	for _, r := range m.resumes {
		if r.UserID == userID {
			copied := *r
			copied.TextContent = ""
			out = append(out, copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockDB) SaveAnalysis(_ context.Context, userID uuid.UUID, resumeID *uuid.UUID, jobDescription string, score float64, report any) (uuid.UUID, error) {
	if m.failWith != nil {
		return uuid.Nil, m.failWith
	}
	raw, err := json.Marshal(report)
	if err != nil {
		return uuid.Nil, err
	}
	id := uuid.New()
	m.analyses[id] = &db.Analysis{
		ID: id, UserID: userID, ResumeID: resumeID,
		JobDescription: jobDescription, Score: score, Report: raw,
		CreatedAt: time.Now(),
	}
	return id, nil
}

func (m *mockDB) GetAnalysis(_ context.Context, userID, analysisID uuid.UUID) (*db.Analysis, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	a, ok := m.analyses[analysisID]
	if !ok || a.UserID != userID {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (m *mockDB) ListAnalyses(_ context.Context, userID uuid.UUID, limit int) ([]db.AnalysisSummary, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if limit == 0 {
		limit = 50
	}
	var out []db.AnalysisSummary
	for _, a := range m.analyses {
		if a.UserID == userID {
			out = append(out, db.AnalysisSummary{
				ID: a.ID, ResumeID: a.ResumeID, Score: a.Score, CreatedAt: a.CreatedAt,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
