package db

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegration_SaveAndGetAnalysis(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	userID, err := db.CreateUser(ctx, "Analysis Tester", "analysis-"+uuid.New().String()+"@example.com", "")
	require.NoError(t, err)
	defer db.DeleteUser(ctx, userID)

	report := map[string]any{
		"score_overall":     0.6,
		"required_coverage": 0.5,
	}
	jd := "Must have Python and Kubernetes experience"

	analysisID, err := db.SaveAnalysis(ctx, userID, nil, jd, 0.6, report)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, analysisID)

	a, err := db.GetAnalysis(ctx, userID, analysisID)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, jd, a.JobDescription)
	assert.InDelta(t, 0.6, a.Score, 0.0001)
	assert.Nil(t, a.ResumeID)

	var stored map[string]any
	require.NoError(t, json.Unmarshal(a.Report, &stored))
	assert.InDelta(t, 0.5, stored["required_coverage"], 0.0001)

	// Scoped to the owning user
	otherID, err := db.CreateUser(ctx, "Other", "other-an-"+uuid.New().String()+"@example.com", "")
	require.NoError(t, err)
	defer db.DeleteUser(ctx, otherID)

	hidden, err := db.GetAnalysis(ctx, otherID, analysisID)
	require.NoError(t, err)
	assert.Nil(t, hidden)
}

func TestIntegration_ListAnalyses(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	userID, err := db.CreateUser(ctx, "History Tester", "history-"+uuid.New().String()+"@example.com", "")
	require.NoError(t, err)
	defer db.DeleteUser(ctx, userID)

	resumeID, err := db.CreateResume(ctx, userID, "cv.txt", "text/plain", "some resume text")
	require.NoError(t, err)

	_, err = db.SaveAnalysis(ctx, userID, &resumeID, "first jd", 0.4, map[string]any{})
	require.NoError(t, err)
	second, err := db.SaveAnalysis(ctx, userID, nil, "second jd", 0.8, map[string]any{})
	require.NoError(t, err)

	analyses, err := db.ListAnalyses(ctx, userID, 0)
	require.NoError(t, err)
	require.Len(t, analyses, 2)
	assert.Equal(t, second, analyses[0].ID)
	assert.InDelta(t, 0.8, analyses[0].Score, 0.0001)
	assert.Nil(t, analyses[0].ResumeID)
	require.NotNil(t, analyses[1].ResumeID)
	assert.Equal(t, resumeID, *analyses[1].ResumeID)

	// Limit applies
	analyses, err = db.ListAnalyses(ctx, userID, 1)
	require.NoError(t, err)
	require.Len(t, analyses, 1)
}
