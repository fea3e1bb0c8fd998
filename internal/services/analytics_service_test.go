package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/voxprep/voxprep/internal/models"
	"github.com/voxprep/voxprep/internal/utils"
)

type fakeProgressRepo struct {
	inserted []*models.InterviewResult
	results  []models.InterviewResult
	aptitude []models.AptitudeProgress
	coding   []models.CodingProgress
}

func (f *fakeProgressRepo) InsertResult(_ context.Context, row *models.InterviewResult) error {
	f.inserted = append(f.inserted, row)
	return nil
}

func (f *fakeProgressRepo) ListResultsByUser(_ context.Context, _ string, _ int) ([]models.InterviewResult, error) {
	return f.results, nil
}

func (f *fakeProgressRepo) ListAptitude(_ context.Context, _ string) ([]models.AptitudeProgress, error) {
	return f.aptitude, nil
}

func (f *fakeProgressRepo) ListCoding(_ context.Context, _ string) ([]models.CodingProgress, error) {
	return f.coding, nil
}

func TestRecordCompleted(t *testing.T) {
	repo := &fakeProgressRepo{}
	svc := NewAnalyticsService(repo)

	sess := &models.Session{
		ID: "s-1", UserID: "u-1",
		Type: models.InterviewTechnical, Topic: "python",
		Status:      models.StatusCompleted,
		Scores:      []int{80, 60, 70},
		AnswerCount: 4,
		WeakAreas:   []string{"Decorators"},
	}
	require.NoError(t, svc.RecordCompleted(context.Background(), sess))

	require.Len(t, repo.inserted, 1)
	row := repo.inserted[0]
	assert.Equal(t, "u-1", row.UserID)
	assert.Equal(t, "s-1", row.SessionID)
	assert.InDelta(t, 70.0, row.AverageScore, 1e-9)
	assert.JSONEq(t, `["Decorators"]`, string(row.WeakAreas))
}

func TestRecordCompletedRejectsActiveSession(t *testing.T) {
	svc := NewAnalyticsService(&fakeProgressRepo{})

	err := svc.RecordCompleted(context.Background(), &models.Session{Status: models.StatusActive})
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestUnifiedAggregation(t *testing.T) {
	repo := &fakeProgressRepo{
		results: []models.InterviewResult{
			{InterviewType: "technical", AverageScore: 80, WeakAreas: datatypes.JSON(`["Indexes","Joins"]`)},
			{InterviewType: "project", AverageScore: 60, WeakAreas: datatypes.JSON(`["Joins","Scaling"]`)},
			{InterviewType: "hr", AverageScore: 90, WeakAreas: datatypes.JSON(`[]`)},
			{InterviewType: "video-practice", AverageScore: 55, WeakAreas: datatypes.JSON(`["Pacing"]`)},
		},
		aptitude: []models.AptitudeProgress{
			{Attempted: 10, Correct: 7},
			{Attempted: 10, Correct: 8},
		},
		coding: []models.CodingProgress{
			{Solved: true}, {Solved: false}, {Solved: true},
		},
	}
	svc := NewAnalyticsService(repo)

	got, err := svc.Unified(context.Background(), "u-1")
	require.NoError(t, err)

	assert.Equal(t, 4, got.Sessions)
	// project counts toward technical
	assert.InDelta(t, 70.0, got.Scores.Technical, 1e-9)
	assert.InDelta(t, 90.0, got.Scores.HR, 1e-9)
	assert.InDelta(t, 55.0, got.Scores.Presence, 1e-9)

	// newest-first distinct areas, capped at three
	assert.Equal(t, []string{"Indexes", "Joins", "Scaling"}, got.RecentWeakAreas)

	assert.Equal(t, 20, got.Aptitude.Attempted)
	assert.Equal(t, 15, got.Aptitude.Correct)
	assert.InDelta(t, 75.0, got.Aptitude.Accuracy, 1e-9)

	assert.Equal(t, 3, got.Coding.Attempted)
	assert.Equal(t, 2, got.Coding.Solved)
}

func TestUnifiedRequiresUser(t *testing.T) {
	svc := NewAnalyticsService(&fakeProgressRepo{})

	_, err := svc.Unified(context.Background(), "")
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}
