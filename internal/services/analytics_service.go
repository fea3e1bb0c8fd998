package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/voxprep/voxprep/internal/models"
	pgrepo "github.com/voxprep/voxprep/internal/repositories/postgres"
	"github.com/voxprep/voxprep/internal/utils"
)

type CategoryScores struct {
	Technical float64 `json:"technical"`
	HR        float64 `json:"hr"`
	Presence  float64 `json:"presence"`
}

type AptitudeSummary struct {
	Attempted int     `json:"attempted"`
	Correct   int     `json:"correct"`
	Accuracy  float64 `json:"accuracy"`
}

type CodingSummary struct {
	Attempted int `json:"attempted"`
	Solved    int `json:"solved"`
}

type UnifiedAnalytics struct {
	UserID          string          `json:"user_id"`
	Sessions        int             `json:"sessions"`
	Scores          CategoryScores  `json:"scores"`
	RecentWeakAreas []string        `json:"recent_weak_areas"`
	Aptitude        AptitudeSummary `json:"aptitude"`
	Coding          CodingSummary   `json:"coding"`
}

// AnalyticsService derives read-only per-user summaries. The only write is
// the interview result summary recorded when a session completes.
type AnalyticsService interface {
	RecordCompleted(ctx context.Context, sess *models.Session) error
	Unified(ctx context.Context, userID string) (*UnifiedAnalytics, error)
}

type analyticsService struct {
	progress pgrepo.ProgressRepo
}

func NewAnalyticsService(progress pgrepo.ProgressRepo) AnalyticsService {
	return &analyticsService{progress: progress}
}

func (s *analyticsService) RecordCompleted(ctx context.Context, sess *models.Session) error {
	const op = "AnalyticsService.RecordCompleted"

	if sess == nil || sess.Status != models.StatusCompleted {
		return utils.E(utils.CodeInvalidArgument, op, "session must be completed", nil)
	}

	weak, err := json.Marshal(sess.WeakAreas)
	if err != nil {
		weak = []byte("[]")
	}

	row := &models.InterviewResult{
		ID:            uuid.NewString(),
		UserID:        sess.UserID,
		SessionID:     sess.ID,
		InterviewType: string(sess.Type),
		Topic:         sess.Topic,
		AverageScore:  average(sess.Scores),
		AnswerCount:   sess.AnswerCount,
		WeakAreas:     weak,
		CompletedAt:   time.Now().UTC(),
	}

	if err := s.progress.InsertResult(ctx, row); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to persist interview result", err)
	}
	return nil
}

func (s *analyticsService) Unified(ctx context.Context, userID string) (*UnifiedAnalytics, error) {
	const op = "AnalyticsService.Unified"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	results, err := s.progress.ListResultsByUser(ctx, userID, 50)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list interview results", err)
	}

	out := &UnifiedAnalytics{UserID: userID, Sessions: len(results)}

	var techSum, techN, hrSum, hrN, presSum, presN float64
	for _, r := range results {
		switch models.InterviewType(r.InterviewType) {
		case models.InterviewHR:
			hrSum += r.AverageScore
			hrN++
		case models.InterviewVideoPractice:
			presSum += r.AverageScore
			presN++
		default: // technical and project count as technical
			techSum += r.AverageScore
			techN++
		}
	}
	if techN > 0 {
		out.Scores.Technical = techSum / techN
	}
	if hrN > 0 {
		out.Scores.HR = hrSum / hrN
	}
	if presN > 0 {
		out.Scores.Presence = presSum / presN
	}

	// three most recent distinct weak areas; results arrive newest first
	seen := map[string]bool{}
	for _, r := range results {
		if len(out.RecentWeakAreas) >= 3 {
			break
		}
		var areas []string
		if err := json.Unmarshal(r.WeakAreas, &areas); err != nil {
			continue
		}
		for _, a := range areas {
			if len(out.RecentWeakAreas) >= 3 {
				break
			}
			if a != "" && !seen[a] {
				seen[a] = true
				out.RecentWeakAreas = append(out.RecentWeakAreas, a)
			}
		}
	}

	apt, err := s.progress.ListAptitude(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list aptitude progress", err)
	}
	for _, a := range apt {
		out.Aptitude.Attempted += a.Attempted
		out.Aptitude.Correct += a.Correct
	}
	if out.Aptitude.Attempted > 0 {
		out.Aptitude.Accuracy = 100 * float64(out.Aptitude.Correct) / float64(out.Aptitude.Attempted)
	}

	coding, err := s.progress.ListCoding(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list coding progress", err)
	}
	out.Coding.Attempted = len(coding)
	for _, c := range coding {
		if c.Solved {
			out.Coding.Solved++
		}
	}

	return out, nil
}

func average(xs []int) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0
	for _, x := range xs {
		sum += x
	}
	return float64(sum) / float64(len(xs))
}
