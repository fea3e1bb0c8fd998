package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/voxprep/voxprep/internal/models"
)

// ProgressRepo is the analytics side of the relational store. Interview
// results are written by the engine on completion; aptitude and coding rows
// are owned by other modules and read-only here.
type ProgressRepo interface {
	InsertResult(ctx context.Context, row *models.InterviewResult) error
	ListResultsByUser(ctx context.Context, userID string, limit int) ([]models.InterviewResult, error)
	ListAptitude(ctx context.Context, userID string) ([]models.AptitudeProgress, error)
	ListCoding(ctx context.Context, userID string) ([]models.CodingProgress, error)
}

type progressRepo struct {
	db *gorm.DB
}

func NewProgressRepo(db *gorm.DB) ProgressRepo {
	return &progressRepo{db: db}
}

func (r *progressRepo) InsertResult(ctx context.Context, row *models.InterviewResult) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *progressRepo) ListResultsByUser(ctx context.Context, userID string, limit int) ([]models.InterviewResult, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []models.InterviewResult
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *progressRepo) ListAptitude(ctx context.Context, userID string) ([]models.AptitudeProgress, error) {
	var rows []models.AptitudeProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&rows).Error
	return rows, err
}

func (r *progressRepo) ListCoding(ctx context.Context, userID string) ([]models.CodingProgress, error) {
	var rows []models.CodingProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&rows).Error
	return rows, err
}
