package models

import (
	"time"

	"gorm.io/datatypes"
)

// InterviewResult is the persisted summary of a completed interview session.
// Only the summary survives; the session itself stays in process memory.
type InterviewResult struct {
	ID            string         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID        string         `gorm:"column:user_id;type:uuid;index" json:"user_id"`
	SessionID     string         `gorm:"column:session_id;type:uuid;index" json:"session_id"`
	InterviewType string         `gorm:"column:interview_type;type:text" json:"interview_type"`
	Topic         string         `gorm:"column:topic;type:text" json:"topic"`
	AverageScore  float64        `gorm:"column:average_score" json:"average_score"`
	AnswerCount   int            `gorm:"column:answer_count" json:"answer_count"`
	WeakAreas     datatypes.JSON `gorm:"column:weak_areas;type:jsonb" json:"weak_areas"`
	CompletedAt   time.Time      `gorm:"column:completed_at;type:timestamptz;index" json:"completed_at"`
}

func (InterviewResult) TableName() string { return "interview_results" }

// AptitudeProgress rows are written by the aptitude module; the analytics
// aggregator only reads them.
type AptitudeProgress struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"column:user_id;type:uuid;index" json:"user_id"`
	Category  string    `gorm:"column:category;type:text" json:"category"`
	Attempted int       `gorm:"column:attempted" json:"attempted"`
	Correct   int       `gorm:"column:correct" json:"correct"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (AptitudeProgress) TableName() string { return "aptitude_progress" }

// CodingProgress rows are written by the coding-judge module; read-only here.
type CodingProgress struct {
	ID         string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID     string    `gorm:"column:user_id;type:uuid;index" json:"user_id"`
	Problem    string    `gorm:"column:problem;type:text" json:"problem"`
	Difficulty string    `gorm:"column:difficulty;type:text" json:"difficulty"`
	Solved     bool      `gorm:"column:solved" json:"solved"`
	Attempts   int       `gorm:"column:attempts" json:"attempts"`
	UpdatedAt  time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (CodingProgress) TableName() string { return "coding_progress" }
