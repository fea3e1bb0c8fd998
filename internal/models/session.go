package models

import "time"

type InterviewType string

const (
	InterviewTechnical     InterviewType = "technical"
	InterviewHR            InterviewType = "hr"
	InterviewProject       InterviewType = "project"
	InterviewVideoPractice InterviewType = "video-practice"
)

// TopicRealtime is the special technical topic with no fixed topic areas:
// every next question is derived from the candidate's last answer.
const TopicRealtime = "realtime"

type SessionStatus string

const (
	StatusActive           SessionStatus = "active"
	StatusAwaitingRoundTwo SessionStatus = "awaiting_round_2_confirmation"
	StatusCompleting       SessionStatus = "completing"
	StatusCompleted        SessionStatus = "completed"
)

const (
	RoleAssistant = "assistant"
	RoleUser      = "user"
)

type Turn struct {
	Role    string `json:"role"` // "assistant" | "user"
	Content string `json:"content"`
}

type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Score    int    `json:"score"`
}

// Session is the in-memory state of one interview. It lives in the session
// store for the lifetime of the interview and is never persisted.
type Session struct {
	ID     string        `json:"id"`
	UserID string        `json:"user_id"`
	Type   InterviewType `json:"interview_type"`
	Topic  string        `json:"topic,omitempty"` // meaningful only for technical
	Round  int           `json:"round"`
	Status SessionStatus `json:"status"`

	Resume         string `json:"-"`
	JobDescription string `json:"-"`
	ProjectText    string `json:"-"`

	// QuestionBank holds topic areas (technical), behavioral prompts (hr),
	// guidance areas (realtime) or project angles (project) - not literal
	// questions.
	QuestionBank  []string `json:"question_bank"`
	History       []Turn   `json:"history"`
	CurrentQIndex int      `json:"current_q_index"`
	AnswerCount   int      `json:"answer_count"`
	Scores        []int    `json:"scores"`
	QAPairs       []QAPair `json:"qa_pairs"`
	WeakAreas     []string `json:"weak_areas"`

	StartTime time.Time `json:"start_time"`
}

// ActiveTopicArea returns the bank entry the cursor currently points at,
// clamped to the last entry once the bank is exhausted.
func (s *Session) ActiveTopicArea() string {
	if len(s.QuestionBank) == 0 {
		return ""
	}
	i := s.CurrentQIndex
	if i >= len(s.QuestionBank) {
		i = len(s.QuestionBank) - 1
	}
	if i < 0 {
		i = 0
	}
	return s.QuestionBank[i]
}

// LastAssistantTurn returns the content of the most recent assistant turn.
func (s *Session) LastAssistantTurn() string {
	for i := len(s.History) - 1; i >= 0; i-- {
		if s.History[i].Role == RoleAssistant {
			return s.History[i].Content
		}
	}
	return ""
}

func (s *Session) HasWeakArea(topic string) bool {
	for _, w := range s.WeakAreas {
		if w == topic {
			return true
		}
	}
	return false
}
