package services

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/voxprep/voxprep/internal/hesitation"
	"github.com/voxprep/voxprep/internal/providers/stt"
)

const (
	PresenceSuccess  = "success"
	PresenceNoSpeech = "no_speech"
	PresenceError    = "error"
)

// PresenceAnalysis wraps the hesitation report in the status envelope the
// client sees. The analyzer itself never raises; failures become a report
// with status "error".
type PresenceAnalysis struct {
	Status             string             `json:"status"`
	Message            string             `json:"message,omitempty"`
	Transcript         string             `json:"transcript"`
	DurationSeconds    float64            `json:"duration_seconds"`
	WordCount          int                `json:"word_count"`
	HesitationAnalysis *hesitation.Report `json:"hesitation_analysis"`
}

type PresenceService interface {
	Analyze(ctx context.Context, audio []byte) *PresenceAnalysis
}

type presenceService struct {
	stt    stt.Provider
	logger *logrus.Logger
}

func NewPresenceService(provider stt.Provider, logger *logrus.Logger) PresenceService {
	if logger == nil {
		logger = logrus.New()
	}
	return &presenceService{stt: provider, logger: logger}
}

func (s *presenceService) Analyze(ctx context.Context, audio []byte) *PresenceAnalysis {
	callCtx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	tr, err := s.stt.Transcribe(callCtx, audio)
	if err != nil {
		s.logger.WithError(err).Warn("presence transcription failed")
		return &PresenceAnalysis{
			Status:  PresenceError,
			Message: "transcription failed, please try again",
		}
	}

	text := strings.TrimSpace(tr.Text)
	if len(text) < 5 {
		return &PresenceAnalysis{
			Status:  PresenceNoSpeech,
			Message: "no speech detected, please check your microphone and try again",
		}
	}

	return &PresenceAnalysis{
		Status:             PresenceSuccess,
		Transcript:         text,
		DurationSeconds:    tr.Duration,
		WordCount:          len(strings.Fields(text)),
		HesitationAnalysis: hesitation.Analyze(tr),
	}
}
