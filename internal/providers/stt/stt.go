package stt

import "context"

type Word struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
	Words []Word  `json:"words"`
}

// Transcript is a timed transcription result. Word-level timestamps are
// required by the hesitation analyzer.
type Transcript struct {
	Text     string    `json:"text"`
	Segments []Segment `json:"segments"`
	Duration float64   `json:"duration"` // seconds, end of the last segment
}

type Provider interface {
	Transcribe(ctx context.Context, audio []byte) (*Transcript, error)
	Close() error
}
