// Package hesitation turns a timed transcript into an explainable speech
// presence report: filler words, pause taxonomy, flow fragmentation, temporal
// progression and a confidence indicator. The analyzer is a pure function of
// its input; the same transcript always yields the same report.
package hesitation

import (
	"strings"

	"github.com/voxprep/voxprep/internal/providers/stt"
)

type Report struct {
	FillerWords         FillerWords         `json:"filler_words"`
	Pauses              Pauses              `json:"pauses"`
	SpeechContinuity    SpeechContinuity    `json:"speech_continuity"`
	TemporalProgression TemporalProgression `json:"temporal_progression"`
	ConfidenceIndicator string              `json:"confidence_indicator"` // Good | Moderate | Low
	StressIndicator     string              `json:"stress_indicator"`     // Mild | Moderate | Noticeable
	ConfidenceScore     int                 `json:"confidence_score"`     // [30,100]
	Feedback            Feedback            `json:"feedback"`
}

type FillerWords struct {
	TotalCount           int            `json:"total_count"`
	ConversationalCount  int            `json:"conversational_count"`
	FrequencyPercent     float64        `json:"frequency_percent"`
	DetectedForms        map[string]int `json:"detected_forms"`
	Clusters             Clusters       `json:"clusters"`
	TemporalDistribution Distribution   `json:"temporal_distribution"`
}

type Clusters struct {
	Count   int    `json:"count"`
	MaxSize int    `json:"max_size"`
	Label   string `json:"label"` // none | occasional | frequent
}

type Distribution struct {
	Start   int    `json:"start"`
	Middle  int    `json:"middle"`
	End     int    `json:"end"`
	Pattern string `json:"pattern"` // front_loaded | middle_concentrated | end_heavy | none
}

type Pauses struct {
	ThinkingCount  int     `json:"thinking_count"` // [0.5s, 1.0s)
	LongCount      int     `json:"long_count"`     // [1.0s, 2.0s)
	NervousCount   int     `json:"nervous_count"`  // >= 2.0s
	AverageSeconds float64 `json:"average_seconds"`
	MaxSeconds     float64 `json:"max_seconds"`
	Pattern        string  `json:"pattern"`
}

type SpeechContinuity struct {
	Score             int      `json:"score"` // [30,100]
	FlowPattern       string   `json:"flow_pattern"` // smooth | moderate | fragmented
	RepetitionCount   int      `json:"repetition_count"`
	RepetitionSamples []string `json:"repetition_samples"`
}

type TemporalProgression struct {
	StartDensity  float64 `json:"start_density"`
	MiddleDensity float64 `json:"middle_density"`
	EndDensity    float64 `json:"end_density"`
	Trend         string  `json:"trend"` // improving | stable | declining
}

type Feedback struct {
	Summary      string   `json:"summary"`
	Observations []string `json:"observations"`
	Explanations []string `json:"explanations"`
	Patterns     []string `json:"patterns"`
	Suggestions  []string `json:"suggestions"`
	Faults       []string `json:"faults"`
	Positives    []string `json:"positives"`
}

// token is one spoken word with the start time of the segment it came from,
// which buckets it into the start/middle/end thirds of the clip.
type token struct {
	text     string
	segStart float64
}

// Analyze computes the full presence report for a transcript. Callers must
// have rejected empty transcripts before calling.
func Analyze(tr *stt.Transcript) *Report {
	tokens := tokenize(tr)

	fillers := detectFillers(tokens, tr.Duration)
	pauses := analyzePauses(tr)
	flow := analyzeFlow(tokens, len(tr.Segments))
	prog := temporalProgression(tr, fillers)

	score, drivers := confidenceScore(fillers, pauses, flow, prog, len(tokens))

	r := &Report{
		FillerWords:         fillers.report(len(tokens)),
		Pauses:              pauses,
		SpeechContinuity:    flow,
		TemporalProgression: prog,
		ConfidenceScore:     score,
	}
	r.ConfidenceIndicator, r.StressIndicator = indicators(score)
	r.Feedback = synthesizeFeedback(r, drivers)
	return r
}

func indicators(score int) (confidence, stress string) {
	switch {
	case score >= 75:
		return "Good", "Mild"
	case score >= 50:
		return "Moderate", "Moderate"
	default:
		return "Low", "Noticeable"
	}
}

// tokenize flattens the transcript into lowercase words. Word entries are
// preferred; segments without word timing fall back to splitting their text.
func tokenize(tr *stt.Transcript) []token {
	var out []token
	for _, seg := range tr.Segments {
		if len(seg.Words) > 0 {
			for _, w := range seg.Words {
				if t := normalizeToken(w.Word); t != "" {
					out = append(out, token{text: t, segStart: seg.Start})
				}
			}
			continue
		}
		for _, raw := range strings.Fields(seg.Text) {
			if t := normalizeToken(raw); t != "" {
				out = append(out, token{text: t, segStart: seg.Start})
			}
		}
	}
	return out
}

func normalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Trim(s, ".,!?;:\"'()[]")
}
