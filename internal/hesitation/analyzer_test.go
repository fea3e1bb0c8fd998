package hesitation

import (
	"reflect"
	"testing"

	"github.com/voxprep/voxprep/internal/providers/stt"
)

// evenTranscript builds a single-segment transcript where every word takes
// 0.2s and consecutive words are separated by the given gap.
func evenTranscript(words []string, gap float64) *stt.Transcript {
	seg := stt.Segment{}
	t := 0.0
	for _, w := range words {
		seg.Words = append(seg.Words, stt.Word{Word: w, Start: t, End: t + 0.2})
		t += 0.2 + gap
	}
	if len(seg.Words) > 0 {
		seg.Start = seg.Words[0].Start
		seg.End = seg.Words[len(seg.Words)-1].End
	}
	return &stt.Transcript{
		Text:     joinWords(words),
		Segments: []stt.Segment{seg},
		Duration: seg.End,
	}
}

func joinWords(words []string) string {
	out := ""
	for i, w := range words {
		if i > 0 {
			out += " "
		}
		out += w
	}
	return out
}

func TestAnalyzeNervousClip(t *testing.T) {
	tr := evenTranscript([]string{"um", "uh", "so", "like", "um", "i", "think", "um"}, 0.1)

	r := Analyze(tr)

	if r.FillerWords.TotalCount < 3 {
		t.Errorf("TotalCount = %d, want >= 3", r.FillerWords.TotalCount)
	}
	if r.FillerWords.Clusters.Count < 1 {
		t.Errorf("Clusters.Count = %d, want >= 1", r.FillerWords.Clusters.Count)
	}
	if r.ConfidenceIndicator != "Moderate" && r.ConfidenceIndicator != "Low" {
		t.Errorf("ConfidenceIndicator = %q, want Moderate or Low", r.ConfidenceIndicator)
	}
	if r.ConfidenceScore > 70 {
		t.Errorf("ConfidenceScore = %d, want <= 70", r.ConfidenceScore)
	}
}

func TestAnalyzeCleanClip(t *testing.T) {
	words := []string{
		"i", "designed", "the", "service", "around", "three", "components",
		"first", "the", "ingest", "layer", "validates", "every", "request",
		"then", "the", "queue", "decouples", "processing", "and", "finally",
		"the", "reporting", "layer", "aggregates", "results", "for", "clients",
	}
	r := Analyze(evenTranscript(words, 0.05))

	if r.FillerWords.TotalCount != 0 {
		t.Errorf("TotalCount = %d, want 0", r.FillerWords.TotalCount)
	}
	if r.ConfidenceIndicator != "Good" {
		t.Errorf("ConfidenceIndicator = %q, want Good", r.ConfidenceIndicator)
	}
	if r.Pauses.Pattern != "smooth" {
		t.Errorf("Pauses.Pattern = %q, want smooth", r.Pauses.Pattern)
	}
	found := false
	for _, p := range r.Feedback.Positives {
		if p == "clean delivery with no filler words" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a no-filler positive, got %v", r.Feedback.Positives)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	tr := evenTranscript([]string{"um", "so", "i", "think", "um", "the", "answer", "is", "caching"}, 0.6)

	a := Analyze(tr)
	b := Analyze(tr)

	if !reflect.DeepEqual(a, b) {
		t.Error("Analyze is not deterministic for identical input")
	}
}

func TestConfidenceScoreBounds(t *testing.T) {
	cases := map[string]*stt.Transcript{
		"terrible": evenTranscript([]string{"um", "uh", "um", "uh", "um"}, 2.5),
		"fine": evenTranscript([]string{
			"the", "system", "scales", "horizontally", "because", "each",
			"worker", "holds", "no", "state", "between", "requests",
			"and", "the", "database", "handles", "coordination",
		}, 0.05),
	}

	for name, tr := range cases {
		t.Run(name, func(t *testing.T) {
			r := Analyze(tr)
			if r.ConfidenceScore < 30 || r.ConfidenceScore > 100 {
				t.Errorf("ConfidenceScore = %d, want within [30,100]", r.ConfidenceScore)
			}
		})
	}
}

func TestFeedbackSuggestionsCapped(t *testing.T) {
	r := Analyze(evenTranscript([]string{"um", "uh", "um", "like", "um", "uh", "so"}, 2.5))

	if len(r.Feedback.Suggestions) > 3 {
		t.Errorf("Suggestions = %d entries, want at most 3", len(r.Feedback.Suggestions))
	}
	if len(r.Feedback.Suggestions) == 0 {
		t.Error("expected at least one suggestion for a heavily penalized clip")
	}
}
