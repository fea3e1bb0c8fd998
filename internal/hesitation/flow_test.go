package hesitation

import "testing"

func TestAnalyzeFlow(t *testing.T) {
	tests := []struct {
		name        string
		tokens      []token
		segments    int
		wantScore   int
		wantPattern string
		wantReps    int
	}{
		{
			name:        "clean flow",
			tokens:      toks("we", "split", "the", "load", "across", "two", "regions"),
			segments:    1,
			wantScore:   100,
			wantPattern: "smooth",
		},
		{
			name:        "adjacent repetitions",
			tokens:      toks("the", "the", "system", "system", "scales", "well", "enough", "today"),
			segments:    1,
			wantScore:   80, // two repetitions at 10 points each
			wantPattern: "smooth",
			wantReps:    2,
		},
		{
			name: "short choppy segments",
			// 4 tokens over 4 segments: average 1 word per segment
			tokens:      toks("yes", "maybe", "no", "sure"),
			segments:    4,
			wantScore:   60, // 10 points per word under the 5-word average
			wantPattern: "moderate",
		},
		{
			name: "overused word",
			tokens: toks("service", "calls", "service", "then", "service", "retries",
				"service", "again", "and", "waits"),
			segments:    1,
			wantScore:   85, // one redundant word
			wantPattern: "smooth",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzeFlow(tt.tokens, tt.segments)
			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.FlowPattern != tt.wantPattern {
				t.Errorf("FlowPattern = %q, want %q", got.FlowPattern, tt.wantPattern)
			}
			if got.RepetitionCount != tt.wantReps {
				t.Errorf("RepetitionCount = %d, want %d", got.RepetitionCount, tt.wantReps)
			}
		})
	}
}

func TestAnalyzeFlowFloor(t *testing.T) {
	// eight adjacent repetitions would take the score far below the floor
	tokens := toks("word", "word", "word", "word", "word", "word", "word", "word", "word")
	got := analyzeFlow(tokens, 1)

	if got.Score != continuityFloor {
		t.Errorf("Score = %d, want floor %d", got.Score, continuityFloor)
	}
	if got.FlowPattern != "fragmented" {
		t.Errorf("FlowPattern = %q, want fragmented", got.FlowPattern)
	}
	if len(got.RepetitionSamples) > 5 {
		t.Errorf("RepetitionSamples = %d entries, want at most 5", len(got.RepetitionSamples))
	}
}
