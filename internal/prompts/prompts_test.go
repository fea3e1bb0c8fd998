package prompts

import (
	"strings"
	"testing"

	"github.com/voxprep/voxprep/internal/models"
)

func TestSystemPromptSelection(t *testing.T) {
	tests := []struct {
		name     string
		typ      models.InterviewType
		topic    string
		contains string
	}{
		{"hr forbids technical", models.InterviewHR, "", "NEVER ask technical questions"},
		{"hr scores on star", models.InterviewHR, "", "STAR completeness"},
		{"realtime grounds in last answer", models.InterviewTechnical, models.TopicRealtime, "grounded in specific terms"},
		{"realtime handles garbled terms", models.InterviewTechnical, models.TopicRealtime, "transcription artifact"},
		{"empty topic means realtime", models.InterviewTechnical, "", "grounded in specific terms"},
		{"topic prompt names the topic", models.InterviewTechnical, "python", "assessing a candidate on Python"},
		{"topic prompt explains actions", models.InterviewTechnical, "sql", "clarify_same_concept"},
		{"project forbids repeats", models.InterviewProject, "", "NEVER repeat a question"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := System(tt.typ, tt.topic)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("System(%q, %q) missing %q", tt.typ, tt.topic, tt.contains)
			}
			if !strings.Contains(got, "Scoring rubric") {
				t.Error("every system prompt must carry the scoring rubric")
			}
		})
	}
}

func TestOpenerCursorStart(t *testing.T) {
	tests := []struct {
		name      string
		typ       models.InterviewType
		topic     string
		wantIndex int
	}{
		{"known topic opens on its question", models.InterviewTechnical, "java", 1},
		{"unknown topic still opens on a question", models.InterviewTechnical, "rust", 1},
		{"realtime opens with the introduction", models.InterviewTechnical, models.TopicRealtime, 0},
		{"hr opens with the introduction", models.InterviewHR, "", 0},
		{"project opens on the overview question", models.InterviewProject, "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, idx := Opener(tt.typ, tt.topic, "some project")
			if idx != tt.wantIndex {
				t.Errorf("start index = %d, want %d", idx, tt.wantIndex)
			}
			if text == "" {
				t.Error("opener text must not be empty")
			}
		})
	}
}

func TestOpenerKnownTopics(t *testing.T) {
	for _, topic := range []string{"python", "java", "sql", "dotnet", "qa", "php"} {
		text, _ := Opener(models.InterviewTechnical, topic, "")
		if !strings.Contains(text, "fundamentals") {
			t.Errorf("opener for %s should start from the fundamentals", topic)
		}
	}
}

func TestRoundTwoIntroNamesFirstArea(t *testing.T) {
	got := RoundTwoIntro("Indexes and query plans")
	if !strings.Contains(got, "Indexes and query plans") {
		t.Errorf("intro must name the first area, got %q", got)
	}
}
