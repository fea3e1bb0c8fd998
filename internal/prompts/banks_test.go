package prompts

import (
	"strings"
	"testing"

	"github.com/voxprep/voxprep/internal/models"
)

func TestBankPromptByMode(t *testing.T) {
	t.Run("realtime demands the introduction first", func(t *testing.T) {
		p := BankPrompt(models.InterviewTechnical, models.TopicRealtime, 1, "resume text", "jd text", "", nil)
		if !strings.Contains(p, RealtimeIntroArea) {
			t.Error("realtime bank prompt must pin the introduction area")
		}
		if !strings.Contains(p, "resume text") || !strings.Contains(p, "jd text") {
			t.Error("realtime bank prompt must carry resume and job description")
		}
	})

	t.Run("round two biases toward weak areas", func(t *testing.T) {
		p := BankPrompt(models.InterviewTechnical, "sql", 2, "", "", "", []string{"Indexes", "Transactions"})
		if !strings.Contains(p, "Indexes, Transactions") {
			t.Error("round-two prompt must list the weak areas")
		}
		if !strings.Contains(p, "intermediate") {
			t.Error("round two must ask for intermediate-level areas")
		}
	})

	t.Run("hr asks for star prompts", func(t *testing.T) {
		p := BankPrompt(models.InterviewHR, "", 1, "", "", "", nil)
		if !strings.Contains(p, "Situation/Task/Action/Result") {
			t.Error("hr bank prompt must require STAR-answerable prompts")
		}
	})

	t.Run("long project text is clipped", func(t *testing.T) {
		long := strings.Repeat("x", 10000)
		p := BankPrompt(models.InterviewProject, "", 1, "", "", long, nil)
		if strings.Contains(p, long) {
			t.Error("project text must be clipped before prompting")
		}
		if !strings.Contains(p, strings.Repeat("x", 3000)) {
			t.Error("the clipped prefix must survive")
		}
	})
}

func TestFallbackBankShape(t *testing.T) {
	cases := []struct {
		typ   models.InterviewType
		topic string
	}{
		{models.InterviewHR, ""},
		{models.InterviewProject, ""},
		{models.InterviewTechnical, models.TopicRealtime},
		{models.InterviewTechnical, "python"},
		{models.InterviewTechnical, "java"},
		{models.InterviewTechnical, "sql"},
		{models.InterviewTechnical, "dotnet"},
		{models.InterviewTechnical, "qa"},
		{models.InterviewTechnical, "php"},
		{models.InterviewTechnical, "rust"}, // unknown topic gets the generic bank
	}

	for _, c := range cases {
		bank := FallbackBank(c.typ, c.topic)
		if len(bank) < 5 {
			t.Errorf("FallbackBank(%s, %s) has %d entries, want at least 5", c.typ, c.topic, len(bank))
		}
	}

	rt := FallbackBank(models.InterviewTechnical, models.TopicRealtime)
	if rt[0] != RealtimeIntroArea {
		t.Errorf("realtime fallback bank starts with %q, want %q", rt[0], RealtimeIntroArea)
	}
}
