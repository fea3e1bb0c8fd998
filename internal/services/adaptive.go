package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/voxprep/voxprep/internal/models"
	"github.com/voxprep/voxprep/internal/prompts"
)

// next_action values for topic-based technical interviews.
const (
	ActionMoveForward = "move_forward"
	ActionClarifySame = "clarify_same_concept"
	ActionTeachBasics = "teach_basics"
)

const (
	QualityExcellent = "excellent"
	QualityGood      = "good"
	QualityNeedsWork = "needs_work"
	QualityPoor      = "poor"
)

// adaptiveResult is the combined score-and-next-question payload asked of the
// LLM. One JSON response per turn halves the round-trips.
type adaptiveResult struct {
	Score        int    `json:"score"`
	Quality      string `json:"quality"`
	FeedbackText string `json:"feedback_text"`
	NextAction   string `json:"next_action,omitempty"`
	NextQuestion string `json:"next_question"`
}

func qualityForScore(score int) string {
	switch {
	case score >= 90:
		return QualityExcellent
	case score >= 75:
		return QualityGood
	case score >= 60:
		return QualityNeedsWork
	default:
		return QualityPoor
	}
}

// parseAdaptiveJSON tolerates code fences, surrounding prose and missing
// optional fields. It errors only when no JSON object can be extracted.
func parseAdaptiveJSON(raw string) (*adaptiveResult, error) {
	body, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	var res adaptiveResult
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, err
	}

	if res.Score < 0 {
		res.Score = 0
	}
	if res.Score > 100 {
		res.Score = 100
	}
	if res.Quality == "" {
		res.Quality = qualityForScore(res.Score)
	}
	return &res, nil
}

// extractJSON strips ```json fences and surrounding text, returning the first
// top-level JSON object or array in the input.
func extractJSON(raw string) ([]byte, error) {
	s := strings.TrimSpace(raw)
	if i := strings.Index(s, "```"); i >= 0 {
		s = s[i+3:]
		s = strings.TrimPrefix(s, "json")
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return nil, fmt.Errorf("no JSON payload in response")
	}
	var end int
	if s[start] == '{' {
		end = strings.LastIndex(s, "}")
	} else {
		end = strings.LastIndex(s, "]")
	}
	if end <= start {
		return nil, fmt.Errorf("unterminated JSON payload in response")
	}
	return []byte(s[start : end+1]), nil
}

// fallbackAdaptive is the deterministic turn used when the LLM fails or
// returns unparseable output. The session stays active.
func fallbackAdaptive(sess *models.Session) *adaptiveResult {
	res := &adaptiveResult{
		Score:        50,
		Quality:      QualityNeedsWork,
		FeedbackText: "Thank you for your answer.",
	}
	if sess.Type == models.InterviewTechnical && sess.Topic != models.TopicRealtime && sess.Topic != "" {
		next := sess.CurrentQIndex + 1
		if next < len(sess.QuestionBank) {
			res.NextAction = ActionMoveForward
			res.NextQuestion = "Let's move on to: " + sess.QuestionBank[next]
			return res
		}
		res.NextAction = ActionClarifySame
		res.NextQuestion = "Let's stay on " + sess.ActiveTopicArea() + ". Can you add more detail to your last answer?"
		return res
	}
	res.NextQuestion = "Can you tell me more about your experience?"
	return res
}

// buildAdaptivePrompt assembles the mode-keyed prompt for one turn. Project
// mode sends the full history plus an explicit asked-question list to prevent
// repetition; other modes use a sliding window.
func buildAdaptivePrompt(sess *models.Session, userText string, window int) string {
	var b strings.Builder
	b.WriteString(prompts.System(sess.Type, sess.Topic))
	b.WriteString("\n\n")

	topicBased := sess.Type == models.InterviewTechnical &&
		sess.Topic != models.TopicRealtime && sess.Topic != ""

	if topicBased {
		fmt.Fprintf(&b, "Current topic area: %s (area %d of %d, round %d)\n\n",
			sess.ActiveTopicArea(), sess.CurrentQIndex+1, len(sess.QuestionBank), sess.Round)
	}
	if sess.Type == models.InterviewHR && sess.CurrentQIndex < len(sess.QuestionBank) {
		fmt.Fprintf(&b, "Current behavioral prompt to cover: %s\n\n", sess.ActiveTopicArea())
	}
	if sess.Resume != "" {
		fmt.Fprintf(&b, "Candidate resume:\n%s\n\n", sess.Resume)
	}
	if sess.JobDescription != "" {
		fmt.Fprintf(&b, "Job description:\n%s\n\n", sess.JobDescription)
	}
	if sess.Type == models.InterviewProject && sess.ProjectText != "" {
		fmt.Fprintf(&b, "Project description:\n%s\n\n", sess.ProjectText)
	}

	history := sess.History
	if sess.Type == models.InterviewProject {
		b.WriteString("Questions already asked (NEVER repeat any of these):\n")
		for _, t := range sess.History {
			if t.Role == models.RoleAssistant {
				b.WriteString("- " + t.Content + "\n")
			}
		}
		b.WriteString("\n")
	} else if window > 0 && len(history) > window {
		history = history[len(history)-window:]
	}

	b.WriteString("Conversation so far:\n")
	for _, t := range history {
		fmt.Fprintf(&b, "%s: %s\n", t.Role, t.Content)
	}
	fmt.Fprintf(&b, "user: %s\n\n", userText)

	b.WriteString(`Evaluate the candidate's last answer and produce the next question. Respond with ONLY this JSON object:
{"score": <0-100>, "quality": "excellent|good|needs_work|poor", "feedback_text": "<one or two sentences of feedback>", `)
	if topicBased {
		b.WriteString(`"next_action": "move_forward|clarify_same_concept|teach_basics", `)
	}
	b.WriteString(`"next_question": "<the next question to ask>"}`)

	return b.String()
}

// buildSummaryPrompt asks for the closing wrap-up using the same mode-keyed
// system prompt.
func buildSummaryPrompt(sess *models.Session, lastAnswer string) string {
	var b strings.Builder
	b.WriteString(prompts.System(sess.Type, sess.Topic))
	b.WriteString("\n\nInterview transcript summary:\n")
	for _, qa := range sess.QAPairs {
		fmt.Fprintf(&b, "Q: %s\nA: %s (score %d)\n", qa.Question, qa.Answer, qa.Score)
	}
	if lastAnswer != "" {
		fmt.Fprintf(&b, "Final answer: %s\n", lastAnswer)
	}
	b.WriteString("\n" + prompts.SummaryInstruction)
	return b.String()
}
