package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/voxprep/voxprep/internal/events"
	"github.com/voxprep/voxprep/internal/models"
	"github.com/voxprep/voxprep/internal/prompts"
	"github.com/voxprep/voxprep/internal/providers/llm"
	"github.com/voxprep/voxprep/internal/providers/stt"
	"github.com/voxprep/voxprep/internal/providers/tts"
	"github.com/voxprep/voxprep/internal/store"
	"github.com/voxprep/voxprep/internal/utils"
)

// providerTimeout caps every external call (LLM, STT, TTS).
const providerTimeout = 30 * time.Second

type StartParams struct {
	Type        models.InterviewType
	Topic       string
	Resume      string
	JD          string
	ProjectText string
}

type StartResult struct {
	SessionID      string `json:"session_id"`
	Text           string `json:"text"`
	AudioURL       string `json:"audio_url,omitempty"`
	QuestionIndex  int    `json:"question_index"`
	TotalQuestions int    `json:"total_questions"`
}

type TurnFeedback struct {
	Score        int    `json:"score"`
	Quality      string `json:"quality"`
	FeedbackText string `json:"feedback_text"`
}

type TurnResult struct {
	Text        string        `json:"text"`
	AudioURL    string        `json:"audio_url,omitempty"`
	IsCompleted bool          `json:"is_completed"`
	Feedback    *TurnFeedback `json:"feedback,omitempty"`
}

// InterviewService drives the adaptive multi-turn interview. Each
// ProcessAnswer call appends exactly one user turn and one assistant turn;
// state mutations happen only after the external calls succeed, so an aborted
// turn leaves the session consistent.
type InterviewService interface {
	Start(ctx context.Context, userID string, p StartParams) (*StartResult, error)
	ProcessAnswer(ctx context.Context, sessionID string, audio []byte, textAnswer string) (*TurnResult, error)
}

type interviewService struct {
	sessions  store.SessionStore
	banks     QuestionBankService
	llm       llm.Provider
	stt       stt.Provider
	tts       tts.Provider
	analytics AnalyticsService // optional
	events    *events.TurnPublisher
	logger    *logrus.Logger

	historyWindow int
	technicalMax  time.Duration
	now           func() time.Time
}

type InterviewDeps struct {
	Sessions  store.SessionStore
	Banks     QuestionBankService
	LLM       llm.Provider
	STT       stt.Provider
	TTS       tts.Provider
	Analytics AnalyticsService
	Events    *events.TurnPublisher
	Logger    *logrus.Logger

	HistoryWindow       int
	TechnicalMaxMinutes int
}

func NewInterviewService(d InterviewDeps) InterviewService {
	if d.Logger == nil {
		d.Logger = logrus.New()
	}
	if d.HistoryWindow <= 0 {
		d.HistoryWindow = 6
	}
	if d.TechnicalMaxMinutes <= 0 {
		d.TechnicalMaxMinutes = 10
	}
	return &interviewService{
		sessions:      d.Sessions,
		banks:         d.Banks,
		llm:           d.LLM,
		stt:           d.STT,
		tts:           d.TTS,
		analytics:     d.Analytics,
		events:        d.Events,
		logger:        d.Logger,
		historyWindow: d.HistoryWindow,
		technicalMax:  time.Duration(d.TechnicalMaxMinutes) * time.Minute,
		now:           time.Now,
	}
}

func (s *interviewService) Start(ctx context.Context, userID string, p StartParams) (*StartResult, error) {
	const op = "InterviewService.Start"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	switch p.Type {
	case models.InterviewTechnical, models.InterviewHR, models.InterviewProject, models.InterviewVideoPractice:
	default:
		return nil, utils.E(utils.CodeInvalidArgument, op, "unknown interview_type", nil)
	}

	bank := s.banks.Generate(ctx, BankParams{
		Type: p.Type, Topic: p.Topic, Round: 1,
		Resume: p.Resume, JD: p.JD, ProjectText: p.ProjectText,
	})

	opener, startIndex := prompts.Opener(p.Type, p.Topic, p.ProjectText)

	sess := &models.Session{
		ID:             uuid.NewString(),
		UserID:         userID,
		Type:           p.Type,
		Topic:          p.Topic,
		Round:          1,
		Status:         models.StatusActive,
		Resume:         p.Resume,
		JobDescription: p.JD,
		ProjectText:    p.ProjectText,
		QuestionBank:   bank,
		History:        []models.Turn{{Role: models.RoleAssistant, Content: opener}},
		CurrentQIndex:  startIndex,
		StartTime:      s.now(),
	}
	s.sessions.Put(sess)

	audioURL := s.synthesize(ctx, sess.ID, opener)

	return &StartResult{
		SessionID:      sess.ID,
		Text:           opener,
		AudioURL:       audioURL,
		QuestionIndex:  sess.CurrentQIndex,
		TotalQuestions: len(bank),
	}, nil
}

func (s *interviewService) ProcessAnswer(ctx context.Context, sessionID string, audio []byte, textAnswer string) (*TurnResult, error) {
	const op = "InterviewService.ProcessAnswer"

	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, utils.E(utils.CodeNotFound, op, "session not found", nil)
	}

	// answering a completed session returns the last summary idempotently
	if sess.Status == models.StatusCompleted {
		return &TurnResult{Text: sess.LastAssistantTurn(), IsCompleted: true}, nil
	}

	if sess.Status == models.StatusAwaitingRoundTwo {
		return s.handleRoundTwoReply(ctx, sess, audio, textAnswer)
	}

	userText := s.resolveUserText(ctx, sess.ID, audio, textAnswer)
	weak := isWeakAnswer(userText)

	if sess.Status == models.StatusCompleting {
		return s.finishWithSummary(ctx, sess, userText)
	}

	topicBased := sess.Type == models.InterviewTechnical &&
		sess.Topic != models.TopicRealtime && sess.Topic != ""

	// round one of a topic-based interview ends with a round-two offer, not
	// with termination
	if topicBased && sess.Round == 1 && sess.CurrentQIndex >= len(sess.QuestionBank) {
		return s.offerRoundTwo(ctx, sess, userText, weak)
	}

	completing := s.completionDue(sess, topicBased)

	s.events.Publish(ctx, sess.ID, events.StageEvaluating, "evaluating answer")
	res := s.adaptiveResponse(ctx, sess, userText)

	// all mutations happen here, after the LLM round-trip
	if weak {
		s.flagWeakArea(sess)
	}
	question := sess.LastAssistantTurn()
	sess.History = append(sess.History,
		models.Turn{Role: models.RoleUser, Content: userText},
		models.Turn{Role: models.RoleAssistant, Content: res.NextQuestion},
	)
	sess.AnswerCount++
	sess.Scores = append(sess.Scores, res.Score)
	sess.QAPairs = append(sess.QAPairs, models.QAPair{Question: question, Answer: userText, Score: res.Score})
	s.advanceCursor(sess, topicBased, res.NextAction)
	if completing {
		sess.Status = models.StatusCompleting
	}
	s.sessions.Put(sess)

	audioURL := s.synthesize(ctx, sess.ID, res.NextQuestion)
	s.events.Publish(ctx, sess.ID, events.StageDone, "turn complete")

	return &TurnResult{
		Text:     res.NextQuestion,
		AudioURL: audioURL,
		Feedback: &TurnFeedback{Score: res.Score, Quality: res.Quality, FeedbackText: res.FeedbackText},
	}, nil
}

// completionDue decides whether the turn being processed is the last adaptive
// one. Technical interviews cap on wall time; HR, project and round-two
// topic interviews cap on bank exhaustion.
func (s *interviewService) completionDue(sess *models.Session, topicBased bool) bool {
	switch sess.Type {
	case models.InterviewTechnical:
		if s.now().Sub(sess.StartTime) >= s.technicalMax {
			return true
		}
		return topicBased && sess.Round >= 2 && sess.CurrentQIndex >= len(sess.QuestionBank)
	case models.InterviewHR, models.InterviewProject:
		return sess.CurrentQIndex >= len(sess.QuestionBank)
	default:
		return false
	}
}

// advanceCursor applies the progression rules. The cursor never decreases and
// never exceeds the bank length.
func (s *interviewService) advanceCursor(sess *models.Session, topicBased bool, nextAction string) {
	if topicBased && (nextAction == ActionClarifySame || nextAction == ActionTeachBasics) {
		return // stay pinned on the same topic area
	}
	if sess.CurrentQIndex < len(sess.QuestionBank) {
		sess.CurrentQIndex++
	}
}

func (s *interviewService) adaptiveResponse(ctx context.Context, sess *models.Session, userText string) *adaptiveResult {
	prompt := buildAdaptivePrompt(sess, userText, s.historyWindow)

	callCtx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()
	raw, err := s.llm.GenerateResponse(callCtx, prompt)
	if err != nil {
		s.logger.WithError(err).WithField("session_id", sess.ID).Warn("llm unavailable, using fallback turn")
		return fallbackAdaptive(sess)
	}

	res, err := parseAdaptiveJSON(raw)
	if err != nil {
		s.logger.WithError(err).WithField("session_id", sess.ID).Warn("unparseable llm response, using fallback turn")
		return fallbackAdaptive(sess)
	}
	if res.NextQuestion == "" {
		fb := fallbackAdaptive(sess)
		res.NextQuestion = fb.NextQuestion
		if res.NextAction == "" {
			res.NextAction = fb.NextAction
		}
	}
	if res.FeedbackText == "" {
		res.FeedbackText = "Thank you for your answer."
	}
	if res.NextAction == "" {
		res.NextAction = ActionMoveForward
	}
	return res
}

func (s *interviewService) handleRoundTwoReply(ctx context.Context, sess *models.Session, audio []byte, textAnswer string) (*TurnResult, error) {
	// this turn is a plain yes/no; no scoring happens
	userText := s.resolveUserText(ctx, sess.ID, audio, textAnswer)

	if !isAffirmative(userText) {
		sess.History = append(sess.History,
			models.Turn{Role: models.RoleUser, Content: userText},
			models.Turn{Role: models.RoleAssistant, Content: prompts.Farewell},
		)
		sess.AnswerCount++
		sess.Status = models.StatusCompleted
		s.sessions.Put(sess)
		s.recordCompleted(ctx, sess)

		audioURL := s.synthesize(ctx, sess.ID, prompts.Farewell)
		return &TurnResult{Text: prompts.Farewell, AudioURL: audioURL, IsCompleted: true}, nil
	}

	return s.startRoundTwo(ctx, sess, userText)
}

// startRoundTwo regenerates the bank biased toward the weak areas collected
// in round one and emits the transition turn.
func (s *interviewService) startRoundTwo(ctx context.Context, sess *models.Session, userText string) (*TurnResult, error) {
	bank := s.banks.Generate(ctx, BankParams{
		Type:      sess.Type,
		Topic:     sess.Topic,
		Round:     2,
		WeakAreas: sess.WeakAreas,
	})

	intro := prompts.RoundTwoIntro(bank[0])

	sess.QuestionBank = bank
	sess.Round = 2
	sess.CurrentQIndex = 1 // cursor resets to 0, then the intro consumes one
	sess.Status = models.StatusActive
	sess.History = append(sess.History,
		models.Turn{Role: models.RoleUser, Content: userText},
		models.Turn{Role: models.RoleAssistant, Content: intro},
	)
	sess.AnswerCount++
	s.sessions.Put(sess)

	audioURL := s.synthesize(ctx, sess.ID, intro)
	return &TurnResult{Text: intro, AudioURL: audioURL}, nil
}

func (s *interviewService) offerRoundTwo(ctx context.Context, sess *models.Session, userText string, weak bool) (*TurnResult, error) {
	if weak {
		s.flagWeakArea(sess)
	}
	sess.History = append(sess.History,
		models.Turn{Role: models.RoleUser, Content: userText},
		models.Turn{Role: models.RoleAssistant, Content: prompts.RoundTwoOffer},
	)
	sess.AnswerCount++
	sess.Status = models.StatusAwaitingRoundTwo
	s.sessions.Put(sess)

	audioURL := s.synthesize(ctx, sess.ID, prompts.RoundTwoOffer)
	return &TurnResult{Text: prompts.RoundTwoOffer, AudioURL: audioURL}, nil
}

// finishWithSummary consumes the one remaining user turn of a completing
// session and replies with the final wrap-up.
func (s *interviewService) finishWithSummary(ctx context.Context, sess *models.Session, userText string) (*TurnResult, error) {
	summary := s.finalSummary(ctx, sess, userText)

	sess.History = append(sess.History,
		models.Turn{Role: models.RoleUser, Content: userText},
		models.Turn{Role: models.RoleAssistant, Content: summary},
	)
	sess.AnswerCount++
	sess.Status = models.StatusCompleted
	s.sessions.Put(sess)
	s.recordCompleted(ctx, sess)

	audioURL := s.synthesize(ctx, sess.ID, summary)
	return &TurnResult{Text: summary, AudioURL: audioURL, IsCompleted: true}, nil
}

func (s *interviewService) finalSummary(ctx context.Context, sess *models.Session, lastAnswer string) string {
	callCtx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	out, err := s.llm.GenerateResponse(callCtx, buildSummaryPrompt(sess, lastAnswer))
	if err != nil || strings.TrimSpace(out) == "" {
		if err != nil {
			s.logger.WithError(err).WithField("session_id", sess.ID).Warn("summary generation failed, using fallback")
		}
		return prompts.FallbackSummary
	}
	return strings.TrimSpace(out)
}

// resolveUserText prefers an explicit text answer; otherwise it transcribes
// the uploaded audio. Transcription failure degrades to an empty answer, which
// the weak-answer heuristic and the LLM clarification behavior then absorb.
func (s *interviewService) resolveUserText(ctx context.Context, sessionID string, audio []byte, textAnswer string) string {
	if textAnswer != "" {
		return textAnswer
	}
	if len(audio) == 0 || s.stt == nil {
		return ""
	}

	s.events.Publish(ctx, sessionID, events.StageTranscribing, "transcribing answer")

	callCtx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()
	tr, err := s.stt.Transcribe(callCtx, audio)
	if err != nil {
		s.logger.WithError(err).WithField("session_id", sessionID).Warn("transcription failed")
		return ""
	}
	return tr.Text
}

func (s *interviewService) synthesize(ctx context.Context, sessionID, text string) string {
	if s.tts == nil {
		return ""
	}

	s.events.Publish(ctx, sessionID, events.StageSynthesizing, "synthesizing speech")

	callCtx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()
	url, err := s.tts.Synthesize(callCtx, text)
	if err != nil {
		// textual payload still goes out; the client just gets no audio
		s.logger.WithError(err).WithField("session_id", sessionID).Warn("tts unavailable")
		return ""
	}
	return url
}

func (s *interviewService) flagWeakArea(sess *models.Session) {
	area := sess.ActiveTopicArea()
	if area != "" && !sess.HasWeakArea(area) {
		sess.WeakAreas = append(sess.WeakAreas, area)
	}
}

func (s *interviewService) recordCompleted(ctx context.Context, sess *models.Session) {
	if s.analytics == nil {
		return
	}
	if err := s.analytics.RecordCompleted(ctx, sess); err != nil {
		s.logger.WithError(err).WithField("session_id", sess.ID).Warn("failed to record interview result")
	}
}

var affirmatives = []string{
	"yes", "yeah", "yep", "yup", "sure", "ok", "okay",
	"go ahead", "ready", "absolutely", "let's",
}

func isAffirmative(text string) bool {
	t := strings.ToLower(text)
	for _, a := range affirmatives {
		if strings.Contains(t, a) {
			return true
		}
	}
	return false
}

// isWeakAnswer is a cheap heuristic that only feeds weak-area collection for
// round-two bank generation; it plays no part in scoring.
func isWeakAnswer(text string) bool {
	t := strings.ToLower(text)
	if strings.Contains(t, "don't know") || strings.Contains(t, "dont know") || strings.Contains(t, "unsure") {
		return true
	}
	return len(strings.Fields(t)) <= 5
}
