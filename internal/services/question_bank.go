package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/voxprep/voxprep/internal/cache"
	"github.com/voxprep/voxprep/internal/models"
	"github.com/voxprep/voxprep/internal/prompts"
	"github.com/voxprep/voxprep/internal/providers/llm"
)

const (
	minBankEntries = 5
	bankCacheTTL   = 12 * time.Hour
)

type BankParams struct {
	Type        models.InterviewType
	Topic       string
	Round       int
	Resume      string
	JD          string
	ProjectText string
	WeakAreas   []string
}

// QuestionBankService produces the session question bank with a single LLM
// call. It never fails: unusable LLM output falls back to the built-in banks.
type QuestionBankService interface {
	Generate(ctx context.Context, p BankParams) []string
}

type questionBankService struct {
	llm    llm.Provider
	cache  cache.Cache // optional
	logger *logrus.Logger
}

func NewQuestionBankService(provider llm.Provider, c cache.Cache, logger *logrus.Logger) QuestionBankService {
	if logger == nil {
		logger = logrus.New()
	}
	return &questionBankService{llm: provider, cache: c, logger: logger}
}

func (s *questionBankService) Generate(ctx context.Context, p BankParams) []string {
	// Round-1 topic banks do not depend on the candidate, so they cache well.
	cacheable := p.Type == models.InterviewTechnical &&
		p.Topic != models.TopicRealtime && p.Topic != "" && p.Round <= 1
	key := "qbank:technical:" + p.Topic

	if cacheable && s.cache != nil {
		var bank []string
		if hit, err := s.cache.GetJSON(ctx, key, &bank); err == nil && hit && len(bank) >= minBankEntries {
			return bank
		}
	}

	prompt := prompts.BankPrompt(p.Type, p.Topic, p.Round, p.Resume, p.JD, p.ProjectText, p.WeakAreas)

	callCtx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()
	raw, err := s.llm.GenerateResponse(callCtx, prompt)
	if err != nil {
		s.logger.WithError(err).Warn("question bank generation failed, using fallback")
		return s.finish(p, prompts.FallbackBank(p.Type, p.Topic))
	}

	bank := parseBankList(raw)
	if len(bank) < minBankEntries {
		s.logger.WithField("entries", len(bank)).Warn("question bank too short, using fallback")
		return s.finish(p, prompts.FallbackBank(p.Type, p.Topic))
	}

	bank = s.finish(p, bank)
	if cacheable && s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, bank, bankCacheTTL)
	}
	return bank
}

// finish applies mode invariants: a realtime bank always opens with the
// introduction area.
func (s *questionBankService) finish(p BankParams, bank []string) []string {
	if p.Type == models.InterviewTechnical && (p.Topic == models.TopicRealtime || p.Topic == "") {
		if len(bank) == 0 || bank[0] != prompts.RealtimeIntroArea {
			bank = append([]string{prompts.RealtimeIntroArea}, bank...)
		}
	}
	return bank
}

// parseBankList accepts either a JSON array of strings or a plain numbered /
// bulleted list.
func parseBankList(raw string) []string {
	if body, err := extractJSON(raw); err == nil {
		var arr []string
		if jsonErr := json.Unmarshal(body, &arr); jsonErr == nil {
			return cleanEntries(arr)
		}
	}

	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*0123456789.) ")
		line = strings.Trim(line, `"',`)
		if line != "" && !strings.HasPrefix(line, "```") {
			out = append(out, line)
		}
	}
	return cleanEntries(out)
}

func cleanEntries(in []string) []string {
	out := in[:0]
	for _, e := range in {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}
