package annotate

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/mood-journal/core/internal/config"
	"go.uber.org/zap"
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Service turns journal text into structured annotations via the configured
// AI providers.
type Service struct {
	cfg    config.AIConfig
	logger *zap.Logger
}

func NewService(cfg config.AIConfig, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{cfg: cfg, logger: logger.Named("AnnotateService")}
}

// ValidateConfig reports whether the AI configuration can serve requests at
// all. A deployment without a usable provider is a startup error, not
// something to discover on the first annotation.
func ValidateConfig(cfg config.AIConfig) error {
	provider := selectProvider(cfg, nil)
	if provider == nil {
		return ErrNoProvider
	}
	if strings.TrimSpace(provider.APIKey) == "" {
		return fmt.Errorf("%w: provider %q has no api key", ErrNoProvider, provider.ID)
	}
	return nil
}

// Annotate analyzes one journal entry. Callers decide whether a failure is
// fatal; nothing is retried here.
func (s *Service) Annotate(ctx context.Context, content string) (*Result, error) {
	provider := selectProvider(s.cfg, s.cfg.AnnotateModel)
	if provider == nil {
		return nil, ErrNoProvider
	}

	systemPrompt, prompt := buildAnnotatePrompt(content)
	raw, err := callWithSystemPrompt(ctx, provider, systemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("annotation request: %w", err)
	}

	result, err := parseResult(raw)
	if err != nil {
		s.logger.Warn("annotation output rejected", zap.Error(err))
		return nil, err
	}
	return result, nil
}

// Answer responds to a free-text question over the given journal entries.
func (s *Service) Answer(ctx context.Context, question string, entries []string) (string, error) {
	provider := selectProvider(s.cfg, s.cfg.QuestionModel)
	if provider == nil {
		return "", ErrNoProvider
	}

	systemPrompt, prompt := buildQuestionPrompt(question, entries)
	raw, err := callWithSystemPrompt(ctx, provider, systemPrompt, prompt)
	if err != nil {
		return "", fmt.Errorf("question request: %w", err)
	}

	answer := strings.TrimSpace(raw)
	if answer == "" {
		return "", fmt.Errorf("%w: empty answer", ErrInvalidOutput)
	}
	return answer, nil
}

// parseResult decodes and validates the raw provider output.
func parseResult(raw string) (*Result, error) {
	var out struct {
		Mood           string   `json:"mood"`
		Subject        string   `json:"subject"`
		Summary        string   `json:"summary"`
		Color          string   `json:"color"`
		Negative       bool     `json:"negative"`
		SentimentScore *float64 `json:"sentiment_score"`
	}
	if err := unmarshalAIJSON(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	mood := strings.TrimSpace(out.Mood)
	subject := strings.TrimSpace(out.Subject)
	summary := strings.TrimSpace(out.Summary)
	color := strings.TrimSpace(out.Color)

	switch {
	case mood == "":
		return nil, fmt.Errorf("%w: mood is empty", ErrInvalidOutput)
	case subject == "":
		return nil, fmt.Errorf("%w: subject is empty", ErrInvalidOutput)
	case summary == "":
		return nil, fmt.Errorf("%w: summary is empty", ErrInvalidOutput)
	case !hexColorPattern.MatchString(color):
		return nil, fmt.Errorf("%w: color %q is not a hex color", ErrInvalidOutput, color)
	case out.SentimentScore == nil:
		return nil, fmt.Errorf("%w: sentiment_score is missing", ErrInvalidOutput)
	case *out.SentimentScore != math.Trunc(*out.SentimentScore):
		return nil, fmt.Errorf("%w: sentiment_score %v is not an integer", ErrInvalidOutput, *out.SentimentScore)
	}

	return &Result{
		Mood:           mood,
		Subject:        subject,
		Summary:        summary,
		Color:          color,
		Negative:       out.Negative,
		SentimentScore: ClampScore(int(*out.SentimentScore)),
	}, nil
}

// ClampScore forces a sentiment score into the valid [-10, 10] range.
func ClampScore(score int) int {
	if score < -10 {
		return -10
	}
	if score > 10 {
		return 10
	}
	return score
}
