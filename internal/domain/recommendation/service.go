package recommendation

import (
	"context"
	"log/slog"

	"github.com/yanqian/what-to-wear/internal/domain/weather"
)

// Completer is the port implemented by the LLM endpoint client. It returns
// the raw response body; a Parser turns that into text.
type Completer interface {
	Complete(ctx context.Context, model, prompt string) ([]byte, error)
}

// Config selects the LLM the orchestrator talks to.
type Config struct {
	Model ModelKind
}

// Service produces clothing recommendations from weather data.
type Service interface {
	Current(ctx context.Context, loc weather.LocationQuery) (string, error)
	Forecast(ctx context.Context, loc weather.LocationQuery, days int) (string, error)
}

type service struct {
	cfg      Config
	provider weather.Provider
	llm      Completer
	logger   *slog.Logger
}

// NewService wires up the recommendation orchestrator.
func NewService(cfg Config, provider weather.Provider, llm Completer, logger *slog.Logger) Service {
	return &service{
		cfg:      cfg,
		provider: provider,
		llm:      llm,
		logger:   logger.With("component", "recommendation.service"),
	}
}

func (s *service) Current(ctx context.Context, loc weather.LocationQuery) (string, error) {
	data, err := s.provider.FetchCurrent(ctx, loc)
	if err != nil {
		return "", err
	}
	return s.recommend(ctx, currentPrompt(data))
}

func (s *service) Forecast(ctx context.Context, loc weather.LocationQuery, days int) (string, error) {
	data, err := s.provider.FetchForecast(ctx, loc, days)
	if err != nil {
		return "", err
	}
	return s.recommend(ctx, forecastPrompt(data))
}

// recommend runs prompt -> LLM -> parser as a unit; a failure at any step
// fails the whole request, never a partial result.
func (s *service) recommend(ctx context.Context, prompt string) (string, error) {
	parser, err := ParserFor(s.cfg.Model)
	if err != nil {
		return "", err
	}
	model, err := ModelID(s.cfg.Model)
	if err != nil {
		return "", err
	}

	raw, err := s.llm.Complete(ctx, model, prompt)
	if err != nil {
		return "", err
	}
	content, err := parser.Content(raw)
	if err != nil {
		return "", err
	}
	attrs := []any{"model", model, "prompt_len", len(prompt), "content_len", len(content)}
	if usage := parser.Usage(raw); !usage.IsZero() {
		attrs = append(attrs, "prompt_tokens", usage.PromptTokens, "total_tokens", usage.TotalTokens)
	}
	s.logger.Info("recommendation generated", attrs...)
	return content, nil
}
