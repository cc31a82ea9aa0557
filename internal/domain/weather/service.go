package weather

import (
	"context"
	"log/slog"
)

// Provider is the port implemented by the weather provider client.
type Provider interface {
	FetchCurrent(ctx context.Context, loc LocationQuery) (CurrentWeather, error)
	FetchForecast(ctx context.Context, loc LocationQuery, days int) (ForecastWeather, error)
}

// Service exposes the weather pass-through endpoints' behavior.
type Service interface {
	Current(ctx context.Context, loc LocationQuery) (CurrentWeather, error)
	Forecast(ctx context.Context, loc LocationQuery, days int) (ForecastWeather, error)
}

type service struct {
	provider Provider
	logger   *slog.Logger
}

// NewService wires up the weather domain.
func NewService(provider Provider, logger *slog.Logger) Service {
	return &service{
		provider: provider,
		logger:   logger.With("component", "weather.service"),
	}
}

func (s *service) Current(ctx context.Context, loc LocationQuery) (CurrentWeather, error) {
	data, err := s.provider.FetchCurrent(ctx, loc)
	if err != nil {
		return CurrentWeather{}, err
	}
	s.logger.Info("current weather fetched", "q", loc.Query(), "location", data.Location.Name)
	return data, nil
}

func (s *service) Forecast(ctx context.Context, loc LocationQuery, days int) (ForecastWeather, error) {
	data, err := s.provider.FetchForecast(ctx, loc, days)
	if err != nil {
		return ForecastWeather{}, err
	}
	s.logger.Info("forecast weather fetched", "q", loc.Query(), "days", days, "returned_days", len(data.Forecast.Forecastday))
	return data, nil
}
