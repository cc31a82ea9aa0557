package recommendation

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/what-to-wear/internal/domain/weather"
	apperrors "github.com/yanqian/what-to-wear/pkg/errors"
)

func TestServiceCurrentSuccess(t *testing.T) {
	provider := &stubProvider{
		current: weather.CurrentWeather{
			Current: weather.Current{TempC: 20, FeelslikeC: 18, Humidity: 60, IsDay: 1},
		},
	}
	llm := &stubCompleter{
		response: []byte(`{"choices":[{"message":{"content":"Wear a coat."}}]}`),
	}
	svc := newServiceUnderTest(provider, llm)

	text, err := svc.Current(context.Background(), weather.CityLocation("Berlin"))
	require.NoError(t, err)
	require.Equal(t, "Wear a coat.", text)
	require.Equal(t, "mistralai/mistral-7b-instruct", llm.lastModel)
	require.Contains(t, llm.lastPrompt, "20.0°C")
	require.Equal(t, 1, provider.currentCalls)
}

func TestServiceForecastSuccess(t *testing.T) {
	provider := &stubProvider{
		forecast: weather.ForecastWeather{
			Forecast: weather.Forecast{
				Forecastday: []weather.ForecastDay{
					{Date: "2026-08-30"},
					{Date: "2026-08-31"},
				},
			},
		},
	}
	llm := &stubCompleter{
		response: []byte(`{"choices":[{"message":{"content":"Day one: jacket. Day two: raincoat."}}]}`),
	}
	svc := newServiceUnderTest(provider, llm)

	text, err := svc.Forecast(context.Background(), weather.CityLocation("Berlin"), 2)
	require.NoError(t, err)
	require.Equal(t, "Day one: jacket. Day two: raincoat.", text)
	require.Equal(t, 2, provider.lastDays)
	require.Less(t,
		strings.Index(llm.lastPrompt, "2026-08-30"),
		strings.Index(llm.lastPrompt, "2026-08-31"))
}

func TestServiceCurrentWeatherFailure(t *testing.T) {
	provider := &stubProvider{
		err: apperrors.Wrap(apperrors.CodeLocationNotFound, "city or coordinates not found", nil),
	}
	llm := &stubCompleter{}
	svc := newServiceUnderTest(provider, llm)

	_, err := svc.Current(context.Background(), weather.CityLocation("Nowhere"))
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeLocationNotFound))
	require.Zero(t, llm.calls, "llm must not be called when the weather fetch fails")
}

func TestServiceCurrentLLMFailure(t *testing.T) {
	provider := &stubProvider{}
	llm := &stubCompleter{
		err: apperrors.WrapStatus(apperrors.CodeLLMProvider, "llm request failed", 500, nil),
	}
	svc := newServiceUnderTest(provider, llm)

	_, err := svc.Current(context.Background(), weather.CityLocation("Berlin"))
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeLLMProvider))
}

func TestServiceCurrentMalformedLLMResponse(t *testing.T) {
	provider := &stubProvider{}
	llm := &stubCompleter{response: []byte(`{"choices":[]}`)}
	svc := newServiceUnderTest(provider, llm)

	_, err := svc.Current(context.Background(), weather.CityLocation("Berlin"))
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeMalformedLLM))
}

func TestServiceUnregisteredModel(t *testing.T) {
	provider := &stubProvider{}
	llm := &stubCompleter{}
	svc := NewService(Config{Model: ModelKind("llama")}, provider, llm, newTestLogger())

	_, err := svc.Current(context.Background(), weather.CityLocation("Berlin"))
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeNoModelSelected))
	require.Zero(t, llm.calls)
}

func newServiceUnderTest(provider weather.Provider, llm Completer) Service {
	return NewService(Config{Model: ModelMistral}, provider, llm, newTestLogger())
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubProvider struct {
	current      weather.CurrentWeather
	forecast     weather.ForecastWeather
	err          error
	currentCalls int
	lastDays     int
}

func (s *stubProvider) FetchCurrent(_ context.Context, _ weather.LocationQuery) (weather.CurrentWeather, error) {
	s.currentCalls++
	if s.err != nil {
		return weather.CurrentWeather{}, s.err
	}
	return s.current, nil
}

func (s *stubProvider) FetchForecast(_ context.Context, _ weather.LocationQuery, days int) (weather.ForecastWeather, error) {
	s.lastDays = days
	if s.err != nil {
		return weather.ForecastWeather{}, s.err
	}
	return s.forecast, nil
}

type stubCompleter struct {
	response   []byte
	err        error
	calls      int
	lastModel  string
	lastPrompt string
}

func (s *stubCompleter) Complete(_ context.Context, model, prompt string) ([]byte, error) {
	s.calls++
	s.lastModel = model
	s.lastPrompt = prompt
	if s.err != nil {
		return nil, s.err
	}
	if s.response == nil {
		return nil, errors.New("no stub response configured")
	}
	return s.response, nil
}
