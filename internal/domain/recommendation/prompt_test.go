package recommendation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/what-to-wear/internal/domain/weather"
)

func TestCurrentPrompt(t *testing.T) {
	data := weather.CurrentWeather{
		Current: weather.Current{
			TempC:      20.0,
			FeelslikeC: 18.5,
			PressureMb: 1012,
			Humidity:   60,
			WindKph:    12.2,
			PrecipMm:   0.1,
			IsDay:      1,
		},
	}

	prompt := currentPrompt(data)
	require.Contains(t, prompt, "20.0°C")
	require.Contains(t, prompt, "18.5°C")
	require.Contains(t, prompt, "1012.0 mbar")
	require.Contains(t, prompt, "60%")
	require.Contains(t, prompt, "12.2 km/h")
	require.Contains(t, prompt, "0.1 mm")
	require.Contains(t, prompt, "Daytime")
	require.Contains(t, prompt, "without repeating the details")
}

func TestCurrentPromptEvening(t *testing.T) {
	prompt := currentPrompt(weather.CurrentWeather{})
	require.Contains(t, prompt, "Evening")
	require.NotContains(t, prompt, "Daytime")
}

func TestForecastPromptPreservesDayOrder(t *testing.T) {
	data := weather.ForecastWeather{
		Forecast: weather.Forecast{
			Forecastday: []weather.ForecastDay{
				{Date: "2026-08-29", Day: weather.Day{AvgtempC: 18, UV: 4}},
				{Date: "2026-08-30", Day: weather.Day{AvgtempC: 21, UV: 6}},
				{Date: "2026-08-31", Day: weather.Day{AvgtempC: 16, UV: 2}},
			},
		},
	}

	prompt := forecastPrompt(data)
	first := strings.Index(prompt, "2026-08-29")
	second := strings.Index(prompt, "2026-08-30")
	third := strings.Index(prompt, "2026-08-31")
	require.Positive(t, first)
	require.Greater(t, second, first)
	require.Greater(t, third, second)
	require.Contains(t, prompt, " .Day: 2026-08-30: ")
}

func TestForecastPromptDayFields(t *testing.T) {
	data := weather.ForecastWeather{
		Forecast: weather.Forecast{
			Forecastday: []weather.ForecastDay{
				{
					Date: "2026-08-31",
					Day: weather.Day{
						AvgtempC:          17.3,
						MaxtempC:          21.8,
						MintempC:          12.1,
						Avghumidity:       70,
						TotalprecipMm:     3.4,
						DailyChanceOfRain: 80,
						UV:                3.0,
					},
				},
			},
		},
	}

	prompt := forecastPrompt(data)
	require.Contains(t, prompt, "Average Temperature: 17.3°C")
	require.Contains(t, prompt, "Max Temperature: 21.8°C")
	require.Contains(t, prompt, "Min Temperature: 12.1°C")
	require.Contains(t, prompt, "Average Humidity: 70%")
	require.Contains(t, prompt, "Total Precipitation: 3.4 mm")
	require.Contains(t, prompt, "Chance of rain: 80%")
	require.Contains(t, prompt, "UV radiation levels: 3.0")
}
