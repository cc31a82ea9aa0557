package weatherapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/what-to-wear/internal/domain/weather"
	apperrors "github.com/yanqian/what-to-wear/pkg/errors"
)

const currentPayload = `{
	"location": {"name": "Berlin", "region": "Berlin", "country": "Germany", "lat": 52.52, "lon": 13.4},
	"current": {"temp_c": 20, "temp_f": 68, "is_day": 1, "feelslike_c": 18.5, "humidity": 60, "pressure_mb": 1012, "wind_kph": 12.2, "precip_mm": 0.1, "cloud": 25, "uv": 4}
}`

func TestFetchCurrentSuccess(t *testing.T) {
	var gotPath, gotKey, gotQ string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		gotQ = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(currentPayload))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	data, err := client.FetchCurrent(context.Background(), weather.CityLocation("Berlin"))
	require.NoError(t, err)
	require.Equal(t, "/current.json", gotPath)
	require.Equal(t, "test-key", gotKey)
	require.Equal(t, "Berlin", gotQ)
	require.Equal(t, "Berlin", data.Location.Name)
	require.Equal(t, 20.0, data.Current.TempC)
	require.Equal(t, 1, data.Current.IsDay)
}

func TestFetchCurrentCoordsQuery(t *testing.T) {
	var gotQ string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQ = r.URL.Query().Get("q")
		_, _ = w.Write([]byte(currentPayload))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.FetchCurrent(context.Background(), weather.CoordsLocation(12.34, 56.78))
	require.NoError(t, err)
	require.Equal(t, "12.34,56.78", gotQ)
}

func TestFetchForecastSuccess(t *testing.T) {
	var gotPath, gotDays string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotDays = r.URL.Query().Get("days")
		_, _ = w.Write([]byte(`{
			"location": {"name": "Berlin"},
			"current": {"temp_c": 20},
			"forecast": {"forecastday": [
				{"date": "2026-08-30", "day": {"avgtemp_c": 19, "maxtemp_c": 24, "mintemp_c": 14, "avghumidity": 55, "totalprecip_mm": 0.2, "daily_chance_of_rain": 10, "uv": 5}},
				{"date": "2026-08-31", "day": {"avgtemp_c": 17, "maxtemp_c": 21, "mintemp_c": 12, "avghumidity": 70, "totalprecip_mm": 3.4, "daily_chance_of_rain": 80, "uv": 3}}
			]}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	data, err := client.FetchForecast(context.Background(), weather.CityLocation("Berlin"), 2)
	require.NoError(t, err)
	require.Equal(t, "/forecast.json", gotPath)
	require.Equal(t, "2", gotDays)
	require.Len(t, data.Forecast.Forecastday, 2)
	require.Equal(t, "2026-08-30", data.Forecast.Forecastday[0].Date)
	require.Equal(t, "2026-08-31", data.Forecast.Forecastday[1].Date)
}

func TestFetchCurrentErrorTiers(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		wantCode string
	}{
		{name: "not found", status: http.StatusNotFound, wantCode: apperrors.CodeLocationNotFound},
		{name: "bad request", status: http.StatusBadRequest, wantCode: apperrors.CodeInvalidLocation},
		{name: "server error", status: http.StatusInternalServerError, wantCode: apperrors.CodeWeatherProvider},
		{name: "rate limited", status: http.StatusForbidden, wantCode: apperrors.CodeWeatherProvider},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(`{"error":{"message":"nope"}}`))
			}))
			defer server.Close()

			client := NewClient(server.URL, "test-key")
			_, err := client.FetchCurrent(context.Background(), weather.CityLocation("Nowhere"))
			require.Error(t, err)
			require.True(t, apperrors.IsCode(err, tc.wantCode), "got %v", err)
			if tc.wantCode == apperrors.CodeWeatherProvider {
				require.Equal(t, tc.status, apperrors.UpstreamStatusOf(err))
			}
		})
	}
}

func TestFetchCurrentNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.FetchCurrent(context.Background(), weather.CityLocation("Berlin"))
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeServiceUnavailable), "got %v", err)
}

func TestFetchCurrentStrictDecode(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{name: "malformed json", payload: `{"location":`},
		{name: "unknown field", payload: `{"location": {"name": "Berlin"}, "current": {"temp_c": 20}, "surprise": true}`},
		{name: "missing location", payload: `{"current": {"temp_c": 20}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.payload))
			}))
			defer server.Close()

			client := NewClient(server.URL, "test-key")
			_, err := client.FetchCurrent(context.Background(), weather.CityLocation("Berlin"))
			require.Error(t, err)
			require.True(t, apperrors.IsCode(err, apperrors.CodeUpstreamData), "got %v", err)
		})
	}
}
