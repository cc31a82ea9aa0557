package weatherapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yanqian/what-to-wear/internal/domain/weather"
	apperrors "github.com/yanqian/what-to-wear/pkg/errors"
)

const requestTimeout = 10 * time.Second

// Client fetches weather data from a weatherapi.com compatible provider.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a provider client. A single attempt is made per call; the
// caller decides what a failure means.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// FetchCurrent retrieves present conditions for the location.
func (c *Client) FetchCurrent(ctx context.Context, loc weather.LocationQuery) (weather.CurrentWeather, error) {
	body, err := c.get(ctx, "/current.json", loc, 0)
	if err != nil {
		return weather.CurrentWeather{}, err
	}
	var out weather.CurrentWeather
	if err := decodeStrict(body, &out); err != nil {
		return weather.CurrentWeather{}, apperrors.Wrap(apperrors.CodeUpstreamData,
			"unexpected current weather payload", err)
	}
	if out.Location.Name == "" {
		return weather.CurrentWeather{}, apperrors.Wrap(apperrors.CodeUpstreamData,
			"current weather payload missing location", nil)
	}
	return out, nil
}

// FetchForecast retrieves a multi-day forecast for the location.
func (c *Client) FetchForecast(ctx context.Context, loc weather.LocationQuery, days int) (weather.ForecastWeather, error) {
	body, err := c.get(ctx, "/forecast.json", loc, days)
	if err != nil {
		return weather.ForecastWeather{}, err
	}
	var out weather.ForecastWeather
	if err := decodeStrict(body, &out); err != nil {
		return weather.ForecastWeather{}, apperrors.Wrap(apperrors.CodeUpstreamData,
			"unexpected forecast weather payload", err)
	}
	if out.Location.Name == "" || len(out.Forecast.Forecastday) == 0 {
		return weather.ForecastWeather{}, apperrors.Wrap(apperrors.CodeUpstreamData,
			"forecast weather payload missing location or days", nil)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, loc weather.LocationQuery, days int) ([]byte, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", loc.Query())
	if days > 0 {
		params.Set("days", strconv.Itoa(days))
	}
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "build weather request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeServiceUnavailable, "weather provider unreachable", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, apperrors.Wrap(apperrors.CodeLocationNotFound, "city or coordinates not found", nil)
	case resp.StatusCode == http.StatusBadRequest:
		return nil, apperrors.Wrap(apperrors.CodeInvalidLocation, "invalid city or coordinates", nil)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, apperrors.WrapStatus(apperrors.CodeWeatherProvider,
			fmt.Sprintf("weather provider error: status=%d body=%s", resp.StatusCode, string(payload)),
			resp.StatusCode, nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeServiceUnavailable, "read weather response", err)
	}
	return body, nil
}

// decodeStrict rejects payloads with unknown fields so provider contract
// drift surfaces as an upstream data error instead of silent zero values.
func decodeStrict(body []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}
