package weather

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/what-to-wear/pkg/errors"
)

func TestParseLocation(t *testing.T) {
	cases := []struct {
		name     string
		lat, lon string
		city     string
		wantErr  string
		wantQ    string
	}{
		{name: "city only", city: "Berlin", wantQ: "Berlin"},
		{name: "coords only", lat: "12.34", lon: "56.78", wantQ: "12.34,56.78"},
		{name: "negative coords", lat: "-33.87", lon: "151.21", wantQ: "-33.87,151.21"},
		{name: "nothing", wantErr: apperrors.CodeInvalidLocation},
		{name: "lat without lon", lat: "12.34", wantErr: apperrors.CodeInvalidLocation},
		{name: "lon without lat", lon: "56.78", wantErr: apperrors.CodeInvalidLocation},
		{name: "all three", lat: "12.34", lon: "56.78", city: "X", wantErr: apperrors.CodeInvalidLocation},
		{name: "city with stray lat", lat: "12.34", city: "Berlin", wantQ: "Berlin"},
		{name: "non numeric lat", lat: "north", lon: "56.78", wantErr: apperrors.CodeInvalidParameter},
		{name: "non numeric lon", lat: "12.34", lon: "east", wantErr: apperrors.CodeInvalidParameter},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			loc, err := ParseLocation(tc.lat, tc.lon, tc.city)
			if tc.wantErr != "" {
				require.Error(t, err)
				require.True(t, apperrors.IsCode(err, tc.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantQ, loc.Query())
		})
	}
}

func TestParseLocationMessages(t *testing.T) {
	_, err := ParseLocation("", "", "")
	require.EqualError(t, err, "either 'city' or ('lat', 'lon') must be provided")

	_, err = ParseLocation("12.34", "56.78", "Berlin")
	require.EqualError(t, err, "provide either 'city' or ('lat', 'lon'), but not all three")
}

func TestParseDays(t *testing.T) {
	days, err := ParseDays("")
	require.NoError(t, err)
	require.Equal(t, 1, days)

	for _, valid := range []string{"1", "5", "10"} {
		days, err := ParseDays(valid)
		require.NoError(t, err)
		require.GreaterOrEqual(t, days, 1)
		require.LessOrEqual(t, days, 10)
	}

	for _, invalid := range []string{"0", "11", "-1", "100", "two", "1.5"} {
		_, err := ParseDays(invalid)
		require.Error(t, err, "days=%s", invalid)
		require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidParameter))
	}
}
