package weather

import (
	"strconv"

	apperrors "github.com/yanqian/what-to-wear/pkg/errors"
)

// LocationQuery names a place either by city or by coordinates, never both.
// The zero value is invalid; construct through CityLocation, CoordsLocation
// or ParseLocation.
type LocationQuery struct {
	city     string
	lat, lon float64
	byCoords bool
}

// CityLocation builds a query for a named city.
func CityLocation(city string) LocationQuery {
	return LocationQuery{city: city}
}

// CoordsLocation builds a query for a latitude/longitude pair in decimal degrees.
func CoordsLocation(lat, lon float64) LocationQuery {
	return LocationQuery{lat: lat, lon: lon, byCoords: true}
}

// Query renders the provider's q parameter: the city name, or "lat,lon"
// comma-joined without spaces.
func (q LocationQuery) Query() string {
	if q.byCoords {
		return strconv.FormatFloat(q.lat, 'f', -1, 64) + "," + strconv.FormatFloat(q.lon, 'f', -1, 64)
	}
	return q.city
}

// ParseLocation validates the raw lat/lon/city query parameters and builds a
// LocationQuery. Exactly one of city or the (lat, lon) pair must be supplied.
func ParseLocation(lat, lon, city string) (LocationQuery, error) {
	if city == "" && (lat == "" || lon == "") {
		return LocationQuery{}, apperrors.Wrap(apperrors.CodeInvalidLocation,
			"either 'city' or ('lat', 'lon') must be provided", nil)
	}
	if city != "" && lat != "" && lon != "" {
		return LocationQuery{}, apperrors.Wrap(apperrors.CodeInvalidLocation,
			"provide either 'city' or ('lat', 'lon'), but not all three", nil)
	}
	if city != "" {
		return CityLocation(city), nil
	}
	latVal, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return LocationQuery{}, apperrors.Wrap(apperrors.CodeInvalidParameter,
			"lat must be a decimal number", err)
	}
	lonVal, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return LocationQuery{}, apperrors.Wrap(apperrors.CodeInvalidParameter,
			"lon must be a decimal number", err)
	}
	return CoordsLocation(latVal, lonVal), nil
}

const (
	minForecastDays = 1
	maxForecastDays = 10
)

// ParseDays validates the forecast day count. Absent means one day.
func ParseDays(raw string) (int, error) {
	if raw == "" {
		return minForecastDays, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.CodeInvalidParameter, "days must be an integer", err)
	}
	if days < minForecastDays || days > maxForecastDays {
		return 0, apperrors.Wrap(apperrors.CodeInvalidParameter, "days must be between 1 and 10", nil)
	}
	return days, nil
}
