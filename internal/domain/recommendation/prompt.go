package recommendation

import (
	"fmt"
	"strings"

	"github.com/yanqian/what-to-wear/internal/domain/weather"
)

// currentPrompt renders the instruction sent to the LLM for one current
// weather snapshot.
func currentPrompt(data weather.CurrentWeather) string {
	timeOfDay := "Evening"
	if data.Current.IsDay != 0 {
		timeOfDay = "Daytime"
	}
	return fmt.Sprintf(`Based on the following weather conditions, provide a direct clothing recommendation, without repeating the details:
- Temperature: %.1f°C
- Feels Like: %.1f°C
- Pressure: %.1f mbar
- Humidity: %d%%
- Wind Speed: %.1f km/h
- Precipitation: %.1f mm
- Time of Day: %s

Only give the recommended clothing choices concisely.`,
		data.Current.TempC,
		data.Current.FeelslikeC,
		data.Current.PressureMb,
		data.Current.Humidity,
		data.Current.WindKph,
		data.Current.PrecipMm,
		timeOfDay,
	)
}

// forecastPrompt concatenates one block per forecast day, preserving the
// provider's day order.
func forecastPrompt(data weather.ForecastWeather) string {
	var b strings.Builder
	b.WriteString("Based on the following weather conditions for each day, provide a direct clothing recommendation for each day, without repeating the details. Only give the recommended clothing choices concisely:")
	for _, day := range data.Forecast.Forecastday {
		b.WriteString(fmt.Sprintf(" .Day: %s: ", day.Date))
		b.WriteString(dayPrompt(day.Day))
	}
	return b.String()
}

func dayPrompt(day weather.Day) string {
	return fmt.Sprintf(`- Average Temperature: %.1f°C
- Max Temperature: %.1f°C
- Min Temperature: %.1f°C
- Average Humidity: %d%%
- Total Precipitation: %.1f mm
- Chance of rain: %d%%
- UV radiation levels: %.1f`,
		day.AvgtempC,
		day.MaxtempC,
		day.MintempC,
		day.Avghumidity,
		day.TotalprecipMm,
		day.DailyChanceOfRain,
		day.UV,
	)
}
