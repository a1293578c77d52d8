package render

import (
	"strings"

	"github.com/muurk/agri-advisor/internal/advisor"
)

// Icon is the weather symbol chosen from a condition description
type Icon int

const (
	IconSun Icon = iota
	IconRain
	IconSnow
	IconCloud
)

// String returns the icon name
func (i Icon) String() string {
	switch i {
	case IconRain:
		return "rain"
	case IconSnow:
		return "snow"
	case IconCloud:
		return "cloud"
	default:
		return "sun"
	}
}

// Glyph returns a single-cell symbol for the icon
func (i Icon) Glyph() string {
	switch i {
	case IconRain:
		return "☂"
	case IconSnow:
		return "❄"
	case IconCloud:
		return "☁"
	default:
		return "☀"
	}
}

// ClassifyCondition picks an icon by case-insensitive substring match.
// Rain (or drizzle) wins over snow, which wins over cloud; anything else,
// including an empty condition, is sun.
func ClassifyCondition(condition string) Icon {
	c := strings.ToLower(condition)
	switch {
	case strings.Contains(c, "rain") || strings.Contains(c, "drizzle"):
		return IconRain
	case strings.Contains(c, "snow"):
		return IconSnow
	case strings.Contains(c, "cloud"):
		return IconCloud
	default:
		return IconSun
	}
}

// Metric is one small card in the weather view
type Metric struct {
	Label    string
	Value    string
	Subtitle string
}

// WeatherView is the display model for the weather card
type WeatherView struct {
	Icon      Icon
	Headline  string // "32°C"
	Condition string
	FeelsLike string // "Feels like 35°C"
	Metrics   []Metric
	Notice    string
}

// WeatherNotice is shown under the metric cards
const WeatherNotice = "Weather conditions are factored into your agricultural recommendations"

// Weather builds the weather view
func Weather(w advisor.WeatherData) WeatherView {
	feelsLike := "Feels like " + advisor.FormatMeasure(w.FeelsLike, "°C")

	return WeatherView{
		Icon:      ClassifyCondition(w.Condition),
		Headline:  advisor.FormatMeasure(w.Temperature, "°C"),
		Condition: w.DisplayCondition(),
		FeelsLike: feelsLike,
		Metrics: []Metric{
			{Label: "Temperature", Value: advisor.FormatMeasure(w.Temperature, "°C"), Subtitle: feelsLike},
			{Label: "Humidity", Value: advisor.FormatMeasure(w.Humidity, "%"), Subtitle: "Relative humidity"},
			{Label: "Wind Speed", Value: advisor.FormatMeasure(w.WindSpeed, " kph"), Subtitle: "Current wind"},
			{Label: "UV Index", Value: advisor.FormatNumber(w.UVIndex), Subtitle: "Sun exposure level"},
		},
		Notice: WeatherNotice,
	}
}
