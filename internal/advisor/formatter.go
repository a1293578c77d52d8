package advisor

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NotAvailable is displayed in place of a missing or non-numeric value
const NotAvailable = "N/A"

// FormatNumber returns the shortest decimal form of v, or "N/A" when v is
// NaN or infinite.
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotAvailable
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatMeasure returns v followed by unit, or "N/A" without the unit.
func FormatMeasure(v float64, unit string) string {
	s := FormatNumber(v)
	if s == NotAvailable {
		return s
	}
	return s + unit
}

// Format returns the coordinates as "26.9124°, 75.7873°"
func (c Coordinates) Format() string {
	if !c.Valid() {
		return NotAvailable
	}
	return fmt.Sprintf("%.4f°, %.4f°", c.Lat, c.Lon)
}

// DisplayCondition returns the condition text, or "N/A" when empty
func (w WeatherData) DisplayCondition() string {
	if strings.TrimSpace(w.Condition) == "" {
		return NotAvailable
	}
	return w.Condition
}

// Summary returns a one-line summary of the result
func (r *QueryResult) Summary() string {
	return fmt.Sprintf("%s: %s, %s", r.DisplayLocation(), r.Weather.DisplayCondition(),
		FormatMeasure(r.Weather.Temperature, "°C"))
}

// DisplayLocation returns the resolved location name, or "N/A"
func (r *QueryResult) DisplayLocation() string {
	if strings.TrimSpace(r.Location) == "" {
		return NotAvailable
	}
	return r.Location
}

// FormatWeather returns a formatted string with the weather snapshot
func (r *QueryResult) FormatWeather() string {
	var b strings.Builder
	w := r.Weather

	b.WriteString("=== Current Weather ===\n")
	b.WriteString(fmt.Sprintf("Condition:   %s\n", w.DisplayCondition()))
	b.WriteString(fmt.Sprintf("Temperature: %s\n", FormatMeasure(w.Temperature, "°C")))
	b.WriteString(fmt.Sprintf("Feels Like:  %s\n", FormatMeasure(w.FeelsLike, "°C")))
	b.WriteString(fmt.Sprintf("Humidity:    %s\n", FormatMeasure(w.Humidity, "%")))
	b.WriteString(fmt.Sprintf("Wind Speed:  %s\n", FormatMeasure(w.WindSpeed, " kph")))
	b.WriteString(fmt.Sprintf("UV Index:    %s\n", FormatNumber(w.UVIndex)))

	return b.String()
}

// FormatLocation returns a formatted string with the resolved location
func (r *QueryResult) FormatLocation() string {
	var b strings.Builder

	b.WriteString("=== Location ===\n")
	b.WriteString(fmt.Sprintf("Name:        %s\n", r.DisplayLocation()))
	b.WriteString(fmt.Sprintf("Coordinates: %s\n", r.Coordinates.Format()))

	return b.String()
}

// FormatCompact returns a compact multi-line format suitable for terminal display
func (r *QueryResult) FormatCompact() string {
	var b strings.Builder
	w := r.Weather

	b.WriteString(fmt.Sprintf("Location: %s (%s)\n", r.DisplayLocation(), r.Coordinates.Format()))
	b.WriteString(fmt.Sprintf("Weather:  %s, %s (feels like %s), humidity %s, wind %s, UV %s\n",
		w.DisplayCondition(),
		FormatMeasure(w.Temperature, "°C"),
		FormatMeasure(w.FeelsLike, "°C"),
		FormatMeasure(w.Humidity, "%"),
		FormatMeasure(w.WindSpeed, " kph"),
		FormatNumber(w.UVIndex)))
	b.WriteString(fmt.Sprintf("Advice:   %s\n", firstLine(r.Response)))

	return b.String()
}

// FormatDetailed returns the full result, including the complete advice text
func (r *QueryResult) FormatDetailed() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("╔════════════════════════════════════════════════════════════════╗\n")
	b.WriteString("║                  AGRICULTURAL RECOMMENDATION                   ║\n")
	b.WriteString("╚════════════════════════════════════════════════════════════════╝\n")
	b.WriteString("\n")

	b.WriteString(r.FormatLocation())
	b.WriteString("\n")
	b.WriteString(r.FormatWeather())
	b.WriteString("\n")
	b.WriteString("=== Recommendation ===\n")
	if strings.TrimSpace(r.Response) == "" {
		b.WriteString("(no advice returned)\n")
	} else {
		b.WriteString(strings.TrimRight(r.Response, "\n"))
		b.WriteString("\n")
	}

	return b.String()
}

func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return "(no advice returned)"
}
