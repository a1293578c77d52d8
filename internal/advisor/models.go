package advisor

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// QueryInput is the payload sent to POST /api/ask.
// Use NewQueryInput to build one; it trims and validates both fields.
type QueryInput struct {
	Location string `json:"location"`
	Query    string `json:"query"`
}

// WeatherData is the current weather snapshot for the queried location.
//
// Numeric fields that the backend omits or sends as something other than a
// number (or numeric string) decode to NaN, so the renderer can show "N/A"
// instead of failing the whole result.
type WeatherData struct {
	Temperature float64 `json:"temperature"` // °C
	Condition   string  `json:"condition"`   // Free text, e.g. "Partly cloudy"
	Humidity    float64 `json:"humidity"`    // Percent
	WindSpeed   float64 `json:"windSpeed"`   // kph
	FeelsLike   float64 `json:"feelsLike"`   // °C
	UVIndex     float64 `json:"uvIndex"`
}

// Coordinates is the geocoded position of the queried location.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// QueryResult is the bundled weather, coordinates and advice returned by
// the backend for one question.
type QueryResult struct {
	Response    string      `json:"response"`
	Weather     WeatherData `json:"weather"`
	Coordinates Coordinates `json:"coordinates"`
	Location    string      `json:"location"`
}

// errorPayload is the body shape the backend uses to report failures.
type errorPayload struct {
	Error string `json:"error"`
}

// Valid reports whether both values are finite and inside the WGS84 ranges.
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lon, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// UnmarshalJSON decodes weather fields leniently. A value that is not an
// object leaves every field missing.
func (w *WeatherData) UnmarshalJSON(data []byte) error {
	raw := rawObject(data)

	w.Temperature = parseNumber(raw["temperature"])
	w.Condition = parseString(raw["condition"])
	w.Humidity = parseNumber(raw["humidity"])
	w.WindSpeed = parseNumber(raw["windSpeed"])
	w.FeelsLike = parseNumber(raw["feelsLike"])
	w.UVIndex = parseNumber(raw["uvIndex"])
	return nil
}

// UnmarshalJSON decodes coordinates leniently (see WeatherData).
func (c *Coordinates) UnmarshalJSON(data []byte) error {
	raw := rawObject(data)

	c.Lat = parseNumber(raw["lat"])
	c.Lon = parseNumber(raw["lon"])
	return nil
}

// newQueryResult returns a result whose numbers are all missing. Decoding
// into it keeps NaN for any object the backend leaves out.
func newQueryResult() QueryResult {
	nan := math.NaN()
	return QueryResult{
		Weather: WeatherData{
			Temperature: nan,
			Humidity:    nan,
			WindSpeed:   nan,
			FeelsLike:   nan,
			UVIndex:     nan,
		},
		Coordinates: Coordinates{Lat: nan, Lon: nan},
	}
}

// rawObject splits a JSON object into its fields. Anything else (a string,
// an array, null) yields no fields.
func rawObject(data []byte) map[string]json.RawMessage {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	return raw
}

// MarshalJSON writes missing values as null.
func (w WeatherData) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Temperature *float64 `json:"temperature"`
		Condition   string   `json:"condition"`
		Humidity    *float64 `json:"humidity"`
		WindSpeed   *float64 `json:"windSpeed"`
		FeelsLike   *float64 `json:"feelsLike"`
		UVIndex     *float64 `json:"uvIndex"`
	}{
		Temperature: finite(w.Temperature),
		Condition:   w.Condition,
		Humidity:    finite(w.Humidity),
		WindSpeed:   finite(w.WindSpeed),
		FeelsLike:   finite(w.FeelsLike),
		UVIndex:     finite(w.UVIndex),
	})
}

// MarshalJSON writes missing values as null.
func (c Coordinates) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Lat *float64 `json:"lat"`
		Lon *float64 `json:"lon"`
	}{finite(c.Lat), finite(c.Lon)})
}

// finite returns nil for NaN and infinities, which JSON cannot carry
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// parseNumber accepts JSON numbers and numeric strings. Anything else,
// including a missing field, yields NaN.
func parseNumber(raw json.RawMessage) float64 {
	// null unmarshals into a float64 without error
	if len(raw) == 0 || strings.TrimSpace(string(raw)) == "null" {
		return math.NaN()
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return v
		}
	}

	return math.NaN()
}

// parseString returns the string value, or the raw JSON text for other
// scalar types (a condition sent as a number still displays something).
func parseString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	text := strings.TrimSpace(string(raw))
	if text == "null" {
		return ""
	}
	return text
}
