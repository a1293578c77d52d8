package ui

import (
	"math"
	"strings"
	"testing"

	"github.com/muurk/agri-advisor/internal/advisor"
)

func jaipurResult() *advisor.QueryResult {
	return &advisor.QueryResult{
		Response: "Pearl millet suits the region.\n\n- Sow after the first rain\n- Keep fields weeded",
		Weather: advisor.WeatherData{
			Temperature: 32,
			Condition:   "Sunny",
			Humidity:    45,
			WindSpeed:   12,
			FeelsLike:   35,
			UVIndex:     8,
		},
		Coordinates: advisor.Coordinates{Lat: 26.9124, Lon: 75.7873},
		Location:    "Jaipur, India",
	}
}

func TestRenderResult_Wide(t *testing.T) {
	out := RenderResult(jaipurResult(), ResultOptions{Width: 130, Zoom: 10})

	for _, want := range []string{
		"Agricultural Advice for Jaipur, India",
		"32°C",
		"Feels like 35°C",
		"Sow after the first rain",
		"Tile 10/727/432",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("wide result missing %q", want)
		}
	}

	if strings.Contains(out, FullTextCardTitle) {
		t.Errorf("wide result should not include the %q card", FullTextCardTitle)
	}
}

func TestRenderResult_Narrow(t *testing.T) {
	out := RenderResult(jaipurResult(), ResultOptions{Width: 80, Zoom: 10})

	if !strings.Contains(out, FullTextCardTitle) {
		t.Errorf("narrow result should include the %q card", FullTextCardTitle)
	}
	if !strings.Contains(out, "Feels like 35°C") {
		t.Error("narrow result missing feels-like temperature")
	}
}

func TestRenderResult_MissingValues(t *testing.T) {
	r := jaipurResult()
	r.Weather.Humidity = math.NaN()
	r.Coordinates = advisor.Coordinates{Lat: math.NaN(), Lon: math.NaN()}

	out := RenderResult(r, ResultOptions{Width: 80, Zoom: 10})

	if !strings.Contains(out, advisor.NotAvailable) {
		t.Errorf("result should show %q for missing values", advisor.NotAvailable)
	}
	if !strings.Contains(out, "Map unavailable") {
		t.Error("result should explain that the map is unavailable")
	}
}

func TestRenderResult_CopyHint(t *testing.T) {
	out := RenderResult(jaipurResult(), ResultOptions{Width: 130, Zoom: 10, CopyHint: "ctrl+y copy"})
	if !strings.Contains(out, "ctrl+y copy") {
		t.Error("result should show the copy hint")
	}

	out = RenderResult(jaipurResult(), ResultOptions{Width: 130, Zoom: 10, CopyHint: "ctrl+y copy", Copied: true})
	if !strings.Contains(out, CopiedLabel) {
		t.Errorf("result should show %q after copying", CopiedLabel)
	}
	if strings.Contains(out, "ctrl+y copy") {
		t.Error("copy hint should be replaced once copied")
	}
}

func TestRenderFullTextCard_Empty(t *testing.T) {
	out := RenderFullTextCard("   ", 60)
	if !strings.Contains(out, "No advice returned.") {
		t.Errorf("empty advice card = %q", out)
	}
}

func TestIsWide(t *testing.T) {
	if IsWide(WideLayoutWidth - 1) {
		t.Errorf("IsWide(%d) = true, want false", WideLayoutWidth-1)
	}
	if !IsWide(WideLayoutWidth) {
		t.Errorf("IsWide(%d) = false, want true", WideLayoutWidth)
	}
}
