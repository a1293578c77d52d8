package render

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/muurk/agri-advisor/internal/advisor"
)

func TestTileXY(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		zoom     int
		wantX    int
		wantY    int
	}{
		{"zoom 0", 26.9124, 75.7873, 0, 0, 0},
		{"origin zoom 1", 0, 0, 1, 1, 1},
		{"45N 90W zoom 2", 45, -90, 2, 1, 1},
		{"Jaipur zoom 10", 26.9124, 75.7873, 10, 727, 432},
		{"north pole clamps", 90, 0, 3, 4, 0},
		{"antimeridian clamps", 0, 180, 2, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := TileXY(tt.lat, tt.lon, tt.zoom)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("TileXY(%v, %v, %d) = (%d, %d), want (%d, %d)", tt.lat, tt.lon, tt.zoom, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestTileURL(t *testing.T) {
	got := TileURL("https://tile.openstreetmap.org/{z}/{x}/{y}.png", Tile{Z: 10, X: 727, Y: 432})
	if got != "https://tile.openstreetmap.org/10/727/432.png" {
		t.Errorf("TileURL() = %s", got)
	}
}

func TestMap(t *testing.T) {
	view := Map("Jaipur, India", advisor.Coordinates{Lat: 26.9124, Lon: 75.7873}, 10, "", 21, 9)

	if !view.Valid {
		t.Fatal("Map() should be valid")
	}
	if view.Coordinates != "26.9124°, 75.7873°" {
		t.Errorf("Coordinates = %q", view.Coordinates)
	}
	if view.Tile != (Tile{Z: 10, X: 727, Y: 432}) {
		t.Errorf("Tile = %+v", view.Tile)
	}
	if !strings.HasPrefix(view.TileURL, "https://tile.openstreetmap.org/10/") {
		t.Errorf("TileURL = %s", view.TileURL)
	}
	if !strings.Contains(view.BrowseURL, "mlat=26.9124&mlon=75.7873") {
		t.Errorf("BrowseURL = %s", view.BrowseURL)
	}
	if view.Attribution != "© OpenStreetMap contributors" {
		t.Errorf("Attribution = %q", view.Attribution)
	}
	if len(view.Grid) != 9 {
		t.Fatalf("len(Grid) = %d, want 9", len(view.Grid))
	}
}

func TestMap_Invalid(t *testing.T) {
	view := Map("", advisor.Coordinates{Lat: math.NaN(), Lon: 75}, 10, "", 21, 9)

	if view.Valid {
		t.Error("Map() with NaN latitude should be invalid")
	}
	if view.Coordinates != "N/A" || view.Location != "N/A" {
		t.Errorf("view = %+v, want N/A fields", view)
	}
	if view.TileURL != "" || view.BrowseURL != "" || view.Grid != nil {
		t.Error("invalid map should have no links or grid")
	}
	if view.Attribution == "" {
		t.Error("attribution is always shown")
	}
}

func TestMarkerGrid(t *testing.T) {
	grid := MarkerGrid(advisor.Coordinates{Lat: 90, Lon: -180}, 11, 5)

	if len(grid) != 5 {
		t.Fatalf("len(grid) = %d, want 5", len(grid))
	}
	for i, row := range grid {
		if n := utf8.RuneCountInString(row); n != 11 {
			t.Errorf("row %d has %d runes, want 11", i, n)
		}
	}
	if r, _ := utf8.DecodeRuneInString(grid[0]); r != gridMarker {
		t.Errorf("marker should be top-left, row 0 = %q", grid[0])
	}
	if !strings.ContainsRune(grid[2], gridCross) {
		t.Errorf("middle row should hold the origin cross, got %q", grid[2])
	}
	if strings.Count(strings.Join(grid, ""), string(gridMarker)) != 1 {
		t.Error("grid should contain exactly one marker")
	}

	if MarkerGrid(advisor.Coordinates{}, 2, 2) != nil {
		t.Error("grids smaller than 3x3 are not drawn")
	}
}
