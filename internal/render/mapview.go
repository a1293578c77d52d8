package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/muurk/agri-advisor/internal/advisor"
	"github.com/muurk/agri-advisor/internal/urls"
)

// Web Mercator cannot represent the poles
const maxMercatorLat = 85.05112878

// Grid characters
const (
	gridEmpty    = '·'
	gridEquator  = '─'
	gridMeridian = '│'
	gridCross    = '┼'
	gridMarker   = '◉'
)

// Tile is a slippy-map tile address
type Tile struct {
	Z, X, Y int
}

// MapView is the display model for the map card
type MapView struct {
	Location    string
	Coordinates string // "26.9124°, 75.7873°" or "N/A"
	Valid       bool
	Grid        []string
	Tile        Tile
	TileURL     string
	BrowseURL   string
	Attribution string
}

// Map builds the map view for a location. An invalid position yields an
// empty grid and no links.
func Map(location string, c advisor.Coordinates, zoom int, tileTemplate string, gridWidth, gridHeight int) MapView {
	if strings.TrimSpace(location) == "" {
		location = advisor.NotAvailable
	}

	view := MapView{
		Location:    location,
		Coordinates: c.Format(),
		Valid:       c.Valid(),
		Attribution: urls.OSMAttribution,
	}

	if !view.Valid {
		return view
	}

	if tileTemplate == "" {
		tileTemplate = urls.OSMTileTemplate
	}

	x, y := TileXY(c.Lat, c.Lon, zoom)
	view.Tile = Tile{Z: clampZoom(zoom), X: x, Y: y}
	view.TileURL = TileURL(tileTemplate, view.Tile)
	view.BrowseURL = BrowseURL(c, zoom)
	view.Grid = MarkerGrid(c, gridWidth, gridHeight)

	return view
}

// TileXY returns the slippy-map tile containing a point at the given zoom.
// Latitudes beyond the Mercator limit are clamped.
func TileXY(lat, lon float64, zoom int) (int, int) {
	zoom = clampZoom(zoom)
	n := math.Exp2(float64(zoom))

	lat = math.Max(-maxMercatorLat, math.Min(maxMercatorLat, lat))
	latRad := lat * math.Pi / 180

	x := int(math.Floor((lon + 180) / 360 * n))
	y := int(math.Floor((1 - math.Asinh(math.Tan(latRad))/math.Pi) / 2 * n))

	maxIndex := int(n) - 1
	return clampInt(x, 0, maxIndex), clampInt(y, 0, maxIndex)
}

// TileURL fills {z}, {x} and {y} in a tile template
func TileURL(template string, t Tile) string {
	r := strings.NewReplacer(
		"{z}", strconv.Itoa(t.Z),
		"{x}", strconv.Itoa(t.X),
		"{y}", strconv.Itoa(t.Y),
	)
	return r.Replace(template)
}

// BrowseURL returns an openstreetmap.org link with a marker on c
func BrowseURL(c advisor.Coordinates, zoom int) string {
	return fmt.Sprintf(urls.OSMBrowseTemplate, c.Lat, c.Lon, clampZoom(zoom), c.Lat, c.Lon)
}

// MarkerGrid draws a small equirectangular world grid with the equator,
// the prime meridian and a marker at c. Each row is width runes.
func MarkerGrid(c advisor.Coordinates, width, height int) []string {
	if width < 3 || height < 3 {
		return nil
	}

	cells := make([][]rune, height)
	equatorRow := (height - 1) / 2
	meridianCol := (width - 1) / 2
	for r := range cells {
		cells[r] = make([]rune, width)
		for col := range cells[r] {
			switch {
			case r == equatorRow && col == meridianCol:
				cells[r][col] = gridCross
			case r == equatorRow:
				cells[r][col] = gridEquator
			case col == meridianCol:
				cells[r][col] = gridMeridian
			default:
				cells[r][col] = gridEmpty
			}
		}
	}

	if c.Valid() {
		row, col := gridPosition(c, width, height)
		cells[row][col] = gridMarker
	}

	rows := make([]string, height)
	for r := range cells {
		rows[r] = string(cells[r])
	}
	return rows
}

// gridPosition maps a point to a cell of a width x height grid
func gridPosition(c advisor.Coordinates, width, height int) (int, int) {
	col := int(math.Round((c.Lon + 180) / 360 * float64(width-1)))
	row := int(math.Round((90 - c.Lat) / 180 * float64(height-1)))
	return clampInt(row, 0, height-1), clampInt(col, 0, width-1)
}

func clampZoom(zoom int) int {
	return clampInt(zoom, 0, 19)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
