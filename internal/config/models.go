package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/muurk/agri-advisor/internal/urls"
)

// CurrentVersion is the only config file version this build understands
const CurrentVersion = 1

// DefaultAPIURL is the backend used when nothing else is configured.
// Release builds may override it:
//
//	go build -ldflags="-X github.com/muurk/agri-advisor/internal/config.DefaultAPIURL=https://advisor.example.com"
var DefaultAPIURL = "http://localhost:5000"

// Default values for optional settings
const (
	DefaultMapZoom          = 10
	DefaultDiscoveryTimeout = 3 * time.Second
	DefaultServiceName      = "agri-advisor"
	MinMapZoom              = 0
	MaxMapZoom              = 19
)

// Config represents the entire user configuration file.
type Config struct {
	Version     int                `yaml:"version"`
	APIURL      string             `yaml:"api_url,omitempty"` // Backend base URL, e.g. "http://localhost:5000"
	Preferences *Preferences       `yaml:"preferences,omitempty"`
	Map         *MapSettings       `yaml:"map,omitempty"`
	Discovery   *DiscoverySettings `yaml:"discovery,omitempty"`
	Telemetry   *TelemetrySettings `yaml:"telemetry,omitempty"`
}

// Preferences holds form defaults.
type Preferences struct {
	DefaultLocation string `yaml:"default_location,omitempty"` // Prefilled into the location field
}

// MapSettings controls the map card.
type MapSettings struct {
	Zoom    int    `yaml:"zoom"`               // Slippy-map zoom level (1-19, 0 selects the default)
	TileURL string `yaml:"tile_url,omitempty"` // Tile template with {z}/{x}/{y}
}

// DiscoverySettings controls mDNS lookup of a backend on the LAN.
type DiscoverySettings struct {
	Enabled bool          `yaml:"enabled"`
	Timeout time.Duration `yaml:"timeout"`
}

// TelemetrySettings controls span export.
// Tracing is off while ZipkinURL is empty.
type TelemetrySettings struct {
	ZipkinURL   string `yaml:"zipkin_url,omitempty"`
	ServiceName string `yaml:"service_name,omitempty"`
}

// New creates a Config with default values.
func New() *Config {
	cfg := &Config{Version: CurrentVersion}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in missing sections and zero values
func (c *Config) applyDefaults() {
	if c.Preferences == nil {
		c.Preferences = &Preferences{}
	}
	if c.Map == nil {
		c.Map = &MapSettings{}
	}
	if c.Map.Zoom == 0 {
		c.Map.Zoom = DefaultMapZoom
	}
	if c.Map.TileURL == "" {
		c.Map.TileURL = urls.OSMTileTemplate
	}
	if c.Discovery == nil {
		c.Discovery = &DiscoverySettings{}
	}
	if c.Discovery.Timeout <= 0 {
		c.Discovery.Timeout = DefaultDiscoveryTimeout
	}
	if c.Telemetry == nil {
		c.Telemetry = &TelemetrySettings{}
	}
	if c.Telemetry.ServiceName == "" {
		c.Telemetry.ServiceName = DefaultServiceName
	}
}

// Validate checks values that would otherwise fail later in confusing ways.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion)
	}

	if c.Map != nil {
		if c.Map.Zoom < MinMapZoom || c.Map.Zoom > MaxMapZoom {
			return fmt.Errorf("map.zoom must be between %d and %d, got %d", MinMapZoom, MaxMapZoom, c.Map.Zoom)
		}
		if t := c.Map.TileURL; t != "" && !(strings.Contains(t, "{z}") && strings.Contains(t, "{x}") && strings.Contains(t, "{y}")) {
			return fmt.Errorf("map.tile_url must contain {z}, {x} and {y}: %q", t)
		}
	}

	return nil
}
