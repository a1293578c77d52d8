package discovery

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// Backend represents an Agri-Advisor backend advertised on the local network
type Backend struct {
	// Name is the mDNS instance name (e.g., "Farm Office Advisor")
	Name string

	// Hostname is the mDNS hostname (e.g., "advisor.local.")
	Hostname string

	// IP is the address the backend was advertised on, IPv4 preferred
	IP string

	// Port is the HTTP port (typically 5000)
	Port int

	// Path is the URL prefix from the "path=" TXT record (e.g., "/advisor")
	Path string

	// Metadata contains the mDNS TXT record data
	// Common fields: "path=/", "version=1.2.0"
	Metadata map[string]string

	// DiscoveredAt is when the backend was discovered
	DiscoveredAt time.Time
}

// String returns a human-readable string representation of the backend
func (b *Backend) String() string {
	return fmt.Sprintf("Agri-Advisor backend %q at %s", b.Name, b.BaseURL())
}

// BaseURL returns the HTTP base URL for the backend, including the TXT path
func (b *Backend) BaseURL() string {
	base := "http://" + net.JoinHostPort(b.IP, strconv.Itoa(b.Port))
	path := strings.Trim(b.Path, "/")
	if path == "" {
		return base
	}
	return base + "/" + path
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (b *Backend) GetMetadata(key string) string {
	if b.Metadata == nil {
		return ""
	}
	return b.Metadata[key]
}
