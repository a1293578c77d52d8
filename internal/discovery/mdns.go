package discovery

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"

	"github.com/muurk/agri-advisor/internal/logging"
)

const (
	// ServiceType is the mDNS service type advertised by Agri-Advisor backends
	ServiceType = "_agri-advisor._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	// DefaultScanTimeout is the default timeout for backend discovery
	DefaultScanTimeout = 3 * time.Second

	// DefaultPort is used when an advertisement carries no port
	DefaultPort = 5000
)

// ErrNoBackend is returned by First when nothing answered before the timeout
var ErrNoBackend = errors.New("no Agri-Advisor backend found on the local network")

// Scanner handles mDNS backend discovery
type Scanner struct {
	// Timeout is the maximum time to wait for advertisements
	Timeout time.Duration

	// browse starts an mDNS browse; replaced in tests
	browse func(ctx context.Context, entries chan<- *zeroconf.ServiceEntry) error
}

// NewScanner creates a new mDNS scanner with default settings
func NewScanner() *Scanner {
	return &Scanner{
		Timeout: DefaultScanTimeout,
		browse:  browseZeroconf,
	}
}

func browseZeroconf(ctx context.Context, entries chan<- *zeroconf.ServiceEntry) error {
	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return fmt.Errorf("failed to create mDNS resolver: %w", err)
	}
	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return fmt.Errorf("failed to browse for mDNS services: %w", err)
	}
	return nil
}

// Scan collects every backend that answers before the timeout
func (s *Scanner) Scan(ctx context.Context) ([]*Backend, error) {
	return s.collect(ctx, false)
}

// First returns the first backend that answers, or ErrNoBackend
func (s *Scanner) First(ctx context.Context) (*Backend, error) {
	backends, err := s.collect(ctx, true)
	if err != nil {
		return nil, err
	}
	if len(backends) == 0 {
		return nil, ErrNoBackend
	}
	return backends[0], nil
}

// collect browses until the timeout, or until the first backend when
// firstOnly is set
func (s *Scanner) collect(ctx context.Context, firstOnly bool) ([]*Backend, error) {
	// Create a context with timeout
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultScanTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Channel to receive service entries
	entries := make(chan *zeroconf.ServiceEntry)

	var (
		mu       sync.Mutex
		backends []*Backend
		seen     = make(map[string]bool)
	)

	// Collect entries in a goroutine
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case entry, ok := <-entries:
				if !ok {
					return
				}
				backend := parseServiceEntry(entry)
				if backend == nil {
					// Advertisement without an address
					continue
				}

				// The same backend is announced once per interface
				mu.Lock()
				key := backend.Name + "|" + backend.BaseURL()
				if !seen[key] {
					seen[key] = true
					backends = append(backends, backend)
					logging.LogDiscovery(backend.Name, backend.BaseURL())
				}
				mu.Unlock()

				// One answer is enough; stop browsing
				if firstOnly {
					cancel()
					return
				}
			}
		}
	}()

	// Start browsing for backend services
	browse := s.browse
	if browse == nil {
		browse = browseZeroconf
	}
	if err := browse(ctx, entries); err != nil {
		return nil, err
	}

	// Wait for context to complete (timeout, cancellation or first answer)
	<-ctx.Done()

	mu.Lock()
	defer mu.Unlock()
	return append([]*Backend(nil), backends...), nil
}

// parseServiceEntry converts a zeroconf service entry to a Backend.
// Returns nil if the entry carries no address.
func parseServiceEntry(entry *zeroconf.ServiceEntry) *Backend {
	if entry == nil {
		return nil
	}

	// Prefer IPv4
	var ip string
	if len(entry.AddrIPv4) > 0 {
		ip = entry.AddrIPv4[0].String()
	} else if len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}
	if ip == "" {
		return nil
	}

	// Get port (default to 5000 if not specified)
	port := entry.Port
	if port == 0 {
		port = DefaultPort
	}

	// Parse TXT records into metadata
	metadata := make(map[string]string)
	for _, txt := range entry.Text {
		// TXT records are in "key=value" format; a bare key has no value
		k, v, _ := strings.Cut(txt, "=")
		metadata[k] = v
	}

	// Fall back to the host name when the instance is unnamed
	name := entry.Instance
	if name == "" {
		name = strings.TrimSuffix(entry.HostName, ".")
	}

	return &Backend{
		Name:         name,
		Hostname:     entry.HostName,
		IP:           ip,
		Port:         port,
		Path:         metadata["path"],
		Metadata:     metadata,
		DiscoveredAt: time.Now(),
	}
}

// Discover scans for backends with the given timeout
func Discover(ctx context.Context, timeout time.Duration) ([]*Backend, error) {
	scanner := NewScanner()
	scanner.Timeout = timeout
	return scanner.Scan(ctx)
}

// FindBackend returns the first backend found within timeout
func FindBackend(ctx context.Context, timeout time.Duration) (*Backend, error) {
	scanner := NewScanner()
	scanner.Timeout = timeout
	return scanner.First(ctx)
}
