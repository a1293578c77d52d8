package discovery

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/grandcat/zeroconf"
)

func TestParseServiceEntry(t *testing.T) {
	tests := []struct {
		name     string
		entry    *zeroconf.ServiceEntry
		wantNil  bool
		wantName string
		wantIP   string
		wantPort int
		wantURL  string
	}{
		{
			name: "backend with IPv4",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "Farm Office"},
				HostName:      "advisor.local.",
				Port:          5000,
				AddrIPv4:      []net.IP{net.ParseIP("192.168.4.16")},
				Text:          []string{"path=/", "version=1.2.0"},
			},
			wantName: "Farm Office",
			wantIP:   "192.168.4.16",
			wantPort: 5000,
			wantURL:  "http://192.168.4.16:5000",
		},
		{
			name: "backend with path prefix",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "Co-op"},
				HostName:      "coop.local.",
				Port:          80,
				AddrIPv4:      []net.IP{net.ParseIP("10.0.0.5")},
				Text:          []string{"path=/advisor"},
			},
			wantName: "Co-op",
			wantIP:   "10.0.0.5",
			wantPort: 80,
			wantURL:  "http://10.0.0.5:80/advisor",
		},
		{
			name: "no port specified (should default to 5000)",
			entry: &zeroconf.ServiceEntry{
				HostName: "advisor.local.",
				AddrIPv4: []net.IP{net.ParseIP("172.16.0.1")},
			},
			wantName: "advisor.local",
			wantIP:   "172.16.0.1",
			wantPort: DefaultPort,
			wantURL:  "http://172.16.0.1:5000",
		},
		{
			name: "IPv6 only backend",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "Lab"},
				Port:          5000,
				AddrIPv6:      []net.IP{net.ParseIP("fe80::1")},
			},
			wantName: "Lab",
			wantIP:   "fe80::1",
			wantPort: 5000,
			wantURL:  "http://[fe80::1]:5000",
		},
		{
			name: "both IPv4 and IPv6 (should prefer IPv4)",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "Barn"},
				Port:          5000,
				AddrIPv4:      []net.IP{net.ParseIP("192.168.1.50")},
				AddrIPv6:      []net.IP{net.ParseIP("fe80::2")},
			},
			wantName: "Barn",
			wantIP:   "192.168.1.50",
			wantPort: 5000,
			wantURL:  "http://192.168.1.50:5000",
		},
		{
			name: "no IP address",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "Ghost"},
				Port:          5000,
			},
			wantNil: true,
		},
		{
			name:    "nil entry",
			entry:   nil,
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := parseServiceEntry(tt.entry)

			if tt.wantNil {
				if backend != nil {
					t.Errorf("parseServiceEntry() = %v, want nil", backend)
				}
				return
			}

			if backend == nil {
				t.Fatal("parseServiceEntry() = nil, want non-nil backend")
			}
			if backend.Name != tt.wantName {
				t.Errorf("backend.Name = %v, want %v", backend.Name, tt.wantName)
			}
			if backend.IP != tt.wantIP {
				t.Errorf("backend.IP = %v, want %v", backend.IP, tt.wantIP)
			}
			if backend.Port != tt.wantPort {
				t.Errorf("backend.Port = %v, want %v", backend.Port, tt.wantPort)
			}
			if backend.BaseURL() != tt.wantURL {
				t.Errorf("backend.BaseURL() = %v, want %v", backend.BaseURL(), tt.wantURL)
			}
			if time.Since(backend.DiscoveredAt) > time.Second {
				t.Errorf("backend.DiscoveredAt is not recent: %v", backend.DiscoveredAt)
			}
		})
	}
}

func TestParseServiceEntry_Metadata(t *testing.T) {
	entry := &zeroconf.ServiceEntry{
		ServiceRecord: zeroconf.ServiceRecord{Instance: "Farm Office"},
		Port:          5000,
		AddrIPv4:      []net.IP{net.ParseIP("192.168.4.16")},
		Text:          []string{"path=/", "flag", "version=1.2.0", "note=a=b"},
	}

	backend := parseServiceEntry(entry)
	if backend == nil {
		t.Fatal("parseServiceEntry() = nil, want backend")
	}

	expectedMetadata := map[string]string{
		"path":    "/",
		"flag":    "", // Key without value
		"version": "1.2.0",
		"note":    "a=b",
	}

	if len(backend.Metadata) != len(expectedMetadata) {
		t.Errorf("backend.Metadata has %d entries, want %d", len(backend.Metadata), len(expectedMetadata))
	}
	for key, expectedValue := range expectedMetadata {
		if actualValue, ok := backend.Metadata[key]; !ok {
			t.Errorf("backend.Metadata missing key %q", key)
		} else if actualValue != expectedValue {
			t.Errorf("backend.Metadata[%q] = %q, want %q", key, actualValue, expectedValue)
		}
	}
}

func TestNewScanner(t *testing.T) {
	scanner := NewScanner()

	if scanner.Timeout != DefaultScanTimeout {
		t.Errorf("scanner.Timeout = %v, want %v", scanner.Timeout, DefaultScanTimeout)
	}
	if scanner.browse == nil {
		t.Error("scanner.browse should default to zeroconf")
	}
}

// fakeBrowse returns a browse function that advertises the given entries
func fakeBrowse(entries ...*zeroconf.ServiceEntry) func(context.Context, chan<- *zeroconf.ServiceEntry) error {
	return func(ctx context.Context, out chan<- *zeroconf.ServiceEntry) error {
		go func() {
			for _, e := range entries {
				select {
				case out <- e:
				case <-ctx.Done():
					return
				}
			}
		}()
		return nil
	}
}

func testEntry(instance, ip string) *zeroconf.ServiceEntry {
	return &zeroconf.ServiceEntry{
		ServiceRecord: zeroconf.ServiceRecord{Instance: instance},
		Port:          5000,
		AddrIPv4:      []net.IP{net.ParseIP(ip)},
	}
}

func TestScanner_Scan(t *testing.T) {
	scanner := &Scanner{
		Timeout: 100 * time.Millisecond,
		browse: fakeBrowse(
			testEntry("Farm Office", "192.168.4.16"),
			testEntry("Farm Office", "192.168.4.16"), // Re-announcement
			&zeroconf.ServiceEntry{ServiceRecord: zeroconf.ServiceRecord{Instance: "No address"}},
			testEntry("Co-op", "192.168.4.20"),
		),
	}

	backends, err := scanner.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(backends) != 2 {
		t.Fatalf("Scan() found %d backends, want 2", len(backends))
	}
	if backends[0].Name != "Farm Office" || backends[1].Name != "Co-op" {
		t.Errorf("Scan() = [%s, %s], want [Farm Office, Co-op]", backends[0].Name, backends[1].Name)
	}
}

func TestScanner_First(t *testing.T) {
	scanner := &Scanner{
		Timeout: 5 * time.Second,
		browse:  fakeBrowse(testEntry("Farm Office", "192.168.4.16"), testEntry("Co-op", "192.168.4.20")),
	}

	start := time.Now()
	backend, err := scanner.First(context.Background())
	if err != nil {
		t.Fatalf("First() error = %v", err)
	}
	if backend.Name != "Farm Office" {
		t.Errorf("First() = %s, want Farm Office", backend.Name)
	}
	if time.Since(start) > 2*time.Second {
		t.Error("First() should return as soon as a backend answers")
	}
}

func TestScanner_First_NoBackend(t *testing.T) {
	scanner := &Scanner{
		Timeout: 50 * time.Millisecond,
		browse:  fakeBrowse(),
	}

	_, err := scanner.First(context.Background())
	if !errors.Is(err, ErrNoBackend) {
		t.Errorf("First() error = %v, want %v", err, ErrNoBackend)
	}
}

func TestScanner_BrowseError(t *testing.T) {
	browseErr := errors.New("no multicast interface")
	scanner := &Scanner{
		Timeout: 50 * time.Millisecond,
		browse: func(context.Context, chan<- *zeroconf.ServiceEntry) error {
			return browseErr
		},
	}

	if _, err := scanner.Scan(context.Background()); !errors.Is(err, browseErr) {
		t.Errorf("Scan() error = %v, want %v", err, browseErr)
	}
}
