// Package discovery finds Agri-Advisor backends on the local network with
// multicast DNS.
//
// Backends advertise the "_agri-advisor._tcp" service in the "local."
// domain. A "path=" TXT record, when present, is appended to the base URL
// so that a backend mounted under a prefix resolves correctly.
//
// Discovery is only used when no API URL was given by flag, environment or
// configuration file, and only when enabled (--discover or
// discovery.enabled in the config file).
//
// # Usage Example
//
//	backend, err := discovery.FindBackend(ctx, 3*time.Second)
//	if err != nil {
//	    return err
//	}
//	client := advisor.NewClient(backend.BaseURL())
//
// # Network Requirements
//
// - Requires multicast support on the network interface
// - Backends must be on the same local network segment
// - Firewall must allow mDNS (UDP port 5353)
package discovery
