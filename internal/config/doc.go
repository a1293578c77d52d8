// Package config provides user configuration management for the
// Agri-Advisor client.
//
// This package manages a YAML-based configuration file holding the backend
// URL, form defaults, map settings, mDNS discovery and tracing options. The
// configuration follows OS-specific conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/agri-advisor/config.yaml or $HOME/.config/agri-advisor/config.yaml
//   - macOS: $HOME/.config/agri-advisor/config.yaml
//   - Windows: %LOCALAPPDATA%\agri-advisor\config.yaml
//
// # Backend URL Precedence
//
// The base URL is resolved once at startup by ResolveAPIURL:
//
//  1. --api-url flag
//  2. AGRI_ADVISOR_API_URL environment variable
//  3. api_url in the config file
//  4. a backend found by mDNS discovery (when discovery.enabled is true)
//  5. DefaultAPIURL (http://localhost:5000 unless overridden at build time)
//
// Nothing below cmd/ reads the environment; the resolved value is passed to
// constructors.
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	url, source := config.ResolveAPIURL(config.Candidates{
//	    Flag: apiURLFlag,
//	    Env:  os.Getenv(config.APIURLEnvVar),
//	    File: cfg.APIURL,
//	})
//
// # Example File
//
//	version: 1
//	api_url: http://192.168.1.20:5000
//	preferences:
//	  default_location: Jaipur, India
//	map:
//	  zoom: 10
//	discovery:
//	  enabled: true
//	  timeout: 3s
//	telemetry:
//	  zipkin_url: http://localhost:9411/api/v2/spans
//
// # Thread Safety
//
// Save is protected by a mutex and writes atomically (temporary file then
// rename).
package config
