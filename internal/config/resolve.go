package config

import (
	"fmt"
	"strings"
)

// APIURLEnvVar overrides the backend base URL from the environment
const APIURLEnvVar = "AGRI_ADVISOR_API_URL"

// Source identifies where the backend URL came from
type Source string

const (
	SourceFlag      Source = "flag"
	SourceEnv       Source = "environment"
	SourceFile      Source = "config file"
	SourceDiscovery Source = "mDNS discovery"
	SourceDefault   Source = "default"
)

// Candidates holds every place a backend URL may come from, highest
// priority first. Empty values are skipped.
type Candidates struct {
	Flag       string
	Env        string
	File       string
	Discovered string
}

// ResolveAPIURL picks the backend base URL.
// Precedence: flag > environment > config file > discovery > build default.
func ResolveAPIURL(c Candidates) (string, Source) {
	ordered := []struct {
		value  string
		source Source
	}{
		{c.Flag, SourceFlag},
		{c.Env, SourceEnv},
		{c.File, SourceFile},
		{c.Discovered, SourceDiscovery},
	}

	for _, o := range ordered {
		if v := strings.TrimSpace(o.value); v != "" {
			return strings.TrimRight(v, "/"), o.source
		}
	}

	return strings.TrimRight(DefaultAPIURL, "/"), SourceDefault
}

// NeedsDiscovery reports whether mDNS lookup could change the result of
// ResolveAPIURL.
func NeedsDiscovery(c Candidates, discoveryEnabled bool) bool {
	if !discoveryEnabled {
		return false
	}
	return strings.TrimSpace(c.Flag) == "" &&
		strings.TrimSpace(c.Env) == "" &&
		strings.TrimSpace(c.File) == ""
}

// Describe returns a short human-readable summary of the resolved backend
func Describe(url string, source Source) string {
	return fmt.Sprintf("%s (from %s)", url, source)
}
