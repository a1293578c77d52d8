// Package urls provides centralized constants for the external URLs used
// throughout the application: the OpenStreetMap tile server and map site,
// and the project documentation.
//
// Usage:
//
//	import "github.com/muurk/agri-advisor/internal/urls"
//
//	fmt.Printf("Map data %s\n", urls.OSMAttribution)
package urls
