package urls

// OpenStreetMap endpoints used by the map view.

// OSMTileTemplate is the default slippy-map tile URL. {z}, {x} and {y} are
// replaced with the zoom level and tile indices.
const OSMTileTemplate = "https://tile.openstreetmap.org/{z}/{x}/{y}.png"

// OSMBrowseTemplate opens the map site with a marker on a point. Arguments
// are marker latitude and longitude, then zoom, latitude and longitude.
const OSMBrowseTemplate = "https://www.openstreetmap.org/?mlat=%.4f&mlon=%.4f#map=%d/%.4f/%.4f"

// OSMCopyright is the OpenStreetMap licence page linked from the attribution.
const OSMCopyright = "https://www.openstreetmap.org/copyright"

// OSMAttribution must be displayed with every map.
const OSMAttribution = "© OpenStreetMap contributors"

// Documentation URLs for guides and troubleshooting.
// All URLs point to the documentation site at https://muurk.github.io/agri-advisor/

// GettingStarted is the quick start guide, covering backend setup
// and the first query.
const GettingStarted = "https://muurk.github.io/agri-advisor/getting-started/"

// TroubleshootingGuide provides solutions to common connection
// and timeout problems.
const TroubleshootingGuide = "https://muurk.github.io/agri-advisor/troubleshooting/"

// BackendSetup explains how to run the advisor backend and advertise it
// over mDNS.
const BackendSetup = "https://muurk.github.io/agri-advisor/backend/"
