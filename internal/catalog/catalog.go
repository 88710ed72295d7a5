// Package catalog holds the static reference tables the analysis phases
// iterate: monitored points of interest, geographic search areas, social
// search terms, and the external-link templates built from them. The tables
// are declarative data; the logic that consumes them lives in the pipeline
// and generator.
package catalog

import (
	"fmt"

	"github.com/truthscan/truthscan/internal/model"
)

// Category classifies a point of interest
type Category string

const (
	CategoryNuclearSite Category = "nuclear-site"
	CategoryAirBase     Category = "air-base"
)

// PointOfInterest is a named, geolocated anchor for external reference links
type PointOfInterest struct {
	Name        string
	Category    Category
	Coordinates [2]float64 // [lat, lon]
	Affiliation string     // Air-force affiliation, air bases only
}

// SearchArea is a named lat/lon box monitored for flight activity
type SearchArea struct {
	Name   string
	Bounds string // "latMin-latMax,lonMin-lonMax"
}

// NuclearSites returns the monitored nuclear facilities
func NuclearSites() []PointOfInterest {
	return []PointOfInterest{
		{Name: "Kahuta (Khan Research Laboratories)", Category: CategoryNuclearSite, Coordinates: [2]float64{33.591, 73.382}},
		{Name: "Khushab Nuclear Complex", Category: CategoryNuclearSite, Coordinates: [2]float64{32.033, 72.2}},
		{Name: "Chashma Nuclear Power Plant", Category: CategoryNuclearSite, Coordinates: [2]float64{32.392, 71.458}},
		{Name: "Karachi Nuclear Power Plant (KANUPP)", Category: CategoryNuclearSite, Coordinates: [2]float64{24.842, 66.792}},
		{Name: "Kundian Nuclear Complex", Category: CategoryNuclearSite, Coordinates: [2]float64{32.448, 71.478}},
	}
}

// SearchAreas returns the geographic areas monitored for flight activity
func SearchAreas() []SearchArea {
	return []SearchArea{
		{Name: "Kahuta Region", Bounds: "33.5-33.7,73.3-73.5"},
		{Name: "Rawalpindi Air Base", Bounds: "33.6-33.65,73.0-73.1"},
		{Name: "Indian Border Area (Punjab)", Bounds: "32.0-33.0,74.5-75.0"},
	}
}

// AirBases returns the monitored military air bases
func AirBases() []PointOfInterest {
	return []PointOfInterest{
		{Name: "Sargodha Air Base", Category: CategoryAirBase, Coordinates: [2]float64{32.0493, 72.6719}, Affiliation: "Pakistani Air Force"},
		{Name: "Kamra Air Base", Category: CategoryAirBase, Coordinates: [2]float64{33.8709, 72.4007}, Affiliation: "Pakistani Air Force"},
		{Name: "Masroor Air Base", Category: CategoryAirBase, Coordinates: [2]float64{24.8897, 66.9381}, Affiliation: "Pakistani Air Force"},
		{Name: "Pathankot Air Base", Category: CategoryAirBase, Coordinates: [2]float64{32.2346, 75.6343}, Affiliation: "Indian Air Force"},
		{Name: "Adampur Air Base", Category: CategoryAirBase, Coordinates: [2]float64{31.4336, 75.7686}, Affiliation: "Indian Air Force"},
	}
}

// SearchTerms returns the social media queries issued per run
func SearchTerms() []string {
	return []string{
		"India Pakistan conflict",
		"Pakistan nuclear facility",
		"Indian airstrike Pakistan",
		"Pakistan military alert",
		"India Pakistan border tension",
	}
}

// SatelliteAnalysisTip is attached to every satellite sub-record
const SatelliteAnalysisTip = "Look for new craters, debris, fire damage, or structural changes"

// SatelliteSources builds the two free imagery deep links for a site
func SatelliteSources(poi PointOfInterest) []model.SourceRef {
	lat, lon := poi.Coordinates[0], poi.Coordinates[1]
	return []model.SourceRef{
		{
			Name:  "Sentinel Hub (free)",
			URL:   fmt.Sprintf("https://apps.sentinel-hub.com/eo-browser/?zoom=13&lat=%g&lng=%g&themeId=DEFAULT-THEME", lat, lon),
			Notes: "10m resolution imagery, requires manual review",
		},
		{
			Name:  "Google Maps Satellite",
			URL:   fmt.Sprintf("https://www.google.com/maps/@%g,%g,1000m/data=!3m1!1e3", lat, lon),
			Notes: "Historical imagery may be available through time slider",
		},
	}
}

// FlightSources returns the fixed free-tier flight tracking references
func FlightSources() []model.SourceRef {
	return []model.SourceRef{
		{
			Name:  "ADS-B Exchange",
			URL:   "https://globe.adsbexchange.com/",
			Notes: "Filter for military aircraft using ICAO ranges or 'Military' filter",
			Type:  "free web interface",
		},
		{
			Name:  "Flightradar24 Free Tier",
			URL:   "https://www.flightradar24.com/",
			Notes: "Limited history but shows current military transponders",
			Type:  "free tier with limitations",
		},
		{
			Name:  "RadarBox Free",
			URL:   "https://www.radarbox.com/",
			Notes: "Some military flights visible when transponders active",
			Type:  "limited free access",
		},
	}
}

// FlightAnalysisTips are attached to every flight sub-record
func FlightAnalysisTips() []string {
	return []string{
		"Look for unusual flight patterns or military aircraft",
		"Search for no-fly zones or airspace restrictions",
		"Monitor periods of no civilian traffic",
		"Check for helicopters or special operations aircraft",
	}
}

// MilitarySources returns the fixed military OSINT references for a base
func MilitarySources(base PointOfInterest) []model.SourceRef {
	return []model.SourceRef{
		{
			Name:      "GDELT Project",
			URL:       "https://www.gdeltproject.org/",
			QueryTerm: base.Name + " military activity",
			Type:      "free database",
		},
		{
			Name:   "LiveUAMap",
			URL:    "https://liveuamap.com/",
			Region: "Asia",
			Type:   "partially free",
		},
		{
			Name: "Bellingcat's OSINT Toolkit",
			URL:  "https://docs.google.com/document/d/1BfLPJpRtyq4RFtHJoNpvWQjmGnyVkfE2HYoICKOGguA/edit",
			Type: "free resource collection",
		},
	}
}

// MilitaryAnalysisTips are attached to every military sub-record
func MilitaryAnalysisTips() []string {
	return []string{
		"Look for increased aircraft deployments",
		"Monitor changes in alert status",
		"Check for unusual troop movements",
		"Note changes in vehicle counts from satellite imagery",
	}
}
