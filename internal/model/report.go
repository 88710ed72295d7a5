package model

// ToolName and ToolVersion identify the report schema producer
const (
	ToolName    = "TruthScan"
	ToolVersion = "1.0.0"
)

// Report is the complete TruthScan analysis report.
// The top-level key names are a stable contract; downstream consumers parse
// them by name.
type Report struct {
	Tool         string `json:"tool"`          // Constant: "TruthScan"
	Version      string `json:"version"`       // Constant: tool version
	Claim        string `json:"claim"`         // Claim under analysis
	AnalysisDate string `json:"analysis_date"` // When the analysis ran

	SatelliteAnalysis []SatelliteFinding `json:"satellite_analysis"` // One per nuclear site
	FlightData        []FlightFinding    `json:"flight_data"`        // One per search area
	MilitaryMovements []MilitaryFinding  `json:"military_movements"` // One per air base
	SocialMedia       []SocialFinding    `json:"social_media"`       // One per term with results
}

// NewReport creates an empty report for the given request
func NewReport(req AnalysisRequest) *Report {
	return &Report{
		Tool:              ToolName,
		Version:           ToolVersion,
		Claim:             req.Claim,
		AnalysisDate:      req.AsOf.Format(TimestampFormat),
		SatelliteAnalysis: []SatelliteFinding{},
		FlightData:        []FlightFinding{},
		MilitaryMovements: []MilitaryFinding{},
		SocialMedia:       []SocialFinding{},
	}
}

// DateRange is the inclusive calendar window an analysis covers
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SourceRef points an analyst at an external OSINT source.
// Generated deterministically from catalog templates; carries no lifecycle.
type SourceRef struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	Notes     string `json:"notes,omitempty"`
	QueryTerm string `json:"query_term,omitempty"` // Suggested search query, where applicable
	Region    string `json:"region,omitempty"`     // Suggested region filter, where applicable
	Type      string `json:"type,omitempty"`       // Access tier (free / limited free)
}

// SatelliteFinding is one satellite-phase sub-record
type SatelliteFinding struct {
	SiteName         string      `json:"site_name"`
	Coordinates      [2]float64  `json:"coordinates"` // [lat, lon]
	DateRange        DateRange   `json:"date_range"`
	SatelliteSources []SourceRef `json:"satellite_sources"`
	PlaceholderImage string      `json:"placeholder_image"`
	AnalysisTip      string      `json:"analysis_tip"`
}

// FlightFinding is one flight-phase sub-record
type FlightFinding struct {
	Area                string         `json:"area"`
	GeographicBounds    string         `json:"geographic_bounds"`
	DateRange           DateRange      `json:"date_range"`
	FreeDataSources     []SourceRef    `json:"free_data_sources"`
	AnalysisTips        []string       `json:"analysis_tips"`
	SyntheticSampleData []FlightRecord `json:"synthetic_sample_data,omitempty"`
}

// MilitaryFinding is one military-phase sub-record
type MilitaryFinding struct {
	BaseName              string           `json:"base_name"`
	Type                  string           `json:"type"` // Air-force affiliation
	Coordinates           [2]float64       `json:"coordinates"`
	DateRange             DateRange        `json:"date_range"`
	FreeDataSources       []SourceRef      `json:"free_data_sources"`
	AnalysisTips          []string         `json:"analysis_tips"`
	SyntheticActivityData []MilitaryRecord `json:"synthetic_activity_data,omitempty"`
}

// SocialFinding is one social-phase sub-record. Terms that yielded no posts
// (real or synthetic) never appear in the report.
type SocialFinding struct {
	SearchTerm   string       `json:"search_term"`
	DateRange    DateRange    `json:"date_range"`
	ResultsCount int          `json:"results_count"`
	Posts        []SocialPost `json:"posts"`
}

// TotalSocialPosts sums results_count across all social sub-records
func (r *Report) TotalSocialPosts() int {
	total := 0
	for _, f := range r.SocialMedia {
		total += f.ResultsCount
	}
	return total
}
