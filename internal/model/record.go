package model

// Every activity record carries an explicit Synthetic provenance flag so a
// consumer never has to infer whether a data point was fabricated.

// FlightRecord is a single flight observation (always illustrative when
// Synthetic is true)
type FlightRecord struct {
	Date         string `json:"date"` // YYYY-MM-DD within the analysis window
	AircraftType string `json:"aircraft_type"`
	Altitude     int    `json:"altitude"` // feet
	Speed        int    `json:"speed"`    // knots
	Pattern      string `json:"pattern"`
	Transponder  string `json:"transponder"`
	Notes        string `json:"notes"`
	Synthetic    bool   `json:"synthetic"`
}

// MilitaryRecord is a single military-activity observation
type MilitaryRecord struct {
	Date         string `json:"date"`
	Type         string `json:"type"`
	Significance string `json:"significance"` // Low, Medium, High
	Description  string `json:"description"`
	Confidence   string `json:"confidence"`
	Synthetic    bool   `json:"synthetic"`
}

// SocialPost is a single social-media post, scraped or fabricated
type SocialPost struct {
	Platform  string `json:"platform"`
	User      string `json:"user"`
	Content   string `json:"content"`
	Date      string `json:"date"`
	Synthetic bool   `json:"synthetic"`
	Source    string `json:"source"` // Which mirror supplied it, or the generator label
}
