package model

import "time"

// DateFormat is the calendar-date layout used throughout reports
const DateFormat = "2006-01-02"

// TimestampFormat is the layout used for the analysis timestamp
const TimestampFormat = "2006-01-02 15:04:05"

// AnalysisRequest describes one TruthScan run. It is immutable once created
// and drives the date range used by every analysis phase.
type AnalysisRequest struct {
	Claim            string    // Claim under analysis (free-form)
	Days             int       // Lookback window in days
	IncludeSynthetic bool      // Whether synthetic fallback data is generated
	AsOf             time.Time // Reference "now" for the date range
}

// NewRequest creates a request anchored at the current time
func NewRequest(claim string, days int, includeSynthetic bool) AnalysisRequest {
	return NewRequestAt(claim, days, includeSynthetic, time.Now())
}

// NewRequestAt creates a request anchored at an explicit time (for tests)
func NewRequestAt(claim string, days int, includeSynthetic bool, asOf time.Time) AnalysisRequest {
	if days < 1 {
		days = 1
	}
	return AnalysisRequest{
		Claim:            claim,
		Days:             days,
		IncludeSynthetic: includeSynthetic,
		AsOf:             asOf,
	}
}

// StartDate returns the first day of the analysis window (asOf - days)
func (r AnalysisRequest) StartDate() string {
	return r.AsOf.AddDate(0, 0, -r.Days).Format(DateFormat)
}

// EndDate returns the last day of the analysis window (asOf)
func (r AnalysisRequest) EndDate() string {
	return r.AsOf.Format(DateFormat)
}

// Range returns the analysis window as a report date range
func (r AnalysisRequest) Range() DateRange {
	return DateRange{Start: r.StartDate(), End: r.EndDate()}
}
