package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/truthscan/truthscan/internal/model"
)

// Fixed output filenames inside the results directory
const (
	ResultsFilename = "truthscan_results.json"
	SummaryFilename = "truthscan_summary.txt"
)

// Banner is printed at startup and at the top of the text summary
const Banner = `
═══════════════════════════════════════════════════════════
  T R U T H S C A N
  OSINT reference aggregation for incident claims
═══════════════════════════════════════════════════════════`

// Renderer serializes a completed report to the results directory
type Renderer struct {
	outDir string
}

// NewRenderer creates a renderer writing into outDir
func NewRenderer(outDir string) *Renderer {
	return &Renderer{outDir: outDir}
}

// Write renders the JSON document and the text summary. Both filenames are
// fixed; an unwritable destination is fatal for the run. Returns the summary
// text so the caller can print it.
func (r *Renderer) Write(report *model.Report, req model.AnalysisRequest) (string, error) {
	if err := os.MkdirAll(r.outDir, 0755); err != nil {
		return "", fmt.Errorf("create results dir: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "    ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	jsonPath := filepath.Join(r.outDir, ResultsFilename)
	if err := os.WriteFile(jsonPath, data, 0644); err != nil {
		return "", fmt.Errorf("write JSON: %w", err)
	}

	summary := BuildSummary(report, req)

	summaryPath := filepath.Join(r.outDir, SummaryFilename)
	if err := os.WriteFile(summaryPath, []byte(summary), 0644); err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}

	return summary, nil
}

// BuildSummary renders the human-readable analysis summary. Nothing here is
// conditional beyond counting; the report collections are taken as-is.
func BuildSummary(report *model.Report, req model.AnalysisRequest) string {
	var b strings.Builder

	b.WriteString(Banner)
	b.WriteString("\n\n")
	b.WriteString("TRUTHSCAN ANALYSIS REPORT\n")
	b.WriteString("=========================\n")
	fmt.Fprintf(&b, "Claim: %s\n", report.Claim)
	fmt.Fprintf(&b, "Analysis date: %s\n", report.AnalysisDate)
	fmt.Fprintf(&b, "Date range analyzed: %s to %s\n", req.StartDate(), req.EndDate())
	b.WriteString("\n")

	b.WriteString("ANALYSIS SCOPE:\n")
	fmt.Fprintf(&b, "- Satellite imagery analysis of %d nuclear sites\n", len(report.SatelliteAnalysis))
	fmt.Fprintf(&b, "- Flight data analysis for %d geographic areas\n", len(report.FlightData))
	fmt.Fprintf(&b, "- Military movement monitoring at %d military bases\n", len(report.MilitaryMovements))
	fmt.Fprintf(&b, "- Social media analysis of %d search terms (%d posts)\n", len(report.SocialMedia), report.TotalSocialPosts())
	b.WriteString("\n")

	b.WriteString("REFERENCE MATERIAL:\n")
	b.WriteString("1. Satellite imagery: links to free Sentinel Hub and Google Maps imagery for all monitored sites\n")
	b.WriteString("2. Flight data: free alternatives to paid flight tracking services\n")
	b.WriteString("3. Military movements: OSINT source references for key military installations\n")
	b.WriteString("4. Social media: relevant posts per search term\n")
	b.WriteString("\n")

	b.WriteString("CAVEATS:\n")
	b.WriteString("- This tool aggregates links and reference material; it performs no verification\n")
	b.WriteString("- Free imagery sources require manual review and may lag events by days\n")
	b.WriteString("- Free flight tracking tiers hide most military transponders\n")
	b.WriteString("- Social media posts are unvetted and may themselves be misinformation\n")
	b.WriteString("- Definitive analysis requires commercial imagery, paid flight data, and professional analysts\n")
	b.WriteString("\n")

	b.WriteString("NOTE: This analysis used free alternatives to paid services. Some synthetic data may be\n")
	b.WriteString("included for demonstration purposes, clearly marked as \"synthetic\" in the detailed results.\n")

	return b.String()
}
