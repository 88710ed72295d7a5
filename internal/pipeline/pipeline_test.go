package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/truthscan/truthscan/internal/model"
)

var testAsOf = time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

// fakeFetcher implements SocialSearcher with canned results per term
type fakeFetcher struct {
	posts map[string][]model.SocialPost
	err   error
	calls []string
}

func (f *fakeFetcher) Search(ctx context.Context, term string) ([]model.SocialPost, error) {
	f.calls = append(f.calls, term)
	if f.err != nil {
		return nil, f.err
	}
	return f.posts[term], nil
}

func testPipeline(t *testing.T, fetcher SocialSearcher) (*Pipeline, *model.Config) {
	t.Helper()

	root := t.TempDir()
	cfg := model.DefaultConfig()
	cfg.Output.Dir = filepath.Join(root, "analysis_results")
	cfg.Output.ImageDir = filepath.Join(root, "satellite_images")

	logger := log.New(io.Discard, "", 0)
	return NewPipelineWithFetcher(cfg, fetcher, logger), cfg
}

func TestAnalyze_SyntheticRun(t *testing.T) {
	p, cfg := testPipeline(t, &fakeFetcher{})
	req := model.NewRequestAt("India strikes Pakistan nuclear sites", 7, true, testAsOf)

	result, err := p.Analyze(context.Background(), req)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	report := result.Report
	if report.Tool != "TruthScan" || report.Version != "1.0.0" {
		t.Errorf("unexpected tool identity: %s %s", report.Tool, report.Version)
	}
	if report.Claim != req.Claim {
		t.Errorf("unexpected claim %q", report.Claim)
	}
	if report.AnalysisDate != "2025-05-10 12:00:00" {
		t.Errorf("unexpected analysis date %q", report.AnalysisDate)
	}

	if len(report.SatelliteAnalysis) != 5 {
		t.Errorf("expected 5 satellite sub-records, got %d", len(report.SatelliteAnalysis))
	}
	if len(report.FlightData) != 3 {
		t.Errorf("expected 3 flight sub-records, got %d", len(report.FlightData))
	}
	if len(report.MilitaryMovements) != 5 {
		t.Errorf("expected 5 military sub-records, got %d", len(report.MilitaryMovements))
	}
	if len(report.SocialMedia) != 5 {
		t.Errorf("expected 5 social sub-records, got %d", len(report.SocialMedia))
	}

	wantRange := model.DateRange{Start: "2025-05-03", End: "2025-05-10"}
	for _, f := range report.SatelliteAnalysis {
		if f.DateRange != wantRange {
			t.Errorf("%s: unexpected date range %+v", f.SiteName, f.DateRange)
		}
		if len(f.SatelliteSources) != 2 {
			t.Errorf("%s: expected 2 imagery sources, got %d", f.SiteName, len(f.SatelliteSources))
		}
		if _, err := os.Stat(f.PlaceholderImage); err != nil {
			t.Errorf("%s: placeholder image not written: %v", f.SiteName, err)
		}
	}

	for _, f := range report.FlightData {
		if len(f.SyntheticSampleData) != 5 {
			t.Errorf("%s: expected 5 synthetic flights, got %d", f.Area, len(f.SyntheticSampleData))
		}
	}
	for _, f := range report.MilitaryMovements {
		if len(f.SyntheticActivityData) != 5 {
			t.Errorf("%s: expected 5 synthetic activities, got %d", f.BaseName, len(f.SyntheticActivityData))
		}
	}
	for _, f := range report.SocialMedia {
		if f.ResultsCount != 5 || len(f.Posts) != 5 {
			t.Errorf("%s: expected 5 synthetic posts, got count=%d len=%d", f.SearchTerm, f.ResultsCount, len(f.Posts))
		}
		for _, post := range f.Posts {
			if !post.Synthetic {
				t.Errorf("%s: fallback post not flagged synthetic", f.SearchTerm)
			}
		}
	}

	// Output artifacts
	jsonPath := filepath.Join(cfg.Output.Dir, ResultsFilename)
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("results JSON not written: %v", err)
	}

	var roundtrip model.Report
	if err := json.Unmarshal(data, &roundtrip); err != nil {
		t.Fatalf("results JSON does not parse: %v", err)
	}
	if len(roundtrip.SocialMedia) != 5 {
		t.Errorf("roundtrip lost social findings: %d", len(roundtrip.SocialMedia))
	}

	summaryPath := filepath.Join(cfg.Output.Dir, SummaryFilename)
	summaryData, err := os.ReadFile(summaryPath)
	if err != nil {
		t.Fatalf("summary not written: %v", err)
	}
	if string(summaryData) != result.Summary {
		t.Error("returned summary differs from the written file")
	}
}

func TestAnalyze_NoSynthetic(t *testing.T) {
	p, cfg := testPipeline(t, &fakeFetcher{})
	req := model.NewRequestAt("claim", 7, false, testAsOf)

	result, err := p.Analyze(context.Background(), req)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	report := result.Report
	if len(report.SocialMedia) != 0 {
		t.Errorf("expected no social findings without synthetic fallback, got %d", len(report.SocialMedia))
	}
	for _, f := range report.FlightData {
		if f.SyntheticSampleData != nil {
			t.Errorf("%s: synthetic flights present despite no-synthetic", f.Area)
		}
	}
	for _, f := range report.MilitaryMovements {
		if f.SyntheticActivityData != nil {
			t.Errorf("%s: synthetic activity present despite no-synthetic", f.BaseName)
		}
	}

	// Reference material survives regardless
	if len(report.SatelliteAnalysis) != 5 || len(report.FlightData) != 3 || len(report.MilitaryMovements) != 5 {
		t.Errorf("reference sub-records missing: sat=%d flight=%d mil=%d",
			len(report.SatelliteAnalysis), len(report.FlightData), len(report.MilitaryMovements))
	}

	// All four top-level keys stay present, empty collections as []
	data, err := os.ReadFile(filepath.Join(cfg.Output.Dir, ResultsFilename))
	if err != nil {
		t.Fatalf("results JSON not written: %v", err)
	}
	if !strings.Contains(string(data), `"social_media": []`) {
		t.Error("empty social_media should serialize as [], not be omitted")
	}
}

func TestAnalyze_RealPostsPreferred(t *testing.T) {
	real := []model.SocialPost{
		{Platform: "Twitter", User: "@analyst", Content: "nothing visible on imagery", Date: "May 9, 2025", Source: "Nitter scrape via https://nitter.net"},
		{Platform: "Twitter", User: "@watcher", Content: "routine activity only", Date: "May 8, 2025", Source: "Nitter scrape via https://nitter.net"},
	}
	fetcher := &fakeFetcher{posts: map[string][]model.SocialPost{
		"India Pakistan conflict": real,
	}}

	p, _ := testPipeline(t, fetcher)
	req := model.NewRequestAt("claim", 7, true, testAsOf)

	result, err := p.Analyze(context.Background(), req)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if len(fetcher.calls) != 5 {
		t.Errorf("expected 5 search calls, got %d", len(fetcher.calls))
	}

	var conflict *model.SocialFinding
	for i := range result.Report.SocialMedia {
		if result.Report.SocialMedia[i].SearchTerm == "India Pakistan conflict" {
			conflict = &result.Report.SocialMedia[i]
		}
	}
	if conflict == nil {
		t.Fatal("finding for the real-data term is missing")
	}
	if conflict.ResultsCount != 2 {
		t.Errorf("expected 2 real posts, got %d", conflict.ResultsCount)
	}
	for _, post := range conflict.Posts {
		if post.Synthetic {
			t.Error("real post must not be replaced by synthetic data")
		}
	}

	// The other four terms fall back to synthetic batches of 5
	for _, f := range result.Report.SocialMedia {
		if f.SearchTerm == "India Pakistan conflict" {
			continue
		}
		if f.ResultsCount != 5 {
			t.Errorf("%s: expected 5 synthetic posts, got %d", f.SearchTerm, f.ResultsCount)
		}
	}
}

func TestAnalyze_FetchErrorFallsBackToSynthetic(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("mirror meltdown")}
	p, _ := testPipeline(t, fetcher)
	req := model.NewRequestAt("claim", 7, true, testAsOf)

	result, err := p.Analyze(context.Background(), req)
	if err != nil {
		t.Fatalf("fetch errors must not fail the run: %v", err)
	}
	if len(result.Report.SocialMedia) != 5 {
		t.Errorf("expected synthetic fallback for all 5 terms, got %d", len(result.Report.SocialMedia))
	}
}

func TestAnalyze_FetchErrorNoSyntheticOmitsTerms(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("mirror meltdown")}
	p, _ := testPipeline(t, fetcher)
	req := model.NewRequestAt("claim", 7, false, testAsOf)

	result, err := p.Analyze(context.Background(), req)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if len(result.Report.SocialMedia) != 0 {
		t.Errorf("expected all terms omitted, got %d findings", len(result.Report.SocialMedia))
	}
}

func TestAnalyze_UnwritableOutputFails(t *testing.T) {
	p, cfg := testPipeline(t, &fakeFetcher{})

	// Occupy the results dir path with a file
	if err := os.WriteFile(cfg.Output.Dir, []byte("in the way"), 0644); err != nil {
		t.Fatal(err)
	}

	req := model.NewRequestAt("claim", 7, false, testAsOf)
	if _, err := p.Analyze(context.Background(), req); err == nil {
		t.Error("expected error for unwritable results directory")
	}
}

func TestPlaceholderFilename(t *testing.T) {
	got := placeholderFilename("Kahuta (Khan Research Laboratories)", "2025-05-10")
	want := "Kahuta_(Khan_Research_Laboratories)_2025-05-10_free.png"
	if got != want {
		t.Errorf("placeholderFilename = %q, want %q", got, want)
	}
}
