// Package pipeline runs the four analysis phases in sequence and hands the
// accumulated result to the renderer. Execution is deliberately
// single-threaded: one phase completes before the next starts, and table
// entries are processed in table order.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"github.com/truthscan/truthscan/internal/fetch"
	"github.com/truthscan/truthscan/internal/model"
	"github.com/truthscan/truthscan/internal/synth"
)

// SocialSearcher retrieves public posts for a search term. An empty slice
// with a nil error means no real data was available.
type SocialSearcher interface {
	Search(ctx context.Context, term string) ([]model.SocialPost, error)
}

// Pipeline orchestrates a complete TruthScan run
type Pipeline struct {
	cfg      *model.Config
	fetcher  SocialSearcher
	renderer *Renderer
	logger   *log.Logger
}

// NewPipeline creates a pipeline with the standard mirror fetcher
func NewPipeline(cfg *model.Config, logger *log.Logger) *Pipeline {
	return NewPipelineWithFetcher(cfg, fetch.NewSocialFetcher(cfg, logger), logger)
}

// NewPipelineWithFetcher creates a pipeline with an explicit fetcher
// (substituted in tests)
func NewPipelineWithFetcher(cfg *model.Config, fetcher SocialSearcher, logger *log.Logger) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		fetcher:  fetcher,
		renderer: NewRenderer(cfg.Output.Dir),
		logger:   logger,
	}
}

// Result contains the completed report and the rendered text summary
type Result struct {
	Report  *model.Report
	Summary string
}

// Analyze runs all four analysis phases in order and writes the report.
// Per-entry failures inside a phase are logged and skipped; only an
// unwritable output destination fails the run.
func (p *Pipeline) Analyze(ctx context.Context, req model.AnalysisRequest) (*Result, error) {
	p.logger.Printf("Starting TruthScan analysis for claim: %s", req.Claim)

	gen := synth.NewGenerator(req.Days, req.AsOf)
	report := model.NewReport(req)

	p.analyzeSatellite(report, req)
	p.analyzeFlights(report, req, gen)
	p.analyzeMilitary(report, req, gen)
	p.analyzeSocial(ctx, report, req, gen)

	p.logger.Printf("Generating final analysis...")

	summary, err := p.renderer.Write(report, req)
	if err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}

	p.logger.Printf("Analysis summary and detailed results saved to %s", p.cfg.Output.Dir)

	return &Result{Report: report, Summary: summary}, nil
}
