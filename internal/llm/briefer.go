package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/truthscan/truthscan/internal/model"
)

// Briefing is the rendered briefing plus its provenance, kept apart from the
// report itself
type Briefing struct {
	Provider   string
	Model      string
	Text       string
	TokensUsed int
}

// Briefer wraps a provider and decides whether briefing runs at all
type Briefer struct {
	provider Provider
	config   Config
}

// NewBriefer creates a briefer; a nil provider (empty config) disables it
func NewBriefer(config Config) (*Briefer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}

	return &Briefer{
		provider: provider,
		config:   config,
	}, nil
}

// IsEnabled reports whether a provider is configured
func (b *Briefer) IsEnabled() bool {
	return b.provider != nil
}

// ProviderName returns the configured provider's name, or ""
func (b *Briefer) ProviderName() string {
	if b.provider == nil {
		return ""
	}
	return b.provider.Name()
}

// GenerateBriefing produces a briefing for a completed report. Disabled
// briefers return (nil, nil); the run never depends on this succeeding.
func (b *Briefer) GenerateBriefing(ctx context.Context, report model.Report) (*Briefing, error) {
	if b.provider == nil {
		return nil, nil
	}

	if !b.provider.IsAvailable(ctx) {
		return nil, fmt.Errorf("briefing provider %s is not available", b.provider.Name())
	}

	resp, err := b.provider.Brief(ctx, BriefRequest{
		Report:    report,
		Model:     b.config.Model,
		MaxTokens: b.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate briefing: %w", err)
	}

	return &Briefing{
		Provider:   b.provider.Name(),
		Model:      resp.Model,
		Text:       resp.Text,
		TokensUsed: resp.TokensUsed,
	}, nil
}

// RenderMarkdown renders the briefing for its separate output file. The
// header makes the provenance and limits impossible to miss.
func RenderMarkdown(briefing *Briefing) string {
	var b strings.Builder

	b.WriteString("# TruthScan Collection Briefing\n\n")
	fmt.Fprintf(&b, "> Generated by %s (%s). Describes aggregated reference material only;\n", briefing.Provider, briefing.Model)
	b.WriteString("> this is NOT a verification of the claim and never affects the JSON report.\n\n")
	b.WriteString(briefing.Text)
	b.WriteString("\n")

	return b.String()
}

// verdictPhrases are rejected in briefing output; the tool must never appear
// to rule on the claim
var verdictPhrases = []string{
	"claim is true",
	"claim is false",
	"claim is confirmed",
	"claim is debunked",
	"no credible evidence supporting",
	"proves the claim",
	"disproves the claim",
}

// checkVerdictLeak rejects briefings that slipped into verdict language
func checkVerdictLeak(text string) error {
	lower := strings.ToLower(text)
	for _, phrase := range verdictPhrases {
		if strings.Contains(lower, phrase) {
			return fmt.Errorf("VERDICT LEAK: briefing contained verdict language: %q", phrase)
		}
	}
	return nil
}
