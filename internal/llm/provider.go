// Package llm generates an optional narrative briefing of a completed
// report. The briefing describes what reference material was aggregated; it
// is never allowed to judge the claim, never enters the JSON document, and
// never affects any collection.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/truthscan/truthscan/internal/model"
)

// Provider defines the interface for briefing providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Brief generates a narrative digest of the report
	Brief(ctx context.Context, req BriefRequest) (*BriefResponse, error)

	// IsAvailable checks if the provider is properly configured and reachable
	IsAvailable(ctx context.Context) bool
}

// BriefRequest contains the input for briefing generation
type BriefRequest struct {
	// Report is the completed TruthScan report to describe
	Report model.Report

	// Prompt is an optional custom prompt (if empty, use the default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// BriefResponse contains the provider's output
type BriefResponse struct {
	// Text is the generated briefing
	Text string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds briefing provider configuration
type Config struct {
	// Provider name: "openai", "ollama", "" (disabled)
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for hosted providers
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults (briefing disabled)
func DefaultConfig() Config {
	return Config{
		Provider:  "",
		Model:     "",
		Timeout:   30,
		MaxTokens: 1000,
	}
}

// ConfigFromModel converts the run configuration's LLM section
func ConfigFromModel(cfg model.LLMConfig, httpProxy, httpsProxy, noProxy string) Config {
	return Config{
		Provider:   cfg.Provider,
		Model:      cfg.Model,
		APIKey:     cfg.APIKey,
		BaseURL:    cfg.BaseURL,
		Timeout:    cfg.Timeout,
		MaxTokens:  cfg.MaxTokens,
		HTTPProxy:  httpProxy,
		HTTPSProxy: httpsProxy,
		NoProxy:    noProxy,
	}
}

// NewProvider creates a briefing provider based on configuration
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "":
		// No provider configured - briefing disabled
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown briefing provider: %s (supported: openai, ollama)", config.Provider)
	}
}

// systemPrompt pins every provider to describing, not verifying
const systemPrompt = "You are drafting an OSINT collection briefing. You describe what reference material a report aggregated. You never state whether the claim under analysis is true, false, supported, or refuted."

// BuildPrompt constructs the default briefing prompt from report counts.
// The rules are restated in the prompt itself because the output is shown to
// analysts verbatim.
func BuildPrompt(report model.Report) string {
	synthetic := 0
	real := 0
	for _, finding := range report.SocialMedia {
		for _, post := range finding.Posts {
			if post.Synthetic {
				synthetic++
			} else {
				real++
			}
		}
	}

	return fmt.Sprintf(`Draft a short collection briefing for the following aggregated OSINT reference report.

RULES:
1. Describe only what was collected. DO NOT assess the claim.
2. Never use verdict language ("confirmed", "debunked", "no evidence of").
3. Explicitly note where records are synthetic placeholders.
4. 4-6 sentences, plain prose.

Report contents:
- Claim under analysis: %q
- Satellite imagery deep links for %d monitored sites
- Flight tracking references for %d geographic areas
- Military OSINT references for %d air bases
- Social media results for %d search terms: %d scraped posts, %d synthetic placeholder posts

Remember: the report aggregates links and clearly labeled illustrative data; verification is the analyst's job.`,
		report.Claim,
		len(report.SatelliteAnalysis),
		len(report.FlightData),
		len(report.MilitaryMovements),
		len(report.SocialMedia),
		real,
		synthetic,
	)
}
