package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/truthscan/truthscan/internal/model"
)

// MockProvider implements the Provider interface for testing
type MockProvider struct {
	name      string
	available bool
	response  *BriefResponse
	err       error
}

func (m *MockProvider) Name() string {
	return m.name
}

func (m *MockProvider) Brief(ctx context.Context, req BriefRequest) (*BriefResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *MockProvider) IsAvailable(ctx context.Context) bool {
	return m.available
}

func TestNewBriefer_Disabled(t *testing.T) {
	briefer, err := NewBriefer(Config{Provider: ""})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if briefer.IsEnabled() {
		t.Error("Expected briefer to be disabled with an empty provider")
	}
	if briefer.ProviderName() != "" {
		t.Error("Expected empty provider name when disabled")
	}
}

func TestNewBriefer_UnknownProvider(t *testing.T) {
	if _, err := NewBriefer(Config{Provider: "claude"}); err == nil {
		t.Error("Expected error for unknown provider")
	}
}

func TestBriefer_GenerateBriefing_Disabled(t *testing.T) {
	briefer := &Briefer{provider: nil, config: Config{}}

	briefing, err := briefer.GenerateBriefing(context.Background(), model.Report{Claim: "test"})
	if err != nil {
		t.Errorf("Expected no error when disabled, got %v", err)
	}
	if briefing != nil {
		t.Error("Expected nil briefing when provider disabled")
	}
}

func TestBriefer_GenerateBriefing_ProviderUnavailable(t *testing.T) {
	briefer := &Briefer{
		provider: &MockProvider{name: "mock", available: false},
		config:   Config{},
	}

	if _, err := briefer.GenerateBriefing(context.Background(), model.Report{}); err == nil {
		t.Error("Expected error when provider unavailable")
	}
}

func TestBriefer_GenerateBriefing(t *testing.T) {
	briefer := &Briefer{
		provider: &MockProvider{
			name:      "mock",
			available: true,
			response: &BriefResponse{
				Text:       "The run aggregated imagery links for five sites; social records are synthetic placeholders.",
				Model:      "mock-model",
				TokensUsed: 42,
			},
		},
		config: Config{Model: "mock-model", MaxTokens: 500},
	}

	briefing, err := briefer.GenerateBriefing(context.Background(), model.Report{Claim: "test claim"})
	if err != nil {
		t.Fatalf("GenerateBriefing failed: %v", err)
	}

	if briefing.Provider != "mock" {
		t.Errorf("Expected provider mock, got %q", briefing.Provider)
	}
	if briefing.Model != "mock-model" {
		t.Errorf("Expected model mock-model, got %q", briefing.Model)
	}
	if briefing.TokensUsed != 42 {
		t.Errorf("Expected 42 tokens, got %d", briefing.TokensUsed)
	}
}

func TestBriefer_GenerateBriefing_ProviderError(t *testing.T) {
	briefer := &Briefer{
		provider: &MockProvider{name: "mock", available: true, err: errors.New("api exploded")},
		config:   Config{},
	}

	if _, err := briefer.GenerateBriefing(context.Background(), model.Report{}); err == nil {
		t.Error("Expected provider error to propagate")
	}
}

func TestRenderMarkdown(t *testing.T) {
	briefing := &Briefing{
		Provider: "openai",
		Model:    "gpt-4o-mini",
		Text:     "Collection summary text.",
	}

	md := RenderMarkdown(briefing)

	if !strings.HasPrefix(md, "# TruthScan Collection Briefing") {
		t.Errorf("Unexpected header: %q", md[:40])
	}
	if !strings.Contains(md, "openai (gpt-4o-mini)") {
		t.Error("Briefing markdown missing provenance")
	}
	if !strings.Contains(md, "NOT a verification") {
		t.Error("Briefing markdown missing the non-verification disclaimer")
	}
	if !strings.Contains(md, "Collection summary text.") {
		t.Error("Briefing markdown missing the text body")
	}
}

func TestCheckVerdictLeak(t *testing.T) {
	clean := "The report aggregated imagery links, flight references, and synthetic social records."
	if err := checkVerdictLeak(clean); err != nil {
		t.Errorf("Clean briefing flagged: %v", err)
	}

	leaks := []string{
		"Based on the material, the claim is false.",
		"There is no credible evidence supporting the claim.",
		"This PROVES THE CLAIM beyond doubt.",
	}
	for _, text := range leaks {
		if err := checkVerdictLeak(text); err == nil {
			t.Errorf("Verdict leak not caught: %q", text)
		}
	}
}

func TestBuildPrompt(t *testing.T) {
	report := model.Report{
		Claim:             "test claim",
		SatelliteAnalysis: make([]model.SatelliteFinding, 5),
		FlightData:        make([]model.FlightFinding, 3),
		MilitaryMovements: make([]model.MilitaryFinding, 5),
		SocialMedia: []model.SocialFinding{
			{
				SearchTerm:   "term",
				ResultsCount: 3,
				Posts: []model.SocialPost{
					{Synthetic: false},
					{Synthetic: true},
					{Synthetic: true},
				},
			},
		},
	}

	prompt := BuildPrompt(report)

	for _, want := range []string{
		`"test claim"`,
		"5 monitored sites",
		"3 geographic areas",
		"5 air bases",
		"1 search terms: 1 scraped posts, 2 synthetic placeholder posts",
		"DO NOT assess the claim",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Prompt missing %q", want)
		}
	}
}
