package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/truthscan/truthscan/internal/llm"
	"github.com/truthscan/truthscan/internal/model"
	"github.com/truthscan/truthscan/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	claim       string
	days        int
	noSynthetic bool

	outputDir  string
	imageDir   string
	logFile    string
	runTimeout time.Duration

	fetchTimeout time.Duration
	userAgent    string
	maxBytes     int64
	mirrors      []string
	noCache      bool
	cacheDir     string
	noRobots     bool
	rps          float64
	burst        int
	httpProxy    string
	httpsProxy   string

	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Aggregate OSINT references for a claim and write the report",
	Long: `Analyze runs the four collection phases in order:
- Satellite: free imagery deep links + placeholder reference images per site
- Flight: free flight tracking references per geographic area
- Military: OSINT source references per air base
- Social media: best-effort mirror scrape per search term, with clearly
  labeled synthetic fallback data unless --no-synthetic is set

Example:
  truthscan analyze
  truthscan analyze --claim "X strikes Y" --days 14
  truthscan analyze --no-synthetic --output-dir ./results
  truthscan analyze --llm openai --llm-model gpt-4o-mini`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Request flags
	analyzeCmd.Flags().StringVar(&claim, "claim", "India strikes Pakistan nuclear sites", "the claim to collect references for")
	analyzeCmd.Flags().IntVar(&days, "days", 7, "number of days to look back for data")
	analyzeCmd.Flags().BoolVar(&noSynthetic, "no-synthetic", false, "disable synthetic data generation (only real data)")

	// Output flags
	analyzeCmd.Flags().StringVar(&outputDir, "output-dir", "analysis_results", "directory for JSON results and text summary")
	analyzeCmd.Flags().StringVar(&imageDir, "image-dir", "satellite_images", "directory for placeholder reference images")
	analyzeCmd.Flags().StringVar(&logFile, "log-file", "truthscan.log", "run log file (also logged to stdout)")
	analyzeCmd.Flags().DurationVar(&runTimeout, "run-timeout", 10*time.Minute, "overall timeout for the whole run")

	// HTTP flags
	analyzeCmd.Flags().DurationVar(&fetchTimeout, "timeout", 10*time.Second, "per-request timeout for mirror fetches")
	analyzeCmd.Flags().StringVar(&userAgent, "ua", model.DefaultConfig().HTTP.UserAgent, "HTTP User-Agent")
	analyzeCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	analyzeCmd.Flags().StringSliceVar(&mirrors, "mirror", nil, "mirror endpoint (repeatable; overrides the default list)")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable search result cache (force fresh fetch)")
	analyzeCmd.Flags().StringVar(&cacheDir, "cache-dir", ".truthscan-cache", "directory for the disk cache")
	analyzeCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks before scraping mirrors")
	analyzeCmd.Flags().Float64Var(&rps, "rps", 1.0, "max requests per second per mirror host")
	analyzeCmd.Flags().IntVar(&burst, "burst", 2, "rate limiter burst size")
	analyzeCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	analyzeCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	// Briefing flags
	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "generate an LLM collection briefing (separate file, never in the JSON report)")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "briefing provider (openai, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "briefing model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	fmt.Println(pipeline.Banner)
	fmt.Println()
	fmt.Println("TruthScan v1.0.0: OSINT reference aggregation")
	fmt.Println("Compiling satellite, flight, military, and social media references")
	fmt.Println()

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = fetchTimeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy
	if len(mirrors) > 0 {
		cfg.Social.Mirrors = mirrors
	}
	cfg.Social.RespectRobots = !noRobots
	cfg.Cache.Enabled = !noCache
	cfg.Cache.Dir = cacheDir
	cfg.RateLimiting.RequestsPerSecond = rps
	cfg.RateLimiting.BurstSize = burst
	cfg.Output.Dir = outputDir
	cfg.Output.ImageDir = imageDir
	cfg.Output.LogFile = logFile
	cfg.Output.Verbose = verbose

	// Configure briefing if enabled
	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	// Run log goes to stdout and the log file concurrently
	logSink, err := os.OpenFile(cfg.Output.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = logSink.Close() }()

	logger := log.New(io.MultiWriter(os.Stdout, logSink), "", log.LstdFlags)

	req := model.NewRequest(claim, days, !noSynthetic)

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Claim:      %s\n", req.Claim)
		fmt.Fprintf(os.Stderr, "Date range: %s to %s\n", req.StartDate(), req.EndDate())
		fmt.Fprintf(os.Stderr, "Synthetic:  %v\n", req.IncludeSynthetic)
		fmt.Fprintf(os.Stderr, "Mirrors:    %v\n", cfg.Social.Mirrors)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg, logger)

	result, err := p.Analyze(ctx, req)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ %d satellite sub-records\n", len(result.Report.SatelliteAnalysis))
		fmt.Fprintf(os.Stderr, "✓ %d flight sub-records\n", len(result.Report.FlightData))
		fmt.Fprintf(os.Stderr, "✓ %d military sub-records\n", len(result.Report.MilitaryMovements))
		fmt.Fprintf(os.Stderr, "✓ %d social media sub-records (%d posts)\n", len(result.Report.SocialMedia), result.Report.TotalSocialPosts())
		fmt.Fprintln(os.Stderr)
	}

	// Print the summary to console
	fmt.Println(result.Summary)

	// Optional briefing, after the report is written. Failures warn, never
	// fail the run.
	if llmEnabled {
		if err := writeBriefing(ctx, cfg, result); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: briefing generation failed: %v\n", err)
		}
	}

	return nil
}

// writeBriefing generates the optional LLM briefing into its own file
func writeBriefing(ctx context.Context, cfg *model.Config, result *pipeline.Result) error {
	briefer, err := llm.NewBriefer(llm.ConfigFromModel(cfg.LLM, cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy))
	if err != nil {
		return err
	}
	if !briefer.IsEnabled() {
		return nil
	}

	briefing, err := briefer.GenerateBriefing(ctx, *result.Report)
	if err != nil {
		return err
	}
	if briefing == nil {
		return nil
	}

	path := filepath.Join(cfg.Output.Dir, "truthscan_briefing.md")
	if err := os.WriteFile(path, []byte(llm.RenderMarkdown(briefing)), 0644); err != nil {
		return fmt.Errorf("write briefing: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Wrote briefing: %s (%s/%s)\n", path, briefing.Provider, briefing.Model)
	return nil
}
