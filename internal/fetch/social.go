// Package fetch retrieves recent public posts for a search term from an
// ordered list of mirror endpoints. Retrieval is best-effort: the first
// mirror that yields at least one post wins, and total failure is an empty
// result set, never an error.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/truthscan/truthscan/internal/cache"
	"github.com/truthscan/truthscan/internal/model"
	"github.com/truthscan/truthscan/internal/util"
)

// SocialFetcher scrapes mirror endpoints for public posts
type SocialFetcher struct {
	httpClient *http.Client
	userAgent  string
	mirrors    []string
	maxPosts   int
	maxBytes   int64
	limiter    *Limiter
	robots     *util.RobotsChecker // nil disables the robots gate
	cache      cache.Cache         // nil disables caching
	cacheTTL   time.Duration
	logger     *log.Logger
}

// NewSocialFetcher creates a fetcher from the run configuration
func NewSocialFetcher(cfg *model.Config, logger *log.Logger) *SocialFetcher {
	f := &SocialFetcher{
		httpClient: &http.Client{
			Timeout: cfg.HTTP.Timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.HTTP.UserAgent,
		mirrors:   cfg.Social.Mirrors,
		maxPosts:  cfg.Social.MaxPosts,
		maxBytes:  cfg.HTTP.MaxBodyBytes,
		limiter:   NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize),
		logger:    logger,
	}

	if cfg.Social.RespectRobots {
		f.robots = util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	}
	if cfg.Cache.Enabled {
		f.cache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		f.cacheTTL = cfg.Cache.DiskTTL
	}

	return f
}

// Search tries each mirror in order and returns the first non-empty batch of
// posts for the term, each tagged synthetic=false and annotated with the
// mirror that supplied it. All mirrors failing is not an error: the caller's
// fallback policy decides what happens next. The only error returned is
// context cancellation.
func (f *SocialFetcher) Search(ctx context.Context, term string) ([]model.SocialPost, error) {
	if f.cache != nil {
		if posts, found := f.cachedPosts(term); found {
			f.logger.Printf("Using cached results for %q (%d posts)", term, len(posts))
			return posts, nil
		}
	}

	for _, mirror := range f.mirrors {
		posts, err := f.searchMirror(ctx, mirror, term)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			f.logger.Printf("Mirror %s failed for %q: %v", mirror, term, err)
			continue
		}
		if len(posts) == 0 {
			f.logger.Printf("No posts found for %q on %s", term, mirror)
			continue
		}

		f.logger.Printf("Found %d posts for %q on %s", len(posts), term, mirror)
		if f.cache != nil {
			f.storePosts(term, posts)
		}
		return posts, nil
	}

	f.logger.Printf("All mirrors failed for %q", term)
	return []model.SocialPost{}, nil
}

// searchMirror issues one search request against one mirror
func (f *SocialFetcher) searchMirror(ctx context.Context, mirror, term string) ([]model.SocialPost, error) {
	searchURL := fmt.Sprintf("%s/search?f=tweets&q=%s", mirror, url.QueryEscape(term))

	if err := f.limiter.Wait(ctx, searchURL); err != nil {
		return nil, err
	}

	if f.robots != nil && !f.robots.IsAllowed(ctx, searchURL) {
		return nil, fmt.Errorf("disallowed by robots.txt")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	posts, err := parseTimeline(string(body), f.maxPosts)
	if err != nil {
		return nil, fmt.Errorf("parse timeline: %w", err)
	}

	for i := range posts {
		posts[i].Source = "Nitter scrape via " + mirror
	}

	return posts, nil
}

// cachedPosts returns a previously stored batch for the term, if any
func (f *SocialFetcher) cachedPosts(term string) ([]model.SocialPost, bool) {
	data, found := f.cache.Get(cache.TermKey(term))
	if !found {
		return nil, false
	}

	var posts []model.SocialPost
	if err := json.Unmarshal(data, &posts); err != nil {
		_ = f.cache.Delete(cache.TermKey(term))
		return nil, false
	}

	return posts, true
}

// storePosts caches a successful batch for the term
func (f *SocialFetcher) storePosts(term string, posts []model.SocialPost) {
	data, err := json.Marshal(posts)
	if err != nil {
		return
	}
	if err := f.cache.Set(cache.TermKey(term), data, f.cacheTTL); err != nil {
		f.logger.Printf("Cache write failed for %q: %v", term, err)
	}
}
