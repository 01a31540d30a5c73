package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	ytpkg "github.com/killallgit/catalog-api/pkg/youtube"
)

var (
	// ErrVideoNotFound indicates the video does not exist or is not embeddable
	ErrVideoNotFound = errors.New("youtube video not found")

	// ErrRateLimited indicates the upstream rate limit was exceeded
	ErrRateLimited = errors.New("youtube rate limit exceeded")

	// ErrInvalidResponse indicates the upstream returned an unparseable body
	ErrInvalidResponse = errors.New("invalid response from youtube")
)

// defaultUserAgents provides a pool of legitimate user agents to rotate through
var defaultUserAgents = []string{
	"CatalogAPI/1.0 (compatible; +https://github.com/killallgit/catalog-api)",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.1 Safari/605.1.15",
	"curl/7.88.1",
}

// Config holds configuration for the oEmbed client
type Config struct {
	RequestsPerMinute int           // Default: 60
	BurstSize         int           // Default: 5
	Timeout           time.Duration // Default: 10s
	MaxRetries        int           // Default: 3
	RetryBackoff      time.Duration // Default: 1s
	UserAgents        []string      // Custom user agents, uses defaults if empty
	BaseURL           string        // Default: https://www.youtube.com (for testing)
}

// Client fetches video metadata from YouTube's oEmbed endpoint. It needs no
// API key, which makes it the fallback fetcher; the tradeoff is that oEmbed
// carries no upload date or description.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	userAgents  []string
	config      Config
	baseURL     string

	requests     atomic.Int64
	userAgentIdx int32
}

// NewClient creates a new oEmbed metadata client
func NewClient(cfg Config) *Client {
	if cfg.RequestsPerMinute == 0 {
		cfg.RequestsPerMinute = 60
	}
	if cfg.BurstSize == 0 {
		cfg.BurstSize = 5
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryBackoff == 0 {
		cfg.RetryBackoff = time.Second
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.youtube.com"
	}
	if len(cfg.UserAgents) == 0 {
		cfg.UserAgents = defaultUserAgents
	}

	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		rateLimiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), cfg.BurstSize),
		userAgents:  cfg.UserAgents,
		config:      cfg,
		baseURL:     cfg.BaseURL,
	}
}

// FetchVideoInfo fetches oEmbed metadata for a video ID
func (c *Client) FetchVideoInfo(ctx context.Context, videoID string) (*VideoInfo, error) {
	watchURL := ytpkg.CanonicalURL(videoID)
	endpoint := fmt.Sprintf("%s/oembed?url=%s&format=json", c.baseURL, url.QueryEscape(watchURL))

	var lastErr error
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.config.RetryBackoff * time.Duration(attempt)):
			}
		}

		info, retryable, err := c.doFetch(ctx, endpoint, videoID)
		if err == nil {
			return info, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
	}
	return nil, fmt.Errorf("fetching video info for %s: %w", videoID, lastErr)
}

func (c *Client) doFetch(ctx context.Context, endpoint, videoID string) (info *VideoInfo, retryable bool, err error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("User-Agent", c.nextUserAgent())
	req.Header.Set("Accept", "application/json")

	c.requests.Add(1)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusUnauthorized:
		// oEmbed answers 401 for private videos, 404 for missing ones
		return nil, false, ErrVideoNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, true, ErrRateLimited
	case resp.StatusCode != http.StatusOK:
		return nil, true, fmt.Errorf("%w: HTTP %d", ErrInvalidResponse, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, true, err
	}

	var oembed oembedResponse
	if err := json.Unmarshal(body, &oembed); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	thumbnail := oembed.ThumbnailURL
	if thumbnail == "" {
		thumbnail = ytpkg.ThumbnailURL(videoID)
	}

	return &VideoInfo{
		VideoID:      videoID,
		URL:          ytpkg.CanonicalURL(videoID),
		Title:        oembed.Title,
		ChannelName:  oembed.AuthorName,
		ThumbnailURL: thumbnail,
	}, false, nil
}

func (c *Client) nextUserAgent() string {
	idx := atomic.AddInt32(&c.userAgentIdx, 1)
	return c.userAgents[int(idx)%len(c.userAgents)]
}
