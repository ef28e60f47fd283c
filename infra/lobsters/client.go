package lobsters

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"lobsterm/domain"
)

const (
	maxAttempts    = 3
	baseBackoff    = 500 * time.Millisecond
	maxBackoff     = 4 * time.Second
	requestTimeout = 10 * time.Second
	userAgent      = "lobsterm/1.0"
)

// Client fetches story pages and comment threads from a lobste.rs-compatible
// JSON API. Transient failures (transport errors, 429, 5xx) are retried with
// exponential backoff; permanent failures surface immediately as one of the
// domain error classes. The client never caches.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	log     *slog.Logger

	// backoff is overridable in tests to avoid real sleeps.
	backoff func(attempt int) time.Duration
}

// NewClient creates an API client for the given base URL.
// The site bans aggressive clients, so requests are paced client-side.
func NewClient(baseURL string, log *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
		limiter: rate.NewLimiter(rate.Limit(1), 4),
		log:     log,
		backoff: defaultBackoff,
	}
}

func defaultBackoff(attempt int) time.Duration {
	wait := baseBackoff * (1 << uint(attempt))
	if wait > maxBackoff {
		wait = maxBackoff
	}
	return wait
}

// FetchPage returns one page of stories. Page numbers start at 1.
func (c *Client) FetchPage(ctx context.Context, page int) (domain.Page, error) {
	if page < 1 {
		return domain.Page{}, fmt.Errorf("%w: page %d below 1", domain.ErrParse, page)
	}
	path := fmt.Sprintf("/hottest/page/%d.json", page)

	var raw []storyJSON
	if err := c.getJSON(ctx, path, &raw); err != nil {
		return domain.Page{}, err
	}
	stories := make([]domain.Story, 0, len(raw))
	for _, sj := range raw {
		s, err := sj.toDomain()
		if err != nil {
			return domain.Page{}, err
		}
		stories = append(stories, s)
	}
	return domain.Page{Number: page, Stories: stories}, nil
}

// FetchComments returns the flat comment list for a story in site order.
func (c *Client) FetchComments(ctx context.Context, storyID string) ([]domain.Comment, error) {
	if storyID == "" {
		return nil, fmt.Errorf("%w: empty story id", domain.ErrParse)
	}
	path := "/s/" + storyID + ".json"

	var raw storyDetailJSON
	if err := c.getJSON(ctx, path, &raw); err != nil {
		return nil, err
	}
	comments := make([]domain.Comment, 0, len(raw.Comments))
	for _, cj := range raw.Comments {
		dc, err := cj.toDomain()
		if err != nil {
			return nil, err
		}
		comments = append(comments, dc)
	}
	return comments, nil
}

// getJSON performs a GET with retry and decodes the body into dst.
func (c *Client) getJSON(ctx context.Context, path string, dst any) error {
	url := c.baseURL + path

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
		}

		retryAfter, err := c.getOnce(ctx, url, dst)
		if err == nil {
			return nil
		}
		lastErr = err
		if !isTransient(err) || ctx.Err() != nil {
			return err
		}

		if attempt < maxAttempts-1 {
			wait := c.backoff(attempt)
			// Rate-limit responses get the longer of backoff and Retry-After.
			if retryAfter > wait {
				wait = retryAfter
			}
			c.log.Warn("retrying request",
				"url", url,
				"attempt", attempt+1,
				"max_attempts", maxAttempts,
				"backoff_ms", wait.Milliseconds(),
				"error", err)
			select {
			case <-ctx.Done():
				return fmt.Errorf("%w: %v", domain.ErrNetwork, ctx.Err())
			case <-time.After(wait):
			}
		}
	}
	return lastErr
}

// getOnce performs a single request. The returned duration is the server's
// Retry-After hint, zero when absent.
func (c *Client) getOnce(ctx context.Context, url string, dst any) (time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: creating request: %v", domain.ErrNetwork, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// Fall through to decode.
	case resp.StatusCode == http.StatusNotFound:
		return 0, fmt.Errorf("%w: %s", domain.ErrNotFound, url)
	case resp.StatusCode == http.StatusTooManyRequests:
		return parseRetryAfter(resp.Header.Get("Retry-After")),
			fmt.Errorf("%w: %s", domain.ErrRateLimited, url)
	case resp.StatusCode >= 500:
		return 0, fmt.Errorf("%w: %s returned %d", domain.ErrNetwork, url, resp.StatusCode)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("%w: %s returned %d: %s", domain.ErrParse, url, resp.StatusCode, body)
	}

	if err := decodeJSON(resp.Body, dst); err != nil {
		return 0, fmt.Errorf("%w: decoding %s: %v", domain.ErrParse, url, err)
	}
	return 0, nil
}

// isTransient reports whether an error class is worth retrying.
func isTransient(err error) bool {
	return errors.Is(err, domain.ErrNetwork) || errors.Is(err, domain.ErrRateLimited)
}

func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return 0
	}
	d := time.Duration(secs) * time.Second
	if d > maxBackoff {
		d = maxBackoff
	}
	return d
}
