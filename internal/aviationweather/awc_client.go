package aviationweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/ngmaloney/preflight-terminal/internal/config"
	"github.com/ngmaloney/preflight-terminal/internal/scoring"
	"github.com/ngmaloney/preflight-terminal/pkg/logger"
)

const defaultBackoff = 500 * time.Millisecond

var errNoReport = errors.New("no report in response")

type cacheEntry struct {
	text      string
	fetchedAt time.Time
}

// AWCClient implements WeatherClient against the AviationWeather.gov data API
type AWCClient struct {
	baseURL     string
	httpClient  *http.Client
	userAgent   string
	maxRetries  int
	backoff     time.Duration
	cacheExpiry time.Duration
	cache       map[string]cacheEntry
	mu          sync.RWMutex
	logger      *logger.Logger
}

// NewAWCClient creates a client from the [wx] configuration
func NewAWCClient(cfg config.WeatherConfig, log *logger.Logger) *AWCClient {
	return &AWCClient{
		baseURL: cfg.APIBaseURL,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout(),
		},
		userAgent:   cfg.UserAgent,
		maxRetries:  cfg.MaxRetries,
		backoff:     defaultBackoff,
		cacheExpiry: cfg.CacheExpiry(),
		cache:       make(map[string]cacheEntry),
		logger:      log.Named("awc-client"),
	}
}

// FetchMetar returns the latest METAR for identifier
func (c *AWCClient) FetchMetar(ctx context.Context, identifier string) (string, bool) {
	return c.fetch(ctx, KindMetar, identifier)
}

// FetchTaf returns the current TAF for identifier
func (c *AWCClient) FetchTaf(ctx context.Context, identifier string) (string, bool) {
	return c.fetch(ctx, KindTaf, identifier)
}

func (c *AWCClient) fetch(ctx context.Context, kind ReportKind, identifier string) (string, bool) {
	id := scoring.NormalizeIdentifier(identifier)
	if id == "" {
		return "", false
	}

	key := string(kind) + ":" + id
	if text, ok := c.cached(key); ok {
		c.logger.Debug("Serving report from cache",
			logger.String("type", string(kind)),
			logger.String("airport", id))
		return text, true
	}

	text, err := c.fetchWithRetry(ctx, kind, id)
	if err != nil {
		c.logger.Warn("No report available",
			logger.String("type", string(kind)),
			logger.String("airport", id),
			logger.Error(err))
		return "", false
	}

	c.store(key, text)
	return text, true
}

func (c *AWCClient) cached(key string) (string, bool) {
	if c.cacheExpiry <= 0 {
		return "", false
	}

	c.mu.RLock()
	entry, ok := c.cache[key]
	c.mu.RUnlock()

	if ok && time.Since(entry.fetchedAt) < c.cacheExpiry {
		return entry.text, true
	}
	return "", false
}

func (c *AWCClient) store(key, text string) {
	if c.cacheExpiry <= 0 {
		return
	}

	c.mu.Lock()
	c.cache[key] = cacheEntry{text: text, fetchedAt: time.Now()}
	c.mu.Unlock()
}

// fetchWithRetry retries transport errors, non-200 responses and bad bodies
// with exponential backoff. An empty result is final.
func (c *AWCClient) fetchWithRetry(ctx context.Context, kind ReportKind, id string) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			wait := c.backoff * time.Duration(1<<uint(attempt-1))
			c.logger.Info("Retrying report fetch",
				logger.String("type", string(kind)),
				logger.String("airport", id),
				logger.Int("attempt", attempt),
				logger.Duration("backoff", wait))

			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(wait):
			}
		}

		text, err := c.fetchOnce(ctx, kind, id)
		if err == nil {
			return text, nil
		}
		if errors.Is(err, errNoReport) || ctx.Err() != nil {
			return "", err
		}

		lastErr = err
		c.logger.Debug("Report fetch failed, may retry",
			logger.String("type", string(kind)),
			logger.String("airport", id),
			logger.Int("attempt", attempt+1),
			logger.Int("max_attempts", c.maxRetries+1),
			logger.Error(err))
	}

	return "", lastErr
}

func (c *AWCClient) fetchOnce(ctx context.Context, kind ReportKind, id string) (string, error) {
	q := url.Values{}
	q.Set("ids", id)
	q.Set("format", "json")
	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, kind, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", kind, err)
	}
	defer resp.Body.Close()

	// AWC answers 204 when the station has no current report
	if resp.StatusCode == http.StatusNoContent {
		return "", errNoReport
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var rows []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(rows) == 0 {
		return "", errNoReport
	}

	text, ok := rawText(rows[0], rawTextFields[kind])
	if !ok {
		return "", errNoReport
	}
	return text, nil
}

// rawText returns the first of fields present on row as a non-empty string
func rawText(row map[string]any, fields []string) (string, bool) {
	for _, f := range fields {
		if s, ok := row[f].(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}
