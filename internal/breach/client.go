package breach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"footprintscan/internal/config"
	"footprintscan/internal/model"
)

// maxBreachBodySize limits how much of the service response is read.
const maxBreachBodySize = 2 * 1024 * 1024

// serviceBreach mirrors the breach object shape returned by the
// disclosure service.
type serviceBreach struct {
	Name         string   `json:"Name"`
	Title        string   `json:"Title"`
	Domain       string   `json:"Domain"`
	BreachDate   string   `json:"BreachDate"`
	AddedDate    string   `json:"AddedDate"`
	PwnCount     int64    `json:"PwnCount"`
	Description  string   `json:"Description"`
	DataClasses  []string `json:"DataClasses"`
	IsVerified   bool     `json:"IsVerified"`
	IsFabricated bool     `json:"IsFabricated"`
	IsSensitive  bool     `json:"IsSensitive"`
	IsRetired    bool     `json:"IsRetired"`
	IsSpamList   bool     `json:"IsSpamList"`
}

// Client queries the breach-disclosure service for an email address.
//
// Breach data is best-effort: an unreachable upstream degrades to the
// synthetic generator instead of failing the scan. The only failure
// propagated to the caller is the rate-limit case, which must be
// reported distinctly so the caller can back off.
type Client struct {
	// httpClient issues the lookup requests.
	httpClient *http.Client

	// endpoint is the breached-account base URL; the URL-encoded
	// email is appended.
	endpoint string

	// apiKey is the optional service API key.
	apiKey string

	// userAgent is the descriptive client identifier the service
	// requires.
	userAgent string

	// timeout bounds the lookup request.
	timeout time.Duration

	// fallback produces synthetic records when the service is
	// unreachable.
	fallback *Generator

	// logger for structured logging.
	logger *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithEndpoint overrides the breach service base URL.
func WithEndpoint(endpoint string) ClientOption {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithAPIKey sets the service API key sent on lookups.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithTimeout sets the lookup timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithFallback sets the synthetic generator used when the service is
// unreachable.
func WithFallback(g *Generator) ClientOption {
	return func(c *Client) {
		c.fallback = g
	}
}

// WithClientLogger sets a custom logger for the client.
func WithClientLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a breach lookup client.
// If httpClient is nil, http.DefaultClient is used.
func NewClient(httpClient *http.Client, opts ...ClientOption) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		httpClient: httpClient,
		endpoint:   config.DefaultBreachEndpoint,
		userAgent:  config.DefaultClientUserAgent,
		timeout:    config.DefaultBreachTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.fallback == nil {
		c.fallback = NewGenerator()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Lookup returns the ordered breach records for an email address.
//
// A 404 from the service means "no breaches" and returns an empty
// slice. A 429 returns ErrRateLimited. Any other failure falls back
// to the synthetic generator; callers cannot distinguish that path
// from a real hit except through BreachRecord.Synthetic.
func (c *Client) Lookup(ctx context.Context, email string) ([]model.BreachRecord, error) {
	records, err := c.query(ctx, email)
	if err != nil {
		if errors.Is(err, ErrRateLimited) {
			return nil, err
		}
		c.logger.Warn("breach service unavailable, using synthetic fallback",
			"error", err,
		)
		return c.fallback.Generate(email), nil
	}
	return records, nil
}

// query performs the actual service request.
func (c *Client) query(ctx context.Context, email string) ([]model.BreachRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reqURL := c.endpoint + url.QueryEscape(email)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build breach lookup request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if c.apiKey != "" {
		req.Header.Set("hibp-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("breach lookup failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		// Fall through to decoding below.
	case http.StatusNotFound:
		// No breaches found. A success path, not an error.
		return []model.BreachRecord{}, nil
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	default:
		return nil, fmt.Errorf("breach service returned unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBreachBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read breach response: %w", err)
	}

	var breaches []serviceBreach
	if err := json.Unmarshal(body, &breaches); err != nil {
		return nil, fmt.Errorf("failed to decode breach response: %w", err)
	}

	records := make([]model.BreachRecord, 0, len(breaches))
	for _, b := range breaches {
		records = append(records, b.toRecord())
	}
	return records, nil
}

// toRecord converts a service breach object into the shared record
// shape, normalizing absent fields so every field is populated.
func (b serviceBreach) toRecord() model.BreachRecord {
	dataClasses := b.DataClasses
	if dataClasses == nil {
		dataClasses = []string{}
	}
	return model.BreachRecord{
		Name:         b.Name,
		Title:        b.Title,
		Domain:       b.Domain,
		BreachDate:   parseServiceDate(b.BreachDate),
		AddedDate:    parseServiceDate(b.AddedDate),
		PwnCount:     b.PwnCount,
		Description:  b.Description,
		DataClasses:  dataClasses,
		IsVerified:   b.IsVerified,
		IsFabricated: b.IsFabricated,
		IsSensitive:  b.IsSensitive,
		IsRetired:    b.IsRetired,
		IsSpamList:   b.IsSpamList,
	}
}

// parseServiceDate parses the service's date formats: breach dates are
// date-only, added dates are RFC 3339. Unparseable dates yield the
// zero time rather than an error; dates are informational.
func parseServiceDate(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}
