package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"footprintscan/internal/config"
	"footprintscan/internal/model"
)

// Public info strings used by the probing strategies.
// These are data, not errors: an inconclusive probe is surfaced to the
// consumer as a verdict, never as a failure.
const (
	infoProfileExists      = "Profile exists"
	infoProfileNotFound    = "Profile not found"
	infoManualVerification = "Manual verification required"
	infoCheckFailed        = "Check failed"
	infoUnverifiedDetails  = "Could not verify profile details"
)

// maxProbeBodySize limits how much of a profile page is read when
// extracting public info. Profile pages past this size carry nothing
// we need.
const maxProbeBodySize = 512 * 1024

// Prober probes a single external identity source for one subject and
// returns exactly one tri-state existence verdict.
//
// Probe never returns an error: every failure mode resolves to a
// verdict. Platforms with a dedicated check endpoint use the
// API-backed strategy; all others use the URL-probing strategy.
type Prober struct {
	// client issues the probe requests. Injected so tests can point
	// probes at local servers and so transport configuration stays in
	// one place.
	client *http.Client

	// userAgent is sent on every probe. Several platforms block
	// default client signatures, so this defaults to a realistic
	// browser string.
	userAgent string

	// timeout bounds each individual probe request.
	timeout time.Duration

	// logger for structured logging.
	logger *slog.Logger
}

// ProberOption configures a Prober.
type ProberOption func(*Prober)

// WithProberUserAgent sets the User-Agent header sent on probes.
func WithProberUserAgent(ua string) ProberOption {
	return func(p *Prober) {
		p.userAgent = ua
	}
}

// WithProberTimeout sets the per-request probe timeout.
func WithProberTimeout(timeout time.Duration) ProberOption {
	return func(p *Prober) {
		p.timeout = timeout
	}
}

// WithProberLogger sets a custom logger for the prober.
func WithProberLogger(logger *slog.Logger) ProberOption {
	return func(p *Prober) {
		p.logger = logger
	}
}

// NewProber creates a Prober using the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewProber(client *http.Client, opts ...ProberOption) *Prober {
	if client == nil {
		client = http.DefaultClient
	}
	p := &Prober{
		client:    client,
		userAgent: config.DefaultBrowserUserAgent,
		timeout:   config.DefaultProbeTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Probe checks whether a public profile exists on the target platform.
// It always produces a verdict; all failure modes resolve to one of
// the tri-state outcomes per the platform's strategy.
func (p *Prober) Probe(ctx context.Context, target model.PlatformTarget) model.ExistenceVerdict {
	verdict := model.ExistenceVerdict{
		Platform:   target.Name,
		ProfileURL: target.ProfileURL,
	}

	if target.HasCheckURL() {
		verdict.Exists, verdict.PublicInfo = p.probeAPI(ctx, target)
	} else {
		verdict.Exists, verdict.PublicInfo = p.probeURL(ctx, target)
	}

	p.logger.Debug("platform probed",
		"platform", target.Name,
		"exists", verdict.Exists.String(),
	)
	return verdict
}

// probeAPI implements the API-backed strategy against the platform's
// dedicated existence-check endpoint.
//
// The policy is asymmetric: a 404 is the only strong negative signal,
// so any other failure (timeout, 5xx, network error) is treated as an
// inconclusive "assume exists" rather than "assume absent".
func (p *Prober) probeAPI(ctx context.Context, target model.PlatformTarget) (model.Existence, string) {
	body, status, err := p.get(ctx, target.CheckURL)
	if err != nil {
		p.logger.Debug("API probe inconclusive",
			"platform", target.Name,
			"error", err,
		)
		return model.ExistenceConfirmed, infoUnverifiedDetails
	}

	switch {
	case status == http.StatusOK:
		return model.ExistenceConfirmed, extractAPIPublicInfo(target.Name, body)
	case status == http.StatusNotFound:
		return model.ExistenceAbsent, infoProfileNotFound
	default:
		return model.ExistenceConfirmed, infoUnverifiedDetails
	}
}

// probeURL implements the URL-probing strategy against the public
// profile URL. Only 200 and 404 are valid outcomes; any other status
// prevents validation, and transport failures are reported distinctly.
func (p *Prober) probeURL(ctx context.Context, target model.PlatformTarget) (model.Existence, string) {
	body, status, err := p.get(ctx, target.ProfileURL)
	if err != nil {
		p.logger.Debug("URL probe failed",
			"platform", target.Name,
			"error", err,
		)
		return model.ExistenceUnknown, infoCheckFailed
	}

	switch status {
	case http.StatusOK:
		if title := extractTitle(body); title != "" {
			return model.ExistenceConfirmed, title
		}
		return model.ExistenceConfirmed, infoProfileExists
	case http.StatusNotFound:
		return model.ExistenceAbsent, infoProfileNotFound
	default:
		return model.ExistenceUnknown, infoManualVerification
	}
}

// get issues a GET with the probe timeout and the configured
// User-Agent, returning the truncated body and status code.
// On transport failure the status is zero and the error non-nil.
func (p *Prober) get(ctx context.Context, url string) ([]byte, int, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build probe request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("probe request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProbeBodySize))
	if err != nil && !errors.Is(err, io.EOF) {
		// A truncated body still carries the status signal.
		return nil, resp.StatusCode, nil
	}
	return body, resp.StatusCode, nil
}

// extractAPIPublicInfo pulls platform-specific public fields out of an
// API response body. Unknown platforms, or platforms whose expected
// fields are absent, fall back to a generic status string.
func extractAPIPublicInfo(platform string, body []byte) string {
	switch platform {
	case "GitHub":
		var user struct {
			Bio  string `json:"bio"`
			Name string `json:"name"`
		}
		if err := json.Unmarshal(body, &user); err == nil {
			if user.Bio != "" {
				return user.Bio
			}
			if user.Name != "" {
				return user.Name
			}
		}
	case "Reddit":
		var about struct {
			Data struct {
				LinkKarma *int64 `json:"link_karma"`
			} `json:"data"`
		}
		if err := json.Unmarshal(body, &about); err == nil && about.Data.LinkKarma != nil {
			return fmt.Sprintf("%d karma", *about.Data.LinkKarma)
		}
	}
	return infoProfileExists
}

// extractTitle returns the trimmed <title> text of an HTML document,
// or empty string if the document has none or does not parse.
func extractTitle(body []byte) string {
	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return ""
	}

	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if title != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "title" {
			if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				title = strings.TrimSpace(n.FirstChild.Data)
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return title
}
