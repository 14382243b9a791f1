package checker

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/nholzer/samplecheck/internal/config"
	"github.com/nholzer/samplecheck/pkg/version"
)

// Prober issues HEAD requests against sample URLs.
type Prober struct {
	client    *http.Client
	userAgent string
}

// NewProber creates a Prober from the provided options. The timeout covers
// both connection setup and the full request.
func NewProber(opts *config.Options) (*Prober, error) {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: opts.Timeout,
		}).DialContext,
	}

	if opts.Proxy != "" {
		proxyURL, err := url.Parse(opts.Proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL %q: %w", opts.Proxy, err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.Timeout,
	}

	ua := opts.UserAgent
	if ua == "" {
		ua = "samplecheck/" + version.Version
	}

	return &Prober{
		client:    client,
		userAgent: ua,
	}, nil
}

// Check issues a single HEAD request for rawURL. Any failure while issuing
// the request (DNS, connect, TLS, timeout, malformed URL, cancellation) is
// folded into Result.Err; Check itself never fails, so a bad URL cannot
// abort a run.
func (p *Prober) Check(ctx context.Context, rawURL string) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return Result{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", p.userAgent)

	start := time.Now()
	resp, err := p.client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		return Result{URL: rawURL, Duration: elapsed, Err: err}
	}
	resp.Body.Close()

	return Result{
		URL:        rawURL,
		StatusCode: resp.StatusCode,
		Duration:   elapsed,
	}
}
