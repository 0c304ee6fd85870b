// Package netprobe answers "does this domain exist and serve a website"
// with a DNS lookup followed by independent HTTP and HTTPS probes.
package netprobe

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Result describes one domain probe. A probe never returns an error: a
// timed-out or failed lookup simply reads as unreachable.
type Result struct {
	Resolved bool
	HTTPOk   bool
	HTTPSOk  bool
}

// Reachable reports whether either scheme answered with a non-5xx status.
func (r Result) Reachable() bool {
	return r.HTTPOk || r.HTTPSOk
}

// Prober checks domain reachability. Abstracted so the scoring pipeline
// is testable without network access.
type Prober interface {
	Probe(ctx context.Context, domain string) Result
}

// HTTPProber resolves via DNS and issues GET requests over both schemes
// with a short per-request timeout.
type HTTPProber struct {
	client   *http.Client
	resolver *net.Resolver
	logger   *zap.Logger
}

// New returns an HTTPProber with the given per-probe timeout.
func New(timeout time.Duration, logger *zap.Logger) *HTTPProber {
	return &HTTPProber{
		client: &http.Client{
			Timeout: timeout,
		},
		resolver: net.DefaultResolver,
		logger:   logger,
	}
}

// Probe resolves the domain, then tries HTTP and HTTPS independently.
// If DNS resolution fails the scheme probes are skipped entirely.
func (p *HTTPProber) Probe(ctx context.Context, domain string) Result {
	if domain == "" {
		return Result{}
	}

	if _, err := p.resolver.LookupHost(ctx, domain); err != nil {
		p.logger.Debug("domain did not resolve", zap.String("domain", domain), zap.Error(err))
		return Result{}
	}

	return Result{
		Resolved: true,
		HTTPOk:   p.fetch(ctx, "http", domain),
		HTTPSOk:  p.fetch(ctx, "https", domain),
	}
}

func (p *HTTPProber) fetch(ctx context.Context, scheme, domain string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s://%s", scheme, domain), nil)
	if err != nil {
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Debug("probe request failed",
			zap.String("scheme", scheme),
			zap.String("domain", domain),
			zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode < 500
}
