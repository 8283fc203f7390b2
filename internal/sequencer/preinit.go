package sequencer

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// httpProber is the production [Prober]: a single GET against the target
// URL using a resty client with a per-request timeout.
type httpProber struct {
	client *resty.Client
}

// NewHTTPProber constructs a [Prober] whose individual probes are bounded
// by timeout.
func NewHTTPProber(timeout time.Duration) Prober {
	return &httpProber{
		client: resty.New().SetTimeout(timeout),
	}
}

// Probe performs one readiness check. The endpoint counts as ready when it
// answers 200, 301, or 302. Redirects with a Location header are followed
// and resolve to the final status; a bare 301/302 without one is surfaced
// as-is and still counts as ready.
func (p *httpProber) Probe(ctx context.Context, url string) error {
	resp, err := p.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return fmt.Errorf("readiness probe failed: %w", err)
	}

	switch resp.StatusCode() {
	case 200, 301, 302:
		return nil
	default:
		return fmt.Errorf("readiness probe got status %d", resp.StatusCode())
	}
}
