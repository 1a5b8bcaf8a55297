package mockserver

import (
	"fmt"
	"net/http"
	"net/url"
)

// Transport reroutes provider requests to a mock server, keeping path and query.
// The client's base URLs are fixed, so pointing it at a local server happens here.
type Transport struct {
	target *url.URL
	base   http.RoundTripper
}

// NewTransport returns a Transport sending everything to target through base.
// A nil base uses http.DefaultTransport.
func NewTransport(target string, base http.RoundTripper) (*Transport, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("invalid mock server URL %q: %w", target, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("mock server URL %q must include scheme and host", target)
	}
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{target: u, base: base}, nil
}

func (t *Transport) RoundTrip(r *http.Request) (*http.Response, error) {
	out := r.Clone(r.Context())
	out.URL.Scheme = t.target.Scheme
	out.URL.Host = t.target.Host
	out.Host = t.target.Host
	return t.base.RoundTrip(out)
}
