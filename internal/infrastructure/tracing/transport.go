package tracing

import (
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Transport wraps an http.RoundTripper so every outbound request is
// traced as a client span with the trace context injected into its
// headers.
type Transport struct {
	base http.RoundTripper
}

// NewTransport creates a traced transport around base. A nil base
// falls back to http.DefaultTransport.
func NewTransport(base http.RoundTripper) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{base: base}
}

// RoundTrip opens a client span, injects the trace context, and
// classifies the outcome. A transport error that yields no response
// takes the failure path; the span is closed either way.
func (t *Transport) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx, span := StartClientSpan(r.Context(), r)
	defer span.End()

	// RoundTrippers must not mutate the caller's request.
	r = r.Clone(ctx)
	Inject(ctx, r.Header)

	resp, err := t.base.RoundTrip(r)
	if err != nil {
		OnFailure(span)
		return nil, err
	}

	OnResponse(span, resp.StatusCode)
	return resp, nil
}

// NewClient returns a resty client whose requests are traced and
// propagate trace context to the next hop.
func NewClient() *resty.Client {
	return resty.NewWithClient(&http.Client{Transport: NewTransport(nil)})
}
