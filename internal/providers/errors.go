package providers

import "errors"

// ErrMalformedPayload marks an upstream response that was reachable but
// missing the expected data; the guard treats it exactly like an
// unreachable upstream.
var ErrMalformedPayload = errors.New("upstream payload missing expected data")
