package extxml

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Transport posts one raw request document and returns the raw response
// body. The core never retries or pools on its own; any retry policy lives
// behind this boundary.
type Transport interface {
	PostRaw(ctx context.Context, body []byte) ([]byte, error)
}

// HTTPTransport is a blocking HTTP POST transport for the ExtXML endpoint.
type HTTPTransport struct {
	httpClient *http.Client
	endpoint   string
	retries    uint64
}

// NewHTTPTransport creates a transport for the given endpoint URL. With
// retries > 0, failed posts are retried that many times with exponential
// backoff; the default is a single attempt.
func NewHTTPTransport(endpoint string, timeout time.Duration, retries int) *HTTPTransport {
	t := &HTTPTransport{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
	}
	if retries > 0 {
		t.retries = uint64(retries)
	}
	return t
}

// PostRaw sends one request document and returns the response body bytes.
// Both bodies are iso8859-1; the transport treats them as opaque. Any
// failure is reported as a TransportError wrapping the cause.
func (t *HTTPTransport) PostRaw(ctx context.Context, body []byte) ([]byte, error) {
	var out []byte
	post := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "text/xml; charset=iso8859-1")

		resp, err := t.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("HTTP %d from %s", resp.StatusCode, t.endpoint)
		}
		out, err = io.ReadAll(resp.Body)
		return err
	}

	var err error
	if t.retries > 0 {
		policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), t.retries), ctx)
		err = backoff.Retry(post, policy)
	} else {
		err = post()
	}
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	return out, nil
}
