// SPDX-License-Identifier: GPL-3.0-or-later

package docq

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bassosimone/runtimex"
	"golang.org/x/net/http2"
)

// Transport is the collaborator performing the network exchange for a
// query: one POST-style request/response round trip per call.
//
// Connection pooling, socket-level retries, TLS configuration, and
// metrics recording are transport concerns; the client never looks
// below this interface.
type Transport interface {
	// Exchange POSTs the serialized query body to the service root,
	// authenticating with the given secret, and returns the raw
	// response. The caller owns the response body and must close it.
	Exchange(ctx context.Context, secret string, body []byte) (*http.Response, error)

	// Close releases the resources owned by the transport.
	Close() error
}

// HTTPTransport is the default [Transport] over net/http.
//
// HTTPTransport performs exchanges with structured logging:
// httpRoundTripStart/httpRoundTripDone span events are emitted around
// each round trip.
//
// All fields are safe to modify after construction but before first use
// of Exchange(). Fields must not be mutated concurrently with Exchange().
//
// Construct via [NewHTTPTransport].
type HTTPTransport struct {
	// client is the underlying HTTP client.
	client *http.Client

	// endpoint is the service root URL.
	endpoint string

	// closeIdleFunc closes idle connections in the client transport.
	closeIdleFunc func()

	// ErrClassifier classifies errors for structured logging.
	ErrClassifier ErrClassifier

	// Logger is the [SLogger] to use.
	Logger SLogger

	// TimeNow is the function to get the current time.
	TimeNow func() time.Time
}

// NewHTTPTransport returns a new [*HTTPTransport].
//
// The cfg argument contains the common configuration for docq
// operations. When [Config.HTTPClient] is nil, the transport builds a
// pooled client with HTTP/2 enabled.
//
// The logger argument is the [SLogger] to use for structured logging.
func NewHTTPTransport(cfg *Config, logger SLogger) *HTTPTransport {
	client := cfg.HTTPClient
	closeIdleFunc := func() {}
	if client == nil {
		txp := &http.Transport{}
		runtimex.PanicOnError1(http2.ConfigureTransports(txp))
		client = &http.Client{Transport: txp}
		closeIdleFunc = txp.CloseIdleConnections
	}
	return &HTTPTransport{
		client:        client,
		endpoint:      cfg.Endpoint,
		closeIdleFunc: closeIdleFunc,
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		TimeNow:       cfg.TimeNow,
	}
}

var _ Transport = &HTTPTransport{}

// Exchange implements [Transport].
func (txp *HTTPTransport) Exchange(ctx context.Context, secret string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, txp.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+secret)
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	t0 := txp.TimeNow()
	deadline, _ := ctx.Deadline()
	httpLogRoundTripStart(txp, req, t0, deadline)
	resp, err := txp.client.Do(req)
	httpLogRoundTripDone(txp, req, t0, deadline, resp, err)
	if err != nil {
		return nil, err
	}

	// Wrap the response body with lazy structured logging.
	resp.Body = httpBodyWrap(resp.Body, txp.ErrClassifier, txp.endpoint, txp.Logger, txp.TimeNow)
	return resp, nil
}

// Close implements [Transport].
func (txp *HTTPTransport) Close() error {
	txp.closeIdleFunc()
	return nil
}

func httpLogRoundTripStart(txp *HTTPTransport, req *http.Request, t0 time.Time, deadline time.Time) {
	txp.Logger.Info(
		"httpRoundTripStart",
		slog.Time("deadline", deadline),
		slog.String("httpMethod", req.Method),
		slog.String("httpUrl", req.URL.String()),
		slog.Time("t", t0),
	)
}

func httpLogRoundTripDone(txp *HTTPTransport, req *http.Request,
	t0 time.Time, deadline time.Time, resp *http.Response, err error) {
	var statusCode int
	if resp != nil {
		statusCode = resp.StatusCode
	}
	txp.Logger.Info(
		"httpRoundTripDone",
		slog.Time("deadline", deadline),
		slog.Any("err", err),
		slog.String("errClass", txp.ErrClassifier.Classify(err)),
		slog.String("httpMethod", req.Method),
		slog.String("httpUrl", req.URL.String()),
		slog.Int("httpResponseStatusCode", statusCode),
		slog.Time("t0", t0),
		slog.Time("t", txp.TimeNow()),
	)
}
