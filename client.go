// SPDX-License-Identifier: GPL-3.0-or-later

package docq

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"
)

// txnTimeHeader carries the transaction timestamp of a successful
// response, in the smallest time resolution supported by the server.
const txnTimeHeader = "X-Txn-Time"

// Client issues queries against the database service.
//
// A root client owns its [Transport]; session clients derived via
// [*Client.SessionClient] share the root's transport and last-seen
// transaction timestamp but carry their own authentication secret.
// Closing a session client never closes the shared transport.
//
// Clients are safe for concurrent use: multiple queries may be in
// flight at once from the same or derived clients, with no ordering
// guarantee between them.
//
// Construct via [NewClient].
type Client struct {
	// secret is the authentication credential for this client.
	secret string

	// transport performs the network exchanges. Shared with session
	// clients.
	transport Transport

	// ownsTransport reports whether Close should close the transport.
	ownsTransport bool

	// closed records whether Close already ran.
	closed atomic.Bool

	// lastTxnTime is the shared monotonic transaction-time watermark.
	// Root and session clients point to the same cell.
	lastTxnTime *atomic.Int64

	// ErrClassifier classifies errors for structured logging.
	ErrClassifier ErrClassifier

	// Logger is the [SLogger] to use.
	Logger SLogger

	// TimeNow is the function to get the current time.
	TimeNow func() time.Time
}

// NewClient returns a new root [*Client] using the given transport.
//
// The cfg argument contains the common configuration for docq
// operations, including the authentication secret.
//
// The transport argument performs the network exchanges; the root
// client takes ownership and closes it in [*Client.Close]. Use
// [NewHTTPTransport] for the default HTTP transport.
//
// The logger argument is the [SLogger] to use for structured logging.
func NewClient(cfg *Config, transport Transport, logger SLogger) *Client {
	return &Client{
		secret:        cfg.Secret,
		transport:     transport,
		ownsTransport: true,
		lastTxnTime:   &atomic.Int64{},
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		TimeNow:       cfg.TimeNow,
	}
}

// Query executes a single query expression and returns the decoded
// result value. A JSON null resource decodes to the explicit [NullV].
//
// On failure the caller receives exactly one typed error: a taxonomy
// error from the response status, [*Unavailable] or [*Timeout] for
// connection-level transport failures, or [*IOError] for a malformed
// response body.
func (c *Client) Query(ctx context.Context, expr Expr) (Value, error) {
	body, err := marshalExpr(expr)
	if err != nil {
		return nil, err
	}
	raw, err := c.roundTrip(ctx, body)
	if err != nil {
		return nil, err
	}
	return decodeResource(raw)
}

// QueryBatch executes the given expressions as a single atomic
// transaction and returns one decoded result per expression, in
// submission order. A failed batch never yields partial results.
func (c *Client) QueryBatch(ctx context.Context, exprs []Expr) ([]Value, error) {
	body, err := marshalBatch(exprs)
	if err != nil {
		return nil, err
	}
	raw, err := c.roundTrip(ctx, body)
	if err != nil {
		return nil, err
	}
	return decodeResources(raw)
}

// roundTrip runs the shared request lifecycle: exchange, classify,
// read. It returns the raw body of a success response.
//
// The transport response body is released on every exit path, whether
// we return the raw bytes, a classified error, or a read failure.
func (c *Client) roundTrip(ctx context.Context, body []byte) ([]byte, error) {
	lc := &queryLogContext{
		ErrClassifier: c.ErrClassifier,
		Logger:        c.Logger,
		SpanID:        NewSpanID(),
		TimeNow:       c.TimeNow,
	}
	t0 := c.TimeNow()
	deadline, _ := ctx.Deadline()
	lc.logStart(t0, deadline)

	resp, err := c.transport.Exchange(ctx, c.secret, body)
	if err != nil {
		err = mapTransportError(err)
		lc.logDone(t0, deadline, 0, err)
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		err = mapTransportError(err)
		lc.logDone(t0, deadline, resp.StatusCode, err)
		return nil, err
	}

	if resp.StatusCode >= 300 {
		err = classifyResponse(resp.StatusCode, raw)
		lc.logDone(t0, deadline, resp.StatusCode, err)
		return nil, err
	}

	c.observeTxnTime(resp.Header)
	lc.logDone(t0, deadline, resp.StatusCode, nil)
	return raw, nil
}

// observeTxnTime merges the transaction timestamp of a successful
// response into the shared watermark.
func (c *Client) observeTxnTime(header http.Header) {
	value := header.Get(txnTimeHeader)
	if value == "" {
		return
	}
	ts, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return
	}
	c.SyncLastTxnTime(ts)
}

// LastTxnTime returns the highest transaction timestamp observed so
// far across this client and all clients sharing its transport.
func (c *Client) LastTxnTime() int64 {
	return c.lastTxnTime.Load()
}

// SyncLastTxnTime advances the shared transaction-time watermark to
// max(current, candidate). The watermark never regresses, even when
// concurrently completing queries observe timestamps out of order.
func (c *Client) SyncLastTxnTime(candidate int64) {
	for {
		current := c.lastTxnTime.Load()
		if candidate <= current {
			return
		}
		if c.lastTxnTime.CompareAndSwap(current, candidate) {
			return
		}
	}
}

// SessionClient returns a derived client that authenticates with the
// given secret. The session client shares this client's transport and
// transaction-time watermark but does not own the transport.
func (c *Client) SessionClient(secret string) *Client {
	return &Client{
		secret:        secret,
		transport:     c.transport,
		ownsTransport: false,
		lastTxnTime:   c.lastTxnTime,
		ErrClassifier: c.ErrClassifier,
		Logger:        c.Logger,
		TimeNow:       c.TimeNow,
	}
}

// WithSession runs f with a session client authenticating with the
// given secret. The session client is closed when f returns, whether
// or not f fails.
func (c *Client) WithSession(secret string, f func(*Client) error) error {
	session := c.SessionClient(secret)
	defer session.Close()
	return f(session)
}

// Close releases the resources owned by this client. Closing a root
// client closes the shared transport; closing a session client does
// not. Close is idempotent.
func (c *Client) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	if !c.ownsTransport {
		return nil
	}
	return c.transport.Close()
}
