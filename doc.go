// SPDX-License-Identifier: GPL-3.0-or-later

// Package docq is a client for issuing structured queries against a
// remote transactional document database over HTTP.
//
// # Core Abstractions
//
// Queries are trees of [Value], the tagged union mirroring the wire
// data model (null, boolean, integer, double, string, ordered array,
// key-ordered object). The query constructors ([Get], [Map], [Create],
// [Paginate], ...) are pure functions assembling [Expr] trees keyed by
// wire operation names; they perform no I/O and cannot fail.
//
// [*Client] executes expressions: it serializes the tree, POSTs it via
// a [Transport], classifies the response status into the typed error
// taxonomy, and decodes the body back into a [Value]. [*Client.QueryBatch]
// submits several expressions as one atomic transaction and returns
// their results in submission order.
//
// # Error Taxonomy
//
// Failed queries yield exactly one typed error: [*BadRequest],
// [*Unauthorized], [*PermissionDenied], [*NotFound], [*InternalError],
// [*Unavailable], or [*UnknownError] from the response status;
// [*Unavailable] or [*Timeout] for connection-level transport
// failures; [*IOError] for a malformed body on a success status.
// Match with [errors.As]. Each status-derived error carries the parsed
// [*QueryErrorResponse] with the server's structured error entries.
//
// # Sessions and Transaction Time
//
// [*Client.SessionClient] derives a client holding a different
// authentication secret while sharing the root's [Transport] and its
// last-seen transaction timestamp. The timestamp is a monotonic
// watermark merged atomically on every successful response, so
// concurrently completing queries can never regress it. The root
// client owns the transport: closing a session client is a no-op on
// the shared transport, closing the root client releases it.
//
// # Observability
//
// All operations support structured logging via [SLogger] (compatible
// with [log/slog]). By default, logging is disabled. The client emits
// queryStart/queryDone span events around each query lifecycle and the
// default [*HTTPTransport] emits httpRoundTripStart/httpRoundTripDone
// around each exchange. Completion events include err and errClass
// fields; error classification is configurable via [ErrClassifier].
// Events belonging to one query share a spanID (UUIDv7, see
// [NewSpanID]) enabling correlation across concurrent requests.
//
// # Timeout and Context Philosophy
//
// This package is context-transparent: operations never modify the
// context they receive. The caller controls timeouts externally via
// [context.WithTimeout] or [context.WithDeadline]; transport-level
// timeouts surface as [*Timeout].
//
// # Design Boundaries
//
// This package intentionally implements only the query pipeline. The
// following are out of scope and belong to the [Transport] or to the
// caller:
//
//   - Retry and backoff logic
//   - Connection pooling and TLS configuration
//   - Client-side queueing or admission control
//   - Query planning or optimization
package docq
