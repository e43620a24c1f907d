// SPDX-License-Identifier: GPL-3.0-or-later

package docq

import (
	"log/slog"
	"time"
)

// queryLogContext holds common logging state for a query lifecycle.
//
// This type exists to consolidate the logging boilerplate shared by
// the single-expression and batched query paths.
type queryLogContext struct {
	// ErrClassifier classifies errors for structured logging.
	ErrClassifier ErrClassifier

	// Logger is the SLogger to use.
	Logger SLogger

	// SpanID correlates all events of one query lifecycle.
	SpanID string

	// TimeNow is the function to get the current time.
	TimeNow func() time.Time
}

// logStart logs the start of a query lifecycle.
func (lc *queryLogContext) logStart(t0 time.Time, deadline time.Time) {
	lc.Logger.Info(
		"queryStart",
		slog.Time("deadline", deadline),
		slog.String("spanID", lc.SpanID),
		slog.Time("t", t0),
	)
}

// logDone logs the completion of a query lifecycle.
func (lc *queryLogContext) logDone(t0 time.Time, deadline time.Time, statusCode int, err error) {
	lc.Logger.Info(
		"queryDone",
		slog.Time("deadline", deadline),
		slog.Any("err", err),
		slog.String("errClass", lc.ErrClassifier.Classify(err)),
		slog.Int("httpResponseStatusCode", statusCode),
		slog.String("spanID", lc.SpanID),
		slog.Time("t0", t0),
		slog.Time("t", lc.TimeNow()),
	)
}
