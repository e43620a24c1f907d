// SPDX-License-Identifier: GPL-3.0-or-later

package docq

import (
	"github.com/bassosimone/runtimex"
	"github.com/google/uuid"
)

// NewSpanID returns a UUIDv7 representing a span.
//
// A span is a sequence of operations that can fail in a single, specific
// way. For example, the full lifecycle of one query: serialize, exchange,
// classify, decode.
//
// The client generates a span ID per query and attaches it to every log
// event it emits for that query, enabling correlation across in-flight
// requests. Callers implementing custom transports can use this function
// for the same purpose.
//
// The span terminology is borrowed from OTel.
//
// This function panics if the system random number generator fails,
// which should only happen under extraordinary circumstances.
func NewSpanID() string {
	return runtimex.PanicOnError1(uuid.NewV7()).String()
}
