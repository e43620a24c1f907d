// SPDX-License-Identifier: GPL-3.0-or-later

package docq

import (
	"testing"
)

// Paginate with no options emits exactly the paginate key and nothing
// else.
func TestPaginateDefaults(t *testing.T) {
	assertJSON(t, Paginate(Match(Index(StringV("all")))),
		`{"paginate":{"match":{"index":"all"}}}`)
}

// Only the supplied options become wire fields.
func TestPaginateOptionalFields(t *testing.T) {
	set := Var("s")

	assertJSON(t, Paginate(set, WithCursor(Before(LongV(42))), WithSize(LongV(10))),
		`{"paginate":{"var":"s"},"before":42,"size":10}`)
	assertJSON(t, Paginate(set, WithCursor(After(LongV(42)))),
		`{"paginate":{"var":"s"},"after":42}`)
	assertJSON(t, Paginate(set, WithTS(LongV(123))),
		`{"paginate":{"var":"s"},"ts":123}`)
	assertJSON(t, Paginate(set, WithEvents(BooleanV(true)), WithSources(BooleanV(true))),
		`{"paginate":{"var":"s"},"events":true,"sources":true}`)
}

// NoCursor emits neither the before nor the after key.
func TestPaginateNoCursor(t *testing.T) {
	assertJSON(t, Paginate(Var("s"), WithCursor(NoCursor()), WithSize(LongV(5))),
		`{"paginate":{"var":"s"},"size":5}`)
}

// Fields are emitted in the fixed order regardless of option order.
func TestPaginateFieldOrder(t *testing.T) {
	expr := Paginate(Var("s"),
		WithSources(BooleanV(true)),
		WithSize(LongV(10)),
		WithEvents(BooleanV(true)),
		WithTS(LongV(1)),
		WithCursor(Before(LongV(2))),
	)
	assertJSON(t, expr,
		`{"paginate":{"var":"s"},"before":2,"ts":1,"size":10,"events":true,"sources":true}`)
}
