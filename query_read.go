// SPDX-License-Identifier: GPL-3.0-or-later

package docq

// Get retrieves the instance identified by ref.
func Get(ref Expr) Expr {
	return fn1("get", ref)
}

// GetAt retrieves the instance identified by ref as of the given
// timestamp.
//
// This is the timestamped variant of [Get]; both emit a "get" object,
// this one adding the "ts" key.
func GetAt(ref, ts Expr) Expr {
	return fn2("get", ref, "ts", ts)
}

// Exists reports whether the instance identified by ref exists.
func Exists(ref Expr) Expr {
	return fn1("exists", ref)
}

// ExistsAt reports whether the instance identified by ref existed at
// the given timestamp.
func ExistsAt(ref, ts Expr) Expr {
	return fn2("exists", ref, "ts", ts)
}

// Count returns the number of elements in the given set.
func Count(set Expr) Expr {
	return fn1("count", set)
}

// CountEvents returns the number of events in the history of the
// given set.
func CountEvents(set Expr) Expr {
	return fn2("count", set, "events", BooleanV(true))
}
