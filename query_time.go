// SPDX-License-Identifier: GPL-3.0-or-later

package docq

// TimeUnit is a time resolution token understood by [Epoch].
type TimeUnit string

// Time resolution tokens.
const (
	Second      TimeUnit = "second"
	Millisecond TimeUnit = "millisecond"
	Microsecond TimeUnit = "microsecond"
	Nanosecond  TimeUnit = "nanosecond"
)

// Time constructs a timestamp from an ISO-8601 string.
func Time(str Expr) Expr {
	return fn1("time", str)
}

// Epoch constructs a timestamp from an offset since the Unix epoch
// expressed in the given unit.
func Epoch(num, unit Expr) Expr {
	return fn2("epoch", num, "unit", unit)
}

// EpochUnit is [Epoch] with the unit given as a [TimeUnit] token.
// Both entry points produce identical trees for equal tokens.
func EpochUnit(num Expr, unit TimeUnit) Expr {
	return Epoch(num, StringV(unit))
}

// Date constructs a date from an ISO-8601 "YYYY-MM-DD" string.
func Date(str Expr) Expr {
	return fn1("date", str)
}
