// SPDX-License-Identifier: GPL-3.0-or-later

package docq

// Equals reports whether the given values are all equal.
func Equals(values ...Expr) Expr {
	return fn1("equals", varargs(values))
}

// LT reports whether each value is less than the next one.
func LT(values ...Expr) Expr {
	return fn1("lt", varargs(values))
}

// LTE reports whether each value is less than or equal to the next one.
func LTE(values ...Expr) Expr {
	return fn1("lte", varargs(values))
}

// GT reports whether each value is greater than the next one.
func GT(values ...Expr) Expr {
	return fn1("gt", varargs(values))
}

// GTE reports whether each value is greater than or equal to the next
// one.
func GTE(values ...Expr) Expr {
	return fn1("gte", varargs(values))
}

// And returns the conjunction of the given booleans.
func And(values ...Expr) Expr {
	return fn1("and", varargs(values))
}

// Or returns the disjunction of the given booleans.
func Or(values ...Expr) Expr {
	return fn1("or", varargs(values))
}

// Not returns the negation of the given boolean.
func Not(value Expr) Expr {
	return fn1("not", value)
}

// Contains reports whether the given path exists inside in.
func Contains(path, in Expr) Expr {
	return fn2("contains", path, "in", in)
}

// ContainsPath is [Contains] with the path given as a [PathBuilder],
// flattened to its segments before building the final object.
func ContainsPath(path PathBuilder, in Expr) Expr {
	return Contains(path.expr(), in)
}

// Select extracts the value at the given path inside from, failing the
// query when the path is absent.
func Select(path, from Expr) Expr {
	return fn2("select", path, "from", from)
}

// SelectPath is [Select] with the path given as a [PathBuilder].
func SelectPath(path PathBuilder, from Expr) Expr {
	return Select(path.expr(), from)
}

// SelectWithDefault extracts the value at the given path inside from,
// returning def when the path is absent.
func SelectWithDefault(path, from, def Expr) Expr {
	return fn3("select", path, "from", from, "default", def)
}
