// SPDX-License-Identifier: GPL-3.0-or-later

package docq

// Map applies lambda to each element of coll and returns the collection
// of results.
func Map(lambda, coll Expr) Expr {
	return fn2("map", lambda, "collection", coll)
}

// Foreach applies lambda to each element of coll for its effects and
// returns the original collection.
func Foreach(lambda, coll Expr) Expr {
	return fn2("foreach", lambda, "collection", coll)
}

// Filter keeps the elements of coll for which lambda returns true.
func Filter(lambda, coll Expr) Expr {
	return fn2("filter", lambda, "collection", coll)
}

// Take returns the first num elements of coll.
func Take(num, coll Expr) Expr {
	return fn2("take", num, "collection", coll)
}

// Drop returns coll without its first num elements.
func Drop(num, coll Expr) Expr {
	return fn2("drop", num, "collection", coll)
}

// Prepend inserts elems before the elements of coll.
func Prepend(elems, coll Expr) Expr {
	return fn2("prepend", elems, "collection", coll)
}

// Append inserts elems after the elements of coll.
func Append(elems, coll Expr) Expr {
	return fn2("append", elems, "collection", coll)
}
