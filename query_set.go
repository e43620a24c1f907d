// SPDX-License-Identifier: GPL-3.0-or-later

package docq

// Match returns the set of instances covered by the given index.
func Match(index Expr) Expr {
	return fn1("match", index)
}

// MatchTerm returns the set of index entries matching the given terms.
// The terms follow the varargs collapsing rule.
func MatchTerm(index Expr, terms ...Expr) Expr {
	return fn2("match", index, "terms", varargs(terms))
}

// Union returns the set of elements present in any of the given sets.
func Union(sets ...Expr) Expr {
	return fn1("union", varargs(sets))
}

// Intersection returns the set of elements present in all of the given
// sets.
func Intersection(sets ...Expr) Expr {
	return fn1("intersection", varargs(sets))
}

// Difference returns the set of elements present in the first set and
// absent from the others.
func Difference(sets ...Expr) Expr {
	return fn1("difference", varargs(sets))
}

// Join maps each element of source through target, which names an
// index or a lambda producing a set, and returns the union of the
// resulting sets.
func Join(source, target Expr) Expr {
	return fn2("join", source, "with", target)
}
