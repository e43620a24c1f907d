// SPDX-License-Identifier: GPL-3.0-or-later

package docq

// Concat joins the given list of strings into one string.
func Concat(list Expr) Expr {
	return fn1("concat", list)
}

// ConcatWithSeparator joins the given list of strings, placing the
// separator between adjacent elements.
func ConcatWithSeparator(list, separator Expr) Expr {
	return fn2("concat", list, "separator", separator)
}

// Casefold normalizes the given string for case-insensitive
// comparison.
func Casefold(str Expr) Expr {
	return fn1("casefold", str)
}
