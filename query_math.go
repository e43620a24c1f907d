// SPDX-License-Identifier: GPL-3.0-or-later

package docq

// Add returns the sum of the given numbers.
func Add(nums ...Expr) Expr {
	return fn1("add", varargs(nums))
}

// Multiply returns the product of the given numbers.
func Multiply(nums ...Expr) Expr {
	return fn1("multiply", varargs(nums))
}

// Subtract returns the first number minus the remaining ones.
func Subtract(nums ...Expr) Expr {
	return fn1("subtract", varargs(nums))
}

// Divide returns the first number divided by the remaining ones.
func Divide(nums ...Expr) Expr {
	return fn1("divide", varargs(nums))
}

// Modulo returns the remainder of dividing the first number by the
// remaining ones.
func Modulo(nums ...Expr) Expr {
	return fn1("modulo", varargs(nums))
}
