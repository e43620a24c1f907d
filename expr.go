// SPDX-License-Identifier: GPL-3.0-or-later

package docq

// The fnN helpers build operation objects with a fixed set of keys in a
// fixed order. The key names are part of the wire protocol and must not
// be changed.

// fn1 builds an operation object with one field.
func fn1(k1 string, v1 Expr) Expr {
	return ObjectV{{Key: k1, Value: v1}}
}

// fn2 builds an operation object with two fields.
func fn2(k1 string, v1 Expr, k2 string, v2 Expr) Expr {
	return ObjectV{{Key: k1, Value: v1}, {Key: k2, Value: v2}}
}

// fn3 builds an operation object with three fields.
func fn3(k1 string, v1 Expr, k2 string, v2 Expr, k3 string, v3 Expr) Expr {
	return ObjectV{{Key: k1, Value: v1}, {Key: k2, Value: v2}, {Key: k3, Value: v3}}
}

// fn4 builds an operation object with four fields.
func fn4(k1 string, v1 Expr, k2 string, v2 Expr, k3 string, v3 Expr, k4 string, v4 Expr) Expr {
	return ObjectV{{Key: k1, Value: v1}, {Key: k2, Value: v2}, {Key: k3, Value: v3}, {Key: k4, Value: v4}}
}

// varargs collapses a variable argument list per the wire convention:
// a single element stays bare, two or more elements become an array.
//
// The server expects this wire-size optimization; emitting a one-element
// array where a bare value is due changes the meaning of the payload.
func varargs(args []Expr) Expr {
	if len(args) == 1 {
		return args[0]
	}
	return ArrayV(args)
}
