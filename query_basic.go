// SPDX-License-Identifier: GPL-3.0-or-later

package docq

// Null returns the explicit null value.
func Null() Expr {
	return NullV{}
}

// Obj builds an object literal from ordered key/value fields.
//
// The literal is emitted inside the "object" wrapper so that user keys
// can never collide with wire operation names.
func Obj(fields ...Field) Expr {
	return fn1("object", ObjectV(fields))
}

// Arr builds an array literal from the given values.
func Arr(elems ...Expr) Expr {
	return ArrayV(elems)
}

// Do evaluates the given expressions in order and returns the result
// of the last one.
func Do(exprs ...Expr) Expr {
	return fn1("do", varargs(exprs))
}

// If evaluates cond and then evaluates either the then branch or the
// els branch.
func If(cond, then, els Expr) Expr {
	return fn3("if", cond, "then", then, "else", els)
}

// Let introduces the given ordered bindings and evaluates in with the
// bound variables in scope. Refer to bound variables with [Var].
func Let(bindings ObjectV, in Expr) Expr {
	return fn2("let", bindings, "in", in)
}

// Var references a variable introduced by [Let] or bound by a
// [Lambda] parameter.
func Var(name string) Expr {
	return fn1("var", StringV(name))
}

// Lambda builds an anonymous function with the given ordered parameter
// names and body.
//
// A single parameter is emitted as a bare name; two or more parameters
// are emitted as an array of names. Refer to parameters inside the body
// with [Var].
func Lambda(params []string, body Expr) Expr {
	names := make([]Expr, 0, len(params))
	for _, name := range params {
		names = append(names, StringV(name))
	}
	return fn2("lambda", varargs(names), "expr", body)
}

// Call invokes the stored function identified by ref with the given
// arguments. The arguments follow the varargs collapsing rule.
func Call(ref Expr, args ...Expr) Expr {
	return fn2("call", ref, "arguments", varargs(args))
}

// At evaluates expr at the given point-in-time timestamp.
func At(ts, expr Expr) Expr {
	return fn2("at", ts, "expr", expr)
}

// NextID reserves and returns a new unique identifier.
func NextID() Expr {
	return fn1("next_id", NullV{})
}

// Ref builds a reference from its string form.
func Ref(id string) Expr {
	return fn1("@ref", StringV(id))
}

// Database references a database by name.
func Database(name Expr) Expr {
	return fn1("database", name)
}

// Index references an index by name.
func Index(name Expr) Expr {
	return fn1("index", name)
}

// Class references a class by name.
func Class(name Expr) Expr {
	return fn1("class", name)
}
