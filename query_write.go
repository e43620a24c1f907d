// SPDX-License-Identifier: GPL-3.0-or-later

package docq

// Action is an event action token understood by [Insert] and [Remove].
type Action string

// Event action tokens.
const (
	ActionCreate Action = "create"
	ActionDelete Action = "delete"
)

// Create creates an instance of the class identified by ref with the
// given params.
func Create(ref, params Expr) Expr {
	return fn2("create", ref, "params", params)
}

// Update merges the given params into the instance identified by ref.
func Update(ref, params Expr) Expr {
	return fn2("update", ref, "params", params)
}

// Replace replaces the data of the instance identified by ref with the
// given params.
func Replace(ref, params Expr) Expr {
	return fn2("replace", ref, "params", params)
}

// Delete removes the instance identified by ref.
func Delete(ref Expr) Expr {
	return fn1("delete", ref)
}

// Insert adds an event with the given action and params to the history
// of the instance identified by ref at the given timestamp.
func Insert(ref, ts, action, params Expr) Expr {
	return fn4("insert", ref, "ts", ts, "action", action, "params", params)
}

// InsertAction is [Insert] with the action given as an [Action] token.
// Both entry points produce identical trees for equal tokens.
func InsertAction(ref, ts Expr, action Action, params Expr) Expr {
	return Insert(ref, ts, StringV(action), params)
}

// Remove deletes an event with the given action from the history of
// the instance identified by ref at the given timestamp.
func Remove(ref, ts, action Expr) Expr {
	return fn3("remove", ref, "ts", ts, "action", action)
}

// RemoveAction is [Remove] with the action given as an [Action] token.
func RemoveAction(ref, ts Expr, action Action) Expr {
	return Remove(ref, ts, StringV(action))
}

// CreateClass creates a class with the given params.
func CreateClass(params Expr) Expr {
	return fn1("create_class", params)
}

// CreateDatabase creates a database with the given params.
func CreateDatabase(params Expr) Expr {
	return fn1("create_database", params)
}

// CreateIndex creates an index with the given params.
func CreateIndex(params Expr) Expr {
	return fn1("create_index", params)
}

// CreateKey creates an authentication key with the given params.
func CreateKey(params Expr) Expr {
	return fn1("create_key", params)
}
