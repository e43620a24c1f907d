// SPDX-License-Identifier: GPL-3.0-or-later

package docq

// Cursor selects where a page starts relative to a position in the set.
//
// The variants are [Before], [After], and [NoCursor]. A cursor is
// consumed when the paginate expression is built and is never persisted.
type Cursor interface {
	// cursorField returns the wire key and value to emit, or ok=false
	// when no cursor field must be emitted.
	cursorField() (key string, value Expr, ok bool)
}

type beforeCursor struct{ value Expr }

type afterCursor struct{ value Expr }

type noCursor struct{}

// Before returns a cursor selecting the page that ends just before the
// given position.
func Before(value Expr) Cursor {
	return beforeCursor{value: value}
}

// After returns a cursor selecting the page that starts at the given
// position.
func After(value Expr) Cursor {
	return afterCursor{value: value}
}

// NoCursor returns the absent cursor: no cursor field is emitted.
func NoCursor() Cursor {
	return noCursor{}
}

func (c beforeCursor) cursorField() (string, Expr, bool) {
	return "before", c.value, true
}

func (c afterCursor) cursorField() (string, Expr, bool) {
	return "after", c.value, true
}

func (noCursor) cursorField() (string, Expr, bool) {
	return "", nil, false
}

// PaginateOpt is an optional parameter of [Paginate].
type PaginateOpt func(*paginateParams)

// paginateParams collects the optional paginate fields. A nil field
// means "omit the key", never "emit a null value".
type paginateParams struct {
	cursor  Cursor
	ts      Expr
	size    Expr
	events  Expr
	sources Expr
}

// WithCursor sets the page cursor.
func WithCursor(cursor Cursor) PaginateOpt {
	return func(p *paginateParams) { p.cursor = cursor }
}

// WithTS requests the page as of the given timestamp.
func WithTS(ts Expr) PaginateOpt {
	return func(p *paginateParams) { p.ts = ts }
}

// WithSize sets the maximum number of elements per page.
func WithSize(size Expr) PaginateOpt {
	return func(p *paginateParams) { p.size = size }
}

// WithEvents requests the event history of the set instead of its
// current members.
func WithEvents(events Expr) PaginateOpt {
	return func(p *paginateParams) { p.events = events }
}

// WithSources annotates each page element with its source sets.
func WithSources(sources Expr) PaginateOpt {
	return func(p *paginateParams) { p.sources = sources }
}

// Paginate pages through the given set.
//
// Only the options actually supplied become wire fields, and they are
// emitted in a fixed order regardless of the order of the opts: cursor
// field first (if any), then ts, size, events, sources. The order has
// no wire semantics but keeps payloads deterministic.
func Paginate(set Expr, opts ...PaginateOpt) Expr {
	params := paginateParams{cursor: NoCursor()}
	for _, opt := range opts {
		opt(&params)
	}
	expr := ObjectV{{Key: "paginate", Value: set}}
	if key, value, ok := params.cursor.cursorField(); ok {
		expr = append(expr, Field{Key: key, Value: value})
	}
	if params.ts != nil {
		expr = append(expr, Field{Key: "ts", Value: params.ts})
	}
	if params.size != nil {
		expr = append(expr, Field{Key: "size", Value: params.size})
	}
	if params.events != nil {
		expr = append(expr, Field{Key: "events", Value: params.events})
	}
	if params.sources != nil {
		expr = append(expr, Field{Key: "sources", Value: params.sources})
	}
	return expr
}
