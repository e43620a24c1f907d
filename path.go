// SPDX-License-Identifier: GPL-3.0-or-later

package docq

// PathBuilder accumulates ordered path segments for [SelectPath] and
// [ContainsPath].
//
// Segments are strings (object keys) or integers (array offsets). The
// zero value is the empty path. Append operations return a new builder
// and never mutate the receiver, so builders can be shared and extended
// from a common prefix.
type PathBuilder struct {
	segments []Expr
}

// NewPathBuilder returns an empty [PathBuilder].
func NewPathBuilder() PathBuilder {
	return PathBuilder{}
}

// AtKey appends an object key segment.
func (p PathBuilder) AtKey(key string) PathBuilder {
	return p.append(StringV(key))
}

// AtIndex appends an array offset segment.
func (p PathBuilder) AtIndex(offset int64) PathBuilder {
	return p.append(LongV(offset))
}

func (p PathBuilder) append(segment Expr) PathBuilder {
	segments := make([]Expr, 0, len(p.segments)+1)
	segments = append(segments, p.segments...)
	segments = append(segments, segment)
	return PathBuilder{segments: segments}
}

// expr flattens the accumulated segments following the varargs
// collapsing rule: a single segment stays bare.
func (p PathBuilder) expr() Expr {
	return varargs(p.segments)
}
