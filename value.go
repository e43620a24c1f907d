// SPDX-License-Identifier: GPL-3.0-or-later

package docq

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is the wire data type: a tagged union of the JSON shapes the
// database understands.
//
// The concrete variants are [NullV], [BooleanV], [LongV], [DoubleV],
// [StringV], [ArrayV], and [ObjectV]. Values are immutable trees: the
// query constructors share subtrees freely and never mutate them after
// construction, so cycles cannot occur.
//
// Every Value marshals to JSON preserving its tag: a [LongV] always
// emits an integer literal and a [DoubleV] always emits a literal with
// a fractional or exponent part, so encoding and then decoding a Value
// yields a structurally equal Value.
type Value interface {
	json.Marshaler

	// isValue seals the union.
	isValue()
}

// Expr is a [Value] that represents a query operation call: an object
// whose keys are wire-protocol operation names (e.g. "map", "create",
// "paginate").
//
// There is no separate runtime type; the alias exists to document which
// parameters expect query fragments rather than plain data.
type Expr = Value

// NullV is the explicit null value.
type NullV struct{}

// BooleanV is a boolean value.
type BooleanV bool

// LongV is a 64-bit integer value.
type LongV int64

// DoubleV is a 64-bit floating point value.
type DoubleV float64

// StringV is a string value.
type StringV string

// ArrayV is an ordered sequence of values.
type ArrayV []Value

// Field is a single key/value entry of an [ObjectV].
type Field struct {
	Key   string
	Value Value
}

// ObjectV is an ordered mapping from string keys to values.
//
// Keys are unique and insertion order is preserved on the wire, which
// keeps serialized payloads deterministic. Query constructors rely on
// this to emit operation fields in a stable order.
type ObjectV []Field

// Lookup returns the value stored under key and whether it is present.
func (v ObjectV) Lookup(key string) (Value, bool) {
	for _, field := range v {
		if field.Key == key {
			return field.Value, true
		}
	}
	return nil, false
}

func (NullV) isValue()    {}
func (BooleanV) isValue() {}
func (LongV) isValue()    {}
func (DoubleV) isValue()  {}
func (StringV) isValue()  {}
func (ArrayV) isValue()   {}
func (ObjectV) isValue()  {}

// MarshalJSON implements [json.Marshaler].
func (NullV) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// MarshalJSON implements [json.Marshaler].
func (v BooleanV) MarshalJSON() ([]byte, error) {
	return strconv.AppendBool(nil, bool(v)), nil
}

// MarshalJSON implements [json.Marshaler].
func (v LongV) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(v), 10), nil
}

// MarshalJSON implements [json.Marshaler].
//
// Integral doubles emit a trailing ".0" so that the decoder can tell
// them apart from integers and the numeric tag survives a round trip.
func (v DoubleV) MarshalJSON() ([]byte, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("docq: cannot marshal %v as JSON", f)
	}
	repr := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(repr, ".eE") {
		repr += ".0"
	}
	return []byte(repr), nil
}

// MarshalJSON implements [json.Marshaler].
func (v StringV) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(v))
}

// MarshalJSON implements [json.Marshaler].
func (v ArrayV) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for idx, elem := range v {
		if idx > 0 {
			buf.WriteByte(',')
		}
		raw, err := json.Marshal(elem)
		if err != nil {
			return nil, err
		}
		buf.Write(raw)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// MarshalJSON implements [json.Marshaler].
func (v ObjectV) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for idx, field := range v {
		if idx > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		raw, err := json.Marshal(field.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(raw)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
