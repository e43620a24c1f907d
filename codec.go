// SPDX-License-Identifier: GPL-3.0-or-later

package docq

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// marshalExpr serializes a single query expression to the wire JSON.
func marshalExpr(expr Expr) ([]byte, error) {
	return json.Marshal(expr)
}

// marshalBatch serializes a sequence of query expressions to a JSON
// array, the wire form of a multi-expression transaction.
func marshalBatch(exprs []Expr) ([]byte, error) {
	return json.Marshal(ArrayV(exprs))
}

// decodeResource parses a success response body and returns the value
// stored under the top-level "resource" field.
//
// A JSON null resource decodes to the explicit [NullV], never to a nil
// Value. A malformed body is reported as an [*IOError], which keeps
// transport-level noise distinct from server-reported query errors.
func decodeResource(body []byte) (Value, error) {
	root, err := decodeValue(body)
	if err != nil {
		return nil, &IOError{Err: err}
	}
	obj, ok := root.(ObjectV)
	if !ok {
		return nil, &IOError{Err: fmt.Errorf("response is not a JSON object")}
	}
	resource, ok := obj.Lookup("resource")
	if !ok {
		return nil, &IOError{Err: fmt.Errorf("response has no resource field")}
	}
	return resource, nil
}

// decodeResources parses a batch response body, whose resource field
// holds one result per submitted expression, in submission order.
func decodeResources(body []byte) ([]Value, error) {
	resource, err := decodeResource(body)
	if err != nil {
		return nil, err
	}
	arr, ok := resource.(ArrayV)
	if !ok {
		return nil, &IOError{Err: fmt.Errorf("batch resource is not a JSON array")}
	}
	return []Value(arr), nil
}

// decodeValue decodes a whole JSON document into a [Value] tree.
func decodeValue(raw []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	value, err := decodeNext(dec)
	if err != nil {
		return nil, err
	}
	// Reject trailing garbage after the document. Only a clean EOF
	// means the body was exactly one JSON document.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after JSON document")
	}
	return value, nil
}

// decodeNext decodes the next JSON value from the token stream.
//
// We walk tokens by hand rather than unmarshaling into generic Go maps
// because objects must keep their key order and numbers must keep the
// integer/double distinction.
func decodeNext(dec *json.Decoder) (Value, error) {
	token, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, token)
}

// decodeToken decodes the value introduced by the given token.
func decodeToken(dec *json.Decoder, token json.Token) (Value, error) {
	switch token := token.(type) {
	case nil:
		return NullV{}, nil

	case bool:
		return BooleanV(token), nil

	case string:
		return StringV(token), nil

	case json.Number:
		return decodeNumber(token)

	case json.Delim:
		switch token {
		case '[':
			return decodeArray(dec)
		case '{':
			return decodeObject(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", token)
		}

	default:
		return nil, fmt.Errorf("unexpected JSON token %v", token)
	}
}

// decodeNumber maps a JSON number to [LongV] or [DoubleV].
//
// A literal with a fractional or exponent part is a double; anything
// else is an integer. Integers too large for int64 degrade to doubles.
func decodeNumber(number json.Number) (Value, error) {
	if strings.ContainsAny(number.String(), ".eE") {
		value, err := number.Float64()
		if err != nil {
			return nil, err
		}
		return DoubleV(value), nil
	}
	if value, err := number.Int64(); err == nil {
		return LongV(value), nil
	}
	value, err := number.Float64()
	if err != nil {
		return nil, err
	}
	return DoubleV(value), nil
}

// decodeArray decodes array elements until the closing bracket.
func decodeArray(dec *json.Decoder) (Value, error) {
	arr := ArrayV{}
	for dec.More() {
		elem, err := decodeNext(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, elem)
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return nil, err
	}
	return arr, nil
}

// decodeObject decodes object fields until the closing brace,
// preserving key order.
func decodeObject(dec *json.Decoder) (Value, error) {
	obj := ObjectV{}
	for dec.More() {
		keyToken, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyToken.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", keyToken)
		}
		value, err := decodeNext(dec)
		if err != nil {
			return nil, err
		}
		obj = append(obj, Field{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return nil, err
	}
	return obj, nil
}
