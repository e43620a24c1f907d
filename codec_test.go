// SPDX-License-Identifier: GPL-3.0-or-later

package docq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Encoding a value and decoding the result yields a structurally
// equal value, for every shape including the explicit null.
func TestCodecRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		value Value
	}{
		{"null", NullV{}},
		{"boolean", BooleanV(true)},
		{"long", LongV(1234567890123)},
		{"double", DoubleV(3.25)},
		{"integral double", DoubleV(10)},
		{"string", StringV("hello world")},
		{"array", ArrayV{LongV(1), DoubleV(2.5), StringV("x"), NullV{}}},
		{
			"object",
			ObjectV{{Key: "b", Value: LongV(1)}, {Key: "a", Value: StringV("z")}},
		},
		{
			"nested",
			ObjectV{
				{Key: "data", Value: ArrayV{
					ObjectV{{Key: "n", Value: DoubleV(1)}},
					ArrayV{NullV{}},
				}},
				{Key: "empty", Value: ObjectV{}},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := marshalExpr(tc.value)
			require.NoError(t, err)
			decoded, err := decodeValue(raw)
			require.NoError(t, err)
			assert.Equal(t, tc.value, decoded)
		})
	}
}

// A batch serializes to a JSON array of the member expressions.
func TestMarshalBatch(t *testing.T) {
	raw, err := marshalBatch([]Expr{Add(LongV(1), LongV(2)), Add(LongV(3), LongV(4))})

	require.NoError(t, err)
	assert.Equal(t, `[{"add":[1,2]},{"add":[3,4]}]`, string(raw))
}

// A JSON null resource decodes to the explicit NullV, never to an
// absent result.
func TestDecodeResourceNull(t *testing.T) {
	value, err := decodeResource([]byte(`{"resource":null}`))

	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, NullV{}, value)
}

// The resource tree decodes recursively with key order and numeric
// tags preserved.
func TestDecodeResourceTree(t *testing.T) {
	body := []byte(`{"resource":{"ts":1520225686564575,"score":2.0,"tags":["a","b"]}}`)

	value, err := decodeResource(body)

	require.NoError(t, err)
	assert.Equal(t, ObjectV{
		{Key: "ts", Value: LongV(1520225686564575)},
		{Key: "score", Value: DoubleV(2)},
		{Key: "tags", Value: ArrayV{StringV("a"), StringV("b")}},
	}, value)
}

// Malformed bodies and bodies without a resource field are reported
// as I/O-kind errors, distinct from server query errors.
func TestDecodeResourceFailures(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"malformed JSON", `{"resource":`},
		{"trailing garbage", `{"resource":1} tail`},
		{"not an object", `[1,2,3]`},
		{"missing resource", `{"data":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decodeResource([]byte(tc.body))
			var ioErr *IOError
			require.ErrorAs(t, err, &ioErr)
		})
	}
}

// Batch responses decode element-wise in wire order.
func TestDecodeResources(t *testing.T) {
	values, err := decodeResources([]byte(`{"resource":[3,7,null]}`))

	require.NoError(t, err)
	assert.Equal(t, []Value{LongV(3), LongV(7), NullV{}}, values)
}

// A batch resource that is not an array is an I/O-kind error.
func TestDecodeResourcesNotArray(t *testing.T) {
	_, err := decodeResources([]byte(`{"resource":42}`))

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
}
