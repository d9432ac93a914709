package phpserial

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSerialized(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{input: "N;", expected: true},
		{input: "b:0;", expected: true},
		{input: "b:1;", expected: true},
		{input: "  b:1;\n", expected: true},
		{input: "b:2;", expected: false},
		{input: "i:42;", expected: true},
		{input: "i:-7;", expected: true},
		{input: "i:4x;", expected: false},
		{input: "d:0.5;", expected: true},
		{input: "d:1.0E+25;", expected: true},
		{input: "d:INF;", expected: true},
		{input: `s:5:"hello";`, expected: true},
		{input: `s:0:"";`, expected: true},
		{input: `s:5:"hello"`, expected: false},
		{input: `a:0:{}`, expected: true},
		{input: `a:2:{bogus`, expected: true},
		{input: `a:x:{}`, expected: false},
		{input: `O:8:"stdClass":0:{}`, expected: false},
		{input: "http://www.example.com/wp-content/uploads/a.png", expected: false},
		{input: "", expected: false},
		{input: "i:", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsSerialized(tt.input))
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Value
	}{
		{name: "null", input: "N;", expected: Null{}},
		{name: "false", input: "b:0;", expected: Bool(false)},
		{name: "true", input: "b:1;", expected: Bool(true)},
		{name: "negative int", input: "i:-12;", expected: Int(-12)},
		{name: "float", input: "d:0.25;", expected: Float(0.25)},
		{name: "exponent float", input: "d:1.0E+25;", expected: Float(1e25)},
		{name: "infinity", input: "d:-INF;", expected: Float(math.Inf(-1))},
		{name: "string", input: `s:5:"hello";`, expected: String("hello")},
		{name: "string with quotes and semicolons", input: `s:6:"a";b"c";`, expected: String(`a";b"c`)},
		{name: "multi-byte string", input: `s:6:"héllo";`, expected: String("héllo")},
		{name: "empty array", input: "a:0:{}", expected: Array{}},
		{
			name:  "list",
			input: `a:2:{i:0;s:1:"a";i:1;i:2;}`,
			expected: Array{
				{Key: IntKey(0), Value: String("a")},
				{Key: IntKey(1), Value: Int(2)},
			},
		},
		{
			name:  "mixed keys keep order",
			input: `a:3:{s:6:"bucket";s:1:"x";i:7;b:1;s:3:"url";N;}`,
			expected: Array{
				{Key: StringKey("bucket"), Value: String("x")},
				{Key: IntKey(7), Value: Bool(true)},
				{Key: StringKey("url"), Value: Null{}},
			},
		},
		{
			name:  "nested",
			input: `a:1:{s:5:"sizes";a:1:{s:5:"thumb";a:1:{s:4:"file";s:5:"a.png";}}}`,
			expected: Map("sizes", Map("thumb", Map("file", String("a.png")))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Decode(tt.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.expected, v); diff != "" {
				t.Errorf("unexpected decode result (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{name: "empty", input: "", expected: ErrMalformed},
		{name: "truncated array", input: "a:2:{bogus", expected: ErrMalformed},
		{name: "missing pairs", input: `a:2:{i:0;N;}`, expected: ErrMalformed},
		{name: "string too long", input: `s:10:"short";`, expected: ErrMalformed},
		{name: "string too short", input: `s:2:"short";`, expected: ErrMalformed},
		{name: "bad length", input: `s:-1:"";`, expected: ErrMalformed},
		{name: "bad bool", input: "b:2;", expected: ErrMalformed},
		{name: "bad int", input: "i:1.5;", expected: ErrMalformed},
		{name: "hex float", input: "d:0x1p-2;", expected: ErrMalformed},
		{name: "float key", input: `a:1:{d:1.5;N;}`, expected: ErrMalformed},
		{name: "trailing data", input: "i:1;i:2;", expected: ErrMalformed},
		{name: "object", input: `O:8:"stdClass":0:{}`, expected: ErrUnknownTag},
		{name: "nested object", input: `a:1:{i:0;O:8:"stdClass":0:{}}`, expected: ErrUnknownTag},
		{name: "reference", input: `a:2:{i:0;s:1:"a";i:1;R:2;}`, expected: ErrUnknownTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Decode(tt.input)
			assert.Nil(t, v)
			assert.ErrorIs(t, err, tt.expected)

			var decodeErr *DecodeError
			require.True(t, errors.As(err, &decodeErr))
			assert.GreaterOrEqual(t, decodeErr.Offset, 0)
			assert.LessOrEqual(t, decodeErr.Offset, len(tt.input))
		})
	}
}

func nested(depth int) string {
	return strings.Repeat("a:1:{i:0;", depth) + "N;" + strings.Repeat("}", depth)
}

func TestDecodeDepthLimit(t *testing.T) {
	_, err := Decode(nested(DefaultMaxDepth))
	assert.NoError(t, err)

	_, err = Decode(nested(DefaultMaxDepth + 1))
	assert.ErrorIs(t, err, ErrTooDeep)

	_, err = Decode(nested(3), WithMaxDepth(2))
	assert.ErrorIs(t, err, ErrTooDeep)

	v, err := Decode(nested(2000), WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, nested(2000), Encode(v))
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		input    Value
		expected string
	}{
		{name: "nil", input: nil, expected: "N;"},
		{name: "bools", input: List(Bool(true), Bool(false)), expected: `a:2:{i:0;b:1;i:1;b:0;}`},
		{name: "string length in bytes", input: String("日本"), expected: `s:6:"日本";`},
		{name: "negative int key", input: Array{{Key: IntKey(-3), Value: Int(9)}}, expected: `a:1:{i:-3;i:9;}`},
		{
			name:     "edited string gets a new length",
			input:    Map("url", String("http://cdn.example.com/wp-content/a.png")),
			expected: `a:1:{s:3:"url";s:39:"http://cdn.example.com/wp-content/a.png";}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Encode(tt.input))
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{input: 0, expected: "0"},
		{input: math.Copysign(0, -1), expected: "-0"},
		{input: 0.1, expected: "0.1"},
		{input: 100, expected: "100"},
		{input: -2.5, expected: "-2.5"},
		{input: 0.0001, expected: "0.0001"},
		{input: 0.00001, expected: "1.0E-5"},
		{input: 1.5e-7, expected: "1.5E-7"},
		{input: 1e16, expected: "10000000000000000"},
		{input: 1e17, expected: "1.0E+17"},
		{input: 1.25e25, expected: "1.25E+25"},
		{input: math.Inf(1), expected: "INF"},
		{input: math.NaN(), expected: "NAN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFloat(tt.input))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	trees := []Value{
		Null{},
		Bool(true),
		Int(math.MinInt64),
		Int(math.MaxInt64),
		Float(3.141592653589793),
		Float(-1e-300),
		Float(6.02214076e23),
		String(""),
		String("line\nbreak \"quoted\" ; } {"),
		Array{},
		Map(
			"bucket", String("media"),
			"key", String("2013/04/photo.jpg"),
			"sizes", List(Map("w", Int(150), "h", Int(150)), Null{}),
			"ratio", Float(1.5),
		),
		Array{
			{Key: IntKey(10), Value: String("ten")},
			{Key: StringKey("10a"), Value: Bool(false)},
			{Key: StringKey(""), Value: List()},
		},
	}

	for _, tree := range trees {
		encoded := Encode(tree)
		t.Run(encoded, func(t *testing.T) {
			decoded, err := Decode(encoded)
			require.NoError(t, err)
			if diff := cmp.Diff(tree, decoded); diff != "" {
				t.Errorf("round trip changed the tree (-want +got):\n%s", diff)
			}
			assert.Equal(t, encoded, Encode(decoded))
			assert.True(t, IsSerialized(encoded))
		})
	}
}

func TestArrayGet(t *testing.T) {
	a := Array{
		{Key: IntKey(0), Value: String("zero")},
		{Key: StringKey("cloudfront"), Value: String("d111.cloudfront.net")},
	}

	v, ok := a.Get("cloudfront")
	require.True(t, ok)
	assert.Equal(t, String("d111.cloudfront.net"), v)

	_, ok = a.Get("0")
	assert.False(t, ok)
}

func TestKind(t *testing.T) {
	assert.Equal(t, "array", Map().Kind().String())
	assert.Equal(t, "string", String("").Kind().String())
	assert.Equal(t, KindFloat, Float(1).Kind())
	assert.Equal(t, "unknown", Kind(200).String())
}
