// Package phpserial decodes and encodes the PHP serialize() format used by
// the platform for option and meta values.
//
// Only scalars and arrays are supported:
//
//	N;                       null
//	b:0; b:1;                bool
//	i:<int>;                 int
//	d:<float>;               float
//	s:<bytes>:"<payload>";   string, length in bytes
//	a:<pairs>:{<key><value>...}
//
// Array keys are ints or strings. Objects, references and custom
// serializations are reported as ErrUnknownTag.
package phpserial

// Kind discriminates the variants of Value.
type Kind uint8

// Kinds of values.
const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	}
	return "unknown"
}

// Value is a decoded serialized value. The set of implementations is closed:
// Null, Bool, Int, Float, String and Array.
type Value interface {
	Kind() Kind
	isValue()
}

// Null is the N; value.
type Null struct{}

// Bool is a b: value.
type Bool bool

// Int is an i: value.
type Int int64

// Float is a d: value.
type Float float64

// String is an s: value. It holds raw bytes; no encoding is assumed.
type String string

// Array is an a: value, an ordered list of key/value pairs.
type Array []Entry

// Entry is one pair of an Array.
type Entry struct {
	Key   Key
	Value Value
}

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Int) Kind() Kind    { return KindInt }
func (Float) Kind() Kind  { return KindFloat }
func (String) Kind() Kind { return KindString }
func (Array) Kind() Kind  { return KindArray }

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Int) isValue()    {}
func (Float) isValue()  {}
func (String) isValue() {}
func (Array) isValue()  {}

// Key is an array key: either an int or a string.
type Key struct {
	str   string
	num   int64
	isStr bool
}

// IntKey returns an integer key.
func IntKey(n int64) Key {
	return Key{num: n}
}

// StringKey returns a string key.
func StringKey(s string) Key {
	return Key{str: s, isStr: true}
}

// IsString reports whether the key is a string key.
func (k Key) IsString() bool {
	return k.isStr
}

// Str returns the string of a string key, or "" for an int key.
func (k Key) Str() string {
	return k.str
}

// Int returns the integer of an int key, or 0 for a string key.
func (k Key) Int() int64 {
	return k.num
}

// Get returns the value stored under a string key, if any.
func (a Array) Get(key string) (Value, bool) {
	for _, e := range a {
		if e.Key.isStr && e.Key.str == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Map builds an Array with string keys in the given order. Pairs are given as
// alternating key and value arguments.
func Map(pairs ...any) Array {
	if len(pairs)%2 != 0 {
		panic("phpserial.Map: odd number of arguments")
	}
	out := make(Array, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, Entry{Key: StringKey(pairs[i].(string)), Value: pairs[i+1].(Value)})
	}
	return out
}

// List builds an Array with keys 0..n-1.
func List(values ...Value) Array {
	out := make(Array, 0, len(values))
	for i, v := range values {
		out = append(out, Entry{Key: IntKey(int64(i)), Value: v})
	}
	return out
}

// Equal reports whether both keys have the same kind and content.
func (k Key) Equal(o Key) bool {
	return k == o
}
