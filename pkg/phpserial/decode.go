package phpserial

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultMaxDepth is the array nesting Decode accepts unless WithMaxDepth
// says otherwise.
const DefaultMaxDepth = 512

var (
	// ErrMalformed is returned for truncated input, bad numbers, length
	// mismatches and trailing data.
	ErrMalformed = errors.New("malformed serialized value")
	// ErrUnknownTag is returned for a type tag outside N, b, i, d, s and a.
	ErrUnknownTag = errors.New("unknown serialized type tag")
	// ErrTooDeep is returned when arrays nest deeper than the configured limit.
	ErrTooDeep = errors.New("serialized value nested too deeply")
)

// DecodeError describes where decoding stopped. It unwraps to one of
// ErrMalformed, ErrUnknownTag or ErrTooDeep.
type DecodeError struct {
	Offset int
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("phpserial: %s at offset %d: %v", e.Reason, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Option configures Decode.
type Option func(*decoder)

// WithMaxDepth limits array nesting. A value of zero or less removes the limit.
func WithMaxDepth(n int) Option {
	return func(d *decoder) {
		d.maxDepth = n
	}
}

// Decode parses one serialized value. The whole input must be consumed.
func Decode(s string, opts ...Option) (Value, error) {
	d := &decoder{data: s, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(d)
	}
	v, err := d.value()
	if err != nil {
		return nil, err
	}
	if d.pos != len(d.data) {
		return nil, d.fail(ErrMalformed, "trailing data")
	}
	return v, nil
}

type decoder struct {
	data     string
	pos      int
	depth    int
	maxDepth int
}

func (d *decoder) fail(err error, format string, args ...any) error {
	return &DecodeError{Offset: d.pos, Reason: fmt.Sprintf(format, args...), Err: err}
}

func (d *decoder) expect(c byte) error {
	if d.pos >= len(d.data) {
		return d.fail(ErrMalformed, "expected %q, got end of input", c)
	}
	if d.data[d.pos] != c {
		return d.fail(ErrMalformed, "expected %q, got %q", c, d.data[d.pos])
	}
	d.pos++
	return nil
}

// token returns the text up to the next occurrence of term and skips term.
func (d *decoder) token(term byte) (string, error) {
	idx := strings.IndexByte(d.data[d.pos:], term)
	if idx < 0 {
		return "", d.fail(ErrMalformed, "missing %q", term)
	}
	tok := d.data[d.pos : d.pos+idx]
	d.pos += idx + 1
	return tok, nil
}

func (d *decoder) length(term byte) (int, error) {
	start := d.pos
	tok, err := d.token(term)
	if err != nil {
		return 0, err
	}
	if tok == "" || strings.TrimLeft(tok, "0123456789") != "" {
		d.pos = start
		return 0, d.fail(ErrMalformed, "invalid length %q", tok)
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		d.pos = start
		return 0, d.fail(ErrMalformed, "invalid length %q", tok)
	}
	return n, nil
}

func (d *decoder) value() (Value, error) {
	if d.pos >= len(d.data) {
		return nil, d.fail(ErrMalformed, "unexpected end of input")
	}
	tag := d.data[d.pos]
	d.pos++
	if tag == 'N' {
		if err := d.expect(';'); err != nil {
			return nil, err
		}
		return Null{}, nil
	}
	switch tag {
	case 'b', 'i', 'd', 's', 'a':
	default:
		d.pos--
		return nil, d.fail(ErrUnknownTag, "tag %q", tag)
	}
	if err := d.expect(':'); err != nil {
		return nil, err
	}

	switch tag {
	case 'b':
		return d.boolean()
	case 'i':
		return d.integer()
	case 'd':
		return d.float()
	case 's':
		return d.str()
	default:
		return d.array()
	}
}

func (d *decoder) boolean() (Value, error) {
	tok, err := d.token(';')
	if err != nil {
		return nil, err
	}
	switch tok {
	case "0":
		return Bool(false), nil
	case "1":
		return Bool(true), nil
	}
	return nil, d.fail(ErrMalformed, "invalid bool %q", tok)
}

func (d *decoder) integer() (Value, error) {
	tok, err := d.token(';')
	if err != nil {
		return nil, err
	}
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return nil, d.fail(ErrMalformed, "invalid int %q", tok)
	}
	return Int(n), nil
}

func (d *decoder) float() (Value, error) {
	tok, err := d.token(';')
	if err != nil {
		return nil, err
	}
	if !isFloatLiteral(tok) {
		return nil, d.fail(ErrMalformed, "invalid float %q", tok)
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		var numErr *strconv.NumError
		// Out of range literals saturate to ±Inf, which is what PHP does too.
		if !errors.As(err, &numErr) || !errors.Is(numErr.Err, strconv.ErrRange) {
			return nil, d.fail(ErrMalformed, "invalid float %q", tok)
		}
	}
	return Float(f), nil
}

func isFloatLiteral(tok string) bool {
	switch tok {
	case "INF", "-INF", "NAN":
		return true
	case "":
		return false
	}
	return strings.TrimLeft(tok, "0123456789.eE+-") == ""
}

func (d *decoder) str() (Value, error) {
	n, err := d.length(':')
	if err != nil {
		return nil, err
	}
	if err := d.expect('"'); err != nil {
		return nil, err
	}
	if n > len(d.data)-d.pos {
		return nil, d.fail(ErrMalformed, "string length %d exceeds input", n)
	}
	payload := d.data[d.pos : d.pos+n]
	d.pos += n
	if err := d.expect('"'); err != nil {
		return nil, err
	}
	if err := d.expect(';'); err != nil {
		return nil, err
	}
	return String(payload), nil
}

func (d *decoder) array() (Value, error) {
	n, err := d.length(':')
	if err != nil {
		return nil, err
	}
	if err := d.expect('{'); err != nil {
		return nil, err
	}
	d.depth++
	if d.maxDepth > 0 && d.depth > d.maxDepth {
		return nil, d.fail(ErrTooDeep, "depth %d exceeds %d", d.depth, d.maxDepth)
	}

	// The smallest pair, "i:0;N;", is six bytes.
	out := make(Array, 0, min(n, (len(d.data)-d.pos)/6))
	for i := 0; i < n; i++ {
		key, err := d.key()
		if err != nil {
			return nil, err
		}
		val, err := d.value()
		if err != nil {
			return nil, err
		}
		out = append(out, Entry{Key: key, Value: val})
	}
	if err := d.expect('}'); err != nil {
		return nil, err
	}
	d.depth--
	return out, nil
}

func (d *decoder) key() (Key, error) {
	if d.pos >= len(d.data) {
		return Key{}, d.fail(ErrMalformed, "unexpected end of input")
	}
	if c := d.data[d.pos]; c != 'i' && c != 's' {
		return Key{}, d.fail(ErrMalformed, "invalid array key tag %q", c)
	}
	v, err := d.value()
	if err != nil {
		return Key{}, err
	}
	if s, ok := v.(String); ok {
		return StringKey(string(s)), nil
	}
	return IntKey(int64(v.(Int))), nil
}
