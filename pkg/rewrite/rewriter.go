// Package rewrite replaces one base URL with another inside stored field
// values. Plain text is rewritten directly; serialized values are decoded,
// rewritten leaf by leaf and re-encoded so their declared lengths stay valid.
package rewrite

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/stackrox/cdn-migrator/pkg/errox"
	"github.com/stackrox/cdn-migrator/pkg/logging"
	"github.com/stackrox/cdn-migrator/pkg/phpserial"
)

var log = logging.LoggerForModule()

// Rewriter replaces every case-insensitive occurrence of one URL with another.
// It holds no state between calls.
type Rewriter struct {
	old      string
	new      string
	lowerOld string
	maxDepth int
}

// Option configures a Rewriter.
type Option func(*Rewriter)

// WithMaxDepth sets the nesting limit used when decoding serialized values.
// Values nested deeper are treated as plain text.
func WithMaxDepth(n int) Option {
	return func(r *Rewriter) {
		r.maxDepth = n
	}
}

// New returns a Rewriter replacing old with new. old must not be empty.
func New(old, new string, opts ...Option) (*Rewriter, error) {
	if old == "" {
		return nil, errox.InvalidArgs.New("URL to replace must not be empty")
	}
	r := &Rewriter{
		old:      old,
		new:      new,
		lowerOld: lowerASCII(old),
		maxDepth: phpserial.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func mustNew(old, new string) *Rewriter {
	r, err := New(old, new)
	if err != nil {
		panic(err)
	}
	return r
}

// Old returns the URL being replaced.
func (r *Rewriter) Old() string {
	return r.old
}

// New returns the replacement URL.
func (r *Rewriter) New() string {
	return r.new
}

// ReplaceLeaf replaces old with new in text, ignoring ASCII case, and returns
// the number of replacements. It panics if old is empty.
func ReplaceLeaf(old, new, text string) (string, int) {
	return mustNew(old, new).Leaf(text)
}

// RewriteValue rewrites a stored field value, which may be serialized. It
// panics if old is empty.
func RewriteValue(old, new, value string) (string, int) {
	return mustNew(old, new).Value(value)
}

// RewriteTree rewrites the string leaves of a decoded value. It panics if old
// is empty.
func RewriteTree(old, new string, v phpserial.Value) (phpserial.Value, int) {
	return mustNew(old, new).Tree(v)
}

// RewritePartition rewrites a batch of rows of one partition. It panics if
// old is empty.
func RewritePartition(old, new string, rows []Target) ([]Target, int) {
	return mustNew(old, new).Partition(rows)
}

// Leaf replaces every occurrence of the old URL in text in a single left to
// right scan. Matches do not overlap and the count is the number of
// replacements made.
func (r *Rewriter) Leaf(text string) (string, int) {
	if len(text) < len(r.old) {
		return text, 0
	}
	// ASCII folding keeps byte offsets identical between text and lower.
	lower := lowerASCII(text)
	idx := strings.Index(lower, r.lowerOld)
	if idx < 0 {
		return text, 0
	}

	var sb strings.Builder
	sb.Grow(len(text) + len(r.new) - len(r.old))
	count, last := 0, 0
	for idx >= 0 {
		start := last + idx
		sb.WriteString(text[last:start])
		sb.WriteString(r.new)
		last = start + len(r.old)
		count++
		idx = strings.Index(lower[last:], r.lowerOld)
	}
	sb.WriteString(text[last:])
	return sb.String(), count
}

// Value rewrites a field value. Serialized values are decoded and only their
// string leaves are rewritten; a leaf that is itself serialized is decoded
// and rewritten the same way. Text that looks serialized but does not decode
// is rewritten as plain text. Whitespace around a serialized value is kept.
// An unchanged value is returned as is, byte for byte.
func (r *Rewriter) Value(value string) (string, int) {
	out, n, tooDeep := r.value(value, 0)
	if tooDeep {
		log.Warnf("Serialized value nested deeper than %d levels was rewritten as plain text; its lengths may be stale", r.maxDepth)
	}
	return out, n
}

// value rewrites value found below depth enclosing arrays. tooDeep reports
// whether the depth limit forced a plain text rewrite somewhere inside.
func (r *Rewriter) value(value string, depth int) (out string, count int, tooDeep bool) {
	if !phpserial.IsSerialized(value) {
		out, count = r.Leaf(value)
		return out, count, false
	}

	prefix := len(value) - len(strings.TrimLeftFunc(value, unicode.IsSpace))
	core := strings.TrimRightFunc(value[prefix:], unicode.IsSpace)
	suffix := value[prefix+len(core):]

	limit := r.maxDepth
	if limit > 0 {
		// Nested blobs share the budget of the value they are stored in.
		limit -= depth
		if limit <= 0 {
			out, count = r.Leaf(value)
			return out, count, true
		}
	}

	tree, err := phpserial.Decode(core, phpserial.WithMaxDepth(limit))
	if err != nil {
		log.Debugf("Treating serialized-looking value as plain text: %v", err)
		out, count = r.Leaf(value)
		return out, count, errors.Is(err, phpserial.ErrTooDeep)
	}

	rewritten, count, tooDeep := r.tree(tree, depth)
	if count == 0 {
		return value, 0, tooDeep
	}
	return value[:prefix] + phpserial.Encode(rewritten) + suffix, count, tooDeep
}

// Tree returns a copy of v with every string leaf rewritten. Keys and
// non-string scalars are never modified and v itself is left untouched.
func (r *Rewriter) Tree(v phpserial.Value) (phpserial.Value, int) {
	out, n, tooDeep := r.tree(v, 0)
	if tooDeep {
		log.Warnf("Serialized leaf nested deeper than %d levels was rewritten as plain text; its lengths may be stale", r.maxDepth)
	}
	return out, n
}

func (r *Rewriter) tree(v phpserial.Value, depth int) (phpserial.Value, int, bool) {
	switch v := v.(type) {
	case phpserial.String:
		s, n, tooDeep := r.value(string(v), depth)
		return phpserial.String(s), n, tooDeep

	case phpserial.Array:
		total, tooDeep := 0, false
		out := make(phpserial.Array, len(v))
		for i, entry := range v {
			value, n, deep := r.tree(entry.Value, depth+1)
			out[i] = phpserial.Entry{Key: entry.Key, Value: value}
			total += n
			tooDeep = tooDeep || deep
		}
		return out, total, tooDeep
	}

	return v, 0, false
}

// Partition rewrites every non-blank row and returns only the rows whose value
// changed, together with the number of replacements across all rows.
func (r *Rewriter) Partition(rows []Target) ([]Target, int) {
	var updated []Target
	total := 0
	for _, row := range rows {
		if strings.TrimSpace(row.Value) == "" {
			continue
		}
		edited, n, tooDeep := r.value(row.Value, 0)
		if tooDeep {
			log.Warnf("Partition %d: %s row %d is nested deeper than %d levels and was rewritten as plain text; check that it still unserializes",
				row.PartitionID, row.Column, row.RowID, r.maxDepth)
		}
		total += n
		if edited == row.Value {
			continue
		}
		row.Value = edited
		updated = append(updated, row)
	}
	return updated, total
}

func lowerASCII(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
