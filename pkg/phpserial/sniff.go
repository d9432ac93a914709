package phpserial

import (
	"regexp"
	"strings"
)

var (
	scalarShape = regexp.MustCompile(`^(?:b:[01]|i:[+-]?[0-9]+|d:[0-9.eEINFAN+-]+);$`)
	stringShape = regexp.MustCompile(`(?s)^s:[0-9]+:".*";$`)
	arrayShape  = regexp.MustCompile(`^a:[0-9]+:\{`)
)

// IsSerialized reports whether s looks like a serialized value. It checks only
// the outer shape; the text may still fail to Decode.
func IsSerialized(s string) bool {
	s = strings.TrimSpace(s)
	switch s {
	case "N;", "b:0;", "b:1;":
		return true
	}
	if len(s) < 4 || s[1] != ':' {
		return false
	}
	switch s[0] {
	case 'b', 'i', 'd':
		return scalarShape.MatchString(s)
	case 's':
		return stringShape.MatchString(s)
	case 'a':
		return arrayShape.MatchString(s)
	}
	return false
}
