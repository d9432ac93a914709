package phpserial

import (
	"math"
	"strconv"
	"strings"
)

// Encode serializes v. String lengths are always computed from the current
// content. A nil Value encodes as N;.
func Encode(v Value) string {
	var sb strings.Builder
	writeValue(&sb, v)
	return sb.String()
}

func writeValue(sb *strings.Builder, v Value) {
	switch v := v.(type) {
	case nil, Null:
		sb.WriteString("N;")
	case Bool:
		if v {
			sb.WriteString("b:1;")
		} else {
			sb.WriteString("b:0;")
		}
	case Int:
		sb.WriteString("i:")
		sb.WriteString(strconv.FormatInt(int64(v), 10))
		sb.WriteByte(';')
	case Float:
		sb.WriteString("d:")
		sb.WriteString(formatFloat(float64(v)))
		sb.WriteByte(';')
	case String:
		writeString(sb, string(v))
	case Array:
		sb.WriteString("a:")
		sb.WriteString(strconv.Itoa(len(v)))
		sb.WriteString(":{")
		for _, e := range v {
			if e.Key.isStr {
				writeString(sb, e.Key.str)
			} else {
				writeValue(sb, Int(e.Key.num))
			}
			writeValue(sb, e.Value)
		}
		sb.WriteByte('}')
	}
}

func writeString(sb *strings.Builder, s string) {
	sb.WriteString("s:")
	sb.WriteString(strconv.Itoa(len(s)))
	sb.WriteString(`:"`)
	sb.WriteString(s)
	sb.WriteString(`";`)
}

// formatFloat renders f the way serialize() does with serialize_precision=-1:
// shortest round-trip digits, plain notation for decimal exponents in
// [-4, 17), otherwise d.dddE+N.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NAN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, expPart, _ := strings.Cut(sci, "e")
	exp, _ := strconv.Atoi(expPart)
	if exp >= -4 && exp < 17 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	sign := "+"
	if exp < 0 {
		sign = "-"
		exp = -exp
	}
	return mantissa + "E" + sign + strconv.Itoa(exp)
}
