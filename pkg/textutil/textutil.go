// Package textutil provides text coercion and URI encoding helpers for feed generation.
package textutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Coerce converts an arbitrary scalar value to its canonical text form.
// It is total: every input produces a string, never an error. Byte slices
// that are not valid UTF-8 have the offending sequences replaced rather
// than failing the whole conversion.
func Coerce(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return strings.ToValidUTF8(string(s), string(utf8.RuneError))
	case bool:
		return strconv.FormatBool(s)
	case int:
		return strconv.Itoa(s)
	case int8:
		return strconv.FormatInt(int64(s), 10)
	case int16:
		return strconv.FormatInt(int64(s), 10)
	case int32:
		return strconv.FormatInt(int64(s), 10)
	case int64:
		return strconv.FormatInt(s, 10)
	case uint:
		return strconv.FormatUint(uint64(s), 10)
	case uint8:
		return strconv.FormatUint(uint64(s), 10)
	case uint16:
		return strconv.FormatUint(uint64(s), 10)
	case uint32:
		return strconv.FormatUint(uint64(s), 10)
	case uint64:
		return strconv.FormatUint(s, 10)
	case float32:
		return strconv.FormatFloat(float64(s), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64)
	case time.Time:
		return s.Format(time.RFC3339)
	case error:
		return s.Error()
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}

// IsProtected reports whether v belongs to the protected scalar set that
// CoerceValue passes through unchanged instead of stringifying: nil,
// integers, floats and timestamps.
func IsProtected(v any) bool {
	switch v.(type) {
	case nil,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		time.Time:
		return true
	}
	return false
}

// CoerceValue is Coerce with protected types preserved as-is.
func CoerceValue(v any) any {
	if IsProtected(v) {
		return v
	}
	return Coerce(v)
}

// uriSafe holds the URI structural and reserved characters that IRIToURI
// leaves unescaped, in addition to unreserved characters.
const uriSafe = "/#%[]=:;$&()+,!?*@'~"

const upperhex = "0123456789ABCDEF"

func uriSafeByte(c byte) bool {
	if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
		return true
	}
	switch c {
	case '-', '.', '_', '~':
		return true
	}
	return strings.IndexByte(uriSafe, c) >= 0
}

// IRIToURI percent-encodes a Unicode IRI into an ASCII-safe URI string.
// Already-encoded input passes through unchanged because '%' is part of
// the safe set. The empty string maps to itself.
func IRIToURI(iri string) string {
	i := 0
	for i < len(iri) && uriSafeByte(iri[i]) {
		i++
	}
	if i == len(iri) {
		return iri
	}

	var b strings.Builder
	b.Grow(len(iri) + 2*(len(iri)-i))
	b.WriteString(iri[:i])
	for ; i < len(iri); i++ {
		c := iri[i]
		if uriSafeByte(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}
