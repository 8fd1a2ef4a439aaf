package json

import (
	"bytes"
)

const (
	leftBrace    = '{'
	rightBrace   = '}'
	leftBracket  = '['
	rightBracket = ']'
	comma        = ','
	colon        = ':'
	quote        = '"'

	null = "null"
)

const hexChars = "0123456789abcdef"

// escapeStringBytes writes s as a quoted JSON string. Escaping is byte-wise:
// quotes, backslashes, and control bytes are escaped, everything else
// (including multi-byte UTF-8 sequences) passes through untouched.
func escapeStringBytes(w *bytes.Buffer, s []byte) {
	w.WriteRune(quote)

	start := 0
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 0x20 && b != quote && b != '\\' {
			continue
		}

		w.Write(s[start:i])
		switch b {
		case quote, '\\':
			w.WriteByte('\\')
			w.WriteByte(b)
		case '\n':
			w.WriteString(`\n`)
		case '\r':
			w.WriteString(`\r`)
		case '\t':
			w.WriteString(`\t`)
		default:
			w.WriteString(`\u00`)
			w.WriteByte(hexChars[b>>4])
			w.WriteByte(hexChars[b&0xf])
		}
		start = i + 1
	}
	w.Write(s[start:])

	w.WriteRune(quote)
}
