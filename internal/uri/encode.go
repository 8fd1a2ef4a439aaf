// Package uri carries the URL splitting, percent-encoding, and host
// validation helpers used during request canonicalization.
package uri

import "strings"

const upperhex = "0123456789ABCDEF"

// EscapePath percent-encodes text for request canonicalization. Unreserved
// characters (alphanumerics and "-_.~") pass through; the path separator
// passes through only when encodeSep is false; every other byte is emitted
// as uppercase %XX. Operating byte-wise keeps multibyte text correct without
// any codepoint handling.
//
// Path components are escaped with encodeSep false, query keys and values
// with encodeSep true.
func EscapePath(path string, encodeSep bool) string {
	var sb strings.Builder
	sb.Grow(len(path))

	for i := 0; i < len(path); i++ {
		c := path[i]
		switch {
		case c >= 'A' && c <= 'Z',
			c >= 'a' && c <= 'z',
			c >= '0' && c <= '9',
			c == '-', c == '_', c == '.', c == '~':
			sb.WriteByte(c)
		case c == '/' && !encodeSep:
			sb.WriteByte(c)
		default:
			sb.WriteByte('%')
			sb.WriteByte(upperhex[c>>4])
			sb.WriteByte(upperhex[c&0xF])
		}
	}

	return sb.String()
}
