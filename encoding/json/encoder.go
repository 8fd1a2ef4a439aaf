// Package json provides a streaming JSON document encoder built around the
// Value, Object, and Array types. Documents are constructed by method calls
// rather than reflection, so serializers control field order and omission
// exactly.
package json

import (
	"bytes"
)

// Encoder encodes a single JSON document into an in-memory buffer.
type Encoder struct {
	w *bytes.Buffer
	Value
}

// NewEncoder returns a new JSON encoder.
func NewEncoder() *Encoder {
	writer := bytes.NewBuffer(nil)
	scratch := make([]byte, 64)

	return &Encoder{
		w:     writer,
		Value: newValue(writer, &scratch),
	}
}

// String returns the encoded document as a string.
func (e Encoder) String() string {
	return e.w.String()
}

// Bytes returns the encoded document.
func (e Encoder) Bytes() []byte {
	return e.w.Bytes()
}
