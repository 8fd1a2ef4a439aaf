package json

import (
	"bytes"
	"encoding/base64"
	"math"
	"strconv"
)

// Value encodes exactly one JSON value: an object, array, string, number,
// boolean, or null. The scratch buffer is shared across the document to keep
// number formatting allocation-free.
type Value struct {
	w       *bytes.Buffer
	scratch *[]byte
}

func newValue(w *bytes.Buffer, scratch *[]byte) Value {
	return Value{w: w, scratch: scratch}
}

// String encodes v as a JSON string.
func (jv Value) String(v string) {
	escapeStringBytes(jv.w, []byte(v))
}

// Byte encodes v as a JSON number.
func (jv Value) Byte(v int8) {
	jv.Long(int64(v))
}

// Short encodes v as a JSON number.
func (jv Value) Short(v int16) {
	jv.Long(int64(v))
}

// Integer encodes v as a JSON number.
func (jv Value) Integer(v int32) {
	jv.Long(int64(v))
}

// Long encodes v as a JSON number.
func (jv Value) Long(v int64) {
	*jv.scratch = strconv.AppendInt((*jv.scratch)[:0], v, 10)
	jv.w.Write(*jv.scratch)
}

// ULong encodes v as a JSON number.
func (jv Value) ULong(v uint64) {
	*jv.scratch = strconv.AppendUint((*jv.scratch)[:0], v, 10)
	jv.w.Write(*jv.scratch)
}

// Float encodes v as a JSON number.
func (jv Value) Float(v float32) {
	jv.float(float64(v), 32)
}

// Double encodes v as a JSON number.
func (jv Value) Double(v float64) {
	jv.float(v, 64)
}

// Non-finite values have no JSON number form. They encode as the quoted
// sentinels the AWS JSON protocols use on the wire.
func (jv Value) float(v float64, bits int) {
	switch {
	case math.IsNaN(v):
		jv.String("NaN")
	case math.IsInf(v, 1):
		jv.String("Infinity")
	case math.IsInf(v, -1):
		jv.String("-Infinity")
	default:
		*jv.scratch = encodeFloat((*jv.scratch)[:0], v, bits)
		jv.w.Write(*jv.scratch)
	}
}

// Boolean encodes v as a JSON boolean.
func (jv Value) Boolean(v bool) {
	*jv.scratch = strconv.AppendBool((*jv.scratch)[:0], v)
	jv.w.Write(*jv.scratch)
}

// Base64EncodeBytes encodes v as a base64 JSON string, or null when v is
// nil.
func (jv Value) Base64EncodeBytes(v []byte) {
	if v == nil {
		jv.Null()
		return
	}

	jv.w.WriteRune(quote)
	encoder := base64.NewEncoder(base64.StdEncoding, jv.w)
	encoder.Write(v)
	encoder.Close()
	jv.w.WriteRune(quote)
}

// Write writes v to the document verbatim. The caller is responsible for v
// being valid JSON.
func (jv Value) Write(v []byte) {
	jv.w.Write(v)
}

// Null encodes a JSON null.
func (jv Value) Null() {
	jv.w.WriteString(null)
}

// Object begins a JSON object. The returned encoder must be closed.
func (jv Value) Object() *Object {
	return newObject(jv.w, jv.scratch)
}

// Array begins a JSON array. The returned encoder must be closed.
func (jv Value) Array() *Array {
	return newArray(jv.w, jv.scratch)
}

// Follows encoding/json's number formatting: shortest round-trip form,
// switching to exponent notation outside [1e-6, 1e21) and trimming the
// leading zero from two-digit exponents.
func encodeFloat(b []byte, v float64, bits int) []byte {
	abs := math.Abs(v)
	format := byte('f')
	if abs != 0 {
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) ||
			bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			format = 'e'
		}
	}

	b = strconv.AppendFloat(b, v, format, -1, bits)
	if format == 'e' {
		n := len(b)
		if n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}
	return b
}
