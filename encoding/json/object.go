package json

import (
	"bytes"
)

// Object encodes a JSON object, tracking when a comma separator is owed.
type Object struct {
	w          *bytes.Buffer
	writeComma bool
	scratch    *[]byte
}

func newObject(w *bytes.Buffer, scratch *[]byte) *Object {
	w.WriteRune(leftBrace)
	return &Object{w: w, scratch: scratch}
}

// Key adds the named key to the object and returns the encoder for its
// value.
func (o *Object) Key(name string) Value {
	if o.writeComma {
		o.w.WriteRune(comma)
	} else {
		o.writeComma = true
	}
	escapeStringBytes(o.w, []byte(name))
	o.w.WriteRune(colon)

	return newValue(o.w, o.scratch)
}

// Close ends the object.
func (o *Object) Close() {
	o.w.WriteRune(rightBrace)
}
