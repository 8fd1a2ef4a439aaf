package json

import (
	"bytes"
)

// Array encodes a JSON array, tracking when a comma separator is owed.
type Array struct {
	w          *bytes.Buffer
	writeComma bool
	scratch    *[]byte
}

func newArray(w *bytes.Buffer, scratch *[]byte) *Array {
	w.WriteRune(leftBracket)
	return &Array{w: w, scratch: scratch}
}

// Value adds a new element to the array and returns its encoder.
func (a *Array) Value() Value {
	if a.writeComma {
		a.w.WriteRune(comma)
	} else {
		a.writeComma = true
	}

	return newValue(a.w, a.scratch)
}

// Close ends the array.
func (a *Array) Close() {
	a.w.WriteRune(rightBracket)
}
