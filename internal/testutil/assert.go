// Package testutil provides assertion helpers shared by this module's tests.
package testutil

import (
	"encoding/json"
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// T is the subset of *testing.T the assert helpers need.
type T interface {
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Helper()
}

// JSONEqual compares two JSON documents by value, ignoring key order and
// formatting. Returns an error describing the first difference.
func JSONEqual(expectBytes, actualBytes []byte) error {
	var expect interface{}
	if err := json.Unmarshal(expectBytes, &expect); err != nil {
		return fmt.Errorf("failed to unmarshal expected bytes, %v", err)
	}

	var actual interface{}
	if err := json.Unmarshal(actualBytes, &actual); err != nil {
		return fmt.Errorf("failed to unmarshal actual bytes, %v", err)
	}

	if diff := cmp.Diff(expect, actual); len(diff) != 0 {
		return fmt.Errorf("JSON mismatch (-expect +actual):\n%s", diff)
	}

	return nil
}

// AssertJSONEqual compares two JSON documents by value and emits a testing
// error when they differ.
func AssertJSONEqual(t T, expect, actual []byte) bool {
	t.Helper()

	if err := JSONEqual(expect, actual); err != nil {
		t.Errorf("expect JSON equal, %v", err)
		return false
	}

	return true
}
