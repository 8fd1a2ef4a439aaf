package sigv4

import (
	"fmt"
	"time"
)

// ClockError indicates the signing clock could not supply a usable time. A
// zero Time means the clock was unreadable; any other value precedes the
// unix epoch and cannot be expressed as an x-amz-date.
//
// The error is not retried internally. Signing with a bad clock would
// produce a signature the service rejects anyway, so the call fails before
// any key material is touched.
type ClockError struct {
	Time time.Time
}

func (e *ClockError) Error() string {
	if e.Time.IsZero() {
		return "system clock unavailable"
	}
	return fmt.Sprintf("signing time %s precedes the unix epoch", e.Time.Format(time.RFC3339))
}
