// Package format holds the pure string formatting helpers shared by the
// presentation layer and the logs.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows nanoseconds below a microsecond, microseconds below a millisecond,
// milliseconds below a second, and the default string representation otherwise.
// A single summation run usually lands in the microsecond range.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%d\u00b5s", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}
