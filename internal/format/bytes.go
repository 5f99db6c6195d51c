// Package format provides small human-readable formatting helpers shared by
// the presentation layer.
package format

import (
	"fmt"
	"time"
)

// Duration formats a time.Duration for display. It shows microseconds for
// durations under a millisecond and milliseconds under a second, which keeps
// the near-instant fork timings readable.
func Duration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// Bytes formats a byte count with a binary unit suffix.
func Bytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
