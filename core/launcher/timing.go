package launcher

import (
	"fmt"
	"time"
)

// FormatElapsed renders d in seconds, stepping down to milliseconds and
// then microseconds while the value is below one unit.
func FormatElapsed(d time.Duration) string {
	value := d.Seconds()
	unit := "s"
	for _, smaller := range []string{"ms", "us"} {
		if value >= 1.0 {
			break
		}
		value *= 1000
		unit = smaller
	}
	return fmt.Sprintf("%.3f%s", value, unit)
}
