package format

import (
	"fmt"
	"strconv"
	"time"
)

// FormatExecutionDuration renders the time taken by one multiplication or
// polynomial operation. Small operands finish in microseconds, so the unit
// follows the magnitude: "750µs", "12ms", and time.Duration's own form from
// one second up.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return strconv.FormatInt(d.Microseconds(), 10) + "µs"
	case d < time.Second:
		return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
	}
	return d.String()
}

// FormatRelative renders d as a multiple of the fastest duration of a
// comparison, for example "1.00x" for the winner and "3.42x" for an
// algorithm three and a half times slower. A zero reference or a zero d
// renders as "-".
//
// Parameters:
//   - d: The duration of the algorithm being reported.
//   - fastest: The duration of the fastest successful algorithm.
//
// Returns:
//   - string: The ratio with two decimals.
func FormatRelative(d, fastest time.Duration) string {
	if d <= 0 || fastest <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2fx", float64(d)/float64(fastest))
}

// FormatWordRate renders the throughput of a multiplication as operand
// words per second, scaled to k/M/G.
func FormatWordRate(words int, d time.Duration) string {
	if words <= 0 || d <= 0 {
		return "-"
	}
	rate := float64(words) / d.Seconds()
	for _, u := range []struct {
		scale  float64
		suffix string
	}{{1e9, "G"}, {1e6, "M"}, {1e3, "k"}} {
		if rate >= u.scale {
			return fmt.Sprintf("%.1f %swords/s", rate/u.scale, u.suffix)
		}
	}
	return fmt.Sprintf("%.0f words/s", rate)
}
