// Package stats contains typing speed calculations and table reports.
package stats

import (
	"math"
	"time"
)

// charsPerWord is the conventional word length used for WPM.
const charsPerWord = 5.0

// WPM computes round((keystrokes/5)/minutes). It reports false when no time
// has elapsed, in which case the previous value should be kept.
func WPM(correctKeystrokes int, elapsed time.Duration) (int, bool) {
	minutes := elapsed.Minutes()
	if minutes <= 0 {
		return 0, false
	}
	wpm := (float64(correctKeystrokes) / charsPerWord) / minutes
	return int(math.Round(wpm)), true
}
