// Package timescale converts between timeline seconds and horizontal view
// pixels. The rate is owned by the rendering surface and passed in; the
// core only does the arithmetic.
package timescale

import "fmt"

// DefaultPixelsPerSecond matches the editing surface's default zoom.
const DefaultPixelsPerSecond = 100.0

// Scale is a view rate in pixels per second.
type Scale float64

// TimeToPixels maps a timeline instant to a horizontal view offset.
func (s Scale) TimeToPixels(t float64) float64 {
	return t * float64(s)
}

// PixelsToTime maps a horizontal view offset back to a timeline instant.
func (s Scale) PixelsToTime(x float64) float64 {
	return x / float64(s)
}

// ClampTime bounds t to [lo, hi].
func ClampTime(t, lo, hi float64) float64 {
	if t < lo {
		return lo
	}
	if t > hi {
		return hi
	}
	return t
}

// FormatClock renders seconds as m:ss for the transport display.
// Fractional seconds truncate (59.9 -> "0:59"); negatives display as 0:00.
func FormatClock(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	mins := int(sec) / 60
	secs := int(sec) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}
