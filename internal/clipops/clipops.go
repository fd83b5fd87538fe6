// Package clipops holds the pure mutation operations on a single clip.
// Every operation takes the current clip and a raw proposed value and
// returns a clip that still satisfies the trim invariant:
//
//	trimStart + trimEnd <= duration - MinClipDuration
//	endTime - startTime == duration - trimStart - trimEnd
//
// Raw values come straight from pointer math and may be wildly out of
// range; operations clamp, they never reject.
package clipops

import "clipforge/internal/models"

// MoveTo repositions the clip so it starts at rawStartTime, preserving its
// length. Start is floored at 0. Overlap with other clips is permitted.
func MoveTo(c models.Clip, rawStartTime float64) models.Clip {
	newStart := rawStartTime
	if newStart < 0 {
		newStart = 0
	}
	length := c.EndTime - c.StartTime
	c.StartTime = newStart
	c.EndTime = newStart + length
	return c
}

// TrimLeft sets the head trim to rawTrimStart, clamped to
// [0, duration - trimEnd - MinClipDuration]. The global start shifts by the
// change in trim so the untrimmed content keeps its place on the timeline.
func TrimLeft(c models.Clip, rawTrimStart float64) models.Clip {
	newTrimStart := clamp(rawTrimStart, 0, c.Duration-c.TrimEnd-models.MinClipDuration)
	c.StartTime += newTrimStart - c.TrimStart
	c.TrimStart = newTrimStart
	c.EndTime = c.StartTime + (c.Duration - c.TrimStart - c.TrimEnd)
	return c
}

// TrimRight sets the tail trim to rawTrimEnd, clamped to
// [0, duration - trimStart - MinClipDuration]. The start is anchored; only
// the end moves.
func TrimRight(c models.Clip, rawTrimEnd float64) models.Clip {
	newTrimEnd := clamp(rawTrimEnd, 0, c.Duration-c.TrimStart-models.MinClipDuration)
	c.TrimEnd = newTrimEnd
	c.EndTime = c.StartTime + (c.Duration - c.TrimStart - c.TrimEnd)
	return c
}

// clamp lower-bounds last so a degenerate range (hi < lo) still yields the
// widest non-negative trim rather than a negative one.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
