package validate

import (
	"errors"
	"fmt"

	"clipforge/internal/models"
)

// Tolerance absorbs float drift when comparing derived times.
const Tolerance = 1e-9

// ValidateTimeline performs the consistency sweep over a full clip set
// before a state snapshot leaves the core. Mutation paths clamp, so a
// failure here means a core bug, not bad user input.
func ValidateTimeline(clips []models.Clip, totalDuration float64) error {
	if totalDuration < 0 {
		return errors.New("negative total duration")
	}

	seen := make(map[string]bool, len(clips))
	for i, c := range clips {
		if c.ID == "" {
			return fmt.Errorf("clip %d has empty id", i)
		}
		if seen[c.ID] {
			return fmt.Errorf("clip %d has duplicate id %s", i, c.ID)
		}
		seen[c.ID] = true

		if err := validateClip(i, c); err != nil {
			return err
		}
	}
	return nil
}

// validateClip checks one clip against the trim invariant and its derived
// bounds.
func validateClip(i int, c models.Clip) error {
	if c.StartTime < 0 {
		return fmt.Errorf("clip %d has negative start time %.3f", i, c.StartTime)
	}

	if c.EndTime < c.StartTime {
		return fmt.Errorf("clip %d has invalid range [%.3f, %.3f]", i, c.StartTime, c.EndTime)
	}

	if c.TrimStart < 0 || c.TrimEnd < 0 {
		return fmt.Errorf("clip %d has negative trim (%.3f, %.3f)", i, c.TrimStart, c.TrimEnd)
	}

	// Duration may still be provisional (0) while metadata resolves; such
	// a clip sits zero-length on the timeline, so the positive-span and
	// trim checks only bind once the duration is known.
	if c.Duration > 0 {
		if c.EndTime <= c.StartTime {
			return fmt.Errorf("clip %d has invalid range [%.3f, %.3f]", i, c.StartTime, c.EndTime)
		}

		if c.TrimStart+c.TrimEnd > c.Duration-models.MinClipDuration+Tolerance {
			return fmt.Errorf(
				"clip %d trims %.3f+%.3f exceed duration %.3f minus minimum",
				i, c.TrimStart, c.TrimEnd, c.Duration,
			)
		}

		derived := c.Duration - c.TrimStart - c.TrimEnd
		if diff := c.Length() - derived; diff > Tolerance || diff < -Tolerance {
			return fmt.Errorf(
				"clip %d span %.3f disagrees with trimmed duration %.3f",
				i, c.Length(), derived,
			)
		}
	}

	if c.Track != models.TrackVideo && c.Track != models.TrackAudio {
		return fmt.Errorf("clip %d has unknown track %d", i, c.Track)
	}

	return nil
}
