package timekit

import (
	"fmt"
	"time"
)

// MaxDurationSeconds is the cap for Duration values: 99:59:59.
const MaxDurationSeconds = 99*3600 + 59*60 + 59

// Duration is a non-negative elapsed time, normalized so that minutes and
// seconds stay below 60 and hours never exceed 99. The zero value is a zero
// duration.
type Duration struct {
	secs int
}

// NewDuration builds a Duration from components. Components are normalized
// first; negative components or a normalized total above 99:59:59 fail.
func NewDuration(hours, minutes, seconds int) (Duration, error) {
	if hours < 0 || minutes < 0 || seconds < 0 {
		return Duration{}, fmt.Errorf("%w: negative duration component", ErrOutOfRange)
	}
	total := hours*3600 + minutes*60 + seconds
	if total > MaxDurationSeconds {
		return Duration{}, fmt.Errorf("%w: duration exceeds 99:59:59", ErrOutOfRange)
	}
	return Duration{total}, nil
}

// DurationFromSeconds clamps secs into [0, 99:59:59]. Used where saturation
// is the documented behavior, such as range spans.
func DurationFromSeconds(secs int) Duration {
	if secs < 0 {
		return Duration{}
	}
	if secs > MaxDurationSeconds {
		return Duration{MaxDurationSeconds}
	}
	return Duration{secs}
}

// ParseDuration parses HH:MM:SS with hours up to 99.
func ParseDuration(value string) (Duration, error) {
	var h, m, s int
	if _, err := fmt.Sscanf(value, "%2d:%2d:%2d", &h, &m, &s); err != nil {
		return Duration{}, fmt.Errorf("%w: %q", ErrMalformedInput, value)
	}
	if m > 59 || s > 59 {
		return Duration{}, fmt.Errorf("%w: %q", ErrMalformedInput, value)
	}
	return NewDuration(h, m, s)
}

// Components returns the normalized hours, minutes and seconds.
func (d Duration) Components() (hours, minutes, seconds int) {
	return d.secs / 3600, d.secs % 3600 / 60, d.secs % 60
}

// Seconds returns the total length in seconds.
func (d Duration) Seconds() int { return d.secs }

func (d Duration) IsZero() bool { return d.secs == 0 }

// Add returns d + o, saturating at 99:59:59.
func (d Duration) Add(o Duration) Duration {
	return DurationFromSeconds(d.secs + o.secs)
}

// Sub returns d - o, flooring at zero. Going below zero is not an error.
func (d Duration) Sub(o Duration) Duration {
	return DurationFromSeconds(d.secs - o.secs)
}

// AddSeconds shifts by n seconds with the same saturation rules.
func (d Duration) AddSeconds(n int) Duration {
	return DurationFromSeconds(d.secs + n)
}

// Round snaps the duration to the nearest multiple of unit minutes, staying
// within the cap.
func (d Duration) Round(unit int) Duration {
	if unit <= 0 {
		return d
	}
	step := unit * 60
	return DurationFromSeconds((d.secs + step/2) / step * step)
}

// GoDuration converts to the standard library representation.
func (d Duration) GoDuration() time.Duration {
	return time.Duration(d.secs) * time.Second
}

// String renders the duration as HH:MM:SS.
func (d Duration) String() string {
	h, m, s := d.Components()
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatSeconds renders a second count as HH:MM or HH:MM:SS without the
// duration cap. Negative counts render as zero.
func FormatSeconds(secs int, includeSeconds bool) string {
	if secs < 0 {
		secs = 0
	}
	h, m, s := secs/3600, secs%3600/60, secs%60
	if includeSeconds {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}
