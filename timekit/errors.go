package timekit

import "errors"

// Error kinds returned by the calendar helpers and value constructors.
// Callers match with errors.Is; widgets recover by reverting to the last
// valid value.
var (
	// ErrInvalidCalendarInput reports a (year, month, day) combination that
	// does not form a real calendar date.
	ErrInvalidCalendarInput = errors.New("invalid calendar input")

	// ErrOutOfRange reports a component outside its allowed bounds, such as
	// a duration above the 99 hour cap or a negative time component.
	ErrOutOfRange = errors.New("out of range")

	// ErrMalformedInput reports an unparsable textual date, time or
	// duration.
	ErrMalformedInput = errors.New("malformed input")
)
