package timekit

// RangeState describes how many endpoints of a range are set.
type RangeState int

const (
	RangeEmpty RangeState = iota
	RangePartial
	RangeComplete
)

func (s RangeState) String() string {
	switch s {
	case RangeEmpty:
		return "empty"
	case RangePartial:
		return "partial"
	default:
		return "complete"
	}
}

// DateRange is an inclusive pair of calendar dates with start <= end.
// Setting an endpoint past the other silently pushes the other endpoint to
// match instead of rejecting the edit; pickers rely on this so a selection
// can never invert.
type DateRange struct {
	start *Date
	end   *Date
}

// SetStart sets the start date. If it lands after the current end, the end
// is pushed up to match.
func (r *DateRange) SetStart(d Date) {
	r.start = &d
	if r.end != nil && r.end.Before(d) {
		end := d
		r.end = &end
	}
}

// SetEnd sets the end date. If it lands before the current start, the start
// is pushed down to match.
func (r *DateRange) SetEnd(d Date) {
	r.end = &d
	if r.start != nil && r.start.After(d) {
		start := d
		r.start = &start
	}
}

// ClearStart unsets the start endpoint.
func (r *DateRange) ClearStart() { r.start = nil }

// ClearEnd unsets the end endpoint.
func (r *DateRange) ClearEnd() { r.end = nil }

// Reset returns the range to the empty state.
func (r *DateRange) Reset() { r.start, r.end = nil, nil }

// Start returns the start date and whether it is set.
func (r DateRange) Start() (Date, bool) {
	if r.start == nil {
		return Date{}, false
	}
	return *r.start, true
}

// End returns the end date and whether it is set.
func (r DateRange) End() (Date, bool) {
	if r.end == nil {
		return Date{}, false
	}
	return *r.end, true
}

func (r DateRange) State() RangeState {
	switch {
	case r.start == nil && r.end == nil:
		return RangeEmpty
	case r.start != nil && r.end != nil:
		return RangeComplete
	default:
		return RangePartial
	}
}

// Contains reports whether d lies within the range, bounds inclusive. Only
// complete ranges contain anything.
func (r DateRange) Contains(d Date) bool {
	return r.State() == RangeComplete &&
		!d.Before(*r.start) && !d.After(*r.end)
}

// Days counts whole days between start and end; zero unless complete.
func (r DateRange) Days() int {
	if r.State() != RangeComplete {
		return 0
	}
	return r.start.DaysUntil(*r.end)
}

// Duration returns the elapsed time between start and end, saturating at
// the 99:59:59 cap.
func (r DateRange) Duration() Duration {
	return DurationFromSeconds(r.Days() * 24 * 3600)
}

// Union merges two ranges into the smallest range covering both. Unset
// endpoints are ignored.
func (r DateRange) Union(o DateRange) DateRange {
	out := r
	if o.start != nil && (out.start == nil || o.start.Before(*out.start)) {
		out.start = o.start
	}
	if o.end != nil && (out.end == nil || o.end.After(*out.end)) {
		out.end = o.end
	}
	// A one-sided union can still invert; restore the invariant.
	if out.start != nil && out.end != nil && out.end.Before(*out.start) {
		out.end = out.start
	}
	return out
}

// Clamp pins d into the range bounds. Incomplete ranges only clamp against
// the endpoints they have.
func (r DateRange) Clamp(d Date) Date {
	if r.start != nil && d.Before(*r.start) {
		return *r.start
	}
	if r.end != nil && d.After(*r.end) {
		return *r.end
	}
	return d
}

// DateTimeRange is the DateRange counterpart for instants.
type DateTimeRange struct {
	start *DateTime
	end   *DateTime
}

// SetStart sets the start instant, pushing the end up if it would invert.
func (r *DateTimeRange) SetStart(dt DateTime) {
	r.start = &dt
	if r.end != nil && r.end.Before(dt) {
		end := dt
		r.end = &end
	}
}

// SetEnd sets the end instant, pushing the start down if it would invert.
func (r *DateTimeRange) SetEnd(dt DateTime) {
	r.end = &dt
	if r.start != nil && r.start.After(dt) {
		start := dt
		r.start = &start
	}
}

func (r *DateTimeRange) ClearStart() { r.start = nil }
func (r *DateTimeRange) ClearEnd()   { r.end = nil }
func (r *DateTimeRange) Reset()      { r.start, r.end = nil, nil }

func (r DateTimeRange) Start() (DateTime, bool) {
	if r.start == nil {
		return DateTime{}, false
	}
	return *r.start, true
}

func (r DateTimeRange) End() (DateTime, bool) {
	if r.end == nil {
		return DateTime{}, false
	}
	return *r.end, true
}

func (r DateTimeRange) State() RangeState {
	switch {
	case r.start == nil && r.end == nil:
		return RangeEmpty
	case r.start != nil && r.end != nil:
		return RangeComplete
	default:
		return RangePartial
	}
}

// Contains reports whether dt lies within the range, bounds inclusive.
func (r DateTimeRange) Contains(dt DateTime) bool {
	return r.State() == RangeComplete &&
		!dt.Before(*r.start) && !dt.After(*r.end)
}

// Duration returns the elapsed time between the endpoints, saturating at
// the 99:59:59 cap; zero unless complete.
func (r DateTimeRange) Duration() Duration {
	if r.State() != RangeComplete {
		return Duration{}
	}
	return DurationFromSeconds(r.start.SecondsUntil(*r.end))
}

// Union merges two ranges into the smallest range covering both.
func (r DateTimeRange) Union(o DateTimeRange) DateTimeRange {
	out := r
	if o.start != nil && (out.start == nil || o.start.Before(*out.start)) {
		out.start = o.start
	}
	if o.end != nil && (out.end == nil || o.end.After(*out.end)) {
		out.end = o.end
	}
	if out.start != nil && out.end != nil && out.end.Before(*out.start) {
		out.end = out.start
	}
	return out
}

// Clamp pins dt into the range bounds.
func (r DateTimeRange) Clamp(dt DateTime) DateTime {
	if r.start != nil && dt.Before(*r.start) {
		return *r.start
	}
	if r.end != nil && dt.After(*r.end) {
		return *r.end
	}
	return dt
}
