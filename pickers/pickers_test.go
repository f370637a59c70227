package pickers

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"timepiece/timekit"
)

func keyMsg(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// drain runs a command tree and flattens the messages it produces.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func mustDate(t *testing.T, y int, m time.Month, d int) timekit.Date {
	t.Helper()
	date, err := timekit.NewDate(y, m, d)
	if err != nil {
		t.Fatalf("NewDate(%d, %s, %d): %v", y, m, d, err)
	}
	return date
}

func TestDateInputTyping(t *testing.T) {
	input := NewDateInput("d")
	input.Focus()

	var changes []DateChangedMsg
	for _, r := range "2025-06-15" {
		var cmd tea.Cmd
		input, cmd = input.Update(runeMsg(r))
		for _, msg := range drain(cmd) {
			if c, ok := msg.(DateChangedMsg); ok {
				changes = append(changes, c)
			}
		}
	}

	if len(changes) != 1 {
		t.Fatalf("got %d change messages, want 1", len(changes))
	}
	want := mustDate(t, 2025, time.June, 15)
	if changes[0].Date == nil || *changes[0].Date != want {
		t.Fatalf("changed to %v, want %s", changes[0].Date, want)
	}
	if input.Invalid() {
		t.Fatal("complete date marked invalid")
	}
}

func TestDateInputInvalidKeepsLastValue(t *testing.T) {
	input := NewDateInput("d")
	input.Focus()
	d := mustDate(t, 2025, time.June, 15)
	input.SetDate(&d)

	input, _ = input.Update(keyMsg(tea.KeyBackspace))

	if !input.Invalid() {
		t.Fatal("truncated date not marked invalid")
	}
	if input.Date() == nil || *input.Date() != d {
		t.Fatalf("value drifted to %v while invalid, want %s", input.Date(), d)
	}
}

func TestDateInputAdjustsComponentUnderCursor(t *testing.T) {
	input := NewDateInput("d")
	input.Focus()
	d := mustDate(t, 2025, time.June, 15)
	input.SetDate(&d)

	// SetDate leaves the cursor after the day component.
	input, cmd := input.Update(keyMsg(tea.KeyUp))

	want := mustDate(t, 2025, time.June, 16)
	if input.Date() == nil || *input.Date() != want {
		t.Fatalf("up arrow produced %v, want %s", input.Date(), want)
	}
	msgs := drain(cmd)
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	if c, ok := msgs[0].(DateChangedMsg); !ok || *c.Date != want {
		t.Fatalf("unexpected message %#v", msgs[0])
	}
}

func TestDurationInputAdjustSaturates(t *testing.T) {
	input := NewDurationInput("dur")
	input.Focus()
	max := timekit.DurationFromSeconds(timekit.MaxDurationSeconds)
	input.SetDuration(&max)

	input, _ = input.Update(keyMsg(tea.KeyUp))

	if got := input.Duration(); got == nil || got.Seconds() != timekit.MaxDurationSeconds {
		t.Fatalf("adjust past the cap produced %v", got)
	}
}

func TestDateSelectSelectsDay(t *testing.T) {
	sel := NewDateSelect("cal", mustDate(t, 2025, time.June, 15), time.Monday)
	sel.Focus()

	sel, cmd := sel.Update(keyMsg(tea.KeyEnter))

	msgs := drain(cmd)
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	got, ok := msgs[0].(DaySelectedMsg)
	if !ok {
		t.Fatalf("unexpected message %#v", msgs[0])
	}
	if got.Date != mustDate(t, 2025, time.June, 15) || got.End {
		t.Fatalf("selected %s end=%v, want 2025-06-15 end=false", got.Date, got.End)
	}

	_, cmd = sel.Update(keyMsg(tea.KeySpace))
	msgs = drain(cmd)
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	if got := msgs[0].(DaySelectedMsg); !got.End {
		t.Fatal("space selection not marked as range end")
	}
}

func TestDateSelectHeaderShiftsMonth(t *testing.T) {
	sel := NewDateSelect("cal", mustDate(t, 2025, time.December, 10), time.Monday)
	sel.Focus()

	// Walk the cursor up into the header and land on the next arrow.
	for i := 0; i < 8; i++ {
		sel, _ = sel.Update(keyMsg(tea.KeyUp))
	}
	sel, _ = sel.Update(keyMsg(tea.KeyRight))
	sel, _ = sel.Update(keyMsg(tea.KeyRight))
	sel, _ = sel.Update(keyMsg(tea.KeyEnter))

	year, month := sel.Month()
	if year != 2026 || month != time.January {
		t.Fatalf("next arrow moved to %d %s, want 2026 January", year, month)
	}
}

func TestDateSelectZoomCycle(t *testing.T) {
	sel := NewDateSelect("cal", mustDate(t, 2025, time.June, 15), time.Monday)
	sel.Focus()

	// Zoom out to the year scope and pick March from the 4x3 month grid.
	sel, _ = sel.Update(keyMsg(tea.KeyBackspace))
	sel, _ = sel.Update(keyMsg(tea.KeyRight))
	sel, _ = sel.Update(keyMsg(tea.KeyRight))
	sel, _ = sel.Update(keyMsg(tea.KeyEnter))

	year, month := sel.Month()
	if year != 2025 || month != time.March {
		t.Fatalf("zoom cycle landed on %d %s, want 2025 March", year, month)
	}
}

func TestDurationSelectEmitsRoundAndAdjust(t *testing.T) {
	sel := NewDurationSelect("dur")
	sel.Focus()

	sel, cmd := sel.Update(keyMsg(tea.KeyEnter))
	msgs := drain(cmd)
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	if got, ok := msgs[0].(DurationRoundedMsg); !ok || got.Minutes != 5 {
		t.Fatalf("unexpected message %#v, want round to 5 minutes", msgs[0])
	}

	sel, _ = sel.Update(keyMsg(tea.KeyDown))
	_, cmd = sel.Update(keyMsg(tea.KeyEnter))
	msgs = drain(cmd)
	if got, ok := msgs[0].(DurationAdjustedMsg); !ok || got.DeltaSeconds != -6*3600 {
		t.Fatalf("unexpected message %#v, want -6h adjust", msgs[0])
	}
}

func TestTimeSelectSnapsToHalfHour(t *testing.T) {
	sel := NewTimeSelect("time")
	sel.Focus()
	sel.ShowTime(timekit.Time{Hour: 10, Minute: 45, Second: 12})

	_, cmd := sel.Update(keyMsg(tea.KeyEnter))

	msgs := drain(cmd)
	got, ok := msgs[0].(TimeSelectedMsg)
	if !ok {
		t.Fatalf("unexpected message %#v", msgs[0])
	}
	want := timekit.Time{Hour: 10, Minute: 30}
	if got.Time != want {
		t.Fatalf("selected %s, want %s", got.Time, want)
	}
}

func TestDatePickerAppliesDialogSelection(t *testing.T) {
	p := NewDatePicker("p", time.Monday)
	p.Focus()

	want := mustDate(t, 2025, time.June, 15)
	p, cmd := p.Update(DaySelectedMsg{ID: "p.select", Date: want})

	if p.Date() == nil || *p.Date() != want {
		t.Fatalf("picker date %v, want %s", p.Date(), want)
	}
	msgs := drain(cmd)
	if got, ok := msgs[0].(DateChangedMsg); !ok || got.ID != "p" || *got.Date != want {
		t.Fatalf("unexpected message %#v", msgs[0])
	}
}

func TestDatePickerClear(t *testing.T) {
	p := NewDatePicker("p", time.Monday)
	p.Focus()
	d := mustDate(t, 2025, time.June, 15)
	p.SetDate(&d)

	p, cmd := p.Update(keyMsg(tea.KeyCtrlX))

	if p.Date() != nil {
		t.Fatalf("clear left date %v", p.Date())
	}
	msgs := drain(cmd)
	if got, ok := msgs[0].(DateChangedMsg); !ok || got.Date != nil {
		t.Fatalf("unexpected message %#v", msgs[0])
	}
}

func TestDurationPickerAppliesAdjustments(t *testing.T) {
	p := NewDurationPicker("dur")
	p.Focus()

	p, _ = p.Update(DurationAdjustedMsg{ID: "dur.select", DeltaSeconds: 90 * 60})
	if got := p.Duration(); got == nil || got.String() != "01:30:00" {
		t.Fatalf("after +90m got %v, want 01:30:00", got)
	}

	p, _ = p.Update(DurationRoundedMsg{ID: "dur.select", Minutes: 60})
	if got := p.Duration(); got == nil || got.String() != "02:00:00" {
		t.Fatalf("after rounding to the hour got %v, want 02:00:00", got)
	}

	// Adjustments below zero floor at zero.
	p, _ = p.Update(DurationAdjustedMsg{ID: "dur.select", DeltaSeconds: -6 * 3600})
	if got := p.Duration(); got == nil || !got.IsZero() {
		t.Fatalf("after -6h got %v, want 00:00:00", got)
	}
}

func TestDateRangePickerPushesEndpoints(t *testing.T) {
	p := NewDateRangePicker("r", time.Monday)
	p.Focus()

	start := mustDate(t, 2025, time.June, 10)
	end := mustDate(t, 2025, time.June, 20)
	p, _ = p.Update(DateChangedMsg{ID: "r.start", Date: &start})
	p, _ = p.Update(DateChangedMsg{ID: "r.end", Date: &end})

	// Moving the start past the end drags the end with it.
	late := mustDate(t, 2025, time.June, 25)
	p, cmd := p.Update(DateChangedMsg{ID: "r.start", Date: &late})

	got, ok := p.Range().End()
	if !ok || got != late {
		t.Fatalf("end after push is %v, want %s", got, late)
	}
	msgs := drain(cmd)
	rc, ok := msgs[0].(DateRangeChangedMsg)
	if !ok || *rc.Start != late || *rc.End != late {
		t.Fatalf("unexpected message %#v", msgs[0])
	}
}

func TestDateRangePickerLockedSpanShifts(t *testing.T) {
	p := NewDateRangePicker("r", time.Monday)
	p.Focus()

	start := mustDate(t, 2025, time.June, 10)
	end := mustDate(t, 2025, time.June, 12)
	p, _ = p.Update(DateChangedMsg{ID: "r.start", Date: &start})
	p, _ = p.Update(DateChangedMsg{ID: "r.end", Date: &end})

	p, _ = p.Update(keyMsg(tea.KeyCtrlL))
	if !p.Locked() {
		t.Fatal("ctrl+l did not lock the span")
	}

	newStart := mustDate(t, 2025, time.July, 1)
	p, _ = p.Update(DateChangedMsg{ID: "r.start", Date: &newStart})

	gotEnd, _ := p.Range().End()
	if want := mustDate(t, 2025, time.July, 3); gotEnd != want {
		t.Fatalf("locked shift moved end to %s, want %s", gotEnd, want)
	}
	if p.Range().Days() != 2 {
		t.Fatalf("locked span length changed to %d days, want 2", p.Range().Days())
	}
}

func TestDateRangePickerDialogSelectsBothEnds(t *testing.T) {
	p := NewDateRangePicker("r", time.Monday)
	p.Focus()

	start := mustDate(t, 2025, time.June, 10)
	end := mustDate(t, 2025, time.June, 20)
	p, _ = p.Update(DaySelectedMsg{ID: "r.select", Date: start})
	p, _ = p.Update(DaySelectedMsg{ID: "r.select", Date: end, End: true})

	if p.Range().State() != timekit.RangeComplete {
		t.Fatalf("range state %s, want complete", p.Range().State())
	}
	if !p.Range().Contains(mustDate(t, 2025, time.June, 15)) {
		t.Fatal("selected range does not contain an interior day")
	}
}

func TestDateTimeDurationPickerKeepsFieldsBound(t *testing.T) {
	p := NewDateTimeDurationPicker("w")
	p.Focus()

	start := timekit.DateTime{
		Date: mustDate(t, 2025, time.June, 15),
		Time: timekit.Time{Hour: 9},
	}
	p, _ = p.Update(DateTimeChangedMsg{ID: "w.start", DateTime: &start})

	dur, err := timekit.NewDuration(8, 30, 0)
	if err != nil {
		t.Fatalf("NewDuration: %v", err)
	}
	p, _ = p.Update(DurationChangedMsg{ID: "w.duration", Duration: &dur})

	gotEnd, ok := p.Range().End()
	if !ok {
		t.Fatal("duration edit did not set the end")
	}
	wantEnd := start.AddSeconds(dur.Seconds())
	if gotEnd != wantEnd {
		t.Fatalf("end is %s, want %s", gotEnd, wantEnd)
	}

	// Editing the end recomputes the duration.
	newEnd := start.AddSeconds(2 * 3600)
	p, _ = p.Update(DateTimeChangedMsg{ID: "w.end", DateTime: &newEnd})
	if got := p.Duration().String(); got != "02:00:00" {
		t.Fatalf("duration after end edit is %s, want 02:00:00", got)
	}

	// Moving the start carries the span along.
	newStart := start.AddSeconds(24 * 3600)
	p, _ = p.Update(DateTimeChangedMsg{ID: "w.start", DateTime: &newStart})
	gotEnd, _ = p.Range().End()
	if want := newStart.AddSeconds(2 * 3600); gotEnd != want {
		t.Fatalf("end after start shift is %s, want %s", gotEnd, want)
	}
}
