package timesheet_test

import (
	"testing"
	"time"

	"github.com/warp/attendance-engine/hr"
	"github.com/warp/attendance-engine/timesheet"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func at(hour, min int) time.Time {
	return time.Date(2025, time.March, 10, hour, min, 0, 0, time.UTC)
}

func record(action hr.Action, ts time.Time) hr.AttendanceRecord {
	return hr.AttendanceRecord{EmployeeID: 1, Action: action, Timestamp: ts}
}

// =============================================================================
// WORK HOURS
// =============================================================================

func TestWorkHours_FullDay(t *testing.T) {
	// GIVEN: clock-in 09:00, clock-out 17:00
	records := []hr.AttendanceRecord{
		record(hr.ActionClockIn, at(9, 0)),
		record(hr.ActionClockOut, at(17, 0)),
	}

	// THEN: exactly 8 hours
	if got := timesheet.WorkHours(records); got != 8.0 {
		t.Errorf("WorkHours = %v, want 8.0", got)
	}
}

func TestWorkHours_BreakExcluded(t *testing.T) {
	// GIVEN: 09:00-17:00 with a one-hour break at noon
	records := []hr.AttendanceRecord{
		record(hr.ActionClockIn, at(9, 0)),
		record(hr.ActionBreakStart, at(12, 0)),
		record(hr.ActionBreakEnd, at(13, 0)),
		record(hr.ActionClockOut, at(17, 0)),
	}

	// THEN: the break hour is excluded
	if got := timesheet.WorkHours(records); got != 7.0 {
		t.Errorf("WorkHours = %v, want 7.0", got)
	}
}

func TestWorkHours_UnclosedEntry(t *testing.T) {
	// GIVEN: a clock-in with no clock-out
	records := []hr.AttendanceRecord{record(hr.ActionClockIn, at(9, 0))}

	// THEN: an open entry contributes nothing
	if got := timesheet.WorkHours(records); got != 0.0 {
		t.Errorf("WorkHours = %v, want 0.0", got)
	}
}

func TestWorkHours_UnorderedInput(t *testing.T) {
	// GIVEN: the same day delivered out of order
	records := []hr.AttendanceRecord{
		record(hr.ActionClockOut, at(17, 0)),
		record(hr.ActionBreakEnd, at(13, 0)),
		record(hr.ActionClockIn, at(9, 0)),
		record(hr.ActionBreakStart, at(12, 0)),
	}

	if got := timesheet.WorkHours(records); got != 7.0 {
		t.Errorf("WorkHours = %v, want 7.0", got)
	}
}

func TestWorkHours_RepeatedClockIn_NoDoubleCounting(t *testing.T) {
	// GIVEN: two clock-ins without an intervening clock-out
	// The second clock-in replaces the open entry, so the 09:00-11:00
	// stretch is discarded rather than double-booked.
	records := []hr.AttendanceRecord{
		record(hr.ActionClockIn, at(9, 0)),
		record(hr.ActionClockIn, at(11, 0)),
		record(hr.ActionClockOut, at(17, 0)),
	}

	if got := timesheet.WorkHours(records); got != 6.0 {
		t.Errorf("WorkHours = %v, want 6.0", got)
	}
}

func TestWorkHours_ClockOutWithoutEntry(t *testing.T) {
	// GIVEN: a lone clock-out
	records := []hr.AttendanceRecord{record(hr.ActionClockOut, at(17, 0))}

	if got := timesheet.WorkHours(records); got != 0.0 {
		t.Errorf("WorkHours = %v, want 0.0", got)
	}
}

func TestWorkHours_SameInstantEvents_NoCrash(t *testing.T) {
	// GIVEN: interleaved events sharing one timestamp; the stable sort
	// keeps original order and the replay tolerates the tie
	records := []hr.AttendanceRecord{
		record(hr.ActionClockIn, at(9, 0)),
		record(hr.ActionClockOut, at(9, 0)),
	}

	if got := timesheet.WorkHours(records); got != 0.0 {
		t.Errorf("WorkHours = %v, want 0.0", got)
	}
}

// =============================================================================
// MONTHLY AGGREGATION
// =============================================================================

func TestMonthlyWorkHours_FiltersAndSums(t *testing.T) {
	// GIVEN: two worked days in March, one in April, one other employee
	march10 := []hr.AttendanceRecord{
		record(hr.ActionClockIn, at(9, 0)),
		record(hr.ActionClockOut, at(17, 0)),
	}
	march11 := []hr.AttendanceRecord{
		record(hr.ActionClockIn, time.Date(2025, time.March, 11, 9, 0, 0, 0, time.UTC)),
		record(hr.ActionClockOut, time.Date(2025, time.March, 11, 13, 0, 0, 0, time.UTC)),
	}
	april := []hr.AttendanceRecord{
		record(hr.ActionClockIn, time.Date(2025, time.April, 1, 9, 0, 0, 0, time.UTC)),
		record(hr.ActionClockOut, time.Date(2025, time.April, 1, 17, 0, 0, 0, time.UTC)),
	}
	other := hr.AttendanceRecord{
		EmployeeID: 2,
		Action:     hr.ActionClockIn,
		Timestamp:  at(9, 0),
	}

	var all []hr.AttendanceRecord
	all = append(all, march10...)
	all = append(all, march11...)
	all = append(all, april...)
	all = append(all, other)

	// THEN: only employee 1's March days count: 8 + 4
	if got := timesheet.MonthlyWorkHours(all, 1, time.March, 2025); got != 12.0 {
		t.Errorf("MonthlyWorkHours = %v, want 12.0", got)
	}
}

func TestMonthlyWorkHours_DayGrouping_NoCrossDayEntries(t *testing.T) {
	// GIVEN: a clock-in on one day and a clock-out on the next; day
	// grouping keeps the orphaned events from pairing across midnight
	records := []hr.AttendanceRecord{
		record(hr.ActionClockIn, time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)),
		record(hr.ActionClockOut, time.Date(2025, time.March, 11, 17, 0, 0, 0, time.UTC)),
	}

	if got := timesheet.MonthlyWorkHours(records, 1, time.March, 2025); got != 0.0 {
		t.Errorf("MonthlyWorkHours = %v, want 0.0", got)
	}
}

// =============================================================================
// LATENESS
// =============================================================================

func TestIsLate_Boundary(t *testing.T) {
	// GIVEN: work starts 09:00 with 15 minutes tolerance
	cases := []struct {
		name string
		ts   time.Time
		want bool
	}{
		{"on the dot", at(9, 0), false},
		{"at tolerance edge 09:15", at(9, 15), false},
		{"one past tolerance 09:16", at(9, 16), true},
		{"well past", at(10, 30), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := timesheet.IsLate(tc.ts, "09:00", 15); got != tc.want {
				t.Errorf("IsLate(%v) = %v, want %v", tc.ts, got, tc.want)
			}
		})
	}
}

func TestIsLate_MalformedStartTime(t *testing.T) {
	if timesheet.IsLate(at(23, 59), "not-a-time", 15) {
		t.Error("malformed work start must never report late")
	}
}

// =============================================================================
// DAY COUNTS
// =============================================================================

func TestDaysBetween(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC) }

	cases := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"same day", day(5), day(5), 1},
		{"three days apart", day(5), day(8), 4},
		{"reversed tolerated", day(8), day(5), 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := timesheet.DaysBetween(tc.start, tc.end); got != tc.want {
				t.Errorf("DaysBetween = %d, want %d", got, tc.want)
			}
		})
	}
}

// =============================================================================
// SUGGESTED ACTION
// =============================================================================

func TestSuggestedAction(t *testing.T) {
	in := record(hr.ActionClockIn, at(9, 0))
	brk := record(hr.ActionBreakStart, at(12, 0))
	out := record(hr.ActionClockOut, at(17, 0))

	if got := timesheet.SuggestedAction(nil); got != hr.ActionClockIn {
		t.Errorf("no history: got %v, want clock_in", got)
	}
	if got := timesheet.SuggestedAction(&in); got != hr.ActionClockOut {
		t.Errorf("after clock-in: got %v, want clock_out", got)
	}
	if got := timesheet.SuggestedAction(&brk); got != hr.ActionBreakEnd {
		t.Errorf("after break-start: got %v, want break_end", got)
	}
	if got := timesheet.SuggestedAction(&out); got != hr.ActionClockIn {
		t.Errorf("after clock-out: got %v, want clock_in", got)
	}
}
