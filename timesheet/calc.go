/*
Package timesheet reduces raw clock events into worked time.

PURPOSE:
  This is the time calculation engine: it turns an unordered sequence of
  attendance records into hours worked, detects late clock-ins, and counts
  absence days. All functions are pure; the service layer feeds them
  collections read from the state store.

THE OPEN-ENTRY ALGORITHM (WorkHours):
  Records are sorted by timestamp (stable, so same-instant events keep
  their original order) and replayed against a single "open entry":

    clock_in     opens an entry. A clock_in while an entry is already open
                 REPLACES the open timestamp: time between the two clock-ins
                 is discarded rather than double-booked. Intentional.
    break_start  closes the open entry, accumulating worked time. Break time
                 is excluded by construction - nothing is open during it.
    break_end    opens a new entry; the clock resumes.
    clock_out    closes the open entry, accumulating worked time.

  An entry left open at the end of the sequence contributes nothing: a
  missing clock-out yields zero for that stretch until it is closed.

SEE ALSO:
  - payroll: Consumes MonthlyWorkHours for payroll runs
  - service: Orchestration over store collections
*/
package timesheet

import (
	"math"
	"sort"
	"time"

	"github.com/warp/attendance-engine/hr"
)

const msPerHour = 3600000

// WorkHours replays the given records and returns the total worked hours.
// Callers pass the records of one employee, typically one day's worth;
// ordering of the input does not matter.
func WorkHours(records []hr.AttendanceRecord) float64 {
	sorted := append([]hr.AttendanceRecord(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	var totalMs int64
	var open *time.Time

	for i := range sorted {
		ts := sorted[i].Timestamp
		switch sorted[i].Action {
		case hr.ActionClockIn:
			open = &ts
		case hr.ActionBreakStart:
			if open != nil {
				totalMs += ts.Sub(*open).Milliseconds()
				open = nil
			}
		case hr.ActionBreakEnd:
			open = &ts
		case hr.ActionClockOut:
			if open != nil {
				totalMs += ts.Sub(*open).Milliseconds()
				open = nil
			}
		}
	}

	return float64(totalMs) / msPerHour
}

// MonthlyWorkHours filters records down to one employee and one calendar
// month, groups them by day, and sums WorkHours over the day groups.
func MonthlyWorkHours(records []hr.AttendanceRecord, employeeID int64, month time.Month, year int) float64 {
	byDay := map[string][]hr.AttendanceRecord{}
	for _, r := range records {
		if r.EmployeeID != employeeID {
			continue
		}
		if r.Timestamp.Month() != month || r.Timestamp.Year() != year {
			continue
		}
		day := r.Timestamp.Format("2006-01-02")
		byDay[day] = append(byDay[day], r)
	}

	var total float64
	for _, dayRecords := range byDay {
		total += WorkHours(dayRecords)
	}
	return total
}

// IsLate reports whether a clock-in at ts exceeds the tolerated start of
// day. workStart is an "HH:MM" string; a malformed value is treated as
// never late (validation happens upstream, at the settings boundary).
// Only meaningful for clock_in events; callers filter.
func IsLate(ts time.Time, workStart string, toleranceMinutes int) bool {
	startMinutes, err := hr.ParseClock(workStart)
	if err != nil {
		return false
	}
	minutesOfDay := ts.Hour()*60 + ts.Minute()
	return minutesOfDay > startMinutes+toleranceMinutes
}

// DaysBetween returns the inclusive day count between two dates: a range of
// one single day counts as 1. Reversed arguments are tolerated (absolute
// difference) even though validation rejects them upstream.
func DaysBetween(start, end time.Time) int {
	diff := math.Abs(end.Sub(start).Hours() / 24)
	return int(math.Ceil(diff)) + 1
}

// SuggestedAction proposes the next clock action given the employee's most
// recent record (nil if none). After a clock-out or break-end with no
// activity, the natural next step is clocking in; an open day suggests
// clocking out; an open break suggests ending it.
func SuggestedAction(last *hr.AttendanceRecord) hr.Action {
	if last == nil {
		return hr.ActionClockIn
	}
	switch last.Action {
	case hr.ActionClockIn:
		return hr.ActionClockOut
	case hr.ActionBreakStart:
		return hr.ActionBreakEnd
	default:
		return hr.ActionClockIn
	}
}
