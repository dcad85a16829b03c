package hr

import "time"

// =============================================================================
// STATE DOCUMENT - All domain collections
// =============================================================================

// SchemaVersion is the current persisted-state schema version. A stored
// version that differs triggers the migration hook in the state package.
const SchemaVersion = "2.0"

// State is the full in-memory domain document owned by the state store.
// Shifts are keyed by employee id then weekday. Bonuses and Deductions are
// keyed by employee NAME, matching the persisted snapshot contract: renaming
// an employee orphans their pending entries. That keying is preserved
// deliberately; do not swap it for id keying without a data migration.
type State struct {
	Employees   []Employee                  `json:"employees"`
	Attendance  []AttendanceRecord          `json:"attendance"`
	Absences    []Absence                   `json:"absences"`
	Shifts      map[int64]map[Weekday]Shift `json:"shifts"`
	Payroll     []PayrollPayment            `json:"payroll"`
	Bonuses     map[string][]Adjustment     `json:"bonuses"`
	Deductions  map[string][]Adjustment     `json:"deductions"`
	Departments []Department                `json:"departments"`
	Version     string                      `json:"version"`
}

// DefaultDepartments is the seed list written on first run.
func DefaultDepartments() []Department {
	return []Department{
		{ID: 1, Name: "Administration"},
		{ID: 2, Name: "Sales"},
		{ID: 3, Name: "Production"},
		{ID: 4, Name: "IT"},
		{ID: 5, Name: "Human Resources"},
		{ID: 6, Name: "Finance"},
		{ID: 7, Name: "Marketing"},
	}
}

// DefaultState returns the first-run document: empty collections plus the
// seeded department list.
func DefaultState() State {
	s := State{
		Departments: DefaultDepartments(),
		Version:     SchemaVersion,
	}
	return s.Normalize()
}

// Normalize replaces nil collections with empty ones so callers never see
// nil maps or slices, and so an imported snapshot with missing keys defaults
// cleanly.
func (s State) Normalize() State {
	if s.Employees == nil {
		s.Employees = []Employee{}
	}
	if s.Attendance == nil {
		s.Attendance = []AttendanceRecord{}
	}
	if s.Absences == nil {
		s.Absences = []Absence{}
	}
	if s.Shifts == nil {
		s.Shifts = map[int64]map[Weekday]Shift{}
	}
	if s.Payroll == nil {
		s.Payroll = []PayrollPayment{}
	}
	if s.Bonuses == nil {
		s.Bonuses = map[string][]Adjustment{}
	}
	if s.Deductions == nil {
		s.Deductions = map[string][]Adjustment{}
	}
	if s.Departments == nil {
		s.Departments = []Department{}
	}
	if s.Version == "" {
		s.Version = SchemaVersion
	}
	return s
}

// Clone deep-copies the document. Getters return clones so no caller can
// alias the store's internal collections.
func (s State) Clone() State {
	out := s
	out.Employees = append([]Employee(nil), s.Employees...)
	out.Attendance = append([]AttendanceRecord(nil), s.Attendance...)
	out.Absences = append([]Absence(nil), s.Absences...)
	out.Payroll = append([]PayrollPayment(nil), s.Payroll...)
	out.Departments = append([]Department(nil), s.Departments...)
	out.Shifts = make(map[int64]map[Weekday]Shift, len(s.Shifts))
	for id, week := range s.Shifts {
		w := make(map[Weekday]Shift, len(week))
		for day, shift := range week {
			w[day] = shift
		}
		out.Shifts[id] = w
	}
	out.Bonuses = cloneAdjustments(s.Bonuses)
	out.Deductions = cloneAdjustments(s.Deductions)
	return out.Normalize()
}

func cloneAdjustments(m map[string][]Adjustment) map[string][]Adjustment {
	out := make(map[string][]Adjustment, len(m))
	for name, entries := range m {
		out[name] = append([]Adjustment(nil), entries...)
	}
	return out
}

// =============================================================================
// SNAPSHOT - Export/import document
// =============================================================================

// Snapshot is the exportable form of the full state: every collection plus
// settings and the export timestamp. It round-trips through JSON.
type Snapshot struct {
	State
	Settings   Settings  `json:"settings"`
	ExportDate time.Time `json:"exportDate"`
}
