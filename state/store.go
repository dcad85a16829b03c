/*
Package state implements the central state store for the attendance engine.

PURPOSE:
  The Store is the single source of truth for every domain collection and
  the settings singleton. All mutation flows through its update entry
  points; every read returns a deep copy. Subscribers are notified
  synchronously after each mutation with the full current state.

KEY OPERATIONS:
  Load():           Read all collections from the backend, with defaults
  Subscribe():      Register a listener (replayed immediately, isolated)
  Apply():          Merge a partial collection update, persist changed keys
  UpdateSettings(): Merge a settings patch, persist, notify
  Export()/Import(): Whole-state snapshot exchange
  ClearAll():       Wipe persisted keys and return to first-run defaults

CONSISTENCY MODEL:
  A single mutex serializes mutations, so a mutation is atomic from any
  caller's perspective: subscribers never observe an intermediate state.
  Listeners run synchronously on the mutating goroutine but outside the
  lock, so a listener may re-read the store (the usual render path). A
  panicking listener is recovered and logged without affecting the others.

SEE ALSO:
  - storage.go: Backend contract and JSON codec
  - hr/state.go: The State document and its clone/normalize helpers
*/
package state

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/warp/attendance-engine/hr"
)

// Listener receives the full state after every mutation. The value is a
// deep copy; listeners may read it freely but gain nothing by mutating it.
type Listener func(hr.State)

// Store owns the in-memory state and its persistence.
type Store struct {
	mu        sync.Mutex
	backend   Backend
	state     hr.State
	settings  hr.Settings
	listeners map[uuid.UUID]Listener
}

// New creates a store over the given backend. Call Load before use.
func New(backend Backend) *Store {
	return &Store{
		backend:   backend,
		state:     hr.DefaultState(),
		settings:  hr.DefaultSettings(),
		listeners: make(map[uuid.UUID]Listener),
	}
}

// Load reads every collection from the backend, each falling back to its
// hardcoded default independently. Settings are decoded over the defaults
// so fields introduced after the data was saved backfill cleanly. A stored
// schema version that differs from the current one runs the migration hook
// and notifies subscribers.
func (s *Store) Load() {
	s.mu.Lock()

	st := hr.DefaultState()
	getJSON(s.backend, KeyEmployees, &st.Employees)
	getJSON(s.backend, KeyAttendance, &st.Attendance)
	getJSON(s.backend, KeyAbsences, &st.Absences)
	getJSON(s.backend, KeyShifts, &st.Shifts)
	getJSON(s.backend, KeyPayroll, &st.Payroll)
	getJSON(s.backend, KeyBonuses, &st.Bonuses)
	getJSON(s.backend, KeyDeductions, &st.Deductions)
	getJSON(s.backend, KeyDepartments, &st.Departments)
	s.state = st.Normalize()

	settings := hr.DefaultSettings()
	getJSON(s.backend, KeySettings, &settings)
	s.settings = settings

	migrated := false
	stored := hr.SchemaVersion
	if getJSON(s.backend, KeyVersion, &stored) && stored != hr.SchemaVersion {
		s.migrateLocked(stored)
		migrated = true
	} else {
		setJSON(s.backend, KeyVersion, hr.SchemaVersion)
	}

	if !migrated {
		s.mu.Unlock()
		return
	}
	s.unlockAndNotify()
}

// migrateLocked upgrades persisted data from an older schema version.
// There are no data transforms yet; the hook rewrites the version marker
// so future migrations have a single place to live.
func (s *Store) migrateLocked(from string) {
	slog.Info("state: migrating stored schema", "from", from, "to", hr.SchemaVersion)
	s.state.Version = hr.SchemaVersion
	setJSON(s.backend, KeyVersion, hr.SchemaVersion)
}

// =============================================================================
// SUBSCRIPTIONS
// =============================================================================

// Subscribe registers fn and returns a handle that removes it. The listener
// is invoked immediately with the current state (replay on subscribe), then
// again after every future mutation.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := uuid.New()
	s.listeners[id] = fn
	replay := s.state.Clone()
	s.mu.Unlock()

	invoke(fn, replay)

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// unlockAndNotify releases the store lock, then fans the state out to every
// listener. Notification happens outside the lock so a listener can call
// back into the store; each listener gets its own deep copy and its own
// panic isolation so one failing listener cannot starve the rest.
func (s *Store) unlockAndNotify() {
	listeners := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	current := s.state
	s.mu.Unlock()

	for _, fn := range listeners {
		invoke(fn, current.Clone())
	}
}

func invoke(fn Listener, st hr.State) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("state: listener panicked", "panic", r)
		}
	}()
	fn(st)
}

// =============================================================================
// READS - Always deep copies
// =============================================================================

// State returns a deep copy of the full document.
func (s *Store) State() hr.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Settings returns the current settings.
func (s *Store) Settings() hr.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// =============================================================================
// MUTATIONS
// =============================================================================

// Update is a partial state mutation. Each non-nil field replaces the
// corresponding collection wholesale (shallow replace per key, no deep
// merging), and exactly those keys are persisted.
type Update struct {
	Employees   *[]hr.Employee
	Attendance  *[]hr.AttendanceRecord
	Absences    *[]hr.Absence
	Shifts      *map[int64]map[hr.Weekday]hr.Shift
	Payroll     *[]hr.PayrollPayment
	Bonuses     *map[string][]hr.Adjustment
	Deductions  *map[string][]hr.Adjustment
	Departments *[]hr.Department
}

// Apply merges the update into the in-memory state, persists the changed
// keys, and notifies all subscribers once.
func (s *Store) Apply(u Update) {
	s.mu.Lock()

	if u.Employees != nil {
		s.state.Employees = *u.Employees
		setJSON(s.backend, KeyEmployees, s.state.Employees)
	}
	if u.Attendance != nil {
		s.state.Attendance = *u.Attendance
		setJSON(s.backend, KeyAttendance, s.state.Attendance)
	}
	if u.Absences != nil {
		s.state.Absences = *u.Absences
		setJSON(s.backend, KeyAbsences, s.state.Absences)
	}
	if u.Shifts != nil {
		s.state.Shifts = *u.Shifts
		setJSON(s.backend, KeyShifts, s.state.Shifts)
	}
	if u.Payroll != nil {
		s.state.Payroll = *u.Payroll
		setJSON(s.backend, KeyPayroll, s.state.Payroll)
	}
	if u.Bonuses != nil {
		s.state.Bonuses = *u.Bonuses
		setJSON(s.backend, KeyBonuses, s.state.Bonuses)
	}
	if u.Deductions != nil {
		s.state.Deductions = *u.Deductions
		setJSON(s.backend, KeyDeductions, s.state.Deductions)
	}
	if u.Departments != nil {
		s.state.Departments = *u.Departments
		setJSON(s.backend, KeyDepartments, s.state.Departments)
	}
	s.state = s.state.Normalize()

	s.unlockAndNotify()
}

// UpdateSettings shallow-merges the patch, persists the whole settings
// object, and notifies.
func (s *Store) UpdateSettings(patch hr.SettingsPatch) {
	s.mu.Lock()
	s.settings = patch.Apply(s.settings)
	setJSON(s.backend, KeySettings, s.settings)
	s.unlockAndNotify()
}

// =============================================================================
// SNAPSHOT EXCHANGE
// =============================================================================

// Export returns the full state plus settings with an export timestamp,
// suitable for serialization to a file.
func (s *Store) Export() hr.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return hr.Snapshot{
		State:      s.state.Clone(),
		Settings:   s.settings,
		ExportDate: time.Now().UTC(),
	}
}

// ImportJSON parses raw snapshot bytes and imports them. Parsing happens
// entirely before any persistence, so a malformed file rejects the import
// and leaves both memory and storage untouched. Partial settings in the
// file merge over defaults.
func (s *Store) ImportJSON(raw []byte) error {
	snap := hr.Snapshot{Settings: hr.DefaultSettings()}
	if err := json.Unmarshal(raw, &snap); err != nil {
		return fmt.Errorf("invalid snapshot: %w", err)
	}
	return s.Import(snap)
}

// Import replaces the entire state with the snapshot's collections (missing
// keys default to empty), replaces settings, persists every key, and
// notifies.
func (s *Store) Import(snap hr.Snapshot) error {
	s.mu.Lock()

	s.state = snap.State.Normalize()
	s.state.Version = hr.SchemaVersion
	s.settings = snap.Settings

	setJSON(s.backend, KeyEmployees, s.state.Employees)
	setJSON(s.backend, KeyAttendance, s.state.Attendance)
	setJSON(s.backend, KeyAbsences, s.state.Absences)
	setJSON(s.backend, KeyShifts, s.state.Shifts)
	setJSON(s.backend, KeyPayroll, s.state.Payroll)
	setJSON(s.backend, KeyBonuses, s.state.Bonuses)
	setJSON(s.backend, KeyDeductions, s.state.Deductions)
	setJSON(s.backend, KeyDepartments, s.state.Departments)
	setJSON(s.backend, KeySettings, s.settings)
	setJSON(s.backend, KeyVersion, s.state.Version)

	s.unlockAndNotify()
	return nil
}

// ClearAll wipes every persisted key and reloads first-run defaults, then
// notifies. Equivalent to a fresh install.
func (s *Store) ClearAll() {
	s.mu.Lock()
	if !s.backend.Clear() {
		slog.Error("state: failed to clear backend")
	}
	s.state = hr.DefaultState()
	s.settings = hr.DefaultSettings()
	s.unlockAndNotify()
}
