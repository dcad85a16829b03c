/*
storage.go - Durable key/value backend contract

PURPOSE:
  Defines the interface between the state store and durable storage.
  Implementations persist raw JSON bytes under string keys. Different
  implementations can use SQLite, PostgreSQL, or in-memory storage.

NEVER-FAIL CONTRACT:
  Backend operations do not return errors. A failed read reports absence,
  a failed write reports false; implementations log the underlying cause.
  The store therefore degrades to defaults when storage is unavailable or
  a stored value is corrupt - availability is favored over surfacing
  data-loss to callers. This mirrors the quota/disabled-storage behavior
  of the browser origin of this system.

IMPLEMENTATIONS:
  - state/storage/memory.go: In-memory for testing
  - store/sqlite/sqlite.go:  Production SQLite
  - store/postgres/postgres.go: PostgreSQL via pgx

SEE ALSO:
  - store.go: The state store built on this contract
*/
package state

import (
	"encoding/json"
	"log/slog"
)

// Backend is durable key/value storage for JSON-encoded collections.
type Backend interface {
	// Get returns the stored bytes for key, or false if the key is absent
	// or the read failed.
	Get(key string) ([]byte, bool)

	// Set stores value under key, reporting success.
	Set(key string, value []byte) bool

	// Remove deletes key, reporting success. Removing an absent key succeeds.
	Remove(key string) bool

	// Clear deletes every key, reporting success.
	Clear() bool
}

// Persisted collection keys. Each collection is stored independently so a
// mutation only rewrites the keys it touched.
const (
	KeyEmployees   = "employees"
	KeyAttendance  = "attendance"
	KeyAbsences    = "absences"
	KeyShifts      = "shifts"
	KeyPayroll     = "payroll"
	KeyBonuses     = "bonuses"
	KeyDeductions  = "deductions"
	KeyDepartments = "departments"
	KeySettings    = "settings"
	KeyVersion     = "version"
)

// getJSON decodes the value stored under key into target. On a missing key
// or corrupt value it leaves target untouched (the caller's default) and
// returns false. Corruption is logged and absorbed, never propagated.
func getJSON(b Backend, key string, target any) bool {
	raw, ok := b.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, target); err != nil {
		slog.Error("state: corrupt stored value, falling back to default",
			"key", key, "error", err)
		return false
	}
	return true
}

// setJSON encodes value and stores it under key, reporting success.
func setJSON(b Backend, key string, value any) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		slog.Error("state: failed to encode value", "key", key, "error", err)
		return false
	}
	return b.Set(key, raw)
}
