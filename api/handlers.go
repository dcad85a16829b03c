/*
handlers.go - HTTP handlers for the attendance engine

PURPOSE:
  Exposes the domain services and the state store over REST. Handles HTTP
  request/response and JSON serialization, delegates everything else to the
  service layer.

ERROR HANDLING:
  Errors map to JSON with an appropriate status:
  - 400: Validation errors, malformed payloads, rejected imports
  - 404: Unknown employee/department/payment
  - 500: Everything else

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/warp/attendance-engine/hr"
	"github.com/warp/attendance-engine/payroll"
	"github.com/warp/attendance-engine/service"
	"github.com/warp/attendance-engine/state"
)

const dateLayout = "2006-01-02"

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store       *state.Store
	Employees   *service.EmployeeService
	Attendance  *service.AttendanceService
	Absences    *service.AbsenceService
	Shifts      *service.ShiftService
	Departments *service.DepartmentService
	Payroll     *service.PayrollService
	Settings    *service.SettingsService
}

// NewHandler wires the services over the given store.
func NewHandler(store *state.Store) *Handler {
	return &Handler{
		Store:       store,
		Employees:   service.NewEmployeeService(store),
		Attendance:  service.NewAttendanceService(store),
		Absences:    service.NewAbsenceService(store),
		Shifts:      service.NewShiftService(store),
		Departments: service.NewDepartmentService(store),
		Payroll:     service.NewPayrollService(store),
		Settings:    service.NewSettingsService(store),
	}
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case hr.IsValidation(err):
		status = http.StatusBadRequest
	case hr.IsNotFound(err):
		status = http.StatusNotFound
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
}

func decode(r *http.Request, into any) error {
	return json.NewDecoder(r.Body).Decode(into)
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// =============================================================================
// EMPLOYEES
// =============================================================================

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("active") == "true" {
		writeJSON(w, http.StatusOK, h.Employees.GetActive())
		return
	}
	writeJSON(w, http.StatusOK, h.Employees.GetAll())
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	emp, err := h.Employees.Add(service.EmployeeInput{
		Name:         req.Name,
		Position:     req.Position,
		Department:   req.Department,
		Email:        req.Email,
		Phone:        req.Phone,
		StartDate:    req.StartDate,
		Salary:       req.Salary,
		ContractType: req.ContractType,
		Status:       req.Status,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, emp)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badRequest(w, "invalid employee id")
		return
	}
	emp, err := h.Employees.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emp)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badRequest(w, "invalid employee id")
		return
	}
	var req UpdateEmployeeRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	emp, err := h.Employees.Update(id, service.EmployeePatch{
		Name:         req.Name,
		Position:     req.Position,
		Department:   req.Department,
		Email:        req.Email,
		Phone:        req.Phone,
		StartDate:    req.StartDate,
		Salary:       req.Salary,
		ContractType: req.ContractType,
		Status:       req.Status,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emp)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badRequest(w, "invalid employee id")
		return
	}
	h.Employees.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetEmployeeHours(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badRequest(w, "invalid employee id")
		return
	}
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	if month < 1 || month > 12 || year == 0 {
		badRequest(w, "month and year query parameters are required")
		return
	}
	hours := h.Attendance.HoursForEmployee(id, time.Month(month), year)
	writeJSON(w, http.StatusOK, map[string]float64{"hours": hours})
}

func (h *Handler) GetEmployeeLateCount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badRequest(w, "invalid employee id")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"lateChecks": h.Attendance.TotalLateChecks(id)})
}

func (h *Handler) GetEmployeeRecords(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badRequest(w, "invalid employee id")
		return
	}
	records := h.Attendance.EmployeeRecords(id)
	if records == nil {
		records = []hr.AttendanceRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *Handler) GetSuggestedAction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badRequest(w, "invalid employee id")
		return
	}
	writeJSON(w, http.StatusOK, map[string]hr.Action{"action": h.Attendance.SuggestedAction(id)})
}

// =============================================================================
// ATTENDANCE
// =============================================================================

func (h *Handler) CreateAttendanceRecord(w http.ResponseWriter, r *http.Request) {
	var req CreateAttendanceRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	var ts time.Time
	if req.Timestamp != nil {
		ts = *req.Timestamp
	}
	record, err := h.Attendance.AddRecord(req.EmployeeID, req.Action, ts, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (h *Handler) ListTodayRecords(w http.ResponseWriter, r *http.Request) {
	records := h.Attendance.TodayRecords(time.Now())
	if records == nil {
		records = []hr.AttendanceRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *Handler) DeleteAttendanceRecord(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badRequest(w, "invalid record id")
		return
	}
	h.Attendance.DeleteRecord(id)
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// ABSENCES
// =============================================================================

func (h *Handler) ListAbsences(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Absences.GetAll())
}

func (h *Handler) CreateAbsence(w http.ResponseWriter, r *http.Request) {
	var req CreateAbsenceRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	start, err := time.Parse(dateLayout, req.DateStart)
	if err != nil {
		badRequest(w, "dateStart must be YYYY-MM-DD")
		return
	}
	end, err := time.Parse(dateLayout, req.DateEnd)
	if err != nil {
		badRequest(w, "dateEnd must be YYYY-MM-DD")
		return
	}
	absence, err := h.Absences.Add(service.AbsenceInput{
		EmployeeID: req.EmployeeID,
		DateStart:  start,
		DateEnd:    end,
		Type:       req.Type,
		Reason:     req.Reason,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, absence)
}

func (h *Handler) DeleteAbsence(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badRequest(w, "invalid absence id")
		return
	}
	h.Absences.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// SHIFTS
// =============================================================================

func (h *Handler) ListShifts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Shifts.All())
}

func (h *Handler) GetEmployeeShifts(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "employeeID")
	if err != nil {
		badRequest(w, "invalid employee id")
		return
	}
	writeJSON(w, http.StatusOK, h.Shifts.EmployeeShifts(id))
}

func (h *Handler) SetShift(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "employeeID")
	if err != nil {
		badRequest(w, "invalid employee id")
		return
	}
	day := hr.Weekday(chi.URLParam(r, "day"))
	var req SetShiftRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	shift, err := h.Shifts.Set(id, day, req.StartTime, req.EndTime)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shift)
}

func (h *Handler) RemoveShift(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "employeeID")
	if err != nil {
		badRequest(w, "invalid employee id")
		return
	}
	h.Shifts.Remove(id, hr.Weekday(chi.URLParam(r, "day")))
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// DEPARTMENTS
// =============================================================================

func (h *Handler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Departments.GetAll())
}

func (h *Handler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req DepartmentRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	dept, err := h.Departments.Add(req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dept)
}

func (h *Handler) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badRequest(w, "invalid department id")
		return
	}
	var req DepartmentRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	dept, err := h.Departments.Update(id, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dept)
}

func (h *Handler) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badRequest(w, "invalid department id")
		return
	}
	h.Departments.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// PAYROLL
// =============================================================================

func (h *Handler) RunPayroll(w http.ResponseWriter, r *http.Request) {
	var req RunPayrollRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if req.Month < 1 || req.Month > 12 {
		badRequest(w, "month must be between 1 and 12")
		return
	}
	payment, err := h.Payroll.Run(req.EmployeeID, time.Month(req.Month), req.Year)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}

func (h *Handler) PayrollHistory(w http.ResponseWriter, r *http.Request) {
	var f payroll.Filter
	q := r.URL.Query()
	if v := q.Get("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			badRequest(w, "invalid month filter")
			return
		}
		month := time.Month(m)
		f.Month = &month
	}
	if v := q.Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			badRequest(w, "invalid year filter")
			return
		}
		f.Year = &y
	}
	if v := q.Get("employeeId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			badRequest(w, "invalid employeeId filter")
			return
		}
		f.EmployeeID = &id
	}
	writeJSON(w, http.StatusOK, h.Payroll.History(f))
}

func (h *Handler) GetPayslip(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		badRequest(w, "invalid payment id")
		return
	}
	payment, err := h.Payroll.GetPayment(id)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="payslip-%d-%02d-%d.pdf"`, payment.Year, payment.Month, payment.EmployeeID))
	if err := payroll.Payslip(w, payment, h.Store.Settings()); err != nil {
		writeError(w, err)
	}
}

func (h *Handler) ListBonuses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Payroll.AllBonuses())
}

func (h *Handler) AddBonus(w http.ResponseWriter, r *http.Request) {
	var req AdjustmentRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if err := h.Payroll.AddBonus(req.EmployeeName, req.Amount, req.Reason); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) ClearBonus(w http.ResponseWriter, r *http.Request) {
	h.Payroll.ClearBonus(chi.URLParam(r, "employeeName"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListDeductions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Payroll.AllDeductions())
}

func (h *Handler) AddDeduction(w http.ResponseWriter, r *http.Request) {
	var req AdjustmentRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if err := h.Payroll.AddDeduction(req.EmployeeName, req.Amount, req.Reason); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) ClearDeduction(w http.ResponseWriter, r *http.Request) {
	h.Payroll.ClearDeduction(chi.URLParam(r, "employeeName"))
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// SETTINGS, EXPORT/IMPORT, ADMIN
// =============================================================================

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Settings.Get())
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var patch hr.SettingsPatch
	if err := decode(r, &patch); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if err := h.Settings.Update(patch); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.Settings.Get())
}

func (h *Handler) ExportData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Disposition", `attachment; filename="attendance-export.json"`)
	writeJSON(w, http.StatusOK, h.Store.Export())
}

func (h *Handler) ImportData(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		badRequest(w, "failed to read request body")
		return
	}
	if err := h.Store.ImportJSON(raw); err != nil {
		badRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"imported": true})
}

func (h *Handler) ClearAllData(w http.ResponseWriter, r *http.Request) {
	h.Store.ClearAll()
	w.WriteHeader(http.StatusNoContent)
}
