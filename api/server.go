/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the chi router, middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the browser frontend

ROUTE GROUPS:
  /api/employees/*    Roster management + per-employee time queries
  /api/attendance/*   Clock events
  /api/absences/*     Time away
  /api/shifts/*       Weekly schedule
  /api/departments/*  Department list
  /api/payroll/*      Payroll runs, history, payslips
  /api/bonuses/*      Pending bonus queues
  /api/deductions/*   Pending deduction queues
  /api/settings       Configuration singleton
  /api/export|import  Snapshot exchange
  /api/admin/clear    Full data reset

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.ListEmployees)
			r.Post("/", h.CreateEmployee)
			r.Get("/{id}", h.GetEmployee)
			r.Put("/{id}", h.UpdateEmployee)
			r.Delete("/{id}", h.DeleteEmployee)
			r.Get("/{id}/hours", h.GetEmployeeHours)
			r.Get("/{id}/late-count", h.GetEmployeeLateCount)
			r.Get("/{id}/records", h.GetEmployeeRecords)
			r.Get("/{id}/suggested-action", h.GetSuggestedAction)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/", h.CreateAttendanceRecord)
			r.Get("/today", h.ListTodayRecords)
			r.Delete("/{id}", h.DeleteAttendanceRecord)
		})

		r.Route("/absences", func(r chi.Router) {
			r.Get("/", h.ListAbsences)
			r.Post("/", h.CreateAbsence)
			r.Delete("/{id}", h.DeleteAbsence)
		})

		r.Route("/shifts", func(r chi.Router) {
			r.Get("/", h.ListShifts)
			r.Get("/{employeeID}", h.GetEmployeeShifts)
			r.Put("/{employeeID}/{day}", h.SetShift)
			r.Delete("/{employeeID}/{day}", h.RemoveShift)
		})

		r.Route("/departments", func(r chi.Router) {
			r.Get("/", h.ListDepartments)
			r.Post("/", h.CreateDepartment)
			r.Put("/{id}", h.UpdateDepartment)
			r.Delete("/{id}", h.DeleteDepartment)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Post("/run", h.RunPayroll)
			r.Get("/history", h.PayrollHistory)
			r.Get("/{id}/payslip", h.GetPayslip)
		})

		r.Route("/bonuses", func(r chi.Router) {
			r.Get("/", h.ListBonuses)
			r.Post("/", h.AddBonus)
			r.Delete("/{employeeName}", h.ClearBonus)
		})

		r.Route("/deductions", func(r chi.Router) {
			r.Get("/", h.ListDeductions)
			r.Post("/", h.AddDeduction)
			r.Delete("/{employeeName}", h.ClearDeduction)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", h.GetSettings)
			r.Put("/", h.UpdateSettings)
		})

		r.Get("/export", h.ExportData)
		r.Post("/import", h.ImportData)
		r.Post("/admin/clear", h.ClearAllData)
	})

	return r
}
