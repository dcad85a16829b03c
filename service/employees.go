/*
Package service exposes the domain operations consumed by UI collaborators.

PURPOSE:
  Thin CRUD orchestration over the state store. Every service reads the
  current collection, builds a fresh one (never mutating in place), and
  hands it to the store's update entry point, which persists the changed
  keys and notifies subscribers.

ERROR CONTRACT:
  - Validation failures return *hr.ValidationError (bad input, caller
    surfaces the message and the action stops).
  - Reference failures return sentinel errors such as hr.ErrEmployeeNotFound,
    raised at lookup time before any calculation.
  - Deleting an id that does not exist is a no-op, not an error.

SEE ALSO:
  - state: The store all services mutate through
  - timesheet, payroll: The calculation engines services delegate to
*/
package service

import (
	"time"

	"github.com/warp/attendance-engine/hr"
	"github.com/warp/attendance-engine/state"
)

// EmployeeService manages the roster.
type EmployeeService struct {
	store *state.Store
	now   func() time.Time
}

func NewEmployeeService(store *state.Store) *EmployeeService {
	return &EmployeeService{store: store, now: time.Now}
}

// EmployeeInput carries the fields accepted at creation time. Optional
// fields left zero take deterministic defaults (see hr.NewEmployee).
type EmployeeInput struct {
	Name         string
	Position     string
	Department   string
	Email        string
	Phone        string
	StartDate    string
	Salary       float64
	ContractType hr.ContractType
	Status       hr.Status
}

// Add validates the input, creates the employee, and appends it to the
// roster.
func (s *EmployeeService) Add(in EmployeeInput) (hr.Employee, error) {
	if err := hr.Required(in.Name, "name"); err != nil {
		return hr.Employee{}, err
	}
	if err := hr.Required(in.Position, "position"); err != nil {
		return hr.Employee{}, err
	}
	if err := hr.Required(in.Department, "department"); err != nil {
		return hr.Employee{}, err
	}
	if err := hr.ValidEmail(in.Email); err != nil {
		return hr.Employee{}, err
	}
	if err := hr.NonNegative(in.Salary, "salary"); err != nil {
		return hr.Employee{}, err
	}
	if in.ContractType != "" && !in.ContractType.IsValid() {
		return hr.Employee{}, &hr.ValidationError{Field: "contractType", Message: "unknown contract type"}
	}
	if in.Status != "" && !in.Status.IsValid() {
		return hr.Employee{}, &hr.ValidationError{Field: "status", Message: "unknown status"}
	}

	emp := hr.NewEmployee(hr.Employee{
		Name:         in.Name,
		Position:     in.Position,
		Department:   in.Department,
		Email:        in.Email,
		Phone:        in.Phone,
		StartDate:    in.StartDate,
		Salary:       in.Salary,
		ContractType: in.ContractType,
		Status:       in.Status,
	}, s.now())

	employees := append(s.store.State().Employees, emp)
	s.store.Apply(state.Update{Employees: &employees})
	return emp, nil
}

// EmployeePatch is a partial employee update. Nil fields are untouched.
type EmployeePatch struct {
	Name         *string
	Position     *string
	Department   *string
	Email        *string
	Phone        *string
	StartDate    *string
	Salary       *float64
	ContractType *hr.ContractType
	Status       *hr.Status
}

// Update applies the patch to the employee with the given id and re-stamps
// UpdatedAt.
func (s *EmployeeService) Update(id int64, patch EmployeePatch) (hr.Employee, error) {
	if patch.Email != nil {
		if err := hr.ValidEmail(*patch.Email); err != nil {
			return hr.Employee{}, err
		}
	}
	if patch.Salary != nil {
		if err := hr.NonNegative(*patch.Salary, "salary"); err != nil {
			return hr.Employee{}, err
		}
	}

	employees := s.store.State().Employees
	var updated *hr.Employee
	for i := range employees {
		if employees[i].ID != id {
			continue
		}
		e := &employees[i]
		if patch.Name != nil {
			e.Name = *patch.Name
		}
		if patch.Position != nil {
			e.Position = *patch.Position
		}
		if patch.Department != nil {
			e.Department = *patch.Department
		}
		if patch.Email != nil {
			e.Email = *patch.Email
		}
		if patch.Phone != nil {
			e.Phone = *patch.Phone
		}
		if patch.StartDate != nil {
			e.StartDate = *patch.StartDate
		}
		if patch.Salary != nil {
			e.Salary = *patch.Salary
		}
		if patch.ContractType != nil {
			e.ContractType = *patch.ContractType
		}
		if patch.Status != nil {
			e.Status = *patch.Status
		}
		stamp := s.now()
		e.UpdatedAt = &stamp
		updated = e
		break
	}
	if updated == nil {
		return hr.Employee{}, hr.ErrEmployeeNotFound
	}

	s.store.Apply(state.Update{Employees: &employees})
	return *updated, nil
}

// Delete removes the employee with the given id. Unknown ids are a no-op.
func (s *EmployeeService) Delete(id int64) {
	current := s.store.State().Employees
	employees := make([]hr.Employee, 0, len(current))
	for _, e := range current {
		if e.ID != id {
			employees = append(employees, e)
		}
	}
	s.store.Apply(state.Update{Employees: &employees})
}

func (s *EmployeeService) GetByID(id int64) (hr.Employee, error) {
	for _, e := range s.store.State().Employees {
		if e.ID == id {
			return e, nil
		}
	}
	return hr.Employee{}, hr.ErrEmployeeNotFound
}

func (s *EmployeeService) GetAll() []hr.Employee {
	return s.store.State().Employees
}

// GetActive returns employees whose status is active.
func (s *EmployeeService) GetActive() []hr.Employee {
	all := s.store.State().Employees
	active := make([]hr.Employee, 0, len(all))
	for _, e := range all {
		if e.Status == hr.StatusActive {
			active = append(active, e)
		}
	}
	return active
}
