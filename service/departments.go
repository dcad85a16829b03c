package service

import (
	"github.com/warp/attendance-engine/hr"
	"github.com/warp/attendance-engine/state"
)

// DepartmentService manages the department list. Employees reference
// departments by name, so renames do not cascade; see the hr.State notes.
type DepartmentService struct {
	store *state.Store
}

func NewDepartmentService(store *state.Store) *DepartmentService {
	return &DepartmentService{store: store}
}

func (s *DepartmentService) Add(name string) (hr.Department, error) {
	if err := hr.Required(name, "name"); err != nil {
		return hr.Department{}, err
	}
	dept := hr.NewDepartment(hr.Department{Name: name})
	departments := append(s.store.State().Departments, dept)
	s.store.Apply(state.Update{Departments: &departments})
	return dept, nil
}

func (s *DepartmentService) Update(id int64, name string) (hr.Department, error) {
	if err := hr.Required(name, "name"); err != nil {
		return hr.Department{}, err
	}
	departments := s.store.State().Departments
	var updated *hr.Department
	for i := range departments {
		if departments[i].ID == id {
			departments[i].Name = name
			updated = &departments[i]
			break
		}
	}
	if updated == nil {
		return hr.Department{}, hr.ErrDepartmentNotFound
	}
	s.store.Apply(state.Update{Departments: &departments})
	return *updated, nil
}

// Delete removes a department by id. Unknown ids are a no-op.
func (s *DepartmentService) Delete(id int64) {
	current := s.store.State().Departments
	departments := make([]hr.Department, 0, len(current))
	for _, d := range current {
		if d.ID != id {
			departments = append(departments, d)
		}
	}
	s.store.Apply(state.Update{Departments: &departments})
}

func (s *DepartmentService) GetByID(id int64) (hr.Department, error) {
	for _, d := range s.store.State().Departments {
		if d.ID == id {
			return d, nil
		}
	}
	return hr.Department{}, hr.ErrDepartmentNotFound
}

func (s *DepartmentService) GetAll() []hr.Department {
	return s.store.State().Departments
}
