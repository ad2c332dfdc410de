package store

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/models"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/common"
	"github.com/google/uuid"
)

const hireDateLayout = "2006-01-02"

func (s *Store) Employees() []models.Employee {
	return slices.Clone(s.state.Employees)
}

// EmployeeViews joins every employee with its account's display name.
func (s *Store) EmployeeViews() []models.EmployeeView {
	out := make([]models.EmployeeView, 0, len(s.state.Employees))
	for _, e := range s.state.Employees {
		name := e.Email
		if a, ok := s.AccountByEmail(e.Email); ok {
			name = fmt.Sprintf("%s (%s)", a.FullName(), e.Email)
		}
		out = append(out, models.EmployeeView{Employee: e, DisplayName: name})
	}
	return out
}

func (s *Store) Employee(key string) (models.Employee, bool) {
	i := s.employeeIndex(key)
	if i < 0 {
		return models.Employee{}, false
	}
	return s.state.Employees[i], true
}

func (s *Store) employeeIndex(key string) int {
	return slices.IndexFunc(s.state.Employees, func(e models.Employee) bool { return e.Key == key })
}

// validateEmployee checks required fields first, then the account
// reference, the department reference and finally ID uniqueness. The
// department is only checked when it differs from current.Dept, so an
// employee whose department was deleted can still be edited.
func (s *Store) validateEmployee(in models.EmployeeInput, current models.Employee) (models.Employee, error) {
	e := models.Employee{
		Key:      current.Key,
		ID:       trim(in.ID),
		Email:    trim(in.Email),
		Position: trim(in.Position),
		Dept:     trim(in.Dept),
		HireDate: trim(in.HireDate),
	}

	if e.ID == "" || e.Email == "" || e.Position == "" {
		field := "position"
		if e.ID == "" {
			field = "id"
		} else if e.Email == "" {
			field = "email"
		}
		return e, common.NewValidationError(field, "Employee ID, Email, and Position are required.")
	}

	if _, ok := s.AccountByEmail(e.Email); !ok {
		return e, common.NewValidationError("email",
			fmt.Sprintf("No account found for %q. Create an account first.", e.Email))
	}

	switch {
	case e.Dept == "":
	case current.Key != "" && sameFold(e.Dept, current.Dept):
		e.Dept = current.Dept
	default:
		d, ok := s.departmentByName(e.Dept)
		if !ok {
			return e, common.NewValidationError("dept", fmt.Sprintf("No department named %q.", e.Dept))
		}
		e.Dept = d.Name
	}

	if e.HireDate != "" {
		if _, err := time.Parse(hireDateLayout, e.HireDate); err != nil {
			return e, common.NewValidationError("hireDate", "Hire date must be in YYYY-MM-DD format.")
		}
	}

	dup := slices.ContainsFunc(s.state.Employees, func(o models.Employee) bool {
		return o.Key != current.Key && o.ID == e.ID
	})
	if dup {
		return e, common.NewValidationError("id", fmt.Sprintf("An employee with ID %q already exists.", e.ID))
	}
	return e, nil
}

func (s *Store) CreateEmployee(ctx context.Context, in models.EmployeeInput) (models.Employee, error) {
	e, err := s.validateEmployee(in, models.Employee{})
	if err != nil {
		return models.Employee{}, err
	}
	e.Key = uuid.NewString()

	next := s.state.Clone()
	next.Employees = append(next.Employees, e)
	if err := s.commit(ctx, next, Change{Collection: CollectionEmployees, Op: OpCreate, Key: e.Key}); err != nil {
		return models.Employee{}, err
	}
	return e, nil
}

func (s *Store) UpdateEmployee(ctx context.Context, key string, in models.EmployeeInput) (models.Employee, error) {
	i := s.employeeIndex(key)
	if i < 0 {
		return models.Employee{}, fmt.Errorf("employee %s: %w", key, common.ErrNotFound)
	}
	e, err := s.validateEmployee(in, s.state.Employees[i])
	if err != nil {
		return models.Employee{}, err
	}

	next := s.state.Clone()
	next.Employees[i] = e
	if err := s.commit(ctx, next, Change{Collection: CollectionEmployees, Op: OpUpdate, Key: key}); err != nil {
		return models.Employee{}, err
	}
	return e, nil
}

func (s *Store) DeleteEmployee(ctx context.Context, key string) error {
	i := s.employeeIndex(key)
	if i < 0 {
		return fmt.Errorf("employee %s: %w", key, common.ErrNotFound)
	}

	next := s.state.Clone()
	next.Employees = slices.Delete(next.Employees, i, i+1)
	return s.commit(ctx, next, Change{Collection: CollectionEmployees, Op: OpDelete, Key: key})
}
