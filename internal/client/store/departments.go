package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/models"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/common"
	"github.com/google/uuid"
)

// Departments lists departments in insertion order, the order the employee
// form offers them in.
func (s *Store) Departments() []models.Department {
	return slices.Clone(s.state.Departments)
}

func (s *Store) Department(key string) (models.Department, bool) {
	i := s.departmentIndex(key)
	if i < 0 {
		return models.Department{}, false
	}
	return s.state.Departments[i], true
}

func (s *Store) departmentIndex(key string) int {
	return slices.IndexFunc(s.state.Departments, func(d models.Department) bool { return d.Key == key })
}

// departmentByName matches name case-insensitively.
func (s *Store) departmentByName(name string) (models.Department, bool) {
	for _, d := range s.state.Departments {
		if sameFold(d.Name, name) {
			return d, true
		}
	}
	return models.Department{}, false
}

func (s *Store) validateDepartment(in models.DepartmentInput, skipKey string) (models.DepartmentInput, error) {
	in.Name, in.Description = trim(in.Name), trim(in.Description)
	if in.Name == "" {
		return in, common.NewValidationError("name", "Department name is required.")
	}
	taken := slices.ContainsFunc(s.state.Departments, func(d models.Department) bool {
		return d.Key != skipKey && sameFold(d.Name, in.Name)
	})
	if taken {
		return in, common.NewValidationError("name", fmt.Sprintf("A department named %q already exists.", in.Name))
	}
	return in, nil
}

func (s *Store) CreateDepartment(ctx context.Context, in models.DepartmentInput) (models.Department, error) {
	in, err := s.validateDepartment(in, "")
	if err != nil {
		return models.Department{}, err
	}

	d := models.Department{Key: uuid.NewString(), Name: in.Name, Description: in.Description}
	next := s.state.Clone()
	next.Departments = append(next.Departments, d)
	if err := s.commit(ctx, next, Change{Collection: CollectionDepartments, Op: OpCreate, Key: d.Key}); err != nil {
		return models.Department{}, err
	}
	return d, nil
}

// UpdateDepartment edits a department. A rename is carried over to the
// employees that referenced the old name.
func (s *Store) UpdateDepartment(ctx context.Context, key string, in models.DepartmentInput) (models.Department, error) {
	i := s.departmentIndex(key)
	if i < 0 {
		return models.Department{}, fmt.Errorf("department %s: %w", key, common.ErrNotFound)
	}
	in, err := s.validateDepartment(in, key)
	if err != nil {
		return models.Department{}, err
	}

	next := s.state.Clone()
	old := next.Departments[i].Name
	next.Departments[i].Name, next.Departments[i].Description = in.Name, in.Description
	if old != in.Name {
		for j := range next.Employees {
			if sameFold(next.Employees[j].Dept, old) {
				next.Employees[j].Dept = in.Name
			}
		}
	}

	if err := s.commit(ctx, next, Change{Collection: CollectionDepartments, Op: OpUpdate, Key: key}); err != nil {
		return models.Department{}, err
	}
	return next.Departments[i], nil
}

// DeleteDepartment removes a department. Employees keep the name as a
// plain value.
func (s *Store) DeleteDepartment(ctx context.Context, key string) error {
	i := s.departmentIndex(key)
	if i < 0 {
		return fmt.Errorf("department %s: %w", key, common.ErrNotFound)
	}

	next := s.state.Clone()
	next.Departments = slices.Delete(next.Departments, i, i+1)
	return s.commit(ctx, next, Change{Collection: CollectionDepartments, Op: OpDelete, Key: key})
}
