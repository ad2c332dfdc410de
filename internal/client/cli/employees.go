package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/models"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/router"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/common"
)

// Employees handles "emp", "emp add", "emp edit <n>" and "emp del <n>".
func (a *App) Employees(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.open(router.PageEmployees)
	}
	if err := a.enter(router.PageEmployees); err != nil {
		return err
	}

	switch args[0] {
	case "add":
		in, err := a.employeeForm(models.Employee{})
		if err != nil {
			return err
		}
		e, err := a.store.CreateEmployee(ctx, in)
		if err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("Employee %s added.", e.ID))

	case "edit":
		key, err := a.pick(listEmployees, args)
		if err != nil {
			return err
		}
		current, ok := a.store.Employee(key)
		if !ok {
			return common.ErrNotFound
		}
		in, err := a.employeeForm(current)
		if err != nil {
			return err
		}
		e, err := a.store.UpdateEmployee(ctx, key, in)
		if err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("Employee %s saved.", e.ID))

	case "del":
		key, err := a.pick(listEmployees, args)
		if err != nil {
			return err
		}
		e, ok := a.store.Employee(key)
		if !ok {
			return common.ErrNotFound
		}
		yes, err := Confirm(a.reader, fmt.Sprintf("Delete employee %s (%s)?", e.ID, e.Email), a.out)
		if err != nil || !yes {
			return err
		}
		if err := a.store.DeleteEmployee(ctx, key); err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("Employee %s deleted.", e.ID))

	default:
		printlnFn("Usage: emp [add | edit <n> | del <n>]")
	}
	return nil
}

func (a *App) employeeForm(current models.Employee) (models.EmployeeInput, error) {
	depts := a.store.Departments()
	names := make([]string, 0, len(depts))
	for _, d := range depts {
		names = append(names, d.Name)
	}

	var in models.EmployeeInput
	var err error
	if in.ID, err = GetTextWithDefault(a.reader, "Employee ID", current.ID, a.out); err != nil {
		return in, err
	}
	if in.Email, err = GetTextWithDefault(a.reader, "Account email", current.Email, a.out); err != nil {
		return in, err
	}
	if in.Position, err = GetTextWithDefault(a.reader, "Position", current.Position, a.out); err != nil {
		return in, err
	}
	deptPrompt := "Department"
	if len(names) > 0 {
		deptPrompt += " (" + strings.Join(names, ", ") + "; " + ClearMarker + " for none)"
	}
	if in.Dept, err = GetTextWithDefault(a.reader, deptPrompt, current.Dept, a.out); err != nil {
		return in, err
	}
	if in.HireDate, err = GetTextWithDefault(a.reader, "Hire date (YYYY-MM-DD; "+ClearMarker+" for none)", current.HireDate, a.out); err != nil {
		return in, err
	}
	return in, nil
}
