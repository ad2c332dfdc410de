package cli

import (
	"context"
	"fmt"

	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/models"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/router"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/common"
)

// Departments handles "dept", "dept add", "dept edit <n>" and "dept del <n>".
func (a *App) Departments(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.open(router.PageDepartments)
	}
	if err := a.enter(router.PageDepartments); err != nil {
		return err
	}

	switch args[0] {
	case "add":
		in, err := a.departmentForm(models.Department{})
		if err != nil {
			return err
		}
		d, err := a.store.CreateDepartment(ctx, in)
		if err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("Department %q added.", d.Name))

	case "edit":
		key, err := a.pick(listDepartments, args)
		if err != nil {
			return err
		}
		current, ok := a.store.Department(key)
		if !ok {
			return common.ErrNotFound
		}
		in, err := a.departmentForm(current)
		if err != nil {
			return err
		}
		d, err := a.store.UpdateDepartment(ctx, key, in)
		if err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("Department %q saved.", d.Name))

	case "del":
		key, err := a.pick(listDepartments, args)
		if err != nil {
			return err
		}
		d, ok := a.store.Department(key)
		if !ok {
			return common.ErrNotFound
		}
		yes, err := Confirm(a.reader, fmt.Sprintf("Delete department %q?", d.Name), a.out)
		if err != nil || !yes {
			return err
		}
		if err := a.store.DeleteDepartment(ctx, key); err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("Department %q deleted.", d.Name))

	default:
		printlnFn("Usage: dept [add | edit <n> | del <n>]")
	}
	return nil
}

func (a *App) departmentForm(current models.Department) (models.DepartmentInput, error) {
	var in models.DepartmentInput
	var err error
	if in.Name, err = GetTextWithDefault(a.reader, "Name", current.Name, a.out); err != nil {
		return in, err
	}
	if in.Description, err = GetTextWithDefault(a.reader, "Description ("+ClearMarker+" for none)", current.Description, a.out); err != nil {
		return in, err
	}
	return in, nil
}
