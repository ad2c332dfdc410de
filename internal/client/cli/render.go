package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/models"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/router"
)

const requestDateLayout = "Jan 2, 2006"

// render prints page p. Tables number their rows from 1 and remember the
// keys behind those numbers in a.listed.
func (a *App) render(p router.Page) {
	fmt.Fprintf(a.out, "\n== %s ==\n", pageTitle(p))

	switch p {
	case router.PageHome:
		a.renderHome()
	case router.PageRegister:
		fmt.Fprintln(a.out, "Type 'register' to create an account.")
	case router.PageVerify:
		a.renderVerify()
	case router.PageLogin:
		fmt.Fprintln(a.out, "Type 'login' to sign in.")
	case router.PageProfile:
		a.renderProfile()
	case router.PageEmployees:
		a.renderEmployees()
	case router.PageDepartments:
		a.renderDepartments()
	case router.PageAccounts:
		a.renderAccounts()
	case router.PageRequests:
		a.renderRequests()
	}
}

func pageTitle(p router.Page) string {
	switch p {
	case router.PageHome:
		return "Home"
	case router.PageRegister:
		return "Register"
	case router.PageVerify:
		return "Verify Email"
	case router.PageLogin:
		return "Login"
	case router.PageProfile:
		return "My Profile"
	case router.PageEmployees:
		return "Employees"
	case router.PageDepartments:
		return "Departments"
	case router.PageAccounts:
		return "Accounts"
	case router.PageRequests:
		return "My Requests"
	default:
		return p.String()
	}
}

func (a *App) renderHome() {
	p, ok := a.auth.Principal()
	if !ok {
		fmt.Fprintln(a.out, "Welcome! Type 'start' to get started or 'register' to create an account.")
		return
	}
	fmt.Fprintf(a.out, "Hello, %s. You are signed in as %s.\n", p.FullName(), p.Role.Label())
}

func (a *App) renderVerify() {
	email, err := a.auth.PendingVerification(context.Background())
	if err != nil {
		a.log.Error(context.Background(), "read pending verification", "error", err)
	}
	if email == "" {
		fmt.Fprintln(a.out, "Nothing to verify.")
		return
	}
	fmt.Fprintf(a.out, "A verification link has been sent to %s.\n", email)
	fmt.Fprintln(a.out, "Type 'verify' to simulate clicking it.")
}

func (a *App) renderProfile() {
	p, ok := a.auth.Principal()
	if !ok {
		return
	}
	tw := newTable(a.out)
	fmt.Fprintf(tw, "Name:\t%s\n", p.FullName())
	fmt.Fprintf(tw, "Email:\t%s\n", p.Email)
	fmt.Fprintf(tw, "Role:\t%s\n", p.Role.Label())
	tw.Flush()
}

func (a *App) renderEmployees() {
	views := a.store.EmployeeViews()
	keys := make([]string, 0, len(views))
	if len(views) == 0 {
		fmt.Fprintln(a.out, "No employees.")
	} else {
		tw := newTable(a.out)
		fmt.Fprintln(tw, "#\tID\tName\tPosition\tDept\tHire Date")
		for i, v := range views {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", i+1, v.ID, v.DisplayName, v.Position, v.Dept, v.HireDate)
			keys = append(keys, v.Key)
		}
		tw.Flush()
	}
	a.listed[listEmployees] = keys
}

func (a *App) renderDepartments() {
	depts := a.store.Departments()
	keys := make([]string, 0, len(depts))
	if len(depts) == 0 {
		fmt.Fprintln(a.out, "No departments.")
	} else {
		tw := newTable(a.out)
		fmt.Fprintln(tw, "#\tName\tDescription")
		for i, d := range depts {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, d.Name, d.Description)
			keys = append(keys, d.Key)
		}
		tw.Flush()
	}
	a.listed[listDepartments] = keys
}

func (a *App) renderAccounts() {
	accts := a.store.Accounts()
	keys := make([]string, 0, len(accts))
	tw := newTable(a.out)
	fmt.Fprintln(tw, "#\tName\tEmail\tRole\tVerified")
	for i, acc := range accts {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i+1, acc.FullName(), acc.Email, acc.Role.Label(), yesNo(acc.Verified))
		keys = append(keys, acc.Key)
	}
	tw.Flush()
	a.listed[listAccounts] = keys
}

func (a *App) renderRequests() {
	p, ok := a.auth.Principal()
	if !ok {
		return
	}
	reqs := a.store.RecentRequests(p.Email)
	keys := make([]string, 0, len(reqs))
	if len(reqs) == 0 {
		fmt.Fprintln(a.out, "You have no requests yet. Type 'req new' to create one.")
	} else {
		tw := newTable(a.out)
		fmt.Fprintln(tw, "#\tDate\tType\tItems\tStatus")
		for i, r := range reqs {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t[%s]\n", i+1, r.Date.Local().Format(requestDateLayout), r.Type, itemSummary(r.Items), r.Status.Display())
			keys = append(keys, r.Key)
		}
		tw.Flush()
	}
	a.listed[listRequests] = keys
}

func itemSummary(items []models.RequestItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, it.Name+" x"+strconv.Itoa(it.Qty))
	}
	return strings.Join(parts, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}
