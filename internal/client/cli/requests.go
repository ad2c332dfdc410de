package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/composer"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/router"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/common"
)

const composerHelp = "Commands: type <name>, add, set <n> <item>, qty <n> <count>, rm <n>, submit, cancel"

// Requests handles "req", "req new" and "req del <n>" for the current
// principal's own requests.
func (a *App) Requests(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.open(router.PageRequests)
	}
	if err := a.enter(router.PageRequests); err != nil {
		return err
	}
	p, ok := a.auth.Principal()
	if !ok {
		return errAccessDenied
	}

	switch args[0] {
	case "new":
		return a.compose(ctx, p.Email)

	case "del":
		key, err := a.pick(listRequests, args)
		if err != nil {
			return err
		}
		yes, err := Confirm(a.reader, "Delete this request?", a.out)
		if err != nil || !yes {
			return err
		}
		if err := a.store.DeleteRequest(ctx, key, p.Email); err != nil {
			return err
		}
		printlnFn("Request deleted.")

	default:
		printlnFn("Usage: req [new | del <n>]")
	}
	return nil
}

// compose runs the request form until it is submitted or cancelled.
// Validation errors keep the form open so the rows can be fixed.
func (a *App) compose(ctx context.Context, owner string) error {
	c := composer.New()
	printlnFn("New request. " + composerHelp)

	for {
		printComposer(a, c)
		line, err := getSimpleText(a.reader, "request", a.out)
		if err != nil {
			return err
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "type":
			if len(fields) < 2 {
				printlnFn("Types: " + strings.Join(composer.Types, ", "))
				continue
			}
			c.SetType(strings.Join(fields[1:], " "))

		case "add":
			c.AddRow()

		case "set", "qty":
			id, err := rowID(c, fields)
			if err != nil {
				printlnFn(common.Message(err))
				continue
			}
			value := ""
			if len(fields) > 2 {
				value = strings.Join(fields[2:], " ")
			}
			if fields[0] == "set" {
				err = c.SetName(id, value)
			} else {
				err = c.SetQty(id, value)
			}
			if err != nil {
				printlnFn(common.Message(err))
			}

		case "rm":
			id, err := rowID(c, fields)
			if err != nil {
				printlnFn(common.Message(err))
				continue
			}
			if err := c.RemoveRow(id); err != nil {
				printlnFn(common.Message(err))
			}

		case "submit":
			req, err := c.Submit(ctx, a.store, owner)
			if err != nil {
				printlnFn(common.Message(err))
				continue
			}
			printlnFn(fmt.Sprintf("%s request submitted with %d item(s).", req.Type, len(req.Items)))
			return nil

		case "cancel":
			printlnFn("Request discarded.")
			return nil

		default:
			printlnFn(composerHelp)
		}
	}
}

// rowID maps the 1-based row number in fields[1] to the row's handle.
func rowID(c *composer.Composer, fields []string) (int, error) {
	rows := c.Rows()
	if len(fields) < 2 {
		return 0, common.NewValidationError("row", "Which row? Give its number.")
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 1 || n > len(rows) {
		return 0, common.NewValidationError("row", fmt.Sprintf("No row %s.", fields[1]))
	}
	return rows[n-1].ID, nil
}

func printComposer(a *App, c *composer.Composer) {
	tw := newTable(a.out)
	fmt.Fprintf(tw, "Type:\t%s\n", c.Type())
	for i, r := range c.Rows() {
		name := r.Name
		if name == "" {
			name = "(empty)"
		}
		fmt.Fprintf(tw, "%d.\t%s\tx %s\n", i+1, name, r.Qty)
	}
	tw.Flush()
}
