// Package composer holds the working state of the "new request" form: a
// request type and an ordered list of item rows that is never empty.
package composer

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/models"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/common"
)

const (
	DefaultType = "Equipment"
	defaultQty  = "1"
)

// Types are the request categories the form offers.
var Types = []string{"Equipment", "Leave", "Resources"}

var ErrUnknownRow = errors.New("unknown row")

// Row is one editable line. ID is a stable handle, not a position; Qty is
// kept as typed and only parsed on submit.
type Row struct {
	ID   int
	Name string
	Qty  string
}

// RequestCreator is the store operation Submit hands the request to.
type RequestCreator interface {
	CreateRequest(ctx context.Context, owner, reqType string, items []models.RequestItem) (models.Request, error)
}

type Composer struct {
	reqType string
	rows    []Row
	nextID  int
}

// New returns a composer with one blank row and the default type.
func New() *Composer {
	c := &Composer{}
	c.Reset()
	return c
}

// Reset discards all rows and starts over with one blank row.
func (c *Composer) Reset() {
	c.reqType = DefaultType
	c.rows = nil
	c.AddRow()
}

// Rows returns a copy of the rows in display order.
func (c *Composer) Rows() []Row {
	return slices.Clone(c.rows)
}

// AddRow appends a blank row and returns it.
func (c *Composer) AddRow() Row {
	c.nextID++
	r := Row{ID: c.nextID, Qty: defaultQty}
	c.rows = append(c.rows, r)
	return r
}

// RemoveRow deletes the row. The last remaining row is cleared instead.
func (c *Composer) RemoveRow(id int) error {
	i, err := c.index(id)
	if err != nil {
		return err
	}
	if len(c.rows) == 1 {
		c.rows[0].Name, c.rows[0].Qty = "", defaultQty
		return nil
	}
	c.rows = slices.Delete(c.rows, i, i+1)
	return nil
}

func (c *Composer) SetName(id int, name string) error {
	i, err := c.index(id)
	if err != nil {
		return err
	}
	c.rows[i].Name = name
	return nil
}

func (c *Composer) SetQty(id int, qty string) error {
	i, err := c.index(id)
	if err != nil {
		return err
	}
	c.rows[i].Qty = qty
	return nil
}

func (c *Composer) Type() string { return c.reqType }

func (c *Composer) SetType(t string) { c.reqType = t }

// Items converts the named rows to request items, in row order.
func (c *Composer) Items() []models.RequestItem {
	items := make([]models.RequestItem, 0, len(c.rows))
	for _, r := range c.rows {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			continue
		}
		items = append(items, models.RequestItem{Name: name, Qty: ParseQty(r.Qty)})
	}
	return items
}

// Submit files the request for owner. On a validation failure the rows are
// kept for correction; on success the composer is reset.
func (c *Composer) Submit(ctx context.Context, creator RequestCreator, owner string) (models.Request, error) {
	items := c.Items()
	if len(items) == 0 {
		return models.Request{}, common.NewValidationError("items", "Please add at least one item before submitting.")
	}

	req, err := creator.CreateRequest(ctx, owner, c.reqType, items)
	if err != nil {
		return models.Request{}, err
	}
	c.Reset()
	return req, nil
}

func (c *Composer) index(id int) (int, error) {
	i := slices.IndexFunc(c.rows, func(r Row) bool { return r.ID == id })
	if i < 0 {
		return -1, fmt.Errorf("row %d: %w", id, ErrUnknownRow)
	}
	return i, nil
}
