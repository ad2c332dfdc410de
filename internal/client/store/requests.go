package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/models"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/common"
	"github.com/google/uuid"
)

// NormalizeItems trims item names, drops blank ones and raises quantities
// below one to one. The result keeps the input order.
func NormalizeItems(items []models.RequestItem) []models.RequestItem {
	out := make([]models.RequestItem, 0, len(items))
	for _, it := range items {
		name := trim(it.Name)
		if name == "" {
			continue
		}
		qty := it.Qty
		if qty < 1 {
			qty = 1
		}
		out = append(out, models.RequestItem{Name: name, Qty: qty})
	}
	return out
}

// CreateRequest files a Pending request owned by the account with email
// owner, dated now.
func (s *Store) CreateRequest(ctx context.Context, owner, reqType string, items []models.RequestItem) (models.Request, error) {
	owner = trim(owner)
	if owner == "" {
		return models.Request{}, common.NewValidationError("owner", "You must be logged in to submit a request.")
	}
	acc, ok := s.AccountByEmail(owner)
	if !ok {
		return models.Request{}, common.NewValidationError("owner", fmt.Sprintf("No account found for %q.", owner))
	}
	reqType = trim(reqType)
	if reqType == "" {
		return models.Request{}, common.NewValidationError("type", "Request type is required.")
	}
	items = NormalizeItems(items)
	if len(items) == 0 {
		return models.Request{}, common.NewValidationError("items", "Please add at least one item before submitting.")
	}

	r := models.Request{
		Key:           uuid.NewString(),
		EmployeeEmail: acc.Email,
		Type:          reqType,
		Items:         items,
		Status:        models.StatusPending,
		Date:          s.now().UTC(),
	}

	next := s.state.Clone()
	next.Requests = append(next.Requests, r)
	if err := s.commit(ctx, next, Change{Collection: CollectionRequests, Op: OpCreate, Key: r.Key}); err != nil {
		return models.Request{}, err
	}
	return r.Clone(), nil
}

func (s *Store) Request(key string) (models.Request, bool) {
	i := s.requestIndex(key)
	if i < 0 {
		return models.Request{}, false
	}
	return s.state.Requests[i].Clone(), true
}

func (s *Store) requestIndex(key string) int {
	return slices.IndexFunc(s.state.Requests, func(r models.Request) bool { return r.Key == key })
}

// DeleteRequest removes a request owned by owner. Confirmation is the
// caller's job.
func (s *Store) DeleteRequest(ctx context.Context, key, owner string) error {
	i := s.requestIndex(key)
	if i < 0 {
		return fmt.Errorf("request %s: %w", key, common.ErrNotFound)
	}
	if s.state.Requests[i].EmployeeEmail != owner {
		return &common.PolicyError{Message: "You can only delete your own requests."}
	}

	next := s.state.Clone()
	next.Requests = slices.Delete(next.Requests, i, i+1)
	return s.commit(ctx, next, Change{Collection: CollectionRequests, Op: OpDelete, Key: key})
}

// RequestsByOwner returns a copy of owner's requests in insertion order.
// It is not a live view; query again after a mutation.
func (s *Store) RequestsByOwner(owner string) []models.Request {
	var out []models.Request
	for _, r := range s.state.Requests {
		if r.EmployeeEmail == owner {
			out = append(out, r.Clone())
		}
	}
	return out
}

// RecentRequests is RequestsByOwner sorted newest first; ties keep
// insertion order.
func (s *Store) RecentRequests(owner string) []models.Request {
	out := s.RequestsByOwner(owner)
	slices.SortStableFunc(out, func(a, b models.Request) int {
		return b.Date.Compare(a.Date)
	})
	return out
}
