package store

type Collection string

const (
	CollectionAccounts    Collection = "accounts"
	CollectionDepartments Collection = "departments"
	CollectionEmployees   Collection = "employees"
	CollectionRequests    Collection = "requests"
)

type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
	// OpReload replaces everything: Load, Reset or a reseed.
	OpReload Op = "reload"
)

// Change describes one committed mutation. Collection and Key are empty
// for OpReload.
type Change struct {
	Collection Collection
	Op         Op
	Key        string
}

type subscriber struct {
	id int
	fn func(Change)
}

// Subscribe registers fn to run after every committed change, in
// registration order. The returned func removes it.
func (s *Store) Subscribe(fn func(Change)) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify(ch Change) {
	for _, sub := range append([]subscriber(nil), s.subs...) {
		sub.fn(ch)
	}
}
