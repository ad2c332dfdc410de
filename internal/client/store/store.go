package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/models"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/repositories/kv"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/logging"
)

// DefaultStorageKey is where the state blob lives.
const DefaultStorageKey = "ipt_demo_v1"

// ErrCorruptState is logged, never returned, when the stored blob cannot be
// used and the store reseeds.
var ErrCorruptState = errors.New("stored state is corrupt")

type Store struct {
	repo kv.Repository
	key  string
	log  logging.Logger
	now  func() time.Time

	state  models.State
	subs   []subscriber
	nextID int
}

type Option func(*Store)

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithStorageKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// New builds a Store over repo. The state is empty until Load is called.
func New(repo kv.Repository, opts ...Option) *Store {
	s := &Store{
		repo:  repo,
		key:   DefaultStorageKey,
		log:   logging.Nop(),
		now:   time.Now,
		state: models.State{}.Clone(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the stored blob. An absent or corrupt blob is replaced with
// the seeded defaults; only a failing repository is reported.
func (s *Store) Load(ctx context.Context) error {
	raw, ok, err := s.repo.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	if !ok {
		s.log.Warn(ctx, "no stored state, seeding defaults", "key", s.key)
		return s.reseed(ctx)
	}

	st, err := decodeState(raw)
	if err != nil {
		s.log.Warn(ctx, "stored state unusable, seeding defaults", "key", s.key, "error", err)
		return s.reseed(ctx)
	}

	if assignMissingKeys(&st) {
		s.log.Info(ctx, "assigned keys to legacy records", "key", s.key)
		if err := s.write(ctx, st); err != nil {
			return err
		}
	}

	s.state = st
	s.notify(Change{Op: OpReload})
	return nil
}

// Save writes the full in-memory state in a single Set call.
func (s *Store) Save(ctx context.Context) error {
	return s.write(ctx, s.state)
}

// Reset deletes the state blob together with any extra keys in one call
// and reseeds the defaults.
func (s *Store) Reset(ctx context.Context, extraKeys ...string) error {
	keys := append([]string{s.key}, extraKeys...)
	if err := s.repo.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("reset state: %w", err)
	}
	s.log.Info(ctx, "state reset", "keys", keys)
	return s.reseed(ctx)
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() models.State {
	return s.state.Clone()
}

func (s *Store) reseed(ctx context.Context) error {
	st := DefaultState()
	if err := s.write(ctx, st); err != nil {
		return err
	}
	s.state = st
	s.notify(Change{Op: OpReload})
	return nil
}

func (s *Store) write(ctx context.Context, st models.State) error {
	b, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := s.repo.Set(ctx, s.key, string(b)); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// commit persists next and, once that succeeded, installs it and tells
// subscribers.
func (s *Store) commit(ctx context.Context, next models.State, ch Change) error {
	if err := s.write(ctx, next); err != nil {
		return err
	}
	s.state = next
	s.log.Debug(ctx, "state changed", "collection", ch.Collection, "op", ch.Op, "key", ch.Key)
	s.notify(ch)
	return nil
}

// decodeState parses raw and requires all four collections to be present
// as arrays.
func decodeState(raw string) (models.State, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return models.State{}, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	for _, name := range models.Collections {
		v, ok := fields[name]
		if !ok || len(v) == 0 || v[0] != '[' {
			return models.State{}, fmt.Errorf("%w: missing collection %q", ErrCorruptState, name)
		}
	}

	var st models.State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return models.State{}, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	return st.Clone(), nil
}
