package store

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/utsavhq/utsav/internal/catalog"
	"github.com/utsavhq/utsav/internal/event"
)

// Adapter is the durable storage boundary for the event collection.
// *slot.Slot satisfies it; tests substitute fakes to exercise persistence
// failures.
type Adapter interface {
	// LoadEvents reads the saved collection. An absent or corrupt slot
	// yields an empty collection, not an error.
	LoadEvents() ([]event.Event, error)

	// SaveEvents overwrites the slot with the full collection and reports
	// whether the write succeeded.
	SaveEvents([]event.Event) bool
}

// NotFoundPolicy controls how Update and Delete report a missing id.
type NotFoundPolicy int

const (
	// Permissive treats a missing id as an idempotent success: the
	// operation is a no-op and still reports true. This is the historical
	// behavior every existing view relies on.
	Permissive NotFoundPolicy = iota

	// Strict reports false when no record matches, distinguishing
	// "nothing to do" from "done".
	Strict
)

// Options configures a Store. The zero value is usable: Permissive
// not-found handling, UUIDv7 ids, the default logger.
type Options struct {
	NotFound NotFoundPolicy
	IDs      event.IDGenerator
	Logger   *slog.Logger
}

// Store is the single authoritative handle on the event collection.
type Store struct {
	mu       sync.Mutex
	events   []event.Event
	adapter  Adapter
	catalog  catalog.Catalog
	notFound NotFoundPolicy
	ids      event.IDGenerator
	log      *slog.Logger
	subs     []func([]event.Event)
}

// New constructs a Store and loads the collection from the adapter.
// This is the only Uninitialized -> Ready transition; it happens once.
func New(adapter Adapter, cat catalog.Catalog, opts Options) (*Store, error) {
	if opts.IDs == nil {
		opts.IDs = event.UUIDv7Generator{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	events, err := adapter.LoadEvents()
	if err != nil {
		return nil, fmt.Errorf("load event collection: %w", err)
	}

	return &Store{
		events:   events,
		adapter:  adapter,
		catalog:  cat,
		notFound: opts.NotFound,
		ids:      opts.IDs,
		log:      opts.Logger,
	}, nil
}

// Add appends a new event to the collection. A missing id is generated;
// a missing vendor list defaults to empty. The new event is visible to
// reads immediately.
//
// A caller-supplied id that already exists is rejected: two entries with
// one id would break every view keyed on it, so uniqueness wins over the
// append.
func (s *Store) Add(candidate event.Event) bool {
	s.mu.Lock()
	e := candidate.Normalize()
	if e.ID == "" {
		e.ID = s.ids.Generate()
	} else if s.indexOf(e.ID) >= 0 {
		s.mu.Unlock()
		s.log.Warn("add rejected: id already exists", "id", e.ID)
		return false
	}
	s.events = append(s.events, e)
	snapshot := s.persistLocked("add", e.ID)
	s.mu.Unlock()

	s.notify(snapshot)
	return true
}

// Update merges the patch over the record with the matching id. Fields
// absent from the patch retain their previous values; the matched record's
// id is never reassigned.
//
// A missing id is a no-op; whether it reports success depends on the
// configured NotFoundPolicy.
func (s *Store) Update(patch event.Patch) bool {
	s.mu.Lock()
	id := event.NormalizeID(patch.ID)
	i := s.indexOf(id)
	if i < 0 {
		ok := s.notFound == Permissive
		s.mu.Unlock()
		s.log.Debug("update matched nothing", "id", id, "reported", ok)
		return ok
	}
	s.events[i] = patch.ApplyTo(s.events[i])
	snapshot := s.persistLocked("update", id)
	s.mu.Unlock()

	s.notify(snapshot)
	return true
}

// Delete removes the record with the matching id. Deletion is immediate
// and irreversible; there is no soft-delete.
//
// A missing id is a no-op; whether it reports success depends on the
// configured NotFoundPolicy.
func (s *Store) Delete(id string) bool {
	id = event.NormalizeID(id)
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		ok := s.notFound == Permissive
		s.mu.Unlock()
		s.log.Debug("delete matched nothing", "id", id, "reported", ok)
		return ok
	}
	s.events = append(s.events[:i], s.events[i+1:]...)
	snapshot := s.persistLocked("delete", id)
	s.mu.Unlock()

	s.notify(snapshot)
	return true
}

// List returns a snapshot of the collection in insertion order, survivors
// first-to-last after deletions. Callers own the returned slice.
func (s *Store) List() []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Get returns the event with the given id, if present.
func (s *Store) Get(id string) (event.Event, bool) {
	id = event.NormalizeID(id)
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.events[i].Clone(), true
	}
	return event.Event{}, false
}

// Catalog returns the read-only vendor catalog supplied at construction.
func (s *Store) Catalog() catalog.Catalog {
	return s.catalog
}

// Vendors returns the catalog's vendors in catalog order.
func (s *Store) Vendors() []catalog.Vendor {
	return s.catalog.All()
}

// Subscribe registers fn to receive a post-mutation snapshot after every
// successful mutation. The returned cancel func removes the subscription.
// Subscribers are invoked synchronously, outside the store lock, in
// registration order.
func (s *Store) Subscribe(fn func([]event.Event)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
	i := len(s.subs) - 1
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.subs[i] = nil
	}
}

// indexOf returns the position of the event with the given id, or -1.
// Caller must hold mu.
func (s *Store) indexOf(id string) int {
	for i := range s.events {
		if s.events[i].ID == id {
			return i
		}
	}
	return -1
}

// snapshotLocked deep-copies the collection. Caller must hold mu.
func (s *Store) snapshotLocked() []event.Event {
	out := make([]event.Event, len(s.events))
	for i := range s.events {
		out[i] = s.events[i].Clone()
	}
	return out
}

// persistLocked saves the post-mutation collection and returns a snapshot
// for subscriber notification. A failed save is logged and swallowed; the
// in-memory state stays authoritative. Caller must hold mu.
func (s *Store) persistLocked(op, id string) []event.Event {
	if !s.adapter.SaveEvents(s.events) {
		s.log.Warn("persist failed, in-memory state remains authoritative",
			"op", op, "id", id, "events", len(s.events))
	}
	return s.snapshotLocked()
}

// notify delivers the snapshot to subscribers. Each subscriber gets its
// own copy so one view cannot mutate what another sees.
func (s *Store) notify(snapshot []event.Event) {
	s.mu.Lock()
	subs := make([]func([]event.Event), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		if fn == nil {
			continue
		}
		own := make([]event.Event, len(snapshot))
		for i := range snapshot {
			own[i] = snapshot[i].Clone()
		}
		fn(own)
	}
}
