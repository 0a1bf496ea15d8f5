package store

import (
	"log/slog"
	"testing"

	"github.com/utsavhq/utsav/internal/catalog"
	"github.com/utsavhq/utsav/internal/event"
)

// fakeAdapter records saves instead of writing anywhere durable.
type fakeAdapter struct {
	loaded   []event.Event
	loadErr  error
	saves    [][]event.Event
	failSave bool
}

func (f *fakeAdapter) LoadEvents() ([]event.Event, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if f.loaded == nil {
		return []event.Event{}, nil
	}
	return f.loaded, nil
}

func (f *fakeAdapter) SaveEvents(events []event.Event) bool {
	snapshot := make([]event.Event, len(events))
	for i := range events {
		snapshot[i] = events[i].Clone()
	}
	f.saves = append(f.saves, snapshot)
	return !f.failSave
}

func (f *fakeAdapter) lastSave() []event.Event {
	if len(f.saves) == 0 {
		return nil
	}
	return f.saves[len(f.saves)-1]
}

// testCatalog is a minimal catalog with known costs.
func testCatalog() catalog.Catalog {
	return catalog.New([]catalog.Vendor{
		{ID: "v1", Name: "Caterer", Type: "caterer", Cost: 20000},
		{ID: "v21", Name: "Venue", Type: "venue", Cost: 40000},
	})
}

// createTestStore builds a store over the fake adapter with fixed ids.
func createTestStore(t *testing.T, adapter *fakeAdapter, opts Options) *Store {
	t.Helper()
	if opts.IDs == nil {
		opts.IDs = event.NewFixedGenerator("e1", "e2", "e3", "e4", "e5")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	s, err := New(adapter, testCatalog(), opts)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s
}
