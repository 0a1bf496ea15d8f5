package slot

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/utsavhq/utsav/internal/event"
)

// createTestSlot creates a slot backed by a temp database.
func createTestSlot(t *testing.T) *Slot {
	t.Helper()
	path := filepath.Join(t.TempDir(), "utsav.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// rawContent reads the stored payload directly, bypassing LoadEvents.
func rawContent(t *testing.T, s *Slot) (string, bool) {
	t.Helper()
	var content string
	err := s.db.QueryRow(`SELECT content FROM slots WHERE name = 'events'`).Scan(&content)
	if err != nil {
		return "", false
	}
	return content, true
}

// writeRaw stores arbitrary content into the events slot.
func writeRaw(t *testing.T, s *Slot, content string) {
	t.Helper()
	_, err := s.db.Exec(`
		INSERT INTO slots (name, content) VALUES ('events', ?)
		ON CONFLICT(name) DO UPDATE SET content = excluded.content
	`, content)
	if err != nil {
		t.Fatalf("writeRaw failed: %v", err)
	}
}

func testEvents() []event.Event {
	return []event.Event{
		{
			ID:        "e1",
			Title:     "Sharma Wedding",
			EventType: "wedding",
			Date:      "2025-11-20",
			Budget:    200000,
			Vendors:   []string{"v21", "v1"},
		},
		{
			ID:              "e2",
			Title:           "Office Conference",
			EventType:       "conference",
			Budget:          50000,
			Vendors:         []string{},
			DonateFoodToNGO: true,
		},
	}
}

func TestLoadEvents_EmptyWhenAbsent(t *testing.T) {
	s := createTestSlot(t)

	events, err := s.LoadEvents()
	if err != nil {
		t.Fatalf("LoadEvents() failed: %v", err)
	}
	if events == nil {
		t.Fatal("LoadEvents() returned nil, expected empty slice")
	}
	if len(events) != 0 {
		t.Errorf("expected empty collection, got %d events", len(events))
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := createTestSlot(t)
	want := testEvents()

	if !s.SaveEvents(want) {
		t.Fatal("SaveEvents() reported failure")
	}

	got, err := s.LoadEvents()
	if err != nil {
		t.Fatalf("LoadEvents() failed: %v", err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("round trip mismatch:\nwant %+v\ngot  %+v", want, got)
	}
}

func TestSaveLoadSave_ByteStable(t *testing.T) {
	s := createTestSlot(t)

	if !s.SaveEvents(testEvents()) {
		t.Fatal("first SaveEvents() reported failure")
	}
	first, ok := rawContent(t, s)
	if !ok {
		t.Fatal("no slot content after save")
	}

	loaded, err := s.LoadEvents()
	if err != nil {
		t.Fatalf("LoadEvents() failed: %v", err)
	}
	if !s.SaveEvents(loaded) {
		t.Fatal("second SaveEvents() reported failure")
	}
	second, ok := rawContent(t, s)
	if !ok {
		t.Fatal("no slot content after re-save")
	}

	if first != second {
		t.Errorf("serialize/deserialize/serialize changed bytes:\nfirst  %s\nsecond %s", first, second)
	}
}

func TestSaveEvents_OverwritesWholeSlot(t *testing.T) {
	s := createTestSlot(t)

	if !s.SaveEvents(testEvents()) {
		t.Fatal("first SaveEvents() reported failure")
	}
	if !s.SaveEvents([]event.Event{}) {
		t.Fatal("second SaveEvents() reported failure")
	}

	events, err := s.LoadEvents()
	if err != nil {
		t.Fatalf("LoadEvents() failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected empty collection after overwrite, got %d events", len(events))
	}
}

func TestLoadEvents_CorruptSlotCleared(t *testing.T) {
	corruptPayloads := []string{
		"definitely not json",
		`{"id":"e1"}`, // valid JSON, wrong shape
		`"a string"`,
		"null",
		"42",
	}

	for _, payload := range corruptPayloads {
		s := createTestSlot(t)
		writeRaw(t, s, payload)

		events, err := s.LoadEvents()
		if err != nil {
			t.Errorf("payload %q: LoadEvents() returned error: %v", payload, err)
			continue
		}
		if len(events) != 0 {
			t.Errorf("payload %q: expected empty collection, got %d events", payload, len(events))
		}
	}
}

func TestLoadEvents_CorruptSlotIsDeleted(t *testing.T) {
	s := createTestSlot(t)
	writeRaw(t, s, "not an array")

	if _, err := s.LoadEvents(); err != nil {
		t.Fatalf("LoadEvents() failed: %v", err)
	}

	if _, ok := rawContent(t, s); ok {
		t.Error("corrupt slot content was not cleared")
	}
}

func TestLoadEvents_NullIsCorruptButNotDeletedPayload(t *testing.T) {
	// "null" unmarshals cleanly into a nil slice; it is normalized to an
	// empty collection rather than treated as corruption.
	s := createTestSlot(t)
	writeRaw(t, s, "null")

	events, err := s.LoadEvents()
	if err != nil {
		t.Fatalf("LoadEvents() failed: %v", err)
	}
	if events == nil || len(events) != 0 {
		t.Errorf("expected empty non-nil collection, got %v", events)
	}
}

func TestSaveEvents_QuotaExceeded(t *testing.T) {
	s := createTestSlot(t)
	if !s.SaveEvents(testEvents()) {
		t.Fatal("initial SaveEvents() reported failure")
	}

	// An inline-encoded image larger than the quota.
	huge := []event.Event{{
		ID:       "e1",
		Title:    "Oversized",
		ImageURL: strings.Repeat("x", maxPayloadBytes+1),
		Vendors:  []string{},
	}}

	if s.SaveEvents(huge) {
		t.Error("SaveEvents() succeeded for payload over quota")
	}

	// Previous content stays intact.
	events, err := s.LoadEvents()
	if err != nil {
		t.Fatalf("LoadEvents() failed: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("expected previous 2 events to survive failed save, got %d", len(events))
	}
}

func TestSaveEvents_AfterClose(t *testing.T) {
	s := createTestSlot(t)
	s.Close()

	if s.SaveEvents(testEvents()) {
		t.Error("SaveEvents() succeeded on closed database")
	}
}
