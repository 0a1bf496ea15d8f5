package slot

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/utsavhq/utsav/internal/event"
)

// eventsSlot names the slot holding the serialized event collection.
const eventsSlot = "events"

// maxPayloadBytes caps the serialized collection size, mirroring the
// storage quota of the durable slot this format originated in. A payload
// over the cap (typically a large inline-encoded image) fails the save;
// the in-memory collection stays authoritative.
const maxPayloadBytes = 5 << 20

// LoadEvents reads the event collection from the durable slot.
//
// An absent slot is not an error: the collection simply starts empty. A
// slot whose content does not parse as the expected JSON array shape is
// cleared and an empty collection is returned - corruption never surfaces
// to callers. Only a storage-level read failure returns an error.
func (s *Slot) LoadEvents() ([]event.Event, error) {
	var content string
	err := s.db.QueryRow(`SELECT content FROM slots WHERE name = ?`, eventsSlot).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return []event.Event{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read events slot: %w", err)
	}

	var events []event.Event
	if err := json.Unmarshal([]byte(content), &events); err != nil {
		slog.Warn("events slot is corrupt, clearing it", "error", err)
		if _, derr := s.db.Exec(`DELETE FROM slots WHERE name = ?`, eventsSlot); derr != nil {
			slog.Warn("failed to clear corrupt events slot", "error", derr)
		}
		return []event.Event{}, nil
	}
	if events == nil {
		// "null" parses but is not the array shape.
		events = []event.Event{}
	}

	return events, nil
}

// SaveEvents serializes the full collection and overwrites the slot.
// Reports false on any serialization or write failure; the caller logs
// and carries on - durability is best-effort, not transactional.
func (s *Slot) SaveEvents(events []event.Event) bool {
	payload, err := json.Marshal(events)
	if err != nil {
		slog.Debug("serialize events failed", "error", err)
		return false
	}
	if len(payload) > maxPayloadBytes {
		slog.Debug("events payload exceeds storage quota",
			"bytes", len(payload), "quota", maxPayloadBytes)
		return false
	}

	_, err = s.db.Exec(`
		INSERT INTO slots (name, content) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET content = excluded.content
	`, eventsSlot, string(payload))
	if err != nil {
		slog.Debug("write events slot failed", "error", err)
		return false
	}

	return true
}
