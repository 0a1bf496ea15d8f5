// Package slot provides SQLite-backed durable storage for the event
// collection.
//
// The collection persists as a single named slot: one row holding the
// UTF-8 JSON-array serialization of all event records. Every save replaces
// the entire slot content in one transaction; there are no partial writes,
// no schema version field in the payload, and no migration support for the
// payload shape.
//
// Corruption is non-fatal by contract: a slot whose content does not parse
// as the expected array shape is cleared and loading reports an empty
// collection, so the user silently starts from zero state instead of
// crashing.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
package slot
