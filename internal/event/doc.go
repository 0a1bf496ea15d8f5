// Package event provides the foundational types for the event-planning core.
//
// This package contains type definitions and identity helpers only. All other
// internal packages import event; event imports nothing internal. This keeps
// it the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Money fields (budget) use int64, never floats
//   - JSON tags match the durable slot payload field names exactly; any
//     change to them is a breaking, non-migrated format change
//   - All user-supplied strings are NFC normalized before they enter the
//     collection, so identity comparison never depends on the input's
//     Unicode composition
package event
