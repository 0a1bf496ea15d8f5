// Package store implements the in-memory authoritative event collection.
//
// The store is the single owner of event records for the process lifetime.
// All reads and writes funnel through its synchronous API; views never
// mutate the collection directly. A mutex serializes operations so the
// store value can be shared across goroutines, but there is exactly one
// logical writer.
//
// Durability model: every successful mutation is followed by one save of
// the full post-mutation collection to the durable slot. A failed save is
// logged and swallowed - the in-memory state remains authoritative for the
// rest of the process. A crash between the in-memory commit and the save
// loses that delta; this is accepted, there is no write-ahead log.
//
// Lifecycle: the collection loads from the durable adapter exactly once,
// at construction. There is no reload path during the process lifetime.
package store
