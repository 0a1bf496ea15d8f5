// Package budget evaluates vendor spend against an event's budget.
//
// Every function here is pure and deterministic: given the same event and
// catalog, the same answer comes back, with no side effects. Multiple
// views (dashboard, editor, details page) call these identically.
//
// Dangling vendor ids resolve leniently: an id missing from the catalog
// contributes zero cost. That keeps the store decoupled from the catalog's
// completeness - filtering happens here, at read time, never as a store
// constraint.
package budget

import (
	"github.com/utsavhq/utsav/internal/catalog"
	"github.com/utsavhq/utsav/internal/event"
)

// TotalVendorCost sums the catalog costs of the event's vendors.
// Vendor ids that do not resolve in the catalog contribute zero.
func TotalVendorCost(e event.Event, cat catalog.Catalog) int64 {
	var total int64
	for _, id := range e.Vendors {
		if v, ok := cat.Resolve(id); ok {
			total += v.Cost
		}
	}
	return total
}

// Remaining returns the budget left after vendor spend. Negative when the
// selection exceeds the budget.
func Remaining(e event.Event, cat catalog.Catalog) int64 {
	return e.Budget - TotalVendorCost(e, cat)
}

// IsOver reports whether vendor spend exceeds the budget. A budget of
// zero or below means "no constraint" and is never over, regardless of
// the vendor cost sum.
func IsOver(e event.Event, cat catalog.Catalog) bool {
	if e.Budget <= 0 {
		return false
	}
	return TotalVendorCost(e, cat) > e.Budget
}

// Summary is the per-event budget line the dashboard renders.
type Summary struct {
	EventID   string `json:"eventId"`
	Title     string `json:"title"`
	Budget    int64  `json:"budget"`
	Spent     int64  `json:"spent"`
	Remaining int64  `json:"remaining"`
	Over      bool   `json:"over"`
}

// Summarize evaluates one event against the catalog.
func Summarize(e event.Event, cat catalog.Catalog) Summary {
	spent := TotalVendorCost(e, cat)
	return Summary{
		EventID:   e.ID,
		Title:     e.Title,
		Budget:    e.Budget,
		Spent:     spent,
		Remaining: e.Budget - spent,
		Over:      e.Budget > 0 && spent > e.Budget,
	}
}

// SummarizeAll evaluates every event, preserving collection order.
func SummarizeAll(events []event.Event, cat catalog.Catalog) []Summary {
	out := make([]Summary, len(events))
	for i, e := range events {
		out[i] = Summarize(e, cat)
	}
	return out
}
