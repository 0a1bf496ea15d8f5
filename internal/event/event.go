package event

import "golang.org/x/text/unicode/norm"

// Event represents one planned occasion (wedding, birthday, conference).
//
// Only ID carries a store-enforced invariant: it is unique across the
// collection and immutable after creation. Everything else is descriptive
// and may be partial - the store accepts incomplete records and leaves
// required-field enforcement to the caller.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	EventType   string `json:"eventType"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Description string `json:"description"`

	// Budget is the upper bound on vendor spend, in whole currency units.
	// Informational only: the store never rejects an over-budget vendor set.
	Budget int64 `json:"budget"`

	// ImageURL is opaque to the core. It may be a large inline-encoded
	// payload; no size or format validation happens here.
	ImageURL string `json:"imageUrl"`

	// Vendors holds vendor catalog ids in selection order. Dangling ids are
	// tolerated and filtered lazily by consumers (see the budget package).
	Vendors []string `json:"vendors"`

	DonateFoodToNGO bool `json:"donateFoodToNGO"`
}

// NormalizeID returns the NFC form of an id, matching how ids are stored.
func NormalizeID(id string) string {
	return norm.NFC.String(id)
}

// Normalize returns a copy with all string fields NFC normalized and a
// non-nil Vendors slice. Called by the store before any record enters the
// collection.
func (e Event) Normalize() Event {
	e.ID = norm.NFC.String(e.ID)
	e.Title = norm.NFC.String(e.Title)
	e.EventType = norm.NFC.String(e.EventType)
	e.Date = norm.NFC.String(e.Date)
	e.Location = norm.NFC.String(e.Location)
	e.Description = norm.NFC.String(e.Description)
	if e.Vendors == nil {
		e.Vendors = []string{}
	}
	vendors := make([]string, len(e.Vendors))
	for i, v := range e.Vendors {
		vendors[i] = norm.NFC.String(v)
	}
	e.Vendors = vendors
	return e
}

// Clone returns a deep copy. Vendors is the only reference field.
func (e Event) Clone() Event {
	if e.Vendors != nil {
		vendors := make([]string, len(e.Vendors))
		copy(vendors, e.Vendors)
		e.Vendors = vendors
	}
	return e
}

// HasVendor reports whether the vendor id is already attached.
func (e Event) HasVendor(id string) bool {
	for _, v := range e.Vendors {
		if v == id {
			return true
		}
	}
	return false
}
