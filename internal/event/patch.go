package event

// Patch is a partial event record for merge-updates. Nil fields are "not
// supplied" and leave the existing value untouched; the merge is a shallow
// field-by-field overwrite, mirroring the update contract of the store.
//
// ID names the record to update. It is used for matching only - applying a
// patch never reassigns the identity of the matched record.
type Patch struct {
	ID              string
	Title           *string
	EventType       *string
	Date            *string
	Location        *string
	Description     *string
	Budget          *int64
	ImageURL        *string
	Vendors         *[]string
	DonateFoodToNGO *bool
}

// ApplyTo merges the patch over an existing record and returns the result.
// The existing record's ID is always preserved.
func (p Patch) ApplyTo(e Event) Event {
	e = e.Clone()
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.EventType != nil {
		e.EventType = *p.EventType
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Budget != nil {
		e.Budget = *p.Budget
	}
	if p.ImageURL != nil {
		e.ImageURL = *p.ImageURL
	}
	if p.Vendors != nil {
		vendors := make([]string, len(*p.Vendors))
		copy(vendors, *p.Vendors)
		e.Vendors = vendors
	}
	if p.DonateFoodToNGO != nil {
		e.DonateFoodToNGO = *p.DonateFoodToNGO
	}
	return e.Normalize()
}

// String returns a pointer to s, for building patches inline.
func String(s string) *string { return &s }

// Int64 returns a pointer to n, for building patches inline.
func Int64(n int64) *int64 { return &n }

// Bool returns a pointer to b, for building patches inline.
func Bool(b bool) *bool { return &b }

// Strings returns a pointer to a copy of ss, for building patches inline.
func Strings(ss ...string) *[]string {
	out := make([]string, len(ss))
	copy(out, ss)
	return &out
}
