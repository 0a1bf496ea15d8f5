package catalog

import "sort"

// Vendor describes a service provider with a fixed cost and category.
// Vendor records are read-only reference data; the core never creates or
// mutates them.
type Vendor struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Type       string   `json:"type" yaml:"type"`
	Cost       int64    `json:"cost" yaml:"cost"`
	Location   string   `json:"location" yaml:"location"`
	EventTypes []string `json:"eventTypes" yaml:"eventTypes"`
	ImageURL   string   `json:"imageUrl" yaml:"imageUrl"`
}

// AppliesTo reports whether the vendor serves the given event type.
// An empty event type matches every vendor.
func (v Vendor) AppliesTo(eventType string) bool {
	if eventType == "" {
		return true
	}
	for _, et := range v.EventTypes {
		if et == eventType {
			return true
		}
	}
	return false
}

// Catalog is an immutable collection of vendors keyed by id.
// The zero value is an empty catalog.
type Catalog struct {
	vendors []Vendor
	byID    map[string]Vendor
}

// New builds a catalog from a vendor list. Order is preserved for listing.
// A duplicate id keeps the first occurrence.
func New(vendors []Vendor) Catalog {
	c := Catalog{
		vendors: make([]Vendor, 0, len(vendors)),
		byID:    make(map[string]Vendor, len(vendors)),
	}
	for _, v := range vendors {
		if _, exists := c.byID[v.ID]; exists {
			continue
		}
		c.vendors = append(c.vendors, v)
		c.byID[v.ID] = v
	}
	return c
}

// Resolve looks up a vendor by id.
func (c Catalog) Resolve(id string) (Vendor, bool) {
	v, ok := c.byID[id]
	return v, ok
}

// All returns the vendors in catalog order.
func (c Catalog) All() []Vendor {
	out := make([]Vendor, len(c.vendors))
	copy(out, c.vendors)
	return out
}

// Len returns the number of vendors.
func (c Catalog) Len() int { return len(c.vendors) }

// Filter returns the vendors matching all non-empty criteria, in catalog
// order. This is the lenient-read counterpart to the vendor picker: an
// unknown type or location simply matches nothing.
func (c Catalog) Filter(vendorType, eventType, location string) []Vendor {
	var out []Vendor
	for _, v := range c.vendors {
		if vendorType != "" && v.Type != vendorType {
			continue
		}
		if location != "" && v.Location != location {
			continue
		}
		if !v.AppliesTo(eventType) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Types returns the distinct vendor categories, sorted.
func (c Catalog) Types() []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range c.vendors {
		if !seen[v.Type] {
			seen[v.Type] = true
			out = append(out, v.Type)
		}
	}
	sort.Strings(out)
	return out
}
