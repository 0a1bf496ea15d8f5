// Package catalog provides the read-only vendor catalog.
//
// The catalog is reference data supplied at process start and never mutated
// by the core. A built-in catalog is embedded in the binary; an alternate
// catalog can be loaded from a YAML file, validated against a CUE schema
// before use so a malformed file fails loudly at startup instead of
// producing silent zero-cost vendors later.
//
// The event store tolerates event records referencing vendor ids missing
// from the catalog; resolution is lenient by design and dangling ids are
// filtered by consumers at read time.
package catalog
