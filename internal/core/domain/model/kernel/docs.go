// Package kernel provides core domain primitives used throughout the
// leasing domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - GeoPoint: a validated geographic coordinate with great-circle distance
//   - Pincode: a validated postal code scoping devices and pricing rules
//   - DateRange: an inclusive date interval with containment and overlap checks
//
// These primitives enforce domain invariants at construction time and are
// immutable, making them safe for concurrent use.
package kernel
