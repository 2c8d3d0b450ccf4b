// Package services provides domain services that implement business rules
// spanning more than one aggregate.
//
// The package includes:
//   - PricingResolver: time-windowed rate rule resolution and conflict
//     detection over a scope's rule set
//   - AvailabilityFilter: the ordered discovery predicates deciding whether
//     a device is currently orderable
//   - HandlerResolver: routes an order to its responsible handling party
//   - OrderTypePolicy: strategies deriving an order's type at creation
//
// All services are pure: they operate on entities and slices the
// application layer has already loaded, and perform no I/O themselves.
package services
