// Package errs provides the standardized error types used across the
// leasing core. Every error the application layer surfaces to a caller
// wraps one of the sentinel kinds defined here, so callers can classify
// failures with errors.Is without inspecting messages.
//
// Kinds:
//   - ErrObjectNotFound: an order, device, lease, or pricing rule is absent
//   - ErrValueIsRequired / ErrValueIsInvalid: request validation failures
//   - ErrInvalidTransition: the order state machine rejected a move
//   - ErrForbidden: the caller is not the resolved handler or requester
//   - ErrPreconditionFailed: a business precondition does not hold
//   - ErrConflict: an optimistic-concurrency check detected a concurrent
//     mutation; callers may retry the whole operation
//
// Each kind follows the same pattern: a sentinel error variable, a struct
// type carrying details and an optional Cause, constructors with and
// without cause, Error() for formatting, and Unwrap() returning the
// sentinel.
package errs
