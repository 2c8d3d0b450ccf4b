// Package pricing contains the rate rule aggregate and its value objects.
//
// A Rule quotes rates for a (device type, pincode) scope over a validity
// window. The open-ended rule for a scope is its default; bounded rules
// override the default for the dates they cover. ThresholdConfig holds the
// rental-versus-lease cutoffs consulted when classifying new requests.
package pricing
