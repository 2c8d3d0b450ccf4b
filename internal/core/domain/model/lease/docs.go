// Package lease contains the Lease aggregate: real equipment control
// granted to a distributor, created from exactly one accepted Lease order.
// The aggregate owns operator assignments (one Primary, any number of
// Secondary) and its own Active/Completed/Terminated lifecycle.
package lease
