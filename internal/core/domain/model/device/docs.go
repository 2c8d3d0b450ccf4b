// Package device contains the Device aggregate: a physical equipment unit
// with a geographic position, an administrator-driven lifecycle status, and
// an at-most-one active lease reference guarded by an optimistic
// concurrency version.
package device
