// Package order contains the Order aggregate and its pure state machine.
// An order is a request for equipment use: a Lease order from a
// distributor to the platform, or a Rent order from a farmer to a
// distributor. The Status type encodes the exact transition table orders
// must follow; Handler is a tagged variant identifying the party
// authorized to act on the order.
package order
