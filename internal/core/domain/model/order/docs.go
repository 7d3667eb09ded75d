// Package order provides domain entities and business logic for order
// lifecycle management in the EffDel backend. It implements the Order
// aggregate root with status transitions, rider assignment, and refund
// tracking.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - ID: A creation-time-sortable order identifier (timestamp + random suffix)
//   - Refund: An immutable refund record owned by exactly one order
//   - RiderInfo: A weak reference to a rider attached to an order
//
// Key business rules:
//   - Order status follows a defined workflow: Pending -> {Accepted, Cancelled},
//     Accepted -> {Delivered, Cancelled}; Delivered and Cancelled are terminal
//   - Pickup collapses Pending directly to Delivered and attaches the rider
//   - Rider assignment is unconditional and does not gate on status
//   - Recording refunds replaces the whole refund list, it never appends
//   - Every mutating operation refreshes the modified timestamp (UTC)
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
