// Package stock provides the domain entities for stock replenishment:
// outstanding product requests and the append-only audit log of stock
// additions.
//
// A product request asks for a number of units of a product. When new stock
// arrives referencing the request, the reconciliation engine compares the
// added units against the requested quantity: an exact match marks the
// request Matched, anything else marks it Unmatched. Partial fulfilment is
// never "partially matched". Every stock arrival also appends an immutable
// Addition record, which keeps the multi-step reconciliation observable and
// replayable even when a step fails midway.
package stock
