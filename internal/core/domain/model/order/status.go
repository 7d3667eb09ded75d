package order

import (
	"fmt"

	"effdel/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> Accepted ──┬──> Delivered
//	          │               │
//	          └──> Cancelled <┘
//
// Delivered and Cancelled are terminal: no transition leaves them.
// Rider pickup is the one shortcut outside this graph — it collapses
// Pending directly to Delivered (see Order.Pickup).
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status await acceptance and rider pickup.
	Pending

	// Accepted indicates the order has been accepted for fulfilment.
	Accepted

	// Delivered indicates the order reached the customer.
	// This is a terminal state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was cancelled before delivery.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Accepted:  "Accepted",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Accepted:  "Accepted",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getTransitions returns the allowed transition targets per source status.
// Terminal statuses map to an empty set.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Accepted, Cancelled},
		Accepted:  {Delivered, Cancelled},
		Delivered: {},
		Cancelled: {},
	}
}

// AllStatuses returns every valid status value in declaration order.
// Used by reporting to guarantee total coverage of the status domain,
// including statuses with zero observed orders.
func AllStatuses() []Status {
	return []Status{Pending, Accepted, Delivered, Cancelled}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Accepted, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
//
// Returns nil if the status is valid, or an error with details otherwise.
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones, for which
// it returns "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
// Delivered and Cancelled are terminal.
func (s Status) IsTerminal() bool {
	targets, ok := getTransitions()[s]
	return ok && len(targets) == 0
}

// CanTransitionTo checks whether the transition from the current status to
// target is allowed by the state graph, without performing it.
//
// Returns nil when the transition is allowed. Returns an InvalidStateError
// naming the current status otherwise, including attempts to leave a terminal
// status or to transition from/into an invalid status value.
func (s Status) CanTransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return nil
		}
	}

	return errs.NewInvalidStateErrorWithCause(
		"order status",
		s.String(),
		fmt.Errorf("transition to %s is not allowed", target.String()),
	)
}

// TransitionTo performs a transition along the state graph.
//
// Valid transitions:
//   - Pending -> Accepted, Pending -> Cancelled
//   - Accepted -> Delivered, Accepted -> Cancelled
//
// Returns (target, nil) on a valid transition, or (0, error) when the
// transition is not allowed from the current status.
//
// Example:
//
//	newStatus, err := currentStatus.TransitionTo(order.Accepted)
//	if err != nil {
//	    // Handle invalid transition
//	}
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.CanTransitionTo(target); err != nil {
		return 0, err
	}

	return target, nil
}
