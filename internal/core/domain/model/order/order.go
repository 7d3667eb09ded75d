package order

import (
	"errors"
	"fmt"
	"time"

	"effdel/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a customer order in the system. It is the aggregate root
// that manages the order lifecycle from creation through acceptance, rider
// pickup, delivery or cancellation, and refund tracking.
//
// Order follows these invariants:
//   - Must have a valid identifier and a user reference
//   - Must have at least one valid line item
//   - Status transitions follow the state graph defined on Status, with the
//     single documented shortcut of Pickup (Pending straight to Delivered)
//   - The modified timestamp is refreshed in UTC on every mutating operation
//   - Orders are never physically deleted
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the creation-time-sortable order identifier
	id ID

	// userID references the ordering user
	userID string

	// items are the order lines
	items []Item

	// status represents the current state in the order lifecycle
	status Status

	// riderID is the attached rider's identifier (nil until assignment or pickup)
	riderID *string

	// riderName is the attached rider's display name, possibly empty
	riderName string

	// refunds is the full refund history; replaced wholesale on update
	refunds []Refund

	// modifiedAt is the UTC timestamp of the last mutation
	modifiedAt time.Time

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with a fresh modified
// timestamp. This is the entry point of the ordering flow.
//
// Parameters:
//   - id: order identifier, normally produced by NewID
//   - userID: reference to the ordering user (required)
//   - items: order lines (at least one, each valid)
//
// Returns the created order, or a validation error if any parameter is
// invalid.
func NewOrder(id ID, userID string, items []Item) (*Order, error) {
	return RestoreOrder(id, userID, items, Pending, nil, "", nil, time.Now().UTC())
}

// RestoreOrder reconstructs an order from persistence. All invariants are
// re-validated so that corrupt stored state is rejected on read.
func RestoreOrder(
	id ID,
	userID string,
	items []Item,
	status Status,
	riderID *string,
	riderName string,
	refunds []Refund,
	modifiedAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        status,
		riderName:     riderName,
		modifiedAt:    modifiedAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItems(items),
		status.Validate(),
		o.setRiderID(riderID),
		o.setRefunds(refunds),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct, and should be called when reconstructing orders
// from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier.
func (o *Order) ID() ID {
	return o.id
}

// UserID returns the ordering user's reference.
func (o *Order) UserID() string {
	return o.userID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// RiderID returns the attached rider's identifier.
// Returns nil if no rider is attached.
func (o *Order) RiderID() *string {
	return o.riderID
}

// RiderName returns the attached rider's display name, possibly empty even
// when a rider is attached (the name is resolved lazily on read).
func (o *Order) RiderName() string {
	return o.riderName
}

// Refunds returns a copy of the order's refund records.
func (o *Order) Refunds() []Refund {
	refunds := make([]Refund, len(o.refunds))
	copy(refunds, o.refunds)
	return refunds
}

// ModifiedAt returns the UTC timestamp of the last mutation.
func (o *Order) ModifiedAt() time.Time {
	return o.modifiedAt
}

// UpdateStatus transitions the order to newStatus along the state graph and
// refreshes the modified timestamp.
//
// The transition graph is enforced strictly: Pending may move to Accepted or
// Cancelled, Accepted may move to Delivered or Cancelled, and the terminal
// statuses admit no transition at all.
//
// Returns an InvalidStateError when the transition is not allowed.
func (o *Order) UpdateStatus(newStatus Status) error {
	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	o.status = next
	o.touch()
	return nil
}

// AssignRider attaches rider information to the order unconditionally.
// No status check is performed: assignment is a bookkeeping operation and the
// lifecycle is governed separately by UpdateStatus and Pickup.
func (o *Order) AssignRider(info RiderInfo) error {
	if err := info.Validate(); err != nil {
		return err
	}

	riderID := info.RiderID()
	o.riderID = &riderID
	o.riderName = info.RiderName()
	o.touch()
	return nil
}

// Pickup records a rider collecting the order.
//
// The order must be in Pending status; any other status yields an
// InvalidStateError and leaves the order unchanged. On success the status
// moves directly to Delivered (there is no intermediate "picked up" state)
// and the rider identifier is attached.
func (o *Order) Pickup(riderID string) error {
	if riderID == "" {
		return errs.NewValueIsRequiredError("rider ID")
	}

	if o.status != Pending {
		return errs.NewInvalidStateErrorWithCause(
			"order",
			o.status.String(),
			fmt.Errorf("pickup requires a %s order", Pending),
		)
	}

	o.status = Delivered
	o.riderID = &riderID
	o.touch()
	return nil
}

// RecordRefunds replaces the order's entire refund list with the supplied
// records. The operation is a wholesale replacement, never an append; callers
// that want to add a refund must supply the full desired list.
func (o *Order) RecordRefunds(refunds []Refund) error {
	if err := o.setRefunds(refunds); err != nil {
		return err
	}

	o.touch()
	return nil
}

// touch refreshes the modified timestamp to the current UTC time.
func (o *Order) touch() {
	o.modifiedAt = time.Now().UTC()
}

// setID validates and sets the order's identifier.
// This is a private method used only during construction.
func (o *Order) setID(id ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setUserID validates and sets the ordering user reference.
// This is a private method used only during construction.
func (o *Order) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("user ID")
	}
	o.userID = userID
	return nil
}

// setItems validates and sets the order lines.
// This is a private method used only during construction.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

// setRiderID validates and sets the optional rider reference.
// This is a private method used only during construction.
func (o *Order) setRiderID(riderID *string) error {
	if riderID != nil && *riderID == "" {
		return errs.NewValueIsRequiredError("rider ID")
	}
	o.riderID = riderID
	return nil
}

// setRefunds validates and replaces the refund list.
func (o *Order) setRefunds(refunds []Refund) error {
	for _, refund := range refunds {
		if err := refund.Validate(); err != nil {
			return err
		}
	}
	o.refunds = make([]Refund, len(refunds))
	copy(o.refunds, refunds)
	return nil
}
