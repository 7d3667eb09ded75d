package commands

import (
	"errors"

	"effdel/internal/core/domain/model/order"
	"effdel/internal/pkg/guard"
)

var (
	ErrPickupOrderCommandIsNotConstructed = errors.New(
		"PickupOrderCommand must be created via NewPickupOrderCommand constructor",
	)
)

// PickupOrderCommand represents a rider collecting an order.
// Pickup is the one lifecycle shortcut: a Pending order moves directly to
// Delivered and the rider is attached in the same step.
//
// Example:
//
//	cmd, err := NewPickupOrderCommand(orderID, "rider-7")
//	if err != nil {
//	    return fmt.Errorf("invalid pickup: %w", err)
//	}
//
//	handler := NewPickupOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("pickup failed: %w", err)
//	}
type PickupOrderCommand struct { //nolint:recvcheck //using for validation
	orderID order.ID
	riderID string

	guard guard.ConstructorGuard
}

// NewPickupOrderCommand creates a command to record an order pickup.
// Validates that the order ID is constructed and the rider ID is present.
func NewPickupOrderCommand(orderID order.ID, riderID string) (PickupOrderCommand, error) {
	cmd := PickupOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRiderID(riderID),
	); err != nil {
		return PickupOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPickupOrderCommandIsNotConstructed if validation fails.
func (c PickupOrderCommand) Validate() error {
	return c.guard.Validate(ErrPickupOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being collected.
func (c PickupOrderCommand) OrderID() order.ID {
	return c.orderID
}

// RiderID returns the collecting rider's identifier.
func (c PickupOrderCommand) RiderID() string {
	return c.riderID
}

func (c *PickupOrderCommand) setOrderID(orderID order.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PickupOrderCommand) setRiderID(riderID string) error {
	if riderID == "" {
		return ErrRiderIDIsRequired
	}

	c.riderID = riderID
	return nil
}
