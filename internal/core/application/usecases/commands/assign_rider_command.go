package commands

import (
	"errors"

	"effdel/internal/core/domain/model/order"
	"effdel/internal/pkg/guard"
)

var (
	ErrAssignRiderCommandIsNotConstructed = errors.New(
		"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
	)
	ErrRiderIDIsRequired = errors.New("rider ID is required")
)

// AssignRiderCommand represents a request to attach a rider to an order.
// Assignment is unconditional with respect to the order's lifecycle: it is a
// bookkeeping operation that may happen in any status.
//
// Example:
//
//	cmd, err := NewAssignRiderCommand(orderID, "rider-7")
//	if err != nil {
//	    return fmt.Errorf("invalid assignment: %w", err)
//	}
//
//	handler := NewAssignRiderCommandHandler(uowFactory, riderDirectory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("assignment failed: %w", err)
//	}
type AssignRiderCommand struct { //nolint:recvcheck //using for validation
	orderID order.ID
	riderID string

	guard guard.ConstructorGuard
}

// NewAssignRiderCommand creates a command to attach a rider to an order.
// Validates that the order ID is constructed and the rider ID is present.
func NewAssignRiderCommand(orderID order.ID, riderID string) (AssignRiderCommand, error) {
	cmd := AssignRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRiderID(riderID),
	); err != nil {
		return AssignRiderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignRiderCommandIsNotConstructed if validation fails.
func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignRiderCommand) OrderID() order.ID {
	return c.orderID
}

// RiderID returns the rider's identifier.
func (c AssignRiderCommand) RiderID() string {
	return c.riderID
}

func (c *AssignRiderCommand) setOrderID(orderID order.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignRiderCommand) setRiderID(riderID string) error {
	if riderID == "" {
		return ErrRiderIDIsRequired
	}

	c.riderID = riderID
	return nil
}
