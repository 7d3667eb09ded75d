package commands

import (
	"errors"

	"effdel/internal/core/domain/model/order"
	"effdel/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand represents a request to move an order along its
// lifecycle. The transition itself is validated by the order aggregate; the
// command only guarantees a well-formed identifier and a known target status.
//
// Example:
//
//	orderID, _ := order.IDFromString("20240115093015123a1b2c3")
//	cmd, err := NewUpdateOrderStatusCommand(orderID, order.Accepted)
//	if err != nil {
//	    return fmt.Errorf("invalid status update: %w", err)
//	}
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status update failed: %w", err)
//	}
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   order.ID
	newStatus order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to transition an order.
// Validates that the order ID is constructed and the target status is a
// known lifecycle status.
func NewUpdateOrderStatusCommand(orderID order.ID, newStatus order.Status) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c UpdateOrderStatusCommand) OrderID() order.ID {
	return c.orderID
}

// NewStatus returns the target lifecycle status.
func (c UpdateOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID order.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
