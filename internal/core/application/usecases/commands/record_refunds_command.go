package commands

import (
	"errors"

	"effdel/internal/core/domain/model/order"
	"effdel/internal/pkg/guard"
)

var (
	ErrRecordRefundsCommandIsNotConstructed = errors.New(
		"RecordRefundsCommand must be created via NewRecordRefundsCommand constructor",
	)
	ErrRefundsAreRequired = errors.New("at least one refund is required")
)

// RecordRefundsCommand represents a request to set an order's refund history.
// The supplied records replace the order's entire refund list; appending a
// refund means supplying the previous records plus the new one.
//
// Example:
//
//	refund, _ := order.NewRefund(12.50, "damaged item")
//	cmd, err := NewRecordRefundsCommand(orderID, []order.Refund{refund})
//	if err != nil {
//	    return fmt.Errorf("invalid refunds: %w", err)
//	}
//
//	handler := NewRecordRefundsCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("recording refunds failed: %w", err)
//	}
type RecordRefundsCommand struct { //nolint:recvcheck //using for validation
	orderID order.ID
	refunds []order.Refund

	guard guard.ConstructorGuard
}

// NewRecordRefundsCommand creates a command to replace an order's refunds.
// Validates that the order ID is constructed and every refund record is valid.
func NewRecordRefundsCommand(orderID order.ID, refunds []order.Refund) (RecordRefundsCommand, error) {
	cmd := RecordRefundsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRefunds(refunds),
	); err != nil {
		return RecordRefundsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordRefundsCommandIsNotConstructed if validation fails.
func (c RecordRefundsCommand) Validate() error {
	return c.guard.Validate(ErrRecordRefundsCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being refunded.
func (c RecordRefundsCommand) OrderID() order.ID {
	return c.orderID
}

// Refunds returns the replacement refund records.
func (c RecordRefundsCommand) Refunds() []order.Refund {
	return c.refunds
}

func (c *RecordRefundsCommand) setOrderID(orderID order.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordRefundsCommand) setRefunds(refunds []order.Refund) error {
	if len(refunds) == 0 {
		return ErrRefundsAreRequired
	}

	for _, refund := range refunds {
		if err := refund.Validate(); err != nil {
			return err
		}
	}

	c.refunds = refunds
	return nil
}
