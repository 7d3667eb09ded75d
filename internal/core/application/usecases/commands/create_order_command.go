package commands

import (
	"errors"

	"effdel/internal/core/domain/model/order"
	"effdel/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrUserIDIsRequired = errors.New("user ID is required")
	ErrItemsAreRequired = errors.New("at least one order item is required")
)

// CreateOrderCommand represents a request to place a new customer order.
// Encapsulates the ordering user and the order lines.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("user-1", []order.Item{
//	    {ProductID: "prod-1", Quantity: 2, UnitPrice: 9.99},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created in Pending status", created.ID())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID string
	items  []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the user reference is present and every order line is valid.
// Returns an error if any validation fails.
func NewCreateOrderCommand(userID string, items []order.Item) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setUserID(userID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the ordering user's reference.
func (c CreateOrderCommand) UserID() string {
	return c.userID
}

// Items returns the order lines.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

func (c *CreateOrderCommand) setUserID(userID string) error {
	if userID == "" {
		return ErrUserIDIsRequired
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
