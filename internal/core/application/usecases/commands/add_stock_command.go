package commands

import (
	"errors"

	"effdel/internal/pkg/guard"
)

var (
	ErrAddStockCommandIsNotConstructed = errors.New(
		"AddStockCommand must be created via NewAddStockCommand constructor",
	)
	ErrProductIDIsRequired = errors.New("product ID is required")
	ErrRequestIDIsRequired = errors.New("request ID is required")
	ErrUnitsAreInvalid     = errors.New("units must be greater than 0")
)

// AddStockCommand represents a stock arrival: a number of units of a product
// delivered against an outstanding product request.
//
// Example:
//
//	cmd, err := NewAddStockCommand("prod-1", "req-1", 50)
//	if err != nil {
//	    return fmt.Errorf("invalid stock arrival: %w", err)
//	}
//
//	handler := NewAddStockCommandHandler(products, requests, additions, reconciler, logger)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("stock addition failed: %w", err)
//	}
//	fmt.Printf("inventory now %d, request %s", result.NewInventory, result.RequestStatus)
type AddStockCommand struct { //nolint:recvcheck //using for validation
	productID string
	requestID string
	units     int

	guard guard.ConstructorGuard
}

// NewAddStockCommand creates a command to record a stock arrival.
// Validates that both references are present and the unit count is positive.
func NewAddStockCommand(productID, requestID string, units int) (AddStockCommand, error) {
	cmd := AddStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setRequestID(requestID),
		cmd.setUnits(units),
	); err != nil {
		return AddStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddStockCommandIsNotConstructed if validation fails.
func (c AddStockCommand) Validate() error {
	return c.guard.Validate(ErrAddStockCommandIsNotConstructed)
}

// ProductID returns the product whose stock arrived.
func (c AddStockCommand) ProductID() string {
	return c.productID
}

// RequestID returns the product request the arrival is delivered against.
func (c AddStockCommand) RequestID() string {
	return c.requestID
}

// Units returns the number of arrived units.
func (c AddStockCommand) Units() int {
	return c.units
}

func (c *AddStockCommand) setProductID(productID string) error {
	if productID == "" {
		return ErrProductIDIsRequired
	}

	c.productID = productID
	return nil
}

func (c *AddStockCommand) setRequestID(requestID string) error {
	if requestID == "" {
		return ErrRequestIDIsRequired
	}

	c.requestID = requestID
	return nil
}

func (c *AddStockCommand) setUnits(units int) error {
	if units <= 0 {
		return ErrUnitsAreInvalid
	}

	c.units = units
	return nil
}
