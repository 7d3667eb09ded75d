package commands

import (
	"context"

	"effdel/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Creates new orders with a time-sortable identifier and initial Pending status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand("user-1", items)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// created.ID() identifies the new Pending order
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Generates a fresh time-sortable identifier and creates the order in Pending
// status. Uses a transaction to ensure the order is properly persisted or
// rolled back on error. Returns the created aggregate so callers can surface
// the generated identifier.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := order.NewOrder(order.NewID(), cmd.UserID(), cmd.Items())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
