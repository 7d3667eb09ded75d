package commands

import (
	"context"
)

// UpdateOrderStatusCommandHandler handles the business logic for lifecycle
// transitions. Loads the order, applies the transition through the aggregate
// and persists the result, all within a single transaction.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory)
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, order.Cancelled)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    if errors.Is(err, errs.ErrInvalidState) {
//	        // Transition not allowed from the order's current status
//	    }
//	    return err
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for lifecycle
// transition operations. Requires an OrderUoWFactory for transactional
// persistence.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
// Returns errs.ObjectNotFoundError when the order does not exist and an
// InvalidStateError when the transition is not allowed from the current
// status. The order is left untouched on any failure.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateStatus(cmd.NewStatus()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
