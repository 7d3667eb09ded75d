package commands

import (
	"context"
)

// PickupOrderCommandHandler handles the business logic for order pickup.
// Loads the order, applies the Pending-to-Delivered shortcut through the
// aggregate and persists the result within a single transaction.
//
// Example:
//
//	handler := NewPickupOrderCommandHandler(uowFactory)
//	cmd, _ := NewPickupOrderCommand(orderID, "rider-7")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    if errors.Is(err, errs.ErrInvalidState) {
//	        // Order was not Pending; pickup refused
//	    }
//	    return err
//	}
type PickupOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPickupOrderCommandHandler creates a handler for pickup operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewPickupOrderCommandHandler(uowFactory OrderUoWFactory) PickupOrderCommandHandler {
	return PickupOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup command.
// Returns errs.ObjectNotFoundError when the order does not exist and an
// InvalidStateError when the order is not Pending. A failed pickup leaves
// the order untouched, so a second pickup of the same order always fails.
func (h *PickupOrderCommandHandler) Handle(ctx context.Context, cmd PickupOrderCommand) error {
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

	if err = aggregate.Pickup(cmd.RiderID()); err != nil {
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
