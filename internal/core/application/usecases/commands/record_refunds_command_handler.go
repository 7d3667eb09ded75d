package commands

import (
	"context"
)

// RecordRefundsCommandHandler handles the business logic for refund updates.
// Loads the order, replaces its refund history through the aggregate and
// persists the result within a single transaction.
//
// Example:
//
//	handler := NewRecordRefundsCommandHandler(uowFactory)
//	refund, _ := order.NewRefund(12.50, "damaged item")
//	cmd, _ := NewRecordRefundsCommand(orderID, []order.Refund{refund})
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("refund update failed: %w", err)
//	}
type RecordRefundsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecordRefundsCommandHandler creates a handler for refund updates.
// Requires an OrderUoWFactory for transactional persistence.
func NewRecordRefundsCommandHandler(uowFactory OrderUoWFactory) RecordRefundsCommandHandler {
	return RecordRefundsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the refund update command.
// Returns errs.ObjectNotFoundError when the order does not exist. The
// command's records replace the order's refund list wholesale.
func (h *RecordRefundsCommandHandler) Handle(ctx context.Context, cmd RecordRefundsCommand) error {
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

	if err = aggregate.RecordRefunds(cmd.Refunds()); err != nil {
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
