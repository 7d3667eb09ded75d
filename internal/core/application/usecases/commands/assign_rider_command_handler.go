package commands

import (
	"context"
	"errors"

	"effdel/internal/core/domain/model/order"
	"effdel/internal/core/ports"
	"effdel/internal/pkg/errs"
)

// AssignRiderCommandHandler handles the business logic for rider assignment.
// Resolves the rider's display name from the directory and attaches the rider
// to the order regardless of the order's current status.
//
// Example:
//
//	handler := NewAssignRiderCommandHandler(uowFactory, riderDirectory)
//	cmd, _ := NewAssignRiderCommand(orderID, "rider-7")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("rider assignment failed: %w", err)
//	}
type AssignRiderCommandHandler struct {
	uowFactory     OrderUoWFactory
	riderDirectory ports.RiderDirectory
}

// NewAssignRiderCommandHandler creates a handler for rider assignment
// operations. Requires an OrderUoWFactory for transactional persistence and a
// RiderDirectory for display-name resolution.
func NewAssignRiderCommandHandler(
	uowFactory OrderUoWFactory,
	riderDirectory ports.RiderDirectory,
) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory:     uowFactory,
		riderDirectory: riderDirectory,
	}
}

// Handle processes the rider assignment command.
//
// An unknown rider identifier is tolerated: the assignment proceeds with an
// empty display name, which is resolved lazily on later reads. Any other
// directory failure aborts the assignment. Returns errs.ObjectNotFoundError
// when the order does not exist.
func (h *AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	riderName, err := h.riderDirectory.GetName(ctx, cmd.RiderID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	info, err := order.NewRiderInfo(cmd.RiderID(), riderName)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = aggregate.AssignRider(info); err != nil {
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
