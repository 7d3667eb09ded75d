package commands

import (
	"context"
	"errors"
	"log/slog"

	"effdel/internal/core/domain/model/stock"
	"effdel/internal/core/domain/services"
	"effdel/internal/core/ports"
	"effdel/internal/pkg/errs"
)

// AddStockResult summarizes the outcome of a processed stock arrival.
type AddStockResult struct {
	// ProductID is the product whose stock arrived.
	ProductID string

	// RequestID is the product request the arrival was delivered against.
	RequestID string

	// UnitsAdded is the number of arrived units.
	UnitsAdded int

	// NewInventory is the product's inventory count after the increment.
	NewInventory int

	// RequestStatus is the request's reconciliation outcome.
	RequestStatus stock.RequestStatus
}

// AddStockCommandHandler handles the business logic for stock arrivals.
//
// An arrival is processed as a sequence of independent steps:
//
//  1. The product's inventory is incremented atomically, creating the
//     product record if it does not exist yet.
//  2. The referenced product request is loaded.
//  3. The request is reconciled against the arrival (Matched on exact
//     quantity, Unmatched otherwise) and persisted.
//  4. An audit record is appended to the stock-addition log.
//
// The steps deliberately do not share a transaction: each one commits on its
// own, mirroring the replenishment flow's semantics. A failure after step 1
// leaves the inventory incremented while the request stays untouched; the
// audit log and the reconciliation report job exist to make such partial
// states observable.
type AddStockCommandHandler struct {
	products   ports.ProductRepository
	requests   ports.RequestRepository
	additions  ports.AdditionLog
	reconciler services.StockReconciler
	logger     *slog.Logger
}

// NewAddStockCommandHandler creates a handler for stock arrival operations.
func NewAddStockCommandHandler(
	products ports.ProductRepository,
	requests ports.RequestRepository,
	additions ports.AdditionLog,
	reconciler services.StockReconciler,
	logger *slog.Logger,
) AddStockCommandHandler {
	return AddStockCommandHandler{
		products:   products,
		requests:   requests,
		additions:  additions,
		reconciler: reconciler,
		logger:     logger,
	}
}

// Handle processes the stock arrival command.
//
// Returns errs.ObjectNotFoundError when the referenced request does not
// exist; the inventory increment from step 1 is NOT rolled back in that
// case. Infrastructure failures are logged with full detail and surfaced as
// a generic errs.InternalError.
func (h *AddStockCommandHandler) Handle(ctx context.Context, cmd AddStockCommand) (AddStockResult, error) {
	if err := cmd.Validate(); err != nil {
		return AddStockResult{}, err
	}

	newInventory, err := h.products.IncrementInventory(ctx, cmd.ProductID(), cmd.Units())
	if err != nil {
		h.logger.ErrorContext(ctx, "inventory increment failed",
			"product_id", cmd.ProductID(),
			"units", cmd.Units(),
			"error", err,
		)
		return AddStockResult{}, errs.NewInternalError(err)
	}

	request, err := h.requests.GetByRequestID(ctx, cmd.RequestID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.WarnContext(ctx, "stock arrived for unknown request, inventory already incremented",
				"product_id", cmd.ProductID(),
				"request_id", cmd.RequestID(),
				"units", cmd.Units(),
				"new_inventory", newInventory,
			)
			return AddStockResult{}, err
		}

		h.logger.ErrorContext(ctx, "request lookup failed",
			"request_id", cmd.RequestID(),
			"error", err,
		)
		return AddStockResult{}, errs.NewInternalError(err)
	}

	addition, err := h.reconciler.Reconcile(request, cmd.Units())
	if err != nil {
		return AddStockResult{}, err
	}

	if err = h.requests.Update(ctx, request); err != nil {
		h.logger.ErrorContext(ctx, "request update failed",
			"request_id", cmd.RequestID(),
			"status", request.Status().String(),
			"error", err,
		)
		return AddStockResult{}, errs.NewInternalError(err)
	}

	if err = h.additions.Append(ctx, addition); err != nil {
		h.logger.ErrorContext(ctx, "stock addition audit append failed",
			"product_id", cmd.ProductID(),
			"request_id", cmd.RequestID(),
			"error", err,
		)
		return AddStockResult{}, errs.NewInternalError(err)
	}

	return AddStockResult{
		ProductID:     cmd.ProductID(),
		RequestID:     cmd.RequestID(),
		UnitsAdded:    cmd.Units(),
		NewInventory:  newInventory,
		RequestStatus: request.Status(),
	}, nil
}
