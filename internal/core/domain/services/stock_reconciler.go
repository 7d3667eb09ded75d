package services

import (
	"effdel/internal/core/domain/model/stock"
)

// StockReconciler is a domain service responsible for matching an incoming
// stock arrival against the product request it references.
//
// Key responsibilities:
//   - Validating the request before reconciliation
//   - Applying the strict-equality matching rule
//   - Producing the immutable audit record for the arrival
//
// Business rules:
//   - A request is Matched only when the added units equal the requested
//     units exactly
//   - Any other positive quantity marks the request Unmatched; there is no
//     partially-matched state
//   - Every arrival produces an audit record, regardless of the outcome
//
// Example usage:
//
//	reconciler := NewStockReconciler()
//	request, _ := stock.NewRequest("req-1", "prod-1", 50)
//
//	addition, err := reconciler.Reconcile(request, 50)
//	if err != nil {
//	    // Handle reconciliation failure
//	    return
//	}
//	// request.Status() is now Matched, addition records the arrival
type StockReconciler struct{}

// NewStockReconciler creates a new StockReconciler instance.
func NewStockReconciler() StockReconciler {
	return StockReconciler{}
}

// Reconcile records a stock arrival of unitsAdded against the given request
// and returns the audit record for the arrival.
//
// The request's status transitions to Matched or Unmatched according to the
// strict-equality rule, and its fulfilled units are set to unitsAdded. The
// returned Addition is stamped with the current UTC time.
func (s StockReconciler) Reconcile(request *stock.Request, unitsAdded int) (stock.Addition, error) {
	if err := request.Validate(); err != nil {
		return stock.Addition{}, err
	}

	if err := request.Fulfill(unitsAdded); err != nil {
		return stock.Addition{}, err
	}

	return stock.NewAddition(request.ProductID(), request.RequestID(), unitsAdded)
}
