package queries

import (
	"errors"

	"effdel/internal/core/domain/model/stock"
	"effdel/internal/pkg/guard"
)

var (
	ErrProductRequestsByStatusQueryIsNotConstructed = errors.New(
		"ProductRequestsByStatusQuery must be created via NewProductRequestsByStatusQuery constructor",
	)
)

// ProductRequestsByStatusQuery retrieves product requests filtered by
// reconciliation status. Listing Unmatched requests is how discrepancies
// between requested and delivered stock surface to operators.
//
// Example:
//
//	query, err := NewProductRequestsByStatusQuery(stock.RequestUnmatched)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewProductRequestsByStatusQueryHandler(db)
//	unmatched, err := handler.Handle(ctx, query)
type ProductRequestsByStatusQuery struct {
	status stock.RequestStatus

	guard guard.ConstructorGuard
}

// NewProductRequestsByStatusQuery creates a query for requests in one
// reconciliation status. Validates that the status is known.
func NewProductRequestsByStatusQuery(status stock.RequestStatus) (ProductRequestsByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return ProductRequestsByStatusQuery{}, err
	}

	return ProductRequestsByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrProductRequestsByStatusQueryIsNotConstructed if validation fails.
func (q ProductRequestsByStatusQuery) Validate() error {
	return q.guard.Validate(ErrProductRequestsByStatusQueryIsNotConstructed)
}

// Status returns the reconciliation status to filter by.
func (q ProductRequestsByStatusQuery) Status() stock.RequestStatus {
	return q.status
}

// ProductRequestResponse represents one product request in a query response.
type ProductRequestResponse struct {
	RequestID      string `json:"request_id"`
	ProductID      string `json:"product_id"`
	RequestedUnits int    `json:"requested_units"`
	FulfilledUnits int    `json:"fulfilled_units"`
	Status         string `json:"status"`
}
