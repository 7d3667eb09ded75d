package queries

import (
	"errors"

	"effdel/internal/core/domain/model/order"
	"effdel/internal/pkg/guard"
)

var (
	ErrGetRefundsQueryIsNotConstructed = errors.New(
		"GetRefundsQuery must be created via NewGetRefundsQuery constructor",
	)
)

// GetRefundsQuery retrieves the refund history of a single order.
//
// Example:
//
//	query, err := NewGetRefundsQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetRefundsQueryHandler(db)
//	refunds, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // Unknown order
//	}
type GetRefundsQuery struct {
	orderID order.ID

	guard guard.ConstructorGuard
}

// NewGetRefundsQuery creates a query for an order's refunds.
// Validates that the order ID is constructed.
func NewGetRefundsQuery(orderID order.ID) (GetRefundsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetRefundsQuery{}, err
	}

	return GetRefundsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRefundsQueryIsNotConstructed if validation fails.
func (q GetRefundsQuery) Validate() error {
	return q.guard.Validate(ErrGetRefundsQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose refunds are requested.
func (q GetRefundsQuery) OrderID() order.ID {
	return q.orderID
}
