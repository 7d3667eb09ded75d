package queries

import (
	"errors"

	"effdel/internal/core/domain/model/order"
	"effdel/internal/pkg/guard"
)

var (
	ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
		"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
	)
)

// GetOrdersByStatusQuery retrieves every order currently in a given
// lifecycle status, most recently modified first.
//
// Example:
//
//	query, err := NewGetOrdersByStatusQuery(order.Pending)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrdersByStatusQueryHandler(db)
//	pending, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders awaiting acceptance\n", len(pending))
type GetOrdersByStatusQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for orders in one status.
// Validates that the status is a known lifecycle status.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return GetOrdersByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByStatusQueryIsNotConstructed if validation fails.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the lifecycle status to filter by.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}
