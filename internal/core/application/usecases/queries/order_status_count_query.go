package queries

import (
	"errors"

	"effdel/internal/pkg/guard"
)

var (
	ErrOrderStatusCountQueryIsNotConstructed = errors.New(
		"OrderStatusCountQuery must be created via NewOrderStatusCountQuery constructor",
	)
)

// OrderStatusCountQuery counts orders per lifecycle status.
// Every status appears in the result, including those with zero orders, so
// dashboards always see the complete breakdown.
//
// Example:
//
//	query := NewOrderStatusCountQuery()
//	handler := NewOrderStatusCountQueryHandler(db)
//
//	counts, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d pending, %d delivered\n", counts["Pending"], counts["Delivered"])
type OrderStatusCountQuery struct {
	guard guard.ConstructorGuard
}

// NewOrderStatusCountQuery creates a query for the per-status order counts.
// This is a parameterless query covering the whole order collection.
func NewOrderStatusCountQuery() OrderStatusCountQuery {
	return OrderStatusCountQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrOrderStatusCountQueryIsNotConstructed if validation fails.
func (q OrderStatusCountQuery) Validate() error {
	return q.guard.Validate(ErrOrderStatusCountQueryIsNotConstructed)
}
