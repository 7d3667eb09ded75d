// Package queries contains read-only operations against the data store.
// Implements the Query side of the CQRS architecture: handlers read
// denormalized rows directly through the database handle and never touch
// domain aggregates' write paths.
package queries

import (
	"errors"
	"time"

	"effdel/internal/core/domain/model/order"
	"effdel/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order with its full detail.
//
// Example:
//
//	orderID, _ := order.IDFromString("20240115093015123a1b2c3")
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db, riderDirectory)
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // Unknown order
//	}
type GetOrderQuery struct {
	orderID order.ID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
// Validates that the order ID is constructed.
func NewGetOrderQuery(orderID order.ID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() order.ID {
	return q.orderID
}

// OrderItemResponse is one order line in a query response.
type OrderItemResponse struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// RefundResponse is one refund record in a query response.
type RefundResponse struct {
	Amount    float64   `json:"amount"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderResponse represents a full order in a query response.
// RiderName is resolved from the rider directory when the stored name is
// empty; resolution failures are tolerated and leave the name empty.
type OrderResponse struct {
	ID         string              `json:"id"`
	UserID     string              `json:"user_id"`
	Items      []OrderItemResponse `json:"items"`
	Status     string              `json:"status"`
	RiderID    *string             `json:"rider_id,omitempty"`
	RiderName  string              `json:"rider_name,omitempty"`
	Refunds    []RefundResponse    `json:"refunds,omitempty"`
	ModifiedAt time.Time           `json:"modified_at"`
}
