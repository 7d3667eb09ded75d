package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"effdel/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetRefundsQueryHandler retrieves the refund history of an order.
// An order without refunds yields an empty list, not an error; only a
// missing order is reported as not found.
type GetRefundsQueryHandler struct {
	db *gorm.DB
}

// NewGetRefundsQueryHandler creates a handler for refund history queries.
// Requires a GORM database connection for query execution.
func NewGetRefundsQueryHandler(db *gorm.DB) GetRefundsQueryHandler {
	return GetRefundsQueryHandler{db: db}
}

// Handle executes the query.
// Returns errs.ObjectNotFoundError when the order does not exist.
func (h GetRefundsQueryHandler) Handle(ctx context.Context, query GetRefundsQuery) ([]RefundResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var refundsRaw []byte
	row := h.db.WithContext(ctx).Raw(`
		SELECT refunds
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	if err := row.Scan(&refundsRaw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("order id", query.OrderID().String())
		}
		return nil, err
	}

	refunds := make([]RefundResponse, 0)
	if len(refundsRaw) > 0 {
		if err := json.Unmarshal(refundsRaw, &refunds); err != nil {
			return nil, err
		}
	}

	return refunds, nil
}
