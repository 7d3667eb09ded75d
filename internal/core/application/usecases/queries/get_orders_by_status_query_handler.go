package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByStatusQueryHandler retrieves orders filtered by lifecycle
// status. The filter is an exact match; there is no "all but X" form.
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for status-filtered
// order queries. Requires a GORM database connection for query execution.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders in the given status.
// Results are sorted by modification time, newest first. An empty result is
// returned as an empty slice, not an error.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			items,
			status,
			rider_id,
			rider_name,
			refunds,
			modified_at
		FROM orders
		WHERE status = ?
		ORDER BY modified_at DESC
	`, int(query.Status())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
