package queries

import (
	"context"

	"effdel/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// OrderStatusCountQueryHandler aggregates order counts per lifecycle status.
type OrderStatusCountQueryHandler struct {
	db *gorm.DB
}

// NewOrderStatusCountQueryHandler creates a handler for the status-count
// aggregation. Requires a GORM database connection for query execution.
func NewOrderStatusCountQueryHandler(db *gorm.DB) OrderStatusCountQueryHandler {
	return OrderStatusCountQueryHandler{db: db}
}

// Handle executes the aggregation.
// The result maps every status name to its order count, zero-initialized so
// statuses without any orders are still present. Rows with a status value
// outside the known set are ignored rather than invented as a new key.
func (h OrderStatusCountQueryHandler) Handle(
	ctx context.Context,
	query OrderStatusCountQuery,
) (map[string]int, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(order.AllStatuses()))
	for _, status := range order.AllStatuses() {
		counts[status.String()] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status int
			count  int
		)
		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}

		name := order.Status(status)
		if name.Validate() != nil {
			continue
		}
		counts[name.String()] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
