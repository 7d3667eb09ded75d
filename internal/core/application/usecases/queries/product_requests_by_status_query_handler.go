package queries

import (
	"context"

	"effdel/internal/core/domain/model/stock"

	"gorm.io/gorm"
)

// ProductRequestsByStatusQueryHandler retrieves product requests filtered by
// reconciliation status.
type ProductRequestsByStatusQueryHandler struct {
	db *gorm.DB
}

// NewProductRequestsByStatusQueryHandler creates a handler for
// reconciliation-status request queries. Requires a GORM database connection.
func NewProductRequestsByStatusQueryHandler(db *gorm.DB) ProductRequestsByStatusQueryHandler {
	return ProductRequestsByStatusQueryHandler{db: db}
}

// Handle executes the query.
// An empty result is returned as an empty slice, not an error.
func (h ProductRequestsByStatusQueryHandler) Handle(
	ctx context.Context,
	query ProductRequestsByStatusQuery,
) ([]ProductRequestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			request_id,
			product_id,
			requested_units,
			fulfilled_units,
			status
		FROM product_requests
		WHERE status = ?
		ORDER BY request_id
	`, int(query.Status())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]ProductRequestResponse, 0)
	for rows.Next() {
		var (
			resp   ProductRequestResponse
			status int
		)
		if err = rows.Scan(
			&resp.RequestID,
			&resp.ProductID,
			&resp.RequestedUnits,
			&resp.FulfilledUnits,
			&status,
		); err != nil {
			return nil, err
		}

		resp.Status = stock.RequestStatus(status).String()
		requests = append(requests, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
