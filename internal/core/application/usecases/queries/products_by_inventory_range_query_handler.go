package queries

import (
	"context"

	"effdel/internal/core/domain/model/product"
	"effdel/internal/pkg/errs"

	"gorm.io/gorm"
)

// ProductsByInventoryRangeQueryHandler buckets catalog products by their
// inventory level.
//
// The bucketing happens in the application after a full catalog scan rather
// than in SQL, which keeps the range boundaries in exactly one place, the
// product package.
type ProductsByInventoryRangeQueryHandler struct {
	db *gorm.DB
}

// NewProductsByInventoryRangeQueryHandler creates a handler for the
// inventory-range aggregation. Requires a GORM database connection.
func NewProductsByInventoryRangeQueryHandler(db *gorm.DB) ProductsByInventoryRangeQueryHandler {
	return ProductsByInventoryRangeQueryHandler{db: db}
}

// Handle executes the aggregation.
// Without a filter, every product is returned with its bucket label. With a
// filter, only products falling in that bucket are returned; an empty
// filtered result is reported as errs.ObjectNotFoundError.
func (h ProductsByInventoryRangeQueryHandler) Handle(
	ctx context.Context,
	query ProductsByInventoryRangeQuery,
) ([]ProductInventoryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sub_category_id,
			name,
			current_inventory
		FROM products
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	filter, hasFilter := query.Filter()
	products := make([]ProductInventoryResponse, 0)

	for rows.Next() {
		var resp ProductInventoryResponse
		if err = rows.Scan(
			&resp.ID,
			&resp.SubCategoryID,
			&resp.Name,
			&resp.CurrentInventory,
		); err != nil {
			return nil, err
		}

		bucket := product.CategorizeInventory(resp.CurrentInventory)
		if hasFilter && bucket != filter {
			continue
		}

		resp.InventoryRange = string(bucket)
		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if hasFilter && len(products) == 0 {
		return nil, errs.NewObjectNotFoundError("inventory range", string(filter))
	}

	return products, nil
}
