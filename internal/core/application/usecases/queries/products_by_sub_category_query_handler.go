package queries

import (
	"context"

	"effdel/internal/core/domain/model/product"

	"gorm.io/gorm"
)

// ProductsBySubCategoryQueryHandler retrieves catalog products filtered by
// sub-category.
type ProductsBySubCategoryQueryHandler struct {
	db *gorm.DB
}

// NewProductsBySubCategoryQueryHandler creates a handler for sub-category
// catalog queries. Requires a GORM database connection.
func NewProductsBySubCategoryQueryHandler(db *gorm.DB) ProductsBySubCategoryQueryHandler {
	return ProductsBySubCategoryQueryHandler{db: db}
}

// Handle executes the query.
// An unknown sub-category simply yields an empty slice.
func (h ProductsBySubCategoryQueryHandler) Handle(
	ctx context.Context,
	query ProductsBySubCategoryQuery,
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
		WHERE sub_category_id = ?
		ORDER BY id
	`, query.SubCategoryID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

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

		resp.InventoryRange = string(product.CategorizeInventory(resp.CurrentInventory))
		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
