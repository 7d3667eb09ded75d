package queries

import (
	"errors"

	"effdel/internal/core/domain/model/product"
	"effdel/internal/pkg/guard"
)

var (
	ErrProductsByInventoryRangeQueryIsNotConstructed = errors.New(
		"ProductsByInventoryRangeQuery must be created via its constructors",
	)
)

// ProductsByInventoryRangeQuery buckets the product catalog by inventory
// level, optionally narrowed to a single bucket.
//
// Example:
//
//	// Whole catalog, every bucket:
//	query := NewProductsByInventoryRangeQuery()
//
//	// Only products with fewer than 100 units:
//	query, err := NewProductsByInventoryRangeQueryWithFilter(product.RangeLow)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewProductsByInventoryRangeQueryHandler(db)
//	products, err := handler.Handle(ctx, query)
type ProductsByInventoryRangeQuery struct {
	filter    product.InventoryRange
	hasFilter bool

	guard guard.ConstructorGuard
}

// NewProductsByInventoryRangeQuery creates an unfiltered query covering the
// whole catalog.
func NewProductsByInventoryRangeQuery() ProductsByInventoryRangeQuery {
	return ProductsByInventoryRangeQuery{guard: guard.NewConstructorGuard()}
}

// NewProductsByInventoryRangeQueryWithFilter creates a query narrowed to one
// inventory bucket. The bucket label must parse to a known range.
func NewProductsByInventoryRangeQueryWithFilter(filter product.InventoryRange) (ProductsByInventoryRangeQuery, error) {
	if _, ok := product.ParseInventoryRange(string(filter)); !ok {
		return ProductsByInventoryRangeQuery{}, errors.New("unknown inventory range: " + string(filter))
	}

	return ProductsByInventoryRangeQuery{
		filter:    filter,
		hasFilter: true,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
// Returns ErrProductsByInventoryRangeQueryIsNotConstructed if validation fails.
func (q ProductsByInventoryRangeQuery) Validate() error {
	return q.guard.Validate(ErrProductsByInventoryRangeQueryIsNotConstructed)
}

// Filter returns the bucket filter and whether one is set.
func (q ProductsByInventoryRangeQuery) Filter() (product.InventoryRange, bool) {
	return q.filter, q.hasFilter
}

// ProductInventoryResponse represents one catalog product with its derived
// inventory bucket.
type ProductInventoryResponse struct {
	ID               string `json:"id"`
	SubCategoryID    string `json:"sub_category_id,omitempty"`
	Name             string `json:"name,omitempty"`
	CurrentInventory int    `json:"current_inventory"`
	InventoryRange   string `json:"inventory_range"`
}
