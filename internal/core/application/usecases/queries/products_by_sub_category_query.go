package queries

import (
	"errors"

	"effdel/internal/pkg/guard"
)

var (
	ErrProductsBySubCategoryQueryIsNotConstructed = errors.New(
		"ProductsBySubCategoryQuery must be created via NewProductsBySubCategoryQuery constructor",
	)
	ErrSubCategoryIDIsRequired = errors.New("sub-category ID is required")
)

// ProductsBySubCategoryQuery retrieves the products of one catalog
// sub-category.
type ProductsBySubCategoryQuery struct {
	subCategoryID string

	guard guard.ConstructorGuard
}

// NewProductsBySubCategoryQuery creates a query for one sub-category.
// Validates that the sub-category reference is present.
func NewProductsBySubCategoryQuery(subCategoryID string) (ProductsBySubCategoryQuery, error) {
	if subCategoryID == "" {
		return ProductsBySubCategoryQuery{}, ErrSubCategoryIDIsRequired
	}

	return ProductsBySubCategoryQuery{
		subCategoryID: subCategoryID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrProductsBySubCategoryQueryIsNotConstructed if validation fails.
func (q ProductsBySubCategoryQuery) Validate() error {
	return q.guard.Validate(ErrProductsBySubCategoryQueryIsNotConstructed)
}

// SubCategoryID returns the sub-category reference.
func (q ProductsBySubCategoryQuery) SubCategoryID() string {
	return q.subCategoryID
}
