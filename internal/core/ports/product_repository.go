// Package ports defines repository interfaces for the commerce domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"effdel/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the product catalog
// and its inventory counters.
type ProductRepository interface {
	// Get retrieves a product by its unique identifier.
	// Returns errs.ObjectNotFoundError when no product carries the identifier.
	Get(ctx context.Context, id string) (*product.Product, error)

	// GetAll retrieves the entire product catalog.
	GetAll(ctx context.Context) ([]*product.Product, error)

	// GetAllBySubCategory retrieves every product in the given sub-category.
	GetAllBySubCategory(ctx context.Context, subCategoryID string) ([]*product.Product, error)

	// IncrementInventory atomically adds units to the product's current
	// inventory and returns the resulting count. A product that does not
	// exist yet is created with the given units as its inventory, so
	// concurrent increments never lose updates to a read-modify-write race.
	IncrementInventory(ctx context.Context, id string, units int) (int, error)
}
