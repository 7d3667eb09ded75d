package ports

import (
	"context"

	"effdel/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their lifecycle status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no order carries the identifier.
	Get(ctx context.Context, id order.ID) (*order.Order, error)

	// GetAllByStatus retrieves every order currently in the given status,
	// most recently modified first.
	GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
