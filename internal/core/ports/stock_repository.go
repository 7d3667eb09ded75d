package ports

import (
	"context"

	"effdel/internal/core/domain/model/stock"
)

// RequestRepository defines the persistence contract for product requests.
type RequestRepository interface {
	// Add persists a new product request.
	Add(ctx context.Context, request *stock.Request) error

	// Update persists changes to an existing product request.
	Update(ctx context.Context, request *stock.Request) error

	// GetByRequestID retrieves a product request by its request identifier.
	// Returns errs.ObjectNotFoundError when no request carries the identifier.
	GetByRequestID(ctx context.Context, requestID string) (*stock.Request, error)

	// GetAllByStatus retrieves every product request in the given
	// reconciliation status.
	GetAllByStatus(ctx context.Context, status stock.RequestStatus) ([]*stock.Request, error)
}

// AdditionLog defines the persistence contract for the append-only
// stock-addition audit trail. Entries are only ever appended and read back,
// never updated or deleted.
type AdditionLog interface {
	// Append persists a new audit record.
	Append(ctx context.Context, addition stock.Addition) error

	// GetAllByProduct retrieves every audit record for the given product,
	// oldest first.
	GetAllByProduct(ctx context.Context, productID string) ([]stock.Addition, error)
}
