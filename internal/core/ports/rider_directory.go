package ports

import (
	"context"
)

// RiderDirectory is a read-only lookup of rider profiles. Order aggregates
// store a denormalized rider name at assignment time; the directory is the
// source that name is resolved from.
type RiderDirectory interface {
	// GetName resolves a rider identifier to the rider's display name.
	// Returns errs.ObjectNotFoundError when the rider is unknown.
	GetName(ctx context.Context, riderID string) (string, error)
}
