package order

import (
	"effdel/internal/pkg/errs"
	"effdel/internal/pkg/guard"
)

// ErrRiderInfoIsNotConstructed is returned when a RiderInfo instance was not
// created through the NewRiderInfo factory function.
var ErrRiderInfoIsNotConstructed = errs.NewValueIsRequiredError("RiderInfo must be created via NewRiderInfo")

// RiderInfo is a weak reference to a rider attached to an order.
// The rider entity itself lives in its own collection; an order only carries
// the rider identifier and a display name for convenience.
type RiderInfo struct {
	riderID   string
	riderName string

	guard guard.ConstructorGuard
}

// NewRiderInfo creates rider information for attachment to an order.
// The rider identifier is required; the display name may be empty, in which
// case it is resolved lazily against the rider collection on read.
func NewRiderInfo(riderID, riderName string) (RiderInfo, error) {
	if riderID == "" {
		return RiderInfo{}, errs.NewValueIsRequiredError("rider ID")
	}

	return RiderInfo{
		riderID:   riderID,
		riderName: riderName,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RiderID returns the rider's identifier.
func (r RiderInfo) RiderID() string {
	return r.riderID
}

// RiderName returns the rider's display name, possibly empty.
func (r RiderInfo) RiderName() string {
	return r.riderName
}

// Validate ensures the rider info was created through NewRiderInfo.
func (r RiderInfo) Validate() error {
	return r.guard.Validate(ErrRiderInfoIsNotConstructed)
}
