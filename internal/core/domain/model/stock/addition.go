package stock

import (
	"fmt"
	"time"

	"effdel/internal/pkg/errs"
	"effdel/internal/pkg/guard"
)

// ErrAdditionIsNotConstructed is returned when an Addition instance was not
// created through the NewAddition or RestoreAddition factory functions.
var ErrAdditionIsNotConstructed = errs.NewValueIsRequiredError("Addition must be created via NewAddition or RestoreAddition")

// Addition is an immutable audit-log entry recording that units of a product
// arrived against a product request. Additions are append-only: they are
// never updated or deleted, which lets reconciliation be replayed when a
// multi-step stock update fails midway.
type Addition struct {
	productID string
	requestID string
	units     int
	timestamp time.Time

	guard guard.ConstructorGuard
}

// NewAddition creates an audit record stamped with the current UTC time.
func NewAddition(productID, requestID string, units int) (Addition, error) {
	return RestoreAddition(productID, requestID, units, time.Now().UTC())
}

// RestoreAddition reconstructs an audit record from persistence with its
// original timestamp.
func RestoreAddition(productID, requestID string, units int, timestamp time.Time) (Addition, error) {
	if productID == "" {
		return Addition{}, errs.NewValueIsRequiredError("product ID")
	}
	if requestID == "" {
		return Addition{}, errs.NewValueIsRequiredError("request ID")
	}
	if units <= 0 {
		return Addition{}, errs.NewValueIsInvalidErrorWithCause(
			"units",
			fmt.Errorf("%d is not greater than 0", units),
		)
	}
	if timestamp.IsZero() {
		return Addition{}, errs.NewValueIsRequiredError("timestamp")
	}

	return Addition{
		productID: productID,
		requestID: requestID,
		units:     units,
		timestamp: timestamp.UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// ProductID returns the product whose stock was increased.
func (a Addition) ProductID() string {
	return a.productID
}

// RequestID returns the product request the arrival was matched against.
func (a Addition) RequestID() string {
	return a.requestID
}

// Units returns the number of units added.
func (a Addition) Units() int {
	return a.units
}

// Timestamp returns the UTC time the addition was recorded.
func (a Addition) Timestamp() time.Time {
	return a.timestamp
}

// Validate ensures the addition was created through a factory function.
func (a Addition) Validate() error {
	return a.guard.Validate(ErrAdditionIsNotConstructed)
}
