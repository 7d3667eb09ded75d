package order

import (
	"fmt"
	"time"

	"effdel/internal/pkg/errs"
	"effdel/internal/pkg/guard"
)

// ErrRefundIsNotConstructed is returned when a Refund instance was not created
// through the NewRefund or RestoreRefund factory functions.
var ErrRefundIsNotConstructed = errs.NewValueIsRequiredError("Refund must be created via NewRefund or RestoreRefund")

// Refund is an immutable record of money returned against an order.
// A refund is owned by exactly one order and never changes once recorded;
// updates to an order's refunds replace the whole list.
type Refund struct {
	amount    float64
	reason    string
	timestamp time.Time

	guard guard.ConstructorGuard
}

// NewRefund creates a refund record stamped with the current UTC time.
// The amount must be positive and the reason must not be empty.
func NewRefund(amount float64, reason string) (Refund, error) {
	return RestoreRefund(amount, reason, time.Now().UTC())
}

// RestoreRefund reconstructs a refund from persistence with its original
// timestamp. The same validation rules as NewRefund apply.
func RestoreRefund(amount float64, reason string, timestamp time.Time) (Refund, error) {
	if amount <= 0 {
		return Refund{}, errs.NewValueIsInvalidErrorWithCause(
			"refund amount",
			fmt.Errorf("%v is not greater than 0", amount),
		)
	}
	if reason == "" {
		return Refund{}, errs.NewValueIsRequiredError("refund reason")
	}
	if timestamp.IsZero() {
		return Refund{}, errs.NewValueIsRequiredError("refund timestamp")
	}

	return Refund{
		amount:    amount,
		reason:    reason,
		timestamp: timestamp.UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Amount returns the refunded amount.
func (r Refund) Amount() float64 {
	return r.amount
}

// Reason returns the reason the refund was issued.
func (r Refund) Reason() string {
	return r.reason
}

// Timestamp returns the UTC time the refund was recorded.
func (r Refund) Timestamp() time.Time {
	return r.timestamp
}

// Validate ensures the refund was created through a factory function.
func (r Refund) Validate() error {
	return r.guard.Validate(ErrRefundIsNotConstructed)
}
