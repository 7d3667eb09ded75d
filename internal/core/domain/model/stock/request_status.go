package stock

import (
	"fmt"

	"effdel/internal/pkg/errs"
)

// RequestStatus represents the reconciliation state of a product request.
type RequestStatus int

const (
	// RequestStatusUnknown represents an invalid or undefined status.
	RequestStatusUnknown RequestStatus = iota

	// RequestPending is the initial status of a request awaiting stock.
	RequestPending

	// RequestMatched indicates the added units equalled the requested quantity.
	RequestMatched

	// RequestUnmatched indicates the added units differed from the requested
	// quantity, in either direction.
	RequestUnmatched
)

// getRequestStatusStrings returns a map of RequestStatus values to their
// string representations.
func getRequestStatusStrings() map[RequestStatus]string {
	return map[RequestStatus]string{
		RequestStatusUnknown: "Unknown",
		RequestPending:       "Pending",
		RequestMatched:       "Matched",
		RequestUnmatched:     "Unmatched",
	}
}

// getValidRequestStatusStrings returns a map of only valid RequestStatus values.
func getValidRequestStatusStrings() map[RequestStatus]string {
	//nolint:exhaustive // RequestStatusUnknown is intentionally excluded as it's invalid
	return map[RequestStatus]string{
		RequestPending:   "Pending",
		RequestMatched:   "Matched",
		RequestUnmatched: "Unmatched",
	}
}

// AllRequestStatuses returns every valid request status in declaration order.
func AllRequestStatuses() []RequestStatus {
	return []RequestStatus{RequestPending, RequestMatched, RequestUnmatched}
}

// Validate checks if the RequestStatus value is valid.
func (s RequestStatus) Validate() error {
	if _, ok := getValidRequestStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"request status is invalid",
			fmt.Errorf("%d is not a valid request status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe on any value, returning "Unknown" for
// invalid ones.
func (s RequestStatus) String() string {
	if str, ok := getRequestStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
