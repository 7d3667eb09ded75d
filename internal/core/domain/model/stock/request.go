package stock

import (
	"errors"
	"fmt"

	"effdel/internal/pkg/errs"
)

// ErrRequestIsNotConstructed is returned when a Request instance was not
// created through the NewRequest or RestoreRequest factory functions.
var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest or RestoreRequest")

// Request is an outstanding product request: a demand for a number of units
// of a product, created independently of any stock arrival.
//
// Invariants:
//   - Must have a request identifier and a product reference
//   - Requested units are positive
//   - Fulfilled units are only meaningful once the status leaves Pending
//
// A request is reconciled by Fulfill when a stock addition references it:
// strict equality of added units against requested units decides Matched
// versus Unmatched. The reconciliation engine applies this at most once per
// stock-addition event; the entity itself does not forbid a later addition
// referencing the same request from overwriting the outcome, mirroring the
// replenishment flow's behaviour.
type Request struct {
	// requestID identifies the request; stock additions reference it
	requestID string

	// productID references the requested product
	productID string

	// requestedUnits is the demanded quantity, always positive
	requestedUnits int

	// status is the reconciliation state
	status RequestStatus

	// fulfilledUnits is the quantity recorded by reconciliation
	fulfilledUnits int

	// isConstructed ensures the request was created via a factory function
	isConstructed bool
}

// NewRequest creates a pending product request.
func NewRequest(requestID, productID string, requestedUnits int) (*Request, error) {
	return RestoreRequest(requestID, productID, requestedUnits, RequestPending, 0)
}

// RestoreRequest reconstructs a request from persistence, re-validating the
// stored state.
func RestoreRequest(
	requestID, productID string,
	requestedUnits int,
	status RequestStatus,
	fulfilledUnits int,
) (*Request, error) {
	if requestID == "" {
		return nil, errs.NewValueIsRequiredError("request ID")
	}
	if productID == "" {
		return nil, errs.NewValueIsRequiredError("product ID")
	}
	if requestedUnits <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"requested units",
			fmt.Errorf("%d is not greater than 0", requestedUnits),
		)
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if fulfilledUnits < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"fulfilled units",
			fmt.Errorf("%d is negative", fulfilledUnits),
		)
	}

	return &Request{
		requestID:      requestID,
		productID:      productID,
		requestedUnits: requestedUnits,
		status:         status,
		fulfilledUnits: fulfilledUnits,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Request instance was properly constructed through a
// factory function.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// RequestID returns the request identifier.
func (r *Request) RequestID() string {
	return r.requestID
}

// ProductID returns the requested product's reference.
func (r *Request) ProductID() string {
	return r.productID
}

// RequestedUnits returns the demanded quantity.
func (r *Request) RequestedUnits() int {
	return r.requestedUnits
}

// Status returns the reconciliation state.
func (r *Request) Status() RequestStatus {
	return r.status
}

// FulfilledUnits returns the quantity recorded by reconciliation.
// Zero until the request has been reconciled.
func (r *Request) FulfilledUnits() int {
	return r.fulfilledUnits
}

// Fulfill records the outcome of a stock addition against this request.
//
// The added units are compared to the requested quantity with strict
// equality: exactly equal marks the request Matched, any other positive
// quantity marks it Unmatched. The added units are recorded as the fulfilled
// quantity either way.
func (r *Request) Fulfill(unitsAdded int) error {
	if unitsAdded <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"units added",
			fmt.Errorf("%d is not greater than 0", unitsAdded),
		)
	}

	if unitsAdded == r.requestedUnits {
		r.status = RequestMatched
	} else {
		r.status = RequestUnmatched
	}
	r.fulfilledUnits = unitsAdded
	return nil
}
