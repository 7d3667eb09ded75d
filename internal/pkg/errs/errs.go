package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification with errors.Is.
var (
	// ErrObjectNotFound indicates that a referenced object does not exist.
	ErrObjectNotFound = errors.New("object not found")

	// ErrInvalidState indicates that an operation is not allowed in the
	// object's current lifecycle state.
	ErrInvalidState = errors.New("invalid state")

	// ErrValueIsInvalid indicates that a supplied value failed validation.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsOutOfRange indicates that a numeric value is outside its bounds.
	ErrValueIsOutOfRange = errors.New("value is out of range")

	// ErrValueIsRequired indicates that a required value was not supplied.
	ErrValueIsRequired = errors.New("value is required")

	// ErrInternal indicates an unexpected failure, typically store access.
	// The underlying detail is logged server-side and never formatted into
	// the message returned to callers.
	ErrInternal = errors.New("internal error")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError reports that the object identified by ID, referenced
// through parameter ParamName, does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping the
// underlying cause, typically a store error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InvalidStateError reports that the object named by ParamName is in a state
// that does not permit the attempted operation.
type InvalidStateError struct {
	ParamName string
	State     string
	Cause     error
}

// NewInvalidStateError creates an InvalidStateError without a cause.
func NewInvalidStateError(paramName, state string) *InvalidStateError {
	return &InvalidStateError{ParamName: paramName, State: state}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping the
// underlying cause.
func NewInvalidStateErrorWithCause(paramName, state string, cause error) *InvalidStateError {
	return &InvalidStateError{ParamName: paramName, State: state, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, state is: %s (cause: %v)",
			ErrInvalidState, e.ParamName, e.State, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s is %s", ErrInvalidState, e.ParamName, e.State))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// ValueIsInvalidError reports that the value named by ParamName is invalid.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping the
// underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports that Value for ParamName lies outside the
// inclusive range [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping
// the underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %v)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports that the value named by ParamName is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping the
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InternalError wraps an unexpected failure. Error() deliberately stays
// generic: the cause is meant for server-side logs, not for callers.
type InternalError struct {
	Cause error
}

// NewInternalError creates an InternalError wrapping the underlying cause.
func NewInternalError(cause error) *InternalError {
	return &InternalError{Cause: cause}
}

func (e *InternalError) Error() string {
	return ErrInternal.Error()
}

func (e *InternalError) Unwrap() error {
	return ErrInternal
}
