// Package errs provides standardized error types for the EffDel backend core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: For when a referenced order, product, or request cannot be found
//   - InvalidStateError: For when an operation is disallowed in the current lifecycle state
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a numeric value is outside its allowed bounds
//   - InternalError: For store access failures surfaced to callers with a generic message
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach to error handling improves error reporting,
// makes error handling more consistent, and enables better error classification
// and handling throughout the application.
package errs
