// Package errs provides standardized error types for the storefront
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping used throughout the codebase.
//
// The package defines one type per error kind:
//   - ObjectNotFoundError: a referenced row is absent
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or out of its domain
//   - ConflictError: a uniqueness or referential-integrity violation
//   - StorageFailureError: an image upload or delete against external
//     storage failed
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct with fields describing the failure
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() to the sentinel
//
// Database errors that abort a transaction are not given their own type;
// they are wrapped with fmt.Errorf("...: %w", err) and propagate through
// rollback paths unchanged.
package errs
