// Package errs provides the standardized error types shared by the escrow
// service layers.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value broke a domain rule
//   - ValueIsOutOfRangeError: a value fell outside an allowed range
//   - ObjectNotFoundError: a repository lookup found nothing
//   - ObjectExistsError: an insert collided with an existing id
//   - VersionIsInvalidError: an optimistic update lost against a concurrent write
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works across layers
package errs
