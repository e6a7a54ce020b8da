// Package errs provides the shared error types of the coffee shop backend.
//
// Every type follows the same shape:
//   - a sentinel error variable (e.g., ErrValueIsRequired) usable with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without cause
//   - Unwrap returning the sentinel
//
// The HTTP adapter relies on the sentinels to classify failures, so domain code
// should prefer these types over ad hoc errors for input problems.
package errs
