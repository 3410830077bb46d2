// Package errors provides typed error values for sealpost.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Document errors: the front matter is missing or unterminated (ErrMalformedDocument)
//   - Precondition errors: the post is not marked secret or has no body (ErrPrecondition)
//   - Password errors: interactive entry failed validation (ErrEmptyPassword, ErrPasswordMismatch)
//   - Crypto errors: internal invariant violations and decryption failures
//
// Specific errors wrap their category, so both of these hold:
//
//	errors.Is(err, kerrors.ErrNotSecret)
//	errors.Is(err, kerrors.ErrPrecondition)
//
// # Usage
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("reading %s: %w", path, kerrors.ErrFileNotFound)
package errors
