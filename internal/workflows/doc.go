// Package workflows provides the high-level operations behind sealpost's
// commands.
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Builds the password sources from flags and config
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Reading the post and splitting its front matter
//   - Validating prerequisites (secret marker, non-empty body)
//   - Obtaining the password
//   - Performing the cryptographic operation
//   - Writing the result and recording the audit trail entry
//
// # Available Workflows
//
//   - Encrypt: seals a post's body in place
//   - Seal: the same pipeline on in-memory text
//   - Decrypt: opens a sealed post without modifying it
//   - Open: the same on in-memory text
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package. Use
// errors.Is() to check for specific conditions:
//
//	result, err := workflows.Encrypt(ctx, opts)
//	if errors.Is(err, kerrors.ErrPrecondition) {
//	    // The post was left untouched.
//	}
//
// Every failure happens before the file is replaced, so a failed run leaves
// the post byte-for-byte unchanged.
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// It is checked before key derivation and before the write. Key derivation
// itself runs to completion once started.
package workflows
