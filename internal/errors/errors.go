package errors

import (
	"errors"
	"fmt"
)

// Document errors indicate the post could not be split into front matter and body.
var (
	// ErrMalformedDocument is the category for every front matter parsing failure.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrMissingFrontMatter indicates the document does not start with "---".
	ErrMissingFrontMatter = fmt.Errorf("%w: file does not start with front matter (---)", ErrMalformedDocument)

	// ErrUnterminatedFrontMatter indicates no closing "---" follows the opening one.
	ErrUnterminatedFrontMatter = fmt.Errorf("%w: front matter is not terminated by ---", ErrMalformedDocument)
)

// Precondition errors are raised before any cryptographic work happens.
var (
	// ErrPrecondition is the category for validation gates on the document.
	ErrPrecondition = errors.New("precondition failed")

	// ErrNotSecret indicates the front matter does not carry `secret: true`.
	ErrNotSecret = fmt.Errorf("%w: post does not have `secret: true` in front matter", ErrPrecondition)

	// ErrEmptyBody indicates the post body is empty or only whitespace.
	ErrEmptyBody = fmt.Errorf("%w: post body is empty", ErrPrecondition)
)

// Password errors indicate no usable password could be obtained.
var (
	// ErrEmptyPassword indicates the supplied password was empty.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrPasswordMismatch indicates the confirmation entry did not match.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrNoPasswordSource indicates every configured source came up empty.
	ErrNoPasswordSource = errors.New("no password available")
)

// Cryptographic errors.
var (
	// ErrInvalidSaltLength indicates a salt that is not exactly 16 bytes.
	ErrInvalidSaltLength = errors.New("invalid salt length")

	// ErrRandomSource indicates the random source could not supply enough bytes.
	ErrRandomSource = errors.New("failed to read from random source")

	// ErrInvalidBlob indicates the encoded body is not a well-formed blob.
	ErrInvalidBlob = errors.New("invalid encrypted blob")

	// ErrDecryptFailed indicates authentication failed: wrong password or tampered data.
	ErrDecryptFailed = errors.New("failed to decrypt post (wrong password or corrupted data)")
)

// File errors.
var (
	// ErrFileNotFound indicates the post could not be located.
	ErrFileNotFound = errors.New("file not found")

	// ErrConfigExists indicates a config file is already present.
	ErrConfigExists = errors.New("config file already exists")
)
