package workflows

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/PolarWolf314/sealpost/internal/audit"
	kerrors "github.com/PolarWolf314/sealpost/internal/errors"
	"github.com/PolarWolf314/sealpost/internal/frontmatter"
	"github.com/PolarWolf314/sealpost/internal/password"
	"github.com/PolarWolf314/sealpost/internal/secrets"
	"github.com/PolarWolf314/sealpost/internal/utils"
)

// EncryptOptions configures the encrypt workflow.
type EncryptOptions struct {
	// Path is the post to seal in place.
	Path string

	// Password is consulted when the front matter has no password field.
	// If nil, a post without one fails with ErrNoPasswordSource.
	Password password.Source

	// Cipher seals the body. If nil, secrets.NewCipher() is used.
	Cipher *secrets.Cipher

	// StrictSecret selects YAML-aware detection of `secret: true`.
	StrictSecret bool

	// DryRun runs every check and obtains the password without writing.
	DryRun bool

	// Audit receives an entry after a successful write.
	Audit audit.Trail

	// BeforeEncrypt, if set, is called with the password source label once
	// the password is known and before the key is derived.
	BeforeEncrypt func(passwordSource string)
}

// EncryptResult contains the outcome of an encrypt operation.
type EncryptResult struct {
	// Path is the absolute path of the post.
	Path string

	// Output is the sealed post text. Empty for dry runs.
	Output string

	// PasswordSource names where the password came from: header, env, prompt or stdin.
	PasswordSource string

	// BodyBytes is the plaintext body size.
	BodyBytes int

	// BlobBytes is the decoded blob size, always BodyBytes + 44. Zero for dry runs.
	BlobBytes int

	// DryRun indicates whether this was a dry-run (no files modified).
	DryRun bool

	// AuditErr is set when the audit entry could not be written. The post
	// is sealed regardless.
	AuditErr error
}

// PasswordFromHeader reports whether the front matter supplied the password.
func (r *EncryptResult) PasswordFromHeader() bool {
	return r.PasswordSource == password.FromHeader
}

// Encrypt seals the body of the post at opts.Path.
//
// The post is read, split into front matter and body, and checked for
// `secret: true` and a non-empty body before any password is requested.
// A `password:` field in the front matter is used and removed; otherwise
// opts.Password is asked. The file is overwritten only after encryption
// succeeds, by atomic rename, with the stripped front matter followed by
// the base-64 blob and a line break.
//
// Returns ErrFileNotFound if the post does not exist.
// Returns an ErrMalformedDocument error if the front matter is missing or unterminated.
// Returns ErrNotSecret or ErrEmptyBody (both ErrPrecondition) from the validation gates.
// Returns ErrEmptyPassword or ErrPasswordMismatch from interactive entry.
func Encrypt(ctx context.Context, opts EncryptOptions) (*EncryptResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := filepath.Abs(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", opts.Path, err)
	}

	text, mode, err := utils.ReadTextFile(path)
	if err != nil {
		if utils.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", kerrors.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	result, err := Seal(ctx, text, opts)
	if err != nil {
		return nil, err
	}
	result.Path = path

	if opts.DryRun {
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := utils.WriteFileAtomic(path, []byte(result.Output), mode); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}

	entry := audit.NewEntry("encrypt")
	entry.File = path
	entry.BodyBytes = result.BodyBytes
	entry.BlobBytes = result.BlobBytes
	entry.PasswordSource = result.PasswordSource
	result.AuditErr = opts.Audit.Record(entry)

	return result, nil
}

// Seal runs the encryption pipeline on post text in memory. It ignores
// opts.Path and opts.Audit. For dry runs the result has no Output.
func Seal(ctx context.Context, text string, opts EncryptOptions) (*EncryptResult, error) {
	doc, err := frontmatter.Split(text)
	if err != nil {
		return nil, err
	}

	if !frontmatter.IsSecret(doc.Header, opts.StrictSecret) {
		return nil, kerrors.ErrNotSecret
	}
	if !doc.HasBody() {
		return nil, kerrors.ErrEmptyBody
	}

	header, headerPassword, ok := frontmatter.ExtractPassword(doc.Header)

	src := opts.Password
	if ok {
		src = password.Static(headerPassword)
	}
	if src == nil {
		return nil, kerrors.ErrNoPasswordSource
	}

	pw, from, err := password.Resolve(src)
	if err != nil {
		return nil, err
	}
	if opts.BeforeEncrypt != nil {
		opts.BeforeEncrypt(from)
	}

	result := &EncryptResult{
		PasswordSource: from,
		BodyBytes:      len(doc.Body),
		DryRun:         opts.DryRun,
	}
	if opts.DryRun {
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := opts.Cipher
	if c == nil {
		c = secrets.NewCipher()
	}
	blob, err := c.Seal([]byte(doc.Body), pw)
	if err != nil {
		return nil, fmt.Errorf("encrypting post body: %w", err)
	}

	sealed := frontmatter.Document{Header: header, Body: blob.Encode() + "\n"}
	result.Output = sealed.Join()
	result.BlobBytes = len(blob.Bytes())

	return result, nil
}
