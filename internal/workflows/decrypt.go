package workflows

import (
	"context"
	"fmt"
	"path/filepath"

	kerrors "github.com/PolarWolf314/sealpost/internal/errors"
	"github.com/PolarWolf314/sealpost/internal/frontmatter"
	"github.com/PolarWolf314/sealpost/internal/password"
	"github.com/PolarWolf314/sealpost/internal/secrets"
	"github.com/PolarWolf314/sealpost/internal/utils"
)

// DecryptOptions configures the decrypt workflow.
type DecryptOptions struct {
	// Path is the sealed post. It is never modified.
	Path string

	// Password supplies the password the post was sealed with.
	Password password.Source
}

// DecryptResult contains the opened post.
type DecryptResult struct {
	Path   string
	Header string
	Body   string
}

// Text returns the front matter followed by the plaintext body.
func (r *DecryptResult) Text() string {
	return frontmatter.Document{Header: r.Header, Body: r.Body}.Join()
}

// Decrypt opens a sealed post without writing anything, following the same
// protocol as the browser-side decryptor.
//
// Returns ErrInvalidBlob if the body is not a blob and ErrDecryptFailed if
// the password is wrong or the blob was modified.
func Decrypt(ctx context.Context, opts DecryptOptions) (*DecryptResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := filepath.Abs(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", opts.Path, err)
	}

	text, _, err := utils.ReadTextFile(path)
	if err != nil {
		if utils.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", kerrors.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	result, err := Open(ctx, text, opts.Password)
	if err != nil {
		return nil, err
	}
	result.Path = path
	return result, nil
}

// Open decrypts sealed post text in memory.
func Open(ctx context.Context, text string, src password.Source) (*DecryptResult, error) {
	doc, err := frontmatter.Split(text)
	if err != nil {
		return nil, err
	}

	blob, err := secrets.ParseBlob(doc.Body)
	if err != nil {
		return nil, err
	}

	if src == nil {
		return nil, kerrors.ErrNoPasswordSource
	}
	pw, _, err := password.Resolve(src)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := blob.Open(pw)
	if err != nil {
		return nil, err
	}

	return &DecryptResult{Header: doc.Header, Body: string(body)}, nil
}
