package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	kerrors "github.com/PolarWolf314/sealpost/internal/errors"
	"github.com/PolarWolf314/sealpost/internal/ui"
)

// reportError prints err with a hint for the errors users can fix.
func reportError(w io.Writer, err error) {
	fmt.Fprintln(w, ui.Failed(err.Error()))
	if hint := hintFor(err); hint != "" {
		fmt.Fprintln(w, ui.Hint(hint))
	}
}

func hintFor(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrMissingFrontMatter):
		return "The file must begin with a " + ui.Code.Sprint("---") + " front matter block"
	case errors.Is(err, kerrors.ErrUnterminatedFrontMatter):
		return "Close the front matter with a " + ui.Code.Sprint("---") + " line"
	case errors.Is(err, kerrors.ErrNotSecret):
		return "Add " + ui.Highlight.Sprint("secret: true") + " to the front matter to encrypt this post"
	case errors.Is(err, kerrors.ErrEmptyBody):
		return "Write the post before encrypting it"
	case errors.Is(err, kerrors.ErrNoPasswordSource):
		return "Add a " + ui.Highlight.Sprint("password:") + " field, set the password environment variable, or pass " + ui.Flag.Sprint("--password-stdin")
	case errors.Is(err, kerrors.ErrInvalidBlob):
		return "This post does not look encrypted"
	case errors.Is(err, kerrors.ErrConfigExists):
		return "Use " + ui.Flag.Sprint("--force") + " to overwrite it"
	case errors.Is(err, context.Canceled):
		return "The file was not modified"
	}
	return ""
}
