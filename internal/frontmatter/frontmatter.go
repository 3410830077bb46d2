package frontmatter

import (
	"strings"

	kerrors "github.com/PolarWolf314/sealpost/internal/errors"
)

// Delimiter opens and closes the front matter block.
const Delimiter = "---"

// Document is a post split into front matter and body.
type Document struct {
	// Header is the front matter including both delimiters.
	Header string
	// Body is every byte after the header.
	Body string
}

// Split separates raw post text into its header and body.
//
// The closing delimiter is the first "---" at or after the end of the opening
// one. A single "\n" or "\r\n" directly after it belongs to the header.
func Split(text string) (Document, error) {
	if !strings.HasPrefix(text, Delimiter) {
		return Document{}, kerrors.ErrMissingFrontMatter
	}

	idx := strings.Index(text[len(Delimiter):], Delimiter)
	if idx < 0 {
		return Document{}, kerrors.ErrUnterminatedFrontMatter
	}
	end := len(Delimiter) + idx + len(Delimiter)

	switch {
	case strings.HasPrefix(text[end:], "\r\n"):
		end += 2
	case strings.HasPrefix(text[end:], "\n"):
		end++
	}

	return Document{Header: text[:end], Body: text[end:]}, nil
}

// Join reassembles the document.
func (d Document) Join() string {
	return d.Header + d.Body
}

// HasBody reports whether the body has any non-whitespace content.
func (d Document) HasBody() bool {
	return strings.TrimSpace(d.Body) != ""
}

// inner returns the text between the two delimiters.
func inner(header string) string {
	s := strings.TrimPrefix(header, Delimiter)
	if i := strings.LastIndex(s, Delimiter); i >= 0 {
		s = s[:i]
	}
	return s
}
