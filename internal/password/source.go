package password

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	kerrors "github.com/PolarWolf314/sealpost/internal/errors"
	"github.com/PolarWolf314/sealpost/internal/utils"
)

// Labels returned by Describe for the built-in sources.
const (
	FromHeader = "header"
	FromEnv    = "env"
	FromStdin  = "stdin"
	FromPrompt = "prompt"
)

// Source supplies a password.
type Source interface {
	Obtain() (string, error)
}

// Describe returns a short label for src, used in logs and the audit trail.
func Describe(src Source) string {
	if s, ok := src.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", src)
}

// Static is a fixed password, such as one read from the front matter.
type Static string

func (s Static) Obtain() (string, error) {
	if s == "" {
		return "", kerrors.ErrEmptyPassword
	}
	return string(s), nil
}

func (s Static) String() string { return FromHeader }

// EnvSource reads the password from an environment variable.
type EnvSource struct {
	Name string

	// Lookup defaults to os.LookupEnv.
	Lookup func(string) (string, bool)
}

func (e EnvSource) Obtain() (string, error) {
	if e.Name == "" {
		return "", kerrors.ErrNoPasswordSource
	}
	lookup := e.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	value, ok := lookup(e.Name)
	if !ok || value == "" {
		return "", fmt.Errorf("%w: %s is not set", kerrors.ErrNoPasswordSource, e.Name)
	}
	return value, nil
}

func (e EnvSource) String() string { return FromEnv }

// ReaderSource reads the first line of R, for passwords piped on stdin.
type ReaderSource struct {
	R io.Reader
}

func (r ReaderSource) Obtain() (string, error) {
	line, err := bufio.NewReader(r.R).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading password: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", kerrors.ErrEmptyPassword
	}
	return line, nil
}

func (r ReaderSource) String() string { return FromStdin }

// PromptSource asks for the password twice without echo.
type PromptSource struct {
	Prompt        string
	ConfirmPrompt string

	// Confirm requires the second entry. Decryption only asks once.
	Confirm bool

	// Read defaults to utils.ReadPassword.
	Read func(prompt string) ([]byte, error)
}

// NewPromptSource returns a confirming prompt on the controlling terminal.
func NewPromptSource() *PromptSource {
	return &PromptSource{
		Prompt:        "Password: ",
		ConfirmPrompt: "Confirm password: ",
		Confirm:       true,
		Read:          utils.ReadPassword,
	}
}

func (p *PromptSource) Obtain() (string, error) {
	read := p.Read
	if read == nil {
		read = utils.ReadPassword
	}

	first, err := read(p.Prompt)
	if err != nil {
		return "", err
	}
	defer zeroBytes(first)

	if len(first) == 0 {
		return "", kerrors.ErrEmptyPassword
	}
	if !p.Confirm {
		return string(first), nil
	}

	second, err := read(p.ConfirmPrompt)
	if err != nil {
		return "", err
	}
	defer zeroBytes(second)

	if !bytes.Equal(first, second) {
		return "", kerrors.ErrPasswordMismatch
	}
	return string(first), nil
}

func (p *PromptSource) String() string { return FromPrompt }

// Chain tries each source in order.
type Chain []Source

func (c Chain) Obtain() (string, error) {
	pw, _, err := c.resolve()
	return pw, err
}

func (c Chain) resolve() (string, string, error) {
	for _, src := range c {
		pw, err := src.Obtain()
		if errors.Is(err, kerrors.ErrNoPasswordSource) {
			continue
		}
		if err != nil {
			return "", Describe(src), err
		}
		return pw, Describe(src), nil
	}
	return "", "", kerrors.ErrNoPasswordSource
}

// Resolve obtains a password from src and reports which source supplied it.
func Resolve(src Source) (string, string, error) {
	if c, ok := src.(Chain); ok {
		return c.resolve()
	}
	pw, err := src.Obtain()
	return pw, Describe(src), err
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
