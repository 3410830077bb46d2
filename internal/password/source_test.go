package password

import (
	"errors"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/sealpost/internal/errors"
)

// scriptedReader returns the given entries in order, recording prompts.
func scriptedReader(entries ...string) (func(string) ([]byte, error), *[]string) {
	var prompts []string
	return func(prompt string) ([]byte, error) {
		prompts = append(prompts, prompt)
		if len(entries) == 0 {
			return nil, errors.New("no more input")
		}
		next := entries[0]
		entries = entries[1:]
		return []byte(next), nil
	}, &prompts
}

func TestPromptSource(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		want    string
		wantErr error
	}{
		{"matching entries", []string{"hunter2", "hunter2"}, "hunter2", nil},
		{"empty first entry", []string{"", ""}, "", kerrors.ErrEmptyPassword},
		{"mismatch", []string{"hunter2", "hunter3"}, "", kerrors.ErrPasswordMismatch},
		{"unicode", []string{"pässwörd", "pässwörd"}, "pässwörd", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			read, _ := scriptedReader(tt.entries...)
			src := NewPromptSource()
			src.Read = read

			got, err := src.Obtain()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Obtain error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Obtain = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPromptSourceEmptyStopsBeforeConfirm(t *testing.T) {
	read, prompts := scriptedReader("", "")
	src := NewPromptSource()
	src.Read = read

	if _, err := src.Obtain(); !errors.Is(err, kerrors.ErrEmptyPassword) {
		t.Fatalf("expected ErrEmptyPassword, got %v", err)
	}
	if len(*prompts) != 1 {
		t.Errorf("expected a single prompt, got %v", *prompts)
	}
}

func TestPromptSourceWithoutConfirm(t *testing.T) {
	read, prompts := scriptedReader("secret")
	src := &PromptSource{Prompt: "Password: ", Read: read}

	got, err := src.Obtain()
	if err != nil {
		t.Fatalf("Obtain failed: %v", err)
	}
	if got != "secret" {
		t.Errorf("Obtain = %q, want %q", got, "secret")
	}
	if len(*prompts) != 1 {
		t.Errorf("expected one prompt, got %v", *prompts)
	}
}

func TestEnvSource(t *testing.T) {
	env := map[string]string{"SET": "from-env", "BLANK": ""}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	got, err := EnvSource{Name: "SET", Lookup: lookup}.Obtain()
	if err != nil || got != "from-env" {
		t.Fatalf("Obtain = %q, %v", got, err)
	}

	for _, name := range []string{"BLANK", "MISSING", ""} {
		_, err := EnvSource{Name: name, Lookup: lookup}.Obtain()
		if !errors.Is(err, kerrors.ErrNoPasswordSource) {
			t.Errorf("%q: expected ErrNoPasswordSource, got %v", name, err)
		}
	}
}

func TestReaderSource(t *testing.T) {
	got, err := ReaderSource{R: strings.NewReader("piped pw\nignored\n")}.Obtain()
	if err != nil || got != "piped pw" {
		t.Fatalf("Obtain = %q, %v", got, err)
	}

	got, err = ReaderSource{R: strings.NewReader("no newline")}.Obtain()
	if err != nil || got != "no newline" {
		t.Fatalf("Obtain = %q, %v", got, err)
	}

	if _, err := (ReaderSource{R: strings.NewReader("\n")}).Obtain(); !errors.Is(err, kerrors.ErrEmptyPassword) {
		t.Errorf("expected ErrEmptyPassword, got %v", err)
	}
}

func TestStatic(t *testing.T) {
	if got, err := Static("pw").Obtain(); err != nil || got != "pw" {
		t.Fatalf("Obtain = %q, %v", got, err)
	}
	if _, err := Static("").Obtain(); !errors.Is(err, kerrors.ErrEmptyPassword) {
		t.Errorf("expected ErrEmptyPassword, got %v", err)
	}
}

func TestChainResolve(t *testing.T) {
	noEnv := EnvSource{Name: "UNSET", Lookup: func(string) (string, bool) { return "", false }}
	withEnv := EnvSource{Name: "SET", Lookup: func(string) (string, bool) { return "env-pw", true }}

	t.Run("falls through to prompt", func(t *testing.T) {
		read, _ := scriptedReader("typed", "typed")
		prompt := NewPromptSource()
		prompt.Read = read

		pw, from, err := Resolve(Chain{noEnv, prompt})
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if pw != "typed" || from != "prompt" {
			t.Errorf("Resolve = %q from %q", pw, from)
		}
	})

	t.Run("env wins over prompt", func(t *testing.T) {
		read, prompts := scriptedReader()
		prompt := NewPromptSource()
		prompt.Read = read

		pw, from, err := Resolve(Chain{withEnv, prompt})
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if pw != "env-pw" || from != "env" {
			t.Errorf("Resolve = %q from %q", pw, from)
		}
		if len(*prompts) != 0 {
			t.Errorf("prompt should not be used, got %v", *prompts)
		}
	})

	t.Run("validation error stops the chain", func(t *testing.T) {
		read, _ := scriptedReader("a", "b")
		prompt := NewPromptSource()
		prompt.Read = read

		_, _, err := Resolve(Chain{prompt, withEnv})
		if !errors.Is(err, kerrors.ErrPasswordMismatch) {
			t.Fatalf("expected ErrPasswordMismatch, got %v", err)
		}
	})

	t.Run("nothing available", func(t *testing.T) {
		_, _, err := Resolve(Chain{noEnv})
		if !errors.Is(err, kerrors.ErrNoPasswordSource) {
			t.Fatalf("expected ErrNoPasswordSource, got %v", err)
		}
	})

	t.Run("single source", func(t *testing.T) {
		pw, from, err := Resolve(Static("hunter2"))
		if err != nil || pw != "hunter2" || from != "header" {
			t.Fatalf("Resolve = %q from %q, %v", pw, from, err)
		}
	})
}
