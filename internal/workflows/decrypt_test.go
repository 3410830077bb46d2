package workflows

import (
	"context"
	"errors"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/sealpost/internal/errors"
	"github.com/PolarWolf314/sealpost/internal/password"
)

func sealedScenario(t *testing.T) string {
	t.Helper()
	result, err := Seal(context.Background(), scenarioPost, EncryptOptions{StrictSecret: true})
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	return result.Output
}

func TestOpen_RoundTrip(t *testing.T) {
	sealed := sealedScenario(t)

	result, err := Open(context.Background(), sealed, password.Static("hunter2"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if result.Header != "---\nsecret: true\n---\n" {
		t.Errorf("Header = %q", result.Header)
	}
	if result.Body != "Hello world\n" {
		t.Errorf("Body = %q", result.Body)
	}
}

func TestOpen_WrongPassword(t *testing.T) {
	_, err := Open(context.Background(), sealedScenario(t), password.Static("hunter3"))
	if !errors.Is(err, kerrors.ErrDecryptFailed) {
		t.Fatalf("expected ErrDecryptFailed, got %v", err)
	}
}

func TestOpen_NotSealed(t *testing.T) {
	src := &countingSource{password: "pw"}

	_, err := Open(context.Background(), "---\nsecret: true\n---\nplain text body\n", src)
	if !errors.Is(err, kerrors.ErrInvalidBlob) {
		t.Fatalf("expected ErrInvalidBlob, got %v", err)
	}
	if src.calls != 0 {
		t.Error("password requested for a post that is not sealed")
	}
}

func TestDecrypt_DoesNotModifyFile(t *testing.T) {
	sealed := sealedScenario(t)
	path := writePost(t, sealed)

	result, err := Decrypt(context.Background(), DecryptOptions{Path: path, Password: password.Static("hunter2")})
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if !strings.HasSuffix(result.Text(), "Hello world\n") {
		t.Errorf("Text() = %q", result.Text())
	}
	if got := readPost(t, path); got != sealed {
		t.Error("decrypt modified the file")
	}
}
