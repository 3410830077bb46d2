package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"runtime"

	kerrors "github.com/PolarWolf314/sealpost/internal/errors"

	"github.com/tink-crypto/tink-go/v2/aead/subtle"
	"golang.org/x/crypto/pbkdf2"
)

// Protocol constants shared with the decrypting side.
const (
	SaltSize   = 16
	NonceSize  = 12
	TagSize    = 16
	KeySize    = 32 // AES-256
	Iterations = 100_000
)

// DeriveKey stretches password into a 32-byte key with PBKDF2-HMAC-SHA256.
// The salt must be exactly SaltSize bytes.
func DeriveKey(password string, salt []byte) ([]byte, error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d bytes", kerrors.ErrInvalidSaltLength, SaltSize, len(salt))
	}
	return pbkdf2.Key([]byte(password), salt, Iterations, KeySize, sha256.New), nil
}

// Cipher seals post bodies.
type Cipher struct {
	// Rand supplies salts and nonces. Nil means crypto/rand.
	Rand io.Reader
}

// NewCipher returns a Cipher backed by the system's secure random source.
func NewCipher() *Cipher {
	return &Cipher{Rand: rand.Reader}
}

func (c *Cipher) random() io.Reader {
	if c == nil || c.Rand == nil {
		return rand.Reader
	}
	return c.Rand
}

// Encrypt seals body under a key derived from password with a fresh salt and
// nonce, returning the base-64 encoded blob.
func (c *Cipher) Encrypt(body []byte, password string) (string, error) {
	blob, err := c.Seal(body, password)
	if err != nil {
		return "", err
	}
	return blob.Encode(), nil
}

// Seal is Encrypt without the final encoding step.
func (c *Cipher) Seal(body []byte, password string) (Blob, error) {
	salt, err := readRandom(c.random(), SaltSize)
	if err != nil {
		return Blob{}, fmt.Errorf("generating salt: %w", err)
	}
	nonce, err := readRandom(c.random(), NonceSize)
	if err != nil {
		return Blob{}, fmt.Errorf("generating nonce: %w", err)
	}

	key, err := DeriveKey(password, salt)
	if err != nil {
		return Blob{}, err
	}
	defer zeroBytes(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return Blob{}, fmt.Errorf("creating AES cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return Blob{}, fmt.Errorf("creating GCM: %w", err)
	}

	return Blob{
		Salt:   salt,
		Nonce:  nonce,
		Sealed: gcm.Seal(nil, nonce, body, nil),
	}, nil
}

// Decrypt opens an encoded blob produced by Encrypt.
// Returns ErrInvalidBlob for malformed input and ErrDecryptFailed when the
// password is wrong or the data was modified.
func Decrypt(encoded string, password string) ([]byte, error) {
	blob, err := ParseBlob(encoded)
	if err != nil {
		return nil, err
	}
	return blob.Open(password)
}

// Open derives the key from password and the blob's salt and authenticates
// and decrypts the payload.
func (b Blob) Open(password string) ([]byte, error) {
	key, err := DeriveKey(password, b.Salt)
	if err != nil {
		return nil, err
	}
	defer zeroBytes(key)

	aead, err := subtle.NewAESGCM(key)
	if err != nil {
		return nil, fmt.Errorf("creating AES-GCM: %w", err)
	}

	// Tink expects iv || ciphertext || tag, which is the blob minus the salt.
	plaintext, err := aead.Decrypt(b.Bytes()[SaltSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrDecryptFailed, err)
	}
	return plaintext, nil
}

func readRandom(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrRandomSource, err)
	}
	return buf, nil
}

// zeroBytes overwrites a byte slice with zeros.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
