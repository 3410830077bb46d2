package secrets

import (
	"encoding/base64"
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/sealpost/internal/errors"
)

// MinBlobSize is the size of a blob sealing an empty payload.
const MinBlobSize = SaltSize + NonceSize + TagSize

// Blob is the unit of interchange between the sealing and opening sides.
type Blob struct {
	Salt  []byte
	Nonce []byte
	// Sealed is the ciphertext with the GCM tag appended.
	Sealed []byte
}

// Bytes returns salt || nonce || ciphertext || tag.
func (b Blob) Bytes() []byte {
	out := make([]byte, 0, len(b.Salt)+len(b.Nonce)+len(b.Sealed))
	out = append(out, b.Salt...)
	out = append(out, b.Nonce...)
	return append(out, b.Sealed...)
}

// Encode returns the standard, padded base-64 form of the blob.
func (b Blob) Encode() string {
	return base64.StdEncoding.EncodeToString(b.Bytes())
}

// Ciphertext returns the encrypted body without the tag.
func (b Blob) Ciphertext() []byte {
	return b.Sealed[:len(b.Sealed)-TagSize]
}

// Tag returns the authentication tag.
func (b Blob) Tag() []byte {
	return b.Sealed[len(b.Sealed)-TagSize:]
}

// ParseBlob decodes the base-64 text of a blob. Surrounding whitespace,
// including the trailing line break of a sealed post, is ignored.
func ParseBlob(encoded string) (Blob, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return Blob{}, fmt.Errorf("%w: %v", kerrors.ErrInvalidBlob, err)
	}
	if len(raw) < MinBlobSize {
		return Blob{}, fmt.Errorf("%w: expected at least %d bytes, got %d bytes", kerrors.ErrInvalidBlob, MinBlobSize, len(raw))
	}

	return Blob{
		Salt:   raw[:SaltSize],
		Nonce:  raw[SaltSize : SaltSize+NonceSize],
		Sealed: raw[SaltSize+NonceSize:],
	}, nil
}
