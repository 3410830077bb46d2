// Package secrets provides the password-based encryption used to seal posts.
//
// # Protocol
//
// The constants below are fixed by the browser-side decryptor and are not
// configurable:
//
//   - Key derivation: PBKDF2-HMAC-SHA256, 100,000 iterations, 32-byte key
//   - Cipher: AES-256-GCM, 12-byte nonce, 16-byte tag, no associated data
//   - Salt: 16 random bytes per encryption
//
// # Blob Layout
//
// A sealed body is a single standard base-64 string (with padding) of
//
//	salt[16] || nonce[12] || ciphertext[len(body)] || tag[16]
//
// The offsets are implicit. The Web Crypto API can decrypt it by importing
// the password as PBKDF2 key material, deriving an AES-GCM key with the salt,
// and calling decrypt with the nonce as iv on the remaining bytes.
//
// # Randomness
//
// Cipher reads the salt and nonce from its Rand reader, which defaults to
// crypto/rand. Callers never supply a salt or nonce directly. Tests can
// substitute a deterministic reader.
//
// # Decryption
//
// Decrypt is the counterpart used to verify sealed posts. It opens the blob
// with Tink's AES-GCM primitive, an implementation independent of the one
// used for sealing, so a round trip exercises the wire format rather than a
// single library's conventions.
package secrets
