// Package crypto implements the field-level encryption applied to sensitive
// quote request fields before they reach the document store.
//
// The construction is AES-256-CTR with a per-value random 16-byte iv. Both iv
// and ciphertext are hex-encoded into an {iv, content} envelope, which is the
// exact shape persisted in the database. The 256-bit key is a single static
// process secret; key rotation is out of scope.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/glowclean/quote-api/models"
)

// Sentinel errors returned by [NewFieldCipher] and [FieldCipher.Decrypt].
var (
	// ErrInvalidKeyLength is returned when the supplied key is not exactly
	// 32 bytes (256 bits).
	ErrInvalidKeyLength = errors.New("field cipher key must be 32 bytes")

	// ErrMalformedEnvelope is returned when an envelope's iv or content is
	// not valid hex, or the iv does not decode to 16 bytes.
	ErrMalformedEnvelope = errors.New("malformed encrypted envelope")
)

const ivLength = 16

// fieldCipher is the private implementation of [FieldCipher].
type fieldCipher struct {
	block cipher.Block
}

// NewFieldCipher constructs a [FieldCipher] from a 32-byte AES key.
// The key is typically the hex-decoded process secret from configuration.
// Returns [ErrInvalidKeyLength] if the key has the wrong size.
func NewFieldCipher(key []byte) (FieldCipher, error) {
	if len(key) != 32 {
		return nil, ErrInvalidKeyLength
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating aes cipher: %w", err)
	}

	return &fieldCipher{block: block}, nil
}

// Encrypt implements [FieldCipher]. It reads a fresh 16-byte iv from the OS
// CSPRNG, runs the plaintext through an AES-CTR stream keyed by the process
// key, and returns both parts hex-encoded. Returns an error only if the
// random read fails.
func (c *fieldCipher) Encrypt(plaintext string) (models.Envelope, error) {
	iv := make([]byte, ivLength)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return models.Envelope{}, fmt.Errorf("generating iv: %w", err)
	}

	content := make([]byte, len(plaintext))
	cipher.NewCTR(c.block, iv).XORKeyStream(content, []byte(plaintext))

	return models.Envelope{
		IV:      hex.EncodeToString(iv),
		Content: hex.EncodeToString(content),
	}, nil
}

// Decrypt implements [FieldCipher]. It reconstructs the CTR stream from the
// stored iv and returns the original plaintext. Returns
// [ErrMalformedEnvelope] (wrapped) when the envelope cannot be decoded.
func (c *fieldCipher) Decrypt(envelope models.Envelope) (string, error) {
	iv, err := hex.DecodeString(envelope.IV)
	if err != nil {
		return "", fmt.Errorf("%w: decoding iv: %w", ErrMalformedEnvelope, err)
	}
	if len(iv) != ivLength {
		return "", fmt.Errorf("%w: iv is %d bytes, want %d", ErrMalformedEnvelope, len(iv), ivLength)
	}

	content, err := hex.DecodeString(envelope.Content)
	if err != nil {
		return "", fmt.Errorf("%w: decoding content: %w", ErrMalformedEnvelope, err)
	}

	plaintext := make([]byte, len(content))
	cipher.NewCTR(c.block, iv).XORKeyStream(plaintext, content)

	return string(plaintext), nil
}
