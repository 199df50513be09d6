package crypto

import "github.com/glowclean/quote-api/models"

// FieldCipher encrypts and decrypts individual document field values.
// It knows nothing about HTTP, storage, or which fields are sensitive;
// its single job is turning a plaintext string into an [models.Envelope]
// and back.
//
// Implementations must produce a fresh random iv on every Encrypt call, so
// encrypting the same plaintext twice never yields the same envelope.
type FieldCipher interface {
	// Encrypt encrypts plaintext under the process key with a fresh random
	// 16-byte iv and returns the hex-encoded envelope.
	Encrypt(plaintext string) (models.Envelope, error)

	// Decrypt reverses Encrypt. It fails on malformed hex or an iv of the
	// wrong length. Callers must treat a decryption failure as a hard error:
	// corrupted stored data must never be silently masked.
	Decrypt(envelope models.Envelope) (string, error)
}
