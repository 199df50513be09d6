package crypto

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/glowclean/quote-api/models"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	return bytes.Repeat([]byte{0x42}, 32)
}

func TestNewFieldCipher_RejectsWrongKeyLength(t *testing.T) {
	for _, size := range []int{0, 16, 24, 31, 33} {
		if _, err := NewFieldCipher(make([]byte, size)); !errors.Is(err, ErrInvalidKeyLength) {
			t.Fatalf("key size %d: err = %v, want ErrInvalidKeyLength", size, err)
		}
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	c, err := NewFieldCipher(testKey(t))
	if err != nil {
		t.Fatalf("NewFieldCipher error: %v", err)
	}

	for _, plaintext := range []string{
		"",
		"John Smith",
		"john@example.com",
		"+447911123456",
		"SW1A 1AA",
		strings.Repeat("long plaintext ", 50),
	} {
		envelope, err := c.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt(%q) error: %v", plaintext, err)
		}

		got, err := c.Decrypt(envelope)
		if err != nil {
			t.Fatalf("Decrypt error: %v", err)
		}
		if got != plaintext {
			t.Fatalf("round trip = %q, want %q", got, plaintext)
		}
	}
}

func TestEncrypt_FreshIVPerCall(t *testing.T) {
	c, err := NewFieldCipher(testKey(t))
	if err != nil {
		t.Fatalf("NewFieldCipher error: %v", err)
	}

	e1, err := c.Encrypt("same plaintext")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	e2, err := c.Encrypt("same plaintext")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if e1.IV == e2.IV {
		t.Fatalf("expected different ivs, both are %q", e1.IV)
	}
	if e1.Content == e2.Content {
		t.Fatalf("expected different ciphertexts, both are %q", e1.Content)
	}

	iv, err := hex.DecodeString(e1.IV)
	if err != nil {
		t.Fatalf("iv is not valid hex: %v", err)
	}
	if len(iv) != 16 {
		t.Fatalf("iv length = %d, want 16", len(iv))
	}
}

func TestDecrypt_MalformedEnvelope(t *testing.T) {
	c, err := NewFieldCipher(testKey(t))
	if err != nil {
		t.Fatalf("NewFieldCipher error: %v", err)
	}

	cases := []struct {
		name     string
		envelope models.Envelope
	}{
		{"iv not hex", models.Envelope{IV: "zzzz", Content: "00"}},
		{"iv too short", models.Envelope{IV: "0011", Content: "00"}},
		{"content not hex", models.Envelope{IV: strings.Repeat("00", 16), Content: "not-hex"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := c.Decrypt(tc.envelope); !errors.Is(err, ErrMalformedEnvelope) {
				t.Fatalf("err = %v, want ErrMalformedEnvelope", err)
			}
		})
	}
}

func TestIsSensitive(t *testing.T) {
	for _, field := range SensitiveFields {
		if !IsSensitive(field) {
			t.Fatalf("IsSensitive(%q) = false, want true", field)
		}
	}
	for _, field := range []string{models.FieldStatus, models.FieldRooms, "unknown"} {
		if IsSensitive(field) {
			t.Fatalf("IsSensitive(%q) = true, want false", field)
		}
	}
}
