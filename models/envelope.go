package models

// Envelope is the stored form of one encrypted field value: a fresh random
// initialization vector and the ciphertext, both hex-encoded. A new iv is
// generated on every encrypt call, so two encryptions of the same plaintext
// never produce the same envelope.
type Envelope struct {
	// IV is the hex encoding of the 16-byte initialization vector.
	IV string `json:"iv" firestore:"iv"`

	// Content is the hex encoding of the ciphertext.
	Content string `json:"content" firestore:"content"`
}
