package models

// Document pairs a stored quote request with its database-assigned document
// id. Data holds the raw document fields: plain strings, booleans, the
// server-assigned submission timestamp, and the sensitive fields either
// decrypted to strings (read paths) or still in envelope form (the create
// response).
type Document struct {
	ID   string         `json:"id"`
	Data map[string]any `json:"data"`
}
