package crypto

import "github.com/glowclean/quote-api/models"

// SensitiveFields is the fixed list of quote request fields that are
// persisted as encrypted envelopes and decrypted on read paths. It is the
// single definition shared by every layer; the list is not configurable per
// call.
var SensitiveFields = []string{
	models.FieldFullName,
	models.FieldEmail,
	models.FieldPhoneNumber,
	models.FieldPostcode,
}

// IsSensitive reports whether the named field belongs to [SensitiveFields].
func IsSensitive(field string) bool {
	for _, name := range SensitiveFields {
		if name == field {
			return true
		}
	}
	return false
}
