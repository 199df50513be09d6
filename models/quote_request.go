package models

import (
	"encoding/json"
	"strconv"
)

// Field name constants for the quote request document. The same names are
// used as JSON keys in the API payload and as field names in the persisted
// document, so every layer (validation, encryption, storage) refers to a
// single definition.
const (
	FieldFullName       = "fullName"
	FieldEmail          = "email"
	FieldPhoneNumber    = "phoneNumber"
	FieldPostcode       = "postcode"
	FieldCleaningType   = "cleaningType"
	FieldServiceLevel   = "serviceLevel"
	FieldRooms          = "rooms"
	FieldBathrooms      = "bathrooms"
	FieldKitchens       = "kitchens"
	FieldOvenCleaning   = "ovenCleaning"
	FieldAdditionalInfo = "additionalInfo"
	FieldStatus         = "status"
	FieldSubmittedAt    = "submittedAt"
)

// Status is the lifecycle state of a quote request.
type Status string

// The full set of quote request states. A request is created in
// StatusAwaitingQuote and moves through the remaining states as the quote is
// sent, answered, and turned into a job.
const (
	StatusAwaitingQuote Status = "awaitingQuote"
	StatusQuoteSent     Status = "quoteSent"
	StatusQuoteAccepted Status = "quoteAccepted"
	StatusQuoteRejected Status = "quoteRejected"
	StatusJobAccepted   Status = "jobAccepted"
)

// Statuses lists every valid Status value. Used by the request validator for
// enum membership checks.
var Statuses = []Status{
	StatusAwaitingQuote,
	StatusQuoteSent,
	StatusQuoteAccepted,
	StatusQuoteRejected,
	StatusJobAccepted,
}

// Digits is a numeric string field ("3", "12"). Submitting clients are
// inconsistent about whether room counts arrive as JSON strings or JSON
// numbers, so UnmarshalJSON accepts both and normalises numbers to their
// decimal string form before validation sees the value.
type Digits string

// UnmarshalJSON implements [json.Unmarshaler]. JSON strings are taken as-is;
// JSON numbers are converted to their decimal representation. Any other JSON
// type is an error.
func (d *Digits) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case string:
		*d = Digits(value)
		return nil
	case float64:
		*d = Digits(strconv.FormatFloat(value, 'f', -1, 64))
		return nil
	default:
		return json.Unmarshal(b, (*string)(d))
	}
}

// String returns the underlying string value.
func (d Digits) String() string {
	return string(d)
}

// QuoteRequest represents one customer quote request as submitted to the API.
//
// The four PII fields (full name, email, phone number, postcode) are
// sensitive: they are encrypted before the document is persisted and only
// exist in plaintext inside a request/response cycle. The validate tags
// describe the accepted shape; see the validators package for the custom
// rules (ukmobile, ukpostcode, digits, quotestatus).
type QuoteRequest struct {
	// FullName is the customer's full name. Sensitive.
	FullName string `json:"fullName" validate:"required,max=100"`

	// Email is the customer's contact email. Sensitive.
	Email string `json:"email" validate:"required,email"`

	// PhoneNumber is a UK mobile number ("+447..." or "07..."). Sensitive.
	PhoneNumber string `json:"phoneNumber" validate:"required,ukmobile"`

	// Postcode is a UK postcode. Sensitive.
	Postcode string `json:"postcode" validate:"required,ukpostcode"`

	// CleaningType is the kind of clean requested (e.g. "deep", "regular").
	CleaningType string `json:"cleaningType" validate:"required"`

	// ServiceLevel is the requested service tier.
	ServiceLevel string `json:"serviceLevel" validate:"required"`

	// Rooms, Bathrooms and Kitchens are room counts as numeric strings of at
	// most two digits. JSON numbers are coerced by [Digits.UnmarshalJSON].
	Rooms     Digits `json:"rooms" validate:"required,digits"`
	Bathrooms Digits `json:"bathrooms" validate:"required,digits"`
	Kitchens  Digits `json:"kitchens" validate:"required,digits"`

	// OvenCleaning marks whether oven cleaning was requested. Optional; nil
	// means the field was not submitted and is omitted from the stored
	// document.
	OvenCleaning *bool `json:"ovenCleaning,omitempty"`

	// AdditionalInfo is free-form customer text. Optional.
	AdditionalInfo *string `json:"additionalInfo,omitempty"`

	// Status is the lifecycle state supplied by the submitting client.
	Status Status `json:"status" validate:"required,quotestatus"`
}

// Fields returns the request as a field-name to value map, the form in which
// the record flows through sanitization, encryption, and persistence.
// Optional fields that were not submitted are absent from the map.
func (q QuoteRequest) Fields() map[string]any {
	fields := map[string]any{
		FieldFullName:     q.FullName,
		FieldEmail:        q.Email,
		FieldPhoneNumber:  q.PhoneNumber,
		FieldPostcode:     q.Postcode,
		FieldCleaningType: q.CleaningType,
		FieldServiceLevel: q.ServiceLevel,
		FieldRooms:        q.Rooms.String(),
		FieldBathrooms:    q.Bathrooms.String(),
		FieldKitchens:     q.Kitchens.String(),
		FieldStatus:       string(q.Status),
	}

	if q.OvenCleaning != nil {
		fields[FieldOvenCleaning] = *q.OvenCleaning
	}
	if q.AdditionalInfo != nil {
		fields[FieldAdditionalInfo] = *q.AdditionalInfo
	}

	return fields
}
