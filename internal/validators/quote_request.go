// Package validators implements structural validation of inbound quote
// request records: type, length, regex, and enum membership checks per
// field, with whole-record accept/reject semantics.
package validators

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/glowclean/quote-api/internal/logger"
	"github.com/glowclean/quote-api/models"
)

// ErrInvalidQuoteRequest is returned for any record that fails validation.
// Deliberately coarse: callers can only branch on accept vs reject.
var ErrInvalidQuoteRequest = errors.New("invalid quote request")

var (
	// ukMobileRegexp matches UK mobile numbers in international ("+447...")
	// or national ("07...") form.
	ukMobileRegexp = regexp.MustCompile(`^(?:\+44|0)7\d{9}$`)

	// ukPostcodeRegexp matches UK postcodes, case-insensitively, with an
	// optional space before the inward code.
	ukPostcodeRegexp = regexp.MustCompile(`(?i)^[A-Z]{1,2}[0-9R][0-9A-Z]?[ ]?[0-9][A-Z]{2}$`)

	// digitsRegexp matches strings of decimal digits only.
	digitsRegexp = regexp.MustCompile(`^\d+$`)
)

// quoteRequestValidator is the private implementation of
// [QuoteRequestValidator] backed by go-playground/validator.
type quoteRequestValidator struct {
	validate *validator.Validate
}

// NewQuoteRequestValidator constructs a [QuoteRequestValidator] with the
// custom rules referenced by the validate tags on [models.QuoteRequest]:
//
//   - ukmobile:    UK mobile number shape
//   - ukpostcode:  UK postcode shape
//   - digits:      numeric string of at most two digits
//   - quotestatus: membership in [models.Statuses]
func NewQuoteRequestValidator() (QuoteRequestValidator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	rules := map[string]validator.Func{
		"ukmobile": func(fl validator.FieldLevel) bool {
			return ukMobileRegexp.MatchString(fl.Field().String())
		},
		"ukpostcode": func(fl validator.FieldLevel) bool {
			return ukPostcodeRegexp.MatchString(fl.Field().String())
		},
		"digits": func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return len(value) <= 2 && digitsRegexp.MatchString(value)
		},
		"quotestatus": func(fl validator.FieldLevel) bool {
			candidate := models.Status(fl.Field().String())
			for _, status := range models.Statuses {
				if candidate == status {
					return true
				}
			}
			return false
		},
	}

	for tag, fn := range rules {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("registering %q validation: %w", tag, err)
		}
	}

	return &quoteRequestValidator{validate: validate}, nil
}

// Validate implements [QuoteRequestValidator]. The underlying field-level
// failures are logged for diagnostics but never propagated to the caller.
func (v *quoteRequestValidator) Validate(ctx context.Context, req models.QuoteRequest) error {
	if err := v.validate.StructCtx(ctx, req); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("quote request failed validation")
		return ErrInvalidQuoteRequest
	}

	return nil
}
