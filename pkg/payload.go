package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"

	"github.com/go-playground/validator/v10"
)

// ErrMalformedPayload is returned when a request body cannot be decoded
// into the expected record or fails its validation rules.
var ErrMalformedPayload = errors.New("malformed payload")

var payloadValidator = validator.New(validator.WithRequiredStructEnabled())

// IsJSONContentType checks the Content-Type header value, ignoring any parameters (e.g. charset)
func IsJSONContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == ContentType.JSON
}

// DecodeJSONPayload strictly decodes body into dst and validates it using the `validate` struct tags.
// Every failure is wrapped with ErrMalformedPayload.
func DecodeJSONPayload(body io.Reader, dst any) error {
	if body == nil {
		return fmt.Errorf("%w: empty body", ErrMalformedPayload)
	}

	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	if err := ValidatePayload(dst); err != nil {
		return err
	}

	return nil
}

// ValidatePayload runs the struct validation rules of v
func ValidatePayload(v any) error {
	if err := payloadValidator.Struct(v); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			fieldErr := validationErrs[0]
			return fmt.Errorf("%w: field %s failed on %s", ErrMalformedPayload, fieldErr.Field(), fieldErr.Tag())
		}
		return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return nil
}
