// Package validation provides custom validation rules for the application.
package validation

import (
	"encoding/base64"
	"strings"

	validation "github.com/jellydator/validation"
)

// Base64 validates that a string is valid base64-encoded data, either raw or
// wrapped in a data URI ("data:image/png;base64,...."). Used for photo
// payloads uploaded alongside reviews.
var Base64 = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_base64_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	if strings.HasPrefix(s, "data:") {
		marker := strings.Index(s, ";base64,")
		if marker < 0 {
			return validation.NewError("validation_base64", "must be valid base64-encoded data")
		}
		s = s[marker+len(";base64,"):]
	}
	if _, err := base64.StdEncoding.DecodeString(s); err != nil {
		return validation.NewError("validation_base64", "must be valid base64-encoded data")
	}
	return nil
})
