// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/places/internal/validation"
)

// maxReviewPhotos bounds the number of photo uploads per review.
const maxReviewPhotos = 5

// CreateReviewRequest contains the parameters for reviewing a location.
// Photos carry base64 payloads or data URIs as produced by mobile clients;
// the handler uploads them and stores the resulting URLs.
type CreateReviewRequest struct {
	Rating  int      `json:"rating"`
	Comment string   `json:"comment"`
	Photos  []string `json:"photos"`
	Tags    []string `json:"tags"`
}

// Validate checks if the create review request is valid.
func (r *CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Rating,
			validation.Required,
			validation.Min(1),
			validation.Max(5),
		),
		validation.Field(&r.Comment,
			validation.Length(0, 2000),
		),
		validation.Field(&r.Photos,
			validation.Length(0, maxReviewPhotos),
			validation.Each(customValidation.NotBlank, customValidation.Base64),
		),
		validation.Field(&r.Tags,
			validation.Length(0, 20),
			validation.Each(customValidation.NotBlank, validation.Length(1, 50)),
		),
	)
}
