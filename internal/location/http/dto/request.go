// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/places/internal/validation"
)

// CreateLocationRequest contains the parameters for registering a new place.
type CreateLocationRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
	ImageURL    string  `json:"image_url"`
}

// Validate checks if the create location request is valid. Coordinate range
// checks live on the domain value object; only presence is checked here.
func (r *CreateLocationRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Category,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.City,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.Country,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.Description,
			validation.Length(0, 2000),
		),
	)
}
