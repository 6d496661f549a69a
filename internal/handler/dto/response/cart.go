package response

import (
	"registrar/internal/domain/cart"

	"github.com/google/uuid"
)

type CartResponse struct {
	StudentID uuid.UUID   `json:"studentId"`
	Items     []uuid.UUID `json:"items"`
}

func FromCart(c *cart.Cart) *CartResponse {
	return &CartResponse{
		StudentID: c.StudentID(),
		Items:     c.Items(),
	}
}

type CartValidationResponse struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func FromValidationResult(result cart.ValidationResult) *CartValidationResponse {
	errors := result.Errors
	if errors == nil {
		errors = []string{}
	}
	warnings := result.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return &CartValidationResponse{
		Valid:    !result.HasErrors(),
		Errors:   errors,
		Warnings: warnings,
	}
}
