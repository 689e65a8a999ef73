package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

type SubmitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r *SubmitContactRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Company = strings.TrimSpace(r.Company)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
}

func (r SubmitContactRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("Name is required")),
		validation.Field(&r.Email,
			validation.Required.Error("Valid email is required"),
			is.EmailFormat.Error("Valid email is required")),
		validation.Field(&r.Subject, validation.Required.Error("Subject is required")),
		validation.Field(&r.Message, validation.Required.Error("Message is required")),
	)
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// SubmitResult is returned to the public caller.
type SubmitResult struct {
	ID uuid.UUID `json:"id"`
}
