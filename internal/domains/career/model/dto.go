package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// SubmitCareerRequest carries the multipart text fields; the resume is a separate part.
type SubmitCareerRequest struct {
	Name        string `form:"name" json:"name"`
	Email       string `form:"email" json:"email"`
	Phone       string `form:"phone" json:"phone"`
	Position    string `form:"position" json:"position"`
	Experience  string `form:"experience" json:"experience"`
	CoverLetter string `form:"coverLetter" json:"coverLetter"`
}

func (r *SubmitCareerRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Position = strings.TrimSpace(r.Position)
	r.Experience = strings.TrimSpace(r.Experience)
	r.CoverLetter = strings.TrimSpace(r.CoverLetter)
}

func (r SubmitCareerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("Name is required")),
		validation.Field(&r.Email,
			validation.Required.Error("Email is required"),
			is.EmailFormat.Error("Valid email is required")),
		validation.Field(&r.Phone, validation.Required.Error("Phone is required")),
		validation.Field(&r.Position, validation.Required.Error("Position is required")),
	)
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type SubmitResult struct {
	ID uuid.UUID `json:"id"`
}
