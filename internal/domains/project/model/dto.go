package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ProjectRequest is the body of both create and update. A nil Image keeps
// the stored one on update.
type ProjectRequest struct {
	Title       string  `json:"title"`
	Client      string  `json:"client"`
	Category    string  `json:"category"`
	Location    string  `json:"location"`
	Duration    string  `json:"duration"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

func (r *ProjectRequest) Normalize() {
	for _, s := range []*string{&r.Title, &r.Client, &r.Category, &r.Location, &r.Duration, &r.Description, r.Image} {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
}

func (r ProjectRequest) Validate() error {
	categories := make([]interface{}, len(Categories))
	for i, c := range Categories {
		categories[i] = c
	}

	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("Title is required")),
		validation.Field(&r.Client, validation.Required.Error("Client is required")),
		validation.Field(&r.Category,
			validation.Required.Error("Invalid category"),
			validation.In(categories...).Error("Invalid category")),
		validation.Field(&r.Location, validation.Required.Error("Location is required")),
		validation.Field(&r.Duration, validation.Required.Error("Duration is required")),
		validation.Field(&r.Description, validation.Required.Error("Description is required")),
		validation.Field(&r.Order, validation.Min(0)),
	)
}
