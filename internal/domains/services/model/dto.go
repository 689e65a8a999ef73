package model

import (
	"strings"

	"bepl-backend/internal/shared/utils"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ServiceRequest is the body of both create and update. Nil optional
// fields keep their stored value on update.
type ServiceRequest struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       *string   `json:"image"`
	Features    *[]string `json:"features"`
	Icon        *string   `json:"icon"`
	Order       *int      `json:"order"`
	IsActive    *bool     `json:"isActive"`
}

// Normalize trims input and derives the slug from the title when absent.
func (r *ServiceRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	for _, p := range []*string{r.Image, r.Icon} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}

	r.Slug = strings.TrimSpace(r.Slug)
	if r.Slug == "" {
		r.Slug = r.Title
	}
	r.Slug = utils.GenerateSlug(r.Slug)

	if r.Features != nil {
		features := make([]string, 0, len(*r.Features))
		for _, f := range *r.Features {
			if f = strings.TrimSpace(f); f != "" {
				features = append(features, f)
			}
		}
		r.Features = &features
	}
}

func (r ServiceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Slug, validation.Required.Error("Service ID is required")),
		validation.Field(&r.Title, validation.Required.Error("Title is required")),
		validation.Field(&r.Description, validation.Required.Error("Description is required")),
		validation.Field(&r.Order, validation.Min(0)),
	)
}
