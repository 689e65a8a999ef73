package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// UpdateAboutRequest is a partial document: nil fields keep their stored value.
type UpdateAboutRequest struct {
	HeroTitle       *string      `json:"heroTitle"`
	HeroDescription *string      `json:"heroDescription"`
	AboutContent    *string      `json:"aboutContent"`
	Vision          *string      `json:"vision"`
	Mission         *string      `json:"mission"`
	Values          *[]Value     `json:"values"`
	Milestones      *[]Milestone `json:"milestones"`
	Certifications  *[]string    `json:"certifications"`
	TeamStats       *TeamStats   `json:"teamStats"`
	MDMessage       *MDMessage   `json:"mdMessage"`
}

func (v Value) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.Title, validation.Required),
		validation.Field(&v.Description, validation.Required),
	)
}

func (m Milestone) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Year, validation.Required),
		validation.Field(&m.Title, validation.Required),
		validation.Field(&m.Description, validation.Required),
	)
}

func (t TeamStats) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Engineers, validation.Min(0)),
		validation.Field(&t.Supervisors, validation.Min(0)),
		validation.Field(&t.Technicians, validation.Min(0)),
		validation.Field(&t.YearsExperience, validation.Min(0)),
	)
}

// Validate checks shape only; no field is required on a partial update.
func (r UpdateAboutRequest) Validate() error {
	return validation.Errors{
		"values":     validateOptional(r.Values),
		"milestones": validateOptional(r.Milestones),
		"teamStats":  validateOptional(r.TeamStats),
	}.Filter()
}

func validateOptional[T any](v *T) error {
	if v == nil {
		return nil
	}
	return validation.Validate(*v)
}

// Normalize trims scalar text fields and drops blank certifications.
func (r *UpdateAboutRequest) Normalize() {
	for _, s := range []*string{r.HeroTitle, r.HeroDescription, r.AboutContent, r.Vision, r.Mission} {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
	if r.Certifications != nil {
		kept := make([]string, 0, len(*r.Certifications))
		for _, c := range *r.Certifications {
			if c = strings.TrimSpace(c); c != "" {
				kept = append(kept, c)
			}
		}
		r.Certifications = &kept
	}
}

// Empty reports whether the request carries no field at all.
func (r UpdateAboutRequest) Empty() bool {
	return r.HeroTitle == nil && r.HeroDescription == nil && r.AboutContent == nil &&
		r.Vision == nil && r.Mission == nil && r.Values == nil && r.Milestones == nil &&
		r.Certifications == nil && r.TeamStats == nil && r.MDMessage == nil
}
