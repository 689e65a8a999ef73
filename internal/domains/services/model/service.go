package model

import (
	"time"

	"github.com/google/uuid"
)

// Service is an offering shown on the public site, addressable by UUID or slug.
type Service struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Features    []string  `json:"features"`
	Icon        string    `json:"icon"`
	Order       int       `json:"order"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListFilter drives the admin listing. Active nil means all.
type ListFilter struct {
	Active *bool
	Page   int
	Limit  int
}
