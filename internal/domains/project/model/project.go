package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	CategorySteelPlants    = "Steel Plants"
	CategoryPowerPlants    = "Power Plants"
	CategoryRefineries     = "Refineries"
	CategoryInfrastructure = "Infrastructure"
)

// Categories is the fixed set a project may belong to.
var Categories = []string{CategorySteelPlants, CategoryPowerPlants, CategoryRefineries, CategoryInfrastructure}

type Project struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Client      string    `json:"client"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Duration    string    `json:"duration"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Order       int       `json:"order"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListFilter is shared by the public and admin listings.
// Paging is ignored when Limit is zero.
type ListFilter struct {
	Category string
	Active   *bool
	Page     int
	Limit    int
}
