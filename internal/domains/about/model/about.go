package model

import (
	"time"

	"github.com/google/uuid"
)

// SingletonKey is the fixed primary key of the only About row.
const SingletonKey = "about"

type Value struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Milestone struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type TeamStats struct {
	Engineers       int `json:"engineers"`
	Supervisors     int `json:"supervisors"`
	Technicians     int `json:"technicians"`
	YearsExperience int `json:"yearsExperience"`
}

type MDMessage struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Message  string `json:"message"`
}

// About is the company profile page. Exactly one exists.
type About struct {
	ID              uuid.UUID   `json:"id"`
	HeroTitle       string      `json:"heroTitle"`
	HeroDescription string      `json:"heroDescription"`
	AboutContent    string      `json:"aboutContent"`
	Vision          string      `json:"vision"`
	Mission         string      `json:"mission"`
	Values          []Value     `json:"values"`
	Milestones      []Milestone `json:"milestones"`
	Certifications  []string    `json:"certifications"`
	TeamStats       TeamStats   `json:"teamStats"`
	MDMessage       MDMessage   `json:"mdMessage"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// Default returns the document created on first read.
func Default() *About {
	return &About{
		HeroTitle:      "Building Excellence Since 1984",
		Values:         []Value{},
		Milestones:     []Milestone{},
		Certifications: []string{},
		TeamStats: TeamStats{
			Engineers:       103,
			Supervisors:     209,
			Technicians:     3000,
			YearsExperience: 40,
		},
	}
}
