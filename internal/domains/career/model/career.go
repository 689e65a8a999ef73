package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending     = "pending"
	StatusShortlisted = "shortlisted"
	StatusRejected    = "rejected"
)

var Statuses = []string{StatusPending, StatusShortlisted, StatusRejected}

func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// Career is a job application. Resume holds the public URL of the stored PDF.
type Career struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Position       string    `json:"position"`
	Experience     string    `json:"experience"`
	CoverLetter    string    `json:"coverLetter"`
	Resume         string    `json:"resume"`
	ResumePublicID string    `json:"-"`
	Status         string    `json:"status"`
	EmailSent      bool      `json:"emailSent"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type ListFilter struct {
	Status string
	Page   int
	Limit  int
}

// NewCareer is what gets persisted after the resume is stored.
type NewCareer struct {
	SubmitCareerRequest
	ResumeURL      string
	ResumePublicID string
}
