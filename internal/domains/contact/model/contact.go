package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusNew     = "new"
	StatusRead    = "read"
	StatusReplied = "replied"
)

var Statuses = []string{StatusNew, StatusRead, StatusReplied}

// ValidStatus reports whether s is one of Statuses.
func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

type Contact struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	EmailSent bool      `json:"emailSent"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ListFilter struct {
	Status string
	Page   int
	Limit  int
}
