package model

import (
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	MinPasswordLength = 6
	// MaxPasswordBytes is the longest input bcrypt accepts.
	MaxPasswordBytes = 72
)

// Usernames cannot contain "@" so a login is never both a username and an email.
var usernamePattern = regexp.MustCompile(`^[^@\s]+$`)

// LoginIsEmail reports whether a login names an email address rather than a username.
func LoginIsEmail(login string) bool {
	return login != "" && is.EmailFormat.Validate(login) == nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Normalize lowercases the login so it matches the stored username or email.
func (r *LoginRequest) Normalize() {
	r.Username = strings.ToLower(strings.TrimSpace(r.Username))
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("Username is required")),
		validation.Field(&r.Password, validation.Required.Error("Password is required")),
	)
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Admin     *Admin    `json:"admin"`
}

type CreateAdminRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r *CreateAdminRequest) Normalize() {
	r.Username = strings.ToLower(strings.TrimSpace(r.Username))
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
	if r.Role == "" {
		r.Role = RoleAdmin
	}
}

func (r CreateAdminRequest) Validate() error {
	roles := make([]interface{}, len(Roles))
	for i, role := range Roles {
		roles[i] = role
	}

	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("Username is required"),
			validation.Length(3, 50).Error("Username must be between 3 and 50 characters"),
			validation.Match(usernamePattern).Error("Username cannot contain @ or spaces")),
		validation.Field(&r.Email,
			validation.Required.Error("Email is required"),
			is.EmailFormat.Error("Valid email is required")),
		validation.Field(&r.Password,
			validation.Required.Error("Password is required"),
			validation.RuneLength(MinPasswordLength, 0).Error("Password must be at least 6 characters"),
			validation.Length(0, MaxPasswordBytes).Error("Password must be at most 72 bytes")),
		validation.Field(&r.Role, validation.In(roles...).Error("Role must be admin or superadmin")),
	)
}
