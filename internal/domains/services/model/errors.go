package model

import "errors"

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrDuplicateSlug   = errors.New("service slug already exists")
)
