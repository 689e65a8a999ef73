package repository

import (
	"context"

	"bepl-backend/internal/domains/about/model"
)

type Repository interface {
	// Get returns the singleton, inserting defaults first if it does not exist yet.
	Get(ctx context.Context, defaults *model.About) (*model.About, error)
	// Upsert writes the given fields over the stored document (or over defaults
	// when none exists) in a single statement and returns the result.
	Upsert(ctx context.Context, req model.UpdateAboutRequest, defaults *model.About) (*model.About, error)
}
