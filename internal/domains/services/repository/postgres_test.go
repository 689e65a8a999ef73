package repository

import (
	"context"
	"testing"

	"bepl-backend/internal/domains/services/model"
	"bepl-backend/internal/infrastructure/database/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestUpdate_OmittedOptionalColumnsKeepStoredValues(t *testing.T) {
	repo := NewRepository(dbtest.Pool(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, model.ServiceRequest{
		Slug: "piping", Title: "Piping", Description: "d",
		Image: ptr("https://cdn.example/piping.jpg"), Icon: ptr("HardHat"),
		Features: &[]string{"Process piping", "Testing"},
	})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, model.ServiceRequest{
		Slug: "piping", Title: "Piping Works", Description: "Full scope",
	})
	require.NoError(t, err)
	assert.Equal(t, "Piping Works", updated.Title)
	assert.Equal(t, "https://cdn.example/piping.jpg", updated.Image)
	assert.Equal(t, "HardHat", updated.Icon)
	assert.Equal(t, []string{"Process piping", "Testing"}, updated.Features)

	cleared, err := repo.Update(ctx, created.ID, model.ServiceRequest{
		Slug: "piping", Title: "Piping Works", Description: "Full scope",
		Image: ptr(""), Features: &[]string{},
	})
	require.NoError(t, err)
	assert.Empty(t, cleared.Image)
	assert.Empty(t, cleared.Features)
	assert.Equal(t, "HardHat", cleared.Icon)
}

func TestCreate_DefaultsAndDuplicateSlug(t *testing.T) {
	repo := NewRepository(dbtest.Pool(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, model.ServiceRequest{Slug: "welding", Title: "Welding", Description: "d"})
	require.NoError(t, err)
	assert.Empty(t, created.Image)
	assert.Equal(t, []string{}, created.Features)
	assert.True(t, created.IsActive)
	assert.Zero(t, created.Order)

	_, err = repo.Create(ctx, model.ServiceRequest{Slug: "welding", Title: "Other", Description: "d"})
	assert.ErrorIs(t, err, model.ErrDuplicateSlug)
}

func TestUpsertBySlug_KeepsImageWhenSeedHasNone(t *testing.T) {
	repo := NewRepository(dbtest.Pool(t))
	ctx := context.Background()

	_, err := repo.UpsertBySlug(ctx, model.ServiceRequest{
		Slug: "structural", Title: "Structural", Description: "d",
		Image: ptr("https://cdn.example/steel.jpg"), Order: ptr(1),
	})
	require.NoError(t, err)

	again, err := repo.UpsertBySlug(ctx, model.ServiceRequest{
		Slug: "structural", Title: "Structural Steel Erection", Description: "d", Order: ptr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, "Structural Steel Erection", again.Title)
	assert.Equal(t, "https://cdn.example/steel.jpg", again.Image)

	all, total, err := repo.List(ctx, model.ListFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, all, 1)
}
