package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"bepl-backend/internal/domains/about/model"
	"bepl-backend/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo mimics the singleton key: the first writer inserts, later ones update.
type fakeRepo struct {
	mu      sync.Mutex
	doc     *model.About
	inserts int
	err     error
}

func (f *fakeRepo) ensure(defaults *model.About) {
	if f.doc == nil {
		d := *defaults
		d.ID = uuid.New()
		d.CreatedAt = time.Now()
		f.doc = &d
		f.inserts++
	}
}

func (f *fakeRepo) Get(_ context.Context, defaults *model.About) (*model.About, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.ensure(defaults)
	out := *f.doc
	return &out, nil
}

func (f *fakeRepo) Upsert(_ context.Context, req model.UpdateAboutRequest, defaults *model.About) (*model.About, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.ensure(defaults)
	if req.HeroTitle != nil {
		f.doc.HeroTitle = *req.HeroTitle
	}
	if req.Vision != nil {
		f.doc.Vision = *req.Vision
	}
	if req.Certifications != nil {
		f.doc.Certifications = *req.Certifications
	}
	if req.TeamStats != nil {
		f.doc.TeamStats = *req.TeamStats
	}
	out := *f.doc
	return &out, nil
}

func ptr[T any](v T) *T { return &v }

func TestGet_CreatesDefaultsOnce(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			about, err := svc.Get(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, "Building Excellence Since 1984", about.HeroTitle)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, repo.inserts)
	assert.Equal(t, 3000, repo.doc.TeamStats.Technicians)
}

func TestUpdate_PartialKeepsOtherFields(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Update(ctx, model.UpdateAboutRequest{Vision: ptr("  Safety first  ")})
	require.NoError(t, err)

	about, err := svc.Update(ctx, model.UpdateAboutRequest{
		Certifications: ptr([]string{"ISO 9001", " ", "ISO 45001"}),
	})
	require.NoError(t, err)

	assert.Equal(t, "Safety first", about.Vision)
	assert.Equal(t, "Building Excellence Since 1984", about.HeroTitle)
	assert.Equal(t, []string{"ISO 9001", "ISO 45001"}, about.Certifications)
	assert.Equal(t, 1, repo.inserts)
}

func TestUpdate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		req    model.UpdateAboutRequest
		fields []string
	}{
		{
			name:   "milestone missing year",
			req:    model.UpdateAboutRequest{Milestones: ptr([]model.Milestone{{Title: "t", Description: "d"}})},
			fields: []string{"milestones.0.year"},
		},
		{
			name: "value missing title and description",
			req: model.UpdateAboutRequest{Values: ptr([]model.Value{
				{Title: "Quality", Description: "ok"},
				{Icon: "shield"},
			})},
			fields: []string{"values.1.description", "values.1.title"},
		},
		{
			name:   "negative team stat",
			req:    model.UpdateAboutRequest{TeamStats: &model.TeamStats{Engineers: -1}},
			fields: []string{"teamStats.engineers"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			_, err := NewService(repo).Update(context.Background(), tt.req)
			require.Error(t, err)

			var appErr *apperror.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, apperror.KindValidation, appErr.Kind)

			var got []string
			for _, f := range appErr.Errors {
				got = append(got, f.Field)
			}
			assert.Equal(t, tt.fields, got)
			assert.Nil(t, repo.doc)
		})
	}
}

func TestGet_RepositoryFailure(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("db down")})

	_, err := svc.Get(context.Background())
	assert.True(t, apperror.Is(err, apperror.KindInternal))
}
