package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"bepl-backend/internal/infrastructure/storage"
	"bepl-backend/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeStore struct {
	mu      sync.Mutex
	failOn  string
	err     error
	folders []string
	deleted []string
}

func (f *fakeStore) UploadImage(_ context.Context, file storage.File, folder string) (*storage.UploadResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if file.Name == f.failOn {
		return nil, f.err
	}
	f.folders = append(f.folders, folder)
	id := "bepl/" + folder + "/" + file.Name
	return &storage.UploadResult{PublicID: id, SecureURL: "https://cdn.example/" + id, Width: 10, Height: 5}, nil
}

func (f *fakeStore) Delete(_ context.Context, publicID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, publicID)
	return nil
}

func files(names ...string) []storage.File {
	out := make([]storage.File, len(names))
	for i, n := range names {
		out[i] = storage.File{Name: n, Data: []byte("x")}
	}
	return out
}

func TestUploadImage_DefaultFolder(t *testing.T) {
	store := &fakeStore{}
	img, err := NewService(store).UploadImage(context.Background(), files("a.png")[0], "")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/bepl/general/a.png", img.URL)
	assert.Equal(t, img.URL, img.SecureURL)
	assert.Equal(t, 10, img.Width)
}

func TestUploadImages_KeepsOrder(t *testing.T) {
	store := &fakeStore{}
	images, err := NewService(store).UploadImages(context.Background(), files("1.png", "2.png", "3.png", "4.png", "5.png"), "projects")

	require.NoError(t, err)
	require.Len(t, images, 5)
	for i, img := range images {
		assert.Equal(t, fmt.Sprintf("bepl/projects/%d.png", i+1), img.PublicID)
	}
}

func TestUploadImages_Failure(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind apperror.Kind
		wantMsg  string
	}{
		{"not an image", storage.ErrNotImage, apperror.KindValidation, "Only image files are allowed"},
		{"store down", errors.New("connection refused"), apperror.KindUpstream, "Failed to upload images"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{failOn: "bad.txt", err: tt.err}

			_, err := NewService(store).UploadImages(context.Background(), files("a.png", "bad.txt"), "")

			appErr := apperror.From(err)
			assert.Equal(t, tt.wantKind, appErr.Kind)
			assert.Equal(t, tt.wantMsg, appErr.Message)
			assert.Equal(t, 400, appErr.Status())
			// the file that did get stored is rolled back
			assert.Equal(t, []string{"bepl/general/a.png"}, store.deleted)
		})
	}
}
