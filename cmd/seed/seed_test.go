package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"bepl-backend/internal/infrastructure/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeed_Bundled(t *testing.T) {
	data, err := ParseSeed(bundledSeed)
	require.NoError(t, err)

	require.Len(t, data.Services, 4)
	slugs := make([]string, len(data.Services))
	for i, s := range data.Services {
		slugs[i] = s.Slug
		require.NotNil(t, s.Order)
		assert.Equal(t, i+1, *s.Order)
		require.NotNil(t, s.Features)
		assert.Len(t, *s.Features, 6)
	}
	assert.Equal(t, []string{"structural", "equipment", "piping", "maintenance"}, slugs)

	require.Len(t, data.Projects, 9)
	assert.Equal(t, "AMNS India - CRM 2 Project", data.Projects[0].Title)
	assert.Equal(t, "Steel Plants", data.Projects[0].Category)
	assert.Equal(t, "projects-steel.jpg", data.Projects[0].ImageFile)

	require.NotNil(t, data.About)
	require.NotNil(t, data.About.TeamStats)
	assert.Equal(t, 3000, data.About.TeamStats.Technicians)
	require.NotNil(t, data.About.Milestones)
	assert.Equal(t, "1982", (*data.About.Milestones)[0].Year)
	require.NotNil(t, data.About.MDMessage)
	assert.Equal(t, "K. Samuel", data.About.MDMessage.Name)

	assert.True(t, data.NeedsImages())
	assert.False(t, data.empty())
}

func TestParseSeed_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "services: [\n"},
		{"service without title", "services:\n  - slug: x\n    description: d\n"},
		{"unknown category", "projects:\n  - title: T\n    client: C\n    category: Shipyards\n    location: L\n    duration: D\n    description: X\n"},
		{"milestone without year", "about:\n  milestones:\n    - title: T\n      description: D\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSeed([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParseSeed_DerivesSlug(t *testing.T) {
	data, err := ParseSeed([]byte("services:\n  - title: Heavy Lifting\n    description: Cranes\n"))
	require.NoError(t, err)
	assert.Equal(t, "heavy-lifting", data.Services[0].Slug)
	assert.False(t, data.NeedsImages())
}

func TestParseSeed_Empty(t *testing.T) {
	data, err := ParseSeed([]byte("# nothing\n"))
	require.NoError(t, err)
	assert.True(t, data.empty())
}

type fakeUploader struct {
	mu    sync.Mutex
	calls []string
	fail  map[string]bool
}

func (f *fakeUploader) UploadImage(_ context.Context, file storage.File, folder string) (*storage.UploadResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, folder+"/"+file.Name)
	if f.fail[file.Name] {
		return nil, errors.New("bucket unavailable")
	}
	url := "https://cdn.example/" + folder + "/" + file.Name
	return &storage.UploadResult{SecureURL: url, URL: url}, nil
}

func TestUploadImages(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"steel.jpg", "broken.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("img"), 0o600))
	}

	data, err := ParseSeed([]byte(`
services:
  - title: A
    description: a
    imageFile: steel.jpg
  - title: B
    description: b
    imageFile: steel.jpg
  - title: C
    description: c
    imageFile: missing.jpg
  - title: D
    description: d
    image: https://existing.example/d.jpg
    imageFile: steel.jpg
projects:
  - title: P
    client: AMNS
    category: Infrastructure
    location: Hazira
    duration: "2020"
    description: p
    imageFile: broken.jpg
`))
	require.NoError(t, err)

	up := &fakeUploader{fail: map[string]bool{"broken.jpg": true}}
	data.UploadImages(context.Background(), up, dir)

	require.NotNil(t, data.Services[0].Image)
	assert.Equal(t, "https://cdn.example/services/steel.jpg", *data.Services[0].Image)
	require.NotNil(t, data.Services[1].Image)
	assert.Equal(t, "https://cdn.example/services/steel.jpg", *data.Services[1].Image)
	assert.Nil(t, data.Services[2].Image)
	require.NotNil(t, data.Services[3].Image)
	assert.Equal(t, "https://existing.example/d.jpg", *data.Services[3].Image)
	assert.Nil(t, data.Projects[0].Image)

	// steel.jpg is uploaded once; missing.jpg never reaches the store.
	assert.Equal(t, []string{"services/steel.jpg", "projects/broken.jpg"}, up.calls)
}
