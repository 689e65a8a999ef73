package storage

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	failPut error
}

func newMemStore() *memStore {
	return &memStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *memStore) Put(_ context.Context, key string, data []byte, contentType string) (string, error) {
	if m.failPut != nil {
		return "", m.failPut
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	m.types[key] = contentType
	return "https://cdn.example/bepl/" + key, nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n%%EOF\n")

func TestUploadImage(t *testing.T) {
	store := newMemStore()
	u := NewUploader(store, NewImageProcessor(100), UploaderConfig{RootFolder: "bepl", MaxBytes: 1 << 20, Timeout: time.Second})

	res, err := u.UploadImage(context.Background(), File{Name: "hero.png", Data: pngBytes(t, 400, 200)}, "Projects Gallery")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(res.PublicID, "bepl/projects-gallery/"))
	assert.True(t, strings.HasSuffix(res.PublicID, ".png"))
	assert.Equal(t, "png", res.Format)
	assert.Equal(t, 100, res.Width)
	assert.Equal(t, 50, res.Height)
	assert.Equal(t, res.SecureURL, res.URL)
	assert.Equal(t, "image/png", store.types[res.PublicID])

	require.NoError(t, u.Delete(context.Background(), res.PublicID))
	assert.Empty(t, store.objects)
}

func TestUploadImage_SmallImageUntouched(t *testing.T) {
	store := newMemStore()
	u := NewUploader(store, NewImageProcessor(2400), UploaderConfig{MaxBytes: 1 << 20})
	data := pngBytes(t, 40, 30)

	res, err := u.UploadImage(context.Background(), File{Name: "icon.png", Data: data}, "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.PublicID, "bepl/general/"))
	assert.Equal(t, 40, res.Width)
	assert.Equal(t, data, store.objects[res.PublicID])
}

func TestUploadRejections(t *testing.T) {
	u := NewUploader(newMemStore(), nil, UploaderConfig{MaxBytes: 64})

	tests := []struct {
		name    string
		upload  func() error
		wantErr error
	}{
		{"pdf as image", func() error {
			_, err := u.UploadImage(context.Background(), File{Name: "x.png", Data: pdfBytes}, "")
			return err
		}, ErrNotImage},
		{"text as pdf", func() error {
			_, err := u.UploadPDF(context.Background(), File{Name: "cv.pdf", Data: []byte("hello")}, "careers")
			return err
		}, ErrNotPDF},
		{"too large", func() error {
			_, err := u.UploadPDF(context.Background(), File{Name: "cv.pdf", Data: bytes.Repeat([]byte("a"), 65)}, "careers")
			return err
		}, ErrTooLarge},
		{"empty", func() error {
			_, err := u.UploadImage(context.Background(), File{Name: "x.png"}, "")
			return err
		}, ErrEmptyFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.upload()
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NotEqual(t, "Failed to upload file", Message(err))
		})
	}
}

func TestUploadPDF(t *testing.T) {
	store := newMemStore()
	u := NewUploader(store, nil, UploaderConfig{MaxBytes: 1 << 20})
	u.now = func() time.Time { return time.Unix(1700000000, 0) }

	res, err := u.UploadPDF(context.Background(), File{Name: "Jane Doe CV", Data: pdfBytes}, "careers")
	require.NoError(t, err)
	assert.Equal(t, "bepl/careers/resume_1700000000_Jane_Doe_CV.pdf", res.PublicID)
	assert.Equal(t, "pdf", res.Format)
	assert.Equal(t, "application/pdf", store.types[res.PublicID])
}

func TestUpload_StoreFailure(t *testing.T) {
	store := newMemStore()
	store.failPut = errors.New("minio down")
	u := NewUploader(store, nil, UploaderConfig{MaxBytes: 1 << 20})

	_, err := u.UploadPDF(context.Background(), File{Name: "cv.pdf", Data: pdfBytes}, "careers")
	assert.EqualError(t, err, "minio down")
	assert.Equal(t, "Failed to upload file", Message(err))
}
