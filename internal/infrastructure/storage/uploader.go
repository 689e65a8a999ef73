package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"bepl-backend/internal/shared/utils"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var (
	ErrNotImage  = errors.New("only image files are allowed")
	ErrNotPDF    = errors.New("only PDF files are allowed")
	ErrTooLarge  = errors.New("file too large")
	ErrEmptyFile = errors.New("file is empty")
)

// Message returns the client facing text for an upload error.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrNotImage):
		return "Only image files are allowed"
	case errors.Is(err, ErrNotPDF):
		return "Only PDF files are allowed"
	case errors.Is(err, ErrTooLarge):
		return "File too large"
	case errors.Is(err, ErrEmptyFile):
		return "File is empty"
	default:
		return "Failed to upload file"
	}
}

// ObjectStore is the raw byte store behind the uploader.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// File is an uploaded file held in memory.
type File struct {
	Name string
	Data []byte
}

// UploadResult describes a stored object.
type UploadResult struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	Format    string `json:"format"`
	Bytes     int    `json:"bytes"`
}

// UploaderConfig bounds what the uploader accepts.
type UploaderConfig struct {
	RootFolder string
	MaxBytes   int64
	Timeout    time.Duration
}

// Uploader validates, normalises and stores uploaded files.
type Uploader struct {
	store     ObjectStore
	processor *ImageProcessor
	cfg       UploaderConfig
	now       func() time.Time
}

func NewUploader(store ObjectStore, processor *ImageProcessor, cfg UploaderConfig) *Uploader {
	if cfg.RootFolder == "" {
		cfg.RootFolder = "bepl"
	}
	return &Uploader{store: store, processor: processor, cfg: cfg, now: time.Now}
}

// MaxBytes is the per-file ceiling.
func (u *Uploader) MaxBytes() int64 {
	return u.cfg.MaxBytes
}

// UploadImage stores an image under <root>/<folder>/<uuid>.<ext>.
// The type is sniffed from content; the client supplied type is ignored.
func (u *Uploader) UploadImage(ctx context.Context, file File, folder string) (*UploadResult, error) {
	mtype, err := u.check(file)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, ErrNotImage
	}

	data := file.Data
	var info ImageInfo
	if u.processor != nil {
		data, info, err = u.processor.Process(file.Data)
		if err != nil {
			return nil, err
		}
	}

	format := strings.TrimPrefix(mtype.Extension(), ".")
	key := path.Join(u.folder(folder), uuid.NewString()+mtype.Extension())

	result, err := u.put(ctx, key, data, mtype.String(), format)
	if err != nil {
		return nil, err
	}
	result.Width = info.Width
	result.Height = info.Height
	return result, nil
}

// UploadPDF stores a PDF under <root>/<folder>/resume_<unix>_<name>.pdf.
func (u *Uploader) UploadPDF(ctx context.Context, file File, folder string) (*UploadResult, error) {
	mtype, err := u.check(file)
	if err != nil {
		return nil, err
	}
	if !mtype.Is("application/pdf") {
		return nil, ErrNotPDF
	}

	name := utils.SafeFilename(file.Name)
	if path.Ext(name) != ".pdf" {
		name += ".pdf"
	}
	key := path.Join(u.folder(folder), fmt.Sprintf("resume_%d_%s", u.now().Unix(), name))

	return u.put(ctx, key, file.Data, "application/pdf", "pdf")
}

// Delete removes an object by the PublicID returned at upload time.
func (u *Uploader) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()
	return u.store.Delete(ctx, publicID)
}

func (u *Uploader) check(file File) (*mimetype.MIME, error) {
	if len(file.Data) == 0 {
		return nil, ErrEmptyFile
	}
	if u.cfg.MaxBytes > 0 && int64(len(file.Data)) > u.cfg.MaxBytes {
		return nil, ErrTooLarge
	}
	return mimetype.Detect(file.Data), nil
}

func (u *Uploader) put(ctx context.Context, key string, data []byte, contentType, format string) (*UploadResult, error) {
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()

	url, err := u.store.Put(ctx, key, data, contentType)
	if err != nil {
		return nil, err
	}

	return &UploadResult{
		PublicID:  key,
		SecureURL: url,
		URL:       url,
		Format:    format,
		Bytes:     len(data),
	}, nil
}

func (u *Uploader) folder(name string) string {
	slug := utils.GenerateSlug(name)
	if slug == "" {
		slug = "general"
	}
	return path.Join(u.cfg.RootFolder, slug)
}

func (u *Uploader) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.cfg.Timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, u.cfg.Timeout)
}
