package service

import (
	"context"

	"bepl-backend/internal/domains/career/model"
	"bepl-backend/internal/infrastructure/email"
	"bepl-backend/internal/infrastructure/storage"
)

type ServiceInterface interface {
	// Submit stores the resume, persists the application and sends the
	// confirmation. resume nil is rejected before anything is written.
	Submit(ctx context.Context, req model.SubmitCareerRequest, resume *storage.File) (*model.SubmitResult, error)
	List(ctx context.Context, filter model.ListFilter) ([]model.Career, int64, error)
	Get(ctx context.Context, id string) (*model.Career, error)
	UpdateStatus(ctx context.Context, id string, status string) (*model.Career, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, status string) ([]byte, error)
}

// ResumeStore is the subset of the uploader used for resumes.
type ResumeStore interface {
	UploadPDF(ctx context.Context, file storage.File, folder string) (*storage.UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}

// Notifier is the subset of the email dispatcher used for applicants.
type Notifier interface {
	CareerConfirmation(ctx context.Context, data email.CareerData) email.Result
	CareerStatus(ctx context.Context, data email.CareerData, status string) email.Result
}
