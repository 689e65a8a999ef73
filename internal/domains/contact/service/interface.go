package service

import (
	"context"

	"bepl-backend/internal/domains/contact/model"
	"bepl-backend/internal/infrastructure/email"
)

type ServiceInterface interface {
	Submit(ctx context.Context, req model.SubmitContactRequest) (*model.SubmitResult, error)
	List(ctx context.Context, filter model.ListFilter) ([]model.Contact, int64, error)
	Get(ctx context.Context, id string) (*model.Contact, error)
	UpdateStatus(ctx context.Context, id string, status string) (*model.Contact, error)
	Delete(ctx context.Context, id string) error
	// Export renders contacts (optionally filtered by status) as an XLSX workbook.
	Export(ctx context.Context, status string) ([]byte, error)
}

// Notifier is the subset of the email dispatcher used for contacts.
type Notifier interface {
	ContactConfirmation(ctx context.Context, data email.ContactData) email.Result
	ContactNotification(ctx context.Context, data email.ContactData) email.Result
}
