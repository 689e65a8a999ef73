package service

import (
	"bytes"
	"context"
	"errors"

	"bepl-backend/internal/domains/contact/model"
	"bepl-backend/internal/domains/contact/repository"
	"bepl-backend/internal/infrastructure/email"
	"bepl-backend/internal/infrastructure/export"
	"bepl-backend/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	notFoundMessage      = "Contact not found"
	invalidStatusMessage = "Invalid status. Must be new, read, or replied"
)

type contactService struct {
	repo     repository.Repository
	notifier Notifier
}

func NewService(repo repository.Repository, notifier Notifier) ServiceInterface {
	return &contactService{repo: repo, notifier: notifier}
}

// Submit persists the contact first; email delivery afterwards only decides
// the emailSent flag and never fails the request.
func (s *contactService) Submit(ctx context.Context, req model.SubmitContactRequest) (*model.SubmitResult, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	contact, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	s.notify(context.WithoutCancel(ctx), contact)

	return &model.SubmitResult{ID: contact.ID}, nil
}

// notify flags the contact only when both the confirmation and the
// internal notification were delivered.
func (s *contactService) notify(ctx context.Context, contact *model.Contact) {
	data := email.ContactData{
		Name:    contact.Name,
		Email:   contact.Email,
		Phone:   contact.Phone,
		Company: contact.Company,
		Subject: contact.Subject,
		Message: contact.Message,
	}

	confirmation := s.notifier.ContactConfirmation(ctx, data)
	notification := s.notifier.ContactNotification(ctx, data)
	if !confirmation.Success || !notification.Success {
		log.Warn().
			Str("contact_id", contact.ID.String()).
			Bool("confirmation", confirmation.Success).
			Bool("notification", notification.Success).
			Msg("Contact emails not fully delivered")
		return
	}

	if err := s.repo.MarkEmailSent(ctx, contact.ID); err != nil {
		log.Warn().Err(err).Str("contact_id", contact.ID.String()).Msg("Failed to flag contact email as sent")
	}
}

func (s *contactService) List(ctx context.Context, filter model.ListFilter) ([]model.Contact, int64, error) {
	contacts, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return contacts, total, nil
}

func (s *contactService) Get(ctx context.Context, id string) (*model.Contact, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.NotFound(notFoundMessage)
	}
	contact, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, mapError(err)
	}
	return contact, nil
}

func (s *contactService) UpdateStatus(ctx context.Context, id string, status string) (*model.Contact, error) {
	if !model.ValidStatus(status) {
		return nil, apperror.Validation(invalidStatusMessage)
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.NotFound(notFoundMessage)
	}

	contact, err := s.repo.UpdateStatus(ctx, uid, status)
	if err != nil {
		return nil, mapError(err)
	}
	return contact, nil
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return apperror.NotFound(notFoundMessage)
	}
	if err := s.repo.Delete(ctx, uid); err != nil {
		return mapError(err)
	}
	return nil
}

func (s *contactService) Export(ctx context.Context, status string) ([]byte, error) {
	if status != "" && !model.ValidStatus(status) {
		return nil, apperror.Validation(invalidStatusMessage)
	}

	contacts, err := s.repo.ListAll(ctx, status)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	sheet := export.Sheet{
		Name:    "Contacts",
		Headers: []string{"ID", "Name", "Email", "Phone", "Company", "Subject", "Message", "Status", "Email Sent", "Submitted At"},
	}
	for _, c := range contacts {
		sheet.Rows = append(sheet.Rows, []any{
			c.ID.String(), c.Name, c.Email, c.Phone, c.Company, c.Subject, c.Message,
			c.Status, c.EmailSent, c.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		})
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, sheet); err != nil {
		return nil, apperror.Internal(err)
	}
	return buf.Bytes(), nil
}

func mapError(err error) error {
	if errors.Is(err, model.ErrContactNotFound) {
		return apperror.NotFound(notFoundMessage)
	}
	return apperror.Internal(err)
}
