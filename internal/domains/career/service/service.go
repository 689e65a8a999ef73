package service

import (
	"bytes"
	"context"
	"errors"

	"bepl-backend/internal/domains/career/model"
	"bepl-backend/internal/domains/career/repository"
	"bepl-backend/internal/infrastructure/email"
	"bepl-backend/internal/infrastructure/export"
	"bepl-backend/internal/infrastructure/storage"
	"bepl-backend/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	ResumeFolder = "careers"

	notFoundMessage      = "Application not found"
	invalidStatusMessage = "Invalid status. Must be pending, shortlisted, or rejected"
)

type careerService struct {
	repo     repository.Repository
	resumes  ResumeStore
	notifier Notifier
}

func NewService(repo repository.Repository, resumes ResumeStore, notifier Notifier) ServiceInterface {
	return &careerService{repo: repo, resumes: resumes, notifier: notifier}
}

func (s *careerService) Submit(ctx context.Context, req model.SubmitCareerRequest, resume *storage.File) (*model.SubmitResult, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}
	if resume == nil {
		return nil, apperror.Validation("Resume upload is required")
	}

	uploaded, err := s.resumes.UploadPDF(ctx, *resume, ResumeFolder)
	if err != nil {
		return nil, apperror.Upstream(storage.Message(err), err)
	}
	if uploaded.SecureURL == "" {
		return nil, apperror.Validation("Resume upload is required")
	}

	career, err := s.repo.Create(ctx, model.NewCareer{
		SubmitCareerRequest: req,
		ResumeURL:           uploaded.SecureURL,
		ResumePublicID:      uploaded.PublicID,
	})
	if err != nil {
		s.removeResume(context.WithoutCancel(ctx), uploaded.PublicID)
		return nil, apperror.Internal(err)
	}

	notifyCtx := context.WithoutCancel(ctx)
	result := s.notifier.CareerConfirmation(notifyCtx, email.CareerData{
		Name:     career.Name,
		Email:    career.Email,
		Position: career.Position,
	})
	if result.Success {
		if err := s.repo.MarkEmailSent(notifyCtx, career.ID); err != nil {
			log.Warn().Err(err).Str("career_id", career.ID.String()).Msg("Failed to flag career email as sent")
		}
	} else {
		log.Warn().Err(result.Err).Str("career_id", career.ID.String()).Msg("Career confirmation not delivered")
	}

	return &model.SubmitResult{ID: career.ID}, nil
}

func (s *careerService) List(ctx context.Context, filter model.ListFilter) ([]model.Career, int64, error) {
	careers, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return careers, total, nil
}

func (s *careerService) Get(ctx context.Context, id string) (*model.Career, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.NotFound(notFoundMessage)
	}
	career, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, mapError(err)
	}
	return career, nil
}

// UpdateStatus commits the new status, then notifies the applicant.
// A failed email never reverts the status.
func (s *careerService) UpdateStatus(ctx context.Context, id string, status string) (*model.Career, error) {
	if !model.ValidStatus(status) {
		return nil, apperror.Validation(invalidStatusMessage)
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.NotFound(notFoundMessage)
	}

	career, err := s.repo.UpdateStatus(ctx, uid, status)
	if err != nil {
		return nil, mapError(err)
	}

	result := s.notifier.CareerStatus(context.WithoutCancel(ctx), email.CareerData{
		Name:     career.Name,
		Email:    career.Email,
		Position: career.Position,
	}, status)
	if !result.Success && !result.Skipped {
		log.Warn().Err(result.Err).Str("career_id", career.ID.String()).Str("status", status).
			Msg("Career status email not delivered")
	}

	return career, nil
}

func (s *careerService) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return apperror.NotFound(notFoundMessage)
	}
	career, err := s.repo.Delete(ctx, uid)
	if err != nil {
		return mapError(err)
	}
	s.removeResume(context.WithoutCancel(ctx), career.ResumePublicID)
	return nil
}

func (s *careerService) removeResume(ctx context.Context, publicID string) {
	if publicID == "" {
		return
	}
	if err := s.resumes.Delete(ctx, publicID); err != nil {
		log.Warn().Err(err).Str("public_id", publicID).Msg("Failed to delete resume object")
	}
}

func (s *careerService) Export(ctx context.Context, status string) ([]byte, error) {
	if status != "" && !model.ValidStatus(status) {
		return nil, apperror.Validation(invalidStatusMessage)
	}

	careers, err := s.repo.ListAll(ctx, status)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	sheet := export.Sheet{
		Name: "Careers",
		Headers: []string{"ID", "Name", "Email", "Phone", "Position", "Experience",
			"Cover Letter", "Resume", "Status", "Email Sent", "Applied At"},
	}
	for _, c := range careers {
		sheet.Rows = append(sheet.Rows, []any{
			c.ID.String(), c.Name, c.Email, c.Phone, c.Position, c.Experience,
			c.CoverLetter, c.Resume, c.Status, c.EmailSent, c.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		})
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, sheet); err != nil {
		return nil, apperror.Internal(err)
	}
	return buf.Bytes(), nil
}

func mapError(err error) error {
	if errors.Is(err, model.ErrCareerNotFound) {
		return apperror.NotFound(notFoundMessage)
	}
	return apperror.Internal(err)
}
