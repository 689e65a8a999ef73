package service

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"bepl-backend/internal/domains/contact/model"
	"bepl-backend/internal/infrastructure/email"
	"bepl-backend/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type memRepo struct {
	mu    sync.Mutex
	items []model.Contact
}

func (m *memRepo) index(id uuid.UUID) int {
	for i, c := range m.items {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (m *memRepo) Create(_ context.Context, req model.SubmitContactRequest) (*model.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := model.Contact{
		ID: uuid.New(), Name: req.Name, Email: req.Email, Phone: req.Phone, Company: req.Company,
		Subject: req.Subject, Message: req.Message, Status: model.StatusNew,
		CreatedAt: time.Now(),
	}
	m.items = append(m.items, c)
	return &c, nil
}

func (m *memRepo) MarkEmailSent(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.index(id); i >= 0 {
		m.items[i].EmailSent = true
	}
	return nil
}

func (m *memRepo) List(ctx context.Context, f model.ListFilter) ([]model.Contact, int64, error) {
	all, _ := m.ListAll(ctx, f.Status)
	return all, int64(len(all)), nil
}

func (m *memRepo) ListAll(_ context.Context, status string) ([]model.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Contact{}
	for _, c := range m.items {
		if status == "" || c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(id)
	if i < 0 {
		return nil, model.ErrContactNotFound
	}
	c := m.items[i]
	return &c, nil
}

func (m *memRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) (*model.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(id)
	if i < 0 {
		return nil, model.ErrContactNotFound
	}
	m.items[i].Status = status
	c := m.items[i]
	return &c, nil
}

func (m *memRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(id)
	if i < 0 {
		return model.ErrContactNotFound
	}
	m.items = append(m.items[:i], m.items[i+1:]...)
	return nil
}

type fakeNotifier struct {
	confirmErr error
	notifyErr  error
	calls      []string
}

func result(err error) email.Result {
	if err != nil {
		return email.Result{Err: err}
	}
	return email.Result{Success: true, MessageID: "<x@test>"}
}

func (f *fakeNotifier) ContactConfirmation(_ context.Context, d email.ContactData) email.Result {
	f.calls = append(f.calls, "confirmation:"+d.Email)
	return result(f.confirmErr)
}

func (f *fakeNotifier) ContactNotification(_ context.Context, d email.ContactData) email.Result {
	f.calls = append(f.calls, "notification:"+d.Subject)
	return result(f.notifyErr)
}

func validRequest() model.SubmitContactRequest {
	return model.SubmitContactRequest{
		Name:    "Asha Patel",
		Email:   " Asha@Example.COM ",
		Subject: "Crane hire",
		Message: "Need a 250T crane in Hazira",
	}
}

func TestSubmit_EmailFlag(t *testing.T) {
	boom := errors.New("smtp down")
	tests := []struct {
		name      string
		notifier  *fakeNotifier
		wantFlag  bool
		wantCalls int
	}{
		{"both delivered", &fakeNotifier{}, true, 2},
		{"confirmation failed", &fakeNotifier{confirmErr: boom}, false, 2},
		{"notification failed", &fakeNotifier{notifyErr: boom}, false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memRepo{}
			svc := NewService(repo, tt.notifier)

			res, err := svc.Submit(context.Background(), validRequest())
			require.NoError(t, err)
			require.Len(t, repo.items, 1)

			stored := repo.items[0]
			assert.Equal(t, res.ID, stored.ID)
			assert.Equal(t, "asha@example.com", stored.Email)
			assert.Equal(t, tt.wantFlag, stored.EmailSent)
			assert.Len(t, tt.notifier.calls, tt.wantCalls)
		})
	}
}

func TestSubmit_ValidationPersistsNothing(t *testing.T) {
	repo := &memRepo{}
	notifier := &fakeNotifier{}
	req := validRequest()
	req.Subject = "   "
	req.Email = "not-an-email"

	_, err := NewService(repo, notifier).Submit(context.Background(), req)

	appErr := apperror.From(err)
	require.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Equal(t, []apperror.FieldError{
		{Field: "email", Message: "Valid email is required"},
		{Field: "subject", Message: "Subject is required"},
	}, appErr.Errors)
	assert.Empty(t, repo.items)
	assert.Empty(t, notifier.calls)
}

func TestContactLifecycle(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo, &fakeNotifier{})
	ctx := context.Background()

	res, err := svc.Submit(ctx, validRequest())
	require.NoError(t, err)
	id := res.ID.String()

	list, total, err := svc.List(ctx, model.ListFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, model.StatusNew, list[0].Status)

	_, err = svc.UpdateStatus(ctx, id, "archived")
	appErr := apperror.From(err)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Equal(t, "Invalid status. Must be new, read, or replied", appErr.Message)

	updated, err := svc.UpdateStatus(ctx, id, model.StatusReplied)
	require.NoError(t, err)
	assert.Equal(t, model.StatusReplied, updated.Status)

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusReplied, got.Status)

	require.NoError(t, svc.Delete(ctx, id))
	_, err = svc.Get(ctx, id)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.True(t, apperror.Is(svc.Delete(ctx, id), apperror.KindNotFound))
}

func TestExport(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo, &fakeNotifier{})
	ctx := context.Background()

	_, err := svc.Submit(ctx, validRequest())
	require.NoError(t, err)

	data, err := svc.Export(ctx, "")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Contacts")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Name", rows[0][1])
	assert.Equal(t, "asha@example.com", rows[1][2])

	_, err = svc.Export(ctx, "bogus")
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}
