package repository

import (
	"context"
	"errors"
	"fmt"

	"bepl-backend/internal/domains/contact/model"
	"bepl-backend/internal/infrastructure/database"
	"bepl-backend/internal/shared/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const selectColumns = `id, name, email, phone, company, subject, message, status, email_sent, created_at, updated_at`

var sortable = map[string]bool{"created_at": true}

type postgresRepository struct {
	db database.DBTX
}

func NewRepository(db database.DBTX) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, req model.SubmitContactRequest) (*model.Contact, error) {
	query := `INSERT INTO contacts (name, email, phone, company, subject, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + selectColumns

	return scanOne(r.db.QueryRow(ctx, query,
		req.Name, req.Email, req.Phone, req.Company, req.Subject, req.Message))
}

func (r *postgresRepository) MarkEmailSent(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE contacts SET email_sent = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark contact email sent: %w", err)
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context, filter model.ListFilter) ([]model.Contact, int64, error) {
	var where database.Where
	if filter.Status != "" {
		where.Eq("status", filter.Status)
	}
	clause, args := where.SQL()

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count contacts: %w", err)
	}

	query := `SELECT ` + selectColumns + ` FROM contacts` + clause +
		database.OrderBy(sortable, "created_at desc") +
		fmt.Sprintf(" LIMIT %s OFFSET %s", where.Next(1), where.Next(2))
	args = append(args, filter.Limit, utils.Offset(filter.Page, filter.Limit))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contacts: %w", err)
	}
	contacts, err := collect(rows)
	if err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

func (r *postgresRepository) ListAll(ctx context.Context, status string) ([]model.Contact, error) {
	var where database.Where
	if status != "" {
		where.Eq("status", status)
	}
	clause, args := where.SQL()

	rows, err := r.db.Query(ctx, `SELECT `+selectColumns+` FROM contacts`+clause+
		database.OrderBy(sortable, "created_at desc"), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return collect(rows)
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Contact, error) {
	return scanOne(r.db.QueryRow(ctx, `SELECT `+selectColumns+` FROM contacts WHERE id = $1`, id))
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Contact, error) {
	query := `UPDATE contacts SET status = $2, updated_at = NOW() WHERE id = $1 RETURNING ` + selectColumns
	return scanOne(r.db.QueryRow(ctx, query, id, status))
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrContactNotFound
	}
	return nil
}

func scan(row pgx.Row) (*model.Contact, error) {
	var c model.Contact
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Subject, &c.Message,
		&c.Status, &c.EmailSent, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanOne(row pgx.Row) (*model.Contact, error) {
	c, err := scan(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrContactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan contact: %w", err)
	}
	return c, nil
}

func collect(rows pgx.Rows) ([]model.Contact, error) {
	defer rows.Close()

	contacts := []model.Contact{}
	for rows.Next() {
		c, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}
	return contacts, nil
}
