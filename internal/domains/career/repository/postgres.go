package repository

import (
	"context"
	"errors"
	"fmt"

	"bepl-backend/internal/domains/career/model"
	"bepl-backend/internal/infrastructure/database"
	"bepl-backend/internal/shared/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const selectColumns = `id, name, email, phone, position, experience, cover_letter,
	resume_url, resume_public_id, status, email_sent, created_at, updated_at`

var sortable = map[string]bool{"created_at": true}

type postgresRepository struct {
	db database.DBTX
}

func NewRepository(db database.DBTX) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, c model.NewCareer) (*model.Career, error) {
	query := `INSERT INTO careers (name, email, phone, position, experience, cover_letter, resume_url, resume_public_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + selectColumns

	return scanOne(r.db.QueryRow(ctx, query,
		c.Name, c.Email, c.Phone, c.Position, c.Experience, c.CoverLetter, c.ResumeURL, c.ResumePublicID))
}

func (r *postgresRepository) MarkEmailSent(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE careers SET email_sent = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark career email sent: %w", err)
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context, filter model.ListFilter) ([]model.Career, int64, error) {
	var where database.Where
	if filter.Status != "" {
		where.Eq("status", filter.Status)
	}
	clause, args := where.SQL()

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM careers`+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count careers: %w", err)
	}

	query := `SELECT ` + selectColumns + ` FROM careers` + clause +
		database.OrderBy(sortable, "created_at desc") +
		fmt.Sprintf(" LIMIT %s OFFSET %s", where.Next(1), where.Next(2))
	args = append(args, filter.Limit, utils.Offset(filter.Page, filter.Limit))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list careers: %w", err)
	}
	careers, err := collect(rows)
	if err != nil {
		return nil, 0, err
	}
	return careers, total, nil
}

func (r *postgresRepository) ListAll(ctx context.Context, status string) ([]model.Career, error) {
	var where database.Where
	if status != "" {
		where.Eq("status", status)
	}
	clause, args := where.SQL()

	rows, err := r.db.Query(ctx, `SELECT `+selectColumns+` FROM careers`+clause+
		database.OrderBy(sortable, "created_at desc"), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list careers: %w", err)
	}
	return collect(rows)
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Career, error) {
	return scanOne(r.db.QueryRow(ctx, `SELECT `+selectColumns+` FROM careers WHERE id = $1`, id))
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Career, error) {
	query := `UPDATE careers SET status = $2, updated_at = NOW() WHERE id = $1 RETURNING ` + selectColumns
	return scanOne(r.db.QueryRow(ctx, query, id, status))
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Career, error) {
	return scanOne(r.db.QueryRow(ctx, `DELETE FROM careers WHERE id = $1 RETURNING `+selectColumns, id))
}

func scan(row pgx.Row) (*model.Career, error) {
	var c model.Career
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Position, &c.Experience, &c.CoverLetter,
		&c.Resume, &c.ResumePublicID, &c.Status, &c.EmailSent, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanOne(row pgx.Row) (*model.Career, error) {
	c, err := scan(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrCareerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan career: %w", err)
	}
	return c, nil
}

func collect(rows pgx.Rows) ([]model.Career, error) {
	defer rows.Close()

	careers := []model.Career{}
	for rows.Next() {
		c, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan career: %w", err)
		}
		careers = append(careers, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate careers: %w", err)
	}
	return careers, nil
}
