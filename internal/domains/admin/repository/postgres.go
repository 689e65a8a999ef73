package repository

import (
	"context"
	"errors"
	"fmt"

	"bepl-backend/internal/domains/admin/model"
	"bepl-backend/internal/infrastructure/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const selectColumns = `id, username, email, password_hash, role, last_login_at, created_at, updated_at`

type postgresRepository struct {
	db database.DBTX
}

func NewRepository(db database.DBTX) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) FindByLogin(ctx context.Context, login string) (*model.Admin, error) {
	query := `SELECT ` + selectColumns + ` FROM admins WHERE username = $1`
	if model.LoginIsEmail(login) {
		query = `SELECT ` + selectColumns + ` FROM admins WHERE email = $1`
	}
	return scanOne(r.db.QueryRow(ctx, query, login))
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	return scanOne(r.db.QueryRow(ctx, `SELECT `+selectColumns+` FROM admins WHERE id = $1`, id))
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Admin, error) {
	rows, err := r.db.Query(ctx, `SELECT `+selectColumns+` FROM admins ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	defer rows.Close()

	admins := []model.Admin{}
	for rows.Next() {
		a, err := scan(rows)
		if err != nil {
			return nil, err
		}
		admins = append(admins, *a)
	}
	return admins, rows.Err()
}

func (r *postgresRepository) Create(ctx context.Context, a model.NewAdmin) (*model.Admin, error) {
	query := `INSERT INTO admins (username, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + selectColumns

	admin, err := scanOne(r.db.QueryRow(ctx, query, a.Username, a.Email, a.PasswordHash, a.Role))
	if err != nil {
		if database.IsUniqueViolation(err, "admins_username_key") || database.IsUniqueViolation(err, "admins_email_key") {
			return nil, model.ErrDuplicateAdmin
		}
		return nil, err
	}
	return admin, nil
}

func (r *postgresRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE admins SET last_login_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}

func scan(row pgx.Row) (*model.Admin, error) {
	var a model.Admin
	err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.Role,
		&a.LastLoginAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func scanOne(row pgx.Row) (*model.Admin, error) {
	a, err := scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to scan admin: %w", err)
	}
	return a, nil
}
