package repository

import (
	"context"
	"errors"
	"fmt"

	"bepl-backend/internal/domains/services/model"
	"bepl-backend/internal/infrastructure/database"
	"bepl-backend/internal/shared/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	selectColumns  = `id, slug, title, description, image, features, icon, sort_order, is_active, created_at, updated_at`
	slugConstraint = "services_slug_key"
)

var sortable = map[string]bool{"sort_order": true, "created_at": true}

type postgresRepository struct {
	db database.DBTX
}

func NewRepository(db database.DBTX) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) ListActive(ctx context.Context) ([]model.Service, error) {
	query := `SELECT ` + selectColumns + ` FROM services WHERE is_active = TRUE` +
		database.OrderBy(sortable, "sort_order asc", "created_at desc")

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return collect(rows)
}

func (r *postgresRepository) List(ctx context.Context, filter model.ListFilter) ([]model.Service, int64, error) {
	var where database.Where
	if filter.Active != nil {
		where.Eq("is_active", *filter.Active)
	}
	clause, args := where.SQL()

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM services`+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count services: %w", err)
	}

	query := `SELECT ` + selectColumns + ` FROM services` + clause +
		database.OrderBy(sortable, "sort_order asc", "created_at desc") +
		fmt.Sprintf(" LIMIT %s OFFSET %s", where.Next(1), where.Next(2))
	args = append(args, filter.Limit, utils.Offset(filter.Page, filter.Limit))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list services: %w", err)
	}
	services, err := collect(rows)
	if err != nil {
		return nil, 0, err
	}
	return services, total, nil
}

func (r *postgresRepository) FindActive(ctx context.Context, id string) (*model.Service, error) {
	if uid, err := uuid.Parse(id); err == nil {
		row := r.db.QueryRow(ctx, `SELECT `+selectColumns+` FROM services WHERE id = $1 AND is_active = TRUE`, uid)
		svc, err := scanOne(row)
		if !errors.Is(err, model.ErrServiceNotFound) {
			return svc, err
		}
	}

	row := r.db.QueryRow(ctx, `SELECT `+selectColumns+` FROM services WHERE slug = $1 AND is_active = TRUE`, id)
	return scanOne(row)
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	return scanOne(r.db.QueryRow(ctx, `SELECT `+selectColumns+` FROM services WHERE id = $1`, id))
}

func (r *postgresRepository) Create(ctx context.Context, req model.ServiceRequest) (*model.Service, error) {
	query := `INSERT INTO services (slug, title, description, image, features, icon, sort_order, is_active)
		VALUES ($1, $2, $3, COALESCE($4, ''), COALESCE($5::text[], '{}'), COALESCE($6, ''),
			COALESCE($7, 0), COALESCE($8, TRUE))
		RETURNING ` + selectColumns

	svc, err := scanOne(r.db.QueryRow(ctx, query,
		req.Slug, req.Title, req.Description, req.Image, req.Features, req.Icon, req.Order, req.IsActive))
	if database.IsUniqueViolation(err, slugConstraint) {
		return nil, model.ErrDuplicateSlug
	}
	return svc, err
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, req model.ServiceRequest) (*model.Service, error) {
	query := `UPDATE services SET
			slug = $2, title = $3, description = $4,
			image = COALESCE($5, image),
			features = COALESCE($6::text[], features),
			icon = COALESCE($7, icon),
			sort_order = COALESCE($8, sort_order),
			is_active = COALESCE($9, is_active),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + selectColumns

	svc, err := scanOne(r.db.QueryRow(ctx, query,
		id, req.Slug, req.Title, req.Description, req.Image, req.Features, req.Icon, req.Order, req.IsActive))
	if database.IsUniqueViolation(err, slugConstraint) {
		return nil, model.ErrDuplicateSlug
	}
	return svc, err
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrServiceNotFound
	}
	return nil
}

func (r *postgresRepository) UpsertBySlug(ctx context.Context, req model.ServiceRequest) (*model.Service, error) {
	query := `INSERT INTO services (slug, title, description, image, features, icon, sort_order, is_active)
		VALUES ($1, $2, $3, COALESCE($4, ''), COALESCE($5::text[], '{}'), COALESCE($6, ''),
			COALESCE($7, 0), COALESCE($8, TRUE))
		ON CONFLICT ON CONSTRAINT ` + slugConstraint + ` DO UPDATE SET
			title = EXCLUDED.title, description = EXCLUDED.description,
			image = COALESCE($4, services.image),
			features = COALESCE($5::text[], services.features),
			icon = COALESCE($6, services.icon),
			sort_order = EXCLUDED.sort_order, is_active = EXCLUDED.is_active, updated_at = NOW()
		RETURNING ` + selectColumns

	return scanOne(r.db.QueryRow(ctx, query,
		req.Slug, req.Title, req.Description, req.Image, req.Features, req.Icon, req.Order, req.IsActive))
}

func scan(row pgx.Row) (*model.Service, error) {
	var s model.Service
	err := row.Scan(&s.ID, &s.Slug, &s.Title, &s.Description, &s.Image, &s.Features,
		&s.Icon, &s.Order, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if s.Features == nil {
		s.Features = []string{}
	}
	return &s, nil
}

func scanOne(row pgx.Row) (*model.Service, error) {
	s, err := scan(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan service: %w", err)
	}
	return s, nil
}

func collect(rows pgx.Rows) ([]model.Service, error) {
	defer rows.Close()

	services := []model.Service{}
	for rows.Next() {
		s, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate services: %w", err)
	}
	return services, nil
}
