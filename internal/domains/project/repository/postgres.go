package repository

import (
	"context"
	"errors"
	"fmt"

	"bepl-backend/internal/domains/project/model"
	"bepl-backend/internal/infrastructure/database"
	"bepl-backend/internal/shared/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const selectColumns = `id, title, client, category, location, duration, description, image, sort_order, is_active, created_at, updated_at`

var sortable = map[string]bool{"sort_order": true, "created_at": true}

type postgresRepository struct {
	db database.DBTX
}

func NewRepository(db database.DBTX) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) List(ctx context.Context, filter model.ListFilter) ([]model.Project, int64, error) {
	var where database.Where
	if filter.Category != "" {
		where.Eq("category", filter.Category)
	}
	if filter.Active != nil {
		where.Eq("is_active", *filter.Active)
	}
	clause, args := where.SQL()

	query := `SELECT ` + selectColumns + ` FROM projects` + clause +
		database.OrderBy(sortable, "sort_order asc", "created_at desc")

	var total int64
	if filter.Limit > 0 {
		if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM projects`+clause, args...).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("failed to count projects: %w", err)
		}
		query += fmt.Sprintf(" LIMIT %s OFFSET %s", where.Next(1), where.Next(2))
		args = append(args, filter.Limit, utils.Offset(filter.Page, filter.Limit))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	projects, err := collect(rows)
	if err != nil {
		return nil, 0, err
	}
	if filter.Limit == 0 {
		total = int64(len(projects))
	}
	return projects, total, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID, activeOnly bool) (*model.Project, error) {
	query := `SELECT ` + selectColumns + ` FROM projects WHERE id = $1`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	return scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *postgresRepository) Create(ctx context.Context, req model.ProjectRequest) (*model.Project, error) {
	query := `INSERT INTO projects (title, client, category, location, duration, description, image, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, ''), COALESCE($8, 0), COALESCE($9, TRUE))
		RETURNING ` + selectColumns

	return scanOne(r.db.QueryRow(ctx, query, args(req)...))
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, req model.ProjectRequest) (*model.Project, error) {
	query := `UPDATE projects SET
			title = $2, client = $3, category = $4, location = $5, duration = $6,
			description = $7,
			image = COALESCE($8, image),
			sort_order = COALESCE($9, sort_order),
			is_active = COALESCE($10, is_active),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + selectColumns

	return scanOne(r.db.QueryRow(ctx, query, append([]any{id}, args(req)...)...))
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrProjectNotFound
	}
	return nil
}

// UpsertByTitleClient updates the oldest project with the same title and
// client, or inserts one when none matches. Title and client are not unique,
// so callers that need this to be atomic run it inside a transaction.
func (r *postgresRepository) UpsertByTitleClient(ctx context.Context, req model.ProjectRequest) (*model.Project, error) {
	update := `UPDATE projects SET
			category = $3, location = $4, duration = $5, description = $6,
			image = COALESCE($7, image),
			sort_order = COALESCE($8, sort_order),
			is_active = COALESCE($9, is_active),
			updated_at = NOW()
		WHERE id = (
			SELECT id FROM projects WHERE title = $1 AND client = $2
			ORDER BY created_at ASC LIMIT 1
			FOR UPDATE
		)
		RETURNING ` + selectColumns

	p, err := scanOne(r.db.QueryRow(ctx, update, args(req)...))
	if !errors.Is(err, model.ErrProjectNotFound) {
		return p, err
	}
	return r.Create(ctx, req)
}

func args(req model.ProjectRequest) []any {
	return []any{req.Title, req.Client, req.Category, req.Location, req.Duration,
		req.Description, req.Image, req.Order, req.IsActive}
}

func scan(row pgx.Row) (*model.Project, error) {
	var p model.Project
	err := row.Scan(&p.ID, &p.Title, &p.Client, &p.Category, &p.Location, &p.Duration,
		&p.Description, &p.Image, &p.Order, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanOne(row pgx.Row) (*model.Project, error) {
	p, err := scan(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}
	return p, nil
}

func collect(rows pgx.Rows) ([]model.Project, error) {
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}
	return projects, nil
}
