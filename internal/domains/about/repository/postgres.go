package repository

import (
	"context"
	"fmt"
	"strings"

	"bepl-backend/internal/domains/about/model"
	"bepl-backend/internal/infrastructure/database"

	"github.com/jackc/pgx/v5"
)

const selectColumns = `id, hero_title, hero_description, about_content, vision, mission,
	core_values, milestones, certifications, team_stats, md_message, created_at, updated_at`

type postgresRepository struct {
	db database.DBTX
}

func NewRepository(db database.DBTX) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Get(ctx context.Context, defaults *model.About) (*model.About, error) {
	insert := `INSERT INTO about (singleton_key, hero_title, core_values, milestones, certifications, team_stats, md_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (singleton_key) DO NOTHING`
	_, err := r.db.Exec(ctx, insert, model.SingletonKey,
		defaults.HeroTitle, defaults.Values, defaults.Milestones, defaults.Certifications,
		defaults.TeamStats, defaults.MDMessage)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure about document: %w", err)
	}

	row := r.db.QueryRow(ctx, `SELECT `+selectColumns+` FROM about WHERE singleton_key = $1`, model.SingletonKey)
	about, err := scanAbout(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get about document: %w", err)
	}
	return about, nil
}

// column pairs a table column with its insert value and whether the
// request carried it.
type column struct {
	name    string
	value   any
	present bool
}

func (r *postgresRepository) Upsert(ctx context.Context, req model.UpdateAboutRequest, defaults *model.About) (*model.About, error) {
	cols := []column{
		{"hero_title", pick(req.HeroTitle, defaults.HeroTitle), req.HeroTitle != nil},
		{"hero_description", pick(req.HeroDescription, defaults.HeroDescription), req.HeroDescription != nil},
		{"about_content", pick(req.AboutContent, defaults.AboutContent), req.AboutContent != nil},
		{"vision", pick(req.Vision, defaults.Vision), req.Vision != nil},
		{"mission", pick(req.Mission, defaults.Mission), req.Mission != nil},
		{"core_values", pick(req.Values, defaults.Values), req.Values != nil},
		{"milestones", pick(req.Milestones, defaults.Milestones), req.Milestones != nil},
		{"certifications", pick(req.Certifications, defaults.Certifications), req.Certifications != nil},
		{"team_stats", pick(req.TeamStats, defaults.TeamStats), req.TeamStats != nil},
		{"md_message", pick(req.MDMessage, defaults.MDMessage), req.MDMessage != nil},
	}

	query, args := buildUpsert(cols)
	about, err := scanAbout(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert about document: %w", err)
	}
	return about, nil
}

// buildUpsert renders INSERT ... ON CONFLICT DO UPDATE where only the
// columns present in the request overwrite the stored row.
func buildUpsert(cols []column) (string, []any) {
	names := []string{"singleton_key"}
	placeholders := []string{"$1"}
	args := []any{model.SingletonKey}
	var sets []string

	for _, c := range cols {
		args = append(args, c.value)
		names = append(names, c.name)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
		if c.present {
			sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", c.name, c.name))
		}
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf(`INSERT INTO about (%s) VALUES (%s)
		ON CONFLICT (singleton_key) DO UPDATE SET %s
		RETURNING %s`,
		strings.Join(names, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(sets, ", "),
		selectColumns,
	)
	return query, args
}

func pick[T any](v *T, def T) T {
	if v != nil {
		return *v
	}
	return def
}

func scanAbout(row pgx.Row) (*model.About, error) {
	var a model.About
	err := row.Scan(
		&a.ID,
		&a.HeroTitle,
		&a.HeroDescription,
		&a.AboutContent,
		&a.Vision,
		&a.Mission,
		&a.Values,
		&a.Milestones,
		&a.Certifications,
		&a.TeamStats,
		&a.MDMessage,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if a.Values == nil {
		a.Values = []model.Value{}
	}
	if a.Milestones == nil {
		a.Milestones = []model.Milestone{}
	}
	if a.Certifications == nil {
		a.Certifications = []string{}
	}
	return &a, nil
}
