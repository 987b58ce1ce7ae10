package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"forkful/internal/domain"
	"forkful/internal/port"
)

type recipeRepo struct {
	db *sqlx.DB
}

// NewRecipeRepository creates a PostgreSQL-backed recipe repository.
func NewRecipeRepository(db *sqlx.DB) port.RecipeRepository {
	return &recipeRepo{db: db}
}

func (r *recipeRepo) Create(ctx context.Context, recipe *domain.Recipe) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO recipes (
			id, title, description, ingredients, instructions, servings,
			serving_size, prep_time_minutes, cook_time_minutes, total_time_minutes,
			tags, cuisine, image_urls, source_kind, source_url, source_file_key,
			is_favorite, is_template, created_at, updated_at
		) VALUES (
			:id, :title, :description, :ingredients, :instructions, :servings,
			:serving_size, :prep_time_minutes, :cook_time_minutes, :total_time_minutes,
			:tags, :cuisine, :image_urls, :source_kind, :source_url, :source_file_key,
			:is_favorite, :is_template, :created_at, :updated_at
		)`, recipe)
	if err != nil {
		return fmt.Errorf("recipeRepo.Create: %w", err)
	}
	return nil
}

func (r *recipeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	var rec domain.Recipe
	err := r.db.GetContext(ctx, &rec, `SELECT * FROM recipes WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRecipeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("recipeRepo.GetByID: %w", err)
	}
	return &rec, nil
}

func (r *recipeRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Recipe, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(`SELECT * FROM recipes WHERE id IN (?) ORDER BY created_at DESC`, ids)
	if err != nil {
		return nil, fmt.Errorf("recipeRepo.GetByIDs: %w", err)
	}
	var recs []domain.Recipe
	if err := r.db.SelectContext(ctx, &recs, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("recipeRepo.GetByIDs: %w", err)
	}
	return recs, nil
}

func (r *recipeRepo) List(ctx context.Context, offset, limit int) ([]domain.Recipe, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM recipes`); err != nil {
		return nil, 0, fmt.Errorf("recipeRepo.List count: %w", err)
	}
	var recs []domain.Recipe
	err := r.db.SelectContext(ctx, &recs,
		`SELECT * FROM recipes ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("recipeRepo.List: %w", err)
	}
	return recs, total, nil
}

func (r *recipeRepo) ListBySourceKind(ctx context.Context, kind domain.SourceKind, offset, limit int) ([]domain.Recipe, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM recipes WHERE source_kind = $1`, kind); err != nil {
		return nil, 0, fmt.Errorf("recipeRepo.ListBySourceKind count: %w", err)
	}
	var recs []domain.Recipe
	err := r.db.SelectContext(ctx, &recs,
		`SELECT * FROM recipes WHERE source_kind = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		kind, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("recipeRepo.ListBySourceKind: %w", err)
	}
	return recs, total, nil
}

func (r *recipeRepo) ListFavorites(ctx context.Context, offset, limit int) ([]domain.Recipe, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM recipes WHERE is_favorite`); err != nil {
		return nil, 0, fmt.Errorf("recipeRepo.ListFavorites count: %w", err)
	}
	var recs []domain.Recipe
	err := r.db.SelectContext(ctx, &recs,
		`SELECT * FROM recipes WHERE is_favorite ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("recipeRepo.ListFavorites: %w", err)
	}
	return recs, total, nil
}

func (r *recipeRepo) SearchByTag(ctx context.Context, tag string, offset, limit int) ([]domain.Recipe, int, error) {
	// Tags are stored as a JSONB array of lower-cased strings.
	var total int
	if err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM recipes WHERE tags @> to_jsonb(ARRAY[$1::text])`, tag); err != nil {
		return nil, 0, fmt.Errorf("recipeRepo.SearchByTag count: %w", err)
	}
	var recs []domain.Recipe
	err := r.db.SelectContext(ctx, &recs,
		`SELECT * FROM recipes WHERE tags @> to_jsonb(ARRAY[$1::text]) ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		tag, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("recipeRepo.SearchByTag: %w", err)
	}
	return recs, total, nil
}

func (r *recipeRepo) Update(ctx context.Context, recipe *domain.Recipe) error {
	recipe.UpdatedAt = time.Now().UTC()
	res, err := r.db.NamedExecContext(ctx, `
		UPDATE recipes SET
			title = :title,
			description = :description,
			ingredients = :ingredients,
			instructions = :instructions,
			servings = :servings,
			serving_size = :serving_size,
			prep_time_minutes = :prep_time_minutes,
			cook_time_minutes = :cook_time_minutes,
			total_time_minutes = :total_time_minutes,
			tags = :tags,
			cuisine = :cuisine,
			image_urls = :image_urls,
			source_url = :source_url,
			source_file_key = :source_file_key,
			is_favorite = :is_favorite,
			is_template = :is_template,
			updated_at = :updated_at
		WHERE id = :id`, recipe)
	if err != nil {
		return fmt.Errorf("recipeRepo.Update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("recipeRepo.Update rows: %w", err)
	}
	if n == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

func (r *recipeRepo) SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE recipes SET is_favorite = $1, updated_at = $2 WHERE id = $3`,
		favorite, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("recipeRepo.SetFavorite: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("recipeRepo.SetFavorite rows: %w", err)
	}
	if n == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

func (r *recipeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("recipeRepo.Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("recipeRepo.Delete rows: %w", err)
	}
	if n == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}
