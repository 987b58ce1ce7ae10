package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"forkful/internal/domain"
	"forkful/internal/port"
)

type mealPlanRepo struct {
	db *sqlx.DB
}

// NewMealPlanRepository creates a PostgreSQL-backed meal plan repository.
func NewMealPlanRepository(db *sqlx.DB) port.MealPlanRepository {
	return &mealPlanRepo{db: db}
}

func (r *mealPlanRepo) Create(ctx context.Context, plan *domain.MealPlan) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO meal_plans (id, name, start_date, created_at, updated_at)
		VALUES (:id, :name, :start_date, :created_at, :updated_at)`, plan)
	if err != nil {
		return fmt.Errorf("mealPlanRepo.Create: %w", err)
	}
	return nil
}

func (r *mealPlanRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.MealPlan, error) {
	var plan domain.MealPlan
	err := r.db.GetContext(ctx, &plan, `SELECT * FROM meal_plans WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mealPlanRepo.GetByID: %w", err)
	}
	return &plan, nil
}

func (r *mealPlanRepo) List(ctx context.Context, offset, limit int) ([]domain.MealPlan, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM meal_plans`); err != nil {
		return nil, 0, fmt.Errorf("mealPlanRepo.List count: %w", err)
	}
	var plans []domain.MealPlan
	err := r.db.SelectContext(ctx, &plans,
		`SELECT * FROM meal_plans ORDER BY start_date DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("mealPlanRepo.List: %w", err)
	}
	return plans, total, nil
}

func (r *mealPlanRepo) AddEntry(ctx context.Context, entry *domain.MealPlanEntry) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO meal_plan_entries (id, plan_id, recipe_id, day, slot)
		VALUES (:id, :plan_id, :recipe_id, :day, :slot)`, entry)
	if err != nil {
		return fmt.Errorf("mealPlanRepo.AddEntry: %w", err)
	}
	return nil
}

func (r *mealPlanRepo) ListEntries(ctx context.Context, planID uuid.UUID) ([]domain.MealPlanEntry, error) {
	var entries []domain.MealPlanEntry
	err := r.db.SelectContext(ctx, &entries,
		`SELECT * FROM meal_plan_entries WHERE plan_id = $1 ORDER BY day, slot`, planID)
	if err != nil {
		return nil, fmt.Errorf("mealPlanRepo.ListEntries: %w", err)
	}
	return entries, nil
}

func (r *mealPlanRepo) RemoveEntry(ctx context.Context, planID, entryID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM meal_plan_entries WHERE id = $1 AND plan_id = $2`, entryID, planID)
	if err != nil {
		return fmt.Errorf("mealPlanRepo.RemoveEntry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mealPlanRepo.RemoveEntry rows: %w", err)
	}
	if n == 0 {
		return domain.ErrPlanNotFound
	}
	return nil
}

// RemoveEntriesByRecipe clears a deleted recipe out of every plan.
func (r *mealPlanRepo) RemoveEntriesByRecipe(ctx context.Context, recipeID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM meal_plan_entries WHERE recipe_id = $1`, recipeID)
	if err != nil {
		return fmt.Errorf("mealPlanRepo.RemoveEntriesByRecipe: %w", err)
	}
	return nil
}

func (r *mealPlanRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("mealPlanRepo.Delete begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM meal_plan_entries WHERE plan_id = $1`, id); err != nil {
		return fmt.Errorf("mealPlanRepo.Delete entries: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM meal_plans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mealPlanRepo.Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mealPlanRepo.Delete rows: %w", err)
	}
	if n == 0 {
		return domain.ErrPlanNotFound
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("mealPlanRepo.Delete commit: %w", err)
	}
	return nil
}
