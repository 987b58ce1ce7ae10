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

type shoppingListRepo struct {
	db *sqlx.DB
}

// NewShoppingListRepository creates a PostgreSQL-backed shopping list repository.
func NewShoppingListRepository(db *sqlx.DB) port.ShoppingListRepository {
	return &shoppingListRepo{db: db}
}

// Create inserts the list and its items in one transaction so a partially
// written list is never visible.
func (r *shoppingListRepo) Create(ctx context.Context, list *domain.ShoppingList, items []domain.ShoppingListItem) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("shoppingListRepo.Create begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO shopping_lists (id, name, created_at, updated_at)
		VALUES (:id, :name, :created_at, :updated_at)`, list)
	if err != nil {
		return fmt.Errorf("shoppingListRepo.Create list: %w", err)
	}
	for i := range items {
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO shopping_list_items (
				id, list_id, name, quantity, unit, notes, recipe_ids,
				checked, position, created_at
			) VALUES (
				:id, :list_id, :name, :quantity, :unit, :notes, :recipe_ids,
				:checked, :position, :created_at
			)`, &items[i])
		if err != nil {
			return fmt.Errorf("shoppingListRepo.Create item: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("shoppingListRepo.Create commit: %w", err)
	}
	return nil
}

func (r *shoppingListRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ShoppingList, error) {
	var list domain.ShoppingList
	err := r.db.GetContext(ctx, &list, `SELECT * FROM shopping_lists WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrListNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("shoppingListRepo.GetByID: %w", err)
	}
	return &list, nil
}

func (r *shoppingListRepo) List(ctx context.Context, offset, limit int) ([]domain.ShoppingList, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM shopping_lists`); err != nil {
		return nil, 0, fmt.Errorf("shoppingListRepo.List count: %w", err)
	}
	var lists []domain.ShoppingList
	err := r.db.SelectContext(ctx, &lists,
		`SELECT * FROM shopping_lists ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("shoppingListRepo.List: %w", err)
	}
	return lists, total, nil
}

func (r *shoppingListRepo) ListItems(ctx context.Context, listID uuid.UUID) ([]domain.ShoppingListItem, error) {
	var items []domain.ShoppingListItem
	err := r.db.SelectContext(ctx, &items,
		`SELECT * FROM shopping_list_items WHERE list_id = $1 ORDER BY position`, listID)
	if err != nil {
		return nil, fmt.Errorf("shoppingListRepo.ListItems: %w", err)
	}
	return items, nil
}

func (r *shoppingListRepo) SetItemChecked(ctx context.Context, listID, itemID uuid.UUID, checked bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE shopping_list_items SET checked = $1 WHERE id = $2 AND list_id = $3`,
		checked, itemID, listID)
	if err != nil {
		return fmt.Errorf("shoppingListRepo.SetItemChecked: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("shoppingListRepo.SetItemChecked rows: %w", err)
	}
	if n == 0 {
		return domain.ErrListNotFound
	}
	_, err = r.db.ExecContext(ctx,
		`UPDATE shopping_lists SET updated_at = $1 WHERE id = $2`,
		time.Now().UTC(), listID)
	if err != nil {
		return fmt.Errorf("shoppingListRepo.SetItemChecked touch: %w", err)
	}
	return nil
}

func (r *shoppingListRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("shoppingListRepo.Delete begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM shopping_list_items WHERE list_id = $1`, id); err != nil {
		return fmt.Errorf("shoppingListRepo.Delete items: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM shopping_lists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("shoppingListRepo.Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("shoppingListRepo.Delete rows: %w", err)
	}
	if n == 0 {
		return domain.ErrListNotFound
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("shoppingListRepo.Delete commit: %w", err)
	}
	return nil
}
