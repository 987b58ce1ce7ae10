package port

import (
	"context"

	"github.com/google/uuid"

	"forkful/internal/domain"
)

// RecipeRepository defines the contract for recipe persistence.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *domain.Recipe) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Recipe, error)
	List(ctx context.Context, offset, limit int) ([]domain.Recipe, int, error)
	ListBySourceKind(ctx context.Context, kind domain.SourceKind, offset, limit int) ([]domain.Recipe, int, error)
	ListFavorites(ctx context.Context, offset, limit int) ([]domain.Recipe, int, error)
	SearchByTag(ctx context.Context, tag string, offset, limit int) ([]domain.Recipe, int, error)
	Update(ctx context.Context, recipe *domain.Recipe) error
	SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ImportJobRepository defines the contract for import job persistence. The
// queue worker claims jobs through it.
type ImportJobRepository interface {
	Create(ctx context.Context, job *domain.ImportJob) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ImportJob, error)
	ClaimQueued(ctx context.Context, limit int) ([]domain.ImportJob, error)
	Update(ctx context.Context, job *domain.ImportJob) error
	List(ctx context.Context, offset, limit int) ([]domain.ImportJob, int, error)
}
