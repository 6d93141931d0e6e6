package categories

import (
	"context"

	"github.com/akovalyov/notekeeper/internal/server/models"
)

// Repository methods are always scoped by the owning user id; a category
// belonging to another user behaves exactly like a missing one.
type Repository interface {
	Create(ctx context.Context, category *models.Category) (*models.Category, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Category, error)
	GetByID(ctx context.Context, userID, id int64) (*models.Category, error)
	Rename(ctx context.Context, userID, id int64, name string) (*models.Category, error)
	Delete(ctx context.Context, userID, id int64) error
}
