package notes

import (
	"context"

	"github.com/akovalyov/notekeeper/internal/server/models"
)

// Repository methods are always scoped by the owning user id; another
// user's note behaves exactly like a missing one.
type Repository interface {
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Note, error)
	ListBookmarked(ctx context.Context, userID int64) ([]*models.Note, error)
	ListUncategorized(ctx context.Context, userID int64) ([]*models.Note, error)
	ListByCategory(ctx context.Context, userID, categoryID int64) ([]*models.Note, error)
	GetByID(ctx context.Context, userID, id int64) (*models.Note, error)
	Update(ctx context.Context, note *models.Note) (*models.Note, error)
	SetBookmark(ctx context.Context, userID, id int64, bookmark bool) (*models.Note, error)
	SetCategory(ctx context.Context, userID, id int64, categoryID *int64) (*models.Note, error)
	Delete(ctx context.Context, userID, id int64) error
}
