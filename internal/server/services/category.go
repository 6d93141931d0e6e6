package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/akovalyov/notekeeper/internal/common"
	"github.com/akovalyov/notekeeper/internal/server/models"
	"github.com/akovalyov/notekeeper/internal/server/repositories/repomanager"
)

// CategoryService implements category CRUD. The per-user default category is
// created at registration and protected here from creation, renaming, and
// deletion.
type CategoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCategoryService(db *sql.DB, m repomanager.RepositoryManager) *CategoryService {
	return &CategoryService{db: db, repomanager: m}
}

// isDefaultName reports whether name refers to the default category,
// ignoring case and surrounding whitespace.
func isDefaultName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), common.DefaultCategoryName)
}

// Create stores a new category. The default category name is reserved and
// yields common.ErrorDefaultCategory; a duplicate name yields
// common.ErrorAlreadyExists.
func (s *CategoryService) Create(ctx context.Context, userID int64, name string) (*models.Category, error) {
	if isDefaultName(name) {
		return nil, common.ErrorDefaultCategory
	}

	return s.repomanager.Categories(s.db).Create(ctx, &models.Category{
		UserID:       userID,
		CategoryName: name,
	})
}

// List returns all of the user's categories.
func (s *CategoryService) List(ctx context.Context, userID int64) ([]*models.Category, error) {
	return s.repomanager.Categories(s.db).ListByUser(ctx, userID)
}

// Notes returns the notes filed under the given category. The category must
// exist and belong to the user.
func (s *CategoryService) Notes(ctx context.Context, userID, id int64) ([]*models.Note, error) {
	if _, err := s.repomanager.Categories(s.db).GetByID(ctx, userID, id); err != nil {
		return nil, err
	}
	return s.repomanager.Notes(s.db).ListByCategory(ctx, userID, id)
}

// Rename changes a category's name. Renaming the default category, or
// renaming another category to the default name, yields
// common.ErrorDefaultCategory.
func (s *CategoryService) Rename(ctx context.Context, userID, id int64, name string) (*models.Category, error) {
	repo := s.repomanager.Categories(s.db)

	category, err := repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if isDefaultName(category.CategoryName) || isDefaultName(name) {
		return nil, common.ErrorDefaultCategory
	}

	return repo.Rename(ctx, userID, id, name)
}

// Delete removes a category; its notes become uncategorized via the foreign
// key. The default category cannot be deleted.
func (s *CategoryService) Delete(ctx context.Context, userID, id int64) error {
	repo := s.repomanager.Categories(s.db)

	category, err := repo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if isDefaultName(category.CategoryName) {
		return common.ErrorDefaultCategory
	}

	return repo.Delete(ctx, userID, id)
}
