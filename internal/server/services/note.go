package services

import (
	"context"
	"database/sql"

	"github.com/akovalyov/notekeeper/internal/common"
	"github.com/akovalyov/notekeeper/internal/server/models"
	"github.com/akovalyov/notekeeper/internal/server/repositories/repomanager"
)

// NoteService implements note CRUD, bookmarking, and category assignment.
// Every operation takes the acting user's id explicitly; a note owned by
// another user is indistinguishable from a missing one.
type NoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewNoteService(db *sql.DB, m repomanager.RepositoryManager) *NoteService {
	return &NoteService{db: db, repomanager: m}
}

// Create stores a new note. When categoryID is set, the category must exist
// and belong to the user, otherwise common.ErrorNotFound.
func (s *NoteService) Create(ctx context.Context, userID int64, title, content string, categoryID *int64) (*models.Note, error) {
	if categoryID != nil {
		if _, err := s.repomanager.Categories(s.db).GetByID(ctx, userID, *categoryID); err != nil {
			return nil, err
		}
	}

	return s.repomanager.Notes(s.db).Create(ctx, &models.Note{
		UserID:     userID,
		Title:      title,
		Content:    content,
		CategoryID: categoryID,
	})
}

// List returns all of the user's notes.
func (s *NoteService) List(ctx context.Context, userID int64) ([]*models.Note, error) {
	return s.repomanager.Notes(s.db).ListByUser(ctx, userID)
}

// ListBookmarked returns the user's bookmarked notes.
func (s *NoteService) ListBookmarked(ctx context.Context, userID int64) ([]*models.Note, error) {
	return s.repomanager.Notes(s.db).ListBookmarked(ctx, userID)
}

// ListUncategorized returns the user's notes without a category.
func (s *NoteService) ListUncategorized(ctx context.Context, userID int64) ([]*models.Note, error) {
	return s.repomanager.Notes(s.db).ListUncategorized(ctx, userID)
}

// Get returns a single note by id.
func (s *NoteService) Get(ctx context.Context, userID, id int64) (*models.Note, error) {
	return s.repomanager.Notes(s.db).GetByID(ctx, userID, id)
}

// Update changes the note's title and/or content. A nil field keeps the
// stored value, so a caller may edit the title without touching the body.
func (s *NoteService) Update(ctx context.Context, userID, id int64, title, content *string) (*models.Note, error) {
	repo := s.repomanager.Notes(s.db)

	note, err := repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if title != nil {
		note.Title = *title
	}
	if content != nil {
		note.Content = *content
	}

	return repo.Update(ctx, note)
}

// ToggleBookmark flips the note's bookmark flag and returns the updated note.
func (s *NoteService) ToggleBookmark(ctx context.Context, userID, id int64) (*models.Note, error) {
	repo := s.repomanager.Notes(s.db)

	note, err := repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	return repo.SetBookmark(ctx, userID, id, !note.Bookmark)
}

// AssignCategory moves the note into the given category; categoryID 0 clears
// the assignment. Assigning a note to the category it is already in, or
// clearing a note that has no category, yields common.ErrorAlreadyCategorized.
func (s *NoteService) AssignCategory(ctx context.Context, userID, id, categoryID int64) (*models.Note, error) {
	repo := s.repomanager.Notes(s.db)

	note, err := repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if categoryID == 0 {
		if note.CategoryID == nil {
			return nil, common.ErrorAlreadyCategorized
		}
		return repo.SetCategory(ctx, userID, id, nil)
	}

	if _, err := s.repomanager.Categories(s.db).GetByID(ctx, userID, categoryID); err != nil {
		return nil, err
	}

	if note.CategoryID != nil && *note.CategoryID == categoryID {
		return nil, common.ErrorAlreadyCategorized
	}

	return repo.SetCategory(ctx, userID, id, &categoryID)
}

// Delete removes a note.
func (s *NoteService) Delete(ctx context.Context, userID, id int64) error {
	return s.repomanager.Notes(s.db).Delete(ctx, userID, id)
}
