package services

import (
	"context"
	"database/sql"

	"github.com/akovalyov/notekeeper/internal/dbx"
	"github.com/akovalyov/notekeeper/internal/server/models"
	categoriesrepo "github.com/akovalyov/notekeeper/internal/server/repositories/categories"
	notesrepo "github.com/akovalyov/notekeeper/internal/server/repositories/notes"
	usersrepo "github.com/akovalyov/notekeeper/internal/server/repositories/users"
)

// --- fakes shared by the service tests ---

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error

	updateOut *models.User
	updateErr error

	updatePasswordID   int64
	updatePasswordHash string
	updatePasswordErr  error

	deleteErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) Update(ctx context.Context, u *models.User) (*models.User, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateOut != nil {
		return f.updateOut, nil
	}
	return u, nil
}

func (f *fakeUsersRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	f.updatePasswordID = id
	f.updatePasswordHash = passwordHash
	return f.updatePasswordErr
}

func (f *fakeUsersRepo) Delete(ctx context.Context, id int64) error {
	return f.deleteErr
}

type fakeCategoriesRepo struct {
	createIn  *models.Category
	createOut *models.Category
	createErr error

	getOut *models.Category
	getErr error

	listOut []*models.Category
	listErr error

	renameOut *models.Category
	renameErr error

	deleteErr error
}

func (f *fakeCategoriesRepo) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	f.createIn = c
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return c, nil
}

func (f *fakeCategoriesRepo) ListByUser(ctx context.Context, userID int64) ([]*models.Category, error) {
	return f.listOut, f.listErr
}

func (f *fakeCategoriesRepo) GetByID(ctx context.Context, userID, id int64) (*models.Category, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeCategoriesRepo) Rename(ctx context.Context, userID, id int64, name string) (*models.Category, error) {
	if f.renameErr != nil {
		return nil, f.renameErr
	}
	return f.renameOut, nil
}

func (f *fakeCategoriesRepo) Delete(ctx context.Context, userID, id int64) error {
	return f.deleteErr
}

type fakeNotesRepo struct {
	createIn  *models.Note
	createOut *models.Note
	createErr error

	listOut []*models.Note
	listErr error

	getOut *models.Note
	getErr error

	updateOut *models.Note
	updateErr error

	setBookmarkValue bool
	setBookmarkOut   *models.Note
	setBookmarkErr   error

	setCategoryCalled bool
	setCategoryValue  *int64
	setCategoryOut    *models.Note
	setCategoryErr    error

	deleteErr error
}

func (f *fakeNotesRepo) Create(ctx context.Context, n *models.Note) (*models.Note, error) {
	f.createIn = n
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return n, nil
}

func (f *fakeNotesRepo) ListByUser(ctx context.Context, userID int64) ([]*models.Note, error) {
	return f.listOut, f.listErr
}

func (f *fakeNotesRepo) ListBookmarked(ctx context.Context, userID int64) ([]*models.Note, error) {
	return f.listOut, f.listErr
}

func (f *fakeNotesRepo) ListUncategorized(ctx context.Context, userID int64) ([]*models.Note, error) {
	return f.listOut, f.listErr
}

func (f *fakeNotesRepo) ListByCategory(ctx context.Context, userID, categoryID int64) ([]*models.Note, error) {
	return f.listOut, f.listErr
}

func (f *fakeNotesRepo) GetByID(ctx context.Context, userID, id int64) (*models.Note, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeNotesRepo) Update(ctx context.Context, n *models.Note) (*models.Note, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateOut != nil {
		return f.updateOut, nil
	}
	return n, nil
}

func (f *fakeNotesRepo) SetBookmark(ctx context.Context, userID, id int64, bookmark bool) (*models.Note, error) {
	f.setBookmarkValue = bookmark
	if f.setBookmarkErr != nil {
		return nil, f.setBookmarkErr
	}
	return f.setBookmarkOut, nil
}

func (f *fakeNotesRepo) SetCategory(ctx context.Context, userID, id int64, categoryID *int64) (*models.Note, error) {
	f.setCategoryCalled = true
	f.setCategoryValue = categoryID
	if f.setCategoryErr != nil {
		return nil, f.setCategoryErr
	}
	return f.setCategoryOut, nil
}

func (f *fakeNotesRepo) Delete(ctx context.Context, userID, id int64) error {
	return f.deleteErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	n *fakeNotesRepo
	c *fakeCategoriesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error     { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository           { return m.u }
func (m *fakeRepoManager) Notes(db dbx.DBTX) notesrepo.Repository           { return m.n }
func (m *fakeRepoManager) Categories(db dbx.DBTX) categoriesrepo.Repository { return m.c }
