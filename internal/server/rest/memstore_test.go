package rest

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/akovalyov/notekeeper/internal/common"
	"github.com/akovalyov/notekeeper/internal/dbx"
	"github.com/akovalyov/notekeeper/internal/server/models"
	categoriesrepo "github.com/akovalyov/notekeeper/internal/server/repositories/categories"
	notesrepo "github.com/akovalyov/notekeeper/internal/server/repositories/notes"
	usersrepo "github.com/akovalyov/notekeeper/internal/server/repositories/users"
)

// memStore is an in-memory repository manager backing the handler tests.
// It mirrors the Postgres repositories' contract: user scoping, sentinel
// errors, unique constraints, and the set-null behavior on category delete.
type memStore struct {
	nextID     int64
	users      map[int64]*models.User
	notes      map[int64]*models.Note
	categories map[int64]*models.Category
}

func newMemStore() *memStore {
	return &memStore{
		users:      make(map[int64]*models.User),
		notes:      make(map[int64]*models.Note),
		categories: make(map[int64]*models.Category),
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *memStore) Users(db dbx.DBTX) usersrepo.Repository           { return &memUsers{m} }
func (m *memStore) Notes(db dbx.DBTX) notesrepo.Repository           { return &memNotes{m} }
func (m *memStore) Categories(db dbx.DBTX) categoriesrepo.Repository { return &memCategories{m} }

type memUsers struct{ s *memStore }

func (r *memUsers) Create(ctx context.Context, u *models.User) (*models.User, error) {
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	stored := *u
	stored.ID = r.s.id()
	stored.CreatedAt = time.Now()
	r.s.users[stored.ID] = &stored
	return &stored, nil
}

func (r *memUsers) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *memUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *memUsers) Update(ctx context.Context, u *models.User) (*models.User, error) {
	stored, ok := r.s.users[u.ID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	for _, other := range r.s.users {
		if other.ID != u.ID && other.Email == u.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	stored.Username = u.Username
	stored.Email = u.Email
	copied := *stored
	return &copied, nil
}

func (r *memUsers) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	stored, ok := r.s.users[id]
	if !ok {
		return common.ErrorNotFound
	}
	stored.PasswordHash = passwordHash
	return nil
}

func (r *memUsers) Delete(ctx context.Context, id int64) error {
	if _, ok := r.s.users[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.s.users, id)
	for nid, n := range r.s.notes {
		if n.UserID == id {
			delete(r.s.notes, nid)
		}
	}
	for cid, c := range r.s.categories {
		if c.UserID == id {
			delete(r.s.categories, cid)
		}
	}
	return nil
}

type memCategories struct{ s *memStore }

func (r *memCategories) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	for _, existing := range r.s.categories {
		if existing.UserID == c.UserID && existing.CategoryName == c.CategoryName {
			return nil, common.ErrorAlreadyExists
		}
	}
	stored := *c
	stored.ID = r.s.id()
	r.s.categories[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (r *memCategories) ListByUser(ctx context.Context, userID int64) ([]*models.Category, error) {
	var out []*models.Category
	for _, c := range r.s.categories {
		if c.UserID == userID {
			copied := *c
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memCategories) GetByID(ctx context.Context, userID, id int64) (*models.Category, error) {
	c, ok := r.s.categories[id]
	if !ok || c.UserID != userID {
		return nil, common.ErrorNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *memCategories) Rename(ctx context.Context, userID, id int64, name string) (*models.Category, error) {
	c, ok := r.s.categories[id]
	if !ok || c.UserID != userID {
		return nil, common.ErrorNotFound
	}
	for _, other := range r.s.categories {
		if other.UserID == userID && other.ID != id && other.CategoryName == name {
			return nil, common.ErrorAlreadyExists
		}
	}
	c.CategoryName = name
	copied := *c
	return &copied, nil
}

func (r *memCategories) Delete(ctx context.Context, userID, id int64) error {
	c, ok := r.s.categories[id]
	if !ok || c.UserID != userID {
		return common.ErrorNotFound
	}
	delete(r.s.categories, id)
	for _, n := range r.s.notes {
		if n.CategoryID != nil && *n.CategoryID == id {
			n.CategoryID = nil
		}
	}
	return nil
}

type memNotes struct{ s *memStore }

func (r *memNotes) Create(ctx context.Context, n *models.Note) (*models.Note, error) {
	stored := *n
	stored.ID = r.s.id()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.s.notes[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (r *memNotes) list(userID int64, keep func(*models.Note) bool) []*models.Note {
	var out []*models.Note
	for _, n := range r.s.notes {
		if n.UserID == userID && keep(n) {
			copied := *n
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *memNotes) ListByUser(ctx context.Context, userID int64) ([]*models.Note, error) {
	return r.list(userID, func(*models.Note) bool { return true }), nil
}

func (r *memNotes) ListBookmarked(ctx context.Context, userID int64) ([]*models.Note, error) {
	return r.list(userID, func(n *models.Note) bool { return n.Bookmark }), nil
}

func (r *memNotes) ListUncategorized(ctx context.Context, userID int64) ([]*models.Note, error) {
	return r.list(userID, func(n *models.Note) bool { return n.CategoryID == nil }), nil
}

func (r *memNotes) ListByCategory(ctx context.Context, userID, categoryID int64) ([]*models.Note, error) {
	return r.list(userID, func(n *models.Note) bool {
		return n.CategoryID != nil && *n.CategoryID == categoryID
	}), nil
}

func (r *memNotes) get(userID, id int64) (*models.Note, error) {
	n, ok := r.s.notes[id]
	if !ok || n.UserID != userID {
		return nil, common.ErrorNotFound
	}
	return n, nil
}

func (r *memNotes) GetByID(ctx context.Context, userID, id int64) (*models.Note, error) {
	n, err := r.get(userID, id)
	if err != nil {
		return nil, err
	}
	copied := *n
	return &copied, nil
}

func (r *memNotes) Update(ctx context.Context, note *models.Note) (*models.Note, error) {
	n, err := r.get(note.UserID, note.ID)
	if err != nil {
		return nil, err
	}
	n.Title = note.Title
	n.Content = note.Content
	n.UpdatedAt = time.Now()
	copied := *n
	return &copied, nil
}

func (r *memNotes) SetBookmark(ctx context.Context, userID, id int64, bookmark bool) (*models.Note, error) {
	n, err := r.get(userID, id)
	if err != nil {
		return nil, err
	}
	n.Bookmark = bookmark
	n.UpdatedAt = time.Now()
	copied := *n
	return &copied, nil
}

func (r *memNotes) SetCategory(ctx context.Context, userID, id int64, categoryID *int64) (*models.Note, error) {
	n, err := r.get(userID, id)
	if err != nil {
		return nil, err
	}
	n.CategoryID = categoryID
	n.UpdatedAt = time.Now()
	copied := *n
	return &copied, nil
}

func (r *memNotes) Delete(ctx context.Context, userID, id int64) error {
	if _, err := r.get(userID, id); err != nil {
		return err
	}
	delete(r.s.notes, id)
	return nil
}
