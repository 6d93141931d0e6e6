// Package notes provides a PostgreSQL-backed repository for notes.
package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akovalyov/notekeeper/internal/common"
	"github.com/akovalyov/notekeeper/internal/dbx"
	"github.com/akovalyov/notekeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const noteColumns = `id, user_id, title, content, category_id, bookmark, created_at, updated_at`

func scanNote(row *sql.Row) (*models.Note, error) {
	n := &models.Note{}
	err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CategoryID, &n.Bookmark, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {

	query :=
		`INSERT INTO notes (user_id, title, content, category_id)
         VALUES ($1, $2, $3, $4)
		 RETURNING ` + noteColumns

	row := r.db.QueryRowContext(ctx, query,
		note.UserID, note.Title, note.Content, note.CategoryID)

	return scanNote(row)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Note, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var notes []*models.Note
	for rows.Next() {
		n := &models.Note{}
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CategoryID, &n.Bookmark, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return notes, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes
		 WHERE user_id = $1
		 ORDER BY id`
	return r.list(ctx, query, userID)
}

func (r *PostgresRepository) ListBookmarked(ctx context.Context, userID int64) ([]*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes
		 WHERE user_id = $1 AND bookmark
		 ORDER BY id`
	return r.list(ctx, query, userID)
}

func (r *PostgresRepository) ListUncategorized(ctx context.Context, userID int64) ([]*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes
		 WHERE user_id = $1 AND category_id IS NULL
		 ORDER BY id`
	return r.list(ctx, query, userID)
}

func (r *PostgresRepository) ListByCategory(ctx context.Context, userID, categoryID int64) ([]*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes
		 WHERE user_id = $1 AND category_id = $2
		 ORDER BY id`
	return r.list(ctx, query, userID, categoryID)
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID, id int64) (*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes
		 WHERE id = $1 AND user_id = $2`

	return scanNote(r.db.QueryRowContext(ctx, query, id, userID))
}

// Update persists title and content changes and bumps updated_at.
func (r *PostgresRepository) Update(ctx context.Context, note *models.Note) (*models.Note, error) {
	query :=
		`UPDATE notes SET title = $3, content = $4, updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING ` + noteColumns

	row := r.db.QueryRowContext(ctx, query, note.ID, note.UserID, note.Title, note.Content)
	return scanNote(row)
}

func (r *PostgresRepository) SetBookmark(ctx context.Context, userID, id int64, bookmark bool) (*models.Note, error) {
	query :=
		`UPDATE notes SET bookmark = $3, updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING ` + noteColumns

	row := r.db.QueryRowContext(ctx, query, id, userID, bookmark)
	return scanNote(row)
}

// SetCategory moves the note into categoryID; nil clears the assignment.
func (r *PostgresRepository) SetCategory(ctx context.Context, userID, id int64, categoryID *int64) (*models.Note, error) {
	query :=
		`UPDATE notes SET category_id = $3, updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING ` + noteColumns

	row := r.db.QueryRowContext(ctx, query, id, userID, categoryID)
	return scanNote(row)
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id int64) error {
	query :=
		`DELETE FROM notes
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
