// Package categories provides a PostgreSQL-backed repository for note categories.
package categories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akovalyov/notekeeper/internal/common"
	"github.com/akovalyov/notekeeper/internal/dbx"
	"github.com/akovalyov/notekeeper/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Create inserts a category. A duplicate name for the same user yields
// common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, category *models.Category) (*models.Category, error) {

	query :=
		`INSERT INTO note_categories (user_id, category_name)
         VALUES ($1, $2)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		category.UserID, category.CategoryName).Scan(&category.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return category, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Category, error) {
	query :=
		`SELECT id, user_id, category_name FROM note_categories
		 WHERE user_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		c := &models.Category{}
		if err := rows.Scan(&c.ID, &c.UserID, &c.CategoryName); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return categories, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID, id int64) (*models.Category, error) {
	query :=
		`SELECT id, user_id, category_name FROM note_categories
		 WHERE id = $1 AND user_id = $2
		 `

	c := &models.Category{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&c.ID, &c.UserID, &c.CategoryName)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

func (r *PostgresRepository) Rename(ctx context.Context, userID, id int64, name string) (*models.Category, error) {
	query :=
		`UPDATE note_categories SET category_name = $3
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, category_name
		 `

	c := &models.Category{}
	err := r.db.QueryRowContext(ctx, query, id, userID, name).Scan(&c.ID, &c.UserID, &c.CategoryName)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		if isUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id int64) error {
	query :=
		`DELETE FROM note_categories
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
