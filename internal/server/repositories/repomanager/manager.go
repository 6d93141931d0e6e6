package repomanager

import (
	"context"
	"database/sql"

	"github.com/akovalyov/notekeeper/internal/dbx"
	"github.com/akovalyov/notekeeper/internal/server/repositories/categories"
	"github.com/akovalyov/notekeeper/internal/server/repositories/notes"
	"github.com/akovalyov/notekeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Notes(db dbx.DBTX) notes.Repository
	Categories(db dbx.DBTX) categories.Repository
}
