// Package rest implements the HTTP API on top of the services layer.
package rest

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/akovalyov/notekeeper/internal/logging"
	"github.com/akovalyov/notekeeper/internal/server/auth"
	"github.com/akovalyov/notekeeper/internal/server/services"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	address    string
	logger     logging.Logger
	db         *sql.DB
	users      *services.UserService
	notes      *services.NoteService
	categories *services.CategoryService
	resolver   *auth.Resolver
}

func NewServer(address string, l logging.Logger, db *sql.DB,
	us *services.UserService, ns *services.NoteService, cs *services.CategoryService,
	resolver *auth.Resolver) *Server {
	return &Server{
		address:    address,
		logger:     l.With("module", "rest_server"),
		db:         db,
		users:      us,
		notes:      ns,
		categories: cs,
		resolver:   resolver,
	}
}

// requestValidator adapts go-playground/validator to echo's Validator interface.
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func (s *Server) newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &requestValidator{validate: validator.New()}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORS())
	e.Use(s.requestLogger())

	s.routes(e)
	return e
}

func (s *Server) routes(e *echo.Echo) {
	requireAccess := s.requireToken(auth.TokenKindAccess)
	requireRefresh := s.requireToken(auth.TokenKindRefresh)

	e.GET("/", s.handleRoot)
	e.GET("/health", s.handleHealth)

	u := e.Group("/user")
	u.POST("/signup", s.handleSignup)
	u.POST("/login", s.handleLogin)
	u.POST("/refresh", s.handleRefresh, requireRefresh)
	u.GET("/me", s.handleGetMe, requireAccess)
	u.PUT("/me", s.handleUpdateMe, requireAccess)
	u.DELETE("/me", s.handleDeleteMe, requireAccess)
	u.PUT("/change-password", s.handleChangePassword, requireAccess)

	n := e.Group("/notes", requireAccess)
	n.POST("", s.handleCreateNote)
	n.GET("", s.handleListNotes)
	n.GET("/bookmarks", s.handleListBookmarkedNotes)
	n.GET("/uncategorized", s.handleListUncategorizedNotes)
	n.GET("/:id", s.handleGetNote)
	n.PUT("/:id", s.handleUpdateNote)
	n.DELETE("/:id", s.handleDeleteNote)
	n.PUT("/:id/bookmark", s.handleToggleBookmark)
	n.PUT("/:id/category/:categoryID", s.handleAssignCategory)

	c := e.Group("/categories", requireAccess)
	c.POST("", s.handleCreateCategory)
	c.GET("", s.handleListCategories)
	c.GET("/:id/notes", s.handleCategoryNotes)
	c.PUT("/:id", s.handleRenameCategory)
	c.DELETE("/:id", s.handleDeleteCategory)
}

// Run starts the HTTP server and shuts it down gracefully when ctx is done.
func (s *Server) Run(ctx context.Context) error {
	e := s.newEcho()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := e.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
