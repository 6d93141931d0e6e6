package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleCreateCategory(c echo.Context) error {
	req := &CategoryRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := s.categories.Create(c.Request().Context(), currentUser(c).ID, req.CategoryName)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, newCategoryResponse(category))
}

func (s *Server) handleListCategories(c echo.Context) error {
	categories, err := s.categories.List(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, newCategoryListResponse(categories))
}

func (s *Server) handleCategoryNotes(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	notes, err := s.categories.Notes(c.Request().Context(), currentUser(c).ID, id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, newNoteListResponse(notes))
}

func (s *Server) handleRenameCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	req := &CategoryRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := s.categories.Rename(c.Request().Context(), currentUser(c).ID, id, req.CategoryName)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, newCategoryResponse(category))
}

func (s *Server) handleDeleteCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := s.categories.Delete(c.Request().Context(), currentUser(c).ID, id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
