package rest

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

func (s *Server) handleCreateNote(c echo.Context) error {
	req := &NoteRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	note, err := s.notes.Create(c.Request().Context(), currentUser(c).ID, req.Title, req.Content, req.CategoryID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, newNoteResponse(note))
}

func (s *Server) handleListNotes(c echo.Context) error {
	notes, err := s.notes.List(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, newNoteListResponse(notes))
}

func (s *Server) handleListBookmarkedNotes(c echo.Context) error {
	notes, err := s.notes.ListBookmarked(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, newNoteListResponse(notes))
}

func (s *Server) handleListUncategorizedNotes(c echo.Context) error {
	notes, err := s.notes.ListUncategorized(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, newNoteListResponse(notes))
}

func (s *Server) handleGetNote(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	note, err := s.notes.Get(c.Request().Context(), currentUser(c).ID, id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, newNoteResponse(note))
}

func (s *Server) handleUpdateNote(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	req := &UpdateNoteRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	note, err := s.notes.Update(c.Request().Context(), currentUser(c).ID, id, req.Title, req.Content)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, newNoteResponse(note))
}

func (s *Server) handleDeleteNote(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := s.notes.Delete(c.Request().Context(), currentUser(c).ID, id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleToggleBookmark(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	note, err := s.notes.ToggleBookmark(c.Request().Context(), currentUser(c).ID, id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, newNoteResponse(note))
}

func (s *Server) handleAssignCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	categoryID, err := pathID(c, "categoryID")
	if err != nil {
		return err
	}

	note, err := s.notes.AssignCategory(c.Request().Context(), currentUser(c).ID, id, categoryID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, newNoteResponse(note))
}
