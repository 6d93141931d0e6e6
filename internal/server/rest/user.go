package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleSignup(c echo.Context) error {
	req := &SignupRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := s.users.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, newUserResponse(user))
}

func (s *Server) handleLogin(c echo.Context) error {
	req := &LoginRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	pair, err := s.users.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, &TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "bearer",
	})
}

// handleRefresh runs behind the refresh-token middleware; the identity is
// already resolved. Only a new access token is issued.
func (s *Server) handleRefresh(c echo.Context) error {
	token, err := s.users.Refresh(currentUser(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

func (s *Server) handleGetMe(c echo.Context) error {
	user, err := s.users.Get(c.Request().Context(), currentUser(c).ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, newUserResponse(user))
}

func (s *Server) handleUpdateMe(c echo.Context) error {
	req := &UpdateUserRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := s.users.Update(c.Request().Context(), currentUser(c).ID, req.Username, req.Email)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, newUserResponse(user))
}

func (s *Server) handleDeleteMe(c echo.Context) error {
	if err := s.users.Delete(c.Request().Context(), currentUser(c).ID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleChangePassword(c echo.Context) error {
	req := &ChangePasswordRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	err := s.users.ChangePassword(c.Request().Context(), currentUser(c).ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
