package rest

import (
	"net/http"
	"strings"

	"github.com/akovalyov/notekeeper/internal/server/auth"
	"github.com/akovalyov/notekeeper/internal/server/models"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const userContextKey = "currentUser"

// requireToken resolves the bearer token of the expected kind and stores the
// authenticated user in the request context. Any failure yields the same 401.
func (s *Server) requireToken(kind auth.TokenKind) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request())
			if !ok {
				return unauthorized(c)
			}

			user, err := s.resolver.Resolve(c.Request().Context(), token, kind)
			if err != nil {
				return unauthorized(c)
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return header[len(prefix):], true
}

func unauthorized(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
}

// currentUser returns the user stored by requireToken. Handlers behind the
// middleware can rely on it being present.
func currentUser(c echo.Context) *models.User {
	user, _ := c.Get(userContextKey).(*models.User)
	return user
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health"
		},
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ctx := c.Request().Context()
			if v.Error != nil {
				s.logger.Error(ctx, "request failed",
					"request_id", v.RequestID,
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency", v.Latency.String(),
					"error", v.Error.Error(),
				)
				return nil
			}
			s.logger.Info(ctx, "request completed",
				"request_id", v.RequestID,
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.String(),
			)
			return nil
		},
	})
}
