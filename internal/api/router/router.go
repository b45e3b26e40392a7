package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"github/monpay/wallet-bridge/internal/api"
	"github/monpay/wallet-bridge/internal/api/handlers"
	"github/monpay/wallet-bridge/internal/api/httperrors"
)

// Init attaches the echo instance, middlewares and all routes to s.
func Init(s *api.Server) {
	s.Echo = echo.New()
	s.Echo.Debug = false
	s.Echo.HideBanner = true
	s.Echo.HTTPErrorHandler = errorHandler(s)

	s.Echo.Use(middleware.RequestID())

	if s.Config.Echo.EnableRecoverMiddleware {
		s.Echo.Use(middleware.Recover())
	}

	if s.Config.Echo.EnableLoggerMiddleware {
		s.Echo.Use(loggerMiddleware())
	}

	s.Router = &api.Router{
		Routes:      nil, // filled by handlers.AttachAllRoutes
		Root:        s.Echo.Group(""),
		Management:  s.Echo.Group("/-"),
		APIV1Wallet: s.Echo.Group("/api/v1/wallet"),
	}

	handlers.AttachAllRoutes(s)
}

// loggerMiddleware attaches a request-scoped zerolog logger to the request
// context so downstream code can use util.LogFromContext.
func loggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			l := log.With().
				Str("req_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Logger()

			c.SetRequest(req.WithContext(l.WithContext(req.Context())))

			err := next(c)

			l.Debug().Int("status", c.Response().Status).Msg("Request handled")

			return err
		}
	}
}

// errorHandler renders *httperrors.HTTPError payloads as-is and hides
// internal details of everything else when configured to do so.
func errorHandler(s *api.Server) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var payload *httperrors.HTTPError

		switch e := err.(type) { //nolint:errorlint // echo errors are not wrapped
		case *httperrors.HTTPError:
			payload = e
		case *echo.HTTPError:
			payload = httperrors.NewHTTPError(e.Code, httperrors.TypeGeneric, http.StatusText(e.Code))
		default:
			payload = httperrors.NewHTTPError(http.StatusInternalServerError, httperrors.TypeGeneric, http.StatusText(http.StatusInternalServerError))
			if !s.Config.Echo.HideInternalServerErrorDetails {
				payload.Detail = err.Error()
			}
		}

		if jsonErr := c.JSON(payload.Code, payload); jsonErr != nil {
			log.Error().Err(jsonErr).Msg("Failed to write error response")
		}
	}
}
