package apierr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Response is the uniform error payload. Field is empty for not-found and
// storage errors; Reason always carries a short human-readable message
// suitable for inline display by a form.
type Response struct {
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason"`
}

// HTTPErrorHandler maps the error taxonomy onto HTTP statuses:
// ValidationError and ReferenceError to 400, NotFoundError to 404,
// StorageError (and anything unrecognized) to 500. Storage failures are
// logged with their cause; the client only sees a generic message.
func HTTPErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		resp := Response{Reason: "internal server error"}

		var (
			vErr  *ValidationError
			rErr  *ReferenceError
			nfErr *NotFoundError
			stErr *StorageError
			hErr  *echo.HTTPError
		)
		switch {
		case errors.As(err, &vErr):
			status = http.StatusBadRequest
			resp = Response{Field: vErr.Field, Reason: vErr.Reason}
		case errors.As(err, &rErr):
			status = http.StatusBadRequest
			resp = Response{Field: rErr.Field, Reason: "no record with id " + rErr.ID.String()}
		case errors.As(err, &nfErr):
			status = http.StatusNotFound
			resp = Response{Reason: nfErr.Resource + " not found"}
		case errors.As(err, &stErr):
			logger.Error().Err(stErr.Err).Str("op", stErr.Op).Msg("storage failure")
			resp = Response{Reason: "storage unavailable"}
		case errors.As(err, &hErr):
			status = hErr.Code
			if msg, ok := hErr.Message.(string); ok {
				resp = Response{Reason: msg}
			}
		default:
			logger.Error().Err(err).Msg("unhandled error")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, resp)
	}
}
