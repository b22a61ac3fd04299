package api

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/franklin/internal/error_values"
	"github.com/limbo/franklin/pkg/httputil"
)

const maxBodySize = 1 << 20

// writeServiceError maps a service error onto the matching HTTP status.
func (s *Server) writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Warn(op+" error: invalid input", slog.String("error", err.Error()))
		fields := errorvalues.ValidationFields(err)
		details := make([]httputil.FieldError, 0, len(fields))
		for _, f := range fields {
			details = append(details, httputil.FieldError{Field: f.Field, Reason: f.Reason})
		}
		httputil.WriteValidationErrorResponse(w, "invalid input", details)
	case errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Warn(op + " error: access to foreign resource")
		httputil.WriteErrorResponse(w, http.StatusForbidden, "access denied", nil)
	case errors.Is(err, errorvalues.ErrWrongCredentials):
		logger.Warn(op + " error: wrong credentials")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid username or password", nil)
	case errors.Is(err, errorvalues.ErrUserNotFound):
		logger.Warn(op + " error: user not found")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
	case errors.Is(err, errorvalues.ErrRecordNotFound):
		logger.Warn(op + " error: record not found")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "virtue record not found", nil)
	case errors.Is(err, errorvalues.ErrUserExists):
		logger.Warn(op + " error: existed user")
		httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
	case errors.Is(err, errorvalues.ErrStorageUnavailable):
		logger.Error(op+" error: storage unavailable", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "storage temporarily unavailable", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}

// decodeBody reads a JSON body into dst. An empty body leaves dst untouched.
func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	return sonic.ConfigDefault.Unmarshal(body, dst)
}
