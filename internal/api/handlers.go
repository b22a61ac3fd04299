package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/franklin/internal/error_values"
	"github.com/limbo/franklin/internal/service"
	"github.com/limbo/franklin/pkg/entity"
	"github.com/limbo/franklin/pkg/httputil"
)

type AuthResponse struct {
	UserID string       `json:"uid"`
	Token  string       `json:"token"`
	User   *entity.User `json:"user"`
}

// ProfileResponse carries an *entity.User for the owner and an
// entity.PublicProfile for everyone else.
type ProfileResponse struct {
	User  any                       `json:"user"`
	Stats *entity.UserStatsSnapshot `json:"stats,omitempty"`
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	status, code := "ok", http.StatusOK
	if s.healthCheck != nil {
		ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
		defer cancel()
		if err := s.healthCheck(ctx); err != nil {
			GetLoggerFromCtx(r.Context()).Error("health check failed", slog.String("error", err.Error()))
			status, code = "storage unavailable", http.StatusServiceUnavailable
		}
	}
	httputil.WriteJSONResponse(w, code, map[string]any{
		"status": status,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	user, err := s.userService.Register(ctx, &req)
	if err != nil {
		s.writeServiceError(w, logger, "registering", err)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("registering error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, AuthResponse{
		UserID: user.ID.String(),
		Token:  token,
		User:   user,
	})
	logger.Info("successful registration", slog.String("uid", user.ID.String()))
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		s.writeServiceError(w, logger, "login", err)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, AuthResponse{
		UserID: user.ID.String(),
		Token:  token,
		User:   user,
	})
	logger.Info("successful login")
}

func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	user, err := s.userService.GetByID(ctx, uid)
	if err != nil {
		s.writeServiceError(w, logger, "getting profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
}

// Verify answers 200 for any token the auth middleware accepted.
func (s *Server) Verify(w http.ResponseWriter, r *http.Request) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"valid": true,
		"uid":   uid.String(),
	})
}

func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	target, isOwner, err := s.userFromPath(r)
	if err != nil {
		s.writeServiceError(w, logger, "getting user profile", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	user, err := s.userService.GetByID(ctx, target)
	if err != nil {
		s.writeServiceError(w, logger, "getting user profile", err)
		return
	}
	if !isOwner && !user.Privacy.ProfilePublic {
		s.writeServiceError(w, logger, "getting user profile", errorvalues.ErrWrongOwner)
		return
	}
	var stats *entity.UserStatsSnapshot
	if isOwner || user.Privacy.StatsPublic {
		stats, err = s.statsService.UserStats(ctx, target)
		if err != nil {
			s.writeServiceError(w, logger, "getting user profile", err)
			return
		}
	}
	if isOwner {
		httputil.WriteJSONResponse(w, http.StatusOK, ProfileResponse{User: user, Stats: stats})
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ProfileResponse{User: user.PublicView(stats)})
}

func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := s.ownerFromPath(r)
	if err != nil {
		s.writeServiceError(w, logger, "updating profile", err)
		return
	}
	var req service.ProfileRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("updating profile error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	user, err := s.userService.UpdateProfile(ctx, uid, &req)
	if err != nil {
		s.writeServiceError(w, logger, "updating profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
	logger.Info("profile updated")
}

// UserStats serves the owner and, when the target shares stats, any signed-in user.
func (s *Server) UserStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	target, isOwner, err := s.userFromPath(r)
	if err != nil {
		s.writeServiceError(w, logger, "getting user stats", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	if !isOwner {
		user, err := s.userService.GetByID(ctx, target)
		if err != nil {
			s.writeServiceError(w, logger, "getting user stats", err)
			return
		}
		if !user.Privacy.StatsPublic {
			s.writeServiceError(w, logger, "getting user stats", errorvalues.ErrWrongOwner)
			return
		}
	}
	stats, err := s.statsService.UserStats(ctx, target)
	if err != nil {
		s.writeServiceError(w, logger, "getting user stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := s.ownerFromPath(r)
	if err != nil {
		s.writeServiceError(w, logger, "updating settings", err)
		return
	}
	var req service.SettingsRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("updating settings error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	user, err := s.userService.UpdateSettings(ctx, uid, &req)
	if err != nil {
		s.writeServiceError(w, logger, "updating settings", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
	logger.Info("settings updated", slog.Int("current_focus", user.CurrentFocus))
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := s.ownerFromPath(r)
	if err != nil {
		s.writeServiceError(w, logger, "deleting account", err)
		return
	}
	var req service.DeleteAccountRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("deleting account error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.Password == "" {
		s.writeServiceError(w, logger, "deleting account", errorvalues.NewValidationError("password", "is required"))
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	if err := s.userService.DeleteAccount(ctx, uid, req.Password); err != nil {
		s.writeServiceError(w, logger, "deleting account", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("account deleted")
}

// userFromPath parses the {userID} path segment and tells whether it names the caller.
func (s *Server) userFromPath(r *http.Request) (uuid.UUID, bool, error) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		return uuid.UUID{}, false, errorvalues.ErrWrongOwner
	}
	pathID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		return uuid.UUID{}, false, errorvalues.NewValidationError("userID", "must be a valid uuid")
	}
	return pathID, pathID == uid, nil
}

// ownerFromPath returns the caller's id when the {userID} path segment names the caller.
func (s *Server) ownerFromPath(r *http.Request) (uuid.UUID, error) {
	uid, isOwner, err := s.userFromPath(r)
	if err != nil {
		return uuid.UUID{}, err
	}
	if !isOwner {
		return uuid.UUID{}, errorvalues.ErrWrongOwner
	}
	return uid, nil
}
