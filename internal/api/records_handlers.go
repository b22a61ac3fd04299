package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/franklin/internal/error_values"
	"github.com/limbo/franklin/internal/service"
	"github.com/limbo/franklin/pkg/entity"
	"github.com/limbo/franklin/pkg/httputil"
)

type RecordResponse struct {
	ID               uuid.UUID                              `json:"id"`
	UserID           uuid.UUID                              `json:"uid"`
	Date             string                                 `json:"date"`
	Year             int                                    `json:"year"`
	Week             int                                    `json:"week"`
	Virtues          [entity.VirtueCount]entity.VirtueEntry `json:"virtues"`
	CompletedVirtues []int                                  `json:"completed_virtues"`
	FocusVirtue      *int                                   `json:"focus_virtue"`
	DailyReflection  string                                 `json:"daily_reflection"`
	DailyRating      *int                                   `json:"daily_rating"`
	Stats            entity.RecordStats                     `json:"stats"`
	CreatedAt        time.Time                              `json:"created_at"`
	UpdatedAt        time.Time                              `json:"updated_at"`
}

type WeekResponse struct {
	Year    int               `json:"year"`
	Week    int               `json:"week"`
	Records []*RecordResponse `json:"records"`
}

func newRecordResponse(r *entity.VirtueRecord) *RecordResponse {
	return &RecordResponse{
		ID:               r.ID,
		UserID:           r.UserID,
		Date:             entity.FormatRecordDate(r.Date),
		Year:             r.Year,
		Week:             r.Week,
		Virtues:          r.Virtues,
		CompletedVirtues: r.CompletedVirtues(),
		FocusVirtue:      r.FocusVirtue,
		DailyReflection:  r.DailyReflection,
		DailyRating:      r.DailyRating,
		Stats:            r.Stats,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func (s *Server) VirtueDefinitions(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, entity.Catalog())
}

func (s *Server) GetDayRecord(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	record, err := s.recordsService.GetDayRecord(ctx, uid, chi.URLParam(r, "date"))
	if err != nil {
		s.writeServiceError(w, logger, "getting day record", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, newRecordResponse(record))
}

func (s *Server) GetWeekRecords(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		s.writeServiceError(w, logger, "getting week records", errorvalues.NewValidationError("year", "must be an integer"))
		return
	}
	week, err := strconv.Atoi(chi.URLParam(r, "week"))
	if err != nil {
		s.writeServiceError(w, logger, "getting week records", errorvalues.NewValidationError("week", "must be an integer"))
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	records, err := s.recordsService.GetWeekRecords(ctx, uid, year, week)
	if err != nil {
		s.writeServiceError(w, logger, "getting week records", err)
		return
	}
	resp := WeekResponse{
		Year:    year,
		Week:    week,
		Records: make([]*RecordResponse, 0, len(records)),
	}
	for _, record := range records {
		resp.Records = append(resp.Records, newRecordResponse(record))
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
}

func (s *Server) ToggleVirtue(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req service.ToggleVirtueRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("toggling virtue error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	record, err := s.recordsService.ToggleVirtue(ctx, uid, chi.URLParam(r, "date"), &req)
	if err != nil {
		s.writeServiceError(w, logger, "toggling virtue", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, newRecordResponse(record))
	logger.Info("virtue toggled",
		slog.String("date", entity.FormatRecordDate(record.Date)),
		slog.Int("completed_count", record.Stats.CompletedCount),
	)
}

func (s *Server) SaveReflection(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req service.ReflectionRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("saving reflection error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	record, err := s.recordsService.SaveReflection(ctx, uid, chi.URLParam(r, "date"), &req)
	if err != nil {
		s.writeServiceError(w, logger, "saving reflection", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, newRecordResponse(record))
}

func (s *Server) Stats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	stats, err := s.statsService.UserStats(ctx, uid)
	if err != nil {
		s.writeServiceError(w, logger, "getting stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}
