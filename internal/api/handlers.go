package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/doomsday-api/internal/calendar"
	"github.com/zapponejosh/doomsday-api/internal/config"
	"github.com/zapponejosh/doomsday-api/internal/doomsday"
	"github.com/zapponejosh/doomsday-api/internal/logger"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	cfg    *config.Config
	logger *slog.Logger

	// randomDate picks the date for GET /api/v1/weekday/random.
	randomDate func() doomsday.Date
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		cfg:    cfg,
		logger: logger,
		randomDate: func() doomsday.Date {
			return calendar.RandomDate(nil)
		},
	}
}

// WeekdayResponse is the payload of the weekday endpoints.
type WeekdayResponse struct {
	Date string `json:"date"`
	*doomsday.Result
}

// GuessRequest is the body of POST /api/v1/guess.
type GuessRequest struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Reveal  bool   `json:"reveal,omitempty"`
}

// GuessResponse reports a guess outcome. Result is only included once the
// guess is correct or the caller asked to reveal it.
type GuessResponse struct {
	Date    string                `json:"date"`
	Outcome calendar.GuessOutcome `json:"outcome"`
	Result  *doomsday.Result      `json:"result,omitempty"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// GetWeekday handles GET /api/v1/weekday/{date}
func (h *Handlers) GetWeekday(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")

	res, err := doomsday.CalculateString(dateStr)
	if err != nil {
		h.writeDateError(w, r, err, slog.String("date", dateStr))
		return
	}

	WriteSuccess(w, WeekdayResponse{Date: dateStr, Result: res})
}

// GetRandomWeekday handles GET /api/v1/weekday/random
func (h *Handlers) GetRandomWeekday(w http.ResponseWriter, r *http.Request) {
	d := h.randomDate()

	res, err := doomsday.Calculate(d)
	if err != nil {
		h.writeDateError(w, r, err, slog.String("date", d.String()))
		return
	}

	WriteSuccess(w, WeekdayResponse{Date: d.String(), Result: res})
}

// GetYearAnchors handles GET /api/v1/years/{year}/anchors?month=M
func (h *Handlers) GetYearAnchors(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, "Year must be an integer")
		return
	}

	month := 0
	if s := r.URL.Query().Get("month"); s != "" {
		month, err = strconv.Atoi(s)
		if err != nil {
			WriteBadRequest(w, "Month must be an integer")
			return
		}
	}

	ref, err := calendar.MonthReference(year, month)
	if err != nil {
		h.writeDateError(w, r, err, slog.Int("year", year), slog.Int("month", month))
		return
	}

	WriteSuccess(w, ref)
}

// GetMonthCalendar handles GET /api/v1/calendar/{year}/{month}?target=D
func (h *Handlers) GetMonthCalendar(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, "Year must be an integer")
		return
	}

	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		WriteBadRequest(w, "Month must be an integer")
		return
	}

	target := 0
	if s := r.URL.Query().Get("target"); s != "" {
		target, err = strconv.Atoi(s)
		if err != nil {
			WriteBadRequest(w, "Target must be an integer day of month")
			return
		}
	}

	grid, err := calendar.MonthView(year, month, target)
	if err != nil {
		h.writeDateError(w, r, err, slog.Int("year", year), slog.Int("month", month))
		return
	}

	WriteSuccess(w, grid)
}

// CheckGuess handles POST /api/v1/guess
func (h *Handlers) CheckGuess(w http.ResponseWriter, r *http.Request) {
	var req GuessRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if req.Weekday == "" {
		WriteBadRequest(w, "weekday is required")
		return
	}

	res, err := doomsday.CalculateString(req.Date)
	if err != nil {
		h.writeDateError(w, r, err, slog.String("date", req.Date))
		return
	}

	outcome := calendar.CheckGuess(res, req.Weekday)

	resp := GuessResponse{Date: req.Date, Outcome: outcome}
	if outcome.Correct || req.Reveal {
		resp.Result = res
		resp.Outcome.Hint = nil
	}

	logger.FromContext(r.Context(), h.logger).Debug("guess checked",
		slog.String("date", req.Date),
		slog.Bool("correct", outcome.Correct),
	)

	WriteSuccess(w, resp)
}

// NotFound handles unknown routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	WriteNotFound(w, fmt.Sprintf("No route for %s %s", r.Method, r.URL.Path))
}

// MethodNotAllowed handles known routes called with the wrong method.
func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusMethodNotAllowed, fmt.Sprintf("Method %s not allowed", r.Method), CodeNotAllowed)
}

// writeDateError logs engine failures and writes the matching response.
func (h *Handlers) writeDateError(w http.ResponseWriter, r *http.Request, err error, attrs ...any) {
	log := logger.FromContext(r.Context(), h.logger)
	args := append([]any{slog.Any("error", err)}, attrs...)

	if doomsday.IsFormat(err) || doomsday.IsRange(err) {
		log.Debug("rejected date input", args...)
	} else {
		log.Error("weekday calculation failed", args...)
	}

	WriteDateError(w, err)
}

// decodeJSON decodes JSON request body.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return errors.New("request body is empty")
	}
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
