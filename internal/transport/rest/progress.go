package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/robdix/spanish-reading/internal/domain"
	"github.com/robdix/spanish-reading/internal/service/progress"
)

type progressService interface {
	LogReading(ctx context.Context, input progress.LogReadingInput) (domain.DailyStat, error)
	Overview(ctx context.Context) (domain.StatsOverview, error)
	Calendar(ctx context.Context, input progress.CalendarInput) ([]domain.CalendarDay, error)
	SetDailyGoal(ctx context.Context, input progress.SetGoalInput) (*domain.GoalEvent, error)
	SetOverallGoal(ctx context.Context, input progress.SetGoalInput) (*domain.UserSettings, error)
	SetTimezone(ctx context.Context, tz string) (*domain.UserSettings, error)
}

// ProgressHandler serves reading stats, goals and settings.
type ProgressHandler struct {
	svc progressService
	log *slog.Logger
	now func() time.Time
}

// NewProgressHandler creates a ProgressHandler.
func NewProgressHandler(svc progressService, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{svc: svc, log: logger.With("handler", "progress"), now: time.Now}
}

type logReadingRequest struct {
	Date         string `json:"date"`
	WordCount    int    `json:"wordCount"`
	StoriesDelta int    `json:"storiesDelta"`
}

type goalRequest struct {
	Words int `json:"words"`
}

type timezoneRequest struct {
	Timezone string `json:"timezone"`
}

type dailyStatResponse struct {
	Date             string `json:"date"`
	WordsRead        int    `json:"wordsRead"`
	StoriesCompleted int    `json:"storiesCompleted"`
}

type overviewResponse struct {
	TodayWords       int     `json:"todayWords"`
	AllTimeWords     int     `json:"allTimeWords"`
	StoriesCompleted int     `json:"storiesCompleted"`
	Streak           int     `json:"streak"`
	DailyGoal        *int    `json:"dailyGoal"`
	OverallGoal      *int    `json:"overallGoal"`
	OverallProgress  float64 `json:"overallProgress"`
}

type calendarDayResponse struct {
	Date   string `json:"date"`
	Words  int    `json:"words"`
	Goal   *int   `json:"goal"`
	Status string `json:"status"`
}

type goalResponse struct {
	DailyWords    int       `json:"dailyWords"`
	EffectiveFrom time.Time `json:"effectiveFrom"`
}

type settingsResponse struct {
	OverallGoal *int   `json:"overallGoal"`
	Timezone    string `json:"timezone"`
}

// LogReading handles POST /api/reading-events.
func (h *ProgressHandler) LogReading(w http.ResponseWriter, r *http.Request) {
	var req logReadingRequest
	if !decodeJSON(w, r, maxRequestBody, &req) {
		return
	}

	stat, err := h.svc.LogReading(r.Context(), progress.LogReadingInput{
		Date:         req.Date,
		WordCount:    req.WordCount,
		StoriesDelta: req.StoriesDelta,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDailyStatResponse(stat))
}

// Overview handles GET /api/stats/overview.
func (h *ProgressHandler) Overview(w http.ResponseWriter, r *http.Request) {
	o, err := h.svc.Overview(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, overviewResponse{
		TodayWords:       o.TodayWords,
		AllTimeWords:     o.AllTimeWords,
		StoriesCompleted: o.StoriesCompleted,
		Streak:           o.Streak,
		DailyGoal:        o.DailyGoal,
		OverallGoal:      o.OverallGoal,
		OverallProgress:  o.OverallProgress(),
	})
}

// Calendar handles GET /api/stats/calendar?year=2024&month=3.
// Missing parameters default to the current month.
func (h *ProgressHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	now := h.now().UTC()

	year, err := queryInt(r, "year", now.Year())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	month, err := queryInt(r, "month", int(now.Month()))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	days, err := h.svc.Calendar(r.Context(), progress.CalendarInput{Year: year, Month: month})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]calendarDayResponse, len(days))
	for i, d := range days {
		resp[i] = calendarDayResponse{
			Date:   d.Date.Format(domain.DateLayout),
			Words:  d.Words,
			Goal:   d.Goal,
			Status: d.Status.String(),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// SetDailyGoal handles PUT /api/goals/daily.
func (h *ProgressHandler) SetDailyGoal(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if !decodeJSON(w, r, maxRequestBody, &req) {
		return
	}

	ev, err := h.svc.SetDailyGoal(r.Context(), progress.SetGoalInput{Words: req.Words})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, goalResponse{DailyWords: ev.DailyWords, EffectiveFrom: ev.EffectiveFrom})
}

// SetOverallGoal handles PUT /api/goals/overall.
func (h *ProgressHandler) SetOverallGoal(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if !decodeJSON(w, r, maxRequestBody, &req) {
		return
	}

	settings, err := h.svc.SetOverallGoal(r.Context(), progress.SetGoalInput{Words: req.Words})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettingsResponse(settings))
}

// SetTimezone handles PUT /api/settings/timezone.
func (h *ProgressHandler) SetTimezone(w http.ResponseWriter, r *http.Request) {
	var req timezoneRequest
	if !decodeJSON(w, r, maxRequestBody, &req) {
		return
	}

	settings, err := h.svc.SetTimezone(r.Context(), req.Timezone)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettingsResponse(settings))
}

func toDailyStatResponse(s domain.DailyStat) dailyStatResponse {
	return dailyStatResponse{
		Date:             s.Date.Format(domain.DateLayout),
		WordsRead:        s.WordsRead,
		StoriesCompleted: s.StoriesCompleted,
	}
}

func toSettingsResponse(s *domain.UserSettings) settingsResponse {
	return settingsResponse{OverallGoal: s.OverallGoal, Timezone: s.Timezone}
}
