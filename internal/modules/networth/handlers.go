package networth

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/findash/findash/internal/domain"
)

// Handler handles net worth HTTP requests
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new networth handler
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "networth").Logger(),
	}
}

// HandleSeries handles GET /series?interval=month|quarter|year
func (h *Handler) HandleSeries(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	interval, ok := parseInterval(w, r)
	if !ok {
		return
	}

	writeJSON(w, map[string]interface{}{
		"series": h.service.Series(start, end, interval),
	})
}

// HandleStats handles GET /stats - period metrics, rolling average, milestones
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	stats, rolling, milestones, err := h.service.Stats(start, end)
	if errors.Is(err, domain.ErrInsufficientData) {
		writeJSON(w, map[string]interface{}{"insufficient_data": true})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to compute net worth stats")
		http.Error(w, "Failed to compute stats", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]interface{}{
		"stats":           stats,
		"rolling_average": rolling,
		"milestones":      milestones,
	})
}

// HandleMetrics handles GET /metrics - latest month balance-sheet metrics
func (h *Handler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	metrics, err := h.service.Metrics(start, end)
	if errors.Is(err, domain.ErrInsufficientData) {
		writeJSON(w, map[string]interface{}{"insufficient_data": true})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to compute snapshot metrics")
		http.Error(w, "Failed to compute metrics", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]interface{}{"metrics": metrics})
}

// HandleAccounts handles GET /accounts - per-account movement
func (h *Handler) HandleAccounts(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	writeJSON(w, map[string]interface{}{
		"accounts": h.service.Accounts(start, end),
	})
}

// HandlePivot handles GET /pivot?by=category&interval=quarter
func (h *Handler) HandlePivot(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	interval, ok := parseInterval(w, r)
	if !ok {
		return
	}

	byCategory := r.URL.Query().Get("by") == "category"

	writeJSON(w, map[string]interface{}{
		"pivot": h.service.PivotTable(start, end, byCategory, interval),
	})
}

func parseInterval(w http.ResponseWriter, r *http.Request) (int, bool) {
	switch r.URL.Query().Get("interval") {
	case "", "month":
		return IntervalMonth, true
	case "quarter":
		return IntervalQuarter, true
	case "year":
		return IntervalYear, true
	default:
		http.Error(w, "Invalid interval. Use month, quarter or year", http.StatusBadRequest)
		return 0, false
	}
}

func parseDateRange(w http.ResponseWriter, r *http.Request) (start, end time.Time, ok bool) {
	var err error
	if s := r.URL.Query().Get("start_date"); s != "" {
		start, err = time.Parse("2006-01-02", s)
		if err != nil {
			http.Error(w, "Invalid start_date. Use YYYY-MM-DD", http.StatusBadRequest)
			return start, end, false
		}
	}
	if e := r.URL.Query().Get("end_date"); e != "" {
		end, err = time.Parse("2006-01-02", e)
		if err != nil {
			http.Error(w, "Invalid end_date. Use YYYY-MM-DD", http.StatusBadRequest)
			return start, end, false
		}
	}
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		http.Error(w, "start_date must be <= end_date", http.StatusBadRequest)
		return start, end, false
	}
	return start, end, true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
