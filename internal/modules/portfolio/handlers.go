package portfolio

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/findash/findash/internal/domain"
)

// Handler handles portfolio HTTP requests
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new portfolio handler
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "portfolio").Logger(),
	}
}

// HandleRisk handles GET /risk - portfolio and per-symbol risk metrics
func (h *Handler) HandleRisk(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	portfolioRisk, symbols, err := h.service.Risk(start, end)
	if errors.Is(err, domain.ErrInsufficientData) {
		writeJSON(w, map[string]interface{}{"insufficient_data": true})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Risk computation failed")
		http.Error(w, "Failed to compute risk metrics", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]interface{}{
		"portfolio": portfolioRisk,
		"symbols":   symbols,
	})
}

// HandlePerformance handles GET /performance - per-symbol performance + stats
func (h *Handler) HandlePerformance(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	performance, stats := h.service.Performance(start, end)
	if len(performance) == 0 && len(stats) == 0 {
		writeJSON(w, map[string]interface{}{"insufficient_data": true})
		return
	}

	writeJSON(w, map[string]interface{}{
		"performance": performance,
		"statistics":  stats,
	})
}

// HandleDaily handles GET /daily?smooth=20 - aggregated daily valuation
func (h *Handler) HandleDaily(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	smooth := 0
	if v := r.URL.Query().Get("smooth"); v != "" {
		s, err := strconv.Atoi(v)
		if err != nil || s < 2 || s > 252 {
			http.Error(w, "Invalid smooth window. Must be 2-252", http.StatusBadRequest)
			return
		}
		smooth = s
	}

	totals, smoothed := h.service.Daily(start, end, smooth)
	writeJSON(w, map[string]interface{}{
		"daily":    totals,
		"smoothed": smoothed,
	})
}

// HandleComparison handles GET /comparison - normalized series + index overlay
func (h *Handler) HandleComparison(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	series := h.service.Comparison(r.Context(), start, end)
	if len(series) == 0 {
		writeJSON(w, map[string]interface{}{"insufficient_data": true})
		return
	}

	writeJSON(w, map[string]interface{}{"series": series})
}

// HandleCorrelation handles GET /correlation - pairwise return correlations
func (h *Handler) HandleCorrelation(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	matrix, err := h.service.Correlation(start, end)
	if errors.Is(err, domain.ErrInsufficientData) {
		writeJSON(w, map[string]interface{}{"insufficient_data": true})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Correlation computation failed")
		http.Error(w, "Failed to compute correlations", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]interface{}{"correlation": matrix})
}

// HandleOwned handles GET /owned?at=YYYY-MM-DD - currently owned tickers
func (h *Handler) HandleOwned(w http.ResponseWriter, r *http.Request) {
	var at time.Time
	if v := r.URL.Query().Get("at"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			http.Error(w, "Invalid at date. Use YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		at = parsed
	}

	writeJSON(w, map[string]interface{}{"tickers": h.service.Owned(at)})
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
