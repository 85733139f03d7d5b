package spending

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/findash/findash/internal/domain"
)

// Handler handles spending HTTP requests
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new spending handler
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "spending").Logger(),
	}
}

// HandleTotals handles GET /totals?group=category|account|merchant|day-of-week
func (h *Handler) HandleTotals(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	group := r.URL.Query().Get("group")
	if group == "" {
		group = "category"
	}

	totals, err := h.service.Totals(group, start, end)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, map[string]interface{}{
		"group":  group,
		"totals": totals,
	})
}

// HandleMonthly handles GET /monthly - spending per calendar month
func (h *Handler) HandleMonthly(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	writeJSON(w, map[string]interface{}{
		"totals": h.service.MonthlyTotals(start, end),
	})
}

// HandleTrends handles GET /trends - spending per (month, category)
func (h *Handler) HandleTrends(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	writeJSON(w, map[string]interface{}{
		"trends": h.service.CategoryTrends(start, end),
	})
}

// HandleTopMerchants handles GET /top-merchants?limit=10
func (h *Handler) HandleTopMerchants(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l < 1 || l > 1000 {
			http.Error(w, "Invalid limit. Must be 1-1000", http.StatusBadRequest)
			return
		}
		limit = l
	}

	writeJSON(w, map[string]interface{}{
		"merchants": h.service.TopMerchants(limit, start, end),
	})
}

// HandleBudget handles GET /budget - budget vs actual comparison
func (h *Handler) HandleBudget(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	rows, numMonths, err := h.service.BudgetComparison(start, end)
	if err != nil {
		h.log.Error().Err(err).Msg("Budget comparison failed")
		status := http.StatusInternalServerError
		if domain.IsStructural(err) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}

	writeJSON(w, map[string]interface{}{
		"num_months": numMonths,
		"rows":       rows,
	})
}

// HandleSummary handles GET /summary - headline spending statistics
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseDateRange(w, r)
	if !ok {
		return
	}

	summary, numMonths, err := h.service.Summary(start, end)
	if err != nil {
		h.log.Error().Err(err).Msg("Summary failed")
		status := http.StatusInternalServerError
		if domain.IsStructural(err) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}

	writeJSON(w, map[string]interface{}{
		"num_months": numMonths,
		"summary":    summary,
	})
}

// parseDateRange reads optional start_date / end_date query params
// (YYYY-MM-DD). Writes a 400 and returns ok=false on malformed input.
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
