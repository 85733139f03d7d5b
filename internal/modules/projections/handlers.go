package projections

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/findash/findash/internal/domain"
)

// Handler handles growth projection HTTP requests
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new projections handler
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "projections").Logger(),
	}
}

// HandleGoal handles GET /goal with query params goal_amount (required),
// current_value (defaults to the latest tracked net worth),
// monthly_contribution, annual_return_pct, compounding.
func (h *Handler) HandleGoal(w http.ResponseWriter, r *http.Request) {
	params, ok := h.parseParams(w, r)
	if !ok {
		return
	}

	result := h.service.Project(params)
	if result.MonthsToGoal == nil {
		h.log.Debug().
			Float64("goal", params.GoalAmount).
			Float64("current", params.CurrentValue).
			Msg("Goal unreachable with given parameters")
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}

func (h *Handler) parseParams(w http.ResponseWriter, r *http.Request) (Params, bool) {
	var params Params
	q := r.URL.Query()

	goal, err := strconv.ParseFloat(q.Get("goal_amount"), 64)
	if err != nil || goal < 0 {
		http.Error(w, "goal_amount is required and must be a non-negative number", http.StatusBadRequest)
		return params, false
	}
	params.GoalAmount = goal

	if v := q.Get("current_value"); v != "" {
		current, err := strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "Invalid current_value", http.StatusBadRequest)
			return params, false
		}
		params.CurrentValue = current
	} else {
		current, err := h.service.CurrentNetWorth()
		if errors.Is(err, domain.ErrInsufficientData) {
			http.Error(w, "No tracked net worth; supply current_value", http.StatusBadRequest)
			return params, false
		}
		params.CurrentValue = current
	}

	if v := q.Get("monthly_contribution"); v != "" {
		contribution, err := strconv.ParseFloat(v, 64)
		if err != nil || contribution < 0 {
			http.Error(w, "Invalid monthly_contribution", http.StatusBadRequest)
			return params, false
		}
		params.Contribution = contribution
	}

	if v := q.Get("annual_return_pct"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "Invalid annual_return_pct", http.StatusBadRequest)
			return params, false
		}
		params.AnnualRatePct = rate
	}

	switch c := q.Get("compounding"); c {
	case "", CompoundMonthly:
		params.Compounding = CompoundMonthly
	case CompoundAnnually:
		params.Compounding = CompoundAnnually
	default:
		http.Error(w, "Invalid compounding. Use monthly or annually", http.StatusBadRequest)
		return params, false
	}

	return params, true
}
