package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/findash/findash/internal/scheduler"
	"github.com/findash/findash/internal/store"
)

// SystemHandlers exposes process health and dataset status, plus a manual
// reload trigger for when the sheets change between scheduled reloads.
type SystemHandlers struct {
	log       zerolog.Logger
	store     *store.Store
	scheduler *scheduler.Scheduler
	reloadJob scheduler.Job
	startedAt time.Time
}

// NewSystemHandlers creates a new system handlers instance
func NewSystemHandlers(log zerolog.Logger, st *store.Store) *SystemHandlers {
	return &SystemHandlers{
		log:       log.With().Str("component", "system_handlers").Logger(),
		store:     st,
		startedAt: time.Now(),
	}
}

// SetReloadJob registers the reload job for manual triggering
// Called after job registration in main.go
func (h *SystemHandlers) SetReloadJob(sched *scheduler.Scheduler, job scheduler.Job) {
	h.scheduler = sched
	h.reloadJob = job
}

// SystemStatusResponse represents the system status response
type SystemStatusResponse struct {
	Status        string      `json:"status"`
	UptimeSeconds float64     `json:"uptime_seconds"`
	CPUPercent    float64     `json:"cpu_percent"`
	RAMPercent    float64     `json:"ram_percent"`
	Datasets      store.Stats `json:"datasets"`
}

// HandleSystemStatus returns process and dataset status
func (h *SystemHandlers) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	h.log.Debug().Msg("Getting system status")

	response := SystemStatusResponse{
		Status:        "running",
		UptimeSeconds: time.Since(h.startedAt).Seconds(),
		Datasets:      h.store.Stats(),
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		response.CPUPercent = percents[0]
	} else if err != nil {
		h.log.Warn().Err(err).Msg("Failed to read CPU usage")
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		response.RAMPercent = vm.UsedPercent
	} else {
		h.log.Warn().Err(err).Msg("Failed to read memory usage")
	}

	h.writeJSON(w, response)
}

// HandleReload triggers a dataset reload immediately
// POST /api/system/reload
func (h *SystemHandlers) HandleReload(w http.ResponseWriter, r *http.Request) {
	h.log.Info().Msg("Manual dataset reload triggered")

	var err error
	if h.scheduler != nil && h.reloadJob != nil {
		err = h.scheduler.RunNow(h.reloadJob)
	} else {
		err = h.store.Reload()
	}

	if err != nil {
		h.log.Error().Err(err).Msg("Manual reload failed")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "error",
			"error":  err.Error(),
		})
		return
	}

	h.writeJSON(w, map[string]interface{}{
		"status":   "success",
		"datasets": h.store.Stats(),
	})
}

// writeJSON writes a JSON response
func (h *SystemHandlers) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
