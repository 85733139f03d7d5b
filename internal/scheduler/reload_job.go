package scheduler

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/findash/findash/internal/store"
)

// ReloadJob re-reads the CSV datasets so edits to the sheets show up
// without a restart. A structural error leaves the previous data in place.
type ReloadJob struct {
	log   zerolog.Logger
	store *store.Store
}

// NewReloadJob creates a new dataset reload job
func NewReloadJob(log zerolog.Logger, st *store.Store) *ReloadJob {
	return &ReloadJob{
		log:   log.With().Str("job", "dataset_reload").Logger(),
		store: st,
	}
}

// Name returns the job name
func (j *ReloadJob) Name() string {
	return "dataset_reload"
}

// Run reloads all datasets from the data directory
func (j *ReloadJob) Run() error {
	runID := uuid.NewString()
	start := time.Now()

	j.log.Info().Str("run_id", runID).Msg("Starting dataset reload")

	if err := j.store.Reload(); err != nil {
		j.log.Error().
			Err(err).
			Str("run_id", runID).
			Msg("Dataset reload failed, keeping previous data")
		return err
	}

	j.log.Info().
		Str("run_id", runID).
		Dur("elapsed", time.Since(start)).
		Msg("Dataset reload completed")

	return nil
}
