package clientdata

import (
	"github.com/rs/zerolog"
)

// CleanupJob removes expired entries from all provider cache tables.
// It is scheduled on PRUNE_SCHEDULE; reads never depend on it running.
type CleanupJob struct {
	repo *Repository
	log  zerolog.Logger
}

// NewCleanupJob creates a new provider cache cleanup job.
func NewCleanupJob(repo *Repository, log zerolog.Logger) *CleanupJob {
	return &CleanupJob{
		repo: repo,
		log:  log.With().Str("job", "provider_cache_prune").Logger(),
	}
}

// Run removes all expired entries from all tables.
func (j *CleanupJob) Run() error {
	results, err := j.repo.DeleteAllExpired()
	if err != nil {
		j.log.Error().Err(err).Msg("Failed to delete expired client data")
		return err
	}

	totalDeleted := 0
	for table, count := range results {
		if count > 0 {
			j.log.Debug().
				Str("table", table).
				Int("deleted", count).
				Msg("Pruned expired cache entries")
			totalDeleted += count
		}
	}

	if totalDeleted > 0 {
		j.log.Info().
			Int("total_deleted", totalDeleted).
			Msg("Provider cache prune completed")
	}

	return nil
}

// Name returns the job name for scheduling and logging.
func (j *CleanupJob) Name() string {
	return "provider_cache_prune"
}
