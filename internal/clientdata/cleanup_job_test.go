package clientdata

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupJobName(t *testing.T) {
	job := NewCleanupJob(NewRepository(), zerolog.Nop())
	assert.Equal(t, "provider_cache_prune", job.Name())
}

func TestCleanupJobRun(t *testing.T) {
	clock := newFakeClock()
	repo := NewRepository(WithClock(clock.Now))
	job := NewCleanupJob(repo, zerolog.Nop())

	require.NoError(t, repo.Store(TableQuotes, "A", 1, time.Minute))
	require.NoError(t, repo.Store(TableQuotes, "B", 1, time.Hour))
	require.NoError(t, repo.Store(TableNews, "C", 1, time.Minute))
	clock.Advance(5 * time.Minute)

	require.NoError(t, job.Run())

	assert.Equal(t, 1, repo.Len(TableQuotes))
	assert.Equal(t, 0, repo.Len(TableNews))
}

func TestCleanupJobRunEmptyTables(t *testing.T) {
	job := NewCleanupJob(NewRepository(), zerolog.Nop())
	require.NoError(t, job.Run())
}
