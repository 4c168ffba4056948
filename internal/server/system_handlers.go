package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aristath/impact/internal/clientdata"
	"github.com/aristath/impact/internal/config"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// ScoreCacheStats exposes the size of the score cache.
type ScoreCacheStats interface {
	CacheSize() int
}

// SystemHandlers handles system monitoring endpoints
type SystemHandlers struct {
	log         zerolog.Logger
	cfg         *config.Config
	clientData  *clientdata.Repository
	scoreCache  ScoreCacheStats
	startupTime time.Time
}

// NewSystemHandlers creates a new system handlers instance
func NewSystemHandlers(log zerolog.Logger, cfg *config.Config, clientData *clientdata.Repository, scoreCache ScoreCacheStats) *SystemHandlers {
	return &SystemHandlers{
		log:         log.With().Str("service", "system").Logger(),
		cfg:         cfg,
		clientData:  clientData,
		scoreCache:  scoreCache,
		startupTime: time.Now(),
	}
}

// ProviderStatus reports which upstream providers have credentials.
// A provider without one serves fallback data.
type ProviderStatus struct {
	Stock bool `json:"stock"`
	News  bool `json:"news"`
	AI    bool `json:"ai"`
}

// SystemStatusResponse represents the system status response
type SystemStatusResponse struct {
	ProviderCache  map[string]int `json:"provider_cache"`
	Providers      ProviderStatus `json:"providers"`
	Status         string         `json:"status"`
	UptimeSeconds  int64          `json:"uptime_seconds"`
	CPUPercent     float64        `json:"cpu_percent"`
	RAMPercent     float64        `json:"ram_percent"`
	ScoreCacheSize int            `json:"score_cache_entries"`
}

// HandleSystemStatus handles GET /api/system/status
func (h *SystemHandlers) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	h.log.Debug().Msg("Getting system status")

	cpuPercent, ramPercent := h.getSystemStats()

	response := SystemStatusResponse{
		Status:        "healthy",
		UptimeSeconds: int64(time.Since(h.startupTime).Seconds()),
		CPUPercent:    cpuPercent,
		RAMPercent:    ramPercent,
		ProviderCache: make(map[string]int, len(clientdata.AllTables)),
	}
	if h.cfg != nil {
		response.Providers = ProviderStatus{
			Stock: h.cfg.StockAPIKey != "",
			News:  h.cfg.NewsAPIKey != "",
			AI:    h.cfg.AIEnabled(),
		}
	}
	if h.scoreCache != nil {
		response.ScoreCacheSize = h.scoreCache.CacheSize()
	}
	if h.clientData != nil {
		for _, table := range clientdata.AllTables {
			response.ProviderCache[table] = h.clientData.Len(table)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// getSystemStats calculates CPU and RAM usage percentages.
// CPU is sampled over 100ms to keep the endpoint responsive.
func (h *SystemHandlers) getSystemStats() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}

	return cpuAvg, memStat.UsedPercent
}
