package models

import "time"

// ServerStatsResponse contains runtime statistics for GET /stats.
type ServerStatsResponse struct {
	Uptime        string             `json:"uptime"`
	UptimeSeconds int64              `json:"uptime_seconds"`
	StartTime     time.Time          `json:"start_time"`
	GoRoutines    int                `json:"goroutines"`
	MemoryAllocMB float64            `json:"memory_alloc_mb"`
	NumCPU        int                `json:"num_cpu"`
	Host          *HostStatsResponse `json:"host,omitempty"`
}

// HostStatsResponse describes the host the server runs on.
type HostStatsResponse struct {
	Hostname        string  `json:"hostname"`
	Platform        string  `json:"platform"`
	PlatformVersion string  `json:"platform_version"`
	TotalMemoryMB   float64 `json:"total_memory_mb"`
	UsedMemoryPct   float64 `json:"used_memory_pct"`
}
