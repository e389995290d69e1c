package models

import "time"

// SystemMetrics is the JSON snapshot served by the system metrics endpoint.
type SystemMetrics struct {
	CacheHitRatio            float64   `json:"cacheHitRatio"`
	CacheHits                uint64    `json:"cacheHits"`
	CacheMisses              uint64    `json:"cacheMisses"`
	RequestsTotal            uint64    `json:"requestsTotal"`
	AverageRequestDurationMs float64   `json:"averageRequestDurationMs"`
	ComposeCount             uint64    `json:"composeCount"`
	AverageComposeDurationMs float64   `json:"averageComposeDurationMs"`
	LayoutCapped             uint64    `json:"layoutCapped"`
	WarmupJobs               uint64    `json:"warmupJobs"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generatedAt"`
}
