package domain

// ============================================================
// Health & Metrics API Responses
// ============================================================

// HealthStatus is returned by GET /healthz.
type HealthStatus struct {
	Status   string          `json:"status"` // healthy, degraded, unhealthy
	Services []ServiceHealth `json:"services"`
}

// ServiceHealth represents the health of an individual collaborator.
type ServiceHealth struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	LastChecked string `json:"lastChecked"`
}

// UsageMetrics is returned by GET /v1/metrics/usage.
type UsageMetrics struct {
	TotalRequests     int64   `json:"totalRequests"`
	ErrorRate         float64 `json:"errorRate"`
	DispatchedTasks   int64   `json:"dispatchedTasks"`
	UnroutedTasks     int64   `json:"unroutedTasks"`
	CacheHitRate      float64 `json:"cacheHitRate"`
	ExternalErrors    int64   `json:"externalErrors"`
	Period            string  `json:"period"`
}
