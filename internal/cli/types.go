package cli

// StatsResult is the outcome of a statistics run
type StatsResult struct {
	Trials  int     `json:"trials"`
	Average float64 `json:"average"`
}

// HealthResult is a server health check response
type HealthResult struct {
	Status string `json:"status"`
}
