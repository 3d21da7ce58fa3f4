package response

// Stats is the body for GET /api/v1/stats/attempts
type Stats struct {
	Trials  int     `json:"trials"`
	Average float64 `json:"average"`
}

// Health is the body for GET /api/v1/health
type Health struct {
	Status string `json:"status"`
}
