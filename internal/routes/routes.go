package routes

const (
	Links   = "/api/links"
	Items   = "/api/items"
	Health  = "/health"
	Metrics = "/metrics"
)
