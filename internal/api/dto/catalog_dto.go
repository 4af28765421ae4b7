package dto

// CategoryResponse is a complaint category with its SLA window.
type CategoryResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	SLAHours int    `json:"sla_hours"`
}

// ZoneResponse is a geographic zone.
type ZoneResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}
