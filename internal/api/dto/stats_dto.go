package dto

// CitizenStatsResponse counters over the citizen's own complaints.
type CitizenStatsResponse struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
}

// OfficerStatsResponse counters over the officer's department queue.
// The pending bucket is reported as "assigned", matching the officer
// dashboard vocabulary.
type OfficerStatsResponse struct {
	Assigned   int64 `json:"assigned"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
	Critical   int64 `json:"critical"`
}

// AdminStatsResponse counters over all complaints.
type AdminStatsResponse struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
	Critical   int64 `json:"critical"`
}
