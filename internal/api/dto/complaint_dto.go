package dto

import (
	"time"

	"github.com/spec-kit/complaint-service/internal/domain"
)

// CreateComplaintRequest payload.
type CreateComplaintRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CategoryID  int64    `json:"category_id"`
	ZoneID      int64    `json:"zone_id"`
	Address     *string  `json:"address"`
	LocationLat *float64 `json:"location_lat"`
	LocationLng *float64 `json:"location_lng"`
	ImageURLs   []string `json:"image_urls"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status  domain.ComplaintStatus `json:"status"`
	Remarks *string                `json:"remarks"`
}

// UpdatePriorityRequest payload.
type UpdatePriorityRequest struct {
	Priority domain.ComplaintPriority `json:"priority"`
}

// ComplaintSummary response.
type ComplaintSummary struct {
	ID           int64                    `json:"id"`
	ReferenceKey string                   `json:"reference_key"`
	CategoryID   int64                    `json:"category_id"`
	ZoneID       int64                    `json:"zone_id"`
	DepartmentID *int64                   `json:"department_id"`
	Title        string                   `json:"title"`
	Status       domain.ComplaintStatus   `json:"status"`
	Priority     domain.ComplaintPriority `json:"priority"`
	SLADeadline  time.Time                `json:"sla_deadline"`
	ResolvedAt   *time.Time               `json:"resolved_at"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

// ComplaintDetailResponse provides full complaint info.
type ComplaintDetailResponse struct {
	ComplaintSummary
	Description string                    `json:"description"`
	Address     *string                   `json:"address"`
	LocationLat *float64                  `json:"location_lat"`
	LocationLng *float64                  `json:"location_lng"`
	Images      []ComplaintImageResponse  `json:"images"`
	StatusLogs  []StatusLogResponse       `json:"status_logs"`
}

// ComplaintImageResponse metadata.
type ComplaintImageResponse struct {
	ID       int64  `json:"id"`
	ImageURL string `json:"image_url"`
}

// StatusLogResponse is one audit trail row.
type StatusLogResponse struct {
	ID        int64                   `json:"id"`
	ChangedBy int64                   `json:"changed_by"`
	OldStatus *domain.ComplaintStatus `json:"old_status"`
	NewStatus domain.ComplaintStatus  `json:"new_status"`
	Remarks   *string                 `json:"remarks"`
	CreatedAt time.Time               `json:"created_at"`
}
