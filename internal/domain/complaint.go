package domain

import "time"

// ComplaintStatus enumerates lifecycle states for complaints.
// The values match what the database stores, spaces included.
type ComplaintStatus string

const (
	StatusSubmitted  ComplaintStatus = "Submitted"
	StatusAssigned   ComplaintStatus = "Assigned"
	StatusInProgress ComplaintStatus = "In Progress"
	StatusResolved   ComplaintStatus = "Resolved"
	StatusClosed     ComplaintStatus = "Closed"
)

// IsTerminal reports whether the status belongs to the absorbing pair.
func (s ComplaintStatus) IsTerminal() bool {
	return s == StatusResolved || s == StatusClosed
}

// ComplaintPriority enumerates urgency levels.
type ComplaintPriority string

const (
	PriorityLow      ComplaintPriority = "Low"
	PriorityMedium   ComplaintPriority = "Medium"
	PriorityHigh     ComplaintPriority = "High"
	PriorityCritical ComplaintPriority = "Critical"
)

// ValidPriority reports whether p is a known priority value.
func ValidPriority(p ComplaintPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Complaint is the aggregate for citizen-filed municipal issues.
// DepartmentID is resolved from the category at creation time and stays
// nil when no department handles the category; SLADeadline is computed
// once at creation and never recomputed.
type Complaint struct {
	ID           int64
	ReferenceKey string
	UserID       int64
	CategoryID   int64
	ZoneID       int64
	DepartmentID *int64
	Title        string
	Description  string
	LocationLat  *float64
	LocationLng  *float64
	Address      *string
	Status       ComplaintStatus
	Priority     ComplaintPriority
	SLADeadline  time.Time
	ResolvedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Unrouted reports whether the complaint has no responsible department.
// This is a valid state, not an error; unrouted complaints surface only
// to admins.
func (c *Complaint) Unrouted() bool {
	return c.DepartmentID == nil
}

// ComplaintImage is a cascade-owned child holding an uploaded image URL.
type ComplaintImage struct {
	ID          int64
	ComplaintID int64
	ImageURL    string
	CreatedAt   time.Time
}
