package domain

import "time"

// StatusLog is an append-only audit trail entry, one per transition.
// OldStatus is nil only for rows recorded before the first transition
// (none are written at creation time in the current flow).
type StatusLog struct {
	ID          int64
	ComplaintID int64
	ChangedBy   int64
	OldStatus   *ComplaintStatus
	NewStatus   ComplaintStatus
	Remarks     *string
	CreatedAt   time.Time
}
