package domain

import "time"

// DefaultSLAHours applies when a category carries no usable SLA window.
const DefaultSLAHours = 48

// Category classifies complaints and carries the SLA window in hours.
type Category struct {
	ID        int64
	Name      string
	SLAHours  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Zone identifies the geographic area of an issue.
type Zone struct {
	ID        int64
	Name      string
	City      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Department is an organizational unit handling at most one category's
// complaints. A category may have zero or one department.
type Department struct {
	ID         int64
	Name       string
	CategoryID *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
