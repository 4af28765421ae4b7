package service

import (
	"time"

	"github.com/spec-kit/complaint-service/internal/domain"
)

// SLADeadline computes the service-level deadline for a complaint
// submitted under the given category. Pure function of its inputs: the
// deadline is fixed at submission time and never recomputed. A category
// with a missing or non-positive SLA window falls back to the
// configuration default of 48 hours.
func SLADeadline(category *domain.Category, submittedAt time.Time) time.Time {
	hours := category.SLAHours
	if hours <= 0 {
		hours = domain.DefaultSLAHours
	}
	return submittedAt.Add(time.Duration(hours) * time.Hour)
}
