package service

import (
	"context"

	"github.com/spec-kit/complaint-service/internal/domain"
	"github.com/spec-kit/complaint-service/internal/repository"
)

// StatsCounters holds the per-scope aggregate counts. Critical is only
// populated for roles that track it (officer, admin).
type StatsCounters struct {
	Total      int64
	Pending    int64
	InProgress int64
	Resolved   int64
	Critical   int64
}

// StatsService computes aggregate counters over the caller's visible
// set. Counts are taken fresh per request with one scoped count query
// per counter; nothing is cached.
type StatsService struct {
	complaints repository.ComplaintRepository
	scoper     *VisibilityScoper
}

// NewStatsService constructs the service.
func NewStatsService(complaints repository.ComplaintRepository, scoper *VisibilityScoper) *StatsService {
	return &StatsService{complaints: complaints, scoper: scoper}
}

// Stats returns counters scoped to the principal. A principal with an
// empty visible set (an officer without a department) gets all zeros
// without error.
func (s *StatsService) Stats(ctx context.Context, principal domain.Principal) (*StatsCounters, error) {
	scope, visible := s.scoper.Scope(principal)
	if !visible {
		return &StatsCounters{}, nil
	}
	// The list cap bounds bulk reads, not aggregation.
	scope.Limit = 0
	scope.Offset = 0

	counters := &StatsCounters{}

	var err error
	if counters.Total, err = s.count(ctx, scope, nil, nil, nil); err != nil {
		return nil, err
	}
	pending := []domain.ComplaintStatus{domain.StatusSubmitted, domain.StatusAssigned}
	if counters.Pending, err = s.count(ctx, scope, pending, nil, nil); err != nil {
		return nil, err
	}
	inProgress := []domain.ComplaintStatus{domain.StatusInProgress}
	if counters.InProgress, err = s.count(ctx, scope, inProgress, nil, nil); err != nil {
		return nil, err
	}
	resolved := []domain.ComplaintStatus{domain.StatusResolved, domain.StatusClosed}
	if counters.Resolved, err = s.count(ctx, scope, resolved, nil, nil); err != nil {
		return nil, err
	}

	if principal.Role == domain.RoleOfficer || principal.Role == domain.RoleAdmin {
		critical := domain.PriorityCritical
		unresolved := []domain.ComplaintStatus{domain.StatusResolved, domain.StatusClosed}
		if counters.Critical, err = s.count(ctx, scope, nil, unresolved, &critical); err != nil {
			return nil, err
		}
	}
	return counters, nil
}

func (s *StatsService) count(ctx context.Context, scope repository.ComplaintFilter, statuses, notStatuses []domain.ComplaintStatus, priority *domain.ComplaintPriority) (int64, error) {
	filter := scope
	filter.Statuses = statuses
	filter.NotStatuses = notStatuses
	filter.Priority = priority
	return s.complaints.CountWithFilter(ctx, filter)
}
