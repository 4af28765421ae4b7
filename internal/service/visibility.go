package service

import (
	"github.com/spec-kit/complaint-service/internal/domain"
	"github.com/spec-kit/complaint-service/internal/repository"
)

// VisibilityScoper is the single choke point deciding which complaints
// a principal may observe. Every read path (list, single fetch, stats)
// goes through it; no component applies role logic anywhere else.
type VisibilityScoper struct {
	adminListCap int
}

// NewVisibilityScoper constructs the scoper. adminListCap bounds admin
// bulk listings to the most recent N rows.
func NewVisibilityScoper(adminListCap int) *VisibilityScoper {
	if adminListCap <= 0 {
		adminListCap = 100
	}
	return &VisibilityScoper{adminListCap: adminListCap}
}

// Scope returns the repository filter restricting queries to the
// principal's visible set. The second return is false when the visible
// set is empty by construction (an officer with no department), letting
// callers skip the query entirely.
func (s *VisibilityScoper) Scope(principal domain.Principal) (repository.ComplaintFilter, bool) {
	switch principal.Role {
	case domain.RoleCitizen:
		userID := principal.ID
		return repository.ComplaintFilter{UserID: &userID}, true
	case domain.RoleOfficer:
		if principal.DepartmentID == nil {
			return repository.ComplaintFilter{}, false
		}
		deptID := *principal.DepartmentID
		return repository.ComplaintFilter{DepartmentID: &deptID}, true
	case domain.RoleAdmin:
		return repository.ComplaintFilter{Limit: s.adminListCap}, true
	default:
		return repository.ComplaintFilter{}, false
	}
}

// IsVisible reports whether the principal may observe a single
// complaint.
func (s *VisibilityScoper) IsVisible(principal domain.Principal, complaint *domain.Complaint) bool {
	switch principal.Role {
	case domain.RoleCitizen:
		return complaint.UserID == principal.ID
	case domain.RoleOfficer:
		return principal.DepartmentID != nil &&
			complaint.DepartmentID != nil &&
			*complaint.DepartmentID == *principal.DepartmentID
	case domain.RoleAdmin:
		return true
	default:
		return false
	}
}

// CanModify reports whether the principal may transition or reprioritize
// a complaint: admins always, officers only within their department.
// Unrouted complaints are admin-only. Citizens never modify.
func (s *VisibilityScoper) CanModify(principal domain.Principal, complaint *domain.Complaint) bool {
	switch principal.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleOfficer:
		return principal.DepartmentID != nil &&
			complaint.DepartmentID != nil &&
			*complaint.DepartmentID == *principal.DepartmentID
	default:
		return false
	}
}
