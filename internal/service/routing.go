package service

import (
	"context"

	"github.com/spec-kit/complaint-service/internal/repository"
)

// RoutingResolver answers which department is responsible for a
// category. Routing is category-only; the zone a complaint is filed in
// plays no part in it.
type RoutingResolver struct {
	departments repository.DepartmentRepository
}

// NewRoutingResolver constructs the resolver.
func NewRoutingResolver(departments repository.DepartmentRepository) *RoutingResolver {
	return &RoutingResolver{departments: departments}
}

// Resolve returns the responsible department id, or nil when no
// department is configured for the category. A missing route is a valid
// outcome, never an error: the complaint stays unrouted and surfaces
// only to admins.
func (r *RoutingResolver) Resolve(ctx context.Context, categoryID int64) (*int64, error) {
	dept, err := r.departments.GetByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if dept == nil {
		return nil, nil
	}
	return &dept.ID, nil
}
