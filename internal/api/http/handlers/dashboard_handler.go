package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-service/internal/api/dto"
	"github.com/spec-kit/complaint-service/internal/domain"
	"github.com/spec-kit/complaint-service/internal/service"
)

// DashboardHandler exposes role-shaped aggregate counters.
type DashboardHandler struct {
	stats *service.StatsService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(statsService *service.StatsService) *DashboardHandler {
	return &DashboardHandler{stats: statsService}
}

// Stats GET /dashboard/stats. One endpoint for every role; the
// visibility scoper inside the stats service decides the counted set.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	principal, err := callerPrincipal(c)
	if err != nil {
		return err
	}
	counters, err := h.stats.Stats(c.Context(), principal)
	if err != nil {
		return err
	}

	switch principal.Role {
	case domain.RoleOfficer:
		return c.JSON(fiber.Map{"data": dto.OfficerStatsResponse{
			Assigned:   counters.Pending,
			InProgress: counters.InProgress,
			Resolved:   counters.Resolved,
			Critical:   counters.Critical,
		}})
	case domain.RoleAdmin:
		return c.JSON(fiber.Map{"data": dto.AdminStatsResponse{
			Total:      counters.Total,
			Pending:    counters.Pending,
			InProgress: counters.InProgress,
			Resolved:   counters.Resolved,
			Critical:   counters.Critical,
		}})
	default:
		return c.JSON(fiber.Map{"data": dto.CitizenStatsResponse{
			Total:      counters.Total,
			Pending:    counters.Pending,
			InProgress: counters.InProgress,
			Resolved:   counters.Resolved,
		}})
	}
}
