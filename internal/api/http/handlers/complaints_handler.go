package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-service/internal/api/dto"
	"github.com/spec-kit/complaint-service/internal/auth"
	"github.com/spec-kit/complaint-service/internal/domain"
	"github.com/spec-kit/complaint-service/internal/service"
	apperrors "github.com/spec-kit/complaint-service/pkg/util"
)

// ComplaintsHandler manages complaint endpoints for all roles; the
// service's visibility scoper decides what each caller sees.
type ComplaintsHandler struct {
	complaints *service.ComplaintService
}

// NewComplaintsHandler constructs handler.
func NewComplaintsHandler(complaintService *service.ComplaintService) *ComplaintsHandler {
	return &ComplaintsHandler{complaints: complaintService}
}

// Create POST /complaints.
func (h *ComplaintsHandler) Create(c *fiber.Ctx) error {
	principal, err := callerPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.ComplaintCreateInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		ZoneID:      req.ZoneID,
		Address:     req.Address,
		LocationLat: req.LocationLat,
		LocationLng: req.LocationLng,
		ImageURLs:   req.ImageURLs,
	}
	complaint, err := h.complaints.Create(c.Context(), principal, input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": complaintSummary(complaint)})
}

// List GET /complaints.
func (h *ComplaintsHandler) List(c *fiber.Ctx) error {
	principal, err := callerPrincipal(c)
	if err != nil {
		return err
	}
	complaints, err := h.complaints.List(c.Context(), principal)
	if err != nil {
		return err
	}
	items := make([]dto.ComplaintSummary, 0, len(complaints))
	for i := range complaints {
		items = append(items, complaintSummary(&complaints[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /complaints/:id.
func (h *ComplaintsHandler) Get(c *fiber.Ctx) error {
	principal, err := callerPrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	detail, err := h.complaints.Get(c.Context(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": complaintDetail(detail)})
}

// UpdateStatus PUT /complaints/:id/status.
func (h *ComplaintsHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, err := callerPrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Status == "" {
		return apperrors.NewValidationError("status required", nil)
	}
	complaint, err := h.complaints.UpdateStatus(c.Context(), principal, id, req.Status, req.Remarks)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": complaintSummary(complaint)})
}

// UpdatePriority PUT /complaints/:id/priority.
func (h *ComplaintsHandler) UpdatePriority(c *fiber.Ctx) error {
	principal, err := callerPrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.UpdatePriorityRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Priority == "" {
		return apperrors.NewValidationError("priority required", nil)
	}
	complaint, err := h.complaints.UpdatePriority(c.Context(), principal, id, req.Priority)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": complaintSummary(complaint)})
}

func callerPrincipal(c *fiber.Ctx) (domain.Principal, error) {
	authCtx, ok := auth.FromContext(c)
	if !ok {
		return domain.Principal{}, apperrors.NewUnauthorized("authentication required")
	}
	return authCtx.Principal, nil
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid complaint id", nil)
	}
	return id, nil
}

func complaintSummary(complaint *domain.Complaint) dto.ComplaintSummary {
	return dto.ComplaintSummary{
		ID:           complaint.ID,
		ReferenceKey: complaint.ReferenceKey,
		CategoryID:   complaint.CategoryID,
		ZoneID:       complaint.ZoneID,
		DepartmentID: complaint.DepartmentID,
		Title:        complaint.Title,
		Status:       complaint.Status,
		Priority:     complaint.Priority,
		SLADeadline:  complaint.SLADeadline,
		ResolvedAt:   complaint.ResolvedAt,
		CreatedAt:    complaint.CreatedAt,
		UpdatedAt:    complaint.UpdatedAt,
	}
}

func complaintDetail(detail *service.ComplaintDetail) dto.ComplaintDetailResponse {
	images := make([]dto.ComplaintImageResponse, 0, len(detail.Images))
	for _, image := range detail.Images {
		images = append(images, dto.ComplaintImageResponse{ID: image.ID, ImageURL: image.ImageURL})
	}
	logs := make([]dto.StatusLogResponse, 0, len(detail.Logs))
	for _, log := range detail.Logs {
		logs = append(logs, dto.StatusLogResponse{
			ID:        log.ID,
			ChangedBy: log.ChangedBy,
			OldStatus: log.OldStatus,
			NewStatus: log.NewStatus,
			Remarks:   log.Remarks,
			CreatedAt: log.CreatedAt,
		})
	}
	return dto.ComplaintDetailResponse{
		ComplaintSummary: complaintSummary(detail.Complaint),
		Description:      detail.Complaint.Description,
		Address:          detail.Complaint.Address,
		LocationLat:      detail.Complaint.LocationLat,
		LocationLng:      detail.Complaint.LocationLng,
		Images:           images,
		StatusLogs:       logs,
	}
}
