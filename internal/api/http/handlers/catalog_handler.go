package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-service/internal/api/dto"
	"github.com/spec-kit/complaint-service/internal/service"
)

// CatalogHandler serves reference data reads.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalogService}
}

// ListCategories GET /catalog/categories.
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.catalog.ListCategories(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		items = append(items, dto.CategoryResponse{
			ID:       category.ID,
			Name:     category.Name,
			SLAHours: category.SLAHours,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

// ListZones GET /catalog/zones.
func (h *CatalogHandler) ListZones(c *fiber.Ctx) error {
	zones, err := h.catalog.ListZones(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.ZoneResponse, 0, len(zones))
	for _, zone := range zones {
		items = append(items, dto.ZoneResponse{
			ID:   zone.ID,
			Name: zone.Name,
			City: zone.City,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}
