package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-service/internal/api/dto"
	"github.com/spec-kit/restaurant-service/internal/auth"
	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/service"
)

// MenuHandler exposes public browsing and back-office menu management.
type MenuHandler struct {
	menu *service.MenuService
}

// NewMenuHandler constructs handler.
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menu: menuService}
}

// Catalog handles GET /menu. Public, no authentication.
func (h *MenuHandler) Catalog(c *fiber.Ctx) error {
	catalog, err := h.menu.Catalog(c.UserContext())
	if err != nil {
		return err
	}

	resp := dto.MenuCatalogResponse{
		Categories: make([]dto.MenuCategoryResponse, 0, len(catalog.Categories)),
		Items:      make([]dto.MenuItemResponse, 0, len(catalog.Items)),
	}
	for i := range catalog.Categories {
		resp.Categories = append(resp.Categories, dto.NewMenuCategoryResponse(&catalog.Categories[i]))
	}
	for i := range catalog.Items {
		resp.Items = append(resp.Items, dto.NewMenuItemResponse(&catalog.Items[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// CreateCategory handles POST /admin/menu/categories.
func (h *MenuHandler) CreateCategory(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name required")
	}

	category := &domain.MenuCategory{Name: req.Name, Position: req.Position}
	if err := h.menu.CreateCategory(c.UserContext(), category); err != nil {
		return auth.MapFailure(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"category": dto.NewMenuCategoryResponse(category)}})
}

// CreateItem handles POST /admin/menu/items.
func (h *MenuHandler) CreateItem(c *fiber.Ctx) error {
	var req dto.CreateMenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.CategoryID == "" {
		return fiber.NewError(http.StatusBadRequest, "name and category_id required")
	}
	if req.PriceCents <= 0 {
		return fiber.NewError(http.StatusBadRequest, "price must be positive")
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	item := &domain.MenuItem{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Available:   available,
		ImageURL:    req.ImageURL,
	}
	if err := h.menu.CreateItem(c.UserContext(), item); err != nil {
		return auth.MapFailure(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"item": dto.NewMenuItemResponse(item)}})
}

// UpdateItem handles PUT /admin/menu/items/:id.
func (h *MenuHandler) UpdateItem(c *fiber.Ctx) error {
	var req dto.UpdateMenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.CategoryID == "" {
		return fiber.NewError(http.StatusBadRequest, "name and category_id required")
	}
	if req.PriceCents <= 0 {
		return fiber.NewError(http.StatusBadRequest, "price must be positive")
	}

	item := &domain.MenuItem{
		ID:          c.Params("id"),
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Available:   req.Available,
		ImageURL:    req.ImageURL,
	}
	if err := h.menu.UpdateItem(c.UserContext(), item); err != nil {
		return auth.MapFailure(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"item": dto.NewMenuItemResponse(item)}})
}

// DeleteItem handles DELETE /admin/menu/items/:id.
func (h *MenuHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.menu.DeleteItem(c.UserContext(), c.Params("id")); err != nil {
		return auth.MapFailure(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}
