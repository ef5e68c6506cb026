package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-service/internal/api/dto"
	"github.com/spec-kit/restaurant-service/internal/auth"
	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/service"
)

// OrdersHandler exposes customer ordering and kitchen-side management.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orderService}
}

// Place handles POST /orders.
func (h *OrdersHandler) Place(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	lines := make([]service.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, service.OrderLine{MenuItemID: item.MenuItemID, Quantity: item.Quantity})
	}

	order, err := h.orders.Place(c.UserContext(), claims.SubjectID, domain.OrderType(req.Type), req.DeliveryAddress, lines)
	if err != nil {
		return auth.MapFailure(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"order": dto.NewOrderResponse(order)}})
}

// ListOwn handles GET /orders.
func (h *OrdersHandler) ListOwn(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	orders, err := h.orders.ListOwn(c.UserContext(), claims.SubjectID, limit, offset)
	if err != nil {
		return auth.MapFailure(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"orders": orderResponses(orders)}})
}

// GetOwn handles GET /orders/:id.
func (h *OrdersHandler) GetOwn(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	order, err := h.orders.GetOwn(c.UserContext(), claims.SubjectID, c.Params("id"))
	if err != nil {
		return auth.MapFailure(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"order": dto.NewOrderResponse(order)}})
}

// Queue handles GET /staff/orders?status=PLACED.
func (h *OrdersHandler) Queue(c *fiber.Ctx) error {
	status := domain.OrderStatus(c.Query("status", string(domain.OrderStatusPlaced)))
	switch status {
	case domain.OrderStatusPlaced, domain.OrderStatusPreparing, domain.OrderStatusReady,
		domain.OrderStatusCompleted, domain.OrderStatusCancelled:
	default:
		return fiber.NewError(http.StatusBadRequest, "unknown order status")
	}

	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	orders, err := h.orders.ListByStatus(c.UserContext(), status, limit, offset)
	if err != nil {
		return auth.MapFailure(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"orders": orderResponses(orders)}})
}

// UpdateStatus handles PUT /staff/orders/:id/status.
func (h *OrdersHandler) UpdateStatus(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	status := domain.OrderStatus(req.Status)
	switch status {
	case domain.OrderStatusPreparing, domain.OrderStatusReady,
		domain.OrderStatusCompleted, domain.OrderStatusCancelled:
	default:
		return fiber.NewError(http.StatusBadRequest, "unknown order status")
	}

	order, err := h.orders.UpdateStatus(c.UserContext(), claims.SubjectID, c.Params("id"), status, req.Note)
	if err != nil {
		return auth.MapFailure(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"order": dto.NewOrderResponse(order)}})
}

// History handles GET /staff/orders/:id/history.
func (h *OrdersHandler) History(c *fiber.Ctx) error {
	entries, err := h.orders.History(c.UserContext(), c.Params("id"))
	if err != nil {
		return auth.MapFailure(err)
	}

	responses := make([]dto.OrderHistoryEntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, dto.NewOrderHistoryEntryResponse(&entries[i]))
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"history": responses}})
}

// Summary handles GET /admin/analytics/orders?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *OrdersHandler) Summary(c *fiber.Ctx) error {
	var from, to time.Time
	var err error
	if raw := c.Query("from"); raw != "" {
		if from, err = time.Parse("2006-01-02", raw); err != nil {
			return fiber.NewError(http.StatusBadRequest, "from must be YYYY-MM-DD")
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err = time.Parse("2006-01-02", raw); err != nil {
			return fiber.NewError(http.StatusBadRequest, "to must be YYYY-MM-DD")
		}
	}

	summaries, err := h.orders.DailySummary(c.UserContext(), from, to)
	if err != nil {
		return auth.MapFailure(err)
	}

	responses := make([]dto.DailyOrderSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		responses = append(responses, dto.DailyOrderSummaryResponse{
			Day:          summary.Day,
			OrderCount:   summary.OrderCount,
			RevenueCents: summary.RevenueCents,
		})
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"summary": responses}})
}

func orderResponses(orders []domain.Order) []dto.OrderResponse {
	responses := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, dto.NewOrderResponse(&orders[i]))
	}
	return responses
}
