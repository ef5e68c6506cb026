package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-service/internal/api/dto"
	"github.com/spec-kit/restaurant-service/internal/auth"
	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/service"
)

// AccountsHandler exposes back-office account management.
type AccountsHandler struct {
	auth *service.AuthService
}

// NewAccountsHandler constructs handler.
func NewAccountsHandler(authService *service.AuthService) *AccountsHandler {
	return &AccountsHandler{auth: authService}
}

// List handles GET /admin/accounts.
func (h *AccountsHandler) List(c *fiber.Ctx) error {
	accounts, err := h.auth.ListAccounts(c.UserContext())
	if err != nil {
		return auth.MapFailure(err)
	}

	responses := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, dto.NewAccountResponse(&accounts[i]))
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"accounts": responses}})
}

// ChangeRole handles PUT /admin/accounts/:id/role.
func (h *AccountsHandler) ChangeRole(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.ChangeRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	role, valid := domain.ParseRole(req.Role)
	if !valid {
		return fiber.NewError(http.StatusBadRequest, "unknown role")
	}

	account, err := h.auth.ChangeRole(c.UserContext(), claims, c.Params("id"), role)
	if err != nil {
		return auth.MapFailure(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"account": dto.NewAccountResponse(account)}})
}
