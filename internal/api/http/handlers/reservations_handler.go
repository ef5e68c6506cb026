package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-service/internal/api/dto"
	"github.com/spec-kit/restaurant-service/internal/auth"
	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/service"
)

// ReservationsHandler exposes customer booking and staff floor management.
type ReservationsHandler struct {
	reservations *service.ReservationService
}

// NewReservationsHandler constructs handler.
func NewReservationsHandler(reservationService *service.ReservationService) *ReservationsHandler {
	return &ReservationsHandler{reservations: reservationService}
}

// Create handles POST /reservations.
func (h *ReservationsHandler) Create(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.CreateReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	reservation, err := h.reservations.Create(c.UserContext(), claims.SubjectID, req.PartySize, req.ReservedFor, req.Notes)
	if err != nil {
		return auth.MapFailure(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"reservation": dto.NewReservationResponse(reservation)}})
}

// ListOwn handles GET /reservations.
func (h *ReservationsHandler) ListOwn(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	reservations, err := h.reservations.ListOwn(c.UserContext(), claims.SubjectID)
	if err != nil {
		return auth.MapFailure(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"reservations": reservationResponses(reservations)}})
}

// Cancel handles POST /reservations/:id/cancel.
func (h *ReservationsHandler) Cancel(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	reservation, err := h.reservations.CancelOwn(c.UserContext(), claims.SubjectID, c.Params("id"))
	if err != nil {
		return auth.MapFailure(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"reservation": dto.NewReservationResponse(reservation)}})
}

// ListForDay handles GET /staff/reservations?date=YYYY-MM-DD.
func (h *ReservationsHandler) ListForDay(c *fiber.Ctx) error {
	day := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		day = parsed
	}

	reservations, err := h.reservations.ListForDay(c.UserContext(), day)
	if err != nil {
		return auth.MapFailure(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"reservations": reservationResponses(reservations)}})
}

// UpdateStatus handles PUT /staff/reservations/:id/status.
func (h *ReservationsHandler) UpdateStatus(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.UpdateReservationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	status := domain.ReservationStatus(req.Status)
	switch status {
	case domain.ReservationStatusConfirmed, domain.ReservationStatusCancelled, domain.ReservationStatusCompleted:
	default:
		return fiber.NewError(http.StatusBadRequest, "unknown reservation status")
	}

	reservation, err := h.reservations.UpdateStatus(c.UserContext(), claims.SubjectID, c.Params("id"), status)
	if err != nil {
		return auth.MapFailure(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"reservation": dto.NewReservationResponse(reservation)}})
}

func reservationResponses(reservations []domain.Reservation) []dto.ReservationResponse {
	responses := make([]dto.ReservationResponse, 0, len(reservations))
	for i := range reservations {
		responses = append(responses, dto.NewReservationResponse(&reservations[i]))
	}
	return responses
}
