package dto

import (
	"time"

	"github.com/spec-kit/restaurant-service/internal/domain"
)

// AccountResponse is the public view of an account; the password hash never
// leaves the service.
type AccountResponse struct {
	ID          string               `json:"id"`
	Username    string               `json:"username"`
	Email       string               `json:"email"`
	DisplayName string               `json:"display_name"`
	Phone       string               `json:"phone,omitempty"`
	Role        domain.Role          `json:"role"`
	Status      domain.AccountStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
}

// NewAccountResponse maps a domain account onto the transport view.
func NewAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		ID:          account.ID,
		Username:    account.Username,
		Email:       account.Email,
		DisplayName: account.DisplayName,
		Phone:       account.Phone,
		Role:        account.Role,
		Status:      account.Status,
		CreatedAt:   account.CreatedAt,
	}
}

// ChangeRoleRequest payload for the admin role-change endpoint.
type ChangeRoleRequest struct {
	Role string `json:"role"`
}
