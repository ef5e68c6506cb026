package domain

import "time"

// AccountStatus represents lifecycle states for an account.
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "ACTIVE"
	AccountStatusSuspended AccountStatus = "SUSPENDED"
)

// Account is the domain model for every platform user, customers and
// back-office staff alike. Accounts are never hard-deleted.
type Account struct {
	ID           string
	Username     string
	Email        string
	DisplayName  string
	Phone        string
	PasswordHash string
	Role         Role
	Status       AccountStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
