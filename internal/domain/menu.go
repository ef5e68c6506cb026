package domain

import "time"

// MenuCategory groups menu items for display ordering.
type MenuCategory struct {
	ID        string
	Name      string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MenuItem is a single orderable dish or drink. Prices are stored in cents.
type MenuItem struct {
	ID          string
	CategoryID  string
	Name        string
	Description string
	PriceCents  int64
	Available   bool
	ImageURL    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
