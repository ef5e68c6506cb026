package dto

import "github.com/spec-kit/restaurant-service/internal/domain"

// CreateCategoryRequest payload for a new menu category.
type CreateCategoryRequest struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// CreateMenuItemRequest payload for a new menu item.
type CreateMenuItemRequest struct {
	CategoryID  string  `json:"category_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PriceCents  int64   `json:"price_cents"`
	Available   *bool   `json:"available"`
	ImageURL    *string `json:"image_url"`
}

// UpdateMenuItemRequest payload for editing a menu item.
type UpdateMenuItemRequest struct {
	CategoryID  string  `json:"category_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PriceCents  int64   `json:"price_cents"`
	Available   bool    `json:"available"`
	ImageURL    *string `json:"image_url"`
}

// MenuCategoryResponse response.
type MenuCategoryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// MenuItemResponse response.
type MenuItemResponse struct {
	ID          string  `json:"id"`
	CategoryID  string  `json:"category_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	PriceCents  int64   `json:"price_cents"`
	Available   bool    `json:"available"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// MenuCatalogResponse is the public browsing view.
type MenuCatalogResponse struct {
	Categories []MenuCategoryResponse `json:"categories"`
	Items      []MenuItemResponse     `json:"items"`
}

// NewMenuCategoryResponse maps a category onto the transport view.
func NewMenuCategoryResponse(category *domain.MenuCategory) MenuCategoryResponse {
	return MenuCategoryResponse{
		ID:       category.ID,
		Name:     category.Name,
		Position: category.Position,
	}
}

// NewMenuItemResponse maps a menu item onto the transport view.
func NewMenuItemResponse(item *domain.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          item.ID,
		CategoryID:  item.CategoryID,
		Name:        item.Name,
		Description: item.Description,
		PriceCents:  item.PriceCents,
		Available:   item.Available,
		ImageURL:    item.ImageURL,
	}
}
