package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/repository"
)

const menuCacheKey = "menu:catalog"

// MenuCatalog is the public browsing view: every category with every item.
type MenuCatalog struct {
	Categories []domain.MenuCategory `json:"categories"`
	Items      []domain.MenuItem     `json:"items"`
}

// MenuService serves the public catalog through a read-through Redis cache
// and exposes the back-office mutations that invalidate it.
type MenuService struct {
	repo   repository.MenuRepository
	cache  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewMenuService builds the service. A nil cache client disables caching.
func NewMenuService(repo repository.MenuRepository, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *MenuService {
	return &MenuService{repo: repo, cache: cache, ttl: ttl, logger: logger}
}

// Catalog returns the full menu, from cache when possible. Cache failures
// degrade to a direct read; they are logged, never surfaced.
func (s *MenuService) Catalog(ctx context.Context) (*MenuCatalog, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, menuCacheKey).Bytes()
		if err == nil {
			var catalog MenuCatalog
			if err := json.Unmarshal(raw, &catalog); err == nil {
				return &catalog, nil
			}
		}
	}

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	catalog := &MenuCatalog{Categories: categories, Items: items}
	if s.cache != nil {
		if raw, err := json.Marshal(catalog); err == nil {
			if err := s.cache.Set(ctx, menuCacheKey, raw, s.ttl).Err(); err != nil {
				s.logger.Warn("menu cache write failed", zap.Error(err))
			}
		}
	}
	return catalog, nil
}

// CreateCategory adds a category and invalidates the catalog cache.
func (s *MenuService) CreateCategory(ctx context.Context, category *domain.MenuCategory) error {
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// CreateItem adds an item and invalidates the catalog cache.
func (s *MenuService) CreateItem(ctx context.Context, item *domain.MenuItem) error {
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// UpdateItem updates an item and invalidates the catalog cache.
func (s *MenuService) UpdateItem(ctx context.Context, item *domain.MenuItem) error {
	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// DeleteItem removes an item and invalidates the catalog cache.
func (s *MenuService) DeleteItem(ctx context.Context, id string) error {
	if err := s.repo.DeleteItem(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *MenuService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, menuCacheKey).Err(); err != nil {
		s.logger.Warn("menu cache invalidation failed", zap.Error(err))
	}
}
