package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/repository"
)

type fakeMenuRepo struct {
	items map[string]domain.MenuItem
}

func (f *fakeMenuRepo) ListCategories(context.Context) ([]domain.MenuCategory, error) { return nil, nil }

func (f *fakeMenuRepo) ListItems(context.Context) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	for _, item := range f.items {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeMenuRepo) GetItemByID(_ context.Context, id string) (*domain.MenuItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &item, nil
}

func (f *fakeMenuRepo) ListItemsByIDs(_ context.Context, ids []string) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	for _, id := range ids {
		if item, ok := f.items[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeMenuRepo) CreateCategory(context.Context, *domain.MenuCategory) error { return nil }
func (f *fakeMenuRepo) CreateItem(context.Context, *domain.MenuItem) error         { return nil }
func (f *fakeMenuRepo) UpdateItem(context.Context, *domain.MenuItem) error         { return nil }
func (f *fakeMenuRepo) DeleteItem(context.Context, string) error                   { return nil }

type fakeOrderRepo struct {
	orders map[string]*domain.Order
	nextID int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*domain.Order)}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *domain.Order) error {
	f.nextID++
	order.ID = fmt.Sprintf("ord-%d", f.nextID)
	order.CreatedAt = time.Now()
	copied := *order
	f.orders[order.ID] = &copied
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *order
	return &copied, nil
}

func (f *fakeOrderRepo) ListByAccount(_ context.Context, accountID string, _, _ int) ([]domain.Order, error) {
	var out []domain.Order
	for _, order := range f.orders {
		if order.AccountID == accountID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListByStatus(_ context.Context, status domain.OrderStatus, _, _ int) ([]domain.Order, error) {
	var out []domain.Order
	for _, order := range f.orders {
		if order.Status == status {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) error {
	order, ok := f.orders[id]
	if !ok {
		return pgx.ErrNoRows
	}
	order.Status = status
	return nil
}

func (f *fakeOrderRepo) DailySummary(context.Context, time.Time, time.Time) ([]repository.DailyOrderSummary, error) {
	return nil, nil
}

func testOrderService() (*OrderService, *fakeOrderRepo) {
	menu := &fakeMenuRepo{items: map[string]domain.MenuItem{
		"item-burger": {ID: "item-burger", Name: "Burger", PriceCents: 900, Available: true},
		"item-fries":  {ID: "item-fries", Name: "Fries", PriceCents: 350, Available: true},
		"item-soup":   {ID: "item-soup", Name: "Soup of the Day", PriceCents: 500, Available: false},
	}}
	orders := newFakeOrderRepo()
	svc := NewOrderService(OrderDependencies{
		OrderRepo: orders,
		MenuRepo:  menu,
	})
	return svc, orders
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("prices are taken from the menu", func(t *testing.T) {
		svc, _ := testOrderService()

		order, err := svc.Place(ctx, "acc-1", domain.OrderTypePickup, nil, []OrderLine{
			{MenuItemID: "item-burger", Quantity: 2},
			{MenuItemID: "item-fries", Quantity: 1},
		})
		require.NoError(t, err)
		require.Equal(t, domain.OrderStatusPlaced, order.Status)
		require.Equal(t, int64(2*900+350), order.TotalCents)
		require.Len(t, order.Items, 2)
		require.Equal(t, int64(900), order.Items[0].UnitPriceCents)
	})

	t.Run("empty order", func(t *testing.T) {
		svc, _ := testOrderService()
		_, err := svc.Place(ctx, "acc-1", domain.OrderTypePickup, nil, nil)
		require.Error(t, err)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		svc, _ := testOrderService()
		_, err := svc.Place(ctx, "acc-1", domain.OrderTypePickup, nil, []OrderLine{
			{MenuItemID: "item-burger", Quantity: 0},
		})
		require.Error(t, err)
	})

	t.Run("unknown menu item", func(t *testing.T) {
		svc, _ := testOrderService()
		_, err := svc.Place(ctx, "acc-1", domain.OrderTypePickup, nil, []OrderLine{
			{MenuItemID: "item-missing", Quantity: 1},
		})
		require.Error(t, err)
	})

	t.Run("unavailable menu item", func(t *testing.T) {
		svc, _ := testOrderService()
		_, err := svc.Place(ctx, "acc-1", domain.OrderTypePickup, nil, []OrderLine{
			{MenuItemID: "item-soup", Quantity: 1},
		})
		require.Error(t, err)
	})

	t.Run("delivery requires an address", func(t *testing.T) {
		svc, _ := testOrderService()
		_, err := svc.Place(ctx, "acc-1", domain.OrderTypeDelivery, nil, []OrderLine{
			{MenuItemID: "item-burger", Quantity: 1},
		})
		require.Error(t, err)

		address := "12 Main St"
		order, err := svc.Place(ctx, "acc-1", domain.OrderTypeDelivery, &address, []OrderLine{
			{MenuItemID: "item-burger", Quantity: 1},
		})
		require.NoError(t, err)
		require.Equal(t, &address, order.DeliveryAddress)
	})
}

func TestGetOwnOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := testOrderService()

	order, err := svc.Place(ctx, "acc-1", domain.OrderTypePickup, nil, []OrderLine{
		{MenuItemID: "item-fries", Quantity: 1},
	})
	require.NoError(t, err)

	got, err := svc.GetOwn(ctx, "acc-1", order.ID)
	require.NoError(t, err)
	require.Equal(t, order.ID, got.ID)

	// Another customer's order looks like it does not exist.
	_, err = svc.GetOwn(ctx, "acc-2", order.ID)
	require.Error(t, err)
}

func TestUpdateOrderStatus(t *testing.T) {
	ctx := context.Background()

	place := func(t *testing.T, svc *OrderService) *domain.Order {
		t.Helper()
		order, err := svc.Place(ctx, "acc-1", domain.OrderTypePickup, nil, []OrderLine{
			{MenuItemID: "item-burger", Quantity: 1},
		})
		require.NoError(t, err)
		return order
	}

	t.Run("full lifecycle", func(t *testing.T) {
		svc, _ := testOrderService()
		order := place(t, svc)

		for _, next := range []domain.OrderStatus{
			domain.OrderStatusPreparing,
			domain.OrderStatusReady,
			domain.OrderStatusCompleted,
		} {
			updated, err := svc.UpdateStatus(ctx, "staff-1", order.ID, next, "")
			require.NoError(t, err)
			require.Equal(t, next, updated.Status)
		}
	})

	t.Run("illegal transitions", func(t *testing.T) {
		svc, _ := testOrderService()
		order := place(t, svc)

		_, err := svc.UpdateStatus(ctx, "staff-1", order.ID, domain.OrderStatusReady, "")
		require.Error(t, err)
		_, err = svc.UpdateStatus(ctx, "staff-1", order.ID, domain.OrderStatusCompleted, "")
		require.Error(t, err)
	})

	t.Run("terminal states are frozen", func(t *testing.T) {
		svc, _ := testOrderService()
		order := place(t, svc)

		_, err := svc.UpdateStatus(ctx, "staff-1", order.ID, domain.OrderStatusCancelled, "out of stock")
		require.NoError(t, err)

		_, err = svc.UpdateStatus(ctx, "staff-1", order.ID, domain.OrderStatusPreparing, "")
		require.Error(t, err)
	})
}

func TestDailySummaryRange(t *testing.T) {
	ctx := context.Background()
	svc, _ := testOrderService()

	_, err := svc.DailySummary(ctx, time.Time{}, time.Time{})
	require.NoError(t, err)

	now := time.Now()
	_, err = svc.DailySummary(ctx, now, now.AddDate(0, 0, -1))
	require.Error(t, err)
}
