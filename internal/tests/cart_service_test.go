package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"quickmenu/internal/domain"
	"quickmenu/internal/mocks"
	"quickmenu/internal/service"
)

func TestCartService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshots_catalog_price_into_new_line", func(t *testing.T) {
		store := mocks.NewCartStore(t)
		catalog := mocks.NewCafeRepository(t)
		orders := mocks.NewOrderServiceInterface(t)
		svc := service.NewCartService(store, catalog, orders)

		catalog.On("GetMenuItem", ctx, "cafe-1", "tea").
			Return(&domain.MenuItem{ID: "tea", Name: "Tea", Price: 50, Available: true}, nil).Once()
		store.On("GetCart", ctx, "cafe-1", "sess-1").
			Return(&domain.Cart{CafeID: "cafe-1"}, nil).Once()

		var saved *domain.Cart
		store.On("SaveCart", ctx, "sess-1", mock.AnythingOfType("*domain.Cart")).
			Run(func(args mock.Arguments) { saved = args.Get(2).(*domain.Cart) }).
			Return(nil).Once()

		cart, err := svc.Add(ctx, "cafe-1", "sess-1", "tea")
		assert.NoError(t, err)
		assert.Len(t, cart.Lines, 1)
		assert.Equal(t, int64(50), cart.Lines[0].Price)
		assert.Equal(t, 1, cart.Lines[0].Quantity)
		assert.Equal(t, cart, saved)
	})

	t.Run("increments_existing_line", func(t *testing.T) {
		store := mocks.NewCartStore(t)
		catalog := mocks.NewCafeRepository(t)
		orders := mocks.NewOrderServiceInterface(t)
		svc := service.NewCartService(store, catalog, orders)

		catalog.On("GetMenuItem", ctx, "cafe-1", "tea").
			Return(&domain.MenuItem{ID: "tea", Name: "Tea", Price: 50, Available: true}, nil).Once()
		store.On("GetCart", ctx, "cafe-1", "sess-1").
			Return(&domain.Cart{CafeID: "cafe-1", Lines: []domain.CartLine{
				{MenuItemID: "tea", Name: "Tea", Price: 50, Quantity: 1},
			}}, nil).Once()
		store.On("SaveCart", ctx, "sess-1", mock.AnythingOfType("*domain.Cart")).Return(nil).Once()

		cart, err := svc.Add(ctx, "cafe-1", "sess-1", "tea")
		assert.NoError(t, err)
		assert.Len(t, cart.Lines, 1)
		assert.Equal(t, 2, cart.Lines[0].Quantity)
		assert.Equal(t, int64(100), cart.Total())
	})

	t.Run("rejects_unavailable_item", func(t *testing.T) {
		store := mocks.NewCartStore(t)
		catalog := mocks.NewCafeRepository(t)
		orders := mocks.NewOrderServiceInterface(t)
		svc := service.NewCartService(store, catalog, orders)

		catalog.On("GetMenuItem", ctx, "cafe-1", "soup").
			Return(&domain.MenuItem{ID: "soup", Name: "Soup", Price: 90, Available: false}, nil).Once()

		_, err := svc.Add(ctx, "cafe-1", "sess-1", "soup")
		assert.ErrorIs(t, err, service.ErrItemUnavailable)
	})

	t.Run("propagates_missing_item", func(t *testing.T) {
		store := mocks.NewCartStore(t)
		catalog := mocks.NewCafeRepository(t)
		orders := mocks.NewOrderServiceInterface(t)
		svc := service.NewCartService(store, catalog, orders)

		catalog.On("GetMenuItem", ctx, "cafe-1", "gone").
			Return(nil, service.ErrMenuItemNotFound).Once()

		_, err := svc.Add(ctx, "cafe-1", "sess-1", "gone")
		assert.ErrorIs(t, err, service.ErrMenuItemNotFound)
	})
}

func TestCartService_ChangeQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("removes_line_at_zero", func(t *testing.T) {
		store := mocks.NewCartStore(t)
		catalog := mocks.NewCafeRepository(t)
		orders := mocks.NewOrderServiceInterface(t)
		svc := service.NewCartService(store, catalog, orders)

		store.On("GetCart", ctx, "cafe-1", "sess-1").
			Return(&domain.Cart{CafeID: "cafe-1", Lines: []domain.CartLine{
				{MenuItemID: "tea", Name: "Tea", Price: 50, Quantity: 1},
			}}, nil).Once()
		store.On("SaveCart", ctx, "sess-1", mock.AnythingOfType("*domain.Cart")).Return(nil).Once()

		cart, err := svc.ChangeQuantity(ctx, "cafe-1", "sess-1", "tea", -2)
		assert.NoError(t, err)
		assert.True(t, cart.Empty())
	})

	t.Run("missing_line_is_noop", func(t *testing.T) {
		store := mocks.NewCartStore(t)
		catalog := mocks.NewCafeRepository(t)
		orders := mocks.NewOrderServiceInterface(t)
		svc := service.NewCartService(store, catalog, orders)

		store.On("GetCart", ctx, "cafe-1", "sess-1").
			Return(&domain.Cart{CafeID: "cafe-1"}, nil).Once()
		store.On("SaveCart", ctx, "sess-1", mock.AnythingOfType("*domain.Cart")).Return(nil).Once()

		cart, err := svc.ChangeQuantity(ctx, "cafe-1", "sess-1", "tea", -1)
		assert.NoError(t, err)
		assert.True(t, cart.Empty())
	})
}

func TestCartService_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("places_order_and_clears_cart", func(t *testing.T) {
		store := mocks.NewCartStore(t)
		catalog := mocks.NewCafeRepository(t)
		orders := mocks.NewOrderServiceInterface(t)
		svc := service.NewCartService(store, catalog, orders)

		store.On("GetCart", ctx, "cafe-1", "sess-1").
			Return(&domain.Cart{CafeID: "cafe-1", Lines: []domain.CartLine{
				{MenuItemID: "tea", Name: "Tea", Price: 50, Quantity: 3},
			}}, nil).Once()
		orders.On("Create", ctx, service.CreateOrderParams{
			CafeID:        "cafe-1",
			Items:         []domain.OrderLine{{MenuItemID: "tea", Name: "Tea", Price: 50, Quantity: 3}},
			CustomerName:  "X",
			TableNumber:   "5",
			PaymentMethod: "cash",
		}).Return(&domain.Order{ID: "order-1", TotalAmount: 150}, nil).Once()
		store.On("DeleteCart", ctx, "cafe-1", "sess-1").Return(nil).Once()

		order, err := svc.Checkout(ctx, service.CheckoutParams{
			CafeID:        "cafe-1",
			SessionID:     "sess-1",
			CustomerName:  "X",
			TableNumber:   "5",
			PaymentMethod: "cash",
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(150), order.TotalAmount)
	})

	t.Run("empty_cart", func(t *testing.T) {
		store := mocks.NewCartStore(t)
		catalog := mocks.NewCafeRepository(t)
		orders := mocks.NewOrderServiceInterface(t)
		svc := service.NewCartService(store, catalog, orders)

		store.On("GetCart", ctx, "cafe-1", "sess-1").
			Return(&domain.Cart{CafeID: "cafe-1"}, nil).Once()

		_, err := svc.Checkout(ctx, service.CheckoutParams{CafeID: "cafe-1", SessionID: "sess-1"})
		assert.ErrorIs(t, err, service.ErrCartEmpty)
	})

	t.Run("succeeds_when_cart_cleanup_fails", func(t *testing.T) {
		store := mocks.NewCartStore(t)
		catalog := mocks.NewCafeRepository(t)
		orders := mocks.NewOrderServiceInterface(t)
		svc := service.NewCartService(store, catalog, orders)

		store.On("GetCart", ctx, "cafe-1", "sess-1").
			Return(&domain.Cart{CafeID: "cafe-1", Lines: []domain.CartLine{
				{MenuItemID: "tea", Name: "Tea", Price: 50, Quantity: 3},
			}}, nil).Once()
		orders.On("Create", ctx, mock.AnythingOfType("service.CreateOrderParams")).
			Return(&domain.Order{ID: "order-1", TotalAmount: 150}, nil).Once()
		store.On("DeleteCart", ctx, "cafe-1", "sess-1").
			Return(errors.New("connection reset")).Once()

		order, err := svc.Checkout(ctx, service.CheckoutParams{CafeID: "cafe-1", SessionID: "sess-1"})
		assert.NoError(t, err)
		assert.Equal(t, "order-1", order.ID)
	})

	t.Run("cart_kept_when_order_rejected", func(t *testing.T) {
		store := mocks.NewCartStore(t)
		catalog := mocks.NewCafeRepository(t)
		orders := mocks.NewOrderServiceInterface(t)
		svc := service.NewCartService(store, catalog, orders)

		store.On("GetCart", ctx, "cafe-1", "sess-1").
			Return(&domain.Cart{CafeID: "cafe-1", Lines: []domain.CartLine{
				{MenuItemID: "tea", Name: "Tea", Price: 50, Quantity: 1},
			}}, nil).Once()
		orders.On("Create", ctx, mock.AnythingOfType("service.CreateOrderParams")).
			Return(nil, service.ErrMissingFields).Once()

		_, err := svc.Checkout(ctx, service.CheckoutParams{CafeID: "cafe-1", SessionID: "sess-1"})
		assert.ErrorIs(t, err, service.ErrMissingFields)
		store.AssertNotCalled(t, "DeleteCart", ctx, "cafe-1", "sess-1")
	})
}
