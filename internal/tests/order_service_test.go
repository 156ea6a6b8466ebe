package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"quickmenu/internal/domain"
	"quickmenu/internal/mocks"
	"quickmenu/internal/service"
)

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		params        service.CreateOrderParams
		wantErr       error
		wantTotal     int64
		wantMethod    domain.PaymentMethod
		expectsCreate bool
	}{
		{
			name: "computes_total_from_lines",
			params: service.CreateOrderParams{
				CafeID:        "cafe-1",
				Items:         []domain.OrderLine{{MenuItemID: "tea", Name: "Tea", Price: 50, Quantity: 3}},
				CustomerName:  "X",
				TableNumber:   "5",
				PaymentMethod: "upi",
			},
			wantTotal:     150,
			wantMethod:    domain.PayUPI,
			expectsCreate: true,
		},
		{
			name: "multiple_lines_sum_exactly",
			params: service.CreateOrderParams{
				CafeID: "cafe-1",
				Items: []domain.OrderLine{
					{MenuItemID: "tea", Name: "Tea", Price: 50, Quantity: 3},
					{MenuItemID: "cake", Name: "Chocolate Cake", Price: 180, Quantity: 2},
				},
				CustomerName: "X",
				TableNumber:  "5",
			},
			wantTotal:     510,
			wantMethod:    domain.PayCash,
			expectsCreate: true,
		},
		{
			name: "unknown_payment_method_defaults_to_cash",
			params: service.CreateOrderParams{
				CafeID:        "cafe-1",
				Items:         []domain.OrderLine{{MenuItemID: "tea", Price: 50, Quantity: 1}},
				CustomerName:  "X",
				TableNumber:   "5",
				PaymentMethod: "barter",
			},
			wantTotal:     50,
			wantMethod:    domain.PayCash,
			expectsCreate: true,
		},
		{
			name: "missing_cafe_id",
			params: service.CreateOrderParams{
				Items:        []domain.OrderLine{{MenuItemID: "tea", Price: 50, Quantity: 1}},
				CustomerName: "X",
				TableNumber:  "5",
			},
			wantErr: service.ErrMissingFields,
		},
		{
			name: "empty_lines",
			params: service.CreateOrderParams{
				CafeID:       "cafe-1",
				CustomerName: "X",
				TableNumber:  "5",
			},
			wantErr: service.ErrMissingFields,
		},
		{
			name: "missing_customer_name",
			params: service.CreateOrderParams{
				CafeID:      "cafe-1",
				Items:       []domain.OrderLine{{MenuItemID: "tea", Price: 50, Quantity: 1}},
				TableNumber: "5",
			},
			wantErr: service.ErrMissingFields,
		},
		{
			name: "zero_quantity_line",
			params: service.CreateOrderParams{
				CafeID:       "cafe-1",
				Items:        []domain.OrderLine{{MenuItemID: "tea", Price: 50, Quantity: 0}},
				CustomerName: "X",
				TableNumber:  "5",
			},
			wantErr: service.ErrInvalidQuantity,
		},
		{
			name: "negative_price_line",
			params: service.CreateOrderParams{
				CafeID:       "cafe-1",
				Items:        []domain.OrderLine{{MenuItemID: "tea", Price: -10, Quantity: 1}},
				CustomerName: "X",
				TableNumber:  "5",
			},
			wantErr: service.ErrInvalidPrice,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orderRepo := mocks.NewOrderRepository(t)
			cafeRepo := mocks.NewCafeRepository(t)
			svc := service.NewOrderService(orderRepo, cafeRepo, nil, nil)

			if testCase.expectsCreate {
				orderRepo.On("CreateOrder", ctx, mock.AnythingOfType("*domain.Order")).Return(nil).Once()
			}

			order, err := svc.Create(ctx, testCase.params)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, order.ID)
			assert.Equal(t, testCase.wantTotal, order.TotalAmount)
			assert.Equal(t, testCase.wantMethod, order.PaymentMethod)
			assert.Equal(t, domain.StatusPending, order.Status)
			assert.Equal(t, domain.PaymentPending, order.PaymentStatus)
		})
	}
}

func TestOrderService_Create_PublishesAndRecords(t *testing.T) {
	ctx := context.Background()
	orderRepo := mocks.NewOrderRepository(t)
	cafeRepo := mocks.NewCafeRepository(t)
	publisher := mocks.NewOrderPublisher(t)
	analytics := mocks.NewAnalytics(t)
	svc := service.NewOrderService(orderRepo, cafeRepo, publisher, analytics)

	lines := []domain.OrderLine{{MenuItemID: "tea", Name: "Tea", Price: 50, Quantity: 3}}
	orderRepo.On("CreateOrder", ctx, mock.AnythingOfType("*domain.Order")).Return(nil).Once()
	analytics.On("RecordOrder", ctx, "cafe-1", lines).Return(nil).Once()
	publisher.On("PublishOrderEvent", ctx, mock.MatchedBy(func(event domain.OrderEvent) bool {
		return event.Type == "order_created" && event.CafeID == "cafe-1" && event.TotalAmount == 150
	})).Return(nil).Once()

	_, err := svc.Create(ctx, service.CreateOrderParams{
		CafeID:       "cafe-1",
		Items:        lines,
		CustomerName: "X",
		TableNumber:  "5",
	})
	assert.NoError(t, err)
}

func TestOrderService_AdvanceStatus(t *testing.T) {
	ctx := context.Background()

	// every member of the status enumeration is accepted, regardless of the
	// order's current state
	for _, status := range []domain.OrderStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusPreparing,
		domain.StatusReady,
		domain.StatusCompleted,
	} {
		t.Run(string(status), func(t *testing.T) {
			orderRepo := mocks.NewOrderRepository(t)
			cafeRepo := mocks.NewCafeRepository(t)
			svc := service.NewOrderService(orderRepo, cafeRepo, nil, nil)

			updated := &domain.Order{ID: "order-1", CafeID: "cafe-1", Status: status}
			orderRepo.On("UpdateOrderStatus", ctx, "order-1", status).Return(updated, nil).Once()

			order, err := svc.AdvanceStatus(ctx, "order-1", status)
			assert.NoError(t, err)
			assert.Equal(t, status, order.Status)
		})
	}

	t.Run("rejects_unknown_status", func(t *testing.T) {
		orderRepo := mocks.NewOrderRepository(t)
		cafeRepo := mocks.NewCafeRepository(t)
		svc := service.NewOrderService(orderRepo, cafeRepo, nil, nil)

		_, err := svc.AdvanceStatus(ctx, "order-1", domain.OrderStatus("bogus"))
		assert.ErrorIs(t, err, service.ErrInvalidStatus)
	})

	t.Run("missing_order", func(t *testing.T) {
		orderRepo := mocks.NewOrderRepository(t)
		cafeRepo := mocks.NewCafeRepository(t)
		svc := service.NewOrderService(orderRepo, cafeRepo, nil, nil)

		orderRepo.On("UpdateOrderStatus", ctx, "gone", domain.StatusReady).
			Return(nil, service.ErrOrderNotFound).Once()

		_, err := svc.AdvanceStatus(ctx, "gone", domain.StatusReady)
		assert.ErrorIs(t, err, service.ErrOrderNotFound)
	})
}

func TestOrderService_SetPaymentStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts_enum_values", func(t *testing.T) {
		for _, status := range []domain.PaymentStatus{
			domain.PaymentPending,
			domain.PaymentCompleted,
			domain.PaymentFailed,
		} {
			orderRepo := mocks.NewOrderRepository(t)
			cafeRepo := mocks.NewCafeRepository(t)
			svc := service.NewOrderService(orderRepo, cafeRepo, nil, nil)

			updated := &domain.Order{ID: "order-1", PaymentStatus: status}
			orderRepo.On("UpdateOrderPayment", ctx, "order-1", status).Return(updated, nil).Once()

			order, err := svc.SetPaymentStatus(ctx, "order-1", status)
			assert.NoError(t, err)
			assert.Equal(t, status, order.PaymentStatus)
		}
	})

	t.Run("rejects_unknown_value", func(t *testing.T) {
		orderRepo := mocks.NewOrderRepository(t)
		cafeRepo := mocks.NewCafeRepository(t)
		svc := service.NewOrderService(orderRepo, cafeRepo, nil, nil)

		_, err := svc.SetPaymentStatus(ctx, "order-1", domain.PaymentStatus("refunded"))
		assert.ErrorIs(t, err, service.ErrInvalidPaymentStatus)
	})
}

func TestOrderService_Get_JoinsCafeSummary(t *testing.T) {
	ctx := context.Background()
	orderRepo := mocks.NewOrderRepository(t)
	cafeRepo := mocks.NewCafeRepository(t)
	svc := service.NewOrderService(orderRepo, cafeRepo, nil, nil)

	orderRepo.On("GetOrder", ctx, "order-1").
		Return(&domain.Order{ID: "order-1", CafeID: "cafe-1"}, nil).Once()
	cafeRepo.On("GetCafe", ctx, "cafe-1").
		Return(&domain.Cafe{ID: "cafe-1", Name: "Sample", Address: "123 Main St", Phone: "555"}, nil).Once()

	order, err := svc.Get(ctx, "order-1")
	assert.NoError(t, err)
	assert.Equal(t, "Sample", order.CafeName)
	assert.Equal(t, "123 Main St", order.CafeAddress)
	assert.Equal(t, "555", order.CafePhone)
}

func TestOrderService_ListForCafe(t *testing.T) {
	ctx := context.Background()
	orderRepo := mocks.NewOrderRepository(t)
	cafeRepo := mocks.NewCafeRepository(t)
	svc := service.NewOrderService(orderRepo, cafeRepo, nil, nil)

	now := time.Now()
	expected := []domain.Order{
		{ID: "order-2", CafeID: "cafe-1", CreatedAt: now},
		{ID: "order-1", CafeID: "cafe-1", CreatedAt: now.Add(-time.Minute)},
	}
	orderRepo.On("ListOrdersByCafe", ctx, "cafe-1").Return(expected, nil).Once()

	orders, err := svc.ListForCafe(ctx, "cafe-1")
	assert.NoError(t, err)
	assert.Equal(t, expected, orders)
}

func TestOrderService_PopularItems(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled_without_analytics", func(t *testing.T) {
		orderRepo := mocks.NewOrderRepository(t)
		cafeRepo := mocks.NewCafeRepository(t)
		svc := service.NewOrderService(orderRepo, cafeRepo, nil, nil)

		_, err := svc.PopularItems(ctx, "cafe-1", 5)
		assert.ErrorIs(t, err, service.ErrAnalyticsDisabled)
	})

	t.Run("falls_back_to_all_time_and_resolves_names", func(t *testing.T) {
		orderRepo := mocks.NewOrderRepository(t)
		cafeRepo := mocks.NewCafeRepository(t)
		analytics := mocks.NewAnalytics(t)
		svc := service.NewOrderService(orderRepo, cafeRepo, nil, analytics)

		analytics.On("TopToday", ctx, "cafe-1", 5).Return([]domain.PopularItem{}, nil).Once()
		analytics.On("TopAllTime", ctx, "cafe-1", 5).
			Return([]domain.PopularItem{{MenuItemID: "tea", Count: 12}}, nil).Once()
		cafeRepo.On("GetMenuItem", ctx, "cafe-1", "tea").
			Return(&domain.MenuItem{ID: "tea", Name: "Tea"}, nil).Once()

		items, err := svc.PopularItems(ctx, "cafe-1", 5)
		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, "Tea", items[0].Name)
		assert.Equal(t, int64(12), items[0].Count)
	})
}
