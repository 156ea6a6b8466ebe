package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"quickmenu/internal/domain"
)

type CreateOrderParams struct {
	CafeID        string
	Items         []domain.OrderLine
	CustomerName  string
	TableNumber   string
	PaymentMethod string
}

// OrderService governs the order lifecycle: creation with a server-computed
// total, fulfillment status and payment status updates, and lookups.
type OrderService struct {
	orders    OrderRepository
	cafes     CafeRepository
	publisher OrderPublisher
	analytics Analytics
}

func NewOrderService(orders OrderRepository, cafes CafeRepository, publisher OrderPublisher, analytics Analytics) *OrderService {
	return &OrderService{
		orders:    orders,
		cafes:     cafes,
		publisher: publisher,
		analytics: analytics,
	}
}

// Create validates the request, computes the total from the line snapshots and
// persists the order with status=pending, paymentStatus=pending. The client
// never supplies the total. An unknown payment method falls back to cash.
func (s *OrderService) Create(ctx context.Context, params CreateOrderParams) (*domain.Order, error) {
	if params.CafeID == "" || len(params.Items) == 0 || params.CustomerName == "" || params.TableNumber == "" {
		return nil, ErrMissingFields
	}

	var total int64
	for _, line := range params.Items {
		if line.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if line.Price < 0 {
			return nil, ErrInvalidPrice
		}
		total += line.Price * int64(line.Quantity)
	}

	method := domain.PaymentMethod(params.PaymentMethod)
	if !method.Valid() {
		method = domain.PayCash
	}

	order := &domain.Order{
		ID:            uuid.NewString(),
		CafeID:        params.CafeID,
		Items:         params.Items,
		TotalAmount:   total,
		CustomerName:  params.CustomerName,
		TableNumber:   params.TableNumber,
		PaymentMethod: method,
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentPending,
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if s.analytics != nil {
		_ = s.analytics.RecordOrder(ctx, order.CafeID, order.Items)
	}
	s.publish(ctx, "order_created", order)

	return order, nil
}

// AdvanceStatus sets the fulfillment status. Only membership in the status
// enumeration is enforced; any of the five values may be requested regardless
// of the current state.
func (s *OrderService) AdvanceStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	order, err := s.orders.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "status_changed", order)
	return order, nil
}

// SetPaymentStatus tracks payment independently of fulfillment.
func (s *OrderService) SetPaymentStatus(ctx context.Context, orderID string, status domain.PaymentStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidPaymentStatus
	}
	order, err := s.orders.UpdateOrderPayment(ctx, orderID, status)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "payment_updated", order)
	return order, nil
}

// Get returns the order joined with a summary of its cafe.
func (s *OrderService) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if cafe, err := s.cafes.GetCafe(ctx, order.CafeID); err == nil {
		order.CafeName = cafe.Name
		order.CafeAddress = cafe.Address
		order.CafePhone = cafe.Phone
	}
	return order, nil
}

// ListForCafe returns a cafe's orders, newest first.
func (s *OrderService) ListForCafe(ctx context.Context, cafeID string) ([]domain.Order, error) {
	return s.orders.ListOrdersByCafe(ctx, cafeID)
}

// PopularItems reports the most ordered items for a cafe, preferring today's
// counts and falling back to the all-time ranking.
func (s *OrderService) PopularItems(ctx context.Context, cafeID string, limit int) ([]domain.PopularItem, error) {
	if s.analytics == nil {
		return nil, ErrAnalyticsDisabled
	}
	items, err := s.analytics.TopToday(ctx, cafeID, limit)
	if err != nil || len(items) == 0 {
		items, err = s.analytics.TopAllTime(ctx, cafeID, limit)
		if err != nil {
			return nil, err
		}
	}
	for i := range items {
		if item, err := s.cafes.GetMenuItem(ctx, cafeID, items[i].MenuItemID); err == nil {
			items[i].Name = item.Name
		}
	}
	return items, nil
}

// publish is fire and forget: the event stream is a downstream feed, never a
// dependency of the request path.
func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
		Type:          eventType,
		OrderID:       order.ID,
		CafeID:        order.CafeID,
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
		TotalAmount:   order.TotalAmount,
		Timestamp:     time.Now(),
	})
}

var _ OrderServiceInterface = (*OrderService)(nil)
