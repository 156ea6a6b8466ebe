package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"quickmenu/internal/domain"
	"quickmenu/internal/logger"
)

type CheckoutParams struct {
	CafeID        string
	SessionID     string
	CustomerName  string
	TableNumber   string
	PaymentMethod string
}

// CartService keeps per-session carts in the cart store, one cart per cafe.
// A cart is created on first add and cleared on successful checkout.
type CartService struct {
	store   CartStore
	catalog CafeRepository
	orders  OrderServiceInterface
}

func NewCartService(store CartStore, catalog CafeRepository, orders OrderServiceInterface) *CartService {
	return &CartService{store: store, catalog: catalog, orders: orders}
}

func (s *CartService) Get(ctx context.Context, cafeID, sessionID string) (*domain.Cart, error) {
	return s.store.GetCart(ctx, cafeID, sessionID)
}

// Add looks up the authoritative item in the menu catalog and snapshots its
// name and price into the cart line.
func (s *CartService) Add(ctx context.Context, cafeID, sessionID, menuItemID string) (*domain.Cart, error) {
	item, err := s.catalog.GetMenuItem(ctx, cafeID, menuItemID)
	if err != nil {
		return nil, err
	}
	if !item.Available {
		return nil, ErrItemUnavailable
	}

	cart, err := s.store.GetCart(ctx, cafeID, sessionID)
	if err != nil {
		return nil, err
	}
	cart.AddLine(*item)
	if err := s.store.SaveCart(ctx, sessionID, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) ChangeQuantity(ctx context.Context, cafeID, sessionID, menuItemID string, delta int) (*domain.Cart, error) {
	cart, err := s.store.GetCart(ctx, cafeID, sessionID)
	if err != nil {
		return nil, err
	}
	cart.ChangeQuantity(menuItemID, delta)
	if err := s.store.SaveCart(ctx, sessionID, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) Clear(ctx context.Context, cafeID, sessionID string) error {
	return s.store.DeleteCart(ctx, cafeID, sessionID)
}

// Checkout places an order from the cart contents. The cart is cleared only
// after the order was created.
func (s *CartService) Checkout(ctx context.Context, params CheckoutParams) (*domain.Order, error) {
	cart, err := s.store.GetCart(ctx, params.CafeID, params.SessionID)
	if err != nil {
		return nil, err
	}
	if cart.Empty() {
		return nil, ErrCartEmpty
	}

	lines := make([]domain.OrderLine, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, domain.OrderLine{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Price:      line.Price,
			Quantity:   line.Quantity,
		})
	}

	order, err := s.orders.Create(ctx, CreateOrderParams{
		CafeID:        params.CafeID,
		Items:         lines,
		CustomerName:  params.CustomerName,
		TableNumber:   params.TableNumber,
		PaymentMethod: params.PaymentMethod,
	})
	if err != nil {
		return nil, err
	}

	// The order is already placed; a lingering cart must not fail the
	// checkout, but it can produce a duplicate order if resubmitted.
	if err := s.store.DeleteCart(ctx, params.CafeID, params.SessionID); err != nil {
		logger.L().Warn("cart not cleared after checkout",
			zap.String("cafeId", params.CafeID),
			zap.String("orderId", order.ID),
			zap.Error(err))
	}
	return order, nil
}

var _ CartServiceInterface = (*CartService)(nil)
