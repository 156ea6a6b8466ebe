package service

import (
	"context"

	"quickmenu/internal/domain"
)

type CafeRepository interface {
	CreateCafe(ctx context.Context, cafe *domain.Cafe) error
	GetCafe(ctx context.Context, id string) (*domain.Cafe, error)
	ListCafes(ctx context.Context) ([]domain.Cafe, error)
	UpdateCafe(ctx context.Context, cafe *domain.Cafe) error
	SetCafeActive(ctx context.Context, id string, active bool) error
	ListMenu(ctx context.Context, cafeID string) ([]domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	GetMenuItem(ctx context.Context, cafeID, itemID string) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error
	DeleteMenuItem(ctx context.Context, cafeID, itemID string) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrdersByCafe(ctx context.Context, cafeID string) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	UpdateOrderPayment(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Order, error)
}

type CartStore interface {
	GetCart(ctx context.Context, cafeID, sessionID string) (*domain.Cart, error)
	SaveCart(ctx context.Context, sessionID string, cart *domain.Cart) error
	DeleteCart(ctx context.Context, cafeID, sessionID string) error
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type Analytics interface {
	RecordOrder(ctx context.Context, cafeID string, lines []domain.OrderLine) error
	TopToday(ctx context.Context, cafeID string, limit int) ([]domain.PopularItem, error)
	TopAllTime(ctx context.Context, cafeID string, limit int) ([]domain.PopularItem, error)
}

type CafeServiceInterface interface {
	Create(ctx context.Context, cafe *domain.Cafe) error
	Get(ctx context.Context, id string) (*domain.Cafe, error)
	List(ctx context.Context) ([]domain.Cafe, error)
	Update(ctx context.Context, cafe *domain.Cafe) error
	Deactivate(ctx context.Context, id string) error
	Menu(ctx context.Context, cafeID string) ([]domain.MenuItem, error)
	AddMenuItem(ctx context.Context, item *domain.MenuItem) error
	GetMenuItem(ctx context.Context, cafeID, itemID string) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error
	RemoveMenuItem(ctx context.Context, cafeID, itemID string) error
}

type OrderServiceInterface interface {
	Create(ctx context.Context, params CreateOrderParams) (*domain.Order, error)
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	ListForCafe(ctx context.Context, cafeID string) ([]domain.Order, error)
	AdvanceStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error)
	SetPaymentStatus(ctx context.Context, orderID string, status domain.PaymentStatus) (*domain.Order, error)
	PopularItems(ctx context.Context, cafeID string, limit int) ([]domain.PopularItem, error)
}

type CartServiceInterface interface {
	Get(ctx context.Context, cafeID, sessionID string) (*domain.Cart, error)
	Add(ctx context.Context, cafeID, sessionID, menuItemID string) (*domain.Cart, error)
	ChangeQuantity(ctx context.Context, cafeID, sessionID, menuItemID string, delta int) (*domain.Cart, error)
	Clear(ctx context.Context, cafeID, sessionID string) error
	Checkout(ctx context.Context, params CheckoutParams) (*domain.Order, error)
}

type QRGenerator interface {
	Generate(cafeID, baseURL string) (*domain.MenuQR, error)
}
