package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"quickmenu/internal/domain"
	"quickmenu/internal/service"
)

// MemoryRepository is the in-memory counterpart of PostgresRepository. It
// backs local development and is the fallback dataset when the database is
// unreachable at startup.
type MemoryRepository struct {
	mu     sync.RWMutex
	cafes  map[string]*domain.Cafe
	orders map[string]*domain.Order
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		cafes:  make(map[string]*domain.Cafe),
		orders: make(map[string]*domain.Order),
	}
}

func (r *MemoryRepository) CreateCafe(_ context.Context, cafe *domain.Cafe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	cafe.CreatedAt = now
	cafe.UpdatedAt = now
	stored := *cafe
	stored.Menu = append([]domain.MenuItem{}, cafe.Menu...)
	r.cafes[cafe.ID] = &stored
	return nil
}

func (r *MemoryRepository) GetCafe(_ context.Context, id string) (*domain.Cafe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cafe, ok := r.cafes[id]
	if !ok {
		return nil, service.ErrCafeNotFound
	}
	out := *cafe
	out.Menu = append([]domain.MenuItem{}, cafe.Menu...)
	return &out, nil
}

func (r *MemoryRepository) ListCafes(_ context.Context) ([]domain.Cafe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cafes := []domain.Cafe{}
	for _, cafe := range r.cafes {
		if !cafe.IsActive {
			continue
		}
		out := *cafe
		out.Menu = nil
		cafes = append(cafes, out)
	}
	sort.Slice(cafes, func(i, j int) bool {
		return cafes[i].CreatedAt.After(cafes[j].CreatedAt)
	})
	return cafes, nil
}

func (r *MemoryRepository) UpdateCafe(_ context.Context, cafe *domain.Cafe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.cafes[cafe.ID]
	if !ok {
		return service.ErrCafeNotFound
	}
	stored.Name = cafe.Name
	stored.OwnerEmail = cafe.OwnerEmail
	stored.Address = cafe.Address
	stored.Phone = cafe.Phone
	stored.UpdatedAt = time.Now()
	cafe.CreatedAt = stored.CreatedAt
	cafe.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *MemoryRepository) SetCafeActive(_ context.Context, id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cafe, ok := r.cafes[id]
	if !ok {
		return service.ErrCafeNotFound
	}
	cafe.IsActive = active
	cafe.UpdatedAt = time.Now()
	return nil
}

func (r *MemoryRepository) ListMenu(_ context.Context, cafeID string) ([]domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cafe, ok := r.cafes[cafeID]
	if !ok {
		return nil, service.ErrCafeNotFound
	}
	return append([]domain.MenuItem{}, cafe.Menu...), nil
}

func (r *MemoryRepository) CreateMenuItem(_ context.Context, item *domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cafe, ok := r.cafes[item.CafeID]
	if !ok {
		return service.ErrCafeNotFound
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	cafe.Menu = append(cafe.Menu, *item)
	return nil
}

func (r *MemoryRepository) GetMenuItem(_ context.Context, cafeID, itemID string) (*domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cafe, ok := r.cafes[cafeID]
	if !ok {
		return nil, service.ErrCafeNotFound
	}
	for _, item := range cafe.Menu {
		if item.ID == itemID {
			out := item
			return &out, nil
		}
	}
	return nil, service.ErrMenuItemNotFound
}

func (r *MemoryRepository) UpdateMenuItem(_ context.Context, item *domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cafe, ok := r.cafes[item.CafeID]
	if !ok {
		return service.ErrCafeNotFound
	}
	for i := range cafe.Menu {
		if cafe.Menu[i].ID == item.ID {
			item.CreatedAt = cafe.Menu[i].CreatedAt
			item.UpdatedAt = time.Now()
			cafe.Menu[i] = *item
			return nil
		}
	}
	return service.ErrMenuItemNotFound
}

func (r *MemoryRepository) DeleteMenuItem(_ context.Context, cafeID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cafe, ok := r.cafes[cafeID]
	if !ok {
		return service.ErrCafeNotFound
	}
	for i := range cafe.Menu {
		if cafe.Menu[i].ID == itemID {
			cafe.Menu = append(cafe.Menu[:i], cafe.Menu[i+1:]...)
			return nil
		}
	}
	return service.ErrMenuItemNotFound
}

func (r *MemoryRepository) CreateOrder(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	order.UpdatedAt = order.CreatedAt
	stored := *order
	stored.Items = append([]domain.OrderLine{}, order.Items...)
	r.orders[order.ID] = &stored
	return nil
}

func (r *MemoryRepository) GetOrder(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, service.ErrOrderNotFound
	}
	out := *order
	out.Items = append([]domain.OrderLine{}, order.Items...)
	return &out, nil
}

func (r *MemoryRepository) ListOrdersByCafe(_ context.Context, cafeID string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := []domain.Order{}
	for _, order := range r.orders {
		if order.CafeID != cafeID {
			continue
		}
		out := *order
		out.Items = append([]domain.OrderLine{}, order.Items...)
		orders = append(orders, out)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *MemoryRepository) UpdateOrderStatus(_ context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, service.ErrOrderNotFound
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	out := *order
	out.Items = append([]domain.OrderLine{}, order.Items...)
	return &out, nil
}

func (r *MemoryRepository) UpdateOrderPayment(_ context.Context, id string, status domain.PaymentStatus) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, service.ErrOrderNotFound
	}
	order.PaymentStatus = status
	order.UpdatedAt = time.Now()
	out := *order
	out.Items = append([]domain.OrderLine{}, order.Items...)
	return &out, nil
}

var (
	_ service.CafeRepository  = (*MemoryRepository)(nil)
	_ service.OrderRepository = (*MemoryRepository)(nil)
)
