package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"quickmenu/internal/domain"
)

type CafeService struct {
	repo CafeRepository
}

func NewCafeService(repo CafeRepository) *CafeService {
	return &CafeService{repo: repo}
}

func (s *CafeService) Create(ctx context.Context, cafe *domain.Cafe) error {
	if cafe.Name == "" || cafe.OwnerEmail == "" {
		return ErrMissingFields
	}
	cafe.ID = uuid.NewString()
	cafe.IsActive = true
	cafe.Menu = []domain.MenuItem{}
	return s.repo.CreateCafe(ctx, cafe)
}

func (s *CafeService) Get(ctx context.Context, id string) (*domain.Cafe, error) {
	return s.repo.GetCafe(ctx, id)
}

// List returns active cafes without their menus.
func (s *CafeService) List(ctx context.Context) ([]domain.Cafe, error) {
	return s.repo.ListCafes(ctx)
}

func (s *CafeService) Update(ctx context.Context, cafe *domain.Cafe) error {
	return s.repo.UpdateCafe(ctx, cafe)
}

// Deactivate soft-deletes a cafe. Records are never removed.
func (s *CafeService) Deactivate(ctx context.Context, id string) error {
	return s.repo.SetCafeActive(ctx, id, false)
}

func (s *CafeService) Menu(ctx context.Context, cafeID string) ([]domain.MenuItem, error) {
	if _, err := s.repo.GetCafe(ctx, cafeID); err != nil {
		return nil, err
	}
	return s.repo.ListMenu(ctx, cafeID)
}

func (s *CafeService) AddMenuItem(ctx context.Context, item *domain.MenuItem) error {
	if item.Name == "" || item.Price <= 0 {
		return ErrMissingFields
	}
	if _, err := s.repo.GetCafe(ctx, item.CafeID); err != nil {
		return err
	}
	item.ID = uuid.NewString()
	item.Available = true
	if item.Category == "" {
		item.Category = "Food"
	}
	return s.repo.CreateMenuItem(ctx, item)
}

func (s *CafeService) GetMenuItem(ctx context.Context, cafeID, itemID string) (*domain.MenuItem, error) {
	return s.repo.GetMenuItem(ctx, cafeID, itemID)
}

func (s *CafeService) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	if item.Price < 0 {
		return ErrInvalidPrice
	}
	item.UpdatedAt = time.Now()
	return s.repo.UpdateMenuItem(ctx, item)
}

func (s *CafeService) RemoveMenuItem(ctx context.Context, cafeID, itemID string) error {
	if _, err := s.repo.GetCafe(ctx, cafeID); err != nil {
		return err
	}
	return s.repo.DeleteMenuItem(ctx, cafeID, itemID)
}

var _ CafeServiceInterface = (*CafeService)(nil)
