package service

import (
	"context"

	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/domain"
	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/service/ports"
)

type CatalogService struct {
	repo ports.DestinationRepo
}

func NewCatalogService(repo ports.DestinationRepo) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) GetByID(ctx context.Context, id string) (*domain.Destination, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CatalogService) List(ctx context.Context) ([]*domain.Destination, error) {
	return s.repo.List(ctx)
}
