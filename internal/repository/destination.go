package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/domain"
	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/store"
)

// DestinationRepository is a read-only view of the catalog.
type DestinationRepository struct {
	destinations store.Collection[domain.Destination]
}

func NewDestinationRepo(destinations store.Collection[domain.Destination]) *DestinationRepository {
	return &DestinationRepository{destinations: destinations}
}

func (r *DestinationRepository) GetByID(ctx context.Context, id string) (*domain.Destination, error) {
	d, err := r.destinations.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrDestinationNotFound
		}
		return nil, fmt.Errorf("get destination: %w", err)
	}

	return &d, nil
}

func (r *DestinationRepository) List(ctx context.Context) ([]*domain.Destination, error) {
	destinations, err := r.destinations.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}

	res := make([]*domain.Destination, 0, len(destinations))
	for i := range destinations {
		res = append(res, &destinations[i])
	}

	return res, nil
}
