package ports

import (
	"context"

	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/domain"
)

type DestinationRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Destination, error)
	List(ctx context.Context) ([]*domain.Destination, error)
}
