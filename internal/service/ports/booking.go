package ports

import (
	"context"

	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/domain"
)

type BookingRepo interface {
	Append(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
}
