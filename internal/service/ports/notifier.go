package ports

import (
	"context"

	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, booking *domain.Booking)
	NotifyDigest(ctx context.Context, bookings []*domain.Booking)
}
