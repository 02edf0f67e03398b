package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/domain"
	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/store"
)

type BookingRepository struct {
	bookings store.Collection[domain.Booking]
}

func NewBookingRepo(bookings store.Collection[domain.Booking]) *BookingRepository {
	return &BookingRepository{bookings: bookings}
}

func (r *BookingRepository) Append(ctx context.Context, b *domain.Booking) error {
	if err := r.bookings.Append(ctx, *b); err != nil {
		return fmt.Errorf("append booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := r.bookings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	bookings, err := r.bookings.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	res := make([]*domain.Booking, 0, len(bookings))
	for i := range bookings {
		res = append(res, &bookings[i])
	}

	return res, nil
}
