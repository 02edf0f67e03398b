package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/domain"
	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/metrics"
	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo     ports.BookingRepo
	destinationRepo ports.DestinationRepo
	notifier        ports.BookingNotifier
	logger          logger.Logger

	now   func() time.Time
	newID func() (uuid.UUID, error)

	startedAt time.Time
	digestMu  sync.Mutex
	digested  int
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	destinationRepo ports.DestinationRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	s := &BookingService{
		bookingRepo:     bookingRepo,
		destinationRepo: destinationRepo,
		notifier:        notifier,
		logger:          logger,
		now:             func() time.Time { return time.Now().UTC() },
		newID:           uuid.NewV7,
	}
	s.startedAt = s.now().Truncate(time.Millisecond)
	s.digested = -1

	return s
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if missing := input.MissingFields(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingField, strings.Join(missing, ", "))
	}
	if input.Travelers < 0 {
		return nil, fmt.Errorf("%w: travelers must be positive", domain.ErrValidation)
	}

	dest, err := s.destinationRepo.GetByID(ctx, input.DestinationID)
	if err != nil {
		if errors.Is(err, domain.ErrDestinationNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidDestination, input.DestinationID)
		}
		return nil, fmt.Errorf("check destination: %w", err)
	}

	// uuid v7: millisecond timestamp prefix plus random bits, unique without a shared counter.
	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("generate booking id: %w", err)
	}

	nights := domain.Nights(input.StartDate, input.EndDate)
	booking := &domain.Booking{
		ID:              id.String(),
		CreatedAt:       s.now().Truncate(time.Millisecond),
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		DestinationID:   dest.ID.String(),
		DestinationName: dest.Name,
		Travelers:       input.Travelers,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		Nights:          nights,
		PricePerNight:   dest.PricePerNight,
		Total:           domain.Total(dest.PricePerNight, nights, input.Travelers),
	}

	if err = s.bookingRepo.Append(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	metrics.BookingsCreated.WithLabelValues(booking.DestinationID).Inc()
	metrics.BookingRevenue.Add(booking.Total)

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("destination_id", booking.DestinationID),
		logger.Int("travelers", booking.Travelers),
		logger.Int("nights", booking.Nights),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking)

	return booking, nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) List(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookingRepo.List(ctx)
}

// Digest collects bookings appended since the previous call and sends them as one notification.
// The first call skips bookings created before the service started.
func (s *BookingService) Digest(ctx context.Context) ([]*domain.Booking, error) {
	s.digestMu.Lock()
	defer s.digestMu.Unlock()

	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("digest: %w", err)
	}

	if s.digested < 0 {
		s.digested = 0
		for s.digested < len(bookings) && bookings[s.digested].CreatedAt.Before(s.startedAt) {
			s.digested++
		}
	}
	if s.digested > len(bookings) {
		s.digested = len(bookings)
	}

	fresh := bookings[s.digested:]
	s.digested = len(bookings)

	if len(fresh) == 0 {
		return nil, nil
	}

	s.logger.Info("booking digest prepared",
		logger.Int("count", len(fresh)),
	)

	go s.notifier.NotifyDigest(context.WithoutCancel(ctx), fresh)

	return fresh, nil
}
