package scheduler

import (
	"context"
	"time"

	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingDigester interface {
	Digest(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler periodically sends a digest of new bookings.
type Scheduler struct {
	bookingService bookingDigester
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingDigester,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

// Start blocks until ctx is done, building one digest per interval.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("digest scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("digest scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick collects bookings stored since the previous digest. The service sends the
// notification itself; an empty window sends nothing and a failed read is retried
// on the next tick with the watermark unchanged.
func (s *Scheduler) tick(ctx context.Context) {
	digested, err := s.bookingService.Digest(ctx)
	if err != nil {
		s.logger.Error("failed to build booking digest",
			logger.String("error", err.Error()),
		)
		return
	}
	if len(digested) == 0 {
		return
	}

	var revenue float64
	travelers := 0
	for _, b := range digested {
		revenue += b.Total
		travelers += b.Travelers
	}

	s.logger.Info("booking digest sent",
		logger.Int("count", len(digested)),
		logger.Int("travelers", travelers),
		logger.Any("revenue", revenue),
		logger.String("last_booking_id", digested[len(digested)-1].ID),
	)
}
