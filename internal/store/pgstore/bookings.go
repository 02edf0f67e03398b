package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/domain"
	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/store"
	"github.com/jmoiron/sqlx"
)

type bookingRow struct {
	ID              string    `db:"id"`
	CreatedAt       time.Time `db:"created_at"`
	Name            string    `db:"name"`
	Email           string    `db:"email"`
	Phone           string    `db:"phone"`
	DestinationID   string    `db:"destination_id"`
	DestinationName string    `db:"destination_name"`
	Travelers       int       `db:"travelers"`
	StartDate       string    `db:"start_date"`
	EndDate         string    `db:"end_date"`
	Nights          int       `db:"nights"`
	PricePerNight   float64   `db:"price_per_night"`
	Total           float64   `db:"total"`
}

func (r bookingRow) toDomain() domain.Booking {
	return domain.Booking{
		ID:              r.ID,
		CreatedAt:       r.CreatedAt.UTC(),
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		DestinationID:   r.DestinationID,
		DestinationName: r.DestinationName,
		Travelers:       r.Travelers,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		Nights:          r.Nights,
		PricePerNight:   r.PricePerNight,
		Total:           r.Total,
	}
}

// Bookings is insert-only; a single INSERT is the atomic append.
type Bookings struct {
	db *sqlx.DB
}

func NewBookings(db *sqlx.DB) *Bookings {
	return &Bookings{db: db}
}

const bookingColumns = `id, created_at, name, email, phone, destination_id, destination_name,
			  travelers, start_date, end_date, nights, price_per_night, total`

func (s *Bookings) ListAll(ctx context.Context) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  ORDER BY seq`

	var rows []bookingRow
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	res := make([]domain.Booking, 0, len(rows))
	for _, r := range rows {
		res = append(res, r.toDomain())
	}

	return res, nil
}

func (s *Bookings) FindByID(ctx context.Context, id string) (domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	var r bookingRow
	if err := s.db.GetContext(ctx, &r, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Booking{}, store.ErrNotFound
		}
		return domain.Booking{}, fmt.Errorf("get booking: %w", err)
	}

	return r.toDomain(), nil
}

func (s *Bookings) Append(ctx context.Context, b domain.Booking) error {
	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES (:id, :created_at, :name, :email, :phone, :destination_id, :destination_name,
			          :travelers, :start_date, :end_date, :nights, :price_per_night, :total)`

	row := bookingRow{
		ID:              b.ID,
		CreatedAt:       b.CreatedAt,
		Name:            b.Name,
		Email:           b.Email,
		Phone:           b.Phone,
		DestinationID:   b.DestinationID,
		DestinationName: b.DestinationName,
		Travelers:       b.Travelers,
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		Nights:          b.Nights,
		PricePerNight:   b.PricePerNight,
		Total:           b.Total,
	}
	if _, err := s.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}
