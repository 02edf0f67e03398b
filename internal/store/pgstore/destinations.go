package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/domain"
	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/store"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type destinationRow struct {
	ID            string         `db:"id"`
	Name          string         `db:"name"`
	Country       string         `db:"country"`
	Description   string         `db:"description"`
	Image         string         `db:"image"`
	PricePerNight float64        `db:"price_per_night"`
	Highlights    pq.StringArray `db:"highlights"`
}

func (r destinationRow) toDomain() domain.Destination {
	return domain.Destination{
		ID:            domain.ID(r.ID),
		Name:          r.Name,
		Country:       r.Country,
		Description:   r.Description,
		Image:         r.Image,
		PricePerNight: r.PricePerNight,
		Highlights:    []string(r.Highlights),
	}
}

type Destinations struct {
	db *sqlx.DB
}

func NewDestinations(db *sqlx.DB) *Destinations {
	return &Destinations{db: db}
}

const destinationColumns = `id, name, country, description, image, price_per_night, highlights`

func (s *Destinations) ListAll(ctx context.Context) ([]domain.Destination, error) {
	query := `SELECT ` + destinationColumns + `
			  FROM destinations
			  ORDER BY position`

	var rows []destinationRow
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}

	res := make([]domain.Destination, 0, len(rows))
	for _, r := range rows {
		res = append(res, r.toDomain())
	}

	return res, nil
}

func (s *Destinations) FindByID(ctx context.Context, id string) (domain.Destination, error) {
	query := `SELECT ` + destinationColumns + `
			  FROM destinations
			  WHERE id = $1`

	var r destinationRow
	if err := s.db.GetContext(ctx, &r, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Destination{}, store.ErrNotFound
		}
		return domain.Destination{}, fmt.Errorf("get destination: %w", err)
	}

	return r.toDomain(), nil
}

// Append is used by the catalog import; the API never writes destinations.
func (s *Destinations) Append(ctx context.Context, d domain.Destination) error {
	query := `INSERT INTO destinations (id, name, country, description, image, price_per_night, highlights)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	highlights := d.Highlights
	if highlights == nil {
		highlights = []string{}
	}

	_, err := s.db.ExecContext(
		ctx, query,
		string(d.ID), d.Name, d.Country, d.Description, d.Image,
		d.PricePerNight, pq.Array(highlights),
	)
	if err != nil {
		return fmt.Errorf("insert destination: %w", err)
	}

	return nil
}
