package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/domain"
	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/store/jsonfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seed = `[
  {"id": 1, "name": "Goa", "country": "India", "pricePerNight": 2000, "highlights": ["Baga Beach"]},
  {"id": "2", "name": "Manali", "country": "India", "pricePerNight": 2500}
]`

func newDestinationRepo(t *testing.T, content string) *DestinationRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "destinations.json")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return NewDestinationRepo(jsonfile.New[domain.Destination](path))
}

func TestDestinationRepository_List(t *testing.T) {
	repo := newDestinationRepo(t, seed)

	destinations, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, destinations, 2)
	assert.Equal(t, domain.ID("1"), destinations[0].ID)
	assert.Equal(t, "Manali", destinations[1].Name)
	assert.Equal(t, []string{"Baga Beach"}, destinations[0].Highlights)
}

func TestDestinationRepository_List_NoFile(t *testing.T) {
	repo := newDestinationRepo(t, "")

	destinations, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, destinations)
}

func TestDestinationRepository_GetByID_NumericIDMatchesString(t *testing.T) {
	repo := newDestinationRepo(t, seed)

	d, err := repo.GetByID(context.Background(), "1")

	require.NoError(t, err)
	assert.Equal(t, "Goa", d.Name)
	assert.Equal(t, 2000.0, d.PricePerNight)
}

func TestDestinationRepository_GetByID_NotFound(t *testing.T) {
	repo := newDestinationRepo(t, seed)

	_, err := repo.GetByID(context.Background(), "999")

	assert.ErrorIs(t, err, domain.ErrDestinationNotFound)
}

func TestDestinationRepository_ReadFailureIsNotNotFound(t *testing.T) {
	repo := NewDestinationRepo(jsonfile.New[domain.Destination](t.TempDir()))

	_, err := repo.GetByID(context.Background(), "1")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrDestinationNotFound)
}

func TestBookingRepository_AppendGetList(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepo(jsonfile.New[domain.Booking](filepath.Join(t.TempDir(), "bookings.json")))

	b := &domain.Booking{
		ID:              "b1",
		CreatedAt:       time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
		Name:            "Asha",
		Email:           "asha@example.com",
		DestinationID:   "1",
		DestinationName: "Goa",
		Travelers:       2,
		StartDate:       "2024-01-01",
		EndDate:         "2024-01-04",
		Nights:          3,
		PricePerNight:   2000,
		Total:           12000,
	}
	require.NoError(t, repo.Append(ctx, b))

	got, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, b, got)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}
