package dto

import (
	"time"

	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/domain"
)

// TimeLayout is ISO 8601 with milliseconds, as browsers print Date values.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

type DestinationResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Country       string   `json:"country"`
	Description   string   `json:"description"`
	Image         string   `json:"image"`
	PricePerNight float64  `json:"pricePerNight"`
	Highlights    []string `json:"highlights"`
}

type BookingResponse struct {
	ID              string  `json:"id"`
	CreatedAt       string  `json:"createdAt"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	DestinationID   string  `json:"destinationId"`
	DestinationName string  `json:"destinationName"`
	Travelers       int     `json:"travelers"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	Nights          int     `json:"nights"`
	PricePerNight   float64 `json:"pricePerNight"`
	Total           float64 `json:"total"`
}

type CreateBookingResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToDestinationResponse(d *domain.Destination) DestinationResponse {
	highlights := d.Highlights
	if highlights == nil {
		highlights = []string{}
	}

	return DestinationResponse{
		ID:            d.ID.String(),
		Name:          d.Name,
		Country:       d.Country,
		Description:   d.Description,
		Image:         d.Image,
		PricePerNight: d.PricePerNight,
		Highlights:    highlights,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		CreatedAt:       b.CreatedAt.UTC().Format(TimeLayout),
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
}

func NewHealthResponse(now time.Time) HealthResponse {
	return HealthResponse{Status: "ok", Time: now.UTC().Format(TimeLayout)}
}
