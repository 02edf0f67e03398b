package domain

import (
	"math"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// dateLayouts are tried in order; zoneless values are read as UTC.
var dateLayouts = []string{
	dateLayout,
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
}

type Booking struct {
	ID              string    `json:"id"`
	CreatedAt       time.Time `json:"createdAt"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	DestinationID   string    `json:"destinationId"`
	DestinationName string    `json:"destinationName"`
	Travelers       int       `json:"travelers"`
	StartDate       string    `json:"startDate"`
	EndDate         string    `json:"endDate"`
	Nights          int       `json:"nights"`
	PricePerNight   float64   `json:"pricePerNight"`
	Total           float64   `json:"total"`
}

type CreateBookingInput struct {
	Name          string
	Email         string
	Phone         string
	DestinationID string
	Travelers     int
	StartDate     string
	EndDate       string
}

// Nights returns the whole days between start and end rounded up, never less than 1.
// Dates that fail to parse count as a single night.
func Nights(start, end string) int {
	from, err := ParseDate(start)
	if err != nil {
		return 1
	}
	to, err := ParseDate(end)
	if err != nil {
		return 1
	}

	days := math.Ceil(to.Sub(from).Hours() / 24)
	if days < 1 {
		return 1
	}
	return int(days)
}

func Total(pricePerNight float64, nights, travelers int) float64 {
	return pricePerNight * float64(nights) * float64(travelers)
}

// ParseDate accepts a calendar date, an RFC3339 timestamp or a datetime-local value.
func ParseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

func (b Booking) RecordID() string {
	return b.ID
}

// MissingFields lists the json names of required fields left empty.
func (in CreateBookingInput) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(in.DestinationID) == "" {
		missing = append(missing, "destinationId")
	}
	if in.Travelers == 0 {
		missing = append(missing, "travelers")
	}
	if strings.TrimSpace(in.StartDate) == "" {
		missing = append(missing, "startDate")
	}
	if strings.TrimSpace(in.EndDate) == "" {
		missing = append(missing, "endDate")
	}
	return missing
}
