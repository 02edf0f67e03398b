package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/domain"
)

// CreateBookingRequest mirrors the booking form. Browsers post every field as a string,
// so destinationId and travelers also accept their string forms.
type CreateBookingRequest struct {
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	DestinationID domain.ID `json:"destinationId"`
	Travelers     Count     `json:"travelers"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
}

func (r CreateBookingRequest) ToInput() domain.CreateBookingInput {
	return domain.CreateBookingInput{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		DestinationID: r.DestinationID.String(),
		Travelers:     int(r.Travelers),
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
	}
}

// Count is an integer given as a JSON number or a numeric string. Empty string and null mean zero.
type Count int

func (c *Count) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = 0
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*c = 0
			return nil
		}
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return fmt.Errorf("travelers must be a whole number, got %s", data)
	}
	*c = Count(f)

	return nil
}
