package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

type Destination struct {
	ID            ID       `json:"id"`
	Name          string   `json:"name"`
	Country       string   `json:"country"`
	Description   string   `json:"description"`
	Image         string   `json:"image"`
	PricePerNight float64  `json:"pricePerNight"`
	Highlights    []string `json:"highlights"`
}

// ID is a record identifier that may be written as a JSON string or number.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	// 1.0 and 1 name the same record
	f, err := n.Float64()
	if err != nil {
		*id = ID(n.String())
		return nil
	}
	*id = ID(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

func (id ID) String() string {
	return string(id)
}

func (d Destination) RecordID() string {
	return string(d.ID)
}
