package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingRequest_AcceptsFormStrings(t *testing.T) {
	body := `{"name":"Asha","email":"a@x.io","destinationId":"1","travelers":"2","startDate":"2024-01-01","endDate":"2024-01-04"}`

	var req CreateBookingRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	in := req.ToInput()
	assert.Equal(t, "1", in.DestinationID)
	assert.Equal(t, 2, in.Travelers)
	assert.Equal(t, "", in.Phone)
}

func TestCreateBookingRequest_AcceptsNumbers(t *testing.T) {
	body := `{"name":"Asha","email":"a@x.io","destinationId":3,"travelers":4,"startDate":"2024-01-01","endDate":"2024-01-04"}`

	var req CreateBookingRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	in := req.ToInput()
	assert.Equal(t, "3", in.DestinationID)
	assert.Equal(t, 4, in.Travelers)
}

func TestCreateBookingRequest_AcceptsIntegralFloats(t *testing.T) {
	body := `{"destinationId":1.0,"travelers":2.0}`

	var req CreateBookingRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	in := req.ToInput()
	assert.Equal(t, "1", in.DestinationID)
	assert.Equal(t, 2, in.Travelers)
}

func TestCount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Count
		wantErr bool
	}{
		{name: "number", input: `5`, want: 5},
		{name: "string", input: `"5"`, want: 5},
		{name: "padded string", input: `" 7 "`, want: 7},
		{name: "negative", input: `-1`, want: -1},
		{name: "empty string", input: `""`, want: 0},
		{name: "null", input: `null`, want: 0},
		{name: "integral float", input: `2.0`, want: 2},
		{name: "integral float string", input: `"3.0"`, want: 3},
		{name: "exponent", input: `1e1`, want: 10},
		{name: "fraction", input: `2.5`, wantErr: true},
		{name: "fraction string", input: `"1.5"`, wantErr: true},
		{name: "too large", input: `1e12`, wantErr: true},
		{name: "word", input: `"two"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Count
			err := json.Unmarshal([]byte(tt.input), &c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
}
