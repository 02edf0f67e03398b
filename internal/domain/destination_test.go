package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	var d Destination
	require.NoError(t, json.Unmarshal([]byte(`{"id": 7, "name": "Goa"}`), &d))
	assert.Equal(t, ID("7"), d.ID)

	var named Destination
	require.NoError(t, json.Unmarshal([]byte(`{"id": "goa-1"}`), &named))
	assert.Equal(t, ID("goa-1"), named.ID)

	var empty Destination
	require.NoError(t, json.Unmarshal([]byte(`{"id": null}`), &empty))
	assert.Equal(t, ID(""), empty.ID)

	var fractional Destination
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1.0}`), &fractional))
	assert.Equal(t, ID("1"), fractional.ID)

	var exponent Destination
	require.NoError(t, json.Unmarshal([]byte(`{"id": 3e0}`), &exponent))
	assert.Equal(t, ID("3"), exponent.ID)

	var bad Destination
	require.Error(t, json.Unmarshal([]byte(`{"id": true}`), &bad))
}

func TestDestination_MarshalKeepsStringID(t *testing.T) {
	raw, err := json.Marshal(Destination{ID: "1", Name: "Goa", PricePerNight: 2000})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"id":"1"`)
	assert.Contains(t, string(raw), `"pricePerNight":2000`)
}
