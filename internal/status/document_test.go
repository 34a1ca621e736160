package status

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeOrder(t *testing.T) {
	raw := []byte(`{
		"_id": "64f1c0",
		"orderNumber": "FL1001",
		"status": "In Transit",
		"carrier": "Delhivery",
		"fwdAwb": 1234567890123,
		"normalizedStatus": "shipped",
		"deliveryStatus": null,
		"trackingData": {
			"status": "Out for Delivery",
			"history": [
				{"status": "Picked Up", "location": "Bhiwandi", "at": "2024-05-01T10:00:00Z"},
				{"status": "Out for Delivery", "at": "2024-05-03T08:30:00.000Z"}
			]
		}
	}`)

	e, err := DecodeJSON(EntityTypeOrder, raw)
	require.NoError(t, err)
	assert.Equal(t, EntityTypeOrder, e.Type)
	assert.Equal(t, "64f1c0", e.ID)
	assert.Equal(t, "FL1001", e.DisplayID)
	assert.Equal(t, "In Transit", e.MarketplaceStatus)
	assert.Equal(t, "Out for Delivery", e.TrackingStatus)
	assert.Equal(t, "shipped", e.NormalizedStatus)
	assert.Empty(t, e.DeliveryStatus)
	assert.Equal(t, "1234567890123", e.CarrierAWB)
	assert.Equal(t, "Delhivery", e.Carrier)
	require.Len(t, e.TrackingHistory, 2)
	assert.Equal(t, "Bhiwandi", e.TrackingHistory[0].Location)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), e.TrackingHistory[0].At)

	row := ReconcileEntity(e)
	assert.True(t, row.IsMismatch)
	assert.Equal(t, "FL1001", row.DisplayID)
}

func TestDecodeHistoryTimestamps(t *testing.T) {
	testCases := []struct {
		at   string
		want time.Time
	}{
		{"2024-05-01T10:00:00Z", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-05-01T10:00:00.123456Z", time.Date(2024, 5, 1, 10, 0, 0, 123456000, time.UTC)},
		{"2024-05-01T15:30:00+05:30", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-05-01T10:00:00.5", time.Date(2024, 5, 1, 10, 0, 0, 500000000, time.UTC)},
		{"2024-05-01 10:00:00", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-05-01 15:30:00+05:30", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{" 2024-05-01 ", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"yesterday", time.Time{}},
	}

	for _, tc := range testCases {
		t.Run(tc.at, func(t *testing.T) {
			e, err := Decode(EntityTypeOrder, map[string]any{
				"trackingData": map[string]any{
					"history": []any{map[string]any{"status": "In Transit", "at": tc.at}},
				},
			})
			require.NoError(t, err)
			require.Len(t, e.TrackingHistory, 1)
			assert.Equal(t, tc.want, e.TrackingHistory[0].At.UTC())
		})
	}
}

func TestDecodeReturn(t *testing.T) {
	doc := map[string]any{
		"id":                  float64(42),
		"return_id":           "RT-9",
		"status":              "Initiated",
		"normalized":          map[string]any{"status": "in_progress"},
		"3PL Delivery Status": "Picked",
		"tracking_number":     "TRK1",
	}

	e, err := DecodeReturn(doc)
	require.NoError(t, err)
	assert.Equal(t, "42", e.ID)
	assert.Equal(t, "RT-9", e.DisplayID)
	assert.Equal(t, "in_progress", e.NormalizedStatus)
	assert.Equal(t, "Picked", e.ReturnWorkflowStatus)
	assert.Equal(t, "TRK1", e.CarrierAWB)
	assert.Empty(t, e.TrackingStatus)
	assert.Nil(t, e.TrackingHistory)
}

func TestDecodeMalformed(t *testing.T) {
	testCases := []struct {
		name      string
		doc       map[string]any
		wantField string
		wantKind  string
	}{
		{"numeric status", map[string]any{"status": float64(3)}, "status", "number"},
		{"object tracking status", map[string]any{"trackingData": map[string]any{"status": map[string]any{}}}, "trackingData.status", "object"},
		{"tracking data is a string", map[string]any{"trackingData": "delivered"}, "trackingData", "string"},
		{"bool awb", map[string]any{"fwdAwb": true}, "fwdAwb", "bool"},
		{"history not a list", map[string]any{"trackingData": map[string]any{"history": "x"}}, "trackingData.history", "string"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeOrder(tc.doc)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedEntity))

			var malformed *MalformedEntityError
			require.True(t, errors.As(err, &malformed))
			assert.Equal(t, tc.wantField, malformed.Field)
			assert.Equal(t, tc.wantKind, malformed.Kind)
		})
	}
}

func TestDecodeEmptyDocument(t *testing.T) {
	e, err := DecodeOrder(nil)
	require.NoError(t, err)
	assert.Equal(t, EntityTypeOrder, e.Type)

	row := ReconcileEntity(e)
	assert.False(t, row.IsMismatch)

	_, err = DecodeJSON(EntityTypeReturn, []byte("not json"))
	assert.ErrorIs(t, err, ErrMalformedEntity)

	_, err = Decode(EntityType("invoice"), map[string]any{})
	assert.ErrorIs(t, err, ErrUnknownEntityType)
}
