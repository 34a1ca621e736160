package db

import (
	"testing"

	"github.com/google/uuid"
	"github.com/katatrina/sellerops-BE/internal/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderEntity(t *testing.T) {
	id := uuid.New()
	number := "OD-1001"
	order := Order{
		ID:          id,
		OrderNumber: &number,
		Document:    []byte(`{"_id": "legacy", "status": "Shipped", "fwdAwb": "AWB1", "trackingData": {"status": "Delivered"}}`),
	}

	e, err := order.Entity()
	require.NoError(t, err)
	assert.Equal(t, status.EntityTypeOrder, e.Type)
	assert.Equal(t, id.String(), e.ID)
	assert.Equal(t, "OD-1001", e.DisplayID)
	assert.Equal(t, "Shipped", e.MarketplaceStatus)
	assert.Equal(t, "Delivered", e.TrackingStatus)
	assert.Equal(t, "AWB1", e.CarrierAWB)
}

func TestReturnEntityKeepsDocumentDisplayID(t *testing.T) {
	number := "column"
	ret := Return{
		ID:           uuid.New(),
		ReturnNumber: &number,
		Document:     []byte(`{"returnId": "RT-9", "normalized": {"status": "QC Pending"}}`),
	}

	e, err := ret.Entity()
	require.NoError(t, err)
	assert.Equal(t, status.EntityTypeReturn, e.Type)
	assert.Equal(t, "RT-9", e.DisplayID)
	assert.Equal(t, "QC Pending", e.NormalizedStatus)
}

func TestEntityMalformedDocument(t *testing.T) {
	id := uuid.New()
	order := Order{ID: id, Document: []byte(`{"status": 42}`)}

	e, err := order.Entity()
	assert.ErrorIs(t, err, status.ErrMalformedEntity)
	assert.Equal(t, id.String(), e.ID)

	order.Document = []byte(`not json`)
	_, err = order.Entity()
	assert.ErrorIs(t, err, status.ErrMalformedEntity)
}
