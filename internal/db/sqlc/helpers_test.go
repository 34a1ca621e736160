package db

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/katatrina/sellerops-BE/internal/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listQuerier struct {
	Querier

	orders     []Order
	returns    []Return
	lastOrders ListOrdersParams
	calls      int
	err        error
}

func (q *listQuerier) ListOrders(ctx context.Context, arg ListOrdersParams) ([]Order, error) {
	q.lastOrders = arg
	q.calls++
	if q.err != nil {
		return nil, q.err
	}
	return pageOf(q.orders, arg.Limit, arg.Offset), nil
}

func (q *listQuerier) ListReturns(ctx context.Context, arg ListReturnsParams) ([]Return, error) {
	q.calls++
	return pageOf(q.returns, arg.Limit, arg.Offset), nil
}

func pageOf[T any](items []T, limit, offset int32) []T {
	if int(offset) >= len(items) {
		return []T{}
	}
	end := int(offset + limit)
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func TestListOrderRows(t *testing.T) {
	good := uuid.New()
	bad := uuid.New()
	q := &listQuerier{orders: []Order{
		{ID: good, SellerID: "s1", Document: []byte(`{"status": "Delivered", "trackingData": {"status": "In Transit"}}`)},
		{ID: bad, SellerID: "s1", Document: []byte(`{"status": ["Delivered"]}`)},
	}}
	seller := "s1"

	rows, err := ListOrderRows(context.Background(), q, &seller, 50)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "s1", *q.lastOrders.SellerID)
	assert.Equal(t, int32(50), q.lastOrders.Limit)

	assert.Empty(t, rows[0].DecodeError)
	assert.True(t, rows[0].Row.IsMismatch)
	assert.Equal(t, status.OrderDelivered, rows[0].Row.MarketplaceCanonical)
	assert.Equal(t, status.OrderShipped, rows[0].Row.OurCanonical)

	assert.NotEmpty(t, rows[1].DecodeError)
	assert.False(t, rows[1].Row.IsMismatch)
	assert.Equal(t, bad.String(), rows[1].Row.ID)

	valid, malformed := StatusRows(rows)
	assert.Len(t, valid, 1)
	assert.Equal(t, 1, malformed)
}

func TestListReturnRows(t *testing.T) {
	q := &listQuerier{returns: []Return{
		{ID: uuid.New(), SellerID: "s2", Document: []byte(`{"status": "Refunded", "normalized": {"status": "Quality Check"}}`)},
	}}

	rows, err := ListReturnRows(context.Background(), q, nil, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, status.EntityTypeReturn, rows[0].Row.EntityType)
	assert.Equal(t, status.ReturnCompleted, rows[0].Row.MarketplaceCanonical)
	assert.Equal(t, status.ReturnQualityCheck, rows[0].Row.OurCanonical)
	assert.True(t, rows[0].Row.IsMismatch)
}

func TestScanOrderRowsPagesPastPageSize(t *testing.T) {
	q := &listQuerier{}
	for i := 0; i < 25; i++ {
		q.orders = append(q.orders, Order{
			ID:       uuid.New(),
			SellerID: "s1",
			Document: []byte(`{"status": "Delivered", "trackingData": {"status": "In Transit"}}`),
		})
	}

	rows, err := ScanOrderRows(context.Background(), q, nil, 10)
	require.NoError(t, err)
	require.Len(t, rows, 25)
	assert.Equal(t, 3, q.calls)
	assert.Equal(t, int32(20), q.lastOrders.Offset)
	assert.Equal(t, int32(10), q.lastOrders.Limit)
	assert.Equal(t, q.orders[24].ID.String(), rows[24].Row.ID)

	valid, _ := StatusRows(rows)
	assert.Equal(t, 25, status.Summarize(valid).MismatchCount)
}

func TestScanOrderRowsExactMultiple(t *testing.T) {
	q := &listQuerier{}
	for i := 0; i < 20; i++ {
		q.orders = append(q.orders, Order{ID: uuid.New(), Document: []byte(`{"status": "Delivered"}`)})
	}

	rows, err := ScanOrderRows(context.Background(), q, nil, 10)
	require.NoError(t, err)
	assert.Len(t, rows, 20)
	assert.Equal(t, 3, q.calls)
}

func TestScanReturnRows(t *testing.T) {
	q := &listQuerier{}
	for i := 0; i < 7; i++ {
		q.returns = append(q.returns, Return{ID: uuid.New(), Document: []byte(`{"status": "Refunded"}`)})
	}

	rows, err := ScanReturnRows(context.Background(), q, nil, 3)
	require.NoError(t, err)
	assert.Len(t, rows, 7)
	assert.Equal(t, 3, q.calls)
}

func TestScanOrderRowsErrors(t *testing.T) {
	q := &listQuerier{err: errors.New("connection reset")}

	_, err := ScanOrderRows(context.Background(), q, nil, 10)
	require.Error(t, err)

	_, err = ScanOrderRows(context.Background(), &listQuerier{}, nil, 0)
	require.Error(t, err)
}
