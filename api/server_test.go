package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	db "github.com/katatrina/sellerops-BE/internal/db/sqlc"
	shipmenttracking "github.com/katatrina/sellerops-BE/internal/shipment_tracking"
	"github.com/katatrina/sellerops-BE/internal/status"
	"github.com/katatrina/sellerops-BE/internal/token"
	"github.com/katatrina/sellerops-BE/internal/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	orderShippedButDelivered = `{"orderNumber": "OD-1", "status": "Shipped", "trackingData": {"status": "Delivered", "history": [{"status": "Delivered", "location": "Pune", "at": "2024-05-02T09:00:00Z"}]}}`
	orderDelivered           = `{"orderNumber": "OD-2", "status": "Delivered", "normalizedStatus": "delivered"}`
	orderCancelledButShipped = `{"orderNumber": "OD-3", "status": "Cancelled", "normalizedStatus": "shipped"}`
	orderMalformed           = `{"orderNumber": "OD-9", "status": 7}`

	returnInTransit         = `{"returnId": "RT-1", "status": "Return Initiated", "tracking_number": "T1"}`
	returnRefundedInTransit = `{"returnId": "RT-2", "status": "Refunded", "normalized": {"status": "in transit"}}`
)

func (ts *testServer) do(t *testing.T, method, url string, body any, subject string, role token.Role) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	request, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	request.Header.Set("Content-Type", "application/json")
	if subject != "" {
		addAuthorization(t, request, ts.tokenMaker, subject, role)
	}

	recorder := httptest.NewRecorder()
	ts.router.ServeHTTP(recorder, request)
	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &out))
	return out
}

func seed(ts *testServer) {
	ts.store.addOrder("seller-1", orderShippedButDelivered)
	ts.store.addOrder("seller-1", orderDelivered)
	ts.store.addOrder("seller-2", orderCancelledButShipped)
	ts.store.addOrder("seller-1", orderMalformed)

	ts.store.addReturn("seller-1", returnInTransit)
	ts.store.addReturn("seller-1", returnRefundedInTransit)
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	recorder := ts.do(t, http.MethodGet, "/v1/health", nil, "", "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	ts.store.pingErr = errors.New("connection refused")
	recorder = ts.do(t, http.MethodGet, "/v1/health", nil, "", "")
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

func TestAuthMiddleware(t *testing.T) {
	ts := newTestServer(t)

	testCases := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "malformed header", header: "Bearer"},
		{name: "unsupported type", header: "Basic abc"},
		{name: "invalid token", header: "Bearer not-a-token"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			request, err := http.NewRequest(http.MethodGet, "/v1/orders", nil)
			require.NoError(t, err)
			if tc.header != "" {
				request.Header.Set(authorizationHeaderKey, tc.header)
			}

			recorder := httptest.NewRecorder()
			ts.router.ServeHTTP(recorder, request)
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}

func TestVerifyAccessToken(t *testing.T) {
	ts := newTestServer(t)

	accessToken, _, err := ts.tokenMaker.CreateToken("seller-1", token.RoleSeller, time.Minute)
	require.NoError(t, err)

	recorder := ts.do(t, http.MethodPost, "/v1/tokens/verify", gin.H{"access_token": accessToken}, "", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	resp := decodeBody[verifyAccessTokenResponse](t, recorder)
	assert.Equal(t, "seller-1", resp.Subject)
	assert.Equal(t, token.RoleSeller, resp.Role)

	recorder = ts.do(t, http.MethodPost, "/v1/tokens/verify", gin.H{"access_token": "garbage"}, "", "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestListOrdersSellerScope(t *testing.T) {
	ts := newTestServer(t)
	seed(ts)

	recorder := ts.do(t, http.MethodGet, "/v1/orders", nil, "seller-1", token.RoleSeller)
	require.Equal(t, http.StatusOK, recorder.Code)
	rows := decodeBody[[]EntityRowResponse](t, recorder)
	require.Len(t, rows, 3)
	require.NotNil(t, ts.store.lastSellerID)
	assert.Equal(t, "seller-1", *ts.store.lastSellerID)
	assert.Equal(t, int32(defaultListLimit), ts.store.lastLimit)
	for _, row := range rows {
		assert.Equal(t, "seller-1", row.SellerID)
		assert.Nil(t, row.TrackingHistory)
	}

	recorder = ts.do(t, http.MethodGet, "/v1/orders?seller_id=seller-2", nil, "seller-1", token.RoleSeller)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = ts.do(t, http.MethodGet, "/v1/orders", nil, "ops", token.RoleAdmin)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Len(t, decodeBody[[]EntityRowResponse](t, recorder), 4)
	assert.Nil(t, ts.store.lastSellerID)

	recorder = ts.do(t, http.MethodGet, "/v1/orders?seller_id=seller-2&limit=10", nil, "ops", token.RoleAdmin)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Len(t, decodeBody[[]EntityRowResponse](t, recorder), 1)
	assert.Equal(t, int32(10), ts.store.lastLimit)
}

func TestListOrdersRows(t *testing.T) {
	ts := newTestServer(t)
	seed(ts)

	recorder := ts.do(t, http.MethodGet, "/v1/orders", nil, "seller-1", token.RoleSeller)
	require.Equal(t, http.StatusOK, recorder.Code)
	rows := decodeBody[[]EntityRowResponse](t, recorder)
	require.Len(t, rows, 3)

	mismatch := rows[0]
	assert.Equal(t, "OD-1", mismatch.DisplayID)
	assert.Equal(t, status.OrderShipped, mismatch.MarketplaceCanonical)
	assert.Equal(t, status.OrderDelivered, mismatch.OurCanonical)
	assert.Equal(t, status.SourceTracking, mismatch.OurStatusSource)
	assert.True(t, mismatch.IsMismatch)

	assert.False(t, rows[1].IsMismatch)
	assert.Equal(t, status.SourceNormalized, rows[1].OurStatusSource)

	malformed := rows[2]
	assert.Equal(t, "OD-9", malformed.DisplayID)
	assert.NotEmpty(t, malformed.DecodeError)
	assert.False(t, malformed.IsMismatch)
}

func TestListOrdersFilters(t *testing.T) {
	ts := newTestServer(t)
	seed(ts)

	recorder := ts.do(t, http.MethodGet, "/v1/orders?mismatch_only=true", nil, "ops", token.RoleAdmin)
	require.Equal(t, http.StatusOK, recorder.Code)
	rows := decodeBody[[]EntityRowResponse](t, recorder)
	require.Len(t, rows, 2)
	assert.Equal(t, "OD-1", rows[0].DisplayID)
	assert.Equal(t, "OD-3", rows[1].DisplayID)

	recorder = ts.do(t, http.MethodGet, "/v1/orders?status=Delivered", nil, "ops", token.RoleAdmin)
	require.Equal(t, http.StatusOK, recorder.Code)
	rows = decodeBody[[]EntityRowResponse](t, recorder)
	require.Len(t, rows, 1)
	assert.Equal(t, "OD-2", rows[0].DisplayID)

	testCases := []struct {
		name  string
		query string
		field string
	}{
		{name: "unknown status", query: "status=teleported", field: "status"},
		{name: "return state on orders", query: "status=quality_check", field: "status"},
		{name: "limit too large", query: "limit=5000", field: "limit"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := ts.do(t, http.MethodGet, "/v1/orders?"+tc.query, nil, "ops", token.RoleAdmin)
			require.Equal(t, http.StatusBadRequest, recorder.Code)
			resp := decodeBody[FailedValidationResponse](t, recorder)
			require.Len(t, resp.FieldViolations, 1)
			assert.Equal(t, tc.field, resp.FieldViolations[0].Field)
		})
	}

	recorder = ts.do(t, http.MethodGet, "/v1/orders?limit=0&seller_id=bad%20id", nil, "ops", token.RoleAdmin)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	resp := decodeBody[FailedValidationResponse](t, recorder)
	assert.Len(t, resp.FieldViolations, 2)

	recorder = ts.do(t, http.MethodGet, "/v1/orders?limit=ten", nil, "ops", token.RoleAdmin)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestListOrdersStoreError(t *testing.T) {
	ts := newTestServer(t)
	ts.store.listErr = errors.New("pool closed")

	recorder := ts.do(t, http.MethodGet, "/v1/orders", nil, "ops", token.RoleAdmin)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestGetOrderDetails(t *testing.T) {
	ts := newTestServer(t)
	id := ts.store.addOrder("seller-1", orderShippedButDelivered)

	recorder := ts.do(t, http.MethodGet, "/v1/orders/"+id.String(), nil, "seller-1", token.RoleSeller)
	require.Equal(t, http.StatusOK, recorder.Code)
	row := decodeBody[EntityRowResponse](t, recorder)
	assert.Equal(t, id.String(), row.ID)
	assert.True(t, row.IsMismatch)
	require.Len(t, row.TrackingHistory, 1)
	assert.Equal(t, "Pune", row.TrackingHistory[0].Location)

	recorder = ts.do(t, http.MethodGet, "/v1/orders/"+id.String(), nil, "seller-2", token.RoleSeller)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = ts.do(t, http.MethodGet, "/v1/orders/"+id.String(), nil, "ops", token.RoleAdmin)
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = ts.do(t, http.MethodGet, "/v1/orders/"+uuid.NewString(), nil, "ops", token.RoleAdmin)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = ts.do(t, http.MethodGet, "/v1/orders/OD-1", nil, "ops", token.RoleAdmin)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestReturns(t *testing.T) {
	ts := newTestServer(t)
	seed(ts)

	recorder := ts.do(t, http.MethodGet, "/v1/returns?status=in_progress", nil, "seller-1", token.RoleSeller)
	require.Equal(t, http.StatusOK, recorder.Code)
	rows := decodeBody[[]EntityRowResponse](t, recorder)
	require.Len(t, rows, 1)
	assert.Equal(t, "RT-1", rows[0].DisplayID)
	assert.Equal(t, status.EntityTypeReturn, rows[0].EntityType)
	assert.Equal(t, status.SourceFallback, rows[0].OurStatusSource)
	assert.False(t, rows[0].IsMismatch)

	id := ts.store.returns[1].ID
	recorder = ts.do(t, http.MethodGet, "/v1/returns/"+id.String(), nil, "seller-1", token.RoleSeller)
	require.Equal(t, http.StatusOK, recorder.Code)
	row := decodeBody[EntityRowResponse](t, recorder)
	assert.Equal(t, "RT-2", row.DisplayID)
	assert.Equal(t, status.ReturnCompleted, row.MarketplaceCanonical)
	assert.Equal(t, status.ReturnInProgress, row.OurCanonical)
	assert.True(t, row.IsMismatch)

	recorder = ts.do(t, http.MethodGet, "/v1/returns/"+uuid.NewString(), nil, "seller-1", token.RoleSeller)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestListMismatches(t *testing.T) {
	ts := newTestServer(t)
	seed(ts)

	recorder := ts.do(t, http.MethodGet, "/v1/mismatches", nil, "ops", token.RoleAdmin)
	require.Equal(t, http.StatusOK, recorder.Code)
	resp := decodeBody[ListMismatchesResponse](t, recorder)
	assert.Equal(t, 3, resp.Count)
	assert.Equal(t, "Mismatch detected for 3 records", resp.Banner)
	require.Len(t, resp.Records, 3)
	assert.Equal(t, status.EntityTypeOrder, resp.Records[0].EntityType)
	assert.Equal(t, "OD-1", resp.Records[0].EntityID)
	assert.Equal(t, status.EntityTypeReturn, resp.Records[2].EntityType)
	assert.Equal(t, "RT-2", resp.Records[2].DisplayID)

	recorder = ts.do(t, http.MethodGet, "/v1/mismatches?entity_type=orders", nil, "seller-1", token.RoleSeller)
	require.Equal(t, http.StatusOK, recorder.Code)
	resp = decodeBody[ListMismatchesResponse](t, recorder)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "seller-1", resp.Records[0].SellerID)

	recorder = ts.do(t, http.MethodGet, "/v1/mismatches", nil, "seller-3", token.RoleSeller)
	require.Equal(t, http.StatusOK, recorder.Code)
	resp = decodeBody[ListMismatchesResponse](t, recorder)
	assert.Zero(t, resp.Count)
	assert.Empty(t, resp.Banner)
	assert.NotNil(t, resp.Records)

	recorder = ts.do(t, http.MethodGet, "/v1/mismatches?entity_type=invoices", nil, "ops", token.RoleAdmin)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestDashboardMetrics(t *testing.T) {
	ts := newTestServer(t)
	seed(ts)

	recorder := ts.do(t, http.MethodGet, "/v1/dashboard/metrics", nil, "ops", token.RoleAdmin)
	require.Equal(t, http.StatusOK, recorder.Code)
	resp := decodeBody[DashboardMetricsResponse](t, recorder)
	assert.Equal(t, 3, resp.Orders.Total)
	assert.Equal(t, 2, resp.Orders.MismatchCount)
	assert.Equal(t, 2, resp.Returns.Total)
	assert.Equal(t, 1, resp.Returns.MismatchCount)
	assert.Equal(t, 1, resp.Malformed)
	assert.Equal(t, 3, resp.MismatchCount)
	assert.Equal(t, "5 records", resp.TotalLabel)
	assert.Equal(t, 1, resp.Orders.ByOurState[status.OrderShipped])
	assert.Nil(t, resp.LastSyncRun)

	ts.store.syncRun = &db.SyncRun{
		ID:             uuid.New(),
		Code:           "SYN-ABCDEFGHJK",
		Trigger:        string(shipmenttracking.TriggerScheduled),
		EnqueuedOrders: 12,
		CreatedAt:      time.Now().Add(-3 * time.Minute),
	}

	recorder = ts.do(t, http.MethodGet, "/v1/dashboard/metrics", nil, "seller-2", token.RoleSeller)
	require.Equal(t, http.StatusOK, recorder.Code)
	resp = decodeBody[DashboardMetricsResponse](t, recorder)
	assert.Equal(t, 1, resp.Orders.Total)
	assert.Zero(t, resp.Returns.Total)
	require.NotNil(t, resp.LastSyncRun)
	assert.Equal(t, "SYN-ABCDEFGHJK", resp.LastSyncRun.Code)
	assert.Equal(t, "3 minutes ago", resp.LastSyncRun.Age)
}

func TestMismatchTotalsBeyondListLimit(t *testing.T) {
	ts := newTestServer(t)
	total := maxListLimit + scanPageSize/2
	for i := 0; i < total; i++ {
		ts.store.addOrder("seller-1", orderShippedButDelivered)
	}
	ts.store.addReturn("seller-1", returnRefundedInTransit)

	recorder := ts.do(t, http.MethodGet, "/v1/mismatches?entity_type=orders", nil, "ops", token.RoleAdmin)
	require.Equal(t, http.StatusOK, recorder.Code)
	mismatches := decodeBody[ListMismatchesResponse](t, recorder)
	assert.Equal(t, total, mismatches.Count)
	assert.Len(t, mismatches.Records, total)
	assert.Equal(t, 3, ts.store.listCalls)
	assert.Equal(t, int32(scanPageSize), ts.store.lastLimit)

	recorder = ts.do(t, http.MethodGet, "/v1/dashboard/metrics", nil, "seller-1", token.RoleSeller)
	require.Equal(t, http.StatusOK, recorder.Code)
	metrics := decodeBody[DashboardMetricsResponse](t, recorder)
	assert.Equal(t, total, metrics.Orders.Total)
	assert.Equal(t, total, metrics.Orders.MismatchCount)
	assert.Equal(t, total+1, metrics.MismatchCount)
	assert.Equal(t, "2,501 records", metrics.TotalLabel)
}

func TestNormalizeStatus(t *testing.T) {
	ts := newTestServer(t)

	recorder := ts.do(t, http.MethodPost, "/v1/status/normalize", normalizeStatusRequest{
		EntityType: "orders",
		Status:     "OUT_FOR_DELIVERY",
	}, "seller-1", token.RoleSeller)
	require.Equal(t, http.StatusOK, recorder.Code)
	resp := decodeBody[normalizeStatusResponse](t, recorder)
	assert.Equal(t, status.EntityTypeOrder, resp.EntityType)
	assert.Equal(t, status.OrderOutForDelivery, resp.Canonical)
	assert.True(t, resp.Known)

	recorder = ts.do(t, http.MethodPost, "/v1/status/normalize", normalizeStatusRequest{
		EntityType: "return",
		Status:     "  Lost In Space ",
	}, "seller-1", token.RoleSeller)
	require.Equal(t, http.StatusOK, recorder.Code)
	resp = decodeBody[normalizeStatusResponse](t, recorder)
	assert.Equal(t, status.CanonicalState("lost in space"), resp.Canonical)
	assert.False(t, resp.Known)

	recorder = ts.do(t, http.MethodPost, "/v1/status/normalize", normalizeStatusRequest{
		EntityType: "invoice",
		Status:     "paid",
	}, "seller-1", token.RoleSeller)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = ts.do(t, http.MethodPost, "/v1/status/normalize", gin.H{"status": "paid"}, "seller-1", token.RoleSeller)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestReconcileStatus(t *testing.T) {
	ts := newTestServer(t)

	testCases := []struct {
		name     string
		req      reconcileStatusRequest
		mismatch bool
	}{
		{
			name:     "same state in different words",
			req:      reconcileStatusRequest{EntityType: "order", MarketplaceStatus: "Dispatched", OurStatus: "IN_TRANSIT"},
			mismatch: false,
		},
		{
			name:     "different states",
			req:      reconcileStatusRequest{EntityType: "order", MarketplaceStatus: "Delivered", OurStatus: "In Transit"},
			mismatch: true,
		},
		{
			name:     "our side empty",
			req:      reconcileStatusRequest{EntityType: "return", MarketplaceStatus: "Refunded", OurStatus: " "},
			mismatch: false,
		},
		{
			name:     "refund equals warehouse delivery",
			req:      reconcileStatusRequest{EntityType: "returns", MarketplaceStatus: "Refunded", OurStatus: "Delivered to warehouse"},
			mismatch: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := ts.do(t, http.MethodPost, "/v1/status/reconcile", tc.req, "seller-1", token.RoleSeller)
			require.Equal(t, http.StatusOK, recorder.Code)
			resp := decodeBody[status.Result](t, recorder)
			assert.Equal(t, tc.mismatch, resp.IsMismatch)
		})
	}

	recorder := ts.do(t, http.MethodPost, "/v1/status/reconcile", reconcileStatusRequest{EntityType: "shipment"}, "seller-1", token.RoleSeller)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = ts.do(t, http.MethodPost, "/v1/status/reconcile", reconcileStatusRequest{
		EntityType:        "order",
		MarketplaceStatus: strings.Repeat("x", 201),
	}, "seller-1", token.RoleSeller)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	resp := decodeBody[FailedValidationResponse](t, recorder)
	require.Len(t, resp.FieldViolations, 1)
	assert.Equal(t, "marketplace_status", resp.FieldViolations[0].Field)
}

func TestSyncStatus(t *testing.T) {
	ts := newTestServer(t)
	ts.syncer.result = shipmenttracking.SyncRunResult{
		Code:            "SYN-ABCDEFGHJK",
		EnqueuedOrders:  7,
		EnqueuedReturns: 2,
	}

	recorder := ts.do(t, http.MethodPost, "/v1/sync/status", nil, "seller-1", token.RoleSeller)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Empty(t, ts.syncer.triggers)

	recorder = ts.do(t, http.MethodPost, "/v1/sync/status", nil, "ops", token.RoleAdmin)
	require.Equal(t, http.StatusAccepted, recorder.Code)
	resp := decodeBody[syncStatusResponse](t, recorder)
	assert.Equal(t, "SYN-ABCDEFGHJK", resp.Code)
	assert.Equal(t, int64(9), resp.Enqueued)
	assert.Equal(t, []shipmenttracking.Trigger{shipmenttracking.TriggerManual}, ts.syncer.triggers)

	ts.syncer.err = errors.New("redis down")
	recorder = ts.do(t, http.MethodPost, "/v1/sync/status", nil, "ops", token.RoleAdmin)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestGetSyncStatus(t *testing.T) {
	ts := newTestServer(t)
	ts.inspector.stats = []worker.QueueStats{
		{Queue: worker.QueueCritical, Pending: 4},
		{Queue: worker.QueueDefault},
	}

	recorder := ts.do(t, http.MethodGet, "/v1/sync/status", nil, "ops", token.RoleAdmin)
	require.Equal(t, http.StatusOK, recorder.Code)
	resp := decodeBody[getSyncStatusResponse](t, recorder)
	assert.Nil(t, resp.LastSyncRun)
	require.Len(t, resp.Queues, 2)
	assert.Equal(t, 4, resp.Queues[0].Pending)

	ts.inspector.err = errors.New("redis down")
	recorder = ts.do(t, http.MethodGet, "/v1/sync/status", nil, "ops", token.RoleAdmin)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
