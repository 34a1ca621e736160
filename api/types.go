package api

import (
	"time"

	db "github.com/katatrina/sellerops-BE/internal/db/sqlc"
	"github.com/katatrina/sellerops-BE/internal/status"
)

// EntityRowResponse is one reconciled order or return as shown in the list views.
type EntityRowResponse struct {
	SellerID string `json:"seller_id" example:"seller-42"`
	status.Row
	DecodeError string `json:"decode_error,omitempty"`
}

func newEntityRowResponse(r db.EntityRow, withHistory bool) EntityRowResponse {
	row := r.Row
	if !withHistory {
		row.TrackingHistory = nil
	}

	return EntityRowResponse{
		SellerID:    r.SellerID,
		Row:         row,
		DecodeError: r.DecodeError,
	}
}

type MismatchRecordResponse struct {
	EntityType status.EntityType `json:"entity_type" example:"order"`
	SellerID   string            `json:"seller_id" example:"seller-42"`
	DisplayID  string            `json:"display_id" example:"OD-1001"`
	status.MismatchRecord
}

type ListMismatchesResponse struct {
	Count   int                      `json:"count" example:"3"`
	Banner  string                   `json:"banner,omitempty" example:"Mismatch detected for 3 records"`
	Records []MismatchRecordResponse `json:"records"`
}

type SyncRunResponse struct {
	Code            string    `json:"sync_run_code" example:"SYN-7K2M9QXH4D"`
	Trigger         string    `json:"trigger" example:"manual"`
	EnqueuedOrders  int64     `json:"enqueued_orders" example:"120"`
	EnqueuedReturns int64     `json:"enqueued_returns" example:"14"`
	CreatedAt       time.Time `json:"created_at"`
	Age             string    `json:"age" example:"3 minutes ago"`
}

type DashboardMetricsResponse struct {
	Orders        status.Summary   `json:"orders"`
	Returns       status.Summary   `json:"returns"`
	Malformed     int              `json:"malformed"`
	MismatchCount int              `json:"mismatch_count"`
	Banner        string           `json:"banner,omitempty"`
	TotalLabel    string           `json:"total_label" example:"12,345 records"`
	LastSyncRun   *SyncRunResponse `json:"last_sync_run"`
}
