package db

import (
	"time"

	"github.com/katatrina/sellerops-BE/internal/status"
)

// TrackingData is the trackingData sub-document written after a carrier poll.
type TrackingData struct {
	Status    string                 `json:"status"`
	Location  string                 `json:"location,omitempty"`
	History   []status.TrackingEvent `json:"history"`
	UpdatedAt time.Time              `json:"updatedAt"`
}
