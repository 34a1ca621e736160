package delivery

import (
	"time"

	"github.com/katatrina/sellerops-BE/internal/status"
)

// TrackingResult is the carrier-agnostic outcome of a tracking poll.
type TrackingResult struct {
	Carrier  string                 `json:"carrier"`
	AWB      string                 `json:"awb"`
	Status   string                 `json:"status"`
	StatusAt time.Time              `json:"status_at"`
	Location string                 `json:"location,omitempty"`
	History  []status.TrackingEvent `json:"history"`
}

// Delhivery's packages/json response. Only the fields we read are declared.
type delhiveryTrackResponse struct {
	ShipmentData []struct {
		Shipment struct {
			AWB    string `json:"AWB"`
			Status struct {
				Status         string `json:"Status"`
				StatusType     string `json:"StatusType"`
				StatusDateTime string `json:"StatusDateTime"`
				StatusLocation string `json:"StatusLocation"`
			} `json:"Status"`
			Scans []struct {
				ScanDetail struct {
					Scan            string `json:"Scan"`
					ScanDateTime    string `json:"ScanDateTime"`
					ScannedLocation string `json:"ScannedLocation"`
				} `json:"ScanDetail"`
			} `json:"Scans"`
		} `json:"Shipment"`
	} `json:"ShipmentData"`
	Error string `json:"Error"`
}
