package delivery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/katatrina/sellerops-BE/internal/status"
)

// Delhivery reports local times without an offset.
var ist = time.FixedZone("IST", 5*60*60+30*60)

var delhiveryTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseCarrierTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range delhiveryTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, ist); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// TrackShipment polls Delhivery for a single waybill.
func (s *DelhiveryService) TrackShipment(ctx context.Context, awb string) (*TrackingResult, error) {
	awb = strings.TrimSpace(awb)
	if awb == "" {
		return nil, fmt.Errorf("%w: empty waybill", ErrShipmentNotFound)
	}

	var response delhiveryTrackResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("waybill", awb).
		SetResult(&response).
		Get("/api/v1/packages/json/")
	if err != nil {
		return nil, fmt.Errorf("error sending request: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("Delhivery API error: status code %d, body: %s", resp.StatusCode(), resp.String())
	}

	if len(response.ShipmentData) == 0 {
		return nil, fmt.Errorf("%w: waybill %s", ErrShipmentNotFound, awb)
	}

	shipment := response.ShipmentData[0].Shipment
	result := &TrackingResult{
		Carrier:  CarrierDelhivery,
		AWB:      awb,
		Status:   strings.TrimSpace(shipment.Status.Status),
		StatusAt: parseCarrierTime(shipment.Status.StatusDateTime),
		Location: strings.TrimSpace(shipment.Status.StatusLocation),
		History:  make([]status.TrackingEvent, 0, len(shipment.Scans)),
	}

	for _, scan := range shipment.Scans {
		result.History = append(result.History, status.TrackingEvent{
			Status:   strings.TrimSpace(scan.ScanDetail.Scan),
			Location: strings.TrimSpace(scan.ScanDetail.ScannedLocation),
			At:       parseCarrierTime(scan.ScanDetail.ScanDateTime),
		})
	}

	return result, nil
}
