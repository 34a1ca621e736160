package status

import (
	"strings"
	"time"
)

// TrackingEvent is one timestamped entry of a carrier's tracking history.
type TrackingEvent struct {
	Status   string    `json:"status"`
	Location string    `json:"location,omitempty"`
	At       time.Time `json:"at"`
}

// Entity is the shape the engine works on, regardless of whether it came from
// an uploaded order report or a return report.
type Entity struct {
	Type EntityType
	// ID is the internal identifier; DisplayID the human order/return number.
	ID        string
	DisplayID string

	// MarketplaceStatus is what the upstream marketplace feed reports.
	MarketplaceStatus string
	// TrackingStatus comes from a live carrier poll and is the freshest signal.
	TrackingStatus string
	// NormalizedStatus is pre-computed by the background sync job.
	NormalizedStatus string
	// DeliveryStatus is a looser backend field, orders only.
	DeliveryStatus string
	// ReturnWorkflowStatus is the raw return workflow field ("3PL Delivery Status").
	ReturnWorkflowStatus string

	CarrierAWB      string
	Carrier         string
	TrackingHistory []TrackingEvent
}

// Label returns the identifier to show operators: the human number when there
// is one, the internal ID otherwise.
func (e Entity) Label() string {
	if s := strings.TrimSpace(e.DisplayID); s != "" {
		return s
	}
	return e.ID
}

// Source is one named step of a resolution chain.
type Source struct {
	Name  string
	Value func(Entity) string
}

// Source names, in the order they are consulted.
const (
	SourceTracking   = "tracking"
	SourceNormalized = "normalized"
	SourceDelivery   = "delivery"
	SourceFallback   = "fallback"
)

// ResolutionChain is an ordered list of sources; the first one yielding a
// non-blank value decides "our status".
type ResolutionChain []Source

// Resolution is the outcome of walking a chain.
type Resolution struct {
	Status string
	Source string
}

// Resolve walks the chain. The result is empty only if every source is blank.
func (c ResolutionChain) Resolve(e Entity) Resolution {
	for _, src := range c {
		if v := strings.TrimSpace(src.Value(e)); v != "" {
			return Resolution{Status: v, Source: src.Name}
		}
	}
	return Resolution{}
}

// Fallback values produced by the return heuristic.
const (
	FallbackOrderShipped    = "shipped"
	FallbackReturnDelivered = "RETURN_DELIVERED"
	FallbackReturnInTransit = "IN_TRANSIT"
	FallbackReturnInitiated = "INITIATED"
)

var (
	orderChain = ResolutionChain{
		{Name: SourceTracking, Value: func(e Entity) string { return e.TrackingStatus }},
		{Name: SourceNormalized, Value: func(e Entity) string { return e.NormalizedStatus }},
		{Name: SourceDelivery, Value: func(e Entity) string { return e.DeliveryStatus }},
		{Name: SourceFallback, Value: orderFallback},
	}

	returnChain = ResolutionChain{
		{Name: SourceTracking, Value: func(e Entity) string { return e.TrackingStatus }},
		{Name: SourceNormalized, Value: func(e Entity) string { return e.NormalizedStatus }},
		{Name: SourceFallback, Value: returnFallback},
	}
)

// An AWB on a non-cancelled order means it left the warehouse.
func orderFallback(e Entity) string {
	marketplace := strings.TrimSpace(e.MarketplaceStatus)
	if !strings.Contains(strings.ToLower(marketplace), "cancel") && strings.TrimSpace(e.CarrierAWB) != "" {
		return FallbackOrderShipped
	}
	return marketplace
}

// The 3PL workflow field only signals warehouse delivery; otherwise the
// return's own status is used.
func returnFallback(e Entity) string {
	marketplace := strings.TrimSpace(e.MarketplaceStatus)
	switch {
	case strings.Contains(strings.ToLower(e.ReturnWorkflowStatus), "delivered"):
		return FallbackReturnDelivered
	case strings.TrimSpace(e.CarrierAWB) != "":
		return FallbackReturnInTransit
	case marketplace != "":
		return marketplace
	default:
		return FallbackReturnInitiated
	}
}

// OrderChain returns the precedence used for orders.
func OrderChain() ResolutionChain {
	return append(ResolutionChain(nil), orderChain...)
}

// ReturnChain returns the precedence used for returns.
func ReturnChain() ResolutionChain {
	return append(ResolutionChain(nil), returnChain...)
}

// ChainFor returns the chain for entityType, or nil for an unknown type.
func ChainFor(entityType EntityType) ResolutionChain {
	switch entityType {
	case EntityTypeOrder:
		return OrderChain()
	case EntityTypeReturn:
		return ReturnChain()
	default:
		return nil
	}
}

// Resolve picks our status for e and reports which source provided it.
func Resolve(e Entity) Resolution {
	switch e.Type {
	case EntityTypeReturn:
		return returnChain.Resolve(e)
	default:
		return orderChain.Resolve(e)
	}
}

// ResolveOurStatus returns the best available status for e before
// normalization: live tracking, then backend-normalized, then the delivery
// field, then the entity-specific heuristic.
func ResolveOurStatus(e Entity) string {
	return Resolve(e).Status
}
