package status

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Document fields read from uploaded order and return records.
const (
	FieldID                = "_id"
	FieldAltID             = "id"
	FieldCarrier           = "carrier"
	FieldMarketplaceStatus = "status"
	FieldTrackingData      = "trackingData"
	FieldTrackingStatus    = "status"
	FieldTrackingHistory   = "history"

	FieldOrderNumber      = "orderNumber"
	FieldAltOrderNumber   = "order_id"
	FieldNormalizedStatus = "normalizedStatus"
	FieldDeliveryStatus   = "deliveryStatus"
	FieldForwardAWB       = "fwdAwb"

	FieldReturnNumber    = "returnId"
	FieldAltReturnNumber = "return_id"
	FieldNormalized      = "normalized"
	FieldReturnWorkflow  = "3PL Delivery Status"
	FieldTrackingNumber  = "tracking_number"
)

// DecodeOrder builds an order entity from a loosely typed document. Missing
// and null fields decode to empty strings; a status field holding a number,
// object or bool is reported as a *MalformedEntityError.
func DecodeOrder(doc map[string]any) (Entity, error) {
	d := decoder{doc: doc}
	e := Entity{
		Type:              EntityTypeOrder,
		ID:                d.id(FieldID, FieldAltID),
		DisplayID:         d.id(FieldOrderNumber, FieldAltOrderNumber),
		MarketplaceStatus: d.str(FieldMarketplaceStatus),
		TrackingStatus:    d.str(FieldTrackingData, FieldTrackingStatus),
		NormalizedStatus:  d.str(FieldNormalizedStatus),
		DeliveryStatus:    d.str(FieldDeliveryStatus),
		CarrierAWB:        d.id(FieldForwardAWB),
		Carrier:           d.str(FieldCarrier),
		TrackingHistory:   d.history(),
	}
	return e, d.err
}

// DecodeReturn builds a return entity from a loosely typed document.
func DecodeReturn(doc map[string]any) (Entity, error) {
	d := decoder{doc: doc}
	e := Entity{
		Type:                 EntityTypeReturn,
		ID:                   d.id(FieldID, FieldAltID),
		DisplayID:            d.id(FieldReturnNumber, FieldAltReturnNumber),
		MarketplaceStatus:    d.str(FieldMarketplaceStatus),
		TrackingStatus:       d.str(FieldTrackingData, FieldTrackingStatus),
		NormalizedStatus:     d.str(FieldNormalized, FieldTrackingStatus),
		ReturnWorkflowStatus: d.str(FieldReturnWorkflow),
		CarrierAWB:           d.id(FieldTrackingNumber),
		Carrier:              d.str(FieldCarrier),
		TrackingHistory:      d.history(),
	}
	return e, d.err
}

// Decode dispatches on entityType.
func Decode(entityType EntityType, doc map[string]any) (Entity, error) {
	switch entityType {
	case EntityTypeOrder:
		return DecodeOrder(doc)
	case EntityTypeReturn:
		return DecodeReturn(doc)
	default:
		return Entity{}, ErrUnknownEntityType
	}
}

// DecodeJSON unmarshals raw and decodes it as entityType.
func DecodeJSON(entityType EntityType, raw []byte) (Entity, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Entity{}, &MalformedEntityError{Field: "$", Kind: "invalid json"}
	}
	return Decode(entityType, doc)
}

// decoder keeps the first error so a document decodes in a single pass.
type decoder struct {
	doc map[string]any
	err error
}

func (d *decoder) fail(field string, v any) {
	if d.err == nil {
		d.err = &MalformedEntityError{Field: field, Kind: kindOf(v)}
	}
}

func (d *decoder) lookup(path ...string) (any, bool) {
	var cur any = d.doc
	for i, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			if cur != nil {
				d.fail(strings.Join(path[:i], "."), cur)
			}
			return nil, false
		}
		cur, ok = m[key]
		if !ok || cur == nil {
			return nil, false
		}
	}
	return cur, true
}

func (d *decoder) str(path ...string) string {
	v, ok := d.lookup(path...)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		d.fail(strings.Join(path, "."), v)
		return ""
	}
	return s
}

// id accepts strings and JSON numbers; the first present key wins.
func (d *decoder) id(keys ...string) string {
	for _, key := range keys {
		v, ok := d.lookup(key)
		if !ok {
			continue
		}
		switch x := v.(type) {
		case string:
			if x != "" {
				return x
			}
		case float64:
			return strconv.FormatFloat(x, 'f', -1, 64)
		case json.Number:
			return x.String()
		default:
			d.fail(key, v)
			return ""
		}
	}
	return ""
}

func (d *decoder) history() []TrackingEvent {
	v, ok := d.lookup(FieldTrackingData, FieldTrackingHistory)
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		d.fail(FieldTrackingData+"."+FieldTrackingHistory, v)
		return nil
	}

	events := make([]TrackingEvent, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			d.fail(FieldTrackingData+"."+FieldTrackingHistory, item)
			return nil
		}
		sub := decoder{doc: m}
		ev := TrackingEvent{
			Status:   sub.str("status"),
			Location: sub.str("location"),
		}
		if at := sub.str("at"); at != "" {
			ev.At = parseEventTime(at)
		}
		if sub.err != nil && d.err == nil {
			d.err = sub.err
		}
		events = append(events, ev)
	}
	return events
}

// Layouts accepted for tracking history timestamps. Values without an offset
// are read as UTC.
var eventTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// parseEventTime returns the zero time when no layout matches.
func parseEventTime(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range eventTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case float64, json.Number, int, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	case string:
		return "string"
	default:
		return "unknown"
	}
}
