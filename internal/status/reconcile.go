package status

import (
	"fmt"
	"strings"
)

// Result is the outcome of comparing the two sides of one entity.
type Result struct {
	IsMismatch           bool           `json:"is_mismatch"`
	MarketplaceCanonical CanonicalState `json:"marketplace_canonical"`
	OurCanonical         CanonicalState `json:"our_canonical"`
}

// Reconcile decides whether the marketplace status and our status describe the
// same real-world state. With either side blank there is no opinion and no
// mismatch.
func Reconcile(entityType EntityType, marketplaceRaw, ourRaw string) Result {
	res := Result{
		MarketplaceCanonical: Normalize(entityType, marketplaceRaw),
		OurCanonical:         Normalize(entityType, ourRaw),
	}
	if res.MarketplaceCanonical == StateEmpty || res.OurCanonical == StateEmpty {
		return res
	}

	res.IsMismatch = res.MarketplaceCanonical != res.OurCanonical
	return res
}

// Row is the reconciled view of one entity, ready for a table or an export.
type Row struct {
	EntityType           EntityType      `json:"entity_type"`
	ID                   string          `json:"id"`
	DisplayID            string          `json:"display_id"`
	MarketplaceStatusRaw string          `json:"marketplace_status_raw"`
	OurStatusRaw         string          `json:"our_status_raw"`
	OurStatusSource      string          `json:"our_status_source"`
	MarketplaceCanonical CanonicalState  `json:"marketplace_canonical"`
	OurCanonical         CanonicalState  `json:"our_canonical"`
	IsMismatch           bool            `json:"is_mismatch"`
	TrackingHistory      []TrackingEvent `json:"tracking_history,omitempty"`
}

// ReconcileEntity resolves our status for e and reconciles it against the
// marketplace status.
func ReconcileEntity(e Entity) Row {
	resolution := Resolve(e)
	result := Reconcile(e.Type, e.MarketplaceStatus, resolution.Status)

	return Row{
		EntityType:           e.Type,
		ID:                   e.ID,
		DisplayID:            e.Label(),
		MarketplaceStatusRaw: strings.TrimSpace(e.MarketplaceStatus),
		OurStatusRaw:         resolution.Status,
		OurStatusSource:      resolution.Source,
		MarketplaceCanonical: result.MarketplaceCanonical,
		OurCanonical:         result.OurCanonical,
		IsMismatch:           result.IsMismatch,
		TrackingHistory:      e.TrackingHistory,
	}
}

// MismatchRecord is produced only when the canonical forms differ. It is
// recomputed on every fetch and never stored.
type MismatchRecord struct {
	EntityID             string         `json:"entity_id"`
	MarketplaceStatusRaw string         `json:"marketplace_status_raw"`
	OurStatusRaw         string         `json:"our_status_raw"`
	MarketplaceCanonical CanonicalState `json:"marketplace_canonical"`
	OurCanonical         CanonicalState `json:"our_canonical"`
}

// Mismatch converts a row into a mismatch record. ok is false when the row
// agrees.
func (r Row) Mismatch() (record MismatchRecord, ok bool) {
	if !r.IsMismatch {
		return record, false
	}

	return MismatchRecord{
		EntityID:             r.DisplayID,
		MarketplaceStatusRaw: r.MarketplaceStatusRaw,
		OurStatusRaw:         r.OurStatusRaw,
		MarketplaceCanonical: r.MarketplaceCanonical,
		OurCanonical:         r.OurCanonical,
	}, true
}

// ReconcileBatch returns the mismatching entities in input order.
func ReconcileBatch(entities []Entity) []MismatchRecord {
	records := make([]MismatchRecord, 0)
	for _, e := range entities {
		if record, ok := ReconcileEntity(e).Mismatch(); ok {
			records = append(records, record)
		}
	}
	return records
}

// Summary aggregates reconciled rows for the dashboard.
type Summary struct {
	Total         int                    `json:"total"`
	MismatchCount int                    `json:"mismatch_count"`
	ByOurState    map[CanonicalState]int `json:"by_our_state"`
	Banner        string                 `json:"banner,omitempty"`
}

// Summarize counts rows per canonical "our" state. Rows without any status are
// counted under the empty key.
func Summarize(rows []Row) Summary {
	s := Summary{
		Total:      len(rows),
		ByOurState: make(map[CanonicalState]int),
	}
	for _, row := range rows {
		s.ByOurState[row.OurCanonical]++
		if row.IsMismatch {
			s.MismatchCount++
		}
	}
	s.Banner = MismatchBanner(s.MismatchCount)
	return s
}

// MismatchBanner is the operator-facing summary line, empty when n is zero.
func MismatchBanner(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("Mismatch detected for %d records", n)
}
