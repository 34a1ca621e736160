package db

import (
	"github.com/katatrina/sellerops-BE/internal/status"
)

// Entity decodes the stored order document. The row id replaces whatever
// identifier the uploaded document carried, and the order_number column
// fills in a missing display id.
func (o Order) Entity() (status.Entity, error) {
	e, err := status.DecodeJSON(status.EntityTypeOrder, o.Document)
	e.Type = status.EntityTypeOrder
	e.ID = o.ID.String()
	if e.DisplayID == "" && o.OrderNumber != nil {
		e.DisplayID = *o.OrderNumber
	}
	return e, err
}

func (r Return) Entity() (status.Entity, error) {
	e, err := status.DecodeJSON(status.EntityTypeReturn, r.Document)
	e.Type = status.EntityTypeReturn
	e.ID = r.ID.String()
	if e.DisplayID == "" && r.ReturnNumber != nil {
		e.DisplayID = *r.ReturnNumber
	}
	return e, err
}
