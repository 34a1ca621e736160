package db

import (
	"context"
	"fmt"

	"github.com/katatrina/sellerops-BE/internal/status"
)

// EntityRow is a reconciled order or return together with its owner. Rows
// whose document cannot be decoded carry DecodeError and are never reported
// as mismatches.
type EntityRow struct {
	SellerID    string     `json:"seller_id"`
	Row         status.Row `json:"row"`
	DecodeError string     `json:"decode_error,omitempty"`
}

func newEntityRow(sellerID string, e status.Entity, err error) EntityRow {
	if err != nil {
		return EntityRow{
			SellerID: sellerID,
			Row: status.Row{
				EntityType: e.Type,
				ID:         e.ID,
				DisplayID:  e.Label(),
			},
			DecodeError: err.Error(),
		}
	}

	return EntityRow{
		SellerID: sellerID,
		Row:      status.ReconcileEntity(e),
	}
}

func OrderRow(order Order) EntityRow {
	e, err := order.Entity()
	return newEntityRow(order.SellerID, e, err)
}

func ReturnRow(ret Return) EntityRow {
	e, err := ret.Entity()
	return newEntityRow(ret.SellerID, e, err)
}

// ListOrderRows loads and reconciles orders, newest first. A nil sellerID
// lists every seller.
func ListOrderRows(ctx context.Context, q Querier, sellerID *string, limit int32) ([]EntityRow, error) {
	orders, err := q.ListOrders(ctx, ListOrdersParams{
		SellerID: sellerID,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	rows := make([]EntityRow, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, OrderRow(order))
	}
	return rows, nil
}

// ListReturnRows loads and reconciles returns, newest first.
func ListReturnRows(ctx context.Context, q Querier, sellerID *string, limit int32) ([]EntityRow, error) {
	returns, err := q.ListReturns(ctx, ListReturnsParams{
		SellerID: sellerID,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	rows := make([]EntityRow, 0, len(returns))
	for _, ret := range returns {
		rows = append(rows, ReturnRow(ret))
	}
	return rows, nil
}

// ScanOrderRows reconciles every order, reading pageSize rows at a time
// until a short page comes back.
func ScanOrderRows(ctx context.Context, q Querier, sellerID *string, pageSize int32) ([]EntityRow, error) {
	return scanPages(pageSize, func(offset int32) ([]Order, error) {
		return q.ListOrders(ctx, ListOrdersParams{
			SellerID: sellerID,
			Limit:    pageSize,
			Offset:   offset,
		})
	}, OrderRow)
}

// ScanReturnRows reconciles every return, reading pageSize rows at a time.
func ScanReturnRows(ctx context.Context, q Querier, sellerID *string, pageSize int32) ([]EntityRow, error) {
	return scanPages(pageSize, func(offset int32) ([]Return, error) {
		return q.ListReturns(ctx, ListReturnsParams{
			SellerID: sellerID,
			Limit:    pageSize,
			Offset:   offset,
		})
	}, ReturnRow)
}

func scanPages[T any](pageSize int32, list func(offset int32) ([]T, error), toRow func(T) EntityRow) ([]EntityRow, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("page size must be positive, got %d", pageSize)
	}

	var rows []EntityRow
	var offset int32
	for {
		page, err := list(offset)
		if err != nil {
			return nil, err
		}
		for _, item := range page {
			rows = append(rows, toRow(item))
		}
		if int32(len(page)) < pageSize {
			return rows, nil
		}
		offset += pageSize
	}
}

// StatusRows drops rows that failed to decode and returns the rest.
func StatusRows(rows []EntityRow) (valid []status.Row, malformed int) {
	valid = make([]status.Row, 0, len(rows))
	for _, r := range rows {
		if r.DecodeError != "" {
			malformed++
			continue
		}
		valid = append(valid, r.Row)
	}
	return valid, malformed
}
