package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/katatrina/sellerops-BE/internal/status"
)

type ApplyTrackingTxParams struct {
	EntityType       status.EntityType
	ID               uuid.UUID
	TrackingData     []byte
	NormalizedStatus status.CanonicalState
}

type ApplyTrackingTxResult struct {
	SellerID string        `json:"seller_id"`
	Before   status.Entity `json:"before"`
	After    status.Entity `json:"after"`
}

// ApplyTrackingTx locks the entity row, writes the latest carrier tracking
// data together with its canonical state, and returns the entity as it was
// before and after the write.
func (store *SQLStore) ApplyTrackingTx(ctx context.Context, arg ApplyTrackingTxParams) (ApplyTrackingTxResult, error) {
	var result ApplyTrackingTxResult

	err := store.ExecTx(ctx, func(qTx *Queries) error {
		var err error

		switch arg.EntityType {
		case status.EntityTypeOrder:
			var order Order
			order, err = qTx.GetOrderForUpdate(ctx, arg.ID)
			if err != nil {
				return fmt.Errorf("failed to get order %s: %w", arg.ID, err)
			}

			result.SellerID = order.SellerID
			result.Before, err = order.Entity()
			if err != nil {
				return fmt.Errorf("failed to decode order %s: %w", arg.ID, err)
			}

			order, err = qTx.UpdateOrderTracking(ctx, UpdateOrderTrackingParams{
				TrackingData:     arg.TrackingData,
				NormalizedStatus: string(arg.NormalizedStatus),
				ID:               arg.ID,
			})
			if err != nil {
				return fmt.Errorf("failed to update order tracking %s: %w", arg.ID, err)
			}

			result.After, err = order.Entity()
			if err != nil {
				return fmt.Errorf("failed to decode order %s: %w", arg.ID, err)
			}

		case status.EntityTypeReturn:
			var ret Return
			ret, err = qTx.GetReturnForUpdate(ctx, arg.ID)
			if err != nil {
				return fmt.Errorf("failed to get return %s: %w", arg.ID, err)
			}

			result.SellerID = ret.SellerID
			result.Before, err = ret.Entity()
			if err != nil {
				return fmt.Errorf("failed to decode return %s: %w", arg.ID, err)
			}

			ret, err = qTx.UpdateReturnTracking(ctx, UpdateReturnTrackingParams{
				TrackingData:     arg.TrackingData,
				NormalizedStatus: string(arg.NormalizedStatus),
				ID:               arg.ID,
			})
			if err != nil {
				return fmt.Errorf("failed to update return tracking %s: %w", arg.ID, err)
			}

			result.After, err = ret.Entity()
			if err != nil {
				return fmt.Errorf("failed to decode return %s: %w", arg.ID, err)
			}

		default:
			return status.ErrUnknownEntityType
		}

		return nil
	})

	return result, err
}
