package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/katatrina/sellerops-BE/internal/cache"
	db "github.com/katatrina/sellerops-BE/internal/db/sqlc"
	"github.com/katatrina/sellerops-BE/internal/delivery"
	"github.com/katatrina/sellerops-BE/internal/notification"
	"github.com/katatrina/sellerops-BE/internal/status"
	"github.com/rs/zerolog/log"
)

type PayloadSyncShipment struct {
	EntityType  status.EntityType `json:"entity_type"`
	EntityID    uuid.UUID         `json:"entity_id"`
	SyncRunCode string            `json:"sync_run_code"`
}

// DistributeTaskSyncShipment enqueues a carrier poll for one order or return.
// The task id is unique per sync run, so a second run may poll the same
// entity again while a duplicate within one run is dropped.
func (distributor *RedisTaskDistributor) DistributeTaskSyncShipment(
	ctx context.Context,
	payload *PayloadSyncShipment,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	taskID := fmt.Sprintf("%s:%s:%s:%s", TaskSyncShipment, payload.EntityType, payload.EntityID, payload.SyncRunCode)
	task := asynq.NewTask(TaskSyncShipment, jsonPayload, append(opts, asynq.TaskID(taskID))...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			log.Debug().Str("task_id", taskID).Msg("shipment sync already enqueued for this run")
			return nil
		}
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	log.Info().
		Str("type", task.Type()).
		Str("task_id", taskID).
		Str("entity_type", string(payload.EntityType)).
		Str("entity_id", payload.EntityID.String()).
		Str("queue", info.Queue).
		Int("max_retry", info.MaxRetry).
		Msg("shipment sync task enqueued")

	return nil
}

// ProcessTaskSyncShipment polls the carrier for the entity's waybill, stores
// the result as trackingData and notifies the seller when the new tracking
// status opens a mismatch against the marketplace.
func (processor *RedisTaskProcessor) ProcessTaskSyncShipment(
	ctx context.Context,
	task *asynq.Task,
) error {
	var payload PayloadSyncShipment
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	entityType, err := status.ParseEntityType(string(payload.EntityType))
	if err != nil {
		return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
	}

	logger := log.With().
		Str("entity_type", string(entityType)).
		Str("entity_id", payload.EntityID.String()).
		Str("sync_run_code", payload.SyncRunCode).
		Logger()

	entity, err := processor.loadEntity(ctx, entityType, payload.EntityID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			logger.Info().Msg("entity not found, skipping task")
			return nil
		}
		if errors.Is(err, status.ErrMalformedEntity) {
			return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
		}
		return err
	}

	if entity.CarrierAWB == "" {
		logger.Info().Msg("entity has no waybill, skipping task")
		return nil
	}

	current := status.Normalize(entityType, entity.NormalizedStatus)
	if status.IsTerminal(entityType, current) {
		logger.Info().Str("state", string(current)).Msg("entity already in a terminal state, skipping task")
		return nil
	}

	result, err := processor.track(ctx, entity)
	if err != nil {
		if errors.Is(err, delivery.ErrUnsupportedCarrier) || errors.Is(err, delivery.ErrShipmentNotFound) {
			logger.Warn().Err(err).Str("carrier", entity.Carrier).Str("awb", entity.CarrierAWB).Msg("shipment cannot be tracked")
			return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
		}
		return err
	}

	if result.Status == "" {
		logger.Info().Str("awb", entity.CarrierAWB).Msg("carrier returned no status yet")
		return nil
	}

	trackingData, err := json.Marshal(db.TrackingData{
		Status:    result.Status,
		Location:  result.Location,
		History:   result.History,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal tracking data: %w", err)
	}

	next := status.Normalize(entityType, result.Status)
	applied, err := processor.store.ApplyTrackingTx(ctx, db.ApplyTrackingTxParams{
		EntityType:       entityType,
		ID:               payload.EntityID,
		TrackingData:     trackingData,
		NormalizedStatus: next,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			logger.Info().Msg("entity deleted during sync, skipping task")
			return nil
		}
		return fmt.Errorf("failed to apply tracking: %w", err)
	}

	previous := status.Normalize(entityType, applied.Before.NormalizedStatus)
	if err = status.ValidateTransition(entityType, previous, next); err != nil {
		logger.Warn().Err(err).Msg("carrier reported an unexpected transition")
	}

	before := status.ReconcileEntity(applied.Before)
	after := status.ReconcileEntity(applied.After)
	if after.IsMismatch && !before.IsMismatch {
		n := notification.NewMismatchNotification(applied.SellerID, after)
		err = processor.distributor.DistributeTaskSendNotification(ctx, &PayloadSendNotification{
			RecipientID: n.RecipientID,
			Title:       n.Title,
			Message:     n.Message,
			Type:        n.Type,
			ReferenceID: n.ReferenceID,
		}, asynq.Queue(QueueDefault), asynq.MaxRetry(3))
		if err != nil {
			logger.Error().Err(err).Msg("failed to enqueue mismatch notification")
		}
	}

	logger.Info().
		Str("carrier_status", result.Status).
		Str("state", string(next)).
		Bool("mismatch", after.IsMismatch).
		Msg("task processed")

	return nil
}

func (processor *RedisTaskProcessor) loadEntity(ctx context.Context, entityType status.EntityType, id uuid.UUID) (status.Entity, error) {
	switch entityType {
	case status.EntityTypeOrder:
		order, err := processor.store.GetOrderByID(ctx, id)
		if err != nil {
			return status.Entity{}, err
		}
		return order.Entity()
	case status.EntityTypeReturn:
		ret, err := processor.store.GetReturnByID(ctx, id)
		if err != nil {
			return status.Entity{}, err
		}
		return ret.Entity()
	default:
		return status.Entity{}, status.ErrUnknownEntityType
	}
}

// track serves the poll from the tracking cache when it can. Cache failures
// fall through to the carrier.
func (processor *RedisTaskProcessor) track(ctx context.Context, entity status.Entity) (*delivery.TrackingResult, error) {
	provider, err := processor.carriers.Provider(entity.Carrier)
	if err != nil {
		return nil, err
	}

	result, err := processor.trackingCache.Get(ctx, provider.Name(), entity.CarrierAWB)
	if err == nil {
		return result, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		log.Warn().Err(err).Str("awb", entity.CarrierAWB).Msg("tracking cache unavailable")
	}

	result, err = provider.TrackShipment(ctx, entity.CarrierAWB)
	if err != nil {
		return nil, err
	}

	if err = processor.trackingCache.Set(ctx, result, processor.cacheTTL); err != nil {
		log.Warn().Err(err).Str("awb", entity.CarrierAWB).Msg("failed to cache tracking result")
	}

	return result, nil
}
