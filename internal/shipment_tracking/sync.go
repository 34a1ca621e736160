package shipmenttracking

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	db "github.com/katatrina/sellerops-BE/internal/db/sqlc"
	"github.com/katatrina/sellerops-BE/internal/status"
	"github.com/katatrina/sellerops-BE/internal/util"
	"github.com/katatrina/sellerops-BE/internal/worker"
	"github.com/rs/zerolog/log"
)

const (
	defaultBatchSize       = 200
	syncMaxRetry           = 3
	maxSyncRunCodeAttempts = 5
)

type Trigger string

const (
	TriggerScheduled Trigger = "scheduled"
	TriggerManual    Trigger = "manual"
)

type SyncRunResult struct {
	Code            string  `json:"sync_run_code"`
	Trigger         Trigger `json:"trigger"`
	EnqueuedOrders  int64   `json:"enqueued_orders"`
	EnqueuedReturns int64   `json:"enqueued_returns"`
}

func (r SyncRunResult) Enqueued() int64 {
	return r.EnqueuedOrders + r.EnqueuedReturns
}

// SyncAll enqueues one carrier poll per open order and return with a waybill.
// The sync run is recorded first so every task carries a code that is already
// unique. Manual runs go to the critical queue so they are not stuck behind the
// scheduled backlog. A failed enqueue is logged and the run continues.
func (t *ShipmentTracker) SyncAll(ctx context.Context, trigger Trigger) (SyncRunResult, error) {
	result := SyncRunResult{Trigger: trigger}

	run, err := t.createSyncRun(ctx, trigger)
	if err != nil {
		return result, err
	}
	result.Code = run.Code

	queue := worker.QueueDefault
	if trigger == TriggerManual {
		queue = worker.QueueCritical
	}
	opts := []asynq.Option{
		asynq.Queue(queue),
		asynq.MaxRetry(syncMaxRetry),
	}

	orders, err := t.store.ListTrackableOrders(ctx, t.options.BatchSize)
	if err != nil {
		return result, fmt.Errorf("failed to list trackable orders: %w", err)
	}
	for _, order := range orders {
		if t.enqueue(ctx, status.EntityTypeOrder, order.ID, result.Code, opts) {
			result.EnqueuedOrders++
		}
	}

	returns, err := t.store.ListTrackableReturns(ctx, t.options.BatchSize)
	if err != nil {
		return result, fmt.Errorf("failed to list trackable returns: %w", err)
	}
	for _, ret := range returns {
		if t.enqueue(ctx, status.EntityTypeReturn, ret.ID, result.Code, opts) {
			result.EnqueuedReturns++
		}
	}

	_, err = t.store.UpdateSyncRunCounts(ctx, db.UpdateSyncRunCountsParams{
		ID:              run.ID,
		EnqueuedOrders:  result.EnqueuedOrders,
		EnqueuedReturns: result.EnqueuedReturns,
	})
	if err != nil {
		return result, fmt.Errorf("failed to record sync run counts: %w", err)
	}

	log.Info().
		Str("sync_run_code", result.Code).
		Str("trigger", string(trigger)).
		Int64("enqueued_orders", result.EnqueuedOrders).
		Int64("enqueued_returns", result.EnqueuedReturns).
		Msg("sync run recorded")

	return result, nil
}

// createSyncRun inserts a sync run under a fresh SYN- code, drawing a new code
// when the previous one is already taken.
func (t *ShipmentTracker) createSyncRun(ctx context.Context, trigger Trigger) (db.SyncRun, error) {
	for attempt := 1; ; attempt++ {
		run, err := t.store.CreateSyncRun(ctx, db.CreateSyncRunParams{
			ID:      uuid.New(),
			Code:    util.GenerateSyncRunCode(),
			Trigger: string(trigger),
		})
		if err == nil {
			return run, nil
		}

		errCode, constraintName := db.ErrorDescription(err)
		if errCode != db.UniqueViolationCode || constraintName != db.UniqueSyncRunCodeConstraint {
			return db.SyncRun{}, fmt.Errorf("failed to record sync run: %w", err)
		}
		if attempt == maxSyncRunCodeAttempts {
			return db.SyncRun{}, fmt.Errorf("failed to generate a unique sync run code after %d attempts: %w", attempt, err)
		}

		log.Warn().Int("attempt", attempt).Msg("sync run code already taken, regenerating")
	}
}

func (t *ShipmentTracker) enqueue(ctx context.Context, entityType status.EntityType, id uuid.UUID, code string, opts []asynq.Option) bool {
	err := t.taskDistributor.DistributeTaskSyncShipment(ctx, &worker.PayloadSyncShipment{
		EntityType:  entityType,
		EntityID:    id,
		SyncRunCode: code,
	}, opts...)
	if err != nil {
		log.Error().
			Err(err).
			Str("entity_type", string(entityType)).
			Str("entity_id", id.String()).
			Str("sync_run_code", code).
			Msg("failed to enqueue shipment sync")
		return false
	}
	return true
}
