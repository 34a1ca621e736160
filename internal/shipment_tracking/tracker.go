package shipmenttracking

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	db "github.com/katatrina/sellerops-BE/internal/db/sqlc"
	"github.com/katatrina/sellerops-BE/internal/notification"
	"github.com/katatrina/sellerops-BE/internal/worker"
	"github.com/rs/zerolog/log"
)

type Options struct {
	SyncInterval    time.Duration
	SummaryInterval time.Duration
	BatchSize       int32
}

// ShipmentTracker periodically polls carriers for every open order and return
// and reports reconciliation mismatches to the ops channel.
type ShipmentTracker struct {
	store           db.Store
	taskDistributor worker.TaskDistributor
	alerter         notification.Alerter
	scheduler       gocron.Scheduler
	options         Options
}

func NewShipmentTracker(store db.Store, taskDistributor worker.TaskDistributor, alerter notification.Alerter, options Options) (*ShipmentTracker, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	if options.BatchSize <= 0 {
		options.BatchSize = defaultBatchSize
	}

	return &ShipmentTracker{
		store:           store,
		taskDistributor: taskDistributor,
		alerter:         alerter,
		scheduler:       scheduler,
		options:         options,
	}, nil
}

// Start registers the sync and summary jobs and starts the scheduler.
func (t *ShipmentTracker) Start() error {
	_, err := t.scheduler.NewJob(
		gocron.DurationJob(t.options.SyncInterval),
		gocron.NewTask(
			func() {
				result, err := t.SyncAll(context.Background(), TriggerScheduled)
				if err != nil {
					log.Error().Err(err).Str("job", "sync_shipments").Msg("scheduled shipment sync failed")
					return
				}

				log.Info().
					Str("job", "sync_shipments").
					Str("sync_run_code", result.Code).
					Int64("enqueued", result.Enqueued()).
					Msg("scheduled shipment sync enqueued")
			},
		),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	_, err = t.scheduler.NewJob(
		gocron.DurationJob(t.options.SummaryInterval),
		gocron.NewTask(
			func() {
				log.Info().
					Str("job", "mismatch_summary").
					Time("start_time", time.Now()).
					Msg("Starting mismatch summary job")

				if _, err := t.PostMismatchSummary(context.Background()); err != nil {
					log.Error().Err(err).Str("job", "mismatch_summary").Msg("mismatch summary failed")
				}
			},
		),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	t.scheduler.Start()
	return nil
}

// Stop shuts the scheduler down.
func (t *ShipmentTracker) Stop() error {
	return t.scheduler.Shutdown()
}
