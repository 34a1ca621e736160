package worker

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"github.com/katatrina/sellerops-BE/internal/cache"
	db "github.com/katatrina/sellerops-BE/internal/db/sqlc"
	"github.com/katatrina/sellerops-BE/internal/delivery"
	"github.com/katatrina/sellerops-BE/internal/notification"
	"github.com/rs/zerolog/log"
)

/*
 This file contains code that will pick up the tasks from the Redis queue and process them.
*/

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
)

// CarrierRegistry resolves the tracking provider for a carrier name.
type CarrierRegistry interface {
	Provider(carrier string) (delivery.TrackingProvider, error)
}

type RedisTaskProcessor struct {
	server        *asynq.Server
	store         db.Store
	carriers      CarrierRegistry
	trackingCache cache.TrackingCache
	cacheTTL      time.Duration
	notifier      notification.Sender
	distributor   TaskDistributor
}

func NewRedisTaskProcessor(
	redisOpt asynq.RedisClientOpt,
	store db.Store,
	carriers CarrierRegistry,
	trackingCache cache.TrackingCache,
	cacheTTL time.Duration,
	notifier notification.Sender,
	distributor TaskDistributor,
) *RedisTaskProcessor {
	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Queues: map[string]int{
				QueueCritical: 10,
				QueueDefault:  5,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).
					Bytes("payload", task.Payload()).Msg("process task failed")
			}),
			Logger: NewLogger(),
		},
	)

	return &RedisTaskProcessor{
		server:        server,
		store:         store,
		carriers:      carriers,
		trackingCache: trackingCache,
		cacheTTL:      cacheTTL,
		notifier:      notifier,
		distributor:   distributor,
	}
}

// Start registers the task handlers for the mux, attaches the mux to the asynq server, and starts the server.
func (processor *RedisTaskProcessor) Start() error {
	mux := asynq.NewServeMux()

	mux.HandleFunc(TaskSyncShipment, processor.ProcessTaskSyncShipment)
	mux.HandleFunc(TaskSendNotification, processor.ProcessTaskSendNotification)

	return processor.server.Start(mux)
}

// Shutdown waits for in-flight tasks and stops the server.
func (processor *RedisTaskProcessor) Shutdown() {
	processor.server.Shutdown()
}
