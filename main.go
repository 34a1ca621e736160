package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/katatrina/sellerops-BE/api"
	"github.com/katatrina/sellerops-BE/internal/cache"
	db "github.com/katatrina/sellerops-BE/internal/db/sqlc"
	"github.com/katatrina/sellerops-BE/internal/delivery"
	"github.com/katatrina/sellerops-BE/internal/notification"
	shipmenttracking "github.com/katatrina/sellerops-BE/internal/shipment_tracking"
	"github.com/katatrina/sellerops-BE/internal/util"
	"github.com/katatrina/sellerops-BE/internal/worker"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"

	_ "github.com/katatrina/sellerops-BE/docs"
)

//	@title			SellerOps Status API
//	@version		1.0.0
//	@description	Order and return status reconciliation for marketplace sellers

//	@host		localhost:8080
//	@BasePath	/v1
//	@schemes	http https

// @securityDefinitions.apikey	accessToken
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configurations
	config, err := util.LoadConfig("./app.env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config file 😣")
	}

	if !config.IsProduction() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	log.Info().Str("environment", config.Environment).Msg("configurations loaded successfully ✅")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Create connection pool
	connPool, err := pgxpool.New(ctx, config.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to validate db connection string 😣")
	}
	defer connPool.Close()

	if err = connPool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to db 😣")
	}
	log.Info().Msg("connected to db ✅")

	store := db.NewStore(connPool)

	redisDb := redis.NewClient(&redis.Options{
		Addr:     config.RedisServerAddress,
		Password: "", // no password set
		DB:       0,  // use default DB
	})
	defer redisDb.Close()

	redisOpt := asynq.RedisClientOpt{
		Addr: config.RedisServerAddress,
	}

	taskDistributor := worker.NewTaskDistributor(redisOpt)
	defer taskDistributor.Close()

	taskInspector := worker.NewTaskInspector(redisOpt)
	defer taskInspector.Close()

	delhivery := delivery.NewDelhiveryService(delivery.DelhiveryOptions{
		BaseURL:    config.DelhiveryBaseURL,
		Token:      config.DelhiveryAPIToken,
		Timeout:    config.CarrierTimeout,
		RetryCount: config.CarrierRetryCount,
	})
	defer delhivery.Close()
	carriers := delivery.NewRegistry(config.DefaultCarrier, delhivery)

	notificationService := newNotificationService(ctx, config)
	defer notificationService.Close()

	alerter := newAlerter(config)

	taskProcessor := worker.NewRedisTaskProcessor(
		redisOpt,
		store,
		carriers,
		cache.NewRedisTrackingCache(redisDb),
		config.TrackingCacheTTL,
		notificationService,
		taskDistributor,
	)
	if err = taskProcessor.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start task processor 😣")
	}
	defer taskProcessor.Shutdown()
	log.Info().Msg("task processor started ✅")

	tracker, err := shipmenttracking.NewShipmentTracker(store, taskDistributor, alerter, shipmenttracking.Options{
		SyncInterval:    config.SyncInterval,
		SummaryInterval: config.MismatchSummaryInterval,
		BatchSize:       config.SyncBatchSize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create shipment tracker 😣")
	}
	if err = tracker.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start shipment tracker 😣")
	}
	defer func() {
		if err := tracker.Stop(); err != nil {
			log.Error().Err(err).Msg("failed to stop shipment tracker")
		}
	}()
	log.Info().Dur("interval", config.SyncInterval).Msg("shipment tracker started ✅")

	runHTTPServer(ctx, config, store, tracker, taskInspector)
}

func newNotificationService(ctx context.Context, config util.Config) *notification.NotificationService {
	var opts []option.ClientOption
	if config.FirebaseCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(config.FirebaseCredentialsFile))
	}

	firebaseApp, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize firebase app 😣")
	}

	notificationService, err := notification.NewNotificationService(ctx, firebaseApp)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create notification service 😣")
	}

	return notificationService
}

// newAlerter falls back to a no-op when no Discord channel is configured.
func newAlerter(config util.Config) notification.Alerter {
	if config.DiscordBotToken == "" || config.DiscordChannelID == "" {
		log.Warn().Msg("discord alerts disabled")
		return notification.NoopAlerter{}
	}

	alerter, err := notification.NewDiscordAlerter(config.DiscordBotToken, config.DiscordChannelID)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create discord alerter 😣")
	}
	return alerter
}

func runHTTPServer(ctx context.Context, config util.Config, store db.Store, syncer api.StatusSyncer, inspector worker.TaskInspector) {
	server, err := api.NewServer(store, syncer, inspector, &config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create HTTP server 😣")
	}

	httpServer := &http.Server{
		Addr:    config.HTTPServerAddress,
		Handler: server.Handler(),
	}

	go func() {
		log.Info().Str("address", config.HTTPServerAddress).Msg("HTTP server started ✅")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start HTTP server 😣")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shut down HTTP server gracefully")
	}
}
