package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	db "github.com/katatrina/sellerops-BE/internal/db/sqlc"
	shipmenttracking "github.com/katatrina/sellerops-BE/internal/shipment_tracking"
	"github.com/katatrina/sellerops-BE/internal/token"
	"github.com/katatrina/sellerops-BE/internal/util"
	"github.com/katatrina/sellerops-BE/internal/worker"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// StatusSyncer starts a carrier sync run for every open order and return.
type StatusSyncer interface {
	SyncAll(ctx context.Context, trigger shipmenttracking.Trigger) (shipmenttracking.SyncRunResult, error)
}

type Server struct {
	router        *gin.Engine
	dbStore       db.Store
	tokenMaker    token.Maker
	config        *util.Config
	statusSyncer  StatusSyncer
	taskInspector worker.TaskInspector
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(store db.Store, statusSyncer StatusSyncer, taskInspector worker.TaskInspector, config *util.Config) (*Server, error) {
	// Create a new JWT token maker
	tokenMaker, err := token.NewJWTMaker(config.TokenSecretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create token maker: %w", err)
	}
	log.Info().Msg("Token maker created successfully ✅")

	server := &Server{
		dbStore:       store,
		tokenMaker:    tokenMaker,
		config:        config,
		statusSyncer:  statusSyncer,
		taskInspector: taskInspector,
	}

	server.setupRouter()
	return server, nil
}

// setupRouter configures the HTTP server routes.
func (server *Server) setupRouter() *gin.Engine {
	if !server.config.IsProduction() {
		gin.ForceConsoleColor()
	}
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     server.config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	v1 := router.Group("/v1")

	v1.GET("/health", server.healthCheck)
	v1.POST("/tokens/verify", server.verifyAccessToken)

	authGroup := v1.Group("", authMiddleware(server.tokenMaker))
	{
		orderGroup := authGroup.Group("/orders")
		{
			orderGroup.GET("", server.listOrders)              // Danh sách đơn hàng đã đối soát
			orderGroup.GET(":orderID", server.getOrderDetails) // Chi tiết một đơn hàng kèm lịch sử vận chuyển
		}

		returnGroup := authGroup.Group("/returns")
		{
			returnGroup.GET("", server.listReturns)
			returnGroup.GET(":returnID", server.getReturnDetails)
		}

		authGroup.GET("/mismatches", server.listMismatches)
		authGroup.GET("/dashboard/metrics", server.getDashboardMetrics)

		statusGroup := authGroup.Group("/status")
		{
			statusGroup.POST("/normalize", server.normalizeStatus)
			statusGroup.POST("/reconcile", server.reconcileStatus)
		}

		syncGroup := authGroup.Group("/sync", requiredAdminRole())
		{
			syncGroup.POST("/status", server.syncStatus)
			syncGroup.GET("/status", server.getSyncStatus)
		}
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	server.router = router
	return router
}

// Handler exposes the router for use with a custom http.Server.
func (server *Server) Handler() http.Handler {
	return server.router
}

// @Summary		Health check
// @Description	Reports whether the database is reachable
// @Tags			system
// @Produce		json
// @Success		200	{object}	gin.H	"Service is healthy"
// @Failure		503	{object}	gin.H	"Database unreachable"
// @Router			/health [get]
func (server *Server) healthCheck(ctx *gin.Context) {
	if err := server.dbStore.Ping(ctx); err != nil {
		log.Error().Err(err).Msg("database ping failed")
		ctx.JSON(http.StatusServiceUnavailable, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
