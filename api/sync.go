package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	db "github.com/katatrina/sellerops-BE/internal/db/sqlc"
	shipmenttracking "github.com/katatrina/sellerops-BE/internal/shipment_tracking"
	"github.com/katatrina/sellerops-BE/internal/worker"
	"github.com/rs/zerolog/log"
)

type syncStatusResponse struct {
	Code            string `json:"sync_run_code" example:"SYN-7K2M9QXH4D"`
	Enqueued        int64  `json:"enqueued" example:"134"`
	EnqueuedOrders  int64  `json:"enqueued_orders" example:"120"`
	EnqueuedReturns int64  `json:"enqueued_returns" example:"14"`
}

// @Summary		Sync status
// @Description	Enqueues a carrier poll for every open order and return. The sync runs in the background
// @Tags			sync
// @Produce		json
// @Success		202	{object}	syncStatusResponse	"Sync run enqueued"
// @Failure		401	{object}	gin.H				"Unauthorized"
// @Failure		403	{object}	gin.H				"Requires admin role"
// @Failure		500	{object}	gin.H				"Internal server error"
// @Security		accessToken
// @Router			/sync/status [post]
func (server *Server) syncStatus(ctx *gin.Context) {
	result, err := server.statusSyncer.SyncAll(ctx, shipmenttracking.TriggerManual)
	if err != nil {
		log.Error().Err(err).Str("sync_run_code", result.Code).Msg("failed to start sync run")
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusAccepted, syncStatusResponse{
		Code:            result.Code,
		Enqueued:        result.Enqueued(),
		EnqueuedOrders:  result.EnqueuedOrders,
		EnqueuedReturns: result.EnqueuedReturns,
	})
}

type getSyncStatusResponse struct {
	LastSyncRun *SyncRunResponse    `json:"last_sync_run"`
	Queues      []worker.QueueStats `json:"queues"`
}

// @Summary		Sync progress
// @Description	Returns the latest sync run and the state of the sync task queues
// @Tags			sync
// @Produce		json
// @Success		200	{object}	getSyncStatusResponse
// @Failure		403	{object}	gin.H	"Requires admin role"
// @Failure		500	{object}	gin.H	"Internal server error"
// @Security		accessToken
// @Router			/sync/status [get]
func (server *Server) getSyncStatus(ctx *gin.Context) {
	var resp getSyncStatusResponse

	syncRun, err := server.dbStore.GetLatestSyncRun(ctx)
	if err != nil && !errors.Is(err, db.ErrRecordNotFound) {
		log.Error().Err(err).Msg("failed to get latest sync run")
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	if err == nil {
		resp.LastSyncRun = newSyncRunResponse(syncRun)
	}

	resp.Queues, err = server.taskInspector.QueueStats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to inspect task queues")
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
