package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	db "github.com/katatrina/sellerops-BE/internal/db/sqlc"
	"github.com/katatrina/sellerops-BE/internal/status"
	"github.com/rs/zerolog/log"
)

type dashboardMetricsQuery struct {
	SellerID *string `form:"seller_id"`
}

// @Summary		Dashboard metrics
// @Description	Canonical state counts and mismatch totals for orders and returns, plus the latest sync run
// @Tags			dashboard
// @Produce		json
// @Param			seller_id	query		string	false	"Filter by seller (admins only)"
// @Success		200			{object}	DashboardMetricsResponse
// @Failure		403			{object}	gin.H	"Seller ID mismatch"
// @Failure		500			{object}	gin.H	"Internal server error"
// @Security		accessToken
// @Router			/dashboard/metrics [get]
func (server *Server) getDashboardMetrics(ctx *gin.Context) {
	var query dashboardMetricsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	sellerID, err := sellerScope(authPayload(ctx), query.SellerID)
	if err != nil {
		ctx.JSON(http.StatusForbidden, errorResponse(err))
		return
	}

	orderRows, err := db.ScanOrderRows(ctx, server.dbStore, sellerID, scanPageSize)
	if err != nil {
		log.Error().Err(err).Msg("failed to list orders")
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	returnRows, err := db.ScanReturnRows(ctx, server.dbStore, sellerID, scanPageSize)
	if err != nil {
		log.Error().Err(err).Msg("failed to list returns")
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	orders, badOrders := db.StatusRows(orderRows)
	returns, badReturns := db.StatusRows(returnRows)

	resp := DashboardMetricsResponse{
		Orders:    status.Summarize(orders),
		Returns:   status.Summarize(returns),
		Malformed: badOrders + badReturns,
	}
	resp.MismatchCount = resp.Orders.MismatchCount + resp.Returns.MismatchCount
	resp.Banner = status.MismatchBanner(resp.MismatchCount)
	resp.TotalLabel = fmt.Sprintf("%s records", humanize.Comma(int64(resp.Orders.Total+resp.Returns.Total)))

	syncRun, err := server.dbStore.GetLatestSyncRun(ctx)
	if err != nil && !errors.Is(err, db.ErrRecordNotFound) {
		log.Error().Err(err).Msg("failed to get latest sync run")
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	if err == nil {
		resp.LastSyncRun = newSyncRunResponse(syncRun)
	}

	ctx.JSON(http.StatusOK, resp)
}

func newSyncRunResponse(run db.SyncRun) *SyncRunResponse {
	return &SyncRunResponse{
		Code:            run.Code,
		Trigger:         run.Trigger,
		EnqueuedOrders:  run.EnqueuedOrders,
		EnqueuedReturns: run.EnqueuedReturns,
		CreatedAt:       run.CreatedAt,
		Age:             humanize.Time(run.CreatedAt),
	}
}
