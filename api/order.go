package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	db "github.com/katatrina/sellerops-BE/internal/db/sqlc"
	"github.com/katatrina/sellerops-BE/internal/status"
	"github.com/rs/zerolog/log"
)

// @Summary		List orders
// @Description	Lists orders with their marketplace status reconciled against our status
// @Tags			orders
// @Produce		json
// @Param			seller_id		query	string	false	"Filter by seller (admins only)"
// @Param			status			query	string	false	"Filter by marketplace canonical state"	Enums(pending, picked_up, shipped, out_for_delivery, delivered, cancelled, exception)
// @Param			mismatch_only	query	bool	false	"Only mismatching rows"
// @Param			limit			query	int		false	"Maximum rows scanned"	minimum(1)	maximum(2000)	default(500)
// @Success		200				array	EntityRowResponse
// @Failure		400				{object}	FailedValidationResponse	"Invalid query parameters"
// @Failure		401				{object}	gin.H						"Unauthorized"
// @Failure		403				{object}	gin.H						"Seller ID mismatch"
// @Failure		500				{object}	gin.H						"Internal server error"
// @Security		accessToken
// @Router			/orders [get]
func (server *Server) listOrders(ctx *gin.Context) {
	server.listEntities(ctx, status.EntityTypeOrder)
}

// @Summary		Get order details
// @Description	Returns one reconciled order with its tracking history and the source of our status
// @Tags			orders
// @Produce		json
// @Param			orderID	path		string	true	"Order ID"	format(uuid)
// @Success		200		{object}	EntityRowResponse
// @Failure		400		{object}	gin.H	"Invalid order ID"
// @Failure		403		{object}	gin.H	"Order belongs to another seller"
// @Failure		404		{object}	gin.H	"Order not found"
// @Failure		500		{object}	gin.H	"Internal server error"
// @Security		accessToken
// @Router			/orders/{orderID} [get]
func (server *Server) getOrderDetails(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("orderID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("invalid order ID: %w", err)))
		return
	}

	order, err := server.dbStore.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("order ID %s not found", orderID)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to get order")
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	if !canAccess(authPayload(ctx), order.SellerID) {
		ctx.JSON(http.StatusForbidden, errorResponse(ErrSellerNotOwnEntity))
		return
	}

	ctx.JSON(http.StatusOK, newEntityRowResponse(db.OrderRow(order), true))
}

// listEntities serves the order and return list views. Rows whose stored
// document cannot be decoded are returned with decode_error set.
func (server *Server) listEntities(ctx *gin.Context, entityType status.EntityType) {
	var query listEntitiesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	state, violations := query.validate(entityType)
	if len(violations) > 0 {
		ctx.JSON(http.StatusBadRequest, failedValidationError(violations))
		return
	}

	sellerID, err := sellerScope(authPayload(ctx), query.SellerID)
	if err != nil {
		ctx.JSON(http.StatusForbidden, errorResponse(err))
		return
	}

	var rows []db.EntityRow
	switch entityType {
	case status.EntityTypeOrder:
		rows, err = db.ListOrderRows(ctx, server.dbStore, sellerID, query.limit())
	case status.EntityTypeReturn:
		rows, err = db.ListReturnRows(ctx, server.dbStore, sellerID, query.limit())
	}
	if err != nil {
		log.Error().Err(err).Str("entity_type", string(entityType)).Msg("failed to list entities")
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	rows = filterRows(rows, state, query.MismatchOnly)

	resp := make([]EntityRowResponse, len(rows))
	for i, r := range rows {
		resp[i] = newEntityRowResponse(r, false)
	}

	ctx.JSON(http.StatusOK, resp)
}
