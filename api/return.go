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

// @Summary		List returns
// @Description	Lists returns with their marketplace status reconciled against our status
// @Tags			returns
// @Produce		json
// @Param			seller_id		query	string	false	"Filter by seller (admins only)"
// @Param			status			query	string	false	"Filter by marketplace canonical state"	Enums(initiated, in_progress, pickup_scheduled, quality_check, completed, rejected)
// @Param			mismatch_only	query	bool	false	"Only mismatching rows"
// @Param			limit			query	int		false	"Maximum rows scanned"	minimum(1)	maximum(2000)	default(500)
// @Success		200				array	EntityRowResponse
// @Failure		400				{object}	FailedValidationResponse	"Invalid query parameters"
// @Failure		401				{object}	gin.H						"Unauthorized"
// @Failure		403				{object}	gin.H						"Seller ID mismatch"
// @Failure		500				{object}	gin.H						"Internal server error"
// @Security		accessToken
// @Router			/returns [get]
func (server *Server) listReturns(ctx *gin.Context) {
	server.listEntities(ctx, status.EntityTypeReturn)
}

// @Summary		Get return details
// @Tags			returns
// @Produce		json
// @Param			returnID	path		string	true	"Return ID"	format(uuid)
// @Success		200			{object}	EntityRowResponse
// @Failure		400			{object}	gin.H	"Invalid return ID"
// @Failure		403			{object}	gin.H	"Return belongs to another seller"
// @Failure		404			{object}	gin.H	"Return not found"
// @Failure		500			{object}	gin.H	"Internal server error"
// @Security		accessToken
// @Router			/returns/{returnID} [get]
func (server *Server) getReturnDetails(ctx *gin.Context) {
	returnID, err := uuid.Parse(ctx.Param("returnID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("invalid return ID: %w", err)))
		return
	}

	ret, err := server.dbStore.GetReturnByID(ctx, returnID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("return ID %s not found", returnID)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Error().Err(err).Str("return_id", returnID.String()).Msg("failed to get return")
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	if !canAccess(authPayload(ctx), ret.SellerID) {
		ctx.JSON(http.StatusForbidden, errorResponse(ErrSellerNotOwnEntity))
		return
	}

	ctx.JSON(http.StatusOK, newEntityRowResponse(db.ReturnRow(ret), true))
}
