package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	db "github.com/katatrina/sellerops-BE/internal/db/sqlc"
	"github.com/katatrina/sellerops-BE/internal/status"
	"github.com/rs/zerolog/log"
)

type listMismatchesQuery struct {
	EntityType *string `form:"entity_type"`
	SellerID   *string `form:"seller_id"`
}

// entityTypes returns the entity types to scan; both when none is given.
func (q *listMismatchesQuery) entityTypes() ([]status.EntityType, error) {
	if q.EntityType == nil || *q.EntityType == "" {
		return []status.EntityType{status.EntityTypeOrder, status.EntityTypeReturn}, nil
	}

	entityType, err := status.ParseEntityType(*q.EntityType)
	if err != nil {
		return nil, err
	}
	return []status.EntityType{entityType}, nil
}

// @Summary		List mismatches
// @Description	Reconciles stored records and returns only those whose marketplace and our canonical states differ
// @Tags			mismatches
// @Produce		json
// @Param			entity_type	query		string	false	"orders or returns; both when omitted"	Enums(orders, returns)
// @Param			seller_id	query		string	false	"Filter by seller (admins only)"
// @Success		200			{object}	ListMismatchesResponse
// @Failure		400			{object}	FailedValidationResponse	"Invalid entity type"
// @Failure		403			{object}	gin.H						"Seller ID mismatch"
// @Failure		500			{object}	gin.H						"Internal server error"
// @Security		accessToken
// @Router			/mismatches [get]
func (server *Server) listMismatches(ctx *gin.Context) {
	var query listMismatchesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	entityTypes, err := query.entityTypes()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, failedValidationError([]*FieldViolation{fieldViolation("entity_type", err)}))
		return
	}

	sellerID, err := sellerScope(authPayload(ctx), query.SellerID)
	if err != nil {
		ctx.JSON(http.StatusForbidden, errorResponse(err))
		return
	}

	resp := ListMismatchesResponse{
		Records: make([]MismatchRecordResponse, 0),
	}

	for _, entityType := range entityTypes {
		var rows []db.EntityRow
		switch entityType {
		case status.EntityTypeOrder:
			rows, err = db.ScanOrderRows(ctx, server.dbStore, sellerID, scanPageSize)
		case status.EntityTypeReturn:
			rows, err = db.ScanReturnRows(ctx, server.dbStore, sellerID, scanPageSize)
		}
		if err != nil {
			log.Error().Err(err).Str("entity_type", string(entityType)).Msg("failed to list entities")
			ctx.JSON(http.StatusInternalServerError, errorResponse(err))
			return
		}

		for _, r := range rows {
			record, ok := r.Row.Mismatch()
			if !ok {
				continue
			}
			resp.Records = append(resp.Records, MismatchRecordResponse{
				EntityType:     entityType,
				SellerID:       r.SellerID,
				DisplayID:      r.Row.DisplayID,
				MismatchRecord: record,
			})
		}
	}

	resp.Count = len(resp.Records)
	resp.Banner = status.MismatchBanner(resp.Count)

	ctx.JSON(http.StatusOK, resp)
}
