package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/katatrina/sellerops-BE/internal/status"
	"github.com/katatrina/sellerops-BE/internal/validator"
)

type normalizeStatusRequest struct {
	EntityType string `json:"entity_type" binding:"required" example:"order"`
	Status     string `json:"status" example:"Out For Delivery"`
}

type normalizeStatusResponse struct {
	EntityType status.EntityType     `json:"entity_type"`
	Raw        string                `json:"raw"`
	Canonical  status.CanonicalState `json:"canonical"`
	Known      bool                  `json:"known"`
}

// @Summary		Normalize a status
// @Description	Maps a raw status string to its canonical state. Unknown statuses pass through lowercased
// @Tags			status
// @Accept			json
// @Produce		json
// @Param			request	body		normalizeStatusRequest	true	"Raw status"
// @Success		200		{object}	normalizeStatusResponse
// @Failure		400		{object}	gin.H	"Invalid request body"
// @Security		accessToken
// @Router			/status/normalize [post]
func (server *Server) normalizeStatus(ctx *gin.Context) {
	var req normalizeStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	entityType, err := status.ParseEntityType(req.EntityType)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, failedValidationError([]*FieldViolation{fieldViolation("entity_type", err)}))
		return
	}

	if err = validator.ValidateStatusText(req.Status); err != nil {
		ctx.JSON(http.StatusBadRequest, failedValidationError([]*FieldViolation{fieldViolation("status", err)}))
		return
	}

	canonical := status.Normalize(entityType, req.Status)
	ctx.JSON(http.StatusOK, normalizeStatusResponse{
		EntityType: entityType,
		Raw:        req.Status,
		Canonical:  canonical,
		Known:      status.IsKnown(entityType, canonical),
	})
}

type reconcileStatusRequest struct {
	EntityType        string `json:"entity_type" binding:"required" example:"order"`
	MarketplaceStatus string `json:"marketplace_status" example:"Delivered"`
	OurStatus         string `json:"our_status" example:"In Transit"`
}

// @Summary		Reconcile two statuses
// @Description	Compares a marketplace status with our status after normalization. Either side empty is never a mismatch
// @Tags			status
// @Accept			json
// @Produce		json
// @Param			request	body		reconcileStatusRequest	true	"Statuses to compare"
// @Success		200		{object}	status.Result
// @Failure		400		{object}	gin.H	"Invalid request body"
// @Security		accessToken
// @Router			/status/reconcile [post]
func (server *Server) reconcileStatus(ctx *gin.Context) {
	var req reconcileStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	entityType, err := status.ParseEntityType(req.EntityType)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, failedValidationError([]*FieldViolation{fieldViolation("entity_type", err)}))
		return
	}

	var violations []*FieldViolation
	if err = validator.ValidateStatusText(req.MarketplaceStatus); err != nil {
		violations = append(violations, fieldViolation("marketplace_status", err))
	}
	if err = validator.ValidateStatusText(req.OurStatus); err != nil {
		violations = append(violations, fieldViolation("our_status", err))
	}
	if len(violations) > 0 {
		ctx.JSON(http.StatusBadRequest, failedValidationError(violations))
		return
	}

	ctx.JSON(http.StatusOK, status.Reconcile(entityType, req.MarketplaceStatus, req.OurStatus))
}
