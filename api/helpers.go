package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	db "github.com/katatrina/sellerops-BE/internal/db/sqlc"
	"github.com/katatrina/sellerops-BE/internal/status"
	"github.com/katatrina/sellerops-BE/internal/token"
	"github.com/katatrina/sellerops-BE/internal/util"
	"github.com/katatrina/sellerops-BE/internal/validator"
)

const (
	defaultListLimit = 500
	maxListLimit     = 2000

	// Page size for endpoints that reconcile every stored record.
	scanPageSize = 1000
)

func authPayload(ctx *gin.Context) *token.Payload {
	return ctx.MustGet(authorizationPayloadKey).(*token.Payload)
}

// sellerScope returns the seller filter to query with. Admins may filter by
// any seller or none; sellers always see only their own records.
func sellerScope(payload *token.Payload, requested *string) (*string, error) {
	if requested != nil && strings.TrimSpace(*requested) == "" {
		requested = nil
	}

	if payload.Role == token.RoleAdmin {
		return requested, nil
	}

	if requested != nil && *requested != payload.Subject {
		return nil, ErrSellerIDMismatch
	}

	return util.StringPointer(payload.Subject), nil
}

func canAccess(payload *token.Payload, sellerID string) bool {
	return payload.Role == token.RoleAdmin || payload.Subject == sellerID
}

type listEntitiesQuery struct {
	SellerID     *string `form:"seller_id"`
	Status       *string `form:"status"`
	MismatchOnly bool    `form:"mismatch_only"`
	Limit        *int32  `form:"limit"`
}

// validate checks the status filter against the closed vocabulary and
// returns the canonical state to filter on.
func (q *listEntitiesQuery) validate(entityType status.EntityType) (*status.CanonicalState, []*FieldViolation) {
	var violations []*FieldViolation

	if q.SellerID != nil && *q.SellerID != "" {
		if err := validator.ValidateSellerID(*q.SellerID); err != nil {
			violations = append(violations, fieldViolation("seller_id", err))
		}
	}

	if q.Limit != nil {
		if err := validator.ValidateLimit(*q.Limit, maxListLimit); err != nil {
			violations = append(violations, fieldViolation("limit", err))
		}
	}

	if q.Status == nil || strings.TrimSpace(*q.Status) == "" {
		return nil, violations
	}

	state := status.CanonicalState(strings.ToLower(strings.TrimSpace(*q.Status)))
	if !status.IsKnown(entityType, state) {
		violations = append(violations, fieldViolation("status", fmt.Errorf("unknown %s state %q", entityType, *q.Status)))
		return nil, violations
	}

	return &state, violations
}

func (q *listEntitiesQuery) limit() int32 {
	if q.Limit == nil {
		return defaultListLimit
	}
	return *q.Limit
}

// filterRows keeps rows whose marketplace canonical state equals state (when
// set) and, with mismatchOnly, only mismatching rows.
func filterRows(rows []db.EntityRow, state *status.CanonicalState, mismatchOnly bool) []db.EntityRow {
	filtered := make([]db.EntityRow, 0, len(rows))
	for _, r := range rows {
		if state != nil && r.Row.MarketplaceCanonical != *state {
			continue
		}
		if mismatchOnly && !r.Row.IsMismatch {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}
