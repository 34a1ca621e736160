package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/katatrina/sellerops-BE/internal/token"
)

type verifyAccessTokenRequest struct {
	AccessToken string `json:"access_token" binding:"required"`
}

type verifyAccessTokenResponse struct {
	Subject   string     `json:"subject"`
	Role      token.Role `json:"role"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// @Summary		Verify access token
// @Description	Checks an access token and returns its subject and role
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			request	body		verifyAccessTokenRequest	true	"Token to verify"
// @Success		200		{object}	verifyAccessTokenResponse
// @Failure		400		{object}	gin.H	"Invalid request body"
// @Failure		401		{object}	gin.H	"Invalid or expired token"
// @Router			/tokens/verify [post]
func (server *Server) verifyAccessToken(c *gin.Context) {
	req := new(verifyAccessTokenRequest)

	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	claims, err := server.tokenMaker.VerifyToken(req.AccessToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, verifyAccessTokenResponse{
		Subject:   claims.Subject,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	})
}
