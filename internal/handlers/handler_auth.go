package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/quickway/travels_backoffice/internal/core/ports/services"
	"github.com/quickway/travels_backoffice/internal/dto"
	"github.com/quickway/travels_backoffice/internal/middleware"
	"github.com/ulule/limiter/v3"
)

// authHandler issues session tokens.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

// registerAuthRoutes sets up the public token route.
func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthSvcFacade, loginLimiter *limiter.Limiter) {
	h := &authHandler{authService: authService}

	chain := []gin.HandlerFunc{}
	if loginLimiter != nil {
		chain = append(chain, middleware.RateLimit(loginLimiter))
	}
	chain = append(chain, h.issueToken)
	r.POST("/jwt", chain...)
}

// issueToken godoc
// @Summary Issue a session token
// @Description Looks the email up in the user directory and returns a signed token carrying its role, status and office.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.IssueTokenRequest true "Login identity"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse "Identity token missing or rejected"
// @Failure 403 {object} dto.ErrorResponse "Account is inactive"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /jwt [post]
func (h *authHandler) issueToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.IssueTokenRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.authService.IssueToken(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "User")
		return
	}

	logger.Info("Session token issued", slog.String("email", req.Email))
	c.JSON(http.StatusOK, resp)
}
