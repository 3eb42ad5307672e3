package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_toolkit/internal/apperrors"
	portssvc "github.com/SscSPs/currency_toolkit/internal/core/ports/services"
	"github.com/SscSPs/currency_toolkit/internal/dto"
	"github.com/SscSPs/currency_toolkit/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	tokenService portssvc.AdminTokenSvc
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(ts portssvc.AdminTokenSvc) *AuthHandler {
	return &AuthHandler{tokenService: ts}
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.Engine, tokenService portssvc.AdminTokenSvc) {
	h := NewAuthHandler(tokenService)

	// Define rate limit: 5 requests per minute
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := rg.Group("/auth")
	{
		auth.POST("/token", limitMiddleware, h.IssueToken)
	}
}

// IssueToken godoc
// @Summary Exchange the admin secret for a token
// @Description Returns a short-lived JWT accepted by the seeding routes when REQUIRE_ADMIN_AUTH is set.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.AdminTokenRequest true "Admin secret"
// @Success 200 {object} dto.AdminTokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AdminTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	token, expiresAt, err := h.tokenService.IssueAdminToken(c.Request.Context(), req.Secret)
	if err != nil {
		if status := apperrors.StatusCode(err); status == http.StatusUnauthorized {
			c.JSON(status, ErrorResponse{Error: "Invalid admin secret"})
			return
		}
		logger.Error("Failed to issue admin token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.AdminTokenResponse{Token: token, ExpiresAt: expiresAt})
}
