// internal/handlers/auth/auth_handler.go
package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jeyamcars-service/internal/domain/auth"
	xerrors "jeyamcars-service/internal/pkg/errors"
	"jeyamcars-service/internal/pkg/response"
	authUsecase "jeyamcars-service/internal/service/auth"
)

type AuthHandler struct {
	authService *authUsecase.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *authUsecase.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login handles admin login against the fixed account.
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "username and password are required", err)
		return
	}

	loginResp, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, xerrors.ErrInvalidCredentials) {
			response.Unauthorized(c, "invalid username or password")
			return
		}
		h.logger.Error("login failed",
			zap.String("username", req.Username),
			zap.Error(err),
		)
		response.Error(c, http.StatusInternalServerError, "login failed", err)
		return
	}

	response.Success(c, http.StatusOK, "login successful", loginResp)
}

// Logout clears the durable session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context()); err != nil {
		h.logger.Error("logout failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "logout failed", err)
		return
	}
	response.Success(c, http.StatusOK, "logged out successfully", nil)
}

// GetMe returns the logged-in admin.
func (h *AuthHandler) GetMe(c *gin.Context) {
	user := h.authService.Current()
	if user == nil {
		response.Unauthorized(c, "not logged in")
		return
	}
	response.Success(c, http.StatusOK, "user retrieved", user)
}
