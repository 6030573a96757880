package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "church_giving/internal/adapter/http/dto/request"
	response "church_giving/internal/adapter/http/dto/response"
	"church_giving/internal/usecase"
	"church_giving/pkg"

	"github.com/gin-gonic/gin"
)

// ContextAdminKey holds the usecase.AdminClaims of an authenticated request.
const ContextAdminKey = "admin"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary   Admin login
// @Tags      admin
// @Accept    json
// @Produce   json
// @Param     payload  body      request.AdminLoginRequest  true  "Credentials"
// @Success   200      {object}  response.LoginResponse
// @Failure   400      {object}  pkg.HTTPError
// @Failure   401      {object}  pkg.HTTPError
// @Router    /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.AdminLoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := mapBindingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	token, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAuthToken(token))
}

// RequireAdmin rejects requests without a valid "Bearer <jwt>" header.
func (h *AuthHandler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims, err := h.usecase.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			log.Printf("[auth][handler] token rejected path=%s err=%v", c.FullPath(), err)
			appErr := mapAuthError(err)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(ContextAdminKey, claims)
		c.Next()
	}
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUnauthorized):
		return errUnauthorized
	case errors.Is(err, usecase.ErrAuthNotConfigured):
		return pkg.NewDomainError("AUTH_NOT_CONFIGURED", "Admin access is not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
