package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fokanendapascal/internship-management-app/internal/dto"
	"github.com/fokanendapascal/internship-management-app/internal/service"
	"github.com/fokanendapascal/internship-management-app/pkg/response"
	"github.com/fokanendapascal/internship-management-app/pkg/telemetry"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.auth.register")
	defer span.End()

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	tokens, err := h.authService.Register(ctx, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, tokens)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.auth.login")
	defer span.End()

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	tokens, err := h.authService.Login(ctx, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, tokens)
}

// Authenticated handles GET /auth/authenticated
func (h *AuthHandler) Authenticated(c *gin.Context) {
	user, err := h.authService.Authenticated(c.Request.Context(), principal(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, dto.FromUser(user))
}

// Refresh handles POST /auth/refresh-token. The refresh token travels
// in the Authorization header; a missing or non-Bearer header is a
// client error, not an authentication failure.
func (h *AuthHandler) Refresh(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.auth.refresh")
	defer span.End()

	header := c.GetHeader("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		response.BadRequest(c, "missing refresh token")
		return
	}

	tokens, err := h.authService.Refresh(ctx, raw)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, tokens)
}
