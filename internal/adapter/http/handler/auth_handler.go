package handler

import (
	"net/http"

	"group-wager-ledger/config"
	"group-wager-ledger/internal/adapter/http/dto"
	"group-wager-ledger/internal/core/ports"
	"group-wager-ledger/pkg/apperror"
	"group-wager-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles admin authentication for the operations API.
// There is a single admin credential, configured as an Argon2id hash.
type AuthHandler struct {
	hashSvc  ports.HashService
	tokenSvc ports.TokenService
	admin    config.AdminConfig
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(hashSvc ports.HashService, tokenSvc ports.TokenService, admin config.AdminConfig) *AuthHandler {
	return &AuthHandler{
		hashSvc:  hashSvc,
		tokenSvc: tokenSvc,
		admin:    admin,
	}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if req.Username != h.admin.Username || h.admin.PasswordHash == "" {
		response.Error(c, apperror.ErrInvalidCredentials())
		return
	}

	ok, err := h.hashSvc.Verify(req.Password, h.admin.PasswordHash)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	if !ok {
		response.Error(c, apperror.ErrInvalidCredentials())
		return
	}

	token, expiry, err := h.tokenSvc.Generate(req.Username)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, dto.LoginResponse{
		Token:  token,
		Expiry: expiry.Unix(),
	})
}

// HealthCheck handles GET /health. It pings every registered dependency
// and reports degraded with a 503 if any of them fail.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
