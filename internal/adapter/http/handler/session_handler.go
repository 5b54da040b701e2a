package handler

import (
	"net/http"
	"strings"

	"wallet-engine/internal/adapter/http/dto"
	"wallet-engine/internal/adapter/http/middleware"
	"wallet-engine/internal/core/ports"
	"wallet-engine/pkg/apperror"
	"wallet-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SessionHandler opens account sessions and issues their bearer tokens.
type SessionHandler struct {
	sessions ports.SessionProvider
	tokenSvc ports.TokenService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions ports.SessionProvider, tokenSvc ports.TokenService) *SessionHandler {
	return &SessionHandler{sessions: sessions, tokenSvc: tokenSvc}
}

// Open handles POST /api/v1/sessions.
// The session is opened (restored or seeded) before the token is issued.
func (h *SessionHandler) Open(c *gin.Context) {
	var req dto.OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	accountID := strings.TrimSpace(req.AccountID)

	if _, err := h.sessions.Session(c.Request.Context(), accountID); err != nil {
		response.Error(c, err)
		return
	}

	token, expiry, err := h.tokenSvc.Generate(accountID)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	c.Set(middleware.CtxAccountID, accountID)
	response.Created(c, dto.SessionResponse{
		AccountID: accountID,
		Token:     token,
		Expiry:    expiry.Unix(),
	})
}

// HealthCheck handles GET /health, pinging every configured dependency.
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

// session returns the account session attached by JWTAuth, or writes a 401.
func session(c *gin.Context) (ports.WalletSession, bool) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return nil, false
	}
	return s, true
}

// bindAmount parses a validated amount field.
func bindAmount(c *gin.Context, raw string) (decimal.Decimal, bool) {
	amount, err := dto.ParseAmount(raw)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAmount())
		return decimal.Decimal{}, false
	}
	return amount, true
}
