package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"wallet-engine/internal/core/domain"
	"wallet-engine/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog creates an audit middleware that logs successful write operations.
// It maps the matched route template and method to audit actions.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only audit successful write operations (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			return
		}

		action, resourceType := mapPathToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"request_id": c.GetString(CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			AccountID:    c.GetString(CtxAccountID),
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   c.Param("id"),
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

func mapPathToAction(path, method string) (domain.AuditAction, string) {
	switch {
	case path == "/api/v1/sessions" && method == http.MethodPost:
		return domain.AuditActionOpenSession, "session"
	case path == "/api/v1/wallets/credit" && method == http.MethodPost:
		return domain.AuditActionCredit, "wallet"
	case path == "/api/v1/wallets/debit" && method == http.MethodPost:
		return domain.AuditActionDebit, "wallet"
	case path == "/api/v1/transactions" && method == http.MethodPost:
		return domain.AuditActionAppendTx, "transaction"
	case path == "/api/v1/transactions/export" && method == http.MethodPost:
		return domain.AuditActionExport, "export"
	case path == "/api/v1/escrows" && method == http.MethodPost:
		return domain.AuditActionEscrowCreate, "escrow"
	case path == "/api/v1/escrows/:id/sign" && method == http.MethodPost:
		return domain.AuditActionEscrowSign, "escrow"
	case path == "/api/v1/escrows/:id/dispute" && method == http.MethodPost:
		return domain.AuditActionEscrowDispute, "escrow"
	case path == "/api/v1/escrows/:id/release" && method == http.MethodPost:
		return domain.AuditActionEscrowRelease, "escrow"
	case path == "/api/v1/escrows/:id/refund" && method == http.MethodPost:
		return domain.AuditActionEscrowRefund, "escrow"
	case path == "/api/v1/escrows/:id/expire" && method == http.MethodPost:
		return domain.AuditActionEscrowExpire, "escrow"
	case path == "/api/v1/swaps" && method == http.MethodPost:
		return domain.AuditActionSwap, "transaction"
	case path == "/api/v1/transfers" && method == http.MethodPost:
		return domain.AuditActionTransfer, "transaction"
	case path == "/api/v1/prices" && method == http.MethodPut:
		return domain.AuditActionRefreshPrices, "price"
	}
	return "", ""
}
