package handler

import (
	"context"

	"wallet-engine/internal/adapter/http/dto"
	"wallet-engine/internal/core/domain"
	"wallet-engine/internal/core/ports"
	"wallet-engine/pkg/apperror"
	"wallet-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// EscrowHandler handles escrow lifecycle endpoints.
type EscrowHandler struct{}

// NewEscrowHandler creates a new EscrowHandler.
func NewEscrowHandler() *EscrowHandler {
	return &EscrowHandler{}
}

// List handles GET /api/v1/escrows.
func (h *EscrowHandler) List(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	response.OK(c, s.ListEscrows(c.Request.Context()))
}

// Create handles POST /api/v1/escrows.
func (h *EscrowHandler) Create(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	var req dto.CreateEscrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.TrimStrings(&req)

	amount, ok := bindAmount(c, req.Amount)
	if !ok {
		return
	}

	esc, err := s.CreateEscrow(c.Request.Context(), domain.CreateEscrowRequest{
		Amount:    amount,
		Currency:  domain.NormalizeSymbol(req.Currency),
		Recipient: req.Recipient,
		Expiry:    req.Expiry,
		Note:      req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, esc)
}

// Get handles GET /api/v1/escrows/:id.
func (h *EscrowHandler) Get(c *gin.Context) {
	h.do(c, ports.WalletSession.GetEscrow)
}

// Sign handles POST /api/v1/escrows/:id/sign.
func (h *EscrowHandler) Sign(c *gin.Context) {
	h.do(c, ports.WalletSession.SignEscrow)
}

// Dispute handles POST /api/v1/escrows/:id/dispute.
func (h *EscrowHandler) Dispute(c *gin.Context) {
	h.do(c, ports.WalletSession.DisputeEscrow)
}

// Release handles POST /api/v1/escrows/:id/release.
func (h *EscrowHandler) Release(c *gin.Context) {
	h.do(c, ports.WalletSession.ReleaseEscrow)
}

// Refund handles POST /api/v1/escrows/:id/refund.
func (h *EscrowHandler) Refund(c *gin.Context) {
	h.do(c, ports.WalletSession.RefundEscrow)
}

// Expire handles POST /api/v1/escrows/:id/expire.
func (h *EscrowHandler) Expire(c *gin.Context) {
	h.do(c, ports.WalletSession.ExpireEscrow)
}

type escrowOp func(ports.WalletSession, context.Context, string) (*domain.Escrow, error)

func (h *EscrowHandler) do(c *gin.Context, op escrowOp) {
	s, ok := session(c)
	if !ok {
		return
	}

	esc, err := op(s, c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, esc)
}
