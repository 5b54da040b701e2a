package handler

import (
	"wallet-engine/internal/adapter/http/dto"
	"wallet-engine/pkg/apperror"
	"wallet-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet balance endpoints.
type WalletHandler struct{}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler() *WalletHandler {
	return &WalletHandler{}
}

// List handles GET /api/v1/wallets.
func (h *WalletHandler) List(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	response.OK(c, s.Balances(c.Request.Context()))
}

// Credit handles POST /api/v1/wallets/credit.
func (h *WalletHandler) Credit(c *gin.Context) {
	h.apply(c, true)
}

// Debit handles POST /api/v1/wallets/debit.
func (h *WalletHandler) Debit(c *gin.Context) {
	h.apply(c, false)
}

func (h *WalletHandler) apply(c *gin.Context, credit bool) {
	s, ok := session(c)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	amount, ok := bindAmount(c, req.Amount)
	if !ok {
		return
	}

	op := s.Debit
	if credit {
		op = s.Credit
	}
	wallet, err := op(c.Request.Context(), req.Symbol, amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, wallet)
}
