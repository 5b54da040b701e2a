package handler

import (
	"wallet-engine/internal/adapter/http/dto"
	"wallet-engine/internal/core/domain"
	"wallet-engine/pkg/apperror"
	"wallet-engine/pkg/deeplink"
	"wallet-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ReceiveHandler builds payment-request deeplinks.
type ReceiveHandler struct {
	scheme string
}

// NewReceiveHandler creates a new ReceiveHandler for the given URI scheme.
func NewReceiveHandler(scheme string) *ReceiveHandler {
	return &ReceiveHandler{scheme: scheme}
}

// Link handles GET /api/v1/receive/link.
func (h *ReceiveHandler) Link(c *gin.Context) {
	var q dto.ReceiveLinkQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	amount := decimal.Zero
	if q.Amount != "" {
		var ok bool
		if amount, ok = bindAmount(c, q.Amount); !ok {
			return
		}
	}

	req := deeplink.Request{
		Address: q.Address,
		Amount:  amount,
		Token:   domain.NormalizeSymbol(q.Token),
		Note:    q.Note,
	}
	link, err := deeplink.Encode(h.scheme, req)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	response.OK(c, dto.ReceiveLinkResponse{Link: link, Request: req})
}
