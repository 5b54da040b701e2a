package handler

import (
	"wallet-engine/internal/adapter/http/dto"
	"wallet-engine/internal/core/domain"
	"wallet-engine/pkg/apperror"
	"wallet-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// TransferHandler handles recipient resolution and cross-border transfers.
type TransferHandler struct{}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler() *TransferHandler {
	return &TransferHandler{}
}

// Resolve handles GET /api/v1/recipients/resolve?q=.
func (h *TransferHandler) Resolve(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	var q dto.ResolveQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	recipient, err := s.ResolveRecipient(c.Request.Context(), q.Query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, recipient)
}

// Transfer handles POST /api/v1/transfers. The recipient is resolved first;
// an unknown recipient fails before any balance moves.
func (h *TransferHandler) Transfer(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.TrimStrings(&req)
	amount, ok := bindAmount(c, req.Amount)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	recipient, err := s.ResolveRecipient(ctx, req.Recipient)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.TransferCrossBorder(ctx, domain.CrossBorderRequest{
		Recipient:           *recipient,
		Amount:              amount,
		SourceCurrency:      req.SourceCurrency,
		DestinationCurrency: req.DestinationCurrency,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}
