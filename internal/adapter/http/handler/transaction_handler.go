package handler

import (
	"fmt"
	"net/http"

	"wallet-engine/internal/adapter/http/dto"
	"wallet-engine/internal/core/domain"
	"wallet-engine/pkg/apperror"
	"wallet-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// TransactionHandler handles transaction log endpoints.
type TransactionHandler struct{}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler() *TransactionHandler {
	return &TransactionHandler{}
}

// List handles GET /api/v1/transactions.
func (h *TransactionHandler) List(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	var q dto.TransactionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	txs := s.ListTransactions(c.Request.Context(), q.Filter())
	response.OK(c, dto.TransactionListResponse{Transactions: txs, Count: len(txs)})
}

// Append handles POST /api/v1/transactions.
func (h *TransactionHandler) Append(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	var req dto.AppendTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.TrimStrings(&req)

	amount, ok := bindAmount(c, req.Amount)
	if !ok {
		return
	}

	tx, err := s.AppendTransaction(c.Request.Context(), domain.Transaction{
		ID:            req.ID,
		Type:          domain.TransactionType(req.Type),
		Amount:        amount,
		Currency:      domain.NormalizeSymbol(req.Currency),
		Recipient:     req.Recipient,
		Date:          req.Date,
		CorrelationID: req.CorrelationID,
		Metadata:      req.Metadata,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, tx)
}

// Summary handles GET /api/v1/transactions/summary.
func (h *TransactionHandler) Summary(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	var q dto.TransactionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	response.OK(c, s.AggregateTransactions(c.Request.Context(), q.Filter()))
}

// Export handles POST /api/v1/transactions/export.
// With ?download=true the rendered file is streamed back instead of its location.
func (h *TransactionHandler) Export(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	var req dto.ExportRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
	}
	format, _ := domain.ParseExportFormat(req.Format)

	result, err := s.ExportTransactions(c.Request.Context(), req.Filter(), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	if c.Query("download") == "true" {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Payload.Filename))
		c.Data(http.StatusOK, result.Payload.ContentType, result.Payload.Data)
		return
	}
	response.Created(c, result)
}
