package handler

import (
	"wallet-engine/internal/adapter/http/dto"
	"wallet-engine/internal/core/domain"
	"wallet-engine/pkg/apperror"
	"wallet-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// SwapHandler handles swap quote and execution endpoints.
type SwapHandler struct{}

// NewSwapHandler creates a new SwapHandler.
func NewSwapHandler() *SwapHandler {
	return &SwapHandler{}
}

// Quote handles GET /api/v1/swaps/quote.
func (h *SwapHandler) Quote(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	var q dto.SwapQuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	amount, ok := bindAmount(c, q.Amount)
	if !ok {
		return
	}

	quote, err := s.QuoteSwap(c.Request.Context(), q.From, q.To, amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SwapQuoteResponse{SwapQuote: *quote, Display: quote.Display()})
}

// Execute handles POST /api/v1/swaps.
func (h *SwapHandler) Execute(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	var req dto.SwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	amount, ok := bindAmount(c, req.Amount)
	if !ok {
		return
	}
	routing, _ := domain.ParseRoutingMode(req.Routing)

	result, err := s.ExecuteSwap(c.Request.Context(), domain.SwapRequest{
		From:    req.From,
		To:      req.To,
		Amount:  amount,
		Routing: routing,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}
