package handler

import (
	"wallet-engine/internal/adapter/http/dto"
	"wallet-engine/pkg/apperror"
	"wallet-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PriceHandler handles price table endpoints.
type PriceHandler struct{}

// NewPriceHandler creates a new PriceHandler.
func NewPriceHandler() *PriceHandler {
	return &PriceHandler{}
}

// List handles GET /api/v1/prices.
func (h *PriceHandler) List(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	response.OK(c, s.Prices(c.Request.Context()))
}

// Refresh handles PUT /api/v1/prices.
func (h *PriceHandler) Refresh(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	var req dto.RefreshPricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	rates := make(map[string]decimal.Decimal, len(req.Rates))
	for symbol, raw := range req.Rates {
		rate, ok := bindAmount(c, raw)
		if !ok {
			return
		}
		rates[symbol] = rate
	}

	entries, err := s.RefreshPrices(c.Request.Context(), rates)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, entries)
}

// Settlements handles GET /api/v1/settlements.
func Settlements(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	response.OK(c, s.ListSettlementTasks(c.Request.Context()))
}
