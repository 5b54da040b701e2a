package handler

import (
	"time"

	"wallet-engine/internal/adapter/http/middleware"
	"wallet-engine/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const defaultIdempotencyTTL = 24 * time.Hour

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Sessions       ports.SessionProvider
	TokenSvc       ports.TokenService
	RateLimiter    middleware.Limiter         // nil = rate limiting disabled
	IdempCache     ports.IdempotencyCache     // nil = Idempotency-Key ignored
	KeyReserver    middleware.KeyReserver     // nil = no in-flight guard
	IdempotencyTTL time.Duration
	AuditSvc       ports.AuditService // nil = audit logging disabled
	HealthCheckers []ports.HealthChecker
	DeeplinkScheme string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Health check (pings PostgreSQL and Redis when enabled)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		return middleware.RateLimiter(deps.RateLimiter, group, rules[group], deps.Logger)
	}

	idempotent := func(c *gin.Context) { c.Next() }
	if deps.IdempCache != nil {
		ttl := deps.IdempotencyTTL
		if ttl <= 0 {
			ttl = defaultIdempotencyTTL
		}
		idempotent = middleware.Idempotency(deps.IdempCache, deps.KeyReserver, ttl, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Public routes ---
	sessionHandler := NewSessionHandler(deps.Sessions, deps.TokenSvc)
	v1.POST("/sessions", rl("sessions"), sessionHandler.Open)

	// --- Session routes (JWT bearer) ---
	authed := v1.Group("", middleware.JWTAuth(deps.TokenSvc, deps.Sessions, deps.Logger))

	walletHandler := NewWalletHandler()
	wallets := authed.Group("/wallets")
	{
		wallets.GET("", rl("reads"), walletHandler.List)
		wallets.POST("/credit", rl("mutations"), walletHandler.Credit)
		wallets.POST("/debit", rl("mutations"), walletHandler.Debit)
	}

	txHandler := NewTransactionHandler()
	transactions := authed.Group("/transactions")
	{
		transactions.GET("", rl("reads"), txHandler.List)
		transactions.POST("", rl("mutations"), idempotent, txHandler.Append)
		transactions.GET("/summary", rl("reads"), txHandler.Summary)
		transactions.POST("/export", rl("exports"), txHandler.Export)
	}

	escrowHandler := NewEscrowHandler()
	escrows := authed.Group("/escrows")
	{
		escrows.GET("", rl("reads"), escrowHandler.List)
		escrows.POST("", rl("mutations"), idempotent, escrowHandler.Create)
		escrows.GET("/:id", rl("reads"), escrowHandler.Get)
		escrows.POST("/:id/sign", rl("mutations"), escrowHandler.Sign)
		escrows.POST("/:id/dispute", rl("mutations"), escrowHandler.Dispute)
		escrows.POST("/:id/release", rl("mutations"), escrowHandler.Release)
		escrows.POST("/:id/refund", rl("mutations"), escrowHandler.Refund)
		escrows.POST("/:id/expire", rl("mutations"), escrowHandler.Expire)
	}

	swapHandler := NewSwapHandler()
	swaps := authed.Group("/swaps")
	{
		swaps.GET("/quote", rl("reads"), swapHandler.Quote)
		swaps.POST("", rl("swaps"), idempotent, swapHandler.Execute)
	}

	transferHandler := NewTransferHandler()
	authed.GET("/recipients/resolve", rl("reads"), transferHandler.Resolve)
	authed.POST("/transfers", rl("transfers"), idempotent, transferHandler.Transfer)

	priceHandler := NewPriceHandler()
	authed.GET("/prices", rl("reads"), priceHandler.List)
	authed.PUT("/prices", rl("mutations"), priceHandler.Refresh)

	authed.GET("/settlements", rl("reads"), Settlements)

	receiveHandler := NewReceiveHandler(deps.DeeplinkScheme)
	authed.GET("/receive/link", rl("reads"), receiveHandler.Link)

	eventsHandler := NewEventsHandler(nil, deps.Logger)
	authed.GET("/events", eventsHandler.Stream)

	return r
}
