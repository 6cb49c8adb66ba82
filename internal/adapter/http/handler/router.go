package handler

import (
	"group-wager-ledger/config"
	"group-wager-ledger/internal/adapter/http/middleware"
	"group-wager-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Resolver       ports.Resolver
	Ledger         ports.Ledger
	Games          ports.GameStore
	Sweep          SweepFunc
	HashSvc        ports.HashService
	TokenSvc       ports.TokenService
	Admin          config.AdminConfig
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Deep health check verifying PostgreSQL and Redis
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.HashSvc, deps.TokenSvc, deps.Admin)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	// --- Ingest routes (observation channels) ---
	ingestHandler := NewIngestHandler(deps.Resolver)
	ingest := v1.Group("/ingest")
	{
		ingest.POST("/messages", ingestHandler.PostMessage)
		ingest.POST("/edits", ingestHandler.PostEdit)
	}

	// --- JWT-authenticated routes (operations API) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	adminHandler := NewAdminHandler(deps.Resolver, deps.Ledger, deps.Games, deps.Sweep)

	admin := v1.Group("/admin", jwtAuth)
	{
		admin.GET("/wagers", adminHandler.ListWagers)
		admin.POST("/wagers/cancel", adminHandler.CancelWager)
		admin.GET("/wagers/:id/transactions", adminHandler.GetWagerTransactions)
		admin.POST("/users", adminHandler.CreateUser)
		admin.GET("/users/:id", adminHandler.GetUser)
		admin.POST("/users/:id/verify", adminHandler.VerifyUser)
		admin.PUT("/users/:id/commission", adminHandler.SetCommission)
		admin.POST("/users/:id/adjust", adminHandler.Adjust)
		admin.GET("/users/:id/transactions", adminHandler.ListTransactions)
		admin.POST("/expiry/sweep", adminHandler.SweepExpiry)
	}

	return r
}
