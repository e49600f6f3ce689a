package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/minibank/ledger-api/internal/command"
	"github.com/minibank/ledger-api/internal/handler"
	"github.com/minibank/ledger-api/internal/middleware"
	"github.com/minibank/ledger-api/internal/models"
	"github.com/minibank/ledger-api/internal/query"
	"github.com/minibank/ledger-api/internal/repository"
	"github.com/minibank/ledger-api/internal/token"
)

// Demo accounts; the store is in-memory only and reseeded on every start.
var seedAccounts = []models.Account{
	{Username: "user1", Password: "password123", Balance: 1000},
	{Username: "user2", Password: "secret456", Balance: 500},
}

func main() {
	secret := getEnv("JWT_SECRET", "dev-secret-change-me")
	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "1h"))
	if err != nil {
		log.Fatalf("Invalid TOKEN_TTL: %v", err)
	}

	accountRepo := repository.NewAccountRepository(seedAccounts)
	tokenSvc := token.NewService([]byte(secret), ttl)

	authQuerySvc := query.NewAuthQueryService(accountRepo, tokenSvc)
	ledgerQuerySvc := query.NewLedgerQueryService(accountRepo)
	ledgerCommandSvc := command.NewLedgerCommandService(accountRepo)

	authHandler := handler.NewAuthHandler(authQuerySvc, "public/login.html")
	ledgerHandler := handler.NewLedgerHandler(ledgerCommandSvc, ledgerQuerySvc)

	// Setup router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("panic recovered: %v", recovered)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}))

	// Health check
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "jwt-banking-api"})
	})

	// Public routes
	router.GET("/login", authHandler.LoginPage)
	router.POST("/login", authHandler.Login)

	// Protected routes
	authed := router.Group("/", middleware.AuthMiddleware(tokenSvc))
	{
		authed.GET("/balance", ledgerHandler.GetBalance)
		authed.POST("/deposit", ledgerHandler.Deposit)
		authed.POST("/withdraw", ledgerHandler.Withdraw)
	}

	port := getEnv("PORT", "3000")
	log.Printf("JWT Banking API running on http://localhost:%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
