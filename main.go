package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"food-ordering-api/config"
	"food-ordering-api/handlers"
	"food-ordering-api/mail"
	"food-ordering-api/middleware"
	"food-ordering-api/repository"
	"food-ordering-api/routes"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	cfg := config.Load()

	// Initialize database
	config.InitDB(cfg.DBPath)
	db := config.DB

	// Wiring
	auth := middleware.NewAuth(db, cfg.JWTSecret, cfg.JWTTTL)
	mailer := mail.NewMailgun(cfg.Mail)

	userRepo := repository.NewUserRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	dishRepo := repository.NewDishRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	userService := services.NewUserService(userRepo, mailer)
	restaurantService := services.NewRestaurantService(restaurantRepo, dishRepo, categoryRepo)
	orderService := services.NewOrderService(orderRepo, restaurantRepo, dishRepo)
	paymentService := services.NewPaymentService(paymentRepo, restaurantRepo)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Food Ordering API",
			"version": "1.0.0",
		})
	})

	routes.SetupRoutes(r, auth, routes.Handlers{
		Auth:       handlers.NewAuthHandler(userService, auth),
		Public:     handlers.NewPublicHandler(restaurantService),
		Restaurant: handlers.NewRestaurantHandler(restaurantService),
		Order:      handlers.NewOrderHandler(orderService),
		Payment:    handlers.NewPaymentHandler(paymentService),
	})

	// Daily sweep over expired restaurant promotions
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if _, err := paymentService.ExpirePromotions(time.Now()); err != nil {
				log.Printf("promotion sweep: %v", err)
			}
		}
	}()

	// Start server
	log.Printf("Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
